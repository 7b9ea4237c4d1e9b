package angle

import (
	"fmt"
	"math"
	"strings"
)

// Unit represents how trigonometric arguments and inverse trigonometric
// results are interpreted.
//
// Usage:
//
//	calc.Calculate("sin(90)", angle.Degree) // 1
//	calc.Calculate("sin(π)", angle.Radian)  // 0
type Unit string

const (
	Degree Unit = "deg"
	Radian Unit = "rad"
)

const Default = Degree

func Parse(s string) (Unit, error) {
	if s == "" {
		return Default, nil
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degree, nil
	case "rad", "radian", "radians":
		return Radian, nil
	default:
		return "", fmt.Errorf("invalid angle unit: %s (must be 'deg' or 'rad')", s)
	}
}

// String returns the string representation of the unit
func (u Unit) String() string {
	return string(u)
}

// DisplayName returns the short label shown next to a result.
func (u Unit) DisplayName() string {
	switch u {
	case Radian:
		return "RAD"
	default:
		return "DEG"
	}
}

func (u Unit) IsRadian() bool {
	return u == Radian
}

// ToRadians converts a value expressed in u to radians.
func (u Unit) ToRadians(v float64) float64 {
	if u == Radian {
		return v
	}
	return v * math.Pi / 180.0
}

// FromRadians converts radians to a value expressed in u.
func (u Unit) FromRadians(r float64) float64 {
	if u == Radian {
		return r
	}
	return r * 180.0 / math.Pi
}

func (u Unit) Toggled() Unit {
	if u == Radian {
		return Degree
	}
	return Radian
}

// Validate ensures the unit has a valid value
func (u Unit) Validate() error {
	if u != Degree && u != Radian {
		return fmt.Errorf("invalid angle unit: %q (must be 'deg' or 'rad')", string(u))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML serialization
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and YAML deserialization
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
