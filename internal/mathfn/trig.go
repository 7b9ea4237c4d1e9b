package mathfn

import (
	"math"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

const (
	// snapTolerance is how close to an exact multiple of π/2 an argument must
	// be for sine/cosine/tangent to return the exact value.
	snapTolerance = 1e-12
	// zeroTolerance squashes residual rounding noise to zero.
	zeroTolerance = 1e-15
	// poleTolerance marks the neighbourhood of tangent's poles.
	poleTolerance = 1e-10
)

func Sine(v float64, unit angle.Unit) float64 {
	if !isFinite(v) {
		return math.NaN()
	}
	r := toRadians(v, unit)

	switch {
	case nearMultiple(r, 0, math.Pi, snapTolerance):
		return 0
	case nearMultiple(r, math.Pi/2, 2*math.Pi, snapTolerance):
		return 1
	case nearMultiple(r, -math.Pi/2, 2*math.Pi, snapTolerance):
		return -1
	}
	return squash(math.Sin(r))
}

func Cosine(v float64, unit angle.Unit) float64 {
	if !isFinite(v) {
		return math.NaN()
	}
	r := toRadians(v, unit)

	switch {
	case nearMultiple(r, math.Pi/2, math.Pi, snapTolerance):
		return 0
	case nearMultiple(r, 0, 2*math.Pi, snapTolerance):
		return 1
	case nearMultiple(r, math.Pi, 2*math.Pi, snapTolerance):
		return -1
	}
	return squash(math.Cos(r))
}

func Tangent(v float64, unit angle.Unit) (float64, error) {
	if !isFinite(v) {
		return 0, calcerr.ErrDomain
	}
	r := toRadians(v, unit)

	if nearMultiple(r, math.Pi/2, math.Pi, poleTolerance) {
		return 0, calcerr.ErrDomain
	}
	if nearMultiple(r, 0, math.Pi, snapTolerance) {
		return 0, nil
	}

	t := math.Tan(r)
	if !isFinite(t) {
		return 0, calcerr.ErrDomain
	}
	return squash(t), nil
}

func Arcsine(v float64, unit angle.Unit) (float64, error) {
	if !(v >= -1 && v <= 1) {
		return 0, calcerr.ErrDomain
	}
	return Validate(unit.FromRadians(math.Asin(v)))
}

func Arccosine(v float64, unit angle.Unit) (float64, error) {
	if !(v >= -1 && v <= 1) {
		return 0, calcerr.ErrDomain
	}
	return Validate(unit.FromRadians(math.Acos(v)))
}

func Arctangent(v float64, unit angle.Unit) (float64, error) {
	return Validate(unit.FromRadians(math.Atan(v)))
}

// toRadians reduces degree arguments modulo a full turn before converting;
// math.Mod is exact, so sin(3600090) snaps the same way sin(90) does. Any
// unit other than radians counts as degrees, matching angle.Unit.ToRadians.
func toRadians(v float64, unit angle.Unit) float64 {
	if !unit.IsRadian() {
		v = math.Mod(v, 360)
	}
	return unit.ToRadians(v)
}

// nearMultiple reports whether r lies within tol of offset + k*period for some integer k.
func nearMultiple(r, offset, period, tol float64) bool {
	return math.Abs(math.Remainder(r-offset, period)) < tol
}

func squash(v float64) float64 {
	if math.Abs(v) < zeroTolerance {
		return 0
	}
	return v
}
