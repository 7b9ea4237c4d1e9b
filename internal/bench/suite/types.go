package suite

import (
	"math"

	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

const DefaultTolerance = 1e-9

type TestSuite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Runs        Runs   `yaml:"runs"`
	Cases       []Case `yaml:"cases"`
}

type Runs struct {
	Warmup     int `yaml:"warmup"`
	Iterations int `yaml:"iterations"`
}

// Case is one expression with its expected outcome. Exactly one of Expect
// and Error is set.
type Case struct {
	ID          string     `yaml:"id"`
	Description string     `yaml:"description"`
	Expression  string     `yaml:"expression"`
	AngleUnit   angle.Unit `yaml:"angle_unit,omitempty"`
	Expect      *float64   `yaml:"expect,omitempty"`
	Tolerance   float64    `yaml:"tolerance,omitempty"`
	// Error is the calculator error code the case must fail with.
	Error string `yaml:"error,omitempty"`
	// Reference cross-checks the result against the expr-lang evaluator.
	Reference bool `yaml:"reference,omitempty"`
}

func (c *Case) Unit() angle.Unit {
	if c.AngleUnit == "" {
		return angle.Default
	}
	return c.AngleUnit
}

func (c *Case) ExpectsError() bool {
	return c.Error != ""
}

// Matches reports whether got lies within the case tolerance of the expected
// value. The tolerance is relative for magnitudes above one.
func (c *Case) Matches(got float64) bool {
	if c.Expect == nil {
		return false
	}
	tol := c.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	return WithinTolerance(*c.Expect, got, tol)
}

func WithinTolerance(want, got, tol float64) bool {
	if math.IsInf(want, 0) || math.IsNaN(want) {
		return want == got || (math.IsNaN(want) && math.IsNaN(got))
	}
	return math.Abs(want-got) <= tol*math.Max(1, math.Abs(want))
}
