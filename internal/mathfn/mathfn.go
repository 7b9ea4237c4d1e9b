// Package mathfn is the numeric leaf of the calculator. Every function checks
// its own domain and reports failures as calcerr kinds; results that leave the
// finite range are classified by Validate.
package mathfn

import (
	"math"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
)

// Validate maps non-finite values onto the error taxonomy:
// NaN is a domain error, +Inf an overflow, -Inf an underflow.
func Validate(v float64) (float64, error) {
	switch {
	case math.IsNaN(v):
		return 0, calcerr.ErrDomain
	case math.IsInf(v, 1):
		return 0, calcerr.ErrOverflow
	case math.IsInf(v, -1):
		return 0, calcerr.ErrUnderflow
	default:
		return v, nil
	}
}

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, calcerr.ErrDivisionByZero
	}
	return Validate(a / b)
}

func Power(base, exponent float64) (float64, error) {
	if base == 0 && exponent < 0 {
		return 0, calcerr.ErrDivisionByZero
	}
	if base < 0 && !isInteger(exponent) {
		return 0, calcerr.ErrDomain
	}
	return Validate(math.Pow(base, exponent))
}

func SquareRoot(v float64) (float64, error) {
	if !isFinite(v) || v < 0 {
		return 0, calcerr.ErrDomain
	}
	return math.Sqrt(v), nil
}

// CubeRoot is defined on the whole real line; negative inputs give negative roots.
func CubeRoot(v float64) (float64, error) {
	if !isFinite(v) {
		return 0, calcerr.ErrDomain
	}
	return math.Cbrt(v), nil
}

// AbsoluteValue returns NaN for non-finite input; the caller validates.
func AbsoluteValue(v float64) float64 {
	if !isFinite(v) {
		return math.NaN()
	}
	return math.Abs(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isInteger(v float64) bool {
	return v == math.Trunc(v)
}
