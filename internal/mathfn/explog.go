package mathfn

import (
	"math"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
)

const (
	expOverflowLimit   = 700.0
	pow10OverflowLimit = 300.0
)

func NaturalLog(v float64) (float64, error) {
	if !isFinite(v) || v <= 0 {
		return 0, calcerr.ErrDomain
	}
	return Validate(math.Log(v))
}

func CommonLog(v float64) (float64, error) {
	if !isFinite(v) || v <= 0 {
		return 0, calcerr.ErrDomain
	}
	return Validate(math.Log10(v))
}

func BinaryLog(v float64) (float64, error) {
	if !isFinite(v) || v <= 0 {
		return 0, calcerr.ErrDomain
	}
	return Validate(math.Log2(v))
}

// NaturalExp computes e^v. Arguments below -700 clamp to 0 instead of failing.
func NaturalExp(v float64) (float64, error) {
	switch {
	case v > expOverflowLimit:
		return 0, calcerr.ErrOverflow
	case v < -expOverflowLimit:
		return 0, nil
	}
	return Validate(math.Exp(v))
}

// PowerOfTen computes 10^v. Arguments below -300 clamp to 0 instead of failing.
func PowerOfTen(v float64) (float64, error) {
	switch {
	case v > pow10OverflowLimit:
		return 0, calcerr.ErrOverflow
	case v < -pow10OverflowLimit:
		return 0, nil
	}
	return Validate(math.Pow(10, v))
}
