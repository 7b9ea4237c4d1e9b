package mathfn

import (
	"github.com/DjordjeVuckovic/sci-calc/internal/token"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

type UnaryFunc func(v float64, unit angle.Unit) (float64, error)

type BinaryFunc func(a, b float64) (float64, error)

// Unary returns the implementation bound to a function token.
func Unary(fn token.Function) (UnaryFunc, bool) {
	switch fn {
	case token.Sin:
		return func(v float64, unit angle.Unit) (float64, error) { return Sine(v, unit), nil }, true
	case token.Cos:
		return func(v float64, unit angle.Unit) (float64, error) { return Cosine(v, unit), nil }, true
	case token.Tan:
		return Tangent, true
	case token.Asin:
		return Arcsine, true
	case token.Acos:
		return Arccosine, true
	case token.Atan:
		return Arctangent, true
	case token.Ln:
		return ignoreUnit(NaturalLog), true
	case token.Log:
		return ignoreUnit(CommonLog), true
	case token.Log2:
		return ignoreUnit(BinaryLog), true
	case token.Exp:
		return ignoreUnit(NaturalExp), true
	case token.Sqrt:
		return ignoreUnit(SquareRoot), true
	case token.Abs:
		return func(v float64, _ angle.Unit) (float64, error) { return AbsoluteValue(v), nil }, true
	case token.Cbrt:
		return ignoreUnit(CubeRoot), true
	case token.Pow10:
		return ignoreUnit(PowerOfTen), true
	default:
		return nil, false
	}
}

// Binary returns the implementation bound to an operator token.
func Binary(op token.Operator) (BinaryFunc, bool) {
	switch op {
	case token.Add:
		return total(Add), true
	case token.Sub:
		return total(Subtract), true
	case token.Mul:
		return total(Multiply), true
	case token.Div:
		return Divide, true
	case token.Pow:
		return Power, true
	default:
		return nil, false
	}
}

func ignoreUnit(f func(float64) (float64, error)) UnaryFunc {
	return func(v float64, _ angle.Unit) (float64, error) {
		return f(v)
	}
}

func total(f func(a, b float64) float64) BinaryFunc {
	return func(a, b float64) (float64, error) {
		return f(a, b), nil
	}
}
