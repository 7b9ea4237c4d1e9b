package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

var referenceReplacer = strings.NewReplacer(
	"π", "pi",
	"×", "*",
	"÷", "/",
	"−", "-",
)

// EvalReference evaluates expression with expr-lang, using the standard
// library math functions under the calculator's names. It knows nothing of
// implicit multiplication or the calculator's trig snapping, so suites
// only mark plain expressions for cross-checking.
func EvalReference(expression string, unit angle.Unit) (float64, error) {
	opts := []expr.Option{
		expr.Env(referenceEnv),
		expr.Function("sin", unary(func(x float64) float64 { return math.Sin(unit.ToRadians(x)) })),
		expr.Function("cos", unary(func(x float64) float64 { return math.Cos(unit.ToRadians(x)) })),
		expr.Function("tan", unary(func(x float64) float64 { return math.Tan(unit.ToRadians(x)) })),
		expr.Function("asin", unary(func(x float64) float64 { return unit.FromRadians(math.Asin(x)) })),
		expr.Function("acos", unary(func(x float64) float64 { return unit.FromRadians(math.Acos(x)) })),
		expr.Function("atan", unary(func(x float64) float64 { return unit.FromRadians(math.Atan(x)) })),
		expr.Function("ln", unary(math.Log)),
		expr.Function("log", unary(math.Log10)),
		expr.Function("log2", unary(math.Log2)),
		expr.Function("exp", unary(math.Exp)),
		expr.Function("pow10", unary(func(x float64) float64 { return math.Pow(10, x) })),
		expr.Function("sqrt", unary(math.Sqrt)),
		expr.Function("cbrt", unary(math.Cbrt)),
	}

	program, err := expr.Compile(referenceReplacer.Replace(expression), opts...)
	if err != nil {
		return 0, fmt.Errorf("reference compile: %w", err)
	}
	out, err := expr.Run(program, referenceEnv)
	if err != nil {
		return 0, fmt.Errorf("reference run: %w", err)
	}
	return number(out)
}

var referenceEnv = map[string]any{
	"pi": math.Pi,
	"e":  math.E,
}

func unary(f func(float64) float64) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(params))
		}
		x, err := number(params[0])
		if err != nil {
			return nil, err
		}
		return f(x), nil
	}
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("reference result is %T, not a number", v)
	}
}
