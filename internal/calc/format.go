package calc

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultFractionDigits = 4
	MaxFractionDigits     = 10

	scientificUpper  = 1e10
	scientificLower  = 1e-4
	mantissaDigits   = 3
	errorPlaceholder = "Error"
)

// FormatResult renders a value for display using the calculator's formatting options.
func (c *Calculator) FormatResult(value float64) string {
	return FormatValue(value, c.fractionDigits, c.scientific)
}

// FormatValue renders v with the given fraction digits (clamped to 0..10).
// Scientific notation is used outside [1e-4, 1e10) or when forced.
func FormatValue(v float64, fractionDigits int, forceScientific bool) string {
	switch {
	case math.IsNaN(v):
		return errorPlaceholder
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if forceScientific || abs >= scientificUpper || abs < scientificLower {
		return formatScientific(v)
	}
	return formatFixed(v, clampDigits(fractionDigits))
}

// formatScientific prints at most three mantissa fraction digits with a
// compact exponent: 1.23e15, 1e-6.
func formatScientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', mantissaDigits, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	mantissa = trimFraction(mantissa)

	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "e" + strconv.Itoa(n)
}

func formatFixed(v float64, digits int) string {
	s := trimFraction(strconv.FormatFloat(v, 'f', digits, 64))
	if s == "-0" {
		return "0"
	}
	return s
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func clampDigits(n int) int {
	switch {
	case n < 0:
		return 0
	case n > MaxFractionDigits:
		return MaxFractionDigits
	default:
		return n
	}
}
