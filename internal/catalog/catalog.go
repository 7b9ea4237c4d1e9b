// Package catalog is the help content shown by the REPL and the API: one
// entry per operator, function and constant the tokenizer accepts.
package catalog

import "slices"

type Category string

const (
	Basic         Category = "basic"
	Trigonometric Category = "trigonometric"
	Logarithmic   Category = "logarithmic"
	Exponential   Category = "exponential"
	Constants     Category = "constants"
	Utility       Category = "utility"
)

func Categories() []Category {
	return []Category{Basic, Trigonometric, Logarithmic, Exponential, Constants, Utility}
}

type FunctionDescription struct {
	// Name is the text typed in an expression.
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Description string   `json:"description"`
	Usage       string   `json:"usage"`
	Example     string   `json:"example"`
	Category    Category `json:"category"`
}

type TipLevel string

const (
	Beginner     TipLevel = "beginner"
	Intermediate TipLevel = "intermediate"
	Advanced     TipLevel = "advanced"
)

type Tip struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Level   TipLevel `json:"level"`
	Daily   bool     `json:"daily,omitempty"`
}

var functions = []FunctionDescription{
	{Name: "+", Symbol: "+", Description: "Adds two numbers", Usage: "a + b", Example: "5 + 3 = 8", Category: Basic},
	{Name: "-", Symbol: "−", Description: "Subtracts the second number from the first", Usage: "a - b", Example: "8 - 3 = 5", Category: Basic},
	{Name: "*", Symbol: "×", Description: "Multiplies two numbers", Usage: "a * b", Example: "4 * 3 = 12", Category: Basic},
	{Name: "/", Symbol: "÷", Description: "Divides the first number by the second", Usage: "a / b", Example: "12 / 3 = 4", Category: Basic},

	{Name: "sin", Symbol: "sin", Description: "Sine of an angle", Usage: "sin(angle)", Example: "sin(30) = 0.5 (deg)", Category: Trigonometric},
	{Name: "cos", Symbol: "cos", Description: "Cosine of an angle", Usage: "cos(angle)", Example: "cos(60) = 0.5 (deg)", Category: Trigonometric},
	{Name: "tan", Symbol: "tan", Description: "Tangent of an angle, undefined at odd multiples of 90°", Usage: "tan(angle)", Example: "tan(45) = 1 (deg)", Category: Trigonometric},
	{Name: "asin", Symbol: "sin⁻¹", Description: "Angle whose sine is the argument, argument in [-1, 1]", Usage: "asin(value)", Example: "asin(0.5) = 30 (deg)", Category: Trigonometric},
	{Name: "acos", Symbol: "cos⁻¹", Description: "Angle whose cosine is the argument, argument in [-1, 1]", Usage: "acos(value)", Example: "acos(0.5) = 60 (deg)", Category: Trigonometric},
	{Name: "atan", Symbol: "tan⁻¹", Description: "Angle whose tangent is the argument", Usage: "atan(value)", Example: "atan(1) = 45 (deg)", Category: Trigonometric},

	{Name: "ln", Symbol: "ln", Description: "Logarithm to base e, argument must be positive", Usage: "ln(value)", Example: "ln(e) = 1", Category: Logarithmic},
	{Name: "log", Symbol: "log", Description: "Logarithm to base 10, argument must be positive", Usage: "log(value)", Example: "log(100) = 2", Category: Logarithmic},
	{Name: "log2", Symbol: "log₂", Description: "Logarithm to base 2, argument must be positive", Usage: "log2(value)", Example: "log2(8) = 3", Category: Logarithmic},

	{Name: "exp", Symbol: "eˣ", Description: "e raised to the argument", Usage: "exp(x)", Example: "exp(1) = 2.7183", Category: Exponential},
	{Name: "pow10", Symbol: "10ˣ", Description: "10 raised to the argument", Usage: "pow10(x)", Example: "pow10(2) = 100", Category: Exponential},
	{Name: "^", Symbol: "xʸ", Description: "x raised to the power y, right associative", Usage: "x ^ y", Example: "2 ^ 3 = 8", Category: Exponential},
	{Name: "sqrt", Symbol: "√", Description: "Square root, argument must not be negative", Usage: "sqrt(x)", Example: "sqrt(9) = 3", Category: Exponential},
	{Name: "cbrt", Symbol: "∛", Description: "Cube root, defined for negative arguments", Usage: "cbrt(x)", Example: "cbrt(-27) = -3", Category: Exponential},

	{Name: "π", Symbol: "π", Description: "Ratio of a circle's circumference to its diameter (3.14159...), also typed as pi", Usage: "π", Example: "2 * π = 6.2832", Category: Constants},
	{Name: "e", Symbol: "e", Description: "Euler's number (2.71828...)", Usage: "e", Example: "ln(e) = 1", Category: Constants},

	{Name: "abs", Symbol: "|x|", Description: "Absolute value", Usage: "abs(x)", Example: "abs(-5) = 5", Category: Utility},
}

var tips = []Tip{
	{Title: "Order of operations", Content: "Parentheses first, then powers, then * and /, then + and -.", Level: Beginner, Daily: true},
	{Title: "Angle unit", Content: "Check the angle unit before using trigonometric functions. Toggle it with :deg and :rad.", Level: Beginner},
	{Title: "Decimal places", Content: "Results are rounded to the number of decimal places set in the settings.", Level: Intermediate},
	{Title: "Large numbers", Content: "Very large and very small results are shown in scientific notation, e.g. 1.23e15.", Level: Intermediate},
	{Title: "Inverse trigonometry", Content: "asin and acos only accept values between -1 and 1.", Level: Intermediate},
	{Title: "Logarithms", Content: "ln, log and log2 only accept positive values.", Level: Intermediate},
	{Title: "Negative numbers", Content: "A minus sign at the start or right after ( or an operator negates the number that follows.", Level: Beginner},
	{Title: "Reuse results", Content: "Search the history and reuse any earlier expression.", Level: Intermediate},
	{Title: "Parentheses", Content: "Use parentheses to make the evaluation order of long expressions explicit.", Level: Advanced},
}

// Functions returns a copy of every catalogue entry.
func Functions() []FunctionDescription {
	return slices.Clone(functions)
}

func ByCategory(c Category) []FunctionDescription {
	var out []FunctionDescription
	for _, f := range functions {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

func Lookup(name string) (FunctionDescription, bool) {
	i := slices.IndexFunc(functions, func(f FunctionDescription) bool { return f.Name == name })
	if i < 0 {
		return FunctionDescription{}, false
	}
	return functions[i], true
}

func Tips() []Tip {
	return slices.Clone(tips)
}

// DailyTip picks a tip for the given day number, preferring daily tips.
func DailyTip(day int) Tip {
	var daily []Tip
	for _, t := range tips {
		if t.Daily {
			daily = append(daily, t)
		}
	}
	if len(daily) == 0 {
		daily = tips
	}
	if day < 0 {
		day = -day
	}
	return daily[day%len(daily)]
}
