// Package calc turns expression text into a number: it normalizes the input,
// tokenizes it, reorders the tokens into postfix form and evaluates them.
package calc

import (
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
	"github.com/DjordjeVuckovic/sci-calc/internal/mathfn"
	"github.com/DjordjeVuckovic/sci-calc/internal/token"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

type Engine interface {
	Calculate(expression string, unit angle.Unit) (float64, error)
	ValidateExpression(expression string) bool
	FormatResult(value float64) string
	ValidateParentheses(expression string) bool
}

// Calculator is the only Engine implementation. It holds configuration
// only, so a single instance can be shared between goroutines.
type Calculator struct {
	tokenizer      *token.ExprTokenizer
	implicitMul    bool
	fractionDigits int
	scientific     bool
}

var _ Engine = (*Calculator)(nil)

type Option func(*Calculator)

// WithFractionDigits sets how many fraction digits fixed-point results keep.
// Values outside 0..10 are clamped.
func WithFractionDigits(n int) Option {
	return func(c *Calculator) {
		c.fractionDigits = clampDigits(n)
	}
}

func WithImplicitMultiplication(enabled bool) Option {
	return func(c *Calculator) {
		c.implicitMul = enabled
	}
}

// WithScientificNotation forces scientific output for every non-zero finite value.
func WithScientificNotation(enabled bool) Option {
	return func(c *Calculator) {
		c.scientific = enabled
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{fractionDigits: DefaultFractionDigits}
	for _, opt := range opts {
		opt(c)
	}
	c.tokenizer = token.NewExprTokenizer(token.WithImplicitMultiplication(c.implicitMul))
	return c
}

// Calculate evaluates expression with trigonometric arguments read in unit.
// Failures are calcerr kinds.
func (c *Calculator) Calculate(expression string, unit angle.Unit) (float64, error) {
	postfix, err := c.compile(expression)
	if err != nil {
		return 0, err
	}

	result, err := Evaluate(postfix, unit)
	if err != nil {
		return 0, err
	}
	return mathfn.Validate(result)
}

// ValidateExpression reports whether expression gets through tokenizing and
// postfix conversion. It does not evaluate, so "1/0" is valid.
func (c *Calculator) ValidateExpression(expression string) bool {
	postfix, err := c.compile(expression)
	return err == nil && len(postfix) > 0
}

// ValidateParentheses checks bracket balance on the raw text.
func (c *Calculator) ValidateParentheses(expression string) bool {
	return balanced(expression)
}

func (c *Calculator) compile(expression string) ([]token.Token, error) {
	normalized := normalize(expression)
	if normalized == "" {
		return nil, calcerr.ErrInvalidExpression
	}
	if !balanced(normalized) {
		return nil, calcerr.ErrInvalidParentheses
	}

	tokens, err := c.tokenizer.Tokenize(normalized)
	if err != nil {
		return nil, err
	}
	if err := c.tokenizer.Validate(tokens); err != nil {
		return nil, err
	}
	return ToPostfix(tokens)
}

var symbolReplacer = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
)

// normalize drops whitespace and maps display symbols to their ASCII operators.
func normalize(expression string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expression)
	return symbolReplacer.Replace(stripped)
}

func balanced(expression string) bool {
	depth := 0
	for _, r := range expression {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
