package calc

import (
	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
	"github.com/DjordjeVuckovic/sci-calc/internal/mathfn"
	"github.com/DjordjeVuckovic/sci-calc/internal/token"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

// Evaluate runs a postfix token stream on a value stack. Trigonometric
// functions interpret their argument in unit.
func Evaluate(postfix []token.Token, unit angle.Unit) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, tok := range postfix {
		switch tok.Type {
		case token.NUMBER:
			stack = append(stack, tok.Value)

		case token.CONSTANT:
			stack = append(stack, tok.Const.Value())

		case token.OPERATOR:
			if len(stack) < 2 {
				return 0, calcerr.ErrMissingOperand
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			op, ok := mathfn.Binary(tok.Op)
			if !ok {
				return 0, calcerr.ErrInvalidExpression
			}
			v, err := op(left, right)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		case token.FUNCTION:
			if len(stack) < 1 {
				return 0, calcerr.ErrMissingOperand
			}
			arg := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			fn, ok := mathfn.Unary(tok.Func)
			if !ok {
				return 0, calcerr.ErrUnknownFunction
			}
			v, err := fn(arg, unit)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		default:
			return 0, calcerr.ErrInvalidExpression
		}
	}

	if len(stack) != 1 {
		return 0, calcerr.ErrInvalidExpression
	}
	return stack[0], nil
}
