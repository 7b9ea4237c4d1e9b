package calc

import (
	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
	"github.com/DjordjeVuckovic/sci-calc/internal/token"
)

// ToPostfix reorders an infix token stream into reverse polish notation
// using the shunting-yard algorithm.
//
// When two operators share a precedence level, the operator on the stack is
// popped only if the incoming operator is left-associative, which makes '^'
// right-associative: 2^3^2 is 2^(3^2).
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(tokens))
	stack := make([]token.Token, 0, len(tokens)/2)

	for _, tok := range tokens {
		switch tok.Type {
		case token.NUMBER, token.CONSTANT:
			output = append(output, tok)

		case token.FUNCTION, token.LPAREN:
			stack = append(stack, tok)

		case token.RPAREN:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Is(token.LPAREN) {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, calcerr.ErrInvalidParentheses
			}
			if n := len(stack); n > 0 && stack[n-1].Is(token.FUNCTION) {
				output = append(output, stack[n-1])
				stack = stack[:n-1]
			}

		case token.OPERATOR:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !shouldPop(top, tok.Op) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		default:
			return nil, calcerr.ErrInvalidExpression
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Is(token.LPAREN) {
			return nil, calcerr.ErrInvalidParentheses
		}
		output = append(output, top)
	}

	return output, nil
}

func shouldPop(top token.Token, incoming token.Operator) bool {
	switch top.Type {
	case token.FUNCTION:
		return true
	case token.OPERATOR:
		tp, ip := top.Op.Precedence(), incoming.Precedence()
		return tp > ip || (tp == ip && incoming.LeftAssociative())
	default:
		return false
	}
}
