package token

import (
	"strconv"
	"unicode"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
)

type ExprTokenizer struct {
	implicitMul bool
}

type Option func(*ExprTokenizer)

// WithImplicitMultiplication makes the tokenizer insert '*' between adjacent
// operands, e.g. "2π" becomes "2*π" and "3sin(30)" becomes "3*sin(30)".
func WithImplicitMultiplication(enabled bool) Option {
	return func(t *ExprTokenizer) {
		t.implicitMul = enabled
	}
}

func NewExprTokenizer(opts ...Option) *ExprTokenizer {
	t := &ExprTokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// scanner holds per-call state so one ExprTokenizer can serve concurrent callers.
type scanner struct {
	input []rune
	pos   int
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `-sin(30) + 2^3`
//
// A '+' or '-' at the start of the input or right after '(' is a sign, and is
// folded into the explicit "0-x" form, so the token stream never carries a
// unary operator.
func (t *ExprTokenizer) Tokenize(input string) ([]Token, error) {
	s := &scanner{input: []rune(input)}

	var tokens []Token

	for s.skipWhitespace(); s.pos < len(s.input); s.skipWhitespace() {
		ch := s.input[s.pos]
		switch {
		case isDigit(ch) || ch == '.':
			tok, err := s.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case unicode.IsLetter(ch):
			tok, err := s.readIdent()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case ch == '(':
			tokens = append(tokens, LeftParen())
			s.pos++
		case ch == ')':
			tokens = append(tokens, RightParen())
			s.pos++
		default:
			op, ok := ParseOperator(ch)
			if !ok {
				return nil, calcerr.ErrInvalidExpression
			}
			if (op == Add || op == Sub) && atSignPosition(tokens) {
				tokens = append(tokens, Number(0))
			}
			tokens = append(tokens, Op(op))
			s.pos++
		}
	}

	if t.implicitMul {
		tokens = insertImplicitMul(tokens)
	}

	return tokens, nil
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.input) && unicode.IsSpace(s.input[s.pos]) {
		s.pos++
	}
}

func (s *scanner) readNumber() (Token, error) {
	start := s.pos
	seenDot := false
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if ch == '.' {
			if seenDot {
				return Token{}, calcerr.ErrInvalidExpression
			}
			seenDot = true
		} else if !isDigit(ch) {
			break
		}
		s.pos++
	}

	v, err := strconv.ParseFloat(string(s.input[start:s.pos]), 64)
	if err != nil {
		return Token{}, calcerr.ErrInvalidExpression
	}
	return Number(v), nil
}

// readIdent reads a letter followed by letters or digits ("log2", "pow10").
func (s *scanner) readIdent() (Token, error) {
	start := s.pos
	for s.pos < len(s.input) && (unicode.IsLetter(s.input[s.pos]) || isDigit(s.input[s.pos])) {
		s.pos++
	}

	word := string(s.input[start:s.pos])

	if c, ok := ParseConstant(word); ok {
		return Const(c), nil
	}
	if fn, ok := ParseFunction(word); ok {
		return Func(fn), nil
	}
	return Token{}, calcerr.ErrUnknownFunction
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func atSignPosition(tokens []Token) bool {
	return len(tokens) == 0 || tokens[len(tokens)-1].Type == LPAREN
}

func insertImplicitMul(tokens []Token) []Token {
	if len(tokens) < 2 {
		return tokens
	}

	out := make([]Token, 0, len(tokens)+len(tokens)/2)
	out = append(out, tokens[0])
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		leftDone := prev.IsOperand() || prev.Type == RPAREN
		rightStarts := cur.IsOperand() || cur.Type == FUNCTION || cur.Type == LPAREN
		if leftDone && rightStarts {
			out = append(out, Op(Mul))
		}
		out = append(out, cur)
	}
	return out
}

// Validate checks the structural rules a token stream must satisfy before
// conversion. It does not modify tokens.
func (t *ExprTokenizer) Validate(tokens []Token) error {
	if len(tokens) == 0 {
		return calcerr.ErrInvalidExpression
	}

	depth := 0
	last := len(tokens) - 1

	for i, tok := range tokens {
		switch tok.Type {
		case NUMBER, CONSTANT:
			if i > 0 && tokens[i-1].IsOperand() {
				return calcerr.ErrInvalidExpression
			}
		case OPERATOR:
			if i == 0 && tok.Op != Add && tok.Op != Sub {
				return calcerr.ErrInvalidExpression
			}
			if i > 0 && tokens[i-1].Type == OPERATOR {
				return calcerr.ErrInvalidExpression
			}
			if i == last {
				return calcerr.ErrMissingOperand
			}
		case FUNCTION:
			if i == last || tokens[i+1].Type != LPAREN {
				return calcerr.ErrInvalidExpression
			}
		case LPAREN:
			depth++
			if i < last && tokens[i+1].Type == RPAREN {
				return calcerr.ErrInvalidExpression
			}
		case RPAREN:
			depth--
			if depth < 0 {
				return calcerr.ErrInvalidParentheses
			}
		default:
			return calcerr.ErrInvalidExpression
		}
	}

	if depth != 0 {
		return calcerr.ErrInvalidParentheses
	}

	return nil
}
