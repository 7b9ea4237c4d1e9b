package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
	"github.com/DjordjeVuckovic/sci-calc/internal/token"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

func render(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func TestToPostfix(t *testing.T) {
	tokenizer := token.NewExprTokenizer()

	tests := []struct {
		input string
		want  string
	}{
		{input: "2+3*4", want: "2 3 4 * +"},
		{input: "(2+3)*4", want: "2 3 + 4 *"},
		{input: "2-3-4", want: "2 3 - 4 -"},
		{input: "8/4/2", want: "8 4 / 2 /"},
		{input: "2^3^2", want: "2 3 2 ^ ^"},
		{input: "2*3^2", want: "2 3 2 ^ *"},
		{input: "sin(30)+1", want: "30 sin 1 +"},
		{input: "2*sqrt(16)", want: "2 16 sqrt *"},
		{input: "sqrt(abs(0-16))", want: "0 16 - abs sqrt"},
		{input: "-5+2", want: "0 5 - 2 +"},
		{input: "π*2", want: "π 2 *"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := tokenizer.Tokenize(tt.input)
			require.NoError(t, err)

			got, err := ToPostfix(tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(got))
		})
	}
}

func TestToPostfix_UnbalancedParentheses(t *testing.T) {
	_, err := ToPostfix([]token.Token{token.Number(1), token.RightParen()})
	assert.ErrorIs(t, err, calcerr.ErrInvalidParentheses)

	_, err = ToPostfix([]token.Token{token.LeftParen(), token.Number(1)})
	assert.ErrorIs(t, err, calcerr.ErrInvalidParentheses)
}

func TestEvaluate_StackErrors(t *testing.T) {
	tests := []struct {
		name    string
		postfix []token.Token
		wantErr error
	}{
		{name: "empty", postfix: nil, wantErr: calcerr.ErrInvalidExpression},
		{name: "lonely operator", postfix: []token.Token{token.Number(1), token.Op(token.Add)}, wantErr: calcerr.ErrMissingOperand},
		{name: "lonely function", postfix: []token.Token{token.Func(token.Sin)}, wantErr: calcerr.ErrMissingOperand},
		{name: "leftover operands", postfix: []token.Token{token.Number(1), token.Number(2)}, wantErr: calcerr.ErrInvalidExpression},
		{name: "parenthesis", postfix: []token.Token{token.Number(1), token.LeftParen()}, wantErr: calcerr.ErrInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.postfix, angle.Degree)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEvaluate_OperandOrder(t *testing.T) {
	got, err := Evaluate([]token.Token{token.Number(10), token.Number(4), token.Op(token.Sub)}, angle.Radian)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	got, err = Evaluate([]token.Token{token.Number(2), token.Number(3), token.Op(token.Pow)}, angle.Radian)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)

	got, err = Evaluate([]token.Token{token.Const(token.E)}, angle.Radian)
	require.NoError(t, err)
	assert.InDelta(t, 2.718281828, got, 1e-9)
}
