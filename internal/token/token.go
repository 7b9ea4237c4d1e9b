package token

import (
	"math"
	"strconv"
)

type Type int

const (
	NUMBER Type = iota
	OPERATOR
	FUNCTION
	LPAREN
	RPAREN
	CONSTANT
)

func (t Type) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	case FUNCTION:
		return "FUNCTION"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case CONSTANT:
		return "CONSTANT"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit of an arithmetic expression.
// Only the payload field matching Type is meaningful.
type Token struct {
	Type  Type
	Value float64
	Op    Operator
	Func  Function
	Const Constant
}

func Number(v float64) Token     { return Token{Type: NUMBER, Value: v} }
func Op(op Operator) Token       { return Token{Type: OPERATOR, Op: op} }
func Func(fn Function) Token     { return Token{Type: FUNCTION, Func: fn} }
func Const(c Constant) Token     { return Token{Type: CONSTANT, Const: c} }
func LeftParen() Token           { return Token{Type: LPAREN} }
func RightParen() Token          { return Token{Type: RPAREN} }
func (t Token) Is(typ Type) bool { return t.Type == typ }
func (t Token) IsOperand() bool  { return t.Type == NUMBER || t.Type == CONSTANT }

// String renders the token the way it would appear in an expression.
func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case OPERATOR:
		return t.Op.String()
	case FUNCTION:
		return t.Func.String()
	case CONSTANT:
		return t.Const.String()
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return "?"
	}
}

// Operator is a binary infix operator.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Pow
)

func ParseOperator(r rune) (Operator, bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Sub, true
	case '*':
		return Mul, true
	case '/':
		return Div, true
	case '^':
		return Pow, true
	default:
		return 0, false
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	default:
		return "?"
	}
}

// Precedence returns the binding strength; higher binds tighter.
func (o Operator) Precedence() int {
	switch o {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case Pow:
		return 3
	default:
		return 0
	}
}

func (o Operator) LeftAssociative() bool {
	switch o {
	case Add, Sub, Mul, Div:
		return true
	case Pow:
		return false
	default:
		return true
	}
}

// Function is a unary function applied to a parenthesised argument.
type Function int

const (
	Sin Function = iota
	Cos
	Tan
	Asin
	Acos
	Atan
	Ln
	Log
	Log2
	Exp
	Sqrt
	Abs
	Cbrt
	Pow10
)

var functionNames = map[Function]string{
	Sin:   "sin",
	Cos:   "cos",
	Tan:   "tan",
	Asin:  "asin",
	Acos:  "acos",
	Atan:  "atan",
	Ln:    "ln",
	Log:   "log",
	Log2:  "log2",
	Exp:   "exp",
	Sqrt:  "sqrt",
	Abs:   "abs",
	Cbrt:  "cbrt",
	Pow10: "pow10",
}

var functionsByName = func() map[string]Function {
	m := make(map[string]Function, len(functionNames))
	for fn, name := range functionNames {
		m[name] = fn
	}
	return m
}()

func ParseFunction(name string) (Function, bool) {
	fn, ok := functionsByName[name]
	return fn, ok
}

// Functions returns every supported function in declaration order.
func Functions() []Function {
	out := make([]Function, 0, len(functionNames))
	for fn := Sin; fn <= Pow10; fn++ {
		out = append(out, fn)
	}
	return out
}

func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return "?"
}

type Constant int

const (
	Pi Constant = iota
	E
)

// ParseConstant accepts "π", its ASCII alias "pi", and "e".
func ParseConstant(name string) (Constant, bool) {
	switch name {
	case "π", "pi":
		return Pi, true
	case "e":
		return E, true
	default:
		return 0, false
	}
}

func (c Constant) String() string {
	switch c {
	case Pi:
		return "π"
	case E:
		return "e"
	default:
		return "?"
	}
}

func (c Constant) Value() float64 {
	switch c {
	case Pi:
		return math.Pi
	case E:
		return math.E
	default:
		return math.NaN()
	}
}
