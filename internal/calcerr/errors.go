// Package calcerr defines the closed set of failures an expression
// evaluation can end in. Errors carry no payload beyond their kind, so
// callers compare them with errors.Is against the exported sentinels.
package calcerr

import "errors"

type Error int

const (
	ErrInvalidExpression Error = iota + 1
	ErrDivisionByZero
	ErrDomain
	ErrOverflow
	ErrUnderflow
	ErrUnknownFunction
	ErrMissingOperand
	ErrInvalidParentheses
)

// All lists every kind in declaration order.
func All() []Error {
	return []Error{
		ErrInvalidExpression,
		ErrDivisionByZero,
		ErrDomain,
		ErrOverflow,
		ErrUnderflow,
		ErrUnknownFunction,
		ErrMissingOperand,
		ErrInvalidParentheses,
	}
}

func (e Error) Error() string {
	switch e {
	case ErrInvalidExpression:
		return "invalid expression"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrDomain:
		return "argument outside function domain"
	case ErrOverflow:
		return "result too large"
	case ErrUnderflow:
		return "result too small"
	case ErrUnknownFunction:
		return "unknown function"
	case ErrMissingOperand:
		return "missing operand"
	case ErrInvalidParentheses:
		return "invalid parentheses"
	default:
		return "unknown calculator error"
	}
}

// Code is the stable identifier used in API payloads and message catalogs.
func (e Error) Code() string {
	switch e {
	case ErrInvalidExpression:
		return "invalid_expression"
	case ErrDivisionByZero:
		return "division_by_zero"
	case ErrDomain:
		return "domain_error"
	case ErrOverflow:
		return "overflow"
	case ErrUnderflow:
		return "underflow"
	case ErrUnknownFunction:
		return "unknown_function"
	case ErrMissingOperand:
		return "missing_operand"
	case ErrInvalidParentheses:
		return "invalid_parentheses"
	default:
		return "unknown"
	}
}

// Kind extracts the calculator error from err's chain.
func Kind(err error) (Error, bool) {
	var ce Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return 0, false
}
