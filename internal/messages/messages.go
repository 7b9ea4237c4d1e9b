package messages

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
)

type Locale string

const (
	English Locale = "en"
	Korean  Locale = "ko"
)

func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case "", English:
		return English, nil
	case Korean:
		return Korean, nil
	default:
		return "", fmt.Errorf("unsupported locale %q", s)
	}
}

type ID string

const (
	InvalidExpression  ID = "invalid_expression"
	DivisionByZero     ID = "division_by_zero"
	DomainError        ID = "domain_error"
	Overflow           ID = "overflow"
	Underflow          ID = "underflow"
	UnknownFunction    ID = "unknown_function"
	MissingOperand     ID = "missing_operand"
	InvalidParentheses ID = "invalid_parentheses"
	CalculationFailed  ID = "calculation_failed"

	Welcome        ID = "welcome"
	AngleUnitSet   ID = "angle_unit_set"
	HistoryEmpty   ID = "history_empty"
	HistoryCleared ID = "history_cleared"
	UnknownCommand ID = "unknown_command"
	Goodbye        ID = "goodbye"
	DailyTip       ID = "daily_tip"
	FirstLaunch    ID = "first_launch"
	Recalled       ID = "recalled"
	NoSuchEntry    ID = "no_such_entry"
)

var en = map[ID]string{
	InvalidExpression:  "Invalid expression",
	DivisionByZero:     "Cannot divide by zero",
	DomainError:        "Value is outside the function's domain",
	Overflow:           "Result is too large",
	Underflow:          "Result is too small",
	UnknownFunction:    "Unknown function",
	MissingOperand:     "Missing operand",
	InvalidParentheses: "Parentheses are not balanced",
	CalculationFailed:  "Calculation error",

	Welcome:        "Scientific calculator. Angle unit: %s. Type :help for commands.",
	AngleUnitSet:   "Angle unit set to %s",
	HistoryEmpty:   "No calculations yet",
	HistoryCleared: "History cleared",
	UnknownCommand: "Unknown command %s. Type :help for commands.",
	Goodbye:        "Bye",
	DailyTip:       "Tip: %s. %s",
	FirstLaunch:    "Type :tips to see everything the calculator can do.",
	Recalled:       "Recalled: %s",
	NoSuchEntry:    "No history entry %d",
}

var ko = map[ID]string{
	InvalidExpression:  "잘못된 수식입니다",
	DivisionByZero:     "0으로 나눌 수 없습니다",
	DomainError:        "정의역을 벗어났습니다",
	Overflow:           "결과가 너무 큽니다",
	Underflow:          "결과가 너무 작습니다",
	UnknownFunction:    "알 수 없는 함수입니다",
	MissingOperand:     "피연산자가 누락되었습니다",
	InvalidParentheses: "괄호가 올바르지 않습니다",
	CalculationFailed:  "계산 오류",

	Welcome:        "공학용 계산기. 각도 단위: %s. 명령어는 :help 를 입력하세요.",
	AngleUnitSet:   "각도 단위가 %s(으)로 설정되었습니다",
	HistoryEmpty:   "계산 기록이 없습니다",
	HistoryCleared: "계산 기록이 삭제되었습니다",
	UnknownCommand: "알 수 없는 명령어 %s. 명령어는 :help 를 입력하세요.",
	Goodbye:        "안녕히 가세요",
	DailyTip:       "팁: %s. %s",
	FirstLaunch:    ":tips 를 입력하면 계산기 사용법을 볼 수 있습니다.",
	Recalled:       "불러온 수식: %s",
	NoSuchEntry:    "%d번째 계산 기록이 없습니다",
}

var catalogs = map[Locale]map[ID]string{
	English: en,
	Korean:  ko,
}

// T returns the text for id in locale, formatted with args.
// Unknown locales fall back to English.
func T(locale Locale, id ID, args ...any) string {
	catalog, ok := catalogs[locale]
	if !ok {
		catalog = en
	}

	reply, ok := catalog[id]
	if !ok {
		slog.Warn("missing message text", "locale", locale, "id", id)
		return catalog[CalculationFailed]
	}

	if len(args) == 0 {
		return reply
	}

	return fmt.Sprintf(reply, args...)
}

// ForError returns the user-facing message for a calculator error.
// Errors outside the calcerr taxonomy get the generic failure text.
func ForError(locale Locale, err error) string {
	kind, ok := calcerr.Kind(err)
	if !ok {
		return T(locale, CalculationFailed)
	}
	return T(locale, ID(kind.Code()))
}
