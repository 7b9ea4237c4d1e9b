package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

// HistoryEntry is one recorded calculation. Exactly one of Result and
// ErrorMessage is set.
type HistoryEntry struct {
	ID           uuid.UUID  `json:"id"`
	Expression   string     `json:"expression"`
	Result       *float64   `json:"result,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	AngleUnit    angle.Unit `json:"angle_unit"`
	Timestamp    time.Time  `json:"timestamp"`
}

func NewHistoryResult(expression string, result float64, unit angle.Unit) HistoryEntry {
	return HistoryEntry{
		ID:         uuid.New(),
		Expression: strings.TrimSpace(expression),
		Result:     &result,
		AngleUnit:  unit,
		Timestamp:  time.Now().UTC(),
	}
}

func NewHistoryError(expression, message string, unit angle.Unit) HistoryEntry {
	return HistoryEntry{
		ID:           uuid.New(),
		Expression:   strings.TrimSpace(expression),
		ErrorMessage: &message,
		AngleUnit:    unit,
		Timestamp:    time.Now().UTC(),
	}
}

func (h HistoryEntry) HasError() bool {
	return h.ErrorMessage != nil
}

func (h HistoryEntry) Valid() bool {
	if h.Expression == "" {
		return false
	}
	return (h.Result == nil) != (h.ErrorMessage == nil)
}

// FormattedResult renders the outcome for history lists: whole numbers
// without decimals, very large or small values in scientific notation,
// everything else with four significant digits.
func (h HistoryEntry) FormattedResult() string {
	if h.ErrorMessage != nil {
		return *h.ErrorMessage
	}
	if h.Result == nil {
		return "Error"
	}

	v := *h.Result
	abs := math.Abs(v)

	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case math.IsNaN(v):
		return "Error"
	case v == math.Floor(v) && abs < 1e15:
		return fmt.Sprintf("%.0f", v)
	case abs >= 1e10 || (v != 0 && abs < 1e-4):
		return fmt.Sprintf("%.4e", v)
	default:
		return fmt.Sprintf("%.4g", v)
	}
}

// ReusableExpression is the text offered when a history entry is recalled.
func (h HistoryEntry) ReusableExpression() string {
	if h.HasError() {
		return h.Expression
	}
	return h.Expression + " = " + h.FormattedResult()
}
