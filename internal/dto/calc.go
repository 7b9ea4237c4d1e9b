package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

type CalculateRequest struct {
	Expression string `json:"expression" validate:"required"`
	// AngleUnit overrides the saved unit for this call ("deg" or "rad").
	AngleUnit *angle.Unit `json:"angle_unit,omitempty"`
}

type CalculateResponse struct {
	Expression string     `json:"expression"`
	Result     float64    `json:"result"`
	Formatted  string     `json:"formatted"`
	AngleUnit  angle.Unit `json:"angle_unit"`
	HistoryID  *uuid.UUID `json:"history_id,omitempty"`
}

type ValidateRequest struct {
	Expression string `json:"expression"`
}

type ValidateResponse struct {
	Valid               bool `json:"valid"`
	BalancedParentheses bool `json:"balanced_parentheses"`
}

type FormatResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

type HistoryEntry struct {
	ID           uuid.UUID  `json:"id"`
	Expression   string     `json:"expression"`
	Result       *float64   `json:"result,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	AngleUnit    angle.Unit `json:"angle_unit"`
	Timestamp    time.Time  `json:"timestamp"`
	Formatted    string     `json:"formatted,omitempty"`
}

func NewHistoryEntry(e domain.HistoryEntry) HistoryEntry {
	return HistoryEntry{
		ID:           e.ID,
		Expression:   e.Expression,
		Result:       e.Result,
		ErrorMessage: e.ErrorMessage,
		AngleUnit:    e.AngleUnit,
		Timestamp:    e.Timestamp,
		Formatted:    e.FormattedResult(),
	}
}

func NewHistoryEntries(entries []domain.HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = NewHistoryEntry(e)
	}
	return out
}

// ToDomain drops the display-only Formatted field.
func (h HistoryEntry) ToDomain() domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:           h.ID,
		Expression:   h.Expression,
		Result:       h.Result,
		ErrorMessage: h.ErrorMessage,
		AngleUnit:    h.AngleUnit,
		Timestamp:    h.Timestamp.UTC(),
	}
}

type ImportHistoryRequest struct {
	Entries []HistoryEntry `json:"entries"`
}

type ImportHistoryResponse struct {
	Imported int `json:"imported"`
}
