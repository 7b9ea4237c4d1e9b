// Package service combines the expression engine with the user's settings
// and the calculation history.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sci-calc/internal/apperr"
	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
	"github.com/DjordjeVuckovic/sci-calc/internal/catalog"
	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/messages"
	"github.com/DjordjeVuckovic/sci-calc/internal/settings"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

// Outcome is the result of one calculation. Err is a calcerr kind when the
// expression could not be evaluated; Message is then its localized text.
type Outcome struct {
	Expression string
	Result     float64
	Formatted  string
	AngleUnit  angle.Unit
	Err        error
	Message    string
	// Entry is the recorded history entry, nil when auto-save is off.
	Entry *domain.HistoryEntry
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

type Validation struct {
	Valid               bool `json:"valid"`
	BalancedParentheses bool `json:"balanced_parentheses"`
}

type Calculator struct {
	engine   calc.Engine
	history  storage.HistoryStore
	settings settings.Store
	locale   messages.Locale
}

func NewCalculator(engine calc.Engine, history storage.HistoryStore, prefs settings.Store, locale messages.Locale) *Calculator {
	return &Calculator{
		engine:   engine,
		history:  history,
		settings: prefs,
		locale:   locale,
	}
}

func (c *Calculator) Locale() messages.Locale {
	return c.locale
}

// Calculate evaluates expression in unit, or in the saved angle unit when
// unit is nil. The returned error is reserved for settings and history
// failures; evaluation failures are reported in the Outcome.
func (c *Calculator) Calculate(ctx context.Context, expression string, unit *angle.Unit) (Outcome, error) {
	s, err := c.settings.Load(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to load settings: %w", err)
	}

	u := s.AngleUnit
	if unit != nil {
		if err := unit.Validate(); err != nil {
			return Outcome{}, apperr.NewValidationWrap("invalid angle unit", err)
		}
		u = *unit
	}

	out := Outcome{Expression: expression, AngleUnit: u}

	result, calcErr := c.engine.Calculate(expression, u)
	if calcErr != nil {
		out.Err = calcErr
		out.Message = messages.ForError(c.locale, calcErr)
		out.Formatted = out.Message
	} else {
		out.Result = result
		out.Formatted = calc.FormatValue(result, s.DecimalPlaces, s.UseScientificNotation)
	}

	if !s.AutoSaveHistory {
		return out, nil
	}

	var entry domain.HistoryEntry
	if calcErr != nil {
		entry = domain.NewHistoryError(expression, out.Message, u)
	} else {
		entry = domain.NewHistoryResult(expression, result, u)
	}
	if !entry.Valid() {
		// blank input is not worth remembering
		return out, nil
	}

	if err := c.history.Save(ctx, entry); err != nil {
		return out, fmt.Errorf("failed to save history: %w", err)
	}
	out.Entry = &entry

	if _, err := c.history.Prune(ctx, s.MaxHistoryCount); err != nil {
		slog.Warn("failed to prune history", "error", err, "keep", s.MaxHistoryCount)
	}
	return out, nil
}

func (c *Calculator) Validate(expression string) Validation {
	return Validation{
		Valid:               c.engine.ValidateExpression(expression),
		BalancedParentheses: c.engine.ValidateParentheses(expression),
	}
}

// Format renders value with the saved decimal places and notation.
func (c *Calculator) Format(ctx context.Context, value float64) (string, error) {
	s, err := c.settings.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	return calc.FormatValue(value, s.DecimalPlaces, s.UseScientificNotation), nil
}

func (c *Calculator) Settings(ctx context.Context) (domain.Settings, error) {
	return c.settings.Load(ctx)
}

// UpdateSettings stores s and trims the history when the new limit is lower.
func (c *Calculator) UpdateSettings(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	if !s.Valid() {
		return domain.Settings{}, apperr.NewValidation(fmt.Sprintf(
			"decimal places must be in %d..%d, max history count in %d..%d and angle unit deg or rad",
			domain.MinDecimalPlaces, domain.MaxDecimalPlaces, domain.MinHistoryCount, domain.MaxHistoryCount))
	}
	if err := c.settings.Save(ctx, s); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	if _, err := c.history.Prune(ctx, s.MaxHistoryCount); err != nil {
		slog.Warn("failed to prune history", "error", err, "keep", s.MaxHistoryCount)
	}
	return s, nil
}

func (c *Calculator) ToggleAngleUnit(ctx context.Context) (domain.Settings, error) {
	s, err := c.settings.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	s.ToggleAngleUnit()
	if err := c.settings.Save(ctx, s); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return s, nil
}

func (c *Calculator) SetAngleUnit(ctx context.Context, unit angle.Unit) (domain.Settings, error) {
	if err := unit.Validate(); err != nil {
		return domain.Settings{}, apperr.NewValidationWrap("invalid angle unit", err)
	}
	s, err := c.settings.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	s.AngleUnit = unit
	if err := c.settings.Save(ctx, s); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return s, nil
}

// CompleteFirstLaunch clears the first launch flag and reports whether it
// was set.
func (c *Calculator) CompleteFirstLaunch(ctx context.Context) (bool, error) {
	s, err := c.settings.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}
	if !s.FirstLaunch {
		return false, nil
	}
	s.FirstLaunch = false
	if err := c.settings.Save(ctx, s); err != nil {
		return false, fmt.Errorf("failed to save settings: %w", err)
	}
	return true, nil
}

// DailyTip returns the tip of now's day when tips are on and none was shown
// that day yet. Showing it records the date in the settings.
func (c *Calculator) DailyTip(ctx context.Context, now time.Time) (catalog.Tip, bool, error) {
	s, err := c.settings.Load(ctx)
	if err != nil {
		return catalog.Tip{}, false, fmt.Errorf("failed to load settings: %w", err)
	}

	today := now.Format(time.DateOnly)
	if !s.ShowTips || s.LastDailyTipDate == today {
		return catalog.Tip{}, false, nil
	}

	s.LastDailyTipDate = today
	if err := c.settings.Save(ctx, s); err != nil {
		return catalog.Tip{}, false, fmt.Errorf("failed to save settings: %w", err)
	}
	return catalog.DailyTip(now.YearDay()), true, nil
}

func (c *Calculator) RecentHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	return c.history.Recent(ctx, limit)
}

func (c *Calculator) History(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.HistoryEntry], error) {
	return c.history.List(ctx, page)
}

func (c *Calculator) SearchHistory(ctx context.Context, text string, limit int) ([]domain.HistoryEntry, error) {
	return c.history.Search(ctx, text, limit)
}

func (c *Calculator) DeleteHistory(ctx context.Context, id uuid.UUID) error {
	err := c.history.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound(fmt.Sprintf("history entry %s not found", id))
	}
	return err
}

func (c *Calculator) ClearHistory(ctx context.Context) error {
	return c.history.Clear(ctx)
}

// ImportHistory stores previously exported entries in one batch. Every
// entry must hold exactly one of result and error message.
func (c *Calculator) ImportHistory(ctx context.Context, entries []domain.HistoryEntry) (int, error) {
	for i, e := range entries {
		if !e.Valid() {
			return 0, apperr.NewValidation(fmt.Sprintf("entry %d: expression and exactly one of result or error message are required", i))
		}
		if e.AngleUnit == "" {
			entries[i].AngleUnit = angle.Default
		}
		if err := entries[i].AngleUnit.Validate(); err != nil {
			return 0, apperr.NewValidationWrap(fmt.Sprintf("entry %d", i), err)
		}
		if e.ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}
	}
	if len(entries) == 0 {
		return 0, nil
	}

	if err := c.history.SaveBulk(ctx, entries); err != nil {
		return 0, fmt.Errorf("failed to import history: %w", err)
	}

	s, err := c.settings.Load(ctx)
	if err != nil {
		return len(entries), fmt.Errorf("failed to load settings: %w", err)
	}
	if _, err := c.history.Prune(ctx, s.MaxHistoryCount); err != nil {
		slog.Warn("failed to prune history", "error", err, "keep", s.MaxHistoryCount)
	}
	return len(entries), nil
}

func (c *Calculator) Functions() []catalog.FunctionDescription {
	return catalog.Functions()
}

func (c *Calculator) Tips() []catalog.Tip {
	return catalog.Tips()
}
