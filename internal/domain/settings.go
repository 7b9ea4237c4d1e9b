package domain

import (
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

const (
	MinDecimalPlaces = 0
	MaxDecimalPlaces = 10

	MinHistoryCount = 10
	MaxHistoryCount = 1000
)

type Settings struct {
	AngleUnit             angle.Unit `json:"angle_unit" yaml:"angle_unit"`
	DecimalPlaces         int        `json:"decimal_places" yaml:"decimal_places"`
	FirstLaunch           bool       `json:"first_launch" yaml:"first_launch"`
	ShowTips              bool       `json:"show_tips" yaml:"show_tips"`
	UseScientificNotation bool       `json:"use_scientific_notation" yaml:"use_scientific_notation"`
	AutoSaveHistory       bool       `json:"auto_save_history" yaml:"auto_save_history"`
	MaxHistoryCount       int        `json:"max_history_count" yaml:"max_history_count"`
	// LastDailyTipDate is the local date (YYYY-MM-DD) the daily tip was last shown.
	LastDailyTipDate string `json:"last_daily_tip_date,omitempty" yaml:"last_daily_tip_date,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		AngleUnit:       angle.Default,
		DecimalPlaces:   4,
		FirstLaunch:     true,
		ShowTips:        true,
		AutoSaveHistory: true,
		MaxHistoryCount: 100,
	}
}

// Normalize clamps numeric fields into range and fills an empty angle unit.
func (s Settings) Normalize() Settings {
	s.DecimalPlaces = clamp(s.DecimalPlaces, MinDecimalPlaces, MaxDecimalPlaces)
	s.MaxHistoryCount = clamp(s.MaxHistoryCount, MinHistoryCount, MaxHistoryCount)
	if s.AngleUnit == "" {
		s.AngleUnit = angle.Default
	}
	return s
}

func (s Settings) Valid() bool {
	return s.AngleUnit.Validate() == nil &&
		s.DecimalPlaces >= MinDecimalPlaces && s.DecimalPlaces <= MaxDecimalPlaces &&
		s.MaxHistoryCount >= MinHistoryCount && s.MaxHistoryCount <= MaxHistoryCount
}

func (s *Settings) ToggleAngleUnit() {
	s.AngleUnit = s.AngleUnit.Toggled()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
