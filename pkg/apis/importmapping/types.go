// Package importmapping describes how the columns of an expression dataset
// map onto calculation history entries.
package importmapping

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

const (
	Kind    = "ImportMapping"
	Version = "v1"
)

// ImportMapping is the YAML document read by data_import.
//
//	kind: ImportMapping
//	version: v1
//	metadata:
//	  name: homework
//	columns:
//	  expression: expr
//	  angle_unit: mode
//	default_angle_unit: rad
type ImportMapping struct {
	Kind             string     `json:"kind" yaml:"kind"`
	Version          string     `json:"version" yaml:"version"`
	Metadata         Metadata   `json:"metadata" yaml:"metadata"`
	Columns          Columns    `json:"columns" yaml:"columns"`
	DefaultAngleUnit angle.Unit `json:"default_angle_unit,omitempty" yaml:"default_angle_unit,omitempty"`
	// TimeFormat is a Go reference layout for the timestamp column.
	TimeFormat string `json:"time_format,omitempty" yaml:"time_format,omitempty"`
	// SkipInvalid drops rows whose expression fails instead of recording
	// the failure in history.
	SkipInvalid bool `json:"skip_invalid,omitempty" yaml:"skip_invalid,omitempty"`
}

type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Columns names the CSV header of each field. Only Expression is required.
type Columns struct {
	Expression string `json:"expression" yaml:"expression"`
	AngleUnit  string `json:"angle_unit,omitempty" yaml:"angle_unit,omitempty"`
	Timestamp  string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Default maps an "expression" column and nothing else.
func Default() *ImportMapping {
	return &ImportMapping{
		Kind:     Kind,
		Version:  Version,
		Metadata: Metadata{Name: "default"},
		Columns:  Columns{Expression: "expression", AngleUnit: "angle_unit"},
	}
}

func (m *ImportMapping) Validate() error {
	if m.Kind != Kind {
		return fmt.Errorf("kind must be %s, got %q", Kind, m.Kind)
	}
	if m.Version != Version {
		return fmt.Errorf("unsupported version %q", m.Version)
	}
	if m.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if m.Columns.Expression == "" {
		return fmt.Errorf("columns.expression is required")
	}
	if m.DefaultAngleUnit != "" {
		if err := m.DefaultAngleUnit.Validate(); err != nil {
			return err
		}
	}
	if m.Columns.Timestamp != "" && m.TimeFormat == "" {
		return fmt.Errorf("time_format is required when columns.timestamp is set")
	}
	return nil
}

func (m *ImportMapping) Unit() angle.Unit {
	if m.DefaultAngleUnit == "" {
		return angle.Default
	}
	return m.DefaultAngleUnit
}

func (m *ImportMapping) ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(m.TimeFormat, s)
	if err != nil {
		return time.Time{}, &MappingError{Message: fmt.Sprintf("timestamp %q does not match %q", s, m.TimeFormat)}
	}
	return t.UTC(), nil
}

type MappingError struct {
	Message string `json:"message"`
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error: %s", e.Message)
}
