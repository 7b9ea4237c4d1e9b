package reader

import (
	"fmt"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
	"github.com/DjordjeVuckovic/sci-calc/pkg/apis/importmapping"
)

// ExpressionRecord is a CSV row reduced to what an evaluation needs.
type ExpressionRecord struct {
	Line       int
	Expression string
	AngleUnit  angle.Unit
	// Timestamp is zero when the mapping has no timestamp column.
	Timestamp time.Time
}

type Mapper interface {
	Map(Record) (ExpressionRecord, error)
}

type ExpressionMapper struct {
	cfg *importmapping.ImportMapping
}

func NewExpressionMapper(cfg *importmapping.ImportMapping) *ExpressionMapper {
	return &ExpressionMapper{
		cfg: cfg,
	}
}

func (m *ExpressionMapper) Map(rec Record) (ExpressionRecord, error) {
	out := ExpressionRecord{Line: rec.Line, AngleUnit: m.cfg.Unit()}

	expression, ok := rec.Fields[m.cfg.Columns.Expression]
	if !ok {
		return out, m.fail(rec, "missing column %q", m.cfg.Columns.Expression)
	}
	out.Expression = strings.TrimSpace(expression)
	if out.Expression == "" {
		return out, m.fail(rec, "empty expression")
	}

	if col := m.cfg.Columns.AngleUnit; col != "" {
		if raw := strings.TrimSpace(rec.Fields[col]); raw != "" {
			unit, err := angle.Parse(raw)
			if err != nil {
				return out, m.fail(rec, "%v", err)
			}
			out.AngleUnit = unit
		}
	}

	if col := m.cfg.Columns.Timestamp; col != "" {
		if raw := strings.TrimSpace(rec.Fields[col]); raw != "" {
			ts, err := m.cfg.ParseTime(raw)
			if err != nil {
				return out, fmt.Errorf("line %d: %w", rec.Line, err)
			}
			out.Timestamp = ts
		}
	}

	return out, nil
}

func (m *ExpressionMapper) fail(rec Record, format string, args ...any) error {
	return fmt.Errorf("line %d: %w", rec.Line, &importmapping.MappingError{Message: fmt.Sprintf(format, args...)})
}
