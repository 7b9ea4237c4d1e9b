package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/messages"
	"github.com/DjordjeVuckovic/sci-calc/internal/reader"
)

const defaultWorkers = 4

// ExpressionCollector evaluates every row of a dataset and emits the
// resulting history entries. Failed evaluations become error entries unless
// SkipInvalid is set, in which case they are reported as collection errors.
type ExpressionCollector struct {
	Reader      reader.RawParallelReader
	Mapper      reader.Mapper
	Engine      calc.Engine
	Locale      messages.Locale
	SkipInvalid bool
	Workers     int
}

func NewExpressionCollector(r reader.RawParallelReader, mapper reader.Mapper, engine calc.Engine, locale messages.Locale) *ExpressionCollector {
	return &ExpressionCollector{
		Reader:  r,
		Mapper:  mapper,
		Engine:  engine,
		Locale:  locale,
		Workers: defaultWorkers,
	}
}

func (ec *ExpressionCollector) Collect(ctx context.Context) (<-chan Result[domain.HistoryEntry], error) {
	records, err := ec.Reader.ReadParallel(ctx, max(ec.Workers, 1))
	if err != nil {
		return nil, err
	}

	out := make(chan Result[domain.HistoryEntry])
	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case res, ok := <-records:
				if !ok {
					slog.Debug("Reader channel closed, stopping collection")
					return
				}

				var item Result[domain.HistoryEntry]
				if res.Err != nil {
					item.Err = res.Err
				} else {
					item = ec.evaluate(res.Record)
				}

				select {
				case out <- item:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (ec *ExpressionCollector) evaluate(rec reader.Record) Result[domain.HistoryEntry] {
	expr, err := ec.Mapper.Map(rec)
	if err != nil {
		return Result[domain.HistoryEntry]{Err: err}
	}

	var entry domain.HistoryEntry
	value, err := ec.Engine.Calculate(expr.Expression, expr.AngleUnit)
	switch {
	case err == nil:
		entry = domain.NewHistoryResult(expr.Expression, value, expr.AngleUnit)
	case ec.SkipInvalid:
		return Result[domain.HistoryEntry]{Err: fmt.Errorf("line %d: %q: %w", expr.Line, expr.Expression, err)}
	default:
		if _, ok := calcerr.Kind(err); !ok {
			return Result[domain.HistoryEntry]{Err: fmt.Errorf("line %d: %w", expr.Line, err)}
		}
		entry = domain.NewHistoryError(expr.Expression, messages.ForError(ec.Locale, err), expr.AngleUnit)
	}

	if !expr.Timestamp.IsZero() {
		entry.Timestamp = expr.Timestamp
	}
	return Result[domain.HistoryEntry]{Result: entry}
}
