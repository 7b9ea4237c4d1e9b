package engine

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

// LocalExecutor runs expressions through an in-process calc.Engine.
type LocalExecutor struct {
	name   string
	engine calc.Engine
}

func NewLocalExecutor(name string, engine calc.Engine) *LocalExecutor {
	return &LocalExecutor{name: name, engine: engine}
}

func (e *LocalExecutor) Execute(ctx context.Context, expression string, unit angle.Unit) (*Execution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	value, err := e.engine.Calculate(expression, unit)
	latency := time.Since(start)

	if err != nil {
		kind, ok := calcerr.Kind(err)
		if !ok {
			return nil, err
		}
		return &Execution{ErrorCode: kind.Code(), Latency: latency}, nil
	}

	return &Execution{
		Value:     value,
		Formatted: e.engine.FormatResult(value),
		Latency:   latency,
	}, nil
}

func (e *LocalExecutor) Name() string { return e.name }
func (e *LocalExecutor) Close() error { return nil }
