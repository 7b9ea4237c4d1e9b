package engine

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

// Executor evaluates one expression. A calculator failure is a normal
// Execution with ErrorCode set; the returned error is reserved for the
// executor itself breaking (transport, decoding).
type Executor interface {
	Execute(ctx context.Context, expression string, unit angle.Unit) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	Value     float64
	Formatted string
	ErrorCode string
	Latency   time.Duration
}

func (e *Execution) Failed() bool {
	return e.ErrorCode != ""
}
