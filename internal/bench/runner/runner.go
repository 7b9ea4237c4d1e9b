package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/sci-calc/internal/bench/suite"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = 0
	}
	return &Runner{config: cfg}
}

// Run executes every case of s on each executor, in engineNames order.
func (r *Runner) Run(
	ctx context.Context,
	s *suite.TestSuite,
	executors map[string]engine.Executor,
	engineNames []string,
) (*SuiteResult, error) {
	for _, name := range engineNames {
		if _, ok := executors[name]; !ok {
			return nil, fmt.Errorf("executor %q not found", name)
		}
	}

	sr := &SuiteResult{
		SuiteName:   s.Name,
		Results:     make(map[string]map[string]CaseResult, len(s.Cases)),
		EngineNames: engineNames,
		Config:      r.config,
	}

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := &s.Cases[i]
		sr.CaseOrder = append(sr.CaseOrder, c.ID)
		sr.Results[c.ID] = make(map[string]CaseResult, len(engineNames))

		for _, name := range engineNames {
			cr := r.runCase(ctx, executors[name], c)
			sr.Results[c.ID][name] = cr

			if cr.Status != StatusPass {
				slog.Warn("case did not pass", "case", c.ID, "engine", name, "status", cr.Status, "detail", cr.Detail)
			}
		}
	}

	return sr, nil
}

func (r *Runner) runCase(ctx context.Context, exec engine.Executor, c *suite.Case) CaseResult {
	cr := CaseResult{
		CaseID:     c.ID,
		EngineName: exec.Name(),
		Expression: c.Expression,
	}

	res := r.executeWithRetries(ctx, exec, c)
	cr.Latency = res.latencyStats
	if res.err != nil {
		cr.Status = StatusError
		cr.Detail = res.err.Error()
		return cr
	}

	cr.Value = res.exec.Value
	cr.Formatted = res.exec.Formatted
	cr.ErrorCode = res.exec.ErrorCode
	cr.Status, cr.Detail = judge(c, res.exec)

	if c.Reference && !r.config.SkipReference && !res.exec.Failed() {
		cr.Reference = crossCheck(c, res.exec.Value)
		if !cr.Reference.Match && cr.Status == StatusPass {
			cr.Status = StatusFail
			cr.Detail = fmt.Sprintf("reference mismatch: got %g, reference %g %s", cr.Value, cr.Reference.Value, cr.Reference.Error)
		}
	}

	return cr
}

func judge(c *suite.Case, exec *engine.Execution) (Status, string) {
	if c.ExpectsError() {
		switch {
		case !exec.Failed():
			return StatusFail, fmt.Sprintf("expected error %s, got %g", c.Error, exec.Value)
		case exec.ErrorCode != c.Error:
			return StatusFail, fmt.Sprintf("expected error %s, got %s", c.Error, exec.ErrorCode)
		default:
			return StatusPass, ""
		}
	}

	if exec.Failed() {
		return StatusFail, fmt.Sprintf("expected %g, got error %s", *c.Expect, exec.ErrorCode)
	}
	if !c.Matches(exec.Value) {
		return StatusFail, fmt.Sprintf("expected %g, got %g", *c.Expect, exec.Value)
	}
	return StatusPass, ""
}

func crossCheck(c *suite.Case, got float64) *ReferenceCheck {
	want, err := engine.EvalReference(c.Expression, c.Unit())
	if err != nil {
		return &ReferenceCheck{Error: err.Error()}
	}

	tol := c.Tolerance
	if tol == 0 {
		tol = suite.DefaultTolerance
	}
	return &ReferenceCheck{Value: want, Match: suite.WithinTolerance(want, got, tol)}
}

type execResult struct {
	exec         *engine.Execution
	latencyStats LatencyStats
	err          error
}

func (r *Runner) executeWithRetries(ctx context.Context, exec engine.Executor, c *suite.Case) execResult {
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = exec.Execute(ctx, c.Expression, c.Unit())
	}

	var latencies []time.Duration
	var last *engine.Execution
	var lastErr error

	for i := 0; i < r.config.Runs; i++ {
		result, err := exec.Execute(ctx, c.Expression, c.Unit())
		if err != nil {
			lastErr = err
			continue
		}
		last = result
		latencies = append(latencies, result.Latency)
	}

	if last == nil {
		return execResult{err: lastErr}
	}

	return execResult{
		exec:         last,
		latencyStats: ComputeLatencyStats(latencies),
	}
}
