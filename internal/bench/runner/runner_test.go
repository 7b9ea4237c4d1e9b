package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/sci-calc/internal/bench/suite"
	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

// stubExecutor answers every expression with the same execution and counts
// the calls it receives.
type stubExecutor struct {
	out   *engine.Execution
	err   error
	calls int
}

func (s *stubExecutor) Execute(context.Context, string, angle.Unit) (*engine.Execution, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := *s.out
	return &out, nil
}

func (s *stubExecutor) Name() string { return "stub" }
func (s *stubExecutor) Close() error { return nil }

func f(v float64) *float64 { return &v }

const conformanceYAML = `
name: runner-test
cases:
  - id: add
    expression: "2 + 3 * 4"
    expect: 14
    reference: true
  - id: sin90
    expression: "sin(90)"
    angle_unit: deg
    expect: 1
    reference: true
  - id: div0
    expression: "5 / 0"
    error: division_by_zero
  - id: pi
    expression: "2π"
    error: invalid_expression
`

func TestRunner_LocalEngine(t *testing.T) {
	s, err := suite.Parse([]byte(conformanceYAML))
	require.NoError(t, err)

	executors := map[string]engine.Executor{
		"local": engine.NewLocalExecutor("local", calc.New()),
	}

	sr, err := New(Config{Runs: 3}).Run(context.Background(), s, executors, []string{"local"})
	require.NoError(t, err)

	assert.Equal(t, []string{"add", "sin90", "div0", "pi"}, sr.CaseOrder)
	assert.True(t, sr.Passed())

	add, ok := sr.Get("add", "local")
	require.True(t, ok)
	assert.Equal(t, StatusPass, add.Status)
	assert.Equal(t, "14", add.Formatted)
	assert.Equal(t, 3, add.Latency.SampleCount)
	require.NotNil(t, add.Reference)
	assert.True(t, add.Reference.Match)
	assert.InDelta(t, 14, add.Reference.Value, 0)

	div0, _ := sr.Get("div0", "local")
	assert.Equal(t, "division_by_zero", div0.ErrorCode)
	assert.Nil(t, div0.Reference)

	_, ok = sr.Get("missing", "local")
	assert.False(t, ok)
}

func TestRunner_Judging(t *testing.T) {
	tests := []struct {
		name       string
		c          suite.Case
		out        *engine.Execution
		err        error
		wantStatus Status
		wantDetail string
	}{
		{
			name:       "value matches",
			c:          suite.Case{ID: "a", Expression: "1", Expect: f(1)},
			out:        &engine.Execution{Value: 1},
			wantStatus: StatusPass,
		},
		{
			name:       "value differs",
			c:          suite.Case{ID: "a", Expression: "1", Expect: f(1)},
			out:        &engine.Execution{Value: 2},
			wantStatus: StatusFail,
			wantDetail: "expected 1, got 2",
		},
		{
			name:       "unexpected error",
			c:          suite.Case{ID: "a", Expression: "1", Expect: f(1)},
			out:        &engine.Execution{ErrorCode: "overflow"},
			wantStatus: StatusFail,
			wantDetail: "got error overflow",
		},
		{
			name:       "missing error",
			c:          suite.Case{ID: "a", Expression: "1/0", Error: "division_by_zero"},
			out:        &engine.Execution{Value: 3},
			wantStatus: StatusFail,
			wantDetail: "expected error division_by_zero, got 3",
		},
		{
			name:       "wrong error",
			c:          suite.Case{ID: "a", Expression: "1/0", Error: "division_by_zero"},
			out:        &engine.Execution{ErrorCode: "domain_error"},
			wantStatus: StatusFail,
			wantDetail: "got domain_error",
		},
		{
			name:       "reference mismatch",
			c:          suite.Case{ID: "a", Expression: "2 + 2", Expect: f(5), Reference: true},
			out:        &engine.Execution{Value: 5},
			wantStatus: StatusFail,
			wantDetail: "reference mismatch",
		},
		{
			name:       "executor breaks",
			c:          suite.Case{ID: "a", Expression: "1", Expect: f(1)},
			err:        errors.New("connection refused"),
			wantStatus: StatusError,
			wantDetail: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubExecutor{out: tt.out, err: tt.err}
			s := &suite.TestSuite{Name: "judging", Cases: []suite.Case{tt.c}}

			sr, err := New(DefaultConfig()).Run(context.Background(), s, map[string]engine.Executor{"stub": stub}, []string{"stub"})
			require.NoError(t, err)

			got, ok := sr.Get("a", "stub")
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Contains(t, got.Detail, tt.wantDetail)
			assert.Equal(t, tt.wantStatus == StatusPass, sr.Passed())
		})
	}
}

func TestRunner_WarmupAndRuns(t *testing.T) {
	stub := &stubExecutor{out: &engine.Execution{Value: 1, Latency: time.Microsecond}}
	s := &suite.TestSuite{Cases: []suite.Case{{ID: "a", Expression: "1", Expect: f(1)}}}

	sr, err := New(Config{WarmupRuns: 2, Runs: 5}).Run(context.Background(), s, map[string]engine.Executor{"stub": stub}, []string{"stub"})
	require.NoError(t, err)

	assert.Equal(t, 7, stub.calls)
	got, _ := sr.Get("a", "stub")
	assert.Equal(t, 5, got.Latency.SampleCount)
	assert.Equal(t, time.Microsecond, got.Latency.Mean)
}

func TestRunner_SkipReference(t *testing.T) {
	stub := &stubExecutor{out: &engine.Execution{Value: 5}}
	s := &suite.TestSuite{Cases: []suite.Case{{ID: "a", Expression: "2 + 2", Expect: f(5), Reference: true}}}

	sr, err := New(Config{SkipReference: true}).Run(context.Background(), s, map[string]engine.Executor{"stub": stub}, []string{"stub"})
	require.NoError(t, err)

	got, _ := sr.Get("a", "stub")
	assert.Equal(t, StatusPass, got.Status)
	assert.Nil(t, got.Reference)
}

func TestRunner_UnknownExecutor(t *testing.T) {
	s := &suite.TestSuite{Cases: []suite.Case{{ID: "a", Expression: "1", Expect: f(1)}}}
	_, err := New(DefaultConfig()).Run(context.Background(), s, map[string]engine.Executor{}, []string{"local"})
	assert.ErrorContains(t, err, `executor "local" not found`)
}
