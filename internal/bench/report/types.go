package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/bench/runner"
)

type Report struct {
	Meta    BenchMeta       `json:"meta"`
	Summary []EngineSummary `json:"summary"`
	Cases   []Entry         `json:"cases"`
	Config  ReportConfig    `json:"config"`
}

type BenchMeta struct {
	Suite       string                `json:"suite"`
	Timestamp   time.Time             `json:"timestamp"`
	Engines     map[string]EngineInfo `json:"engines,omitempty"`
	Environment EnvironmentInfo       `json:"environment"`
}

type EngineInfo struct {
	Type       string `json:"type"`
	Connection string `json:"connection,omitempty"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	WarmupRuns    int  `json:"warmup_runs"`
	Runs          int  `json:"runs"`
	SkipReference bool `json:"skip_reference"`
}

type Entry struct {
	CaseID     string              `json:"case_id"`
	EngineName string              `json:"engine"`
	Expression string              `json:"expression"`
	Status     runner.Status       `json:"status"`
	Value      float64             `json:"value"`
	Formatted  string              `json:"formatted,omitempty"`
	ErrorCode  string              `json:"error_code,omitempty"`
	Detail     string              `json:"detail,omitempty"`
	Reference  *ReferenceEntry     `json:"reference,omitempty"`
	Latency    runner.LatencyStats `json:"latency"`
}

type ReferenceEntry struct {
	Value float64 `json:"value"`
	Match bool    `json:"match"`
	Error string  `json:"error,omitempty"`
}

type EngineSummary struct {
	EngineName     string              `json:"engine"`
	CaseCount      int                 `json:"case_count"`
	Passed         int                 `json:"passed"`
	Failed         int                 `json:"failed"`
	Errored        int                 `json:"errored"`
	ReferenceCount int                 `json:"reference_count"`
	ReferenceMiss  int                 `json:"reference_miss"`
	Latency        runner.LatencyStats `json:"latency"`
}

func (s EngineSummary) PassRate() float64 {
	if s.CaseCount == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.CaseCount)
}
