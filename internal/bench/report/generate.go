package report

import (
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/bench/runner"
)

func Generate(sr *runner.SuiteResult, engines map[string]EngineInfo) *Report {
	r := &Report{
		Meta: BenchMeta{
			Suite:       sr.SuiteName,
			Timestamp:   time.Now().UTC(),
			Engines:     engines,
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			WarmupRuns:    sr.Config.WarmupRuns,
			Runs:          sr.Config.Runs,
			SkipReference: sr.Config.SkipReference,
		},
	}

	for _, caseID := range sr.CaseOrder {
		for _, engName := range sr.EngineNames {
			cr, ok := sr.Get(caseID, engName)
			if !ok {
				continue
			}
			entry := Entry{
				CaseID:     cr.CaseID,
				EngineName: cr.EngineName,
				Expression: cr.Expression,
				Status:     cr.Status,
				Value:      cr.Value,
				Formatted:  cr.Formatted,
				ErrorCode:  cr.ErrorCode,
				Detail:     cr.Detail,
				Latency:    cr.Latency,
			}
			if cr.Reference != nil {
				entry.Reference = &ReferenceEntry{
					Value: cr.Reference.Value,
					Match: cr.Reference.Match,
					Error: cr.Reference.Error,
				}
			}
			r.Cases = append(r.Cases, entry)
		}
	}

	r.Summary = summarize(sr)
	return r
}

func summarize(sr *runner.SuiteResult) []EngineSummary {
	summaries := make([]EngineSummary, 0, len(sr.EngineNames))

	for _, engName := range sr.EngineNames {
		s := EngineSummary{EngineName: engName}
		var latencies []runner.LatencyStats

		for _, caseID := range sr.CaseOrder {
			cr, ok := sr.Get(caseID, engName)
			if !ok {
				continue
			}
			s.CaseCount++
			switch cr.Status {
			case runner.StatusPass:
				s.Passed++
			case runner.StatusFail:
				s.Failed++
			case runner.StatusError:
				s.Errored++
			}
			if cr.Reference != nil {
				s.ReferenceCount++
				if !cr.Reference.Match {
					s.ReferenceMiss++
				}
			}
			latencies = append(latencies, cr.Latency)
		}

		s.Latency = runner.AggregateLatencyStats(latencies)
		summaries = append(summaries, s)
	}

	return summaries
}
