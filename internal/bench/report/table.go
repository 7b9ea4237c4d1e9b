package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/bench/runner"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Calculator Conformance: %s ===\n\n", r.Meta.Suite)
	writeSummaryTable(tw, r.Summary)
	writeLatencyTable(tw, r.Summary)
	writeCaseTable(tw, r.Cases)

	tw.Flush()
}

func writeRow(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func writeHeader(tw *tabwriter.Writer, header ...string) {
	writeRow(tw, header...)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}

func writeSummaryTable(tw *tabwriter.Writer, summary []EngineSummary) {
	fmt.Fprintf(tw, "Summary\n\n")
	writeHeader(tw, "Engine", "Cases", "Pass", "Fail", "Error", "Pass rate", "Reference")

	for _, s := range summary {
		writeRow(tw,
			s.EngineName,
			fmt.Sprintf("%d", s.CaseCount),
			fmt.Sprintf("%d", s.Passed),
			fmt.Sprintf("%d", s.Failed),
			fmt.Sprintf("%d", s.Errored),
			fmt.Sprintf("%.1f%%", s.PassRate()*100),
			fmt.Sprintf("%d/%d", s.ReferenceCount-s.ReferenceMiss, s.ReferenceCount),
		)
	}

	fmt.Fprintln(tw)
}

func writeLatencyTable(tw *tabwriter.Writer, summary []EngineSummary) {
	fmt.Fprintf(tw, "Latency (aggregated across cases)\n\n")
	writeHeader(tw, "Engine", "Min", "p50", "p90", "p95", "p99", "Max", "Mean", "Stddev", "Samples")

	for _, s := range summary {
		l := s.Latency
		writeRow(tw,
			s.EngineName,
			fmtDuration(l.Min),
			fmtDuration(l.P50()),
			fmtDuration(l.P90()),
			fmtDuration(l.P95()),
			fmtDuration(l.P99()),
			fmtDuration(l.Max),
			fmtDuration(l.Mean),
			fmtDuration(l.Stddev),
			fmt.Sprintf("%d", l.SampleCount),
		)
	}

	fmt.Fprintln(tw)
}

func writeCaseTable(tw *tabwriter.Writer, cases []Entry) {
	fmt.Fprintf(tw, "Per-Case Results\n\n")
	writeHeader(tw, "Case", "Engine", "Expression", "Result", "p50", "Status", "Detail")

	for _, e := range cases {
		result := e.Formatted
		if e.ErrorCode != "" {
			result = e.ErrorCode
		}
		writeRow(tw,
			e.CaseID,
			e.EngineName,
			e.Expression,
			orDash(result),
			fmtDuration(e.Latency.P50()),
			fmtStatus(e.Status),
			e.Detail,
		)
	}

	fmt.Fprintln(tw)
}

func fmtStatus(s runner.Status) string {
	switch s {
	case runner.StatusPass:
		return "OK"
	case runner.StatusFail:
		return "FAIL"
	default:
		return "ERR"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
