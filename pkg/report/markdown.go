package report

import (
	"fmt"
	"io"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// MarkdownFormatter writes a report as Markdown.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown report formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the report as Markdown to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, report *interfaces.Report) error {
	fmt.Fprintln(w, "# Flight Risk Assessment")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "> %s\n\n", report.Summary)

	switch len(report.Results) {
	case 0:
	case 1:
		f.writeResult(w, report.Results[0])
	default:
		f.writeMatrix(w, report.Results)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "*Report ID: %s | Generated: %s*\n",
		report.ID, report.Timestamp.Format("2006-01-02 15:04:05"))
	return nil
}

func (f *MarkdownFormatter) writeResult(w io.Writer, r interfaces.EvaluationResult) {
	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|--------|-------|")
	fmt.Fprintf(w, "| **Scenario** | %s |\n", r.Scenario)
	fmt.Fprintf(w, "| **Threat level** | %s |\n", r.Threat)
	fmt.Fprintf(w, "| **S(P)** | %.3f |\n", r.Aggregate)
	fmt.Fprintf(w, "| **r(P)** | %.3f |\n", r.Adjusted)
	fmt.Fprintf(w, "| **Conclusion** | %s %s(P) %s |\n", conclusionBadge(r.Conclusion), r.Conclusion, r.Conclusion.Label())
	fmt.Fprintln(w)

	if len(r.Contributions) == 0 {
		return
	}
	fmt.Fprintln(w, "## Criterion influence")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Criterion | δ | ω | ω·(1−δ) | Share |")
	fmt.Fprintln(w, "|-----------|---|---|---------|-------|")
	for _, c := range r.Contributions {
		fmt.Fprintf(w, "| %s | %.3f | %.3f | %.1f%% | %.1f%% |\n",
			c.Criterion, c.Delta, c.Omega, c.Value*100, c.Share*100)
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeMatrix(w io.Writer, results []interfaces.EvaluationResult) {
	scenarios, threats, cells := matrix(results)

	fmt.Fprint(w, "| Scenario |")
	for _, th := range threats {
		fmt.Fprintf(w, " %s |", th)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, "|----------|")
	for range threats {
		fmt.Fprint(w, "----|")
	}
	fmt.Fprintln(w)

	for _, s := range scenarios {
		fmt.Fprintf(w, "| %s |", s)
		for _, th := range threats {
			r, ok := cells[cellKey{s, th}]
			if !ok {
				fmt.Fprint(w, " - |")
				continue
			}
			fmt.Fprintf(w, " %.3f %s %s |", r.Adjusted, conclusionBadge(r.Conclusion), r.Conclusion)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// conclusionBadge returns a text badge based on the conclusion.
func conclusionBadge(c interfaces.Conclusion) string {
	switch c {
	case interfaces.ConclusionHigh, interfaces.ConclusionAboveAverage:
		return "🟢"
	case interfaces.ConclusionAverage:
		return "🟡"
	case interfaces.ConclusionLow, interfaces.ConclusionVeryLow:
		return "🔴"
	default:
		return "⚪"
	}
}
