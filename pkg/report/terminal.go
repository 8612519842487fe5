package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// Widths of the rendered gauge and contribution bars, in cells.
const (
	gaugeWidth = 40
	barWidth   = 30
)

// TerminalFormatter writes a color-coded report to a terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal report formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the report to the given writer using ANSI colors.
// A single result is drawn as a gauge with per-criterion bars; several
// results are drawn as a scenario x threat matrix.
func (f *TerminalFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w)
	switch len(report.Results) {
	case 0:
		fmt.Fprintf(w, "  %sNo evaluations.%s\n\n", colorDim, colorReset)
	case 1:
		f.writeGauge(w, report.Results[0])
		f.writeContributions(w, report.Results[0])
	default:
		f.writeMatrix(w, report.Results)
	}
	f.writeFooter(w, report)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer) {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  Flight Risk Assessment%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)
}

func (f *TerminalFormatter) writeGauge(w io.Writer, r interfaces.EvaluationResult) {
	color := conclusionColor(r.Conclusion)

	fmt.Fprintf(w, "  Scenario %s | Threat %s | S(P) = %.3f\n\n", r.Scenario, r.Threat, r.Aggregate)
	fmt.Fprintf(w, "  %s%sr(P) = %.3f%s\n", colorBold, color, r.Adjusted, colorReset)
	fmt.Fprintf(w, "  %s[%s]%s\n", color, bar(r.Adjusted, gaugeWidth), colorReset)
	fmt.Fprintf(w, "  %s%s%s(P) %s%s\n\n", colorBold, color, r.Conclusion, r.Conclusion.Label(), colorReset)
}

func (f *TerminalFormatter) writeContributions(w io.Writer, r interfaces.EvaluationResult) {
	if len(r.Contributions) == 0 {
		return
	}
	fmt.Fprintf(w, "  %sCriterion influence%s\n", colorBold, colorReset)
	for _, c := range r.Contributions {
		fmt.Fprintf(w, "  %-3s %s%s%s %5.1f%%\n",
			c.Criterion, colorCyan, bar(c.Value, barWidth), colorReset, c.Value*100)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeMatrix(w io.Writer, results []interfaces.EvaluationResult) {
	scenarios, threats, cells := matrix(results)

	fmt.Fprintf(w, "  %-4s", "")
	for _, th := range threats {
		fmt.Fprintf(w, " %-10s", th)
	}
	fmt.Fprintln(w)

	for _, s := range scenarios {
		fmt.Fprintf(w, "  %-4s", s)
		for _, th := range threats {
			r, ok := cells[cellKey{s, th}]
			if !ok {
				fmt.Fprintf(w, " %-10s", "-")
				continue
			}
			cell := fmt.Sprintf("%.3f %s", r.Adjusted, r.Conclusion)
			fmt.Fprintf(w, " %s%-10s%s", conclusionColor(r.Conclusion), cell, colorReset)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "  %s%s──────────────────────────────────────────%s\n", colorDim, colorCyan, colorReset)
	fmt.Fprintf(w, "  %s%s%s\n", colorDim, report.Summary, colorReset)
	fmt.Fprintf(w, "  %sReport: %s | Generated: %s%s\n\n",
		colorDim, report.ID, report.Timestamp.Format("2006-01-02 15:04:05"), colorReset)
}

// conclusionColor returns the ANSI color for a conclusion.
func conclusionColor(c interfaces.Conclusion) string {
	switch c {
	case interfaces.ConclusionHigh, interfaces.ConclusionAboveAverage:
		return colorGreen
	case interfaces.ConclusionAverage:
		return colorYellow
	case interfaces.ConclusionLow, interfaces.ConclusionVeryLow:
		return colorRed
	default:
		return colorReset
	}
}

// bar renders v in [0,1] as a filled bar of the given width.
func bar(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	filled := int(v*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

type cellKey struct {
	scenario interfaces.Scenario
	threat   interfaces.ThreatLevel
}

// matrix indexes results by scenario and threat, keeping first-seen order.
func matrix(results []interfaces.EvaluationResult) ([]interfaces.Scenario, []interfaces.ThreatLevel, map[cellKey]interfaces.EvaluationResult) {
	var (
		scenarios []interfaces.Scenario
		threats   []interfaces.ThreatLevel
		seenS     = make(map[interfaces.Scenario]bool)
		seenT     = make(map[interfaces.ThreatLevel]bool)
		cells     = make(map[cellKey]interfaces.EvaluationResult, len(results))
	)
	for _, r := range results {
		if !seenS[r.Scenario] {
			seenS[r.Scenario] = true
			scenarios = append(scenarios, r.Scenario)
		}
		if !seenT[r.Threat] {
			seenT[r.Threat] = true
			threats = append(threats, r.Threat)
		}
		cells[cellKey{r.Scenario, r.Threat}] = r
	}
	return scenarios, threats, cells
}
