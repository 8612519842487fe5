// Package report turns evaluation results into presentation-ready reports.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// Generator builds reports from evaluation results.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate produces a Report from one or more evaluation results.
func (g *Generator) Generate(results ...interfaces.EvaluationResult) *interfaces.Report {
	start := g.now()

	rs := make([]interfaces.EvaluationResult, len(results))
	copy(rs, results)

	return &interfaces.Report{
		ID:        generateID(),
		Timestamp: g.now(),
		Results:   rs,
		Summary:   buildSummary(rs),
		Duration:  g.now().Sub(start),
	}
}

// buildSummary creates a one-line summary of the results.
func buildSummary(results []interfaces.EvaluationResult) string {
	switch len(results) {
	case 0:
		return "No evaluations"
	case 1:
		r := results[0]
		return fmt.Sprintf("r(P) = %.3f [%s %s] scenario %s, threat %s",
			r.Adjusted, r.Conclusion, r.Conclusion.Label(), r.Scenario, r.Threat)
	}

	counts := make(map[interfaces.Conclusion]int)
	worst := results[0]
	for _, r := range results {
		counts[r.Conclusion]++
		if r.Adjusted < worst.Adjusted {
			worst = r
		}
	}
	return fmt.Sprintf("%d evaluations (%s); lowest r(P) = %.3f [%s] at scenario %s, threat %s",
		len(results), formatConclusionCounts(counts), worst.Adjusted, worst.Conclusion, worst.Scenario, worst.Threat)
}

// formatConclusionCounts produces a summary like "3 R2, 1 R4".
func formatConclusionCounts(counts map[interfaces.Conclusion]int) string {
	var parts []string
	for _, c := range conclusionOrder {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, c))
		}
	}
	return strings.Join(parts, ", ")
}

var conclusionOrder = []interfaces.Conclusion{
	interfaces.ConclusionHigh,
	interfaces.ConclusionAboveAverage,
	interfaces.ConclusionAverage,
	interfaces.ConclusionLow,
	interfaces.ConclusionVeryLow,
}

// generateID creates a unique report identifier.
func generateID() string {
	return "rpt-" + uuid.NewString()
}
