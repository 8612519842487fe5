package interfaces

import (
	"context"
	"io"
)

// Evaluator runs the fuzzy risk pipeline for one scenario and threat level.
type Evaluator interface {
	// Evaluate fuzzifies the assessments, aggregates them under the scenario and
	// adjusts the aggregate for the threat level.
	Evaluate(ctx context.Context, assessments []Assessment, scenario Scenario, threat ThreatLevel) (*EvaluationResult, error)
}

// Formatter writes a report in one presentation format.
// Formatters only consume results; they never feed anything back into the pipeline.
type Formatter interface {
	Format(w io.Writer, report *Report) error
}
