// Package compare evaluates one set of assessments across many scenarios and
// threat levels.
package compare

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// Engine fans evaluations out over a scenario x threat matrix.
type Engine struct {
	evaluator interfaces.Evaluator
	limit     int
}

// Option configures the Engine.
type Option func(*Engine)

// WithConcurrency caps the number of evaluations running at once.
// Zero or negative means no limit.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.limit = n
	}
}

// NewEngine creates an engine backed by the given evaluator.
func NewEngine(evaluator interfaces.Evaluator, opts ...Option) *Engine {
	e := &Engine{evaluator: evaluator}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates every (scenario, threat) pair in parallel.
// Results come back scenario-major in the order given, independent of
// completion order. The first failing evaluation cancels the rest and its
// error is returned. Respects context cancellation.
func (e *Engine) Run(ctx context.Context, assessments []interfaces.Assessment, scenarios []interfaces.Scenario, threats []interfaces.ThreatLevel) ([]interfaces.EvaluationResult, error) {
	if len(scenarios) == 0 || len(threats) == 0 {
		return nil, fmt.Errorf("compare: need at least one scenario and one threat level")
	}

	slog.Debug("starting comparison", "scenarios", len(scenarios), "threats", len(threats))
	start := time.Now()

	results := make([]interfaces.EvaluationResult, len(scenarios)*len(threats))

	g, gctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}

	for i, s := range scenarios {
		for j, th := range threats {
			idx := i*len(threats) + j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := e.evaluator.Evaluate(gctx, assessments, s, th)
				if err != nil {
					return fmt.Errorf("compare: scenario %s threat %s: %w", s, th, err)
				}
				results[idx] = *res
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		slog.Warn("comparison failed", "error", err)
		return nil, err
	}

	slog.Debug("comparison complete", "evaluations", len(results), "duration", time.Since(start))
	return results, nil
}
