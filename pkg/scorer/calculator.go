package scorer

import (
	"context"
	"math"

	"github.com/m-mizutani/goerr/v2"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// Calculator runs the full pipeline: fuzzify, normalize, aggregate, adjust for
// the threat level and defuzzify. It holds only read-only tables, so one
// Calculator may serve concurrent evaluations.
type Calculator struct {
	terms          *TermTable
	exponents      ThreatExponents
	thresholds     Thresholds
	clampConf      bool
	legacyScenario bool
	legacyFuzzify  bool
}

var _ interfaces.Evaluator = (*Calculator)(nil)

// Option configures the Calculator.
type Option func(*Calculator)

// WithTermTable overrides the default T1..T5 term table.
func WithTermTable(t *TermTable) Option {
	return func(c *Calculator) {
		c.terms = t
	}
}

// WithThreatExponents overrides the default threat exponents.
func WithThreatExponents(e ThreatExponents) Option {
	return func(c *Calculator) {
		c.exponents = e
	}
}

// WithThresholds overrides the default conclusion thresholds.
func WithThresholds(t Thresholds) Option {
	return func(c *Calculator) {
		c.thresholds = t
	}
}

// WithConfidenceClamp controls whether confidence is clamped into [0,1]
// before fuzzification. Enabled by default; when disabled, out-of-range
// confidence is extrapolated by the S-curve.
func WithConfidenceClamp(enabled bool) Option {
	return func(c *Calculator) {
		c.clampConf = enabled
	}
}

// WithLegacyScenarioFallback makes an unknown scenario aggregate to 0 instead of
// failing with ErrNotFound.
func WithLegacyScenarioFallback() Option {
	return func(c *Calculator) {
		c.legacyScenario = true
	}
}

// WithLegacyFuzzification switches to TermTable.FuzzifyLegacy.
func WithLegacyFuzzification() Option {
	return func(c *Calculator) {
		c.legacyFuzzify = true
	}
}

// NewCalculator creates a calculator with optional configuration.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		terms:      DefaultTerms(),
		exponents:  DefaultThreatExponents(),
		thresholds: DefaultThresholds(),
		clampConf:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Evaluate runs the pipeline for one scenario and threat level.
//
// Per-criterion contributions are omega_i * (1 - delta_i); Share expresses
// each as a fraction of their total. Weights must be positive.
func (c *Calculator) Evaluate(ctx context.Context, assessments []interfaces.Assessment, scenario interfaces.Scenario, threat interfaces.ThreatLevel) (*interfaces.EvaluationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(assessments) == 0 {
		return nil, goerr.Wrap(ErrDegenerateInput, "no assessments")
	}
	if !c.legacyScenario && !KnownScenario(scenario) {
		return nil, goerr.Wrap(ErrNotFound, "unknown scenario", goerr.V("scenario", scenario))
	}

	deltas := make([]float64, len(assessments))
	weights := make([]float64, len(assessments))
	for i, a := range assessments {
		d, err := c.fuzzify(a)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fuzzify assessment", goerr.V("criterion", a.Criterion))
		}
		if !(a.Weight > 0) {
			return nil, goerr.Wrap(ErrDegenerateInput, "weight must be positive",
				goerr.V("criterion", a.Criterion),
				goerr.V("weight", a.Weight))
		}
		deltas[i] = d
		weights[i] = a.Weight
	}

	omega, err := Normalize(weights)
	if err != nil {
		return nil, err
	}

	sp, err := Aggregate(scenario, deltas, omega)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate", goerr.V("scenario", scenario))
	}

	rp, err := c.exponents.Adjust(sp, threat)
	if err != nil {
		return nil, err
	}

	return &interfaces.EvaluationResult{
		Scenario:      scenario,
		Threat:        threat,
		Aggregate:     sp,
		Adjusted:      rp,
		Conclusion:    ConclusionFromScore(rp, c.thresholds),
		Contributions: contributions(assessments, deltas, omega),
	}, nil
}

func (c *Calculator) fuzzify(a interfaces.Assessment) (float64, error) {
	conf := a.Confidence
	if c.clampConf {
		conf = clamp01(conf)
	}
	if c.legacyFuzzify {
		return c.terms.FuzzifyLegacy(a.Term, conf)
	}
	return c.terms.Fuzzify(a.Term, conf)
}

// Terms returns the calculator's term table.
func (c *Calculator) Terms() *TermTable {
	return c.terms
}

// Exponents returns a copy of the calculator's threat exponents.
func (c *Calculator) Exponents() ThreatExponents {
	out := make(ThreatExponents, len(c.exponents))
	for k, v := range c.exponents {
		out[k] = v
	}
	return out
}

// Thresholds returns the calculator's conclusion thresholds.
func (c *Calculator) Thresholds() Thresholds {
	return c.thresholds
}

func contributions(assessments []interfaces.Assessment, deltas, omega []float64) []interfaces.Contribution {
	out := make([]interfaces.Contribution, len(assessments))
	var total float64
	for i, a := range assessments {
		v := omega[i] * (1 - deltas[i])
		out[i] = interfaces.Contribution{
			Criterion: a.Criterion,
			Delta:     deltas[i],
			Omega:     omega[i],
			Value:     v,
		}
		total += v
	}
	if total > 0 && !math.IsInf(total, 0) {
		for i := range out {
			out[i].Share = out[i].Value / total
		}
	}
	return out
}
