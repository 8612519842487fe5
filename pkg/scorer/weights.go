// Package scorer implements the fuzzy flight risk pipeline: fuzzification,
// weight normalization, scenario aggregation, threat adjustment and
// defuzzification.
package scorer

import (
	"math"

	"github.com/m-mizutani/goerr/v2"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// Weight bounds accepted by the assessment form.
const (
	MinWeight = 1
	MaxWeight = 10
)

// Default assessment values for a criterion the expert left untouched.
const (
	DefaultTerm       = interfaces.TermAverage
	DefaultConfidence = 0.5
)

// DefaultCriteria returns the seven flight risk criteria in display order.
func DefaultCriteria() []interfaces.Criterion {
	return []interfaces.Criterion{
		{ID: interfaces.CriterionLossOfControl, Name: "Loss of control in flight"},
		{ID: interfaces.CriterionDeterrence, Name: "Failure of the deterrence function"},
		{ID: interfaces.CriterionCollision, Name: "Collision with objects"},
		{ID: interfaces.CriterionHackerAttack, Name: "Hacker attacks"},
		{ID: interfaces.CriterionWeather, Name: "Deteriorating weather conditions"},
		{ID: interfaces.CriterionEmergencyLand, Name: "Emergency landing"},
		{ID: interfaces.CriterionDispatcherLink, Name: "Loss of signal with the dispatcher"},
	}
}

// DefaultWeightSeed returns the seed weight for the criterion at position i:
// 5, 6, 7 repeating.
func DefaultWeightSeed(i int) float64 {
	return float64(5 + i%3)
}

// DefaultAssessments returns one assessment per default criterion, each at the
// average term with neutral confidence and its seed weight.
func DefaultAssessments() []interfaces.Assessment {
	criteria := DefaultCriteria()
	out := make([]interfaces.Assessment, len(criteria))
	for i, c := range criteria {
		out[i] = interfaces.Assessment{
			Criterion:  c.ID,
			Term:       DefaultTerm,
			Confidence: DefaultConfidence,
			Weight:     DefaultWeightSeed(i),
		}
	}
	return out
}

// Normalize scales weights so they sum to 1. Output order matches input order.
// Returns ErrDegenerateInput when weights is empty or does not have a positive,
// finite sum.
func Normalize(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, goerr.Wrap(ErrDegenerateInput, "no weights to normalize")
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, goerr.Wrap(ErrDegenerateInput, "weights must have a positive sum", goerr.V("sum", sum))
	}

	omega := make([]float64, len(weights))
	for i, w := range weights {
		omega[i] = w / sum
	}
	return omega, nil
}
