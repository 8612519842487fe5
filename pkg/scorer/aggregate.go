package scorer

import (
	"math"

	"github.com/m-mizutani/goerr/v2"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// Aggregate combines fuzzified values and normalized weights into S(P).
//
//	S1 (pessimistic): 1 / sum(w_i / (1 - d_i))
//	S2 (cautious):    prod((1 - d_i) ^ w_i)
//	S3 (average):     sum(w_i * (1 - d_i))
//	S4 (optimistic):  sqrt(sum(w_i * (1 - d_i)^2))
//
// An unknown scenario yields 0 with a nil error. That mirrors the assessment
// form, which scored an unselected scenario as zero; it hides a bad selection,
// so callers should validate scenarios first or use AggregateStrict.
func Aggregate(scenario interfaces.Scenario, deltas, omega []float64) (float64, error) {
	if !KnownScenario(scenario) {
		return 0, nil
	}
	return AggregateStrict(scenario, deltas, omega)
}

// AggregateStrict is Aggregate, but an unknown scenario returns ErrNotFound.
func AggregateStrict(scenario interfaces.Scenario, deltas, omega []float64) (float64, error) {
	if len(deltas) != len(omega) {
		return 0, goerr.Wrap(ErrLengthMismatch, "deltas and weights differ in length",
			goerr.V("deltas", len(deltas)),
			goerr.V("weights", len(omega)))
	}
	if len(deltas) == 0 {
		return 0, goerr.Wrap(ErrDegenerateInput, "nothing to aggregate")
	}

	switch scenario {
	case interfaces.ScenarioPessimistic:
		var sum float64
		for i, d := range deltas {
			if d >= 1 {
				return 0, goerr.Wrap(ErrDegenerateInput, "pessimistic scenario undefined for a value of 1",
					goerr.V("index", i),
					goerr.V("delta", d))
			}
			sum += omega[i] / (1 - d)
		}
		if !(sum > 0) {
			return 0, goerr.Wrap(ErrDegenerateInput, "pessimistic scenario denominator is not positive", goerr.V("sum", sum))
		}
		return 1 / sum, nil

	case interfaces.ScenarioCautious:
		prod := 1.0
		for i, d := range deltas {
			prod *= math.Pow(1-d, omega[i])
		}
		return prod, nil

	case interfaces.ScenarioAverage:
		var sum float64
		for i, d := range deltas {
			sum += omega[i] * (1 - d)
		}
		return sum, nil

	case interfaces.ScenarioOptimistic:
		var sum float64
		for i, d := range deltas {
			c := 1 - d
			sum += omega[i] * c * c
		}
		return math.Sqrt(sum), nil

	default:
		return 0, goerr.Wrap(ErrNotFound, "unknown scenario", goerr.V("scenario", scenario))
	}
}

// KnownScenario reports whether s is one of S1..S4.
func KnownScenario(s interfaces.Scenario) bool {
	switch s {
	case interfaces.ScenarioPessimistic, interfaces.ScenarioCautious,
		interfaces.ScenarioAverage, interfaces.ScenarioOptimistic:
		return true
	default:
		return false
	}
}
