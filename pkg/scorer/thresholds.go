package scorer

import "github.com/toyinlola/flightrisk/pkg/interfaces"

// Default conclusion thresholds on r(P).
const (
	DefaultHighThreshold         = 0.8
	DefaultAboveAverageThreshold = 0.6
	DefaultAverageThreshold      = 0.4
	DefaultLowThreshold          = 0.2
)

// Thresholds are the lower (exclusive) bounds of conclusions R1..R4.
// Anything at or below Low is R5.
type Thresholds struct {
	High         float64 `yaml:"high"`
	AboveAverage float64 `yaml:"above_average"`
	Average      float64 `yaml:"average"`
	Low          float64 `yaml:"low"`
}

// DefaultThresholds returns 0.8 / 0.6 / 0.4 / 0.2.
func DefaultThresholds() Thresholds {
	return Thresholds{
		High:         DefaultHighThreshold,
		AboveAverage: DefaultAboveAverageThreshold,
		Average:      DefaultAverageThreshold,
		Low:          DefaultLowThreshold,
	}
}

// ConclusionFromScore returns the conclusion for r.
// Comparisons are strict, so a value exactly on a threshold falls into the
// lower bucket: 0.8 is R2, not R1.
func ConclusionFromScore(r float64, t Thresholds) interfaces.Conclusion {
	switch {
	case r > t.High:
		return interfaces.ConclusionHigh
	case r > t.AboveAverage:
		return interfaces.ConclusionAboveAverage
	case r > t.Average:
		return interfaces.ConclusionAverage
	case r > t.Low:
		return interfaces.ConclusionLow
	default:
		return interfaces.ConclusionVeryLow
	}
}

// Defuzzify buckets r into a conclusion using the default thresholds.
func Defuzzify(r float64) interfaces.Conclusion {
	return ConclusionFromScore(r, DefaultThresholds())
}
