package scorer

import (
	"math"

	"github.com/m-mizutani/goerr/v2"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// Default threat exponents. Lower exponents belong to more severe threats.
const (
	DefaultExponentMinimal = 8.0 / 9
	DefaultExponentLow     = 7.0 / 9
	DefaultExponentMedium  = 5.0 / 9
	DefaultExponentHigh    = 3.0 / 9
	DefaultExponentMaximum = 1.0 / 9
)

// ThreatExponents maps threat levels to the power applied to S(P).
type ThreatExponents map[interfaces.ThreatLevel]float64

// DefaultThreatExponents returns the default exponent map for C1..C5.
func DefaultThreatExponents() ThreatExponents {
	return ThreatExponents{
		interfaces.ThreatMinimal: DefaultExponentMinimal,
		interfaces.ThreatLow:     DefaultExponentLow,
		interfaces.ThreatMedium:  DefaultExponentMedium,
		interfaces.ThreatHigh:    DefaultExponentHigh,
		interfaces.ThreatMaximum: DefaultExponentMaximum,
	}
}

// Exponent returns the exponent for a threat level.
// There is no safe default power, so an unknown level is an error.
func (e ThreatExponents) Exponent(level interfaces.ThreatLevel) (float64, error) {
	v, ok := e[level]
	if !ok {
		return 0, goerr.Wrap(ErrNotFound, "unknown threat level", goerr.V("threat", level))
	}
	return v, nil
}

// Adjust clamps sp into [0,1] and raises it to the level's exponent.
//
// Every exponent lies in (0,1), so for sp in (0,1) the result is above sp and
// grows as the exponent shrinks: a C5 adjustment is never below a C1
// adjustment of the same sp. 0 and 1 are fixed points.
func (e ThreatExponents) Adjust(sp float64, level interfaces.ThreatLevel) (float64, error) {
	exp, err := e.Exponent(level)
	if err != nil {
		return 0, err
	}
	return math.Pow(clamp01(sp), exp), nil
}

// ThreatAdjust applies the default threat exponents to sp.
func ThreatAdjust(sp float64, level interfaces.ThreatLevel) (float64, error) {
	return DefaultThreatExponents().Adjust(sp, level)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
