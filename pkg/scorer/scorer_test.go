package scorer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

const eps = 1e-9

func TestFuzzify_MidpointAtHalfConfidence(t *testing.T) {
	for _, term := range DefaultTerms().Terms() {
		t.Run(string(term.ID), func(t *testing.T) {
			got, err := Fuzzify(term.ID, 0.5)
			require.NoError(t, err)
			assert.Equal(t, term.Midpoint()/DomainMax, got)
		})
	}

	got, err := Fuzzify(interfaces.TermAverage, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

func TestFuzzify_BoundariesAreExact(t *testing.T) {
	got, err := Fuzzify(interfaces.TermMinimal, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = Fuzzify(interfaces.TermCritical, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestFuzzify_StaysInsideBandAndIsMonotonic(t *testing.T) {
	for _, term := range DefaultTerms().Terms() {
		prev := -1.0
		for i := 0; i <= 100; i++ {
			conf := float64(i) / 100
			got, err := Fuzzify(term.ID, conf)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, term.Lo/DomainMax-eps, "term %s conf %.2f", term.ID, conf)
			assert.LessOrEqual(t, got, term.Hi/DomainMax+eps, "term %s conf %.2f", term.ID, conf)
			assert.GreaterOrEqual(t, got, prev-eps, "term %s not monotonic at %.2f", term.ID, conf)
			prev = got
		}
	}
}

func TestFuzzify_ContinuousAtMidpoint(t *testing.T) {
	below, err := Fuzzify(interfaces.TermHigh, 0.5)
	require.NoError(t, err)
	above, err := Fuzzify(interfaces.TermHigh, 0.5+1e-9)
	require.NoError(t, err)
	assert.InDelta(t, below, above, 1e-6)
}

func TestFuzzify_UnknownTerm(t *testing.T) {
	_, err := Fuzzify("T9", 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFuzzifyLegacy_ReproducesFormScale(t *testing.T) {
	terms := DefaultTerms()

	got, err := terms.FuzzifyLegacy(interfaces.TermAverage, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, got, eps)

	got, err = terms.FuzzifyLegacy(interfaces.TermAverage, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.45, got, eps)

	got, err = terms.FuzzifyLegacy(interfaces.TermAverage, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, got, eps)
}

func TestNormalize_EqualWeights(t *testing.T) {
	omega, err := Normalize([]float64{5, 5, 5, 5, 5, 5, 5})
	require.NoError(t, err)
	require.Len(t, omega, 7)

	var sum float64
	for _, w := range omega {
		assert.InDelta(t, 1.0/7, w, eps)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, eps)
}

func TestNormalize_PreservesOrder(t *testing.T) {
	omega, err := Normalize([]float64{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, omega[0], eps)
	assert.InDelta(t, 0.75, omega[1], eps)
}

func TestNormalize_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{"empty", nil},
		{"all zero", []float64{0, 0, 0}},
		{"negative sum", []float64{-1, -2}},
		{"nan", []float64{math.NaN(), 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.weights)
			assert.ErrorIs(t, err, ErrDegenerateInput)
		})
	}
}

func TestAggregate_CollapsesForIdenticalValues(t *testing.T) {
	omegas := [][]float64{
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{0.7, 0.2, 0.1},
		{0.05, 0.05, 0.9},
	}
	for _, s := range interfaces.Scenarios() {
		for _, d := range []float64{0, 0.2, 0.5, 0.83} {
			for _, omega := range omegas {
				deltas := []float64{d, d, d}
				got, err := Aggregate(s, deltas, omega)
				require.NoError(t, err)
				assert.InDelta(t, 1-d, got, 1e-9, "scenario %s delta %.2f omega %v", s, d, omega)
			}
		}
	}
}

func TestAggregate_AverageOfHalfIsHalf(t *testing.T) {
	got, err := Aggregate(interfaces.ScenarioAverage, []float64{0.5, 0.5}, []float64{0.9, 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, eps)
}

func TestAggregate_Formulas(t *testing.T) {
	deltas := []float64{0.2, 0.6}
	omega := []float64{0.5, 0.5}

	tests := []struct {
		scenario interfaces.Scenario
		want     float64
	}{
		// 1 / (0.5/0.8 + 0.5/0.4) = 1 / 1.875
		{interfaces.ScenarioPessimistic, 1 / 1.875},
		{interfaces.ScenarioCautious, math.Sqrt(0.8 * 0.4)},
		{interfaces.ScenarioAverage, 0.6},
		{interfaces.ScenarioOptimistic, math.Sqrt(0.5*0.64 + 0.5*0.16)},
	}
	for _, tt := range tests {
		t.Run(string(tt.scenario), func(t *testing.T) {
			got, err := Aggregate(tt.scenario, deltas, omega)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, eps)
		})
	}
}

func TestAggregate_ScenarioOrdering(t *testing.T) {
	// Power means order harmonic <= geometric <= arithmetic <= quadratic.
	deltas := []float64{0.1, 0.45, 0.7, 0.3}
	omega := []float64{0.4, 0.1, 0.3, 0.2}

	var prev float64
	for _, s := range interfaces.Scenarios() {
		got, err := Aggregate(s, deltas, omega)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev-eps, "scenario %s", s)
		prev = got
	}
}

func TestAggregate_UnknownScenarioFallsBackToZero(t *testing.T) {
	got, err := Aggregate("S9", []float64{0.5}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = AggregateStrict("S9", []float64{0.5}, []float64{1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAggregate_PessimisticWithCertainRisk(t *testing.T) {
	_, err := Aggregate(interfaces.ScenarioPessimistic, []float64{0.3, 1}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestAggregate_LengthMismatch(t *testing.T) {
	_, err := Aggregate(interfaces.ScenarioAverage, []float64{0.3, 0.4}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestThreatAdjust_FixedPoints(t *testing.T) {
	for _, level := range interfaces.ThreatLevels() {
		got, err := ThreatAdjust(1, level)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got, "level %s", level)

		got, err = ThreatAdjust(0, level)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got, "level %s", level)
	}
}

func TestThreatAdjust_ClampsInput(t *testing.T) {
	got, err := ThreatAdjust(1.7, interfaces.ThreatMedium)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = ThreatAdjust(-0.3, interfaces.ThreatMedium)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestThreatAdjust_SeverityRaisesScore(t *testing.T) {
	levels := interfaces.ThreatLevels()
	for _, sp := range []float64{0.01, 0.2, 0.5, 0.75, 0.99} {
		prev := sp
		for _, level := range levels {
			got, err := ThreatAdjust(sp, level)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, prev, "sp %.2f level %s", sp, level)
			prev = got
		}

		c1, _ := ThreatAdjust(sp, interfaces.ThreatMinimal)
		c5, _ := ThreatAdjust(sp, interfaces.ThreatMaximum)
		assert.GreaterOrEqual(t, c5, c1)
	}
}

func TestThreatAdjust_UnknownLevel(t *testing.T) {
	_, err := ThreatAdjust(0.5, "C0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefuzzify_Buckets(t *testing.T) {
	tests := []struct {
		r    float64
		want interfaces.Conclusion
	}{
		{1.0, interfaces.ConclusionHigh},
		{0.8000001, interfaces.ConclusionHigh},
		{0.8, interfaces.ConclusionAboveAverage},
		{0.61, interfaces.ConclusionAboveAverage},
		{0.6, interfaces.ConclusionAverage},
		{0.4, interfaces.ConclusionLow},
		{0.21, interfaces.ConclusionLow},
		{0.2, interfaces.ConclusionVeryLow},
		{0.05, interfaces.ConclusionVeryLow},
		{0, interfaces.ConclusionVeryLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Defuzzify(tt.r), "r=%v", tt.r)
	}
}

func TestDefaultAssessments_SeedWeights(t *testing.T) {
	as := DefaultAssessments()
	require.Len(t, as, 7)

	want := []float64{5, 6, 7, 5, 6, 7, 5}
	for i, a := range as {
		assert.Equal(t, want[i], a.Weight)
		assert.Equal(t, interfaces.TermAverage, a.Term)
		assert.Equal(t, 0.5, a.Confidence)
	}
	assert.Equal(t, interfaces.CriterionLossOfControl, as[0].Criterion)
	assert.Equal(t, interfaces.CriterionDispatcherLink, as[6].Criterion)
}

func TestTermTable_LookupAndOrder(t *testing.T) {
	terms := DefaultTerms().Terms()
	require.Len(t, terms, 5)
	for i, term := range terms {
		assert.Equal(t, float64(i*20), term.Lo)
		assert.Equal(t, float64(i*20+20), term.Hi)
	}

	_, err := DefaultTerms().Lookup("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
