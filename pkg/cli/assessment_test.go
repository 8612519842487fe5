package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

func TestParseAssessment_FillsDefaults(t *testing.T) {
	f, err := ParseAssessment([]byte(`
scenario: S2
threat: C4
criteria:
  - criterion: K4
    term: T5
    confidence: 0.9
    weight: 9
  - criterion: K6
    confidence: 0
`))
	require.NoError(t, err)
	assert.Equal(t, interfaces.ScenarioCautious, f.Scenario)
	assert.Equal(t, interfaces.ThreatHigh, f.Threat)

	as := f.Assessments()
	require.Len(t, as, 7)

	assert.Equal(t, interfaces.CriterionHackerAttack, as[3].Criterion)
	assert.Equal(t, interfaces.TermCritical, as[3].Term)
	assert.Equal(t, 0.9, as[3].Confidence)
	assert.Equal(t, 9.0, as[3].Weight)

	assert.Equal(t, interfaces.TermAverage, as[5].Term)
	assert.Equal(t, 0.0, as[5].Confidence)
	assert.Equal(t, 7.0, as[5].Weight)

	assert.Equal(t, 5.0, as[0].Weight)
	assert.Equal(t, 0.5, as[0].Confidence)
}

func TestParseAssessment_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"confidence above one", "criteria:\n  - criterion: K1\n    confidence: 1.5\n"},
		{"negative confidence", "criteria:\n  - criterion: K1\n    confidence: -0.1\n"},
		{"zero weight", "criteria:\n  - criterion: K1\n    weight: 0\n"},
		{"weight above ten", "criteria:\n  - criterion: K1\n    weight: 11\n"},
		{"unknown criterion", "criteria:\n  - criterion: K8\n"},
		{"unknown term", "criteria:\n  - criterion: K1\n    term: T6\n"},
		{"duplicate criterion", "criteria:\n  - criterion: K1\n  - criterion: K1\n"},
		{"unknown scenario", "scenario: S5\n"},
		{"unknown threat", "threat: C9\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAssessment([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestParseOverride(t *testing.T) {
	e, err := ParseOverride("k4=t5:0.9:8")
	require.NoError(t, err)
	assert.Equal(t, interfaces.CriterionHackerAttack, e.Criterion)
	assert.Equal(t, interfaces.TermCritical, e.Term)
	require.NotNil(t, e.Confidence)
	assert.Equal(t, 0.9, *e.Confidence)
	require.NotNil(t, e.Weight)
	assert.Equal(t, 8.0, *e.Weight)

	e, err = ParseOverride("K2=:0.3")
	require.NoError(t, err)
	assert.Empty(t, e.Term)
	require.NotNil(t, e.Confidence)
	assert.Equal(t, 0.3, *e.Confidence)
	assert.Nil(t, e.Weight)
}

func TestParseOverride_Invalid(t *testing.T) {
	for _, s := range []string{"", "K1", "=T1", "K1=T1:x", "K1=T1:0.5:y", "K1=T1:0.5:5:1", "K9=T1", "K1=T1:2", "K1=T1:0.5:0"} {
		_, err := ParseOverride(s)
		assert.Error(t, err, "override %q", s)
	}
}

func TestApply_MergesOverrides(t *testing.T) {
	f := &AssessmentFile{}
	conf := 0.2
	weight := 3.0
	f.Apply(
		CriterionEntry{Criterion: interfaces.CriterionCollision, Term: interfaces.TermHigh},
		CriterionEntry{Criterion: interfaces.CriterionCollision, Confidence: &conf},
		CriterionEntry{Criterion: interfaces.CriterionWeather, Weight: &weight},
	)
	require.Len(t, f.Criteria, 2)
	require.NoError(t, f.Validate())

	as := f.Assessments()
	assert.Equal(t, interfaces.TermHigh, as[2].Term)
	assert.Equal(t, 0.2, as[2].Confidence)
	assert.Equal(t, 3.0, as[4].Weight)
}
