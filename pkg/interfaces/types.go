// Package interfaces defines the shared types and contracts for all flightrisk modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types and interfaces defined here.
package interfaces

import "time"

// CriterionID identifies one of the seven fixed flight risk criteria.
type CriterionID string

const (
	CriterionLossOfControl  CriterionID = "K1" // Loss of control in flight
	CriterionDeterrence     CriterionID = "K2" // Failure of the deterrence function
	CriterionCollision      CriterionID = "K3" // Collision with objects
	CriterionHackerAttack   CriterionID = "K4" // Hacker attacks
	CriterionWeather        CriterionID = "K5" // Deteriorating weather
	CriterionEmergencyLand  CriterionID = "K6" // Emergency landing
	CriterionDispatcherLink CriterionID = "K7" // Loss of signal with the dispatcher
)

// Criterion is a risk factor an expert assesses.
type Criterion struct {
	ID   CriterionID `json:"id" yaml:"id"`
	Name string      `json:"name" yaml:"name"`
}

// TermID identifies a linguistic term.
type TermID string

const (
	TermMinimal      TermID = "T1" // Minimal possibility
	TermBelowAverage TermID = "T2" // Below average
	TermAverage      TermID = "T3" // Average possibility
	TermHigh         TermID = "T4" // High possibility
	TermCritical     TermID = "T5" // Critical possibility
)

// Term is a linguistic term bound to the band [Lo, Hi] of the 0..100 domain.
type Term struct {
	ID    TermID  `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	Lo    float64 `json:"lo" yaml:"lo"`
	Hi    float64 `json:"hi" yaml:"hi"`
}

// Midpoint returns the centre of the term's band.
func (t Term) Midpoint() float64 {
	return (t.Lo + t.Hi) / 2
}

// Width returns the size of the term's band.
func (t Term) Width() float64 {
	return t.Hi - t.Lo
}

// ThreatLevel is the external threat level applied after aggregation.
type ThreatLevel string

const (
	ThreatMinimal ThreatLevel = "C1"
	ThreatLow     ThreatLevel = "C2"
	ThreatMedium  ThreatLevel = "C3"
	ThreatHigh    ThreatLevel = "C4"
	ThreatMaximum ThreatLevel = "C5"
)

// Scenario selects the aggregation attitude.
type Scenario string

const (
	ScenarioPessimistic Scenario = "S1" // Weighted harmonic mean
	ScenarioCautious    Scenario = "S2" // Weighted geometric mean
	ScenarioAverage     Scenario = "S3" // Weighted arithmetic mean
	ScenarioOptimistic  Scenario = "S4" // Weighted quadratic mean
)

// Scenarios lists every aggregation scenario in declaration order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioPessimistic, ScenarioCautious, ScenarioAverage, ScenarioOptimistic}
}

// ThreatLevels lists every threat level from least to most severe.
func ThreatLevels() []ThreatLevel {
	return []ThreatLevel{ThreatMinimal, ThreatLow, ThreatMedium, ThreatHigh, ThreatMaximum}
}

// Conclusion is the linguistic safety verdict produced by defuzzification.
type Conclusion string

const (
	ConclusionHigh         Conclusion = "R1" // High level of safety
	ConclusionAboveAverage Conclusion = "R2" // Above average
	ConclusionAverage      Conclusion = "R3" // Average
	ConclusionLow          Conclusion = "R4" // Low
	ConclusionVeryLow      Conclusion = "R5" // Very low
)

// Label returns the human-readable description of a conclusion.
func (c Conclusion) Label() string {
	switch c {
	case ConclusionHigh:
		return "High level of safety"
	case ConclusionAboveAverage:
		return "Above average"
	case ConclusionAverage:
		return "Average"
	case ConclusionLow:
		return "Low"
	case ConclusionVeryLow:
		return "Very low"
	default:
		return string(c)
	}
}

// Assessment is one expert judgment about one criterion.
type Assessment struct {
	Criterion  CriterionID `json:"criterion" yaml:"criterion"`
	Term       TermID      `json:"term" yaml:"term"`
	Confidence float64     `json:"confidence" yaml:"confidence"` // 0..1
	Weight     float64     `json:"weight" yaml:"weight"`         // 1..10
}

// Contribution explains how much a criterion drove the aggregate.
type Contribution struct {
	Criterion CriterionID `json:"criterion"`
	Delta     float64     `json:"delta"` // fuzzified value
	Omega     float64     `json:"omega"` // normalized weight
	Value     float64     `json:"value"` // omega * (1 - delta)
	Share     float64     `json:"share"` // Value as a fraction of all values
}

// EvaluationResult is the outcome of one pipeline run.
type EvaluationResult struct {
	Scenario      Scenario       `json:"scenario"`
	Threat        ThreatLevel    `json:"threat"`
	Aggregate     float64        `json:"aggregate"` // S(P)
	Adjusted      float64        `json:"adjusted"`  // r(P)
	Conclusion    Conclusion     `json:"conclusion"`
	Contributions []Contribution `json:"contributions"`
}

// Report is the final output handed to the presentation layer.
type Report struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Results   []EvaluationResult `json:"results"`
	Summary   string             `json:"summary"`
	Duration  time.Duration      `json:"duration"`
}
