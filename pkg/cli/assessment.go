package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
	"github.com/toyinlola/flightrisk/pkg/scorer"
)

// AssessmentFile is an expert's filled-in assessment form.
//
//	scenario: S3
//	threat: C3
//	criteria:
//	  - criterion: K1
//	    term: T4
//	    confidence: 0.7
//	    weight: 8
//
// Criteria left out keep their defaults.
type AssessmentFile struct {
	Scenario interfaces.Scenario    `yaml:"scenario" validate:"omitempty,oneof=S1 S2 S3 S4"`
	Threat   interfaces.ThreatLevel `yaml:"threat" validate:"omitempty,oneof=C1 C2 C3 C4 C5"`
	Criteria []CriterionEntry       `yaml:"criteria" validate:"unique=Criterion,dive"`
}

// CriterionEntry is one row of the assessment form.
type CriterionEntry struct {
	Criterion  interfaces.CriterionID `yaml:"criterion" validate:"required,oneof=K1 K2 K3 K4 K5 K6 K7"`
	Term       interfaces.TermID      `yaml:"term" validate:"omitempty,oneof=T1 T2 T3 T4 T5"`
	Confidence *float64               `yaml:"confidence" validate:"omitnil,gte=0,lte=1"`
	Weight     *float64               `yaml:"weight" validate:"omitnil,gte=1,lte=10"`
}

// LoadAssessment reads and validates an assessment file.
func LoadAssessment(path string) (*AssessmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: reading assessment %s: %w", path, err)
	}
	return ParseAssessment(data)
}

// ParseAssessment decodes and validates assessment YAML.
func ParseAssessment(data []byte) (*AssessmentFile, error) {
	f := &AssessmentFile{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("cli: parsing assessment: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks ranges and enumerations.
func (f *AssessmentFile) Validate() error {
	if err := validate.Struct(f); err != nil {
		return goerr.Wrap(err, "invalid assessment")
	}
	return nil
}

// Apply merges overrides into the entries; later entries for the same
// criterion replace individual fields of earlier ones.
func (f *AssessmentFile) Apply(overrides ...CriterionEntry) {
	for _, o := range overrides {
		merged := false
		for i := range f.Criteria {
			if f.Criteria[i].Criterion != o.Criterion {
				continue
			}
			if o.Term != "" {
				f.Criteria[i].Term = o.Term
			}
			if o.Confidence != nil {
				f.Criteria[i].Confidence = o.Confidence
			}
			if o.Weight != nil {
				f.Criteria[i].Weight = o.Weight
			}
			merged = true
			break
		}
		if !merged {
			f.Criteria = append(f.Criteria, o)
		}
	}
}

// Assessments returns one assessment per default criterion in display order,
// filling anything the file leaves out with the default term, confidence
// and seed weight.
func (f *AssessmentFile) Assessments() []interfaces.Assessment {
	out := scorer.DefaultAssessments()
	byID := make(map[interfaces.CriterionID]CriterionEntry, len(f.Criteria))
	for _, e := range f.Criteria {
		byID[e.Criterion] = e
	}
	for i := range out {
		e, ok := byID[out[i].Criterion]
		if !ok {
			continue
		}
		if e.Term != "" {
			out[i].Term = e.Term
		}
		if e.Confidence != nil {
			out[i].Confidence = *e.Confidence
		}
		if e.Weight != nil {
			out[i].Weight = *e.Weight
		}
	}
	return out
}

// ParseOverride parses a --set value of the form
// CRITERION=TERM[:CONFIDENCE[:WEIGHT]], e.g. "K4=T5:0.9:8".
// Empty parts keep the existing value: "K2=:0.3" changes only confidence.
func ParseOverride(s string) (CriterionEntry, error) {
	id, rest, ok := strings.Cut(s, "=")
	if !ok || id == "" {
		return CriterionEntry{}, fmt.Errorf("cli: override %q: expected CRITERION=TERM[:CONFIDENCE[:WEIGHT]]", s)
	}

	e := CriterionEntry{Criterion: interfaces.CriterionID(strings.ToUpper(strings.TrimSpace(id)))}
	parts := strings.Split(rest, ":")
	if len(parts) > 3 {
		return CriterionEntry{}, fmt.Errorf("cli: override %q: too many fields", s)
	}

	if p := strings.TrimSpace(parts[0]); p != "" {
		e.Term = interfaces.TermID(strings.ToUpper(p))
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return CriterionEntry{}, fmt.Errorf("cli: override %q: confidence: %w", s, err)
		}
		e.Confidence = &v
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return CriterionEntry{}, fmt.Errorf("cli: override %q: weight: %w", s, err)
		}
		e.Weight = &v
	}

	if err := validate.Struct(e); err != nil {
		return CriterionEntry{}, goerr.Wrap(err, "invalid override", goerr.V("override", s))
	}
	return e, nil
}
