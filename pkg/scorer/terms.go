package scorer

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// Upper bound of the linguistic domain. Term bands live inside [0, DomainMax].
const DomainMax = 100.0

// TermTable is an immutable lookup of linguistic terms by ID.
type TermTable struct {
	order []interfaces.TermID
	terms map[interfaces.TermID]interfaces.Term
}

// NewTermTable builds a table from the given terms, preserving their order.
func NewTermTable(terms ...interfaces.Term) *TermTable {
	t := &TermTable{
		order: make([]interfaces.TermID, 0, len(terms)),
		terms: make(map[interfaces.TermID]interfaces.Term, len(terms)),
	}
	for _, term := range terms {
		if _, dup := t.terms[term.ID]; !dup {
			t.order = append(t.order, term.ID)
		}
		t.terms[term.ID] = term
	}
	return t
}

var defaultTerms = NewTermTable(
	interfaces.Term{ID: interfaces.TermMinimal, Label: "Minimal possibility", Lo: 0, Hi: 20},
	interfaces.Term{ID: interfaces.TermBelowAverage, Label: "Below average", Lo: 20, Hi: 40},
	interfaces.Term{ID: interfaces.TermAverage, Label: "Average possibility", Lo: 40, Hi: 60},
	interfaces.Term{ID: interfaces.TermHigh, Label: "High possibility", Lo: 60, Hi: 80},
	interfaces.Term{ID: interfaces.TermCritical, Label: "Critical possibility", Lo: 80, Hi: 100},
)

// DefaultTerms returns the five standard terms T1..T5, bands of width 20 over [0,100].
func DefaultTerms() *TermTable {
	return defaultTerms
}

// Lookup returns the term with the given ID.
func (t *TermTable) Lookup(id interfaces.TermID) (interfaces.Term, error) {
	term, ok := t.terms[id]
	if !ok {
		return interfaces.Term{}, goerr.Wrap(ErrNotFound, "unknown term", goerr.V("term", id))
	}
	return term, nil
}

// Terms returns a copy of all terms in table order.
func (t *TermTable) Terms() []interfaces.Term {
	out := make([]interfaces.Term, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.terms[id])
	}
	return out
}

// Fuzzify maps a term and an expert confidence onto [0,1] using a quadratic
// S-curve over the term's band.
//
// With [a,b] the band and h = (b-a)/2:
//
//	conf <= 0.5: (a + (conf/0.5)^2 * h) / 100
//	conf >  0.5: (b - ((1-conf)/0.5)^2 * h) / 100
//
// The curve is continuous and non-decreasing: a/100 at 0, the band midpoint at
// 0.5 and b/100 at 1. Confidence outside [0,1] is not clamped here; the formula
// extrapolates and the result may leave the band.
func (t *TermTable) Fuzzify(id interfaces.TermID, conf float64) (float64, error) {
	term, err := t.Lookup(id)
	if err != nil {
		return 0, err
	}
	half := term.Width() / 2
	if conf <= 0.5 {
		x := conf / 0.5
		return (term.Lo + x*x*half) / DomainMax, nil
	}
	x := (1 - conf) / 0.5
	return (term.Hi - x*x*half) / DomainMax, nil
}

// FuzzifyLegacy reproduces the original assessment form's mapping, which scales
// by the full band width on both halves:
//
//	conf <= 0.5: (a + (conf/0.5)^2 * (b-a)) / 100
//	conf >  0.5: (b - ((1-conf)/0.5)^2 * (b-a)) / 100
//
// It reaches b/100 at conf = 0.5 and drops back to a/100 just above it. Use it
// only to reproduce scores computed by that form.
func (t *TermTable) FuzzifyLegacy(id interfaces.TermID, conf float64) (float64, error) {
	term, err := t.Lookup(id)
	if err != nil {
		return 0, err
	}
	if conf <= 0.5 {
		x := conf / 0.5
		return (term.Lo + x*x*term.Width()) / DomainMax, nil
	}
	x := (1 - conf) / 0.5
	return (term.Hi - x*x*term.Width()) / DomainMax, nil
}

// Fuzzify maps a term and confidence onto [0,1] using the default term table.
func Fuzzify(id interfaces.TermID, conf float64) (float64, error) {
	return defaultTerms.Fuzzify(id, conf)
}
