// Package rule implements growth, reduced-error pruning, purity-driven
// fuzzification, and m-estimate confidence for a single conjunction of
// antecedents.
//
// Rather than an abstract rule base with a single concrete subclass, this
// package collapses that into the one Rule struct below.
package rule

import (
	"math"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
)

// Rule is a conjunction of antecedents with a consequent class. Antecedent
// order is growth (insertion) order; pruning and stretching only ever
// truncate the tail.
type Rule struct {
	Consequent  int
	Antecedents []antecedent.Antecedent
}

// Confidence is the rule's public confidence, the m-estimate stored on its
// last antecedent. An empty rule has confidence NaN and never votes.
func (r Rule) Confidence() float64 {
	if len(r.Antecedents) == 0 {
		return math.NaN()
	}
	return r.Antecedents[len(r.Antecedents)-1].Confidence
}

// Membership returns the rule's overall fuzzy membership for inst using
// tnorm to aggregate per-antecedent memberships. An empty rule has
// membership 0 (it never votes).
func (r Rule) Membership(inst data.Instance, tnorm func([]float64) float64) float64 {
	if len(r.Antecedents) == 0 {
		return 0
	}
	mems := make([]float64, len(r.Antecedents))
	for i, a := range r.Antecedents {
		mems[i] = a.Covers(inst)
	}
	return tnorm(mems)
}

// Covers is the boolean covers(rule, x): membership > 0 using product
// aggregation (the zero/non-zero boundary is identical for product and
// min).
func (r Rule) Covers(inst data.Instance) bool {
	for _, a := range r.Antecedents {
		if !a.CoversBool(inst) {
			return false
		}
	}
	return len(r.Antecedents) > 0
}

// Clone returns a deep copy of the antecedent list so callers (pruning,
// fuzzification, stretching) can mutate the copy without touching the
// original rule.
func (r Rule) Clone() Rule {
	a := make([]antecedent.Antecedent, len(r.Antecedents))
	copy(a, r.Antecedents)
	return Rule{Consequent: r.Consequent, Antecedents: a}
}

// ProdTNorm aggregates memberships by product, the default t-norm.
func ProdTNorm(mems []float64) float64 {
	p := 1.0
	for _, m := range mems {
		p *= m
	}
	return p
}

// MinTNorm aggregates memberships by min.
func MinTNorm(mems []float64) float64 {
	m := math.Inf(1)
	for _, v := range mems {
		if v < m {
			m = v
		}
	}
	return m
}
