// Package ruleset implements the per-class bookkeeping a RIPPER-style
// class learner needs to decide when to stop adding rules and which rules
// to discard: per-rule coverage counts and description-length (DL)
// accounting over the residual training data.
package ruleset

import (
	"math"

	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/rule"
)

// Stats is the 6-tuple of cumulative weights for one rule, computed
// against the residual data left by the rules before it: covered,
// uncovered, covered-positive, covered-negative, uncovered-positive,
// uncovered-negative.
type Stats struct {
	Covered      float64
	Uncovered    float64
	CoveredPos   float64
	CoveredNeg   float64
	UncoveredPos float64
	UncoveredNeg float64
}

// RuleStats holds a class's rules in induction order alongside the
// description-length inputs the class learner needs: the global training
// size, the attribute-condition total, and each rule's Stats tuple.
type RuleStats struct {
	TrainSize   float64
	NumAllConds float64
	Rules       []rule.Rule
	Tuples      []Stats
}

// NewRuleStats returns an empty RuleStats for a class learner run over
// trainSize total instance weight, with attribute-condition total
// numAllConds (see NumAllConds).
func NewRuleStats(trainSize, numAllConds float64) *RuleStats {
	return &RuleStats{TrainSize: trainSize, NumAllConds: numAllConds}
}

// AddRule appends r to the ruleset, computing its Stats against residual
// (the data left after earlier rules removed what they covered), and
// returns the residual data r leaves for the next rule.
func (rs *RuleStats) AddRule(r rule.Rule, residual []data.Instance, consequent int) []data.Instance {
	var s Stats
	var uncovered []data.Instance

	for _, inst := range residual {
		if r.Covers(inst) {
			s.Covered += inst.Weight
			if inst.Class == consequent {
				s.CoveredPos += inst.Weight
			} else {
				s.CoveredNeg += inst.Weight
			}
		} else {
			s.Uncovered += inst.Weight
			if inst.Class == consequent {
				s.UncoveredPos += inst.Weight
			} else {
				s.UncoveredNeg += inst.Weight
			}
			uncovered = append(uncovered, inst)
		}
	}

	rs.Rules = append(rs.Rules, r)
	rs.Tuples = append(rs.Tuples, s)
	return uncovered
}

// NumAllConds sums, over schema's feature attributes, log2(distinct
// nominal values) or log2(candidate split points), where a numeric
// attribute's split-point count is its number of distinct values observed
// in trainingData minus one, floored at 1. schema excludes the class
// attribute, aligned with data.Instance.X indices.
func NumAllConds(schema []data.Attribute, trainingData []data.Instance) float64 {
	var total float64

	for attr, a := range schema {
		if a.Kind == data.Nominal {
			if n := float64(a.NumValues()); n > 0 {
				total += math.Log2(n)
			}
			continue
		}

		seen := make(map[float64]bool)
		for _, inst := range trainingData {
			if !inst.IsMissing(attr) {
				seen[inst.X[attr]] = true
			}
		}
		splitPoints := float64(len(seen) - 1)
		if splitPoints < 1 {
			splitPoints = 1
		}
		total += math.Log2(splitPoints)
	}

	return total
}
