package ruleset

import (
	"math"

	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/rule"
)

// log2Choose returns log2(C(n, k)) via the log-gamma function, for
// non-negative n with 0 <= k <= n.
func log2Choose(n, k float64) float64 {
	if k <= 0 || k >= n {
		return 0
	}
	lg := func(x float64) float64 {
		v, _ := math.Lgamma(x + 1)
		return v
	}
	return (lg(n) - lg(k) - lg(n-k)) / math.Ln2
}

// TheoryDL is the description length, in bits, of a rule with k
// antecedents drawn from an attribute-condition universe of size
// rs.NumAllConds: k*log2(numAllConds/k) + log2(C(numAllConds, k)) + 0.5.
func (rs *RuleStats) TheoryDL(k int) float64 {
	if k <= 0 {
		return 0
	}
	kf := float64(k)
	return kf*math.Log2(rs.NumAllConds/kf) + log2Choose(rs.NumAllConds, kf) + 0.5
}

// subsetDL is the description length of a subset of size n containing e
// exceptions, given an expected exception rate p: the universal code for
// choosing which e of n are exceptions, plus the two-part entropy coding
// of e itself against p.
func subsetDL(n, e, p float64) float64 {
	if n <= 0 {
		return 0
	}
	if e > n {
		e = n
	}

	dl := log2Choose(n, e)
	if p > 0 && p < 1 {
		if e > 0 {
			dl += e * -math.Log2(p)
		}
		if n-e > 0 {
			dl += (n - e) * -math.Log2(1-p)
		}
	}
	return dl
}

// DataDL is the data description length contributed by one rule's
// covered/uncovered split: a subset-description coding for the fp
// exceptions among cov covered instances, plus one for the fn exceptions
// among uncov uncovered instances, both scored against the expected
// false-positive rate expFPRate.
func DataDL(expFPRate, cov, uncov, fp, fn float64) float64 {
	return subsetDL(cov, fp, expFPRate) + subsetDL(uncov, fn, expFPRate)
}

// RelativeDL is the description length rule i of rs contributes: its
// theory length plus the data length of its covered/uncovered split
// (covered-negative instances count as false positives, uncovered-positive
// instances count as false negatives).
func (rs *RuleStats) RelativeDL(i int, expFPRate float64) float64 {
	k := len(rs.Rules[i].Antecedents)
	s := rs.Tuples[i]
	return rs.TheoryDL(k) + DataDL(expFPRate, s.Covered, s.Uncovered, s.CoveredNeg, s.UncoveredPos)
}

// Rebuild replays rules in order against trainingData and returns the
// RuleStats that results, i.e. each rule's Stats tuple computed against the
// residual left by the rules before it.
func Rebuild(rules []rule.Rule, trainingData []data.Instance, consequent int, numAllConds float64) *RuleStats {
	rs := NewRuleStats(weightSum(trainingData), numAllConds)
	residual := trainingData
	for _, r := range rules {
		residual = rs.AddRule(r, residual, consequent)
	}
	return rs
}

// totalDL sums RelativeDL over rules rebuilt against trainingData.
func totalDL(rules []rule.Rule, trainingData []data.Instance, consequent int, numAllConds, expFPRate float64) float64 {
	rs := Rebuild(rules, trainingData, consequent, numAllConds)

	var total float64
	for i := range rules {
		total += rs.RelativeDL(i, expFPRate)
	}
	return total
}

// ReduceDL drops, in order, any rule whose removal does not increase the
// ruleset's total DL (recomputed against trainingData after each removal),
// leaving a ruleset with monotonically non-increasing DL.
func ReduceDL(rules []rule.Rule, trainingData []data.Instance, consequent int, numAllConds, expFPRate float64) []rule.Rule {
	current := append([]rule.Rule(nil), rules...)

	i := 0
	for i < len(current) {
		withDL := totalDL(current, trainingData, consequent, numAllConds, expFPRate)

		without := make([]rule.Rule, 0, len(current)-1)
		without = append(without, current[:i]...)
		without = append(without, current[i+1:]...)
		withoutDL := totalDL(without, trainingData, consequent, numAllConds, expFPRate)

		if withoutDL <= withDL {
			current = without
			continue
		}
		i++
	}

	return current
}

func weightSum(instances []data.Instance) float64 {
	var s float64
	for _, inst := range instances {
		s += inst.Weight
	}
	return s
}
