package rule

import (
	"sort"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
)

// Fuzzify turns r's numeric antecedents into trapezoidal fuzzy sets by
// greedy coordinate ascent on purity: each round picks the not-yet-
// finalized numeric antecedent whose best achievable support_bound gives
// the highest purity, and either commits that fuzzification (if it meets
// or beats the running max purity across the rule) or finalizes the
// antecedent crisp. Nominal antecedents are finalized immediately and
// untouched. trainingData is the full fit-time instance set.
func Fuzzify(r Rule, trainingData []data.Instance) Rule {
	out := r.Clone()
	finalized := make([]bool, len(out.Antecedents))
	for i, a := range out.Antecedents {
		if a.Kind == antecedent.KindNominal {
			finalized[i] = true
		}
	}

	maxPurity := 0.0

	for {
		jBest := -1
		var bestPurity, bestBound float64

		for j, a := range out.Antecedents {
			if finalized[j] {
				continue
			}
			relevant := relevantForAntecedent(out, j, trainingData)
			purity, bound, ok := bestFuzzification(a, relevant, out.Consequent)
			if !ok {
				continue
			}
			if jBest < 0 || purity > bestPurity {
				jBest = j
				bestPurity = purity
				bestBound = bound
			}
		}

		if jBest < 0 {
			break
		}

		if bestPurity >= maxPurity {
			out.Antecedents[jBest].SupportBound = bestBound
			out.Antecedents[jBest].Fuzzy = true
			maxPurity = bestPurity
		} else {
			out.Antecedents[jBest].SupportBound = out.Antecedents[jBest].SplitPoint
			out.Antecedents[jBest].Fuzzy = false
		}
		finalized[jBest] = true
	}

	// Any numeric antecedent left crisp (rejected above, or never offered a
	// candidate support_bound at all) gets the nearest observed value on its
	// outer side as its bound, or its split point when no such value exists,
	// so the (side, split_point, support_bound) triple stays well-formed;
	// since Fuzzy is false this has no effect on Covers.
	for j := range out.Antecedents {
		a := &out.Antecedents[j]
		if a.Kind != antecedent.KindNumeric || a.Fuzzy {
			continue
		}
		if bound, ok := minimalExtentBound(*a, relevantForAntecedent(out, j, trainingData)); ok {
			a.SupportBound = bound
		} else {
			a.SupportBound = a.SplitPoint
		}
	}

	return out
}

// relevantForAntecedent returns the trainingData instances covered
// (membership > 0) by every antecedent of r other than index j, excluding
// those missing j's attribute, sorted ascending by that attribute.
func relevantForAntecedent(r Rule, j int, trainingData []data.Instance) []data.Instance {
	attr := r.Antecedents[j].Attr

	var out []data.Instance
	for _, inst := range trainingData {
		if inst.IsMissing(attr) {
			continue
		}

		covered := true
		for k, a := range r.Antecedents {
			if k == j {
				continue
			}
			if a.Covers(inst) <= 0 {
				covered = false
				break
			}
		}
		if covered {
			out = append(out, inst)
		}
	}

	sort.SliceStable(out, func(i, k int) bool { return out[i].X[attr] < out[k].X[attr] })
	return out
}

// bestFuzzification scans candidate support_bound values outward from
// a.SplitPoint (every distinct attribute value on the outer side, nearest
// first) and returns the one with the highest purity over relevant,
// keeping the earliest-scanned value on ties. ok is false if a has no
// candidate at all (e.g. relevant is empty or has no value past the split).
func bestFuzzification(a antecedent.Antecedent, relevant []data.Instance, consequent int) (bestPurity, bestBound float64, ok bool) {
	if len(relevant) == 0 {
		return 0, 0, false
	}

	var candidates []float64
	seen := make(map[float64]bool)

	if a.Side == antecedent.Low {
		for _, inst := range relevant { // ascending: growing outward from split_point
			v := inst.X[a.Attr]
			if v > a.SplitPoint && !seen[v] {
				seen[v] = true
				candidates = append(candidates, v)
			}
		}
	} else {
		for i := len(relevant) - 1; i >= 0; i-- { // descending: growing outward from split_point
			v := relevant[i].X[a.Attr]
			if v < a.SplitPoint && !seen[v] {
				seen[v] = true
				candidates = append(candidates, v)
			}
		}
	}

	if len(candidates) == 0 {
		return 0, 0, false
	}

	found := false
	for _, bound := range candidates {
		trial := a
		trial.SupportBound = bound
		trial.Fuzzy = true

		var num, den float64
		for _, inst := range relevant {
			mem := trial.Covers(inst)
			if mem <= 0 {
				continue
			}
			w := inst.Weight * mem
			den += w
			if inst.Class == consequent {
				num += w
			}
		}
		if den == 0 {
			continue
		}

		purity := num / den
		if !found || purity > bestPurity {
			found = true
			bestPurity = purity
			bestBound = bound
		}
	}

	return bestPurity, bestBound, found
}

// minimalExtentBound returns the attribute value in relevant closest to
// a.SplitPoint on the outer side, i.e. the least-extent non-degenerate
// support_bound the observed data would justify.
func minimalExtentBound(a antecedent.Antecedent, relevant []data.Instance) (float64, bool) {
	found := false
	var best float64

	for _, inst := range relevant {
		if inst.IsMissing(a.Attr) {
			continue
		}
		v := inst.X[a.Attr]
		if a.Side == antecedent.Low {
			if v > a.SplitPoint && (!found || v < best) {
				best, found = v, true
			}
		} else {
			if v < a.SplitPoint && (!found || v > best) {
				best, found = v, true
			}
		}
	}

	return best, found
}
