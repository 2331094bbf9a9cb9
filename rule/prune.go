package rule

import "github.com/wlattner/furia/data"

// Prune implements reduced-error pruning. A rule with no
// antecedents is returned unchanged. For each antecedent index i, worth is
// scored against the portion of pruneData that reaches it (satisfies
// antecedents 0..i-1): with useWhole, worth counts both the prefix's
// covered-positive weight and the cumulative weight of negatives rejected
// along the way; otherwise it's the Laplace accuracy of the covered bag.
// The longest prefix whose worth strictly beats the baseline and every
// worth seen so far is kept (shorter prefixes win ties, since later worths
// must strictly exceed the running best to replace it); if no prefix
// improves on the baseline, the rule is returned unchanged.
func Prune(r Rule, pruneData []data.Instance, useWhole bool) Rule {
	if len(r.Antecedents) == 0 {
		return r
	}

	total := weightSum(pruneData)
	defAcc := classWeightSum(pruneData, r.Consequent)
	baseline := (defAcc + 1) / (total + 2)

	reaching := pruneData
	var tn float64 // cumulative uncovered-negative weight, useWhole only

	bestWorth := baseline
	bestIdx := -1

	for i, a := range r.Antecedents {
		var covered, uncovered []data.Instance
		var covWeight, tpWeight float64

		for _, inst := range reaching {
			if a.CoversBool(inst) {
				covered = append(covered, inst)
				covWeight += inst.Weight
				if inst.Class == r.Consequent {
					tpWeight += inst.Weight
				}
			} else {
				uncovered = append(uncovered, inst)
				if inst.Class != r.Consequent {
					tn += inst.Weight
				}
			}
		}

		var worth float64
		if useWhole {
			worth = (tpWeight + tn) / total
		} else {
			worth = (tpWeight + 1) / (covWeight + 2)
		}

		if worth > bestWorth {
			bestWorth = worth
			bestIdx = i
		}

		reaching = covered
		_ = uncovered
	}

	if bestIdx < 0 {
		return r
	}

	out := r.Clone()
	out.Antecedents = out.Antecedents[:bestIdx+1]
	return out
}
