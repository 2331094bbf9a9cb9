package rule

import "github.com/wlattner/furia/data"

// MEstimateM is the m-estimate's smoothing constant.
const MEstimateM = 2.0

// CalculateConfidences computes, for every antecedent prefix of r, the
// m-estimate confidence against trainingData and stores it on that
// prefix's last antecedent: conf_k = (acc_k + m*prior) / (cov_k + m),
// where acc_k/cov_k are the accurate/covered weight of the length-k prefix
// (using tnorm to combine per-antecedent memberships) and prior is
// r.Consequent's share of the apriori class-weight vector. A rule with no
// antecedents is returned unchanged.
func CalculateConfidences(r Rule, trainingData []data.Instance, apriori []float64, tnorm func([]float64) float64) Rule {
	if len(r.Antecedents) == 0 {
		return r
	}

	out := r.Clone()

	var aprioriTotal float64
	for _, w := range apriori {
		aprioriTotal += w
	}
	var prior float64
	if aprioriTotal > 0 {
		prior = apriori[r.Consequent] / aprioriTotal
	}

	mems := make([]float64, len(out.Antecedents))
	for k := range out.Antecedents {
		var acc, cov float64
		for _, inst := range trainingData {
			for i := 0; i <= k; i++ {
				mems[i] = out.Antecedents[i].Covers(inst)
			}
			mem := tnorm(mems[:k+1])
			if mem <= 0 {
				continue
			}
			w := inst.Weight * mem
			cov += w
			if inst.Class == r.Consequent {
				acc += w
			}
		}

		out.Antecedents[k].Confidence = (acc + MEstimateM*prior) / (cov + MEstimateM)
	}

	return out
}
