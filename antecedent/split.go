package antecedent

import (
	"math"
	"sort"

	"github.com/wlattner/furia/data"
)

// laplaceAccRate is the Laplace-smoothed accuracy rate used by the
// growth-time split search: (acc+1)/(cov+1).
func laplaceAccRate(acc, cov float64) float64 {
	return (acc + 1) / (cov + 1)
}

// infoGain is the per-bag information gain: acc * (log2 accRate - log2
// defAccRt).
func infoGain(acc, accRate, defAccRt float64) float64 {
	return acc * (math.Log2(accRate) - math.Log2(defAccRt))
}

// SplitNumeric sorts growData ascending by attr (missing values shunted to
// the end and excluded from evaluation), sweeps strict-increase
// boundaries, and returns the best-gain antecedent plus the two bags it
// partitions growData into. ok is false if no valid split point exists
// (e.g. all values are tied); the minNo check on the winning antecedent is
// left to the caller.
func SplitNumeric(growData []data.Instance, attr int, defAccRt float64, classY int) (best Antecedent, left, right []data.Instance, ok bool) {
	sorted := make([]data.Instance, len(growData))
	copy(sorted, growData)

	sort.SliceStable(sorted, func(i, j int) bool {
		mi, mj := sorted[i].IsMissing(attr), sorted[j].IsMissing(attr)
		if mi != mj {
			return mj
		}
		if mi && mj {
			return false
		}
		return sorted[i].X[attr] < sorted[j].X[attr]
	})

	total := len(sorted)
	for i, inst := range sorted {
		if inst.IsMissing(attr) {
			total = i
			break
		}
	}

	if total < 2 {
		return Antecedent{}, nil, nil, false
	}

	var totalWeight, totalClassWeight float64
	prefixWeight := make([]float64, total+1)
	prefixClassWeight := make([]float64, total+1)
	for i := 0; i < total; i++ {
		w := sorted[i].Weight
		prefixWeight[i+1] = prefixWeight[i] + w
		cw := 0.0
		if sorted[i].Class == classY {
			cw = w
		}
		prefixClassWeight[i+1] = prefixClassWeight[i] + cw
	}
	totalWeight = prefixWeight[total]
	totalClassWeight = prefixClassWeight[total]

	var (
		bestGain float64
		bestIdx  = -1
		bestSide Side
		bestAcc  float64
		bestCov  float64
		bestRate float64
	)

	for i := 1; i < total; i++ {
		if sorted[i].X[attr] <= sorted[i-1].X[attr] {
			continue // no strict increase, not a valid split boundary
		}

		covL, accL := prefixWeight[i], prefixClassWeight[i]
		covR, accR := totalWeight-covL, totalClassWeight-accL

		rateL := laplaceAccRate(accL, covL)
		rateR := laplaceAccRate(accR, covR)

		gainL := infoGain(accL, rateL, defAccRt)
		gainR := infoGain(accR, rateR, defAccRt)

		var gain float64
		var side Side
		var acc, cov, rate float64
		if gainL >= gainR {
			gain, side, acc, cov, rate = gainL, Low, accL, covL, rateL
		} else {
			gain, side, acc, cov, rate = gainR, High, accR, covR, rateR
		}

		if gain > bestGain {
			bestGain = gain
			bestIdx = i
			bestSide = side
			bestAcc = acc
			bestCov = cov
			bestRate = rate
		}
	}

	if bestIdx < 0 {
		return Antecedent{}, nil, nil, false
	}

	a := Antecedent{
		Kind:         KindNumeric,
		Attr:         attr,
		Side:         bestSide,
		SplitPoint:   sorted[bestIdx-1].X[attr],
		SupportBound: sorted[bestIdx-1].X[attr],
		Gain:         bestGain,
		Covered:      bestCov,
		Accurate:     bestAcc,
		AccuracyRate: bestRate,
		Confidence:   math.NaN(),
	}

	leftBag := sorted[:bestIdx]
	rightBag := sorted[bestIdx:total]

	if bestSide == Low {
		return a, leftBag, rightBag, true
	}
	return a, rightBag, leftBag, true
}

// SplitNominal partitions growData into buckets by the coded value of
// attr, computes the Laplace-smoothed gain per bucket, and keeps the
// highest-gain bucket (first-encountered wins ties, scanning buckets in
// ascending value order).
func SplitNominal(growData []data.Instance, attr int, nValues int, defAccRt float64, classY int) (best Antecedent, covered []data.Instance, ok bool) {
	buckets := make([][]data.Instance, nValues)
	for _, inst := range growData {
		if inst.IsMissing(attr) {
			continue
		}
		v := int(inst.X[attr])
		buckets[v] = append(buckets[v], inst)
	}

	var (
		bestGain = math.Inf(-1)
		bestVal  = -1
		bestAcc  float64
		bestCov  float64
		bestRate float64
	)

	for v, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		var cov, acc float64
		for _, inst := range bucket {
			cov += inst.Weight
			if inst.Class == classY {
				acc += inst.Weight
			}
		}
		rate := laplaceAccRate(acc, cov)
		gain := infoGain(acc, rate, defAccRt)

		if gain > bestGain {
			bestGain = gain
			bestVal = v
			bestAcc = acc
			bestCov = cov
			bestRate = rate
		}
	}

	if bestVal < 0 {
		return Antecedent{}, nil, false
	}

	a := Antecedent{
		Kind:         KindNominal,
		Attr:         attr,
		Value:        bestVal,
		Gain:         bestGain,
		Covered:      bestCov,
		Accurate:     bestAcc,
		AccuracyRate: bestRate,
		Confidence:   math.NaN(),
	}

	return a, buckets[bestVal], true
}
