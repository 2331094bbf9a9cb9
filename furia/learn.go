package furia

import (
	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/internal/flog"
	"github.com/wlattner/furia/rule"
	"github.com/wlattner/furia/ruleset"
)

func weightSum(instances []data.Instance) float64 {
	var s float64
	for _, inst := range instances {
		s += inst.Weight
	}
	return s
}

func classWeightSum(instances []data.Instance, class int) float64 {
	var s float64
	for _, inst := range instances {
		if inst.Class == class {
			s += inst.Weight
		}
	}
	return s
}

func notCovered(instances []data.Instance, r rule.Rule) []data.Instance {
	var out []data.Instance
	for _, inst := range instances {
		if !r.Covers(inst) {
			out = append(out, inst)
		}
	}
	return out
}

func sumRelativeDL(rs *ruleset.RuleStats, expFPRate float64) float64 {
	var total float64
	for i := range rs.Rules {
		total += rs.RelativeDL(i, expFPRate)
	}
	return total
}

func stopCriterion(dl, minDL float64, tuple ruleset.Stats, opt Options) bool {
	if dl > minDL+64 {
		return true
	}
	if tuple.CoveredPos <= 0 {
		return true
	}
	if opt.CheckErrorRate && tuple.Covered > 0 && tuple.CoveredNeg/tuple.Covered >= 0.5 {
		return true
	}
	return false
}

// learnClass runs the per-class RIPPER loop: a build stage that grows
// rules until the stop criterion trips, followed by opt.Optimizations
// passes that each walk the ruleset replacing/revising rules and may grow
// additional rules for any residual positives, closing with reduceDL.
func learnClass(trainingData []data.Instance, schema []data.Attribute, consequent int, apriori []float64, numAllConds float64, opt Options, rnd *data.RandomSource, logger *flog.Logger) []rule.Rule {
	var aprioriTotal float64
	for _, w := range apriori {
		aprioriTotal += w
	}
	if aprioriTotal == 0 || apriori[consequent] == 0 {
		return nil
	}

	expFPRate := apriori[consequent] / aprioriTotal
	total := weightSum(trainingData)

	rules := buildStage(trainingData, schema, consequent, expFPRate, numAllConds, opt, total, apriori[consequent])
	logger.Debugf("class %d: build stage produced %d rules", consequent, len(rules))

	for pass := 0; pass < opt.Optimizations; pass++ {
		rules = optimizePass(rules, trainingData, schema, consequent, expFPRate, numAllConds, opt, rnd)
		rules = ruleset.ReduceDL(rules, trainingData, consequent, numAllConds, expFPRate)
		logger.Debugf("class %d: optimization pass %d left %d rules", consequent, pass, len(rules))
	}

	return rules
}

// buildStage repeatedly grows a rule on the current residual, accepting it
// and advancing the residual to its uncovered bag unless the stop
// criterion trips, in which case the rule is discarded and the stage ends.
func buildStage(trainingData []data.Instance, schema []data.Attribute, consequent int, expFPRate, numAllConds float64, opt Options, total, classCWeight float64) []rule.Rule {
	minDL := ruleset.DataDL(expFPRate, 0, total, 0, classCWeight)

	var rules []rule.Rule
	residual := trainingData

	for {
		cand := rule.Grow(residual, consequent, schema, opt.MinNo)
		if len(cand.Antecedents) == 0 {
			break
		}

		trial := append(append([]rule.Rule(nil), rules...), cand)
		rs := ruleset.Rebuild(trial, trainingData, consequent, numAllConds)
		dl := sumRelativeDL(rs, expFPRate)
		if dl < minDL {
			minDL = dl
		}
		tuple := rs.Tuples[len(rs.Tuples)-1]

		if stopCriterion(dl, minDL, tuple, opt) {
			break
		}

		rules = trial
		residual = notCovered(residual, cand)
		if len(residual) == 0 {
			break
		}
	}

	return rules
}

// residualBefore returns the trainingData instances not covered by any of
// rules[:position].
func residualBefore(rules []rule.Rule, position int, trainingData []data.Instance) []data.Instance {
	var out []data.Instance
	for _, inst := range trainingData {
		covered := false
		for i := 0; i < position && i < len(rules); i++ {
			if rules[i].Covers(inst) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, inst)
		}
	}
	return out
}

// stratifiedSplit partitions instances into opt.Folds stratified groups via
// rnd and returns the first as pruneData, the rest concatenated as growData.
func stratifiedSplit(instances []data.Instance, folds int, rnd *data.RandomSource) (pruneData, growData []data.Instance) {
	ds := data.InstanceSet{Instances: instances}
	foldIdx := ds.StratifiedFolds(folds, rnd)

	for f, idxs := range foldIdx {
		for _, idx := range idxs {
			if f == 0 {
				pruneData = append(pruneData, instances[idx])
			} else {
				growData = append(growData, instances[idx])
			}
		}
	}
	return pruneData, growData
}

// candidateRelativeDL scores cand the way RelativeDL scores a ruleset
// member: its own theory length plus the data length of its
// covered/uncovered split over residualAtPos.
func candidateRelativeDL(cand rule.Rule, residualAtPos []data.Instance, consequent int, numAllConds, expFPRate float64) float64 {
	var cov, uncov, negCov, posUncov float64
	for _, inst := range residualAtPos {
		if cand.Covers(inst) {
			cov += inst.Weight
			if inst.Class != consequent {
				negCov += inst.Weight
			}
		} else {
			uncov += inst.Weight
			if inst.Class == consequent {
				posUncov += inst.Weight
			}
		}
	}

	rs := ruleset.NewRuleStats(0, numAllConds)
	return rs.TheoryDL(len(cand.Antecedents)) + ruleset.DataDL(expFPRate, cov, uncov, negCov, posUncov)
}

// pickBest chooses among old, revision and replace by candidateRelativeDL,
// breaking ties old <= revision <= replace (only a strict improvement
// replaces the current pick).
func pickBest(old, revision, replace rule.Rule, residualAtPos []data.Instance, consequent int, numAllConds, expFPRate float64) rule.Rule {
	best := candidateRelativeDL(old, residualAtPos, consequent, numAllConds, expFPRate)
	result := old

	if dl := candidateRelativeDL(revision, residualAtPos, consequent, numAllConds, expFPRate); dl < best {
		best = dl
		result = revision
	}
	if dl := candidateRelativeDL(replace, residualAtPos, consequent, numAllConds, expFPRate); dl < best {
		result = replace
	}

	return result
}

// optimizePass walks rules from position 0: positions within the original
// ruleset generate Replace/Revision candidates and keep the best of
// {old, revision, replace}; positions past it grow fresh rules for any
// residual positives, subject to the same stop criterion as buildStage,
// until none remain.
func optimizePass(rules []rule.Rule, trainingData []data.Instance, schema []data.Attribute, consequent int, expFPRate, numAllConds float64, opt Options, rnd *data.RandomSource) []rule.Rule {
	currentSize := len(rules)
	result := append([]rule.Rule(nil), rules...)
	minDL := ruleset.DataDL(expFPRate, 0, weightSum(trainingData), 0, classWeightSum(trainingData, consequent))

	position := 0
	for {
		residualAtPos := residualBefore(result, position, trainingData)

		if position >= currentSize {
			if classWeightSum(residualAtPos, consequent) <= 0 {
				break
			}

			cand := rule.Grow(residualAtPos, consequent, schema, opt.MinNo)
			if len(cand.Antecedents) == 0 {
				break
			}

			trial := append(append([]rule.Rule(nil), result...), cand)
			rs := ruleset.Rebuild(trial, trainingData, consequent, numAllConds)
			dl := sumRelativeDL(rs, expFPRate)
			if dl < minDL {
				minDL = dl
			}
			tuple := rs.Tuples[len(rs.Tuples)-1]

			if stopCriterion(dl, minDL, tuple, opt) {
				break
			}

			result = trial
			position++
			continue
		}

		pruneData, growData := stratifiedSplit(residualAtPos, opt.Folds, rnd)

		old := result[position]
		replace := rule.Prune(rule.Grow(growData, consequent, schema, opt.MinNo), pruneData, true)
		revision := rule.Prune(rule.GrowFurther(old, growData, schema, opt.MinNo), pruneData, true)

		result[position] = pickBest(old, revision, replace, residualAtPos, consequent, numAllConds, expFPRate)
		position++
	}

	return result
}
