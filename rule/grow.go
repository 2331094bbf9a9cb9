package rule

import (
	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
)

// weightSum returns the total instance weight.
func weightSum(instances []data.Instance) float64 {
	var s float64
	for _, inst := range instances {
		s += inst.Weight
	}
	return s
}

// classWeightSum returns the total weight of instances labeled class.
func classWeightSum(instances []data.Instance, class int) float64 {
	var s float64
	for _, inst := range instances {
		if inst.Class == class {
			s += inst.Weight
		}
	}
	return s
}

// Grow repeatedly adds the
// highest-info-gain antecedent over the unused attributes until growData
// is exhausted, every attribute has been used, defAccRt reaches 1, the
// global winner's gain isn't strictly positive, or its accurate weight
// falls below minNo. schema describes the feature attributes only (aligned
// with data.Instance.X indices, i.e. the class attribute is excluded).
func Grow(growData []data.Instance, consequent int, schema []data.Attribute, minNo float64) Rule {
	used := make([]bool, len(schema))
	return growFrom(nil, used, growData, consequent, schema, minNo)
}

// GrowFurther continues growing existing's antecedent list (the Revision
// candidate during optimization): growData is first restricted to the
// instances existing already covers, nominal attributes existing already
// tested are marked used, and growth resumes from there.
func GrowFurther(existing Rule, growData []data.Instance, schema []data.Attribute, minNo float64) Rule {
	used := make([]bool, len(schema))
	antecedents := make([]antecedent.Antecedent, len(existing.Antecedents))
	copy(antecedents, existing.Antecedents)

	for _, a := range antecedents {
		if a.Kind == antecedent.KindNominal {
			used[a.Attr] = true
		}
	}

	var covered []data.Instance
	for _, inst := range growData {
		if existing.Covers(inst) {
			covered = append(covered, inst)
		}
	}

	return growFrom(antecedents, used, covered, existing.Consequent, schema, minNo)
}

func growFrom(antecedents []antecedent.Antecedent, used []bool, growData []data.Instance, consequent int, schema []data.Attribute, minNo float64) Rule {
	current := growData

	for len(current) > 0 && hasUnused(used) {
		totalWeight := weightSum(current)
		defAcc := classWeightSum(current, consequent)
		defAccRt := (defAcc + 1) / (totalWeight + 1)

		if defAccRt >= 1 {
			break
		}

		var (
			bestA    antecedent.Antecedent
			bestBag  []data.Instance
			bestGain = 0.0
			bestAttr = -1
			foundAny bool
		)

		for attr, attrSchema := range schema {
			if used[attr] {
				continue
			}

			var (
				a       antecedent.Antecedent
				covered []data.Instance
				ok      bool
			)

			if attrSchema.Kind == data.Nominal {
				a, covered, ok = antecedent.SplitNominal(current, attr, attrSchema.NumValues(), defAccRt, consequent)
			} else {
				a, covered, _, ok = antecedent.SplitNumeric(current, attr, defAccRt, consequent)
			}

			if !ok {
				continue
			}

			if !foundAny || a.Gain > bestGain {
				foundAny = true
				bestGain = a.Gain
				bestA = a
				bestBag = covered
				bestAttr = attr
			}
		}

		if !foundAny || bestGain <= 0 {
			break
		}

		if bestA.Accurate < minNo {
			break
		}

		antecedents = append(antecedents, bestA)

		if bestA.Kind == antecedent.KindNominal {
			used[bestAttr] = true
		}

		current = bestBag
	}

	return Rule{Consequent: consequent, Antecedents: antecedents}
}

func hasUnused(used []bool) bool {
	for _, u := range used {
		if !u {
			return true
		}
	}
	return false
}
