package furia

import "github.com/wlattner/furia/data"

// PredictDistribution returns a length-|classes| distribution for inst,
// summing to 1 (or all-zero under Reject when nothing covers inst). Rules
// vote membership*confidence into their consequent class; if nothing
// covers inst, Options.UncovAction decides the fallback: Apriori returns
// the normalized training distribution, Reject returns all zeros, and the
// default Stretch drops trailing antecedents from every rule until some
// prefix covers inst and takes the single best such vote. Tied maxima are
// broken by nudging every tied class whose apriori doesn't match the tied
// value down by 1e-5.
func (m *Model) PredictDistribution(inst data.Instance) []float64 {
	d := make([]float64, m.ClassAttr.NumValues())
	tnorm := m.Opt.TNorm.fn()

	for _, r := range m.Rules {
		if len(r.Antecedents) == 0 {
			continue
		}
		if mem := r.Membership(inst, tnorm); mem > 0 {
			d[r.Consequent] += mem * r.Confidence()
		}
	}

	if sumOf(d) == 0 {
		switch m.Opt.UncovAction {
		case Apriori:
			return normalizedApriori(m.Apriori)
		case Reject:
			return d
		default: // Stretch
			d = m.stretch(inst)
		}
	}

	resolveConflicts(d, m.Apriori)

	if sumOf(d) == 0 {
		return normalizedApriori(m.Apriori)
	}

	normalize(d)
	return d
}

// stretch computes the rule-stretching fallback: for every rule, it finds
// the smallest antecedent index not covering inst, truncates to the prefix
// before it, and—if that prefix is non-empty and covers inst—takes the
// maximum (not sum) of its stretched weight into the consequent class.
func (m *Model) stretch(inst data.Instance) []float64 {
	d := make([]float64, m.ClassAttr.NumValues())
	tnorm := m.Opt.TNorm.fn()

	for _, r := range m.Rules {
		before := len(r.Antecedents)
		if before == 0 {
			continue
		}

		cut := -1
		for i, a := range r.Antecedents {
			if a.Covers(inst) <= 0 {
				cut = i
				break
			}
		}
		if cut <= 0 {
			continue // fully covers (no cut) or empty after cutting at 0
		}

		stretched := r.Clone()
		stretched.Antecedents = stretched.Antecedents[:cut]

		mem := stretched.Membership(inst, tnorm)
		if mem <= 0 {
			continue
		}

		after := len(stretched.Antecedents)
		weight := (float64(after+1) / float64(before+2)) * r.Confidence() * mem
		if weight > d[r.Consequent] {
			d[r.Consequent] = weight
		}
	}

	return d
}

// resolveConflicts breaks ties among classes sharing d's maximum: every
// tied class whose apriori weight doesn't equal the tied value is nudged
// down by 1e-5, deterministically favoring the class whose apriori matches.
func resolveConflicts(d, apriori []float64) {
	var maxV float64
	for _, v := range d {
		if v > maxV {
			maxV = v
		}
	}
	if maxV <= 0 {
		return
	}

	tied := 0
	for _, v := range d {
		if v == maxV {
			tied++
		}
	}
	if tied < 2 {
		return
	}

	for i, v := range d {
		if v == maxV && apriori[i] != maxV {
			d[i] -= 1e-5
		}
	}
}

func sumOf(d []float64) float64 {
	var s float64
	for _, v := range d {
		s += v
	}
	return s
}

func normalize(d []float64) {
	sum := sumOf(d)
	if sum <= 0 {
		return
	}
	for i := range d {
		d[i] /= sum
	}
}

func normalizedApriori(apriori []float64) []float64 {
	out := make([]float64, len(apriori))
	copy(out, apriori)
	normalize(out)
	return out
}
