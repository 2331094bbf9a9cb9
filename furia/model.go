// Package furia implements the FURIA ensemble driver, predictor, and
// options surface: it runs the per-class rule learner in package rule for
// every class, fuzzifies and scores the resulting rules, and predicts
// class distributions with t-norm aggregation and rule stretching.
package furia

import (
	"errors"
	"fmt"

	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/internal/flog"
	"github.com/wlattner/furia/rule"
	"github.com/wlattner/furia/ruleset"
)

// ErrClassNotNominal is returned by Fit when the training set's class
// attribute is numeric.
var ErrClassNotNominal = errors.New("class attribute must be nominal")

// ErrTooFewInstances is returned by Fit when the training set has fewer
// instances than Options.Folds.
var ErrTooFewInstances = errors.New("too few instances for configured folds")

// Model is a fitted FURIA ensemble: the feature schema, the flat rule list
// spanning every class, per-class coverage/DL bookkeeping, and the apriori
// class-weight vector used as a prior and as the uncovered-instance
// fallback.
type Model struct {
	Schema    []data.Attribute
	ClassAttr data.Attribute
	Rules     []rule.Rule
	Stats     map[int]*ruleset.RuleStats
	Apriori   []float64
	Opt       Options
}

// Fit trains a Model on instSet. It fails if the class attribute isn't
// nominal or instSet has fewer instances than the configured fold count;
// otherwise it always succeeds, possibly with zero rules (e.g. a
// one-class training set).
func Fit(instSet data.InstanceSet, opts ...func(optionConfiger)) (*Model, error) {
	opt := NewOptions(opts...)
	logger := flog.New(opt.Debug)

	classAttr := instSet.Schema[instSet.ClassAttr]
	if classAttr.Kind != data.Nominal {
		return nil, fmt.Errorf("furia: fit: %w", ErrClassNotNominal)
	}
	if instSet.Len() < opt.Folds {
		return nil, fmt.Errorf("furia: fit: %w: have %d instances, need >= %d", ErrTooFewInstances, instSet.Len(), opt.Folds)
	}

	schema := instSet.Schema[:instSet.ClassAttr]
	apriori := instSet.Apriori()
	numAllConds := ruleset.NumAllConds(schema, instSet.Instances)
	rnd := data.NewRandomSource(opt.Seed)

	var allRules []rule.Rule
	statsByClass := make(map[int]*ruleset.RuleStats)

	for c := 0; c < instSet.NumClasses(); c++ {
		if apriori[c] == 0 {
			continue // empty class: no rules, never a default prediction
		}

		logger.Debugf("learning class %d (%s)", c, classAttr.ValueName(c))
		classRules := learnClass(instSet.Instances, schema, c, apriori, numAllConds, opt, rnd, logger)
		statsByClass[c] = ruleset.Rebuild(classRules, instSet.Instances, c, numAllConds)
		allRules = append(allRules, classRules...)
	}

	tnorm := opt.TNorm.fn()
	for i, r := range allRules {
		r = dedupAntecedents(r)
		r = rule.Fuzzify(r, instSet.Instances)
		r = rule.CalculateConfidences(r, instSet.Instances, apriori, tnorm)
		allRules[i] = r
	}

	return &Model{
		Schema:    schema,
		ClassAttr: classAttr,
		Rules:     allRules,
		Stats:     statsByClass,
		Apriori:   apriori,
		Opt:       opt,
	}, nil
}

// dedupAntecedents removes earlier antecedents that test the same
// attribute and value as a later one in the same rule, keeping the later
// occurrence.
func dedupAntecedents(r rule.Rule) rule.Rule {
	keep := make([]bool, len(r.Antecedents))
	for i := range keep {
		keep[i] = true
	}

	for i := range r.Antecedents {
		for j := i + 1; j < len(r.Antecedents); j++ {
			if r.Antecedents[i].SameTest(r.Antecedents[j]) {
				keep[i] = false
				break
			}
		}
	}

	out := r.Clone()
	out.Antecedents = out.Antecedents[:0]
	for i, a := range r.Antecedents {
		if keep[i] {
			out.Antecedents = append(out.Antecedents, a)
		}
	}
	return out
}

// NumRules returns the total number of rules across all classes.
func (m *Model) NumRules() int { return len(m.Rules) }
