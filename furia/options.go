package furia

import "github.com/wlattner/furia/rule"

// UncovAction selects what PredictDistribution does when no rule covers an
// instance.
type UncovAction int

const (
	// Stretch drops trailing antecedents from each rule until a prefix
	// covers the instance, and takes the best such stretched vote.
	Stretch UncovAction = iota
	// Apriori returns the normalized training class distribution.
	Apriori
	// Reject returns an all-zero distribution.
	Reject
)

// TNormKind selects the fuzzy AND used to combine antecedent memberships.
type TNormKind int

const (
	// Prod aggregates memberships by product (the default).
	Prod TNormKind = iota
	// Min aggregates memberships by min.
	Min
)

func (t TNormKind) fn() func([]float64) float64 {
	if t == Min {
		return rule.MinTNorm
	}
	return rule.ProdTNorm
}

// Options holds every tunable parameter of the learner.
type Options struct {
	Folds          int
	MinNo          float64
	Optimizations  int
	Seed           uint64
	CheckErrorRate bool
	UncovAction    UncovAction
	TNorm          TNormKind
	Debug          bool
}

// methods for the optionConfiger interface
func (o *Options) setFolds(n int)               { o.Folds = n }
func (o *Options) setMinNo(v float64)           { o.MinNo = v }
func (o *Options) setOptimizations(n int)       { o.Optimizations = n }
func (o *Options) setSeed(s uint64)             { o.Seed = s }
func (o *Options) setCheckErrorRate(b bool)     { o.CheckErrorRate = b }
func (o *Options) setUncovAction(a UncovAction) { o.UncovAction = a }
func (o *Options) setTNorm(t TNormKind)         { o.TNorm = t }
func (o *Options) setDebug(b bool)              { o.Debug = b }

type optionConfiger interface {
	setFolds(n int)
	setMinNo(v float64)
	setOptimizations(n int)
	setSeed(s uint64)
	setCheckErrorRate(b bool)
	setUncovAction(a UncovAction)
	setTNorm(t TNormKind)
	setDebug(b bool)
}

// Folds sets the number of reduced-error-pruning folds (one prunes, the
// rest grow). Default 3.
func Folds(n int) func(optionConfiger) {
	return func(o optionConfiger) { o.setFolds(n) }
}

// MinNo sets the minimum covered-positive weight a growth step must reach
// to keep its antecedent. Default 2.0.
func MinNo(v float64) func(optionConfiger) {
	return func(o optionConfiger) { o.setMinNo(v) }
}

// Optimizations sets the number of post-build optimization passes.
// Default 2.
func Optimizations(n int) func(optionConfiger) {
	return func(o optionConfiger) { o.setOptimizations(n) }
}

// Seed sets the RNG seed driving stratification and fold partitioning.
// Default 1.
func Seed(s uint64) func(optionConfiger) {
	return func(o optionConfiger) { o.setSeed(s) }
}

// CheckErrorRate toggles whether the build/optimize stop criterion also
// fires when covered-negative weight reaches half of covered weight.
// Default true.
func CheckErrorRate(b bool) func(optionConfiger) {
	return func(o optionConfiger) { o.setCheckErrorRate(b) }
}

// WithUncovAction sets the fallback used when no rule covers an instance.
// Default Stretch.
func WithUncovAction(a UncovAction) func(optionConfiger) {
	return func(o optionConfiger) { o.setUncovAction(a) }
}

// WithTNorm sets the t-norm used to aggregate antecedent memberships.
// Default Prod.
func WithTNorm(t TNormKind) func(optionConfiger) {
	return func(o optionConfiger) { o.setTNorm(t) }
}

// Debug enables diagnostic logging during Fit. Default false.
func Debug(b bool) func(optionConfiger) {
	return func(o optionConfiger) { o.setDebug(b) }
}

// NewOptions returns Options with FURIA's published defaults, then applies
// opts in order.
func NewOptions(opts ...func(optionConfiger)) Options {
	o := Options{
		Folds:          3,
		MinNo:          2.0,
		Optimizations:  2,
		Seed:           1,
		CheckErrorRate: true,
		UncovAction:    Stretch,
		TNorm:          Prod,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
