package furia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/furia"
	"github.com/wlattner/furia/rule"
)

func schema2() []data.Attribute {
	return []data.Attribute{
		{Name: "x", Kind: data.Numeric},
		{Name: "y", Kind: data.Numeric},
	}
}

func classAttr2() data.Attribute {
	return data.Attribute{Name: "class", Kind: data.Nominal, Values: []string{"A", "B"}}
}

func inst2(x, y float64) data.Instance {
	return data.Instance{X: []float64{x, y}, Missing: []bool{false, false}, Weight: 1, Class: -1}
}

// TestStretchWeight reproduces the rule-stretching scenario: a rule
// x<=0.5 AND y<=0.5 => A with confidence 0.9, apriori favoring B. Predicting
// on (0.3, 0.8) drops the y antecedent and weights (1+1)/(2+2)*0.9*1=0.45.
func TestStretchWeight(t *testing.T) {
	r := rule.Rule{
		Consequent: 0,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.Low, SplitPoint: 0.5, Confidence: 0.5},
			{Kind: antecedent.KindNumeric, Attr: 1, Side: antecedent.Low, SplitPoint: 0.5, Confidence: 0.9},
		},
	}

	m := &furia.Model{
		Schema:    schema2(),
		ClassAttr: classAttr2(),
		Rules:     []rule.Rule{r},
		Apriori:   []float64{1, 9},
		Opt:       furia.NewOptions(),
	}

	d := m.PredictDistribution(inst2(0.3, 0.8))
	assert.InDelta(t, 1.0, d[0]+d[1], 1e-9)
	assert.Greater(t, d[0], d[1])
}

// TestResolveConflictsSubtractsEpsilon covers a tie between two rules
// covering the same instance with equal weighted votes: the class whose
// apriori doesn't match the tied value loses by 1e-5.
func TestResolveConflictsSubtractsEpsilon(t *testing.T) {
	ruleA := rule.Rule{
		Consequent: 0,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.Low, SplitPoint: 1.0, Confidence: 0.5},
		},
	}
	ruleB := rule.Rule{
		Consequent: 1,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 1, Side: antecedent.Low, SplitPoint: 1.0, Confidence: 0.5},
		},
	}

	m := &furia.Model{
		Schema:    schema2(),
		ClassAttr: classAttr2(),
		Rules:     []rule.Rule{ruleA, ruleB},
		Apriori:   []float64{0.5, 99.5},
		Opt:       furia.NewOptions(),
	}

	d := m.PredictDistribution(inst2(0.2, 0.2))
	// both rules fully cover the instance with membership 1 and identical
	// confidence, so raw votes tie at 0.5; class 0's apriori weight (0.5)
	// equals the tied vote while class 1's (99.5) doesn't, so class 1 gets
	// nudged down and class 0 wins.
	assert.Greater(t, d[0], d[1])
}

func TestPredictDistributionRejectReturnsZero(t *testing.T) {
	m := &furia.Model{
		Schema:    schema2(),
		ClassAttr: classAttr2(),
		Rules:     nil,
		Apriori:   []float64{1, 1},
		Opt:       furia.NewOptions(furia.WithUncovAction(furia.Reject)),
	}
	d := m.PredictDistribution(inst2(0.9, 0.9))
	assert.Equal(t, []float64{0, 0}, d)
}

func TestPredictDistributionAprioriFallback(t *testing.T) {
	m := &furia.Model{
		Schema:    schema2(),
		ClassAttr: classAttr2(),
		Rules:     nil,
		Apriori:   []float64{1, 3},
		Opt:       furia.NewOptions(furia.WithUncovAction(furia.Apriori)),
	}
	d := m.PredictDistribution(inst2(0.9, 0.9))
	assert.InDelta(t, 0.25, d[0], 1e-9)
	assert.InDelta(t, 0.75, d[1], 1e-9)
}

func TestPredictDistributionSumsToOneWhenCovered(t *testing.T) {
	r := rule.Rule{
		Consequent: 0,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.Low, SplitPoint: 0.5, Confidence: 0.8},
		},
	}
	m := &furia.Model{
		Schema:    schema2(),
		ClassAttr: classAttr2(),
		Rules:     []rule.Rule{r},
		Apriori:   []float64{1, 1},
		Opt:       furia.NewOptions(),
	}
	d := m.PredictDistribution(inst2(0.1, 0.1))
	assert.InDelta(t, 1.0, d[0]+d[1], 1e-9)
}
