package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/rule"
)

func noisyBoundarySet() []data.Instance {
	var out []data.Instance
	for i := 0; i < 50; i++ {
		x := float64(i) / 100
		class := 0
		if i >= 45 && i%3 == 0 { // label noise just below the boundary
			class = 1
		}
		out = append(out, data.Instance{X: []float64{x}, Missing: []bool{false}, Weight: 1, Class: class})
	}
	for i := 50; i < 100; i++ {
		x := float64(i) / 100
		class := 1
		if i < 55 && i%3 == 0 { // label noise just above the boundary
			class = 0
		}
		out = append(out, data.Instance{X: []float64{x}, Missing: []bool{false}, Weight: 1, Class: class})
	}
	return out
}

func TestFuzzifyExtendsSupportBoundPastNoise(t *testing.T) {
	r := rule.Rule{
		Consequent: 0,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.Low, SplitPoint: 0.49},
		},
	}

	out := rule.Fuzzify(r, noisyBoundarySet())
	a := out.Antecedents[0]
	assert.Greater(t, a.SupportBound, a.SplitPoint)
}

func TestFuzzifyLeavesNominalAlone(t *testing.T) {
	r := rule.Rule{
		Consequent:  0,
		Antecedents: []antecedent.Antecedent{{Kind: antecedent.KindNominal, Attr: 0, Value: 1}},
	}
	out := rule.Fuzzify(r, []data.Instance{numInst(1, 0)})
	assert.Equal(t, r.Antecedents[0], out.Antecedents[0])
}

func TestFuzzifyCrispRuleGetsWellFormedBound(t *testing.T) {
	r := rule.Rule{
		Consequent: 0,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.Low, SplitPoint: 0.49},
		},
	}
	out := rule.Fuzzify(r, []data.Instance{numInst(0.1, 0)})
	a := out.Antecedents[0]
	if !a.Fuzzy {
		assert.Equal(t, a.SplitPoint, a.SupportBound)
	}
}
