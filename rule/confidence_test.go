package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/rule"
)

// axisAlignedSet2D has a noisy region covered by x>=0.3 alone (mixed
// classes) and a pure region additionally covered by y>=0.5 (all class 1).
func axisAlignedSet2D() []data.Instance {
	var out []data.Instance
	for i := 0; i < 10; i++ {
		out = append(out, data.Instance{X: []float64{0.4, 0.1}, Missing: []bool{false, false}, Weight: 1, Class: 0})
		out = append(out, data.Instance{X: []float64{0.4, 0.6}, Missing: []bool{false, false}, Weight: 1, Class: 1})
	}
	return out
}

func TestCalculateConfidencesEmptyRule(t *testing.T) {
	r := rule.Rule{Consequent: 0}
	out := rule.CalculateConfidences(r, axisAlignedSet(), []float64{50, 50}, rule.ProdTNorm)
	assert.Equal(t, r, out)
}

func TestCalculateConfidencesPerfectSeparation(t *testing.T) {
	r := rule.Rule{
		Consequent: 1,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.High, SplitPoint: 0.5},
		},
	}
	out := rule.CalculateConfidences(r, axisAlignedSet(), []float64{50, 50}, rule.ProdTNorm)
	// perfect coverage with 50/50 prior should be high but not saturate due
	// to the m-estimate's smoothing
	assert.Greater(t, out.Confidence(), 0.9)
	assert.Less(t, out.Confidence(), 1.0)
}

func TestCalculateConfidencesMonotoneAlongPrefix(t *testing.T) {
	r := rule.Rule{
		Consequent: 1,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.High, SplitPoint: 0.3},
			{Kind: antecedent.KindNumeric, Attr: 1, Side: antecedent.High, SplitPoint: 0.5},
		},
	}

	instances := axisAlignedSet2D()

	out := rule.CalculateConfidences(r, instances, []float64{50, 50}, rule.ProdTNorm)
	assert.LessOrEqual(t, out.Antecedents[0].Confidence, out.Antecedents[1].Confidence+1e-9)
}
