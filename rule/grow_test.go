package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/rule"
)

func numInst(x float64, class int) data.Instance {
	return data.Instance{X: []float64{x}, Missing: []bool{false}, Weight: 1, Class: class}
}

func axisAlignedSet() []data.Instance {
	var out []data.Instance
	for i := 0; i < 50; i++ {
		out = append(out, numInst(float64(i)/100, 0))
	}
	for i := 50; i < 100; i++ {
		out = append(out, numInst(float64(i)/100, 1))
	}
	return out
}

func TestGrowRecoversAxisAlignedSplit(t *testing.T) {
	schema := []data.Attribute{{Name: "x", Kind: data.Numeric}}
	r := rule.Grow(axisAlignedSet(), 0, schema, 2.0)

	assert.Len(t, r.Antecedents, 1)
	assert.Equal(t, antecedent.KindNumeric, r.Antecedents[0].Kind)
	assert.Equal(t, antecedent.Low, r.Antecedents[0].Side)
	assert.InDelta(t, 0.49, r.Antecedents[0].SplitPoint, 1e-9)
}

func TestGrowNominalXOR(t *testing.T) {
	schema := []data.Attribute{
		{Name: "a", Kind: data.Nominal, Values: []string{"0", "1"}},
		{Name: "b", Kind: data.Nominal, Values: []string{"0", "1"}},
	}
	var growData []data.Instance
	for _, a := range []float64{0, 1} {
		for _, b := range []float64{0, 1} {
			class := 0
			if (a == 1) != (b == 1) {
				class = 1
			}
			for i := 0; i < 10; i++ {
				growData = append(growData, data.Instance{
					X: []float64{a, b}, Missing: []bool{false, false}, Weight: 1, Class: class,
				})
			}
		}
	}

	r := rule.Grow(growData, 1, schema, 2.0)
	assert.NotEmpty(t, r.Antecedents)
	for _, a := range r.Antecedents {
		assert.Equal(t, antecedent.KindNominal, a.Kind)
	}
}

func TestGrowFurtherRestrictsToCovered(t *testing.T) {
	schema := []data.Attribute{{Name: "x", Kind: data.Numeric}}
	existing := rule.Rule{
		Consequent:  1,
		Antecedents: []antecedent.Antecedent{{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.High, SplitPoint: 0.5}},
	}

	extended := rule.GrowFurther(existing, axisAlignedSet(), schema, 2.0)
	assert.GreaterOrEqual(t, len(extended.Antecedents), 1)
	for _, inst := range axisAlignedSet() {
		if extended.Covers(inst) {
			assert.True(t, existing.Covers(inst))
		}
	}
}

func TestGrowEmptyDataReturnsNoAntecedents(t *testing.T) {
	schema := []data.Attribute{{Name: "x", Kind: data.Numeric}}
	r := rule.Grow(nil, 0, schema, 2.0)
	assert.Empty(t, r.Antecedents)
}
