package furia_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/rule"

	"github.com/wlattner/furia/furia"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	r := rule.Rule{
		Consequent: 1,
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

	var buf bytes.Buffer
	assert.NoError(t, m.Save(&buf))

	loaded, err := furia.Load(&buf)
	assert.NoError(t, err)
	assert.Equal(t, m.Rules, loaded.Rules)
	assert.Equal(t, m.Apriori, loaded.Apriori)
	assert.Equal(t, m.Opt, loaded.Opt)
}
