package ruleset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/rule"
	"github.com/wlattner/furia/ruleset"
)

func perfectRuleAndData() ([]rule.Rule, []data.Instance) {
	r := rule.Rule{
		Consequent: 1,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.High, SplitPoint: 0.5},
		},
	}

	var instances []data.Instance
	for i := 0; i < 20; i++ {
		instances = append(instances, numInst(0.2, 0))
	}
	for i := 0; i < 20; i++ {
		instances = append(instances, numInst(0.8, 1))
	}
	return []rule.Rule{r}, instances
}

func TestRebuildProducesOneTuplePerRule(t *testing.T) {
	rules, instances := perfectRuleAndData()
	rs := ruleset.Rebuild(rules, instances, 1, 1)
	assert.Len(t, rs.Tuples, 1)
	assert.Equal(t, 40.0, rs.TrainSize)
}

func TestRelativeDLFinite(t *testing.T) {
	rules, instances := perfectRuleAndData()
	rs := ruleset.Rebuild(rules, instances, 1, 1)
	dl := rs.RelativeDL(0, 0.5)
	assert.False(t, math.IsInf(dl, 0))
	assert.False(t, math.IsNaN(dl))
}

func TestReduceDLDropsUselessRule(t *testing.T) {
	rules, instances := perfectRuleAndData()

	// a second, useless rule that covers nothing new
	noise := rule.Rule{
		Consequent: 1,
		Antecedents: []antecedent.Antecedent{
			{Kind: antecedent.KindNumeric, Attr: 0, Side: antecedent.High, SplitPoint: 0.95},
		},
	}
	rules = append(rules, noise)

	reduced := ruleset.ReduceDL(rules, instances, 1, 1, 0.5)
	assert.Len(t, reduced, 1)
}

func TestReduceDLNeverIncreasesDL(t *testing.T) {
	rules, instances := perfectRuleAndData()
	before := ruleset.Rebuild(rules, instances, 1, 1)
	var beforeDL float64
	for i := range rules {
		beforeDL += before.RelativeDL(i, 0.5)
	}

	reduced := ruleset.ReduceDL(rules, instances, 1, 1, 0.5)
	after := ruleset.Rebuild(reduced, instances, 1, 1)
	var afterDL float64
	for i := range reduced {
		afterDL += after.RelativeDL(i, 0.5)
	}

	assert.LessOrEqual(t, afterDL, beforeDL+1e-9)
}
