package furia

import (
	"fmt"
	"io"

	"github.com/wlattner/furia/antecedent"
	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/rule"
)

// Report writes a human-readable rule listing to w: one line per rule,
// its antecedents joined by AND, the consequent class name, and its
// confidence rounded to 0.01 as "(CF = x.xx)".
func (m *Model) Report(w io.Writer) {
	fmt.Fprintf(w, "%d rules over %d classes\n\n", len(m.Rules), m.ClassAttr.NumValues())

	for _, r := range m.Rules {
		fmt.Fprintf(w, "%s\n", m.ruleString(r))
	}
}

func (m *Model) ruleString(r rule.Rule) string {
	if len(r.Antecedents) == 0 {
		return fmt.Sprintf("(default) => %s", m.ClassAttr.ValueName(r.Consequent))
	}

	s := "IF "
	for i, a := range r.Antecedents {
		if i > 0 {
			s += " AND "
		}
		s += formatAntecedent(m.Schema, a)
	}
	s += fmt.Sprintf(" THEN %s (CF = %.2f)", m.ClassAttr.ValueName(r.Consequent), r.Confidence())
	return s
}

func formatAntecedent(schema []data.Attribute, a antecedent.Antecedent) string {
	name := schema[a.Attr].Name

	if a.Kind == antecedent.KindNominal {
		return fmt.Sprintf("%s = %s", name, schema[a.Attr].ValueName(a.Value))
	}

	op := "<="
	if a.Side == antecedent.High {
		op = ">="
	}
	if !a.Fuzzy {
		return fmt.Sprintf("%s %s %.4g", name, op, a.SplitPoint)
	}
	return fmt.Sprintf("%s %s %.4g (~%.4g)", name, op, a.SplitPoint, a.SupportBound)
}
