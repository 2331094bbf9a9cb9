// Package antecedent implements a single test on one attribute: either a
// nominal equality test or a numeric one-sided (LOW/HIGH) threshold that
// becomes a trapezoidal fuzzy set after fuzzification.
//
// Rather than modeling nominal and numeric tests as an interface hierarchy,
// this package collapses them into one tagged struct, dispatching
// membership on Kind, so antecedents stay plain, comparable values.
package antecedent

import "github.com/wlattner/furia/data"

// Kind distinguishes a nominal equality test from a numeric threshold test.
type Kind int

const (
	KindNominal Kind = iota
	KindNumeric
)

// Side is the direction of a numeric antecedent's open half-space.
type Side int

const (
	// Low represents "attr <= SplitPoint", fuzzifying outward toward
	// larger values.
	Low Side = iota
	// High represents "attr >= SplitPoint", fuzzifying outward toward
	// smaller values.
	High
)

// Antecedent is one test in a Rule's conjunction. For Kind == KindNominal
// only Attr and Value are meaningful. For Kind == KindNumeric, Side,
// SplitPoint, SupportBound and Fuzzy describe the (possibly fuzzified)
// threshold on attribute Attr; Value is unused.
//
// Invariants: for Side == Low, SupportBound >= SplitPoint; for Side ==
// High, SupportBound <= SplitPoint. Fuzzy is true iff a meaningful
// SupportBound was assigned during fuzzification.
type Antecedent struct {
	Kind Kind
	Attr int

	// nominal
	Value int

	// numeric
	Side         Side
	SplitPoint   float64
	SupportBound float64
	Fuzzy        bool

	// growth-time statistics, captured when the antecedent was chosen
	Gain         float64
	Covered      float64
	Accurate     float64
	AccuracyRate float64

	// Confidence is the m-estimate computed for the antecedent prefix
	// ending at this antecedent; NaN until computed.
	Confidence float64
}

// Covers returns the fuzzy membership of inst in [0, 1]. Missing values
// always yield 0.
func (a Antecedent) Covers(inst data.Instance) float64 {
	if inst.IsMissing(a.Attr) {
		return 0
	}

	switch a.Kind {
	case KindNominal:
		if int(inst.X[a.Attr]) == a.Value {
			return 1
		}
		return 0
	case KindNumeric:
		v := inst.X[a.Attr]
		if a.Side == Low {
			if v <= a.SplitPoint {
				return 1
			}
			if a.Fuzzy && v < a.SupportBound {
				return 1 - (v-a.SplitPoint)/(a.SupportBound-a.SplitPoint)
			}
			return 0
		}
		// High
		if v >= a.SplitPoint {
			return 1
		}
		if a.Fuzzy && v > a.SupportBound {
			return 1 - (a.SplitPoint-v)/(a.SplitPoint-a.SupportBound)
		}
		return 0
	}
	return 0
}

// CoversBool is the boolean form of Covers: membership > 0.
func (a Antecedent) CoversBool(inst data.Instance) bool {
	return a.Covers(inst) > 0
}

// SameTest reports whether a and b are the same attribute test for
// deduplication purposes: for nominal antecedents, same attribute and
// value; for numeric antecedents, same attribute, side, and split point
// (growth never offers a zero-gain repeat test within one rule, but this
// covers the case defensively rather than relying on that invariant).
func (a Antecedent) SameTest(b Antecedent) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindNominal {
		return a.Attr == b.Attr && a.Value == b.Value
	}
	return a.Attr == b.Attr && a.Side == b.Side && a.SplitPoint == b.SplitPoint
}
