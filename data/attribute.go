// Package data implements the tabular-data representation FURIA learns
// from: attributes, instances, weights, and the InstanceSet collection
// operations (sort, filter, split, stratify) the rule learner relies on.
package data

// AttributeKind distinguishes nominal from numeric attributes.
type AttributeKind int

const (
	Numeric AttributeKind = iota
	Nominal
)

// Attribute describes one column of an InstanceSet's schema.
type Attribute struct {
	Name   string
	Kind   AttributeKind
	Values []string // populated for Nominal attributes, nil for Numeric
}

// NumValues returns the number of distinct nominal values, or 0 for a
// Numeric attribute.
func (a Attribute) NumValues() int {
	return len(a.Values)
}

// ValueName returns the nominal label for code v, or "" if out of range.
func (a Attribute) ValueName(v int) string {
	if v < 0 || v >= len(a.Values) {
		return ""
	}
	return a.Values[v]
}

// Capabilities describes what an InstanceSet/learner combination supports,
// mirroring a host framework's capabilities query. It carries no
// enforcement logic of its own; Fit performs the actual checks.
type Capabilities struct {
	NominalAttributes bool
	NumericAttributes bool
	DateAttributes    bool // dates are accepted as numeric (epoch-coded)
	NominalClass      bool
	MissingValues     bool
	MissingClass      bool
	MinTrainingSize   int // minimum instances; DefaultCapabilities sets 1
}

// DefaultCapabilities returns the capabilities this module always supports;
// MinTrainingSize should be overwritten with the configured fold count.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		NominalAttributes: true,
		NumericAttributes: true,
		DateAttributes:    true,
		NominalClass:      true,
		MissingValues:     true,
		MissingClass:      true,
		MinTrainingSize:   1,
	}
}
