package data

import "math"

// MissingValue is the sentinel Value returns for a missing attribute.
// Instance.Missing is the authoritative flag; the X slot of a missing value
// holds a placeholder (ParseCSV writes 0), not this sentinel.
const MissingValue = math.MaxFloat64

// Instance is one row: feature values (nominal values pre-coded as their
// integer index, cast to float64, same convention as the teacher's
// [][]float64 feature matrix), a missing-value mask, a weight, and a class
// index (-1 if the class value is missing).
type Instance struct {
	X       []float64
	Missing []bool
	Weight  float64
	Class   int
}

// IsMissing reports whether attribute attr is missing on this instance.
func (inst Instance) IsMissing(attr int) bool {
	return attr < len(inst.Missing) && inst.Missing[attr]
}

// Value returns the coded value of attr, or MissingValue if missing.
func (inst Instance) Value(attr int) float64 {
	if inst.IsMissing(attr) {
		return MissingValue
	}
	return inst.X[attr]
}

// Clone returns a deep copy safe to mutate independently of inst.
func (inst Instance) Clone() Instance {
	x := make([]float64, len(inst.X))
	copy(x, inst.X)
	m := make([]bool, len(inst.Missing))
	copy(m, inst.Missing)
	return Instance{X: x, Missing: m, Weight: inst.Weight, Class: inst.Class}
}
