package data

import (
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource is a reproducible, seeded generator of uniform integers and
// doubles, shared by stratification and fold partitioning. Built on the
// golang.org/x/exp/rand + gonum/stat/distuv pairing for seeded sampling.
type RandomSource struct {
	src  xrand.Source
	r    *xrand.Rand
	unit distuv.Uniform
}

// NewRandomSource returns a RandomSource whose sequence is fully determined
// by seed; two RandomSources built from the same seed produce identical
// Intn/Float64 sequences.
func NewRandomSource(seed uint64) *RandomSource {
	src := xrand.NewSource(seed)
	return &RandomSource{
		src:  src,
		r:    xrand.New(src),
		unit: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

// Intn returns a uniform integer in [0, n).
func (rs *RandomSource) Intn(n int) int {
	return rs.r.Intn(n)
}

// Float64 returns a uniform double in [0, 1).
func (rs *RandomSource) Float64() float64 {
	return rs.unit.Rand()
}

// Shuffle permutes inx in place using a Fisher-Yates shuffle driven by this
// source.
func (rs *RandomSource) Shuffle(inx []int) {
	for i := len(inx) - 1; i > 0; i-- {
		j := rs.Intn(i + 1)
		inx[i], inx[j] = inx[j], inx[i]
	}
}
