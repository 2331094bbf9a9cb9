package data

import "sort"

// InstanceSet is a schema plus a collection of Instances, with sort,
// filter, split, stratify and copy operations, all by value — no method
// mutates the receiver.
type InstanceSet struct {
	Schema    []Attribute
	ClassAttr int
	Instances []Instance
}

// Len returns the number of instances.
func (d InstanceSet) Len() int { return len(d.Instances) }

// SortByAttribute returns a copy of d stably sorted ascending by the coded
// value of attr. Instances missing attr sort to the end, preserving their
// relative order.
func (d InstanceSet) SortByAttribute(attr int) InstanceSet {
	out := make([]Instance, len(d.Instances))
	copy(out, d.Instances)

	sort.SliceStable(out, func(i, j int) bool {
		mi, mj := out[i].IsMissing(attr), out[j].IsMissing(attr)
		if mi != mj {
			return mj // i (non-missing) sorts before j (missing)
		}
		if mi && mj {
			return false
		}
		return out[i].X[attr] < out[j].X[attr]
	})

	return InstanceSet{Schema: d.Schema, ClassAttr: d.ClassAttr, Instances: out}
}

// FirstMissing returns the index of the first instance missing attr in an
// InstanceSet already sorted by SortByAttribute(attr); equivalently, the
// count of non-missing instances.
func (d InstanceSet) FirstMissing(attr int) int {
	for i, inst := range d.Instances {
		if inst.IsMissing(attr) {
			return i
		}
	}
	return len(d.Instances)
}

// Filter returns the subset of instances for which pred returns true.
func (d InstanceSet) Filter(pred func(Instance) bool) InstanceSet {
	out := make([]Instance, 0, len(d.Instances))
	for _, inst := range d.Instances {
		if pred(inst) {
			out = append(out, inst)
		}
	}
	return InstanceSet{Schema: d.Schema, ClassAttr: d.ClassAttr, Instances: out}
}

// DeleteWithMissing returns the subset of instances that have a non-missing
// value for attr.
func (d InstanceSet) DeleteWithMissing(attr int) InstanceSet {
	return d.Filter(func(inst Instance) bool { return !inst.IsMissing(attr) })
}

// Split returns the index range [lo, hi) as a new InstanceSet, sharing the
// underlying Instance values (no copy needed; Instance fields are never
// mutated in place).
func (d InstanceSet) Split(lo, hi int) InstanceSet {
	return InstanceSet{Schema: d.Schema, ClassAttr: d.ClassAttr, Instances: d.Instances[lo:hi]}
}

// Copy returns a shallow structural copy: a new Instances slice, same
// underlying Instance values.
func (d InstanceSet) Copy() InstanceSet {
	out := make([]Instance, len(d.Instances))
	copy(out, d.Instances)
	return InstanceSet{Schema: d.Schema, ClassAttr: d.ClassAttr, Instances: out}
}

// NumClasses returns the number of distinct class values in the schema.
func (d InstanceSet) NumClasses() int {
	return d.Schema[d.ClassAttr].NumValues()
}

// TotalWeight returns the sum of instance weights over non-missing-class
// instances.
func (d InstanceSet) TotalWeight() float64 {
	var total float64
	for _, inst := range d.Instances {
		if inst.Class >= 0 {
			total += inst.Weight
		}
	}
	return total
}

// ClassWeight returns the sum of instance weights for instances labeled c.
func (d InstanceSet) ClassWeight(c int) float64 {
	var total float64
	for _, inst := range d.Instances {
		if inst.Class == c {
			total += inst.Weight
		}
	}
	return total
}

// Apriori returns the per-class weight vector: Apriori()[c] is the sum of
// instance weights for class c over non-missing-class instances.
func (d InstanceSet) Apriori() []float64 {
	out := make([]float64, d.NumClasses())
	for _, inst := range d.Instances {
		if inst.Class >= 0 {
			out[inst.Class] += inst.Weight
		}
	}
	return out
}

// StratifiedFolds partitions the instance indices into n folds, holding the
// per-class proportions roughly constant across folds, using rnd to shuffle
// each class's indices before the round-robin deal. Used by the class
// learner's grow/prune split (the folds option).
func (d InstanceSet) StratifiedFolds(n int, rnd *RandomSource) [][]int {
	folds := make([][]int, n)

	byClass := make(map[int][]int)
	for i, inst := range d.Instances {
		byClass[inst.Class] = append(byClass[inst.Class], i)
	}

	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	for _, c := range classes {
		inx := byClass[c]
		rnd.Shuffle(inx)
		for i, idx := range inx {
			f := i % n
			folds[f] = append(folds[f], idx)
		}
	}

	return folds
}
