package automaton

// IntSet A set of state numbers usable as a HashMap key. GetArray returns the members in
// ascending order, so two sets with the same members always compare equal.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

// equalIntSets compares two IntSets member by member.
func equalIntSets(a, b IntSet) bool {
	if a.Size() != b.Size() || a.Hash() != b.Hash() {
		return false
	}
	x, y := a.GetArray(), b.GetArray()
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
