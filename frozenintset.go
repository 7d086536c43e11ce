package automaton

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable, sorted set of state numbers together with the number of the
// meta-state it stands for.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	if f == nil {
		switch ptr := other.(type) {
		case *FrozenIntSet:
			return ptr == nil
		case *StateSet:
			return ptr == nil
		default:
			return false
		}
	}

	iset, ok := other.(IntSet)
	if !ok {
		return false
	}
	switch ptr := other.(type) {
	case *FrozenIntSet:
		if ptr == nil {
			return false
		}
	case *StateSet:
		if ptr == nil {
			return false
		}
	}
	return equalIntSets(f, iset)
}

// NewFrozenIntSet values must be sorted ascending and hashCode must be hashSetOf(values).
func NewFrozenIntSet(values []int, state int, hashCode uint64) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State The meta-state number this set was assigned.
func (f *FrozenIntSet) State() int {
	return f.state
}
