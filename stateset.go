package automaton

import "github.com/bits-and-blooms/bitset"

var _ IntSet = &StateSet{}

// StateSet A mutable set of state numbers used while the subset construction computes the
// destination of a meta-state. Once a destination turns out to be new it is frozen into a
// FrozenIntSet and kept as a HashMap key.
type StateSet struct {
	bits        *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(numStates)),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashSetOf(s.GetArray())
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	if f, ok := other.(*FrozenIntSet); ok && f == nil {
		return false
	}
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return equalIntSets(s, is)
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		keys = append(keys, int(i))
	}
	return keys
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Add Adds one state.
func (s *StateSet) Add(state int) {
	if !s.bits.Test(uint(state)) {
		s.bits.Set(uint(state))
		s.keyChanged()
	}
}

// AddAll Adds every state of set; a nil set adds nothing.
func (s *StateSet) AddAll(set *bitset.BitSet) {
	if set == nil || !set.Any() {
		return
	}
	s.bits.InPlaceUnion(set)
	s.keyChanged()
}

// Contains Returns true if state is a member.
func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

// Intersects Returns true if the set shares at least one member with other.
func (s *StateSet) Intersects(other *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(other) > 0
}

// Freeze Returns an immutable copy tagged with the meta-state number it was assigned.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), state, s.Hash())
}
