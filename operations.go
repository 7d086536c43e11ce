package automaton

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// DefaultDeterminizeWorkLimit A reasonable meta-state budget for DeterminizeWithLimit when the
// caller has nothing better to go on.
const DefaultDeterminizeWorkLimit = 10000

// Determinize Converts a (possibly nondeterministic) automaton into an equivalent DFA using the
// subset construction. Worst case complexity: exponential in number of states.
//
// The result is always freshly built, tagged as a DFA and complete: every (state, symbol) pair
// has exactly one destination. Meta-states are named "0", "1", ... in discovery order, which is
// deterministic because symbols are visited in alphabet order. The empty meta-state, once
// discovered, is kept as an absorbing dead state.
func Determinize(a *Automaton) *Automaton {
	result, _ := determinize(a, 0)
	return result
}

// DeterminizeWithLimit Like Determinize, but fails with ErrTooComplexToDeterminize once the
// construction would need more than workLimit meta-states. A workLimit <= 0 means no limit.
func DeterminizeWithLimit(a *Automaton, workLimit int) (*Automaton, error) {
	return determinize(a, workLimit)
}

func determinize(a *Automaton, workLimit int) (*Automaton, error) {
	numStates := a.GetNumStates()
	numSymbols := len(a.alphabet)

	initialSet := NewStateSet(numStates)
	initialSet.Add(a.initial)

	// Discovery order doubles as the FIFO worklist: everything past upto is still unprocessed.
	worklist := []*FrozenIntSet{initialSet.Freeze(0)}
	newState := NewHashMap[int](WithCapacity(16))
	newState.Set(worklist[0], 0)

	delta := make([][]int, 0, 1)
	for upto := 0; upto < len(worklist); upto++ {
		current := worklist[upto]
		row := make([]int, numSymbols)

		for x := 0; x < numSymbols; x++ {
			next := NewStateSet(numStates)
			for _, s := range current.GetArray() {
				next.AddAll(a.nextSet(s, x))
			}

			id, ok := newState.Get(next)
			if !ok {
				id = len(worklist)
				if workLimit > 0 && id >= workLimit {
					return nil, fmt.Errorf("%w: more than %d meta-states", ErrTooComplexToDeterminize, workLimit)
				}
				frozen := next.Freeze(id)
				worklist = append(worklist, frozen)
				newState.Set(frozen, id)
			}
			row[x] = id
		}
		delta = append(delta, row)
	}

	names := make([]string, len(worklist))
	for i := range names {
		names[i] = strconv.Itoa(i)
	}

	result := newAutomaton(names, a.Alphabet(), 0, true)
	for i, meta := range worklist {
		for x, dest := range delta[i] {
			result.addTransition(i, x, dest)
		}
		for _, s := range meta.GetArray() {
			if a.IsAccept(s) {
				result.isAccept.Set(uint(i))
				break
			}
		}
	}
	return result, nil
}

// reachableStates Returns the states reachable from the initial state, in breadth-first order,
// following every destination of every symbol.
func reachableStates(a *Automaton) []int {
	seen := bitset.New(uint(a.GetNumStates()))
	workList := []int{a.initial}
	seen.Set(uint(a.initial))

	order := make([]int, 0, a.GetNumStates())
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		order = append(order, state)

		for x := range a.alphabet {
			set := a.nextSet(state, x)
			if set == nil {
				continue
			}
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				if !seen.Test(d) {
					seen.Set(d)
					workList = append(workList, int(d))
				}
			}
		}
	}
	return order
}

// IsEmptyAutomaton
// Returns true if the given automaton accepts no strings.
func IsEmptyAutomaton(a *Automaton) bool {
	if a.IsAccept(a.initial) {
		// Common case: it accepts the empty string
		return false
	}
	for _, s := range reachableStates(a) {
		if a.IsAccept(s) {
			return false
		}
	}
	return true
}

// RemoveUnreachable Returns a copy of a without the states that cannot be reached from the
// initial state. Surviving states keep their names and relative order.
func RemoveUnreachable(a *Automaton) *Automaton {
	reachable := reachableStates(a)
	slices.Sort(reachable)

	mp := make([]int, a.GetNumStates())
	for i := range mp {
		mp[i] = -1
	}
	names := make([]string, len(reachable))
	for i, s := range reachable {
		mp[s] = i
		names[i] = a.states[s]
	}

	result := newAutomaton(names, a.Alphabet(), mp[a.initial], a.deterministic)
	for _, s := range reachable {
		if a.IsAccept(s) {
			result.isAccept.Set(uint(mp[s]))
		}
		for x := range a.alphabet {
			set := a.nextSet(s, x)
			if set == nil {
				continue
			}
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				result.addTransition(mp[s], x, mp[d])
			}
		}
	}
	return result
}

// Totalize Returns a copy of a in which every (state, symbol) pair without a destination goes to
// an added non-accepting dead state that loops to itself. If nothing is missing the copy has the
// same states as a.
func Totalize(a *Automaton) *Automaton {
	missing := false
	for s := range a.states {
		for x := range a.alphabet {
			if set := a.nextSet(s, x); set == nil || !set.Any() {
				missing = true
			}
		}
	}

	names := a.States()
	dead := -1
	if missing {
		dead = len(names)
		names = append(names, freshStateName(a, "dead"))
	}

	result := newAutomaton(names, a.Alphabet(), a.initial, a.deterministic)
	for s := range a.states {
		if a.IsAccept(s) {
			result.isAccept.Set(uint(s))
		}
		for x := range a.alphabet {
			set := a.nextSet(s, x)
			if set == nil || !set.Any() {
				result.addTransition(s, x, dead)
				continue
			}
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				result.addTransition(s, x, int(d))
			}
		}
	}
	if dead >= 0 {
		for x := range a.alphabet {
			result.addTransition(dead, x, dead)
		}
	}
	return result
}

// freshStateName Returns base, or base with a numeric suffix, such that the name is not a state
// of a.
func freshStateName(a *Automaton, base string) string {
	name := base
	for i := 1; a.HasState(name); i++ {
		name = base + "_" + strconv.Itoa(i)
	}
	return name
}

// Complement Returns a DFA accepting exactly the words over a's alphabet that a rejects.
func Complement(a *Automaton) *Automaton {
	// Determinize always builds a fresh, complete automaton, so flipping it in place is safe.
	result := Determinize(a)
	for s := 0; s < result.GetNumStates(); s++ {
		result.isAccept.SetTo(uint(s), !result.IsAccept(s))
	}
	return result
}
