package automaton

import (
	"fmt"
	"slices"
	"strconv"
)

// Minimize
// Reduces a DFA to its minimal equivalent using Myhill-Nerode partition refinement. The result is
// unique up to state renaming; states are named "0", "1", ... by block number.
//
// The automaton must be tagged as a DFA, otherwise ErrNotDFA is returned. A reachable
// (state, symbol) pair with several destinations fails with ErrNondeterministicTransition. A
// reachable pair with no destination is treated as a move to an implicit dead state, so partial
// DFAs minimize to a complete result.
func Minimize(a *Automaton) (*Automaton, error) {
	if !a.IsDFA() {
		return nil, fmt.Errorf("%w: minimization can only be applied to a DFA", ErrNotDFA)
	}

	table, err := newDFATable(a)
	if err != nil {
		return nil, err
	}

	blocks, _ := refine(table)
	return rebuild(a.Alphabet(), table, blocks), nil
}

// dfaTable The minimizer's private working copy: only reachable states, renumbered in
// breadth-first order (so the initial state is 0), plus the dead state when one is needed.
type dfaTable struct {
	delta   [][]int
	accept  []bool
	initial int
}

func newDFATable(a *Automaton) (*dfaTable, error) {
	reachable := reachableStates(a)

	mp := make([]int, a.GetNumStates())
	for i, s := range reachable {
		mp[s] = i
	}

	t := &dfaTable{
		delta:   make([][]int, len(reachable), len(reachable)+1),
		accept:  make([]bool, len(reachable), len(reachable)+1),
		initial: 0,
	}

	dead := -1
	for i, s := range reachable {
		t.accept[i] = a.IsAccept(s)
		row := make([]int, len(a.alphabet))
		for x := range a.alphabet {
			set := a.nextSet(s, x)
			switch {
			case set == nil || set.None():
				if dead < 0 {
					dead = len(reachable)
				}
				row[x] = dead
			case set.Count() > 1:
				return nil, fmt.Errorf("%w: state %q on symbol %q has %d destinations",
					ErrNondeterministicTransition, a.states[s], a.alphabet[x], set.Count())
			default:
				d, _ := set.NextSet(0)
				row[x] = mp[d]
			}
		}
		t.delta[i] = row
	}

	if dead >= 0 {
		row := make([]int, len(a.alphabet))
		for x := range row {
			row[x] = dead
		}
		t.delta = append(t.delta, row)
		t.accept = append(t.accept, false)
	}
	return t, nil
}

// signature The block reached on every symbol, in alphabet order.
type signature []int

func (s signature) Hash() uint64 {
	return hashSequence(s)
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	return ok && slices.Equal(s, o)
}

// refine Splits the final/non-final partition until a pass no longer changes the number of
// blocks, and returns the blocks plus the block count each pass started from. Blocks only ever split, so a
// pass that keeps the count keeps the contents too. Members of every block stay in ascending
// order and sub-blocks appear in order of their smallest member, which makes block numbering
// deterministic.
func refine(t *dfaTable) ([][]int, []int) {
	var finals, others []int
	for s, accept := range t.accept {
		if accept {
			finals = append(finals, s)
		} else {
			others = append(others, s)
		}
	}

	blocks := make([][]int, 0, 2)
	if len(finals) > 0 {
		blocks = append(blocks, finals)
	}
	if len(others) > 0 {
		blocks = append(blocks, others)
	}

	blockOf := make([]int, len(t.delta))
	var counts []int
	for {
		assignBlocks(blocks, blockOf)
		counts = append(counts, len(blocks))

		next := make([][]int, 0, len(blocks))
		for _, block := range blocks {
			groups := NewHashMap[int](WithCapacity(len(block)))
			for _, s := range block {
				sig := make(signature, len(t.delta[s]))
				for x, d := range t.delta[s] {
					sig[x] = blockOf[d]
				}
				g, ok := groups.Get(sig)
				if !ok {
					g = len(next)
					groups.Set(sig, g)
					next = append(next, nil)
				}
				next[g] = append(next[g], s)
			}
		}

		if len(next) == len(blocks) {
			return blocks, counts
		}
		blocks = next
	}
}

func assignBlocks(blocks [][]int, blockOf []int) {
	for b, block := range blocks {
		for _, s := range block {
			blockOf[s] = b
		}
	}
}

// rebuild Turns the final partition into an automaton, one state per block. Any member can
// represent its block since all members agree on every symbol's destination block.
func rebuild(alphabet []string, t *dfaTable, blocks [][]int) *Automaton {
	blockOf := make([]int, len(t.delta))
	assignBlocks(blocks, blockOf)

	names := make([]string, len(blocks))
	for b := range blocks {
		names[b] = strconv.Itoa(b)
	}

	result := newAutomaton(names, alphabet, blockOf[t.initial], true)
	for b, block := range blocks {
		representative := block[0]
		if t.accept[representative] {
			result.isAccept.Set(uint(b))
		}
		for x, d := range t.delta[representative] {
			result.addTransition(b, x, blockOf[d])
		}
	}
	return result
}
