package automaton

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a finite automaton over an ordered alphabet of symbol tokens. States are
// opaque string identifiers; internally every state and symbol is numbered by its declaration
// order and the transition relation is stored as one destination bitset per (state, symbol)
// pair. A nil bitset means "no move", which is what makes an automaton partial or nondeterministic.
//
// An Automaton is immutable once built: use Builder to assemble one. Determinize and Minimize
// always return a fresh Automaton and never modify their input.
type Automaton struct {
	// State names in declaration order; the position is the state number.
	states []string
	index  map[string]int

	// Symbols in alphabet order; the position is the symbol number.
	alphabet []string
	symbols  map[string]int

	// transitions[state][symbol] holds the destination states, or nil if there are none.
	transitions [][]*bitset.BitSet

	initial int

	isAccept *bitset.BitSet

	// Caller-asserted determinism tag. It is not derived from the transitions.
	deterministic bool
}

// newAutomaton allocates an automaton with the given state names and alphabet and no transitions.
func newAutomaton(states, alphabet []string, initial int, deterministic bool) *Automaton {
	a := &Automaton{
		states:        states,
		index:         make(map[string]int, len(states)),
		alphabet:      alphabet,
		symbols:       make(map[string]int, len(alphabet)),
		transitions:   make([][]*bitset.BitSet, len(states)),
		initial:       initial,
		isAccept:      bitset.New(uint(len(states))),
		deterministic: deterministic,
	}
	for i, s := range states {
		a.index[s] = i
		a.transitions[i] = make([]*bitset.BitSet, len(alphabet))
	}
	for i, x := range alphabet {
		a.symbols[x] = i
	}
	return a
}

// addTransition records source --symbol--> dest using state and symbol numbers.
func (a *Automaton) addTransition(source, symbol, dest int) {
	set := a.transitions[source][symbol]
	if set == nil {
		set = bitset.New(uint(len(a.states)))
		a.transitions[source][symbol] = set
	}
	set.Set(uint(dest))
}

// nextSet returns the destination bitset for a numbered (state, symbol) pair, or nil.
func (a *Automaton) nextSet(state, symbol int) *bitset.BitSet {
	return a.transitions[state][symbol]
}

// NextStates Returns the states reachable from state on symbol, in state declaration order. The
// result is empty when the state or the symbol is unknown, or when no transition is recorded.
func (a *Automaton) NextStates(state, symbol string) []string {
	s, ok := a.index[state]
	if !ok {
		return []string{}
	}
	x, ok := a.symbols[symbol]
	if !ok {
		return []string{}
	}
	return a.names(a.nextSet(s, x))
}

// names maps a set of state numbers back to state names.
func (a *Automaton) names(set *bitset.BitSet) []string {
	if set == nil {
		return []string{}
	}
	out := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, a.states[i])
	}
	return out
}

// States Returns the state identifiers in declaration order.
func (a *Automaton) States() []string {
	out := make([]string, len(a.states))
	copy(out, a.states)
	return out
}

// Alphabet Returns the input symbols in alphabet order.
func (a *Automaton) Alphabet() []string {
	out := make([]string, len(a.alphabet))
	copy(out, a.alphabet)
	return out
}

// InitialState Returns the initial state.
func (a *Automaton) InitialState() string {
	return a.states[a.initial]
}

// FinalStates Returns the final states in declaration order.
func (a *Automaton) FinalStates() []string {
	return a.names(a.isAccept)
}

// HasState Returns true if state is one of the automaton's states.
func (a *Automaton) HasState(state string) bool {
	_, ok := a.index[state]
	return ok
}

// HasSymbol Returns true if symbol belongs to the alphabet.
func (a *Automaton) HasSymbol(symbol string) bool {
	_, ok := a.symbols[symbol]
	return ok
}

// IsFinal Returns true if state is a final (accept) state.
func (a *Automaton) IsFinal(state string) bool {
	s, ok := a.index[state]
	return ok && a.IsAccept(s)
}

// IsAccept Returns true if the numbered state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// IsDFA Returns the determinism tag the automaton was built with.
func (a *Automaton) IsDFA() bool {
	return a.deterministic
}

// IsComplete Returns true if every (state, symbol) pair has exactly one destination, which is the
// shape Determinize always produces.
func (a *Automaton) IsComplete() bool {
	for s := range a.states {
		for x := range a.alphabet {
			set := a.nextSet(s, x)
			if set == nil || set.Count() != 1 {
				return false
			}
		}
	}
	return true
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states)
}

// GetNumTransitions How many (source, symbol, dest) triples this automaton has.
func (a *Automaton) GetNumTransitions() int {
	count := 0
	for s := range a.states {
		for x := range a.alphabet {
			if set := a.nextSet(s, x); set != nil {
				count += int(set.Count())
			}
		}
	}
	return count
}

// withAlphabet returns a copy of a whose alphabet is symbols. Every symbol of a must appear in
// symbols; transitions on the added symbols are empty.
func (a *Automaton) withAlphabet(symbols []string) *Automaton {
	result := newAutomaton(a.states, symbols, a.initial, a.deterministic)
	result.isAccept = a.isAccept.Clone()
	for s := range a.states {
		for x, symbol := range a.alphabet {
			if set := a.nextSet(s, x); set != nil {
				result.transitions[s][result.symbols[symbol]] = set.Clone()
			}
		}
	}
	return result
}

func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "states=%v alphabet=%v initial=%s final=%v dfa=%v\n",
		a.states, a.alphabet, a.InitialState(), a.FinalStates(), a.deterministic)
	for s, name := range a.states {
		for x, symbol := range a.alphabet {
			if set := a.nextSet(s, x); set != nil && set.Any() {
				fmt.Fprintf(&sb, "  %s --%s--> %s\n", name, symbol, strings.Join(a.names(set), ", "))
			}
		}
	}
	return sb.String()
}
