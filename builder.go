package automaton

import "fmt"

// Builder Collects the pieces of an automaton by name and validates them in Finish. States and
// symbols keep the order in which they were first declared; declaring one twice is a no-op.
// Transitions added for the same (source, symbol) pair accumulate.
type Builder struct {
	states   []string
	seen     map[string]struct{}
	alphabet []string
	symbols  map[string]struct{}

	transitions []pendingTransition
	initial     string
	hasInitial  bool
	accept      []string

	deterministic bool
}

type pendingTransition struct {
	source string
	symbol string
	dests  []string
}

func NewBuilder() *Builder {
	return &Builder{
		seen:    make(map[string]struct{}),
		symbols: make(map[string]struct{}),
	}
}

// CreateState Declare a state.
func (b *Builder) CreateState(state string) *Builder {
	if _, ok := b.seen[state]; !ok {
		b.seen[state] = struct{}{}
		b.states = append(b.states, state)
	}
	return b
}

// AddSymbol Declare an alphabet symbol. Alphabet order is declaration order.
func (b *Builder) AddSymbol(symbol string) *Builder {
	if _, ok := b.symbols[symbol]; !ok {
		b.symbols[symbol] = struct{}{}
		b.alphabet = append(b.alphabet, symbol)
	}
	return b
}

// SetInitial Set the initial state.
func (b *Builder) SetInitial(state string) *Builder {
	b.initial = state
	b.hasInitial = true
	return b
}

// SetAccept Mark states as final.
func (b *Builder) SetAccept(states ...string) *Builder {
	b.accept = append(b.accept, states...)
	return b
}

// SetDeterministic Tag the automaton as a DFA (or not). The tag is trusted, not verified.
func (b *Builder) SetDeterministic(deterministic bool) *Builder {
	b.deterministic = deterministic
	return b
}

// AddTransition Add source --symbol--> dest for every dest. With no dests the call only records
// that the pair was mentioned, which has no effect on the language.
func (b *Builder) AddTransition(source, symbol string, dests ...string) *Builder {
	b.transitions = append(b.transitions, pendingTransition{
		source: source,
		symbol: symbol,
		dests:  dests,
	})
	return b
}

// GetNumStates How many distinct states have been declared so far.
func (b *Builder) GetNumStates() int {
	return len(b.states)
}

// Finish Validates the collected definition and returns the automaton.
func (b *Builder) Finish() (*Automaton, error) {
	if !b.hasInitial {
		return nil, fmt.Errorf("%w: no initial state", ErrMalformedAutomaton)
	}
	if _, ok := b.seen[b.initial]; !ok {
		return nil, fmt.Errorf("%w: initial state %q is not a declared state", ErrMalformedAutomaton, b.initial)
	}

	states := make([]string, len(b.states))
	copy(states, b.states)
	alphabet := make([]string, len(b.alphabet))
	copy(alphabet, b.alphabet)

	a := newAutomaton(states, alphabet, 0, b.deterministic)
	a.initial = a.index[b.initial]

	for _, s := range b.accept {
		i, ok := a.index[s]
		if !ok {
			return nil, fmt.Errorf("%w: final state %q is not a declared state", ErrMalformedAutomaton, s)
		}
		a.isAccept.Set(uint(i))
	}

	for _, t := range b.transitions {
		source, ok := a.index[t.source]
		if !ok {
			return nil, fmt.Errorf("%w: transition from unknown state %q", ErrMalformedAutomaton, t.source)
		}
		symbol, ok := a.symbols[t.symbol]
		if !ok {
			return nil, fmt.Errorf("%w: transition %s --%s--> uses a symbol outside the alphabet",
				ErrMalformedAutomaton, t.source, t.symbol)
		}
		for _, d := range t.dests {
			dest, ok := a.index[d]
			if !ok {
				return nil, fmt.Errorf("%w: transition %s --%s--> %s leads to an unknown state",
					ErrMalformedAutomaton, t.source, t.symbol, d)
			}
			a.addTransition(source, symbol, dest)
		}
	}

	return a, nil
}
