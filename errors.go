package automaton

import "errors"

var (
	// ErrNotDFA is returned by Minimize when the automaton is not tagged as deterministic.
	ErrNotDFA = errors.New("automaton is not a DFA")

	// ErrNondeterministicTransition is returned by Minimize when an automaton tagged as a DFA has a
	// reachable (state, symbol) pair with more than one destination.
	ErrNondeterministicTransition = errors.New("DFA has a transition with more than one destination")

	// ErrMalformedAutomaton is returned by Builder.Finish when the collected definition breaks one of
	// the automaton invariants (unknown initial state, final state, symbol or destination).
	ErrMalformedAutomaton = errors.New("malformed automaton")

	// ErrTooComplexToDeterminize is returned by DeterminizeWithLimit when the subset construction
	// would create more meta-states than the work limit allows.
	ErrTooComplexToDeterminize = errors.New("automaton is too complex to determinize")
)
