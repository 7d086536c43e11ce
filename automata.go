package automaton

import "fmt"

// Automata Factory for small, commonly needed automata over a caller-supplied alphabet. Every
// result is tagged as a DFA.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty(alphabet []string) *Automaton {
	return newAutomaton([]string{"0"}, copyStrings(alphabet), 0, true)
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet []string) *Automaton {
	a := newAutomaton([]string{"0"}, copyStrings(alphabet), 0, true)
	a.isAccept.Set(0)
	return a
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over the alphabet.
func (*Automata) MakeAnyString(alphabet []string) *Automaton {
	a := newAutomaton([]string{"0"}, copyStrings(alphabet), 0, true)
	a.isAccept.Set(0)
	for x := range alphabet {
		a.addTransition(0, x, 0)
	}
	return a
}

// MakeString
// Returns a new (deterministic, partial) automaton that accepts exactly the given word.
func (*Automata) MakeString(alphabet []string, word []string) (*Automaton, error) {
	b := NewBuilder().SetDeterministic(true)
	for _, x := range alphabet {
		b.AddSymbol(x)
	}
	for i := 0; i <= len(word); i++ {
		b.CreateState(fmt.Sprint(i))
	}
	for i, x := range word {
		b.AddTransition(fmt.Sprint(i), x, fmt.Sprint(i+1))
	}
	return b.SetInitial("0").SetAccept(fmt.Sprint(len(word))).Finish()
}

func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
