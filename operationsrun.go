package automaton

// Run Returns true if the automaton accepts s, reading every rune of s as one symbol.
func Run(a *Automaton, s string) bool {
	word := make([]string, 0, len(s))
	for _, r := range s {
		word = append(word, string(r))
	}
	return Accepts(a, word)
}

// Accepts Returns true if the automaton accepts the word. The simulation tracks the set of
// current states, starting from the initial state, so it works the same for NFAs and DFAs. A
// symbol outside the alphabet empties the set and the word is rejected.
func Accepts(a *Automaton, word []string) bool {
	current := NewStateSet(a.GetNumStates())
	current.Add(a.initial)

	for _, symbol := range word {
		x, ok := a.symbols[symbol]
		if !ok {
			return false
		}
		next := NewStateSet(a.GetNumStates())
		for _, s := range current.GetArray() {
			next.AddAll(a.nextSet(s, x))
		}
		if next.Size() == 0 {
			return false
		}
		current = next
	}
	return current.Intersects(a.isAccept)
}
