package automaton

import "github.com/bits-and-blooms/bitset"

// DefaultEquivalenceDepth Longest word length tried by the bounded equivalence check.
const DefaultEquivalenceDepth = 4

// CheckEquivalenceBounded Compares acceptance of a and b on every word over the union of their
// alphabets of length 0 through maxLen.
//
// This is a heuristic, not a proof: two automata that first disagree on a longer word are
// reported as equivalent. Use Equivalent for an exact answer.
func CheckEquivalenceBounded(a, b *Automaton, maxLen int) bool {
	_, found := FindCounterexample(a, b, maxLen)
	return !found
}

// FindCounterexample Returns the shortest word (first in alphabet order among the shortest) of
// length at most maxLen that exactly one of a and b accepts.
func FindCounterexample(a, b *Automaton, maxLen int) ([]string, bool) {
	alphabet := unionAlphabet(a, b)

	// Breadth-first over word length, like enumerating the product alphabet^n for n = 0..maxLen.
	level := [][]string{{}}
	for length := 0; length <= maxLen; length++ {
		for _, word := range level {
			if Accepts(a, word) != Accepts(b, word) {
				return word, true
			}
		}
		if length == maxLen {
			break
		}
		next := make([][]string, 0, len(level)*len(alphabet))
		for _, word := range level {
			for _, x := range alphabet {
				w := make([]string, len(word)+1)
				copy(w, word)
				w[len(word)] = x
				next = append(next, w)
			}
		}
		level = next
	}
	return nil, false
}

// Equivalent Reports whether a and b accept the same language. Both are extended to the union of
// their alphabets, determinized and minimized; the minimal DFAs are then compared with Isomorphic.
func Equivalent(a, b *Automaton) (bool, error) {
	alphabet := unionAlphabet(a, b)

	ma, err := Minimize(Determinize(a.withAlphabet(alphabet)))
	if err != nil {
		return false, err
	}
	mb, err := Minimize(Determinize(b.withAlphabet(alphabet)))
	if err != nil {
		return false, err
	}
	return Isomorphic(ma, mb), nil
}

// Isomorphic Reports whether two deterministic automata are the same up to state renaming: equal
// state counts, equal alphabets (as sets), and a bijection from the initial state that preserves
// finality and every transition, matched by symbol name. Only states reachable from the initial
// state take part in the bijection. A state with several destinations on one symbol makes the
// automata non-isomorphic.
func Isomorphic(a, b *Automaton) bool {
	if a.GetNumStates() != b.GetNumStates() || len(a.alphabet) != len(b.alphabet) {
		return false
	}
	for _, x := range a.alphabet {
		if !b.HasSymbol(x) {
			return false
		}
	}

	aToB := make([]int, a.GetNumStates())
	bToA := make([]int, b.GetNumStates())
	for i := range aToB {
		aToB[i] = -1
		bToA[i] = -1
	}
	aToB[a.initial] = b.initial
	bToA[b.initial] = a.initial

	workList := []int{a.initial}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		t := aToB[s]

		if a.IsAccept(s) != b.IsAccept(t) {
			return false
		}

		for x, symbol := range a.alphabet {
			ds, na := single(a.nextSet(s, x))
			dt, nb := single(b.nextSet(t, b.symbols[symbol]))
			if na > 1 || nb > 1 || na != nb {
				return false
			}
			if na == 0 {
				continue
			}

			if aToB[ds] == -1 {
				if bToA[dt] != -1 {
					return false
				}
				aToB[ds] = dt
				bToA[dt] = ds
				workList = append(workList, ds)
			} else if aToB[ds] != dt {
				return false
			}
		}
	}
	return true
}

// single Returns the smallest member of set and the set's cardinality.
func single(set *bitset.BitSet) (int, int) {
	if set == nil {
		return -1, 0
	}
	d, ok := set.NextSet(0)
	if !ok {
		return -1, 0
	}
	return int(d), int(set.Count())
}

// unionAlphabet a's alphabet followed by b's symbols that a lacks.
func unionAlphabet(a, b *Automaton) []string {
	alphabet := a.Alphabet()
	for _, x := range b.alphabet {
		if !a.HasSymbol(x) {
			alphabet = append(alphabet, x)
		}
	}
	return alphabet
}
