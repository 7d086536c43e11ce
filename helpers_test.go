package automaton

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioNFA q0 --a--> {q0,q1}, q1 --b--> {q2}, final q2.
func scenarioNFA(t *testing.T) *Automaton {
	t.Helper()
	a, err := NewBuilder().
		CreateState("q0").CreateState("q1").CreateState("q2").
		AddSymbol("a").AddSymbol("b").
		AddTransition("q0", "a", "q0", "q1").
		AddTransition("q1", "b", "q2").
		SetInitial("q0").
		SetAccept("q2").
		Finish()
	require.NoError(t, err)
	return a
}

// nthFromLast accepts words over {a,b} whose (k+1)th symbol from the end is a. Its minimal DFA
// has 2^(k+1) states.
func nthFromLast(t *testing.T, k int) *Automaton {
	t.Helper()
	b := NewBuilder().AddSymbol("a").AddSymbol("b")
	for i := 0; i <= k+1; i++ {
		b.CreateState(fmt.Sprintf("p%d", i))
	}
	b.AddTransition("p0", "a", "p0", "p1")
	b.AddTransition("p0", "b", "p0")
	for i := 1; i <= k; i++ {
		b.AddTransition(fmt.Sprintf("p%d", i), "a", fmt.Sprintf("p%d", i+1))
		b.AddTransition(fmt.Sprintf("p%d", i), "b", fmt.Sprintf("p%d", i+1))
	}
	a, err := b.SetInitial("p0").SetAccept(fmt.Sprintf("p%d", k+1)).Finish()
	require.NoError(t, err)
	return a
}

// randomAutomaton Builds a random automaton. Deterministic ones may be partial; nondeterministic
// ones have zero to three destinations per pair.
func randomAutomaton(r *rand.Rand, numStates int, alphabet []string, deterministic bool) *Automaton {
	b := NewBuilder().SetDeterministic(deterministic)
	names := make([]string, numStates)
	for i := range names {
		names[i] = fmt.Sprintf("s%d", i)
		b.CreateState(names[i])
	}
	for _, x := range alphabet {
		b.AddSymbol(x)
	}
	for _, s := range names {
		for _, x := range alphabet {
			if deterministic {
				if r.Intn(100) < 85 {
					b.AddTransition(s, x, names[r.Intn(numStates)])
				}
				continue
			}
			n := r.Intn(4)
			for i := 0; i < n; i++ {
				b.AddTransition(s, x, names[r.Intn(numStates)])
			}
		}
		if r.Intn(100) < 30 {
			b.SetAccept(s)
		}
	}
	a, err := b.SetInitial(names[0]).Finish()
	if err != nil {
		panic(err)
	}
	return a
}

// allWords Every word over alphabet with length 0 through maxLen.
func allWords(alphabet []string, maxLen int) [][]string {
	words := [][]string{{}}
	level := [][]string{{}}
	for length := 1; length <= maxLen; length++ {
		next := make([][]string, 0, len(level)*len(alphabet))
		for _, w := range level {
			for _, x := range alphabet {
				word := make([]string, len(w)+1)
				copy(word, w)
				word[len(w)] = x
				next = append(next, word)
			}
		}
		words = append(words, next...)
		level = next
	}
	return words
}
