package automaton

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEquivalenceBounded(t *testing.T) {
	t.Run("testDeterminizedScenario", func(t *testing.T) {
		nfa := scenarioNFA(t)
		assert.True(t, CheckEquivalenceBounded(nfa, Determinize(nfa), DefaultEquivalenceDepth))
	})

	t.Run("testDifferentLanguages", func(t *testing.T) {
		nfa := scenarioNFA(t)
		assert.False(t, CheckEquivalenceBounded(nfa, Complement(nfa), 0))
	})

	t.Run("testLongWordIsMissed", func(t *testing.T) {
		alphabet := []string{"a"}
		long, err := defaultAutomata.MakeString(alphabet, strings.Split("aaaaa", ""))
		require.NoError(t, err)
		empty := defaultAutomata.MakeEmpty(alphabet)

		// The bounded check only looks at words up to length 4.
		assert.True(t, CheckEquivalenceBounded(long, empty, DefaultEquivalenceDepth))

		equal, err := Equivalent(long, empty)
		require.NoError(t, err)
		assert.False(t, equal)

		word, found := FindCounterexample(long, empty, 5)
		assert.True(t, found)
		assert.Equal(t, []string{"a", "a", "a", "a", "a"}, word)
	})
}

func TestFindCounterexample(t *testing.T) {
	nfa := scenarioNFA(t)
	anyString := defaultAutomata.MakeAnyString(nfa.Alphabet())

	word, found := FindCounterexample(nfa, anyString, 3)
	assert.True(t, found)
	assert.Equal(t, []string{}, word)

	word, found = FindCounterexample(nfa, defaultAutomata.MakeEmpty(nfa.Alphabet()), 3)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, word)

	_, found = FindCounterexample(nfa, nfa, 3)
	assert.False(t, found)
}

func TestEquivalent(t *testing.T) {
	t.Run("testScenario", func(t *testing.T) {
		nfa := scenarioNFA(t)
		m, err := Minimize(Determinize(nfa))
		require.NoError(t, err)

		equal, err := Equivalent(nfa, m)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = Equivalent(nfa, Complement(nfa))
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("testDifferentAlphabets", func(t *testing.T) {
		onlyA := defaultAutomata.MakeAnyString([]string{"a"})
		aStar, err := NewBuilder().
			CreateState("s").
			AddSymbol("a").AddSymbol("b").
			AddTransition("s", "a", "s").
			SetInitial("s").SetAccept("s").
			Finish()
		require.NoError(t, err)

		equal, err := Equivalent(onlyA, aStar)
		require.NoError(t, err)
		assert.True(t, equal)
		assert.False(t, Isomorphic(onlyA, aStar))
		assert.True(t, CheckEquivalenceBounded(onlyA, aStar, DefaultEquivalenceDepth))
	})

	t.Run("testRandomAgainstBounded", func(t *testing.T) {
		r := rand.New(rand.NewSource(17))
		for i := 0; i < 30; i++ {
			a := randomAutomaton(r, 1+r.Intn(3), []string{"a", "b"}, false)
			b := randomAutomaton(r, 1+r.Intn(3), []string{"a", "b"}, false)
			equal, err := Equivalent(a, b)
			require.NoError(t, err)
			if equal {
				assert.True(t, CheckEquivalenceBounded(a, b, 6))
			}
		}
	})
}

func TestIsomorphic(t *testing.T) {
	build := func(names ...string) *Automaton {
		a, err := NewBuilder().
			CreateState(names[0]).CreateState(names[1]).
			AddSymbol("a").
			AddTransition(names[0], "a", names[1]).
			AddTransition(names[1], "a", names[0]).
			SetInitial(names[0]).SetAccept(names[1]).
			SetDeterministic(true).
			Finish()
		require.NoError(t, err)
		return a
	}

	assert.True(t, Isomorphic(build("x", "y"), build("0", "1")))

	t.Run("testFinalityMismatch", func(t *testing.T) {
		other, err := NewBuilder().
			CreateState("0").CreateState("1").
			AddSymbol("a").
			AddTransition("0", "a", "1").
			AddTransition("1", "a", "0").
			SetInitial("0").SetAccept("0").
			SetDeterministic(true).
			Finish()
		require.NoError(t, err)
		assert.False(t, Isomorphic(build("x", "y"), other))
	})

	t.Run("testStateCount", func(t *testing.T) {
		assert.False(t, Isomorphic(build("x", "y"), defaultAutomata.MakeAnyString([]string{"a"})))
	})

	t.Run("testNondeterministic", func(t *testing.T) {
		nfa := scenarioNFA(t)
		assert.False(t, Isomorphic(nfa, nfa))
	})
}
