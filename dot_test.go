package automaton

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOT(t *testing.T) {
	dot := DOT(scenarioNFA(t))

	assert.True(t, strings.HasPrefix(dot, "digraph Automaton {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "rankdir=LR;")
	assert.Contains(t, dot, `"__start" [shape=point, label=""];`)
	assert.Contains(t, dot, `"__start" -> "q0";`)
	assert.Contains(t, dot, `"q2" [shape=doublecircle, style=filled, fillcolor=green];`)
	assert.Contains(t, dot, `  "q0";`)
	assert.Contains(t, dot, `"q0" -> "q0" [label="a"];`)
	assert.Contains(t, dot, `"q0" -> "q1" [label="a"];`)
	assert.Contains(t, dot, `"q1" -> "q2" [label="b"];`)
	assert.Equal(t, 3, strings.Count(dot, " [label="))
}

func TestDOTStartNodeName(t *testing.T) {
	a, err := NewBuilder().
		CreateState("__start").AddSymbol("a").
		AddTransition("__start", "a", "__start").
		SetInitial("__start").
		Finish()
	require.NoError(t, err)

	dot := DOT(a)
	assert.Contains(t, dot, `"__start_1" [shape=point, label=""];`)
	assert.Contains(t, dot, `"__start_1" -> "__start";`)
}

func TestWriteDOT(t *testing.T) {
	a := Determinize(scenarioNFA(t))

	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, a))
	assert.Equal(t, DOT(a), buf.String())
	assert.Contains(t, buf.String(), `"2" -> "2" [label="b"];`)
}
