package automaton

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, scenarioNFA(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "States: q0, q1, q2\nAlphabet: a, b\nTransitions:\n"))
	assert.Contains(t, out, "->q0")
	assert.Contains(t, out, "*q2")
	assert.Contains(t, out, "q0, q1")
	assert.Contains(t, out, "-")
	assert.True(t, strings.HasSuffix(out, "Initial state: q0\nFinal states: q2\nIs it a DFA: false\n"))
}

func TestWriteReport(t *testing.T) {
	nfa := scenarioNFA(t)
	dfa := Determinize(nfa)
	m, err := Minimize(dfa)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteReport(&buf,
		ReportSection{Title: "Inserted", Automaton: nfa},
		ReportSection{Title: "Converted", Automaton: dfa},
		ReportSection{Title: "Minimized", Automaton: m},
	)
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Inserted:\n"))
	assert.Contains(t, out, "\nConverted:\n")
	assert.Contains(t, out, "\nMinimized:\n")
	assert.Equal(t, 1, strings.Count(out, "Is it a DFA: false"))
	assert.Equal(t, 2, strings.Count(out, "Is it a DFA: true"))
	assert.Contains(t, out, "States: 0, 1, 2, 3")
}

func TestWriteSummaryKeepsSymbolsAsDeclared(t *testing.T) {
	a, err := NewBuilder().
		CreateState("q0").
		AddSymbol("a").AddSymbol("A").AddSymbol("state_x").
		AddTransition("q0", "a", "q0").
		SetInitial("q0").
		Finish()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, a))

	var header string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "State") && !strings.HasPrefix(line, "States:") {
			header = line
			break
		}
	}
	require.NotEmpty(t, header, "no table header in:\n%s", buf.String())

	cells := strings.FieldsFunc(header, func(r rune) bool {
		return r == '│' || r == '|' || r == ' '
	})
	assert.Equal(t, []string{"State", "a", "A", "state_x"}, cells)
}
