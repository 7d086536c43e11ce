package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	a := scenarioNFA(t)

	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"a", false},
		{"b", false},
		{"ab", true},
		{"aab", true},
		{"aaaab", true},
		{"abb", false},
		{"aba", false},
		{"ba", false},
		{"ac", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Run(a, tt.input))
		})
	}
}

func TestAccepts(t *testing.T) {
	a, err := NewBuilder().
		CreateState("start").CreateState("seen").
		AddSymbol("push").AddSymbol("pop").
		AddTransition("start", "push", "seen").
		AddTransition("seen", "pop", "start").
		SetInitial("start").SetAccept("start").
		SetDeterministic(true).
		Finish()
	assert.NoError(t, err)

	assert.True(t, Accepts(a, nil))
	assert.True(t, Accepts(a, []string{"push", "pop"}))
	assert.True(t, Accepts(a, []string{"push", "pop", "push", "pop"}))
	assert.False(t, Accepts(a, []string{"push"}))
	assert.False(t, Accepts(a, []string{"pop"}))
	assert.False(t, Accepts(a, []string{"push", "peek"}))

	// Multi-character symbols are not split by Run.
	assert.False(t, Run(a, "pushpop"))
}
