package turing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryIncrement(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "1"},
		{"1", "10"},
		{"11", "100"},
		{"111", "1000"},
		{"1011", "1100"},
		{"10010", "10011"},
		{"", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := NewBinaryIncrement(tt.input)
			require.NoError(t, m.Run(DefaultStepLimit))
			assert.Equal(t, tt.want, m.Tape())
			assert.True(t, m.Accepted())
			assert.Equal(t, "q1", m.State())
		})
	}
}

func TestBinaryIncrementCarryGrowsTape(t *testing.T) {
	m := NewBinaryIncrement("11")

	assert.True(t, m.Step())
	assert.True(t, m.Step())
	assert.Equal(t, "00", m.Tape())
	assert.True(t, m.Step())
	assert.Equal(t, "100", m.Tape())

	assert.False(t, m.Step())
	assert.True(t, m.Halted())
	assert.Equal(t, 3, m.Steps())
}

func TestBinaryIncrementInvalidDigit(t *testing.T) {
	m := NewBinaryIncrement("12")
	require.NoError(t, m.Run(DefaultStepLimit))
	assert.False(t, m.Accepted())
	assert.Equal(t, "12", m.Tape())
}

func TestBalancedParentheses(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"()", true},
		{"(())", true},
		{"()()", true},
		{"(()())", true},
		{"(", false},
		{")", false},
		{"(()", false},
		{"())", false},
		{")(", false},
		{"(a)", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := NewBalancedParentheses(tt.input)
			require.NoError(t, m.Run(DefaultStepLimit))
			assert.Equal(t, tt.want, m.Accepted(), "state %s, tape %q", m.State(), m.Tape())
		})
	}
}

func TestBalancedParenthesesMarksPairs(t *testing.T) {
	m := NewBalancedParentheses("(())")
	require.NoError(t, m.Run(0))
	assert.Equal(t, "XXYY", m.Tape())
	assert.Equal(t, "q_accept", m.State())
}

func TestRunStepLimit(t *testing.T) {
	m := NewBalancedParentheses("(())")
	err := m.Run(3)
	assert.True(t, errors.Is(err, ErrStepLimit), "got %v", err)
	assert.Equal(t, 3, m.Steps())
	assert.False(t, m.Halted())

	require.NoError(t, m.Run(DefaultStepLimit))
	assert.True(t, m.Accepted())
}
