// Package turing holds two small, fixed single-tape Turing machines: binary increment and
// balanced parentheses. The rule tables are built in; there is no way to load arbitrary rules.
package turing

import (
	"errors"
	"fmt"
	"strings"

	u "github.com/araddon/gou"
)

// Blank The symbol read from every tape cell that was never written.
const Blank = 'B'

// DefaultStepLimit Step budget used by callers that have no better bound.
const DefaultStepLimit = 1_000_000

// ErrStepLimit is returned by Run when the machine has not halted within the step budget.
var ErrStepLimit = errors.New("turing machine did not halt within the step limit")

type direction int

const (
	left  direction = -1
	right direction = 1
)

type ruleKey struct {
	state  string
	symbol rune
}

type rule struct {
	next  string
	write rune
	move  direction
}

// Machine A deterministic single-tape Turing machine. The tape grows with blanks at either end
// whenever the head moves past it. The machine halts when no rule matches the current state and
// symbol.
type Machine struct {
	name   string
	rules  map[ruleKey]rule
	accept string

	tape  []rune
	head  int
	state string
	steps int
}

func newMachine(name string, rules map[ruleKey]rule, accept, input string, head func(tape []rune) int) *Machine {
	tape := append([]rune(input), Blank)
	return &Machine{
		name:   name,
		rules:  rules,
		accept: accept,
		tape:   tape,
		head:   head(tape),
		state:  "q0",
	}
}

var binaryIncrementRules = map[ruleKey]rule{
	{"q0", '1'}:   {"q0", '0', left},
	{"q0", '0'}:   {"q1", '1', right},
	{"q0", Blank}: {"q1", '1', right},
}

// NewBinaryIncrement Returns a machine that adds one to the binary number on its tape. The head
// starts on the least significant digit and carries to the left; a carry past the most
// significant digit writes a new leading 1. The machine accepts once the increment is done.
func NewBinaryIncrement(input string) *Machine {
	return newMachine("binary increment", binaryIncrementRules, "q1", input, func(tape []rune) int {
		return max(len(tape)-2, 0)
	})
}

var balancedParenthesesRules = map[ruleKey]rule{
	// q0: find the next unmatched '(' and mark it X.
	{"q0", '('}:   {"q1", 'X', right},
	{"q0", 'X'}:   {"q0", 'X', right},
	{"q0", 'Y'}:   {"q0", 'Y', right},
	{"q0", ')'}:   {"q_reject", ')', right},
	{"q0", Blank}: {"q_accept", Blank, right},

	// q1: find the next ')' and mark it Y.
	{"q1", '('}:   {"q1", '(', right},
	{"q1", 'X'}:   {"q1", 'X', right},
	{"q1", 'Y'}:   {"q1", 'Y', right},
	{"q1", ')'}:   {"q2", 'Y', left},
	{"q1", Blank}: {"q_reject", Blank, left},

	// q2: walk back to the last X.
	{"q2", '('}: {"q2", '(', left},
	{"q2", ')'}: {"q2", ')', left},
	{"q2", 'Y'}: {"q2", 'Y', left},
	{"q2", 'X'}: {"q0", 'X', right},
}

// NewBalancedParentheses Returns a machine that accepts a tape of '(' and ')' when every
// parenthesis is matched. Matched pairs are overwritten with X and Y. Any other symbol stops the
// machine without accepting.
func NewBalancedParentheses(input string) *Machine {
	return newMachine("balanced parentheses", balancedParenthesesRules, "q_accept", input, func([]rune) int {
		return 0
	})
}

// Step Applies one rule. It returns false, leaving the machine untouched, when the machine has
// halted.
func (m *Machine) Step() bool {
	r, ok := m.rules[ruleKey{m.state, m.tape[m.head]}]
	if !ok {
		return false
	}

	m.tape[m.head] = r.write
	m.state = r.next
	m.head += int(r.move)
	m.steps++

	switch {
	case m.head < 0:
		m.tape = append([]rune{Blank}, m.tape...)
		m.head = 0
	case m.head == len(m.tape):
		m.tape = append(m.tape, Blank)
	}
	return true
}

// Halted Returns true if no rule matches the current state and symbol.
func (m *Machine) Halted() bool {
	_, ok := m.rules[ruleKey{m.state, m.tape[m.head]}]
	return !ok
}

// Run Steps the machine until it halts. A maxSteps <= 0 means no limit.
func (m *Machine) Run(maxSteps int) error {
	for n := 0; !m.Halted(); n++ {
		if maxSteps > 0 && n >= maxSteps {
			return fmt.Errorf("%w: %s stopped after %d steps in state %s", ErrStepLimit, m.name, n, m.state)
		}
		m.Step()
	}
	u.Debugf("%s halted in %s after %d steps, tape %q", m.name, m.state, m.steps, m.Tape())
	return nil
}

// Tape Returns the tape contents without the surrounding blanks.
func (m *Machine) Tape() string {
	return strings.Trim(string(m.tape), string(Blank))
}

// State Returns the current state.
func (m *Machine) State() string {
	return m.state
}

// Steps Returns how many rules have been applied so far.
func (m *Machine) Steps() int {
	return m.steps
}

// Accepted Returns true if the machine is in its accepting state.
func (m *Machine) Accepted() bool {
	return m.state == m.accept
}
