package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"

	automaton "github.com/geange/go-automaton"
)

// askFunc asks one question and returns the answer.
type askFunc func(label string, validate promptui.ValidateFunc) (string, error)

func promptAsk(label string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}
	return prompt.Run()
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func nonEmptyList(s string) error {
	if len(splitList(s)) == 0 {
		return errors.New("enter at least one name")
	}
	return nil
}

func oneOf(names []string) promptui.ValidateFunc {
	return func(s string) error {
		for _, item := range splitList(s) {
			if !slices.Contains(names, item) {
				return fmt.Errorf("unknown state %q", item)
			}
		}
		return nil
	}
}

func exactlyOneOf(names []string) promptui.ValidateFunc {
	return func(s string) error {
		if !slices.Contains(names, strings.TrimSpace(s)) {
			return fmt.Errorf("unknown state %q", s)
		}
		return nil
	}
}

func yesNo(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "n", "yes", "no":
		return nil
	}
	return errors.New("answer Y or N")
}

// readAutomaton asks for the states, the alphabet, the destinations of every (state, symbol)
// pair, the initial and final states and the DFA flag, and builds the automaton.
func readAutomaton(ask askFunc) (*automaton.Automaton, error) {
	answer, err := ask("States separated by commas (e.g.: q0,q1,...)", nonEmptyList)
	if err != nil {
		return nil, err
	}
	states := splitList(answer)

	answer, err = ask("Alphabet separated by commas (e.g.: a,b,...)", nonEmptyList)
	if err != nil {
		return nil, err
	}
	alphabet := splitList(answer)

	b := automaton.NewBuilder()
	for _, state := range states {
		b.CreateState(state)
	}
	for _, symbol := range alphabet {
		b.AddSymbol(symbol)
	}

	for _, state := range states {
		for _, symbol := range alphabet {
			label := fmt.Sprintf("Next states for %s and %s separated by commas (blank for none)", state, symbol)
			answer, err = ask(label, oneOf(states))
			if err != nil {
				return nil, err
			}
			if next := splitList(answer); len(next) > 0 {
				b.AddTransition(state, symbol, next...)
			}
		}
	}

	answer, err = ask("Initial state (e.g.: q0)", exactlyOneOf(states))
	if err != nil {
		return nil, err
	}
	b.SetInitial(strings.TrimSpace(answer))

	answer, err = ask("Final states separated by commas (e.g.: q0,q1,...)", oneOf(states))
	if err != nil {
		return nil, err
	}
	b.SetAccept(splitList(answer)...)

	answer, err = ask("Is it a DFA (Deterministic Finite Automaton)? Y for yes, N for no", yesNo)
	if err != nil {
		return nil, err
	}
	b.SetDeterministic(strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y"))

	return b.Finish()
}
