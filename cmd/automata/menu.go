package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	u "github.com/araddon/gou"
	"github.com/manifoldco/promptui"
)

type menuItem struct {
	Label  string
	action func(ctx context.Context, s *session, ask askFunc) error
}

var menu = []menuItem{
	{"Insert automaton", func(ctx context.Context, s *session, ask askFunc) error {
		a, err := readAutomaton(ask)
		if err != nil {
			return err
		}
		s.setInserted(ctx, a)
		return nil
	}},
	{"Load automaton definition", func(ctx context.Context, s *session, ask askFunc) error {
		filename, err := ask("Definition file (.conf or .json)", nil)
		if err != nil {
			return err
		}
		return s.load(ctx, strings.TrimSpace(filename))
	}},
	{"Convert automaton to DFA", func(ctx context.Context, s *session, _ askFunc) error {
		return s.convert(ctx)
	}},
	{"Minimize DFA", func(ctx context.Context, s *session, _ askFunc) error {
		return s.minimize(ctx)
	}},
	{"Simulate word acceptance (inserted and converted automaton)", func(_ context.Context, s *session, ask askFunc) error {
		word, err := ask("Word to simulate (symbols separated by commas, or one symbol per character)", nil)
		if err != nil {
			return err
		}
		return s.simulate(word)
	}},
	{"Check equivalence between automata (inserted and converted automaton)", func(_ context.Context, s *session, _ askFunc) error {
		_, err := s.equivalence()
		return err
	}},
	{"Generate report", func(_ context.Context, s *session, _ askFunc) error {
		return s.writeReport()
	}},
	{"Save automaton definition", func(_ context.Context, s *session, ask askFunc) error {
		filename, err := ask("Output file (.json)", nil)
		if err != nil {
			return err
		}
		return s.saveDefinition(strings.TrimSpace(filename))
	}},
	{"Run binary increment Turing machine", func(_ context.Context, s *session, ask askFunc) error {
		input, err := ask("Binary number to increment", nil)
		if err != nil {
			return err
		}
		return s.binaryIncrement(strings.TrimSpace(input))
	}},
	{"Run parentheses balance Turing machine", func(_ context.Context, s *session, ask askFunc) error {
		input, err := ask("Parentheses", nil)
		if err != nil {
			return err
		}
		return s.balancedParentheses(strings.TrimSpace(input))
	}},
	{"Exit", nil},
}

var (
	failStyle = promptui.Styler(promptui.FGRed)
	infoStyle = promptui.Styler(promptui.FGCyan)
)

// runMenu shows the menu until Exit is chosen, the prompt is interrupted or ctx is done.
func runMenu(ctx context.Context, s *session) error {
	labels := make([]string, len(menu))
	for i, item := range menu {
		labels[i] = item.Label
	}

	for ctx.Err() == nil {
		sel := promptui.Select{
			Label: "Menu",
			Items: labels,
			Size:  len(labels),
		}
		i, _, err := sel.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				break
			}
			return err
		}

		item := menu[i]
		if item.action == nil {
			break
		}
		u.Debugf("menu: %s", item.Label)
		if err := item.action(ctx, s, promptAsk); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, failStyle(err.Error()))
		}
	}
	fmt.Fprintln(s.out, infoStyle("Exiting..."))
	return nil
}
