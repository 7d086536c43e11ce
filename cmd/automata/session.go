package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	u "github.com/araddon/gou"
	"github.com/kr/pretty"

	automaton "github.com/geange/go-automaton"
	"github.com/geange/go-automaton/turing"
)

var (
	errNoAutomaton  = errors.New("no automaton inserted yet")
	errNotConverted = errors.New("automaton not converted to a DFA yet")
	errNotMinimized = errors.New("DFA not minimized yet")
)

// session The automata worked on by one run of the tool: the inserted automaton, its DFA and
// the minimized DFA. Inserting a new automaton discards the other two.
type session struct {
	conf   *Config
	out    io.Writer
	render *renderer

	inserted  *automaton.Automaton
	converted *automaton.Automaton
	minimized *automaton.Automaton
}

func newSession(conf *Config, out io.Writer) *session {
	return &session{
		conf:   conf,
		out:    out,
		render: newRenderer(conf),
	}
}

func (s *session) setInserted(ctx context.Context, a *automaton.Automaton) {
	s.inserted = a
	s.converted = nil
	s.minimized = nil
	s.show(ctx, "Inserted automaton", "inserted_automaton", a)
}

func (s *session) load(ctx context.Context, filename string) error {
	def, err := automaton.LoadDefinitionFile(filename)
	if err != nil {
		return err
	}
	u.Debugf("definition %s: %# v", filename, pretty.Formatter(def))

	a, err := def.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	s.setInserted(ctx, a)
	return nil
}

func (s *session) convert(ctx context.Context) error {
	if s.inserted == nil {
		return errNoAutomaton
	}
	s.converted = automaton.Determinize(s.inserted)
	s.minimized = nil
	fmt.Fprintln(s.out, "Automaton converted successfully.")
	s.show(ctx, "Converted automaton", "converted_automaton", s.converted)
	return nil
}

func (s *session) minimize(ctx context.Context) error {
	if s.converted == nil {
		return errNotConverted
	}
	m, err := automaton.Minimize(s.converted)
	if err != nil {
		return err
	}
	s.minimized = m
	fmt.Fprintln(s.out, "DFA minimized successfully.")
	s.show(ctx, "Minimized automaton", "minimized_automaton", m)
	return nil
}

// show prints the summary of a and exports it as <name>.dot plus an image. Export failures are
// logged, not returned.
func (s *session) show(ctx context.Context, title, name string, a *automaton.Automaton) {
	fmt.Fprintf(s.out, "%s:\n", title)
	if err := automaton.WriteSummary(s.out, a); err != nil {
		u.Errorf("could not print %s: %v", name, err)
		return
	}

	dotPath, imagePath, err := s.render.export(ctx, a, name)
	switch {
	case dotPath == "":
		u.Errorf("could not export %s: %v", name, err)
	case err != nil:
		u.Warnf("wrote %s but could not render it: %v", dotPath, err)
	default:
		fmt.Fprintf(s.out, "Graph saved as %s\n", imagePath)
	}
}

// splitWord A word with commas is a list of symbols; otherwise every rune is one symbol.
func splitWord(word string) []string {
	if strings.Contains(word, ",") {
		symbols := strings.Split(word, ",")
		for i := range symbols {
			symbols[i] = strings.TrimSpace(symbols[i])
		}
		return symbols
	}
	symbols := make([]string, 0, len(word))
	for _, r := range word {
		symbols = append(symbols, string(r))
	}
	return symbols
}

func (s *session) simulate(word string) error {
	if s.inserted == nil && s.converted == nil {
		return errNoAutomaton
	}
	symbols := splitWord(word)
	if s.inserted != nil {
		fmt.Fprintf(s.out, "Word acceptance by the inserted automaton: %s\n", acceptance(automaton.Accepts(s.inserted, symbols)))
	}
	if s.converted != nil {
		fmt.Fprintf(s.out, "Word acceptance by the converted automaton: %s\n", acceptance(automaton.Accepts(s.converted, symbols)))
	}
	return nil
}

func acceptance(ok bool) string {
	if ok {
		return "Accepted"
	}
	return "Not accepted"
}

// equivalence compares the inserted and converted automata on every word up to the configured
// length, then checks exactly.
func (s *session) equivalence() (bool, error) {
	if s.inserted == nil {
		return false, errNoAutomaton
	}
	if s.converted == nil {
		return false, errNotConverted
	}

	depth := s.conf.EquivalenceDepth
	if word, found := automaton.FindCounterexample(s.inserted, s.converted, depth); found {
		fmt.Fprintf(s.out, "The automata are not equivalent: they disagree on %q.\n", strings.Join(word, ""))
		return false, nil
	}
	fmt.Fprintf(s.out, "The automata agree on every word of length up to %d.\n", depth)

	equal, err := automaton.Equivalent(s.inserted, s.converted)
	if err != nil {
		return false, err
	}
	if equal {
		fmt.Fprintln(s.out, "The automata are equivalent.")
	} else {
		fmt.Fprintln(s.out, "The automata are not equivalent.")
	}
	return equal, nil
}

func (s *session) writeReport() error {
	if s.inserted == nil {
		return errNoAutomaton
	}
	if s.converted == nil {
		return errNotConverted
	}
	if s.minimized == nil {
		return errNotMinimized
	}

	f, err := os.Create(s.conf.ReportFile)
	if err != nil {
		return err
	}
	err = automaton.WriteReport(f,
		automaton.ReportSection{Title: "Inserted automaton", Automaton: s.inserted},
		automaton.ReportSection{Title: "Converted automaton", Automaton: s.converted},
		automaton.ReportSection{Title: "Minimized automaton", Automaton: s.minimized},
	)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	u.Infof("wrote report %s", s.conf.ReportFile)
	fmt.Fprintln(s.out, "Report generated successfully.")
	return nil
}

// saveDefinition writes the most processed automaton of the session as a JSON definition.
func (s *session) saveDefinition(filename string) error {
	a := s.minimized
	if a == nil {
		a = s.converted
	}
	if a == nil {
		a = s.inserted
	}
	if a == nil {
		return errNoAutomaton
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = automaton.NewDefinition(a).WriteJSON(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	u.Infof("saved definition %s", filename)
	return nil
}

func (s *session) binaryIncrement(input string) error {
	m := turing.NewBinaryIncrement(input)
	if err := m.Run(turing.DefaultStepLimit); err != nil {
		return err
	}
	if !m.Accepted() {
		return fmt.Errorf("%q is not a binary number", input)
	}
	fmt.Fprintf(s.out, "Result after increment: %s\n", m.Tape())
	return nil
}

func (s *session) balancedParentheses(input string) error {
	m := turing.NewBalancedParentheses(input)
	if err := m.Run(turing.DefaultStepLimit); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "The result is: %v\n", m.Accepted())
	return nil
}
