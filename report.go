package automaton

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ReportSection One titled automaton in a text report.
type ReportSection struct {
	Title     string
	Automaton *Automaton
}

// WriteReport Writes each section as its title followed by the automaton summary.
func WriteReport(w io.Writer, sections ...ReportSection) error {
	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s:\n", section.Title); err != nil {
			return err
		}
		if err := WriteSummary(w, section.Automaton); err != nil {
			return fmt.Errorf("section %q: %w", section.Title, err)
		}
	}
	return nil
}

// WriteSummary Writes the states, alphabet, transition table, initial and final states and the
// DFA tag of a. In the table the initial state is marked with "->" and final states with "*";
// an empty cell is shown as "-".
func WriteSummary(w io.Writer, a *Automaton) error {
	if _, err := fmt.Fprintf(w, "States: %s\nAlphabet: %s\nTransitions:\n",
		strings.Join(a.States(), ", "), strings.Join(a.Alphabet(), ", ")); err != nil {
		return err
	}

	if err := writeTransitionTable(w, a); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Initial state: %s\nFinal states: %s\nIs it a DFA: %v\n",
		a.InitialState(), strings.Join(a.FinalStates(), ", "), a.IsDFA())
	return err
}

func writeTransitionTable(w io.Writer, a *Automaton) error {
	// Symbols are case-sensitive tokens; header cells are printed as declared.
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))

	header := make([]string, 0, len(a.alphabet)+1)
	header = append(header, "State")
	header = append(header, a.alphabet...)
	table.Header(header)

	for _, state := range a.states {
		row := make([]string, 0, len(a.alphabet)+1)
		row = append(row, stateLabel(a, state))
		for _, symbol := range a.alphabet {
			next := a.NextStates(state, symbol)
			if len(next) == 0 {
				row = append(row, "-")
				continue
			}
			row = append(row, strings.Join(next, ", "))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func stateLabel(a *Automaton, state string) string {
	label := state
	if a.IsFinal(state) {
		label = "*" + label
	}
	if state == a.InitialState() {
		label = "->" + label
	}
	return label
}
