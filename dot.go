package automaton

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDOT Writes a Graphviz DOT description of the automaton to w. Final states are drawn as
// filled double circles and an invisible start node points at the initial state. Every
// (state, symbol, destination) triple becomes one edge; destinations that are not states of the
// automaton are skipped.
func WriteDOT(w io.Writer, a *Automaton) error {
	_, err := io.WriteString(w, DOT(a))
	return err
}

// DOT Returns the Graphviz DOT description written by WriteDOT.
func DOT(a *Automaton) string {
	var sb strings.Builder

	sb.WriteString("digraph Automaton {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	start := strconv.Quote(freshStateName(a, "__start"))
	fmt.Fprintf(&sb, "  %s [shape=point, label=\"\"];\n", start)
	fmt.Fprintf(&sb, "  %s -> %s;\n", start, strconv.Quote(a.InitialState()))
	sb.WriteString("\n")

	for _, state := range a.states {
		if a.IsFinal(state) {
			fmt.Fprintf(&sb, "  %s [shape=doublecircle, style=filled, fillcolor=green];\n", strconv.Quote(state))
		} else {
			fmt.Fprintf(&sb, "  %s;\n", strconv.Quote(state))
		}
	}
	sb.WriteString("\n")

	for _, state := range a.states {
		for _, symbol := range a.alphabet {
			for _, next := range a.NextStates(state, symbol) {
				if !a.HasState(next) {
					continue
				}
				fmt.Fprintf(&sb, "  %s -> %s [label=%s];\n",
					strconv.Quote(state), strconv.Quote(next), strconv.Quote(symbol))
			}
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
