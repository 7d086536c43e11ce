package automaton

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	u "github.com/araddon/gou"
	"github.com/lytics/confl"
)

// Definition The serializable form of an automaton. Definitions are read from confl files
// (or JSON, chosen by the .json extension), for example:
//
//	states : ["q0", "q1", "q2"]
//	alphabet : ["a", "b"]
//	initial : q0
//	final : ["q2"]
//	dfa : false
//	transitions : [
//	  {
//	    from : q0
//	    symbol : a
//	    to : ["q0", "q1"]
//	  },
//	  {
//	    from : q1
//	    symbol : b
//	    to : ["q2"]
//	  }
//	]
type Definition struct {
	States      []string         `json:"states"`
	Alphabet    []string         `json:"alphabet"`
	Transitions []*TransitionDef `json:"transitions"`
	Initial     string           `json:"initial"`
	Final       []string         `json:"final"`
	DFA         bool             `json:"dfa"`
}

// TransitionDef All destinations of one (state, symbol) pair. An empty To list is allowed and
// means "no move".
type TransitionDef struct {
	From   string   `json:"from"`
	Symbol string   `json:"symbol"`
	To     []string `json:"to"`
}

// LoadDefinitionFile Read a confl (or .json) automaton definition file.
func LoadDefinitionFile(filename string) (*Definition, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		var d Definition
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", filename, err)
		}
		u.Debugf("loaded json definition %s: %d states, %d transitions", filename, len(d.States), len(d.Transitions))
		return &d, nil
	}
	d, err := LoadDefinition(string(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return d, nil
}

// LoadDefinition Decode a confl automaton definition.
func LoadDefinition(conf string) (*Definition, error) {
	var d Definition
	if _, err := confl.Decode(conf, &d); err != nil {
		return nil, err
	}
	u.Debugf("loaded definition: %d states, %d transitions", len(d.States), len(d.Transitions))
	return &d, nil
}

// Build Validates the definition and returns the automaton.
func (d *Definition) Build() (*Automaton, error) {
	b := NewBuilder().SetDeterministic(d.DFA)
	for _, s := range d.States {
		b.CreateState(s)
	}
	for _, x := range d.Alphabet {
		b.AddSymbol(x)
	}
	for _, t := range d.Transitions {
		if t == nil {
			continue
		}
		b.AddTransition(t.From, t.Symbol, t.To...)
	}
	if d.Initial != "" {
		b.SetInitial(d.Initial)
	}
	b.SetAccept(d.Final...)
	return b.Finish()
}

// NewDefinition Returns the definition of a, with one TransitionDef per non-empty
// (state, symbol) pair.
func NewDefinition(a *Automaton) *Definition {
	d := &Definition{
		States:   a.States(),
		Alphabet: a.Alphabet(),
		Initial:  a.InitialState(),
		Final:    a.FinalStates(),
		DFA:      a.IsDFA(),
	}
	for _, s := range a.states {
		for _, x := range a.alphabet {
			next := a.NextStates(s, x)
			if len(next) == 0 {
				continue
			}
			d.Transitions = append(d.Transitions, &TransitionDef{From: s, Symbol: x, To: next})
		}
	}
	return d
}

// WriteJSON Writes the definition as indented JSON, readable by LoadDefinitionFile.
func (d *Definition) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
