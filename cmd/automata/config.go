package main

import (
	"os"

	u "github.com/araddon/gou"
	"github.com/lytics/confl"
)

// Config Settings of the automata tool, read from a confl file such as
//
//	log_level = info
//	image_dir = img
//	image_format = png
//	report_file = report_automaton.txt
//	equivalence_depth = 4
//	dot_binary = dot
//	view = false
//
// Keys missing from the file keep their defaults.
type Config struct {
	LogLevel         string `json:"log_level"`         // [debug,info,warn,error]
	ImageDir         string `json:"image_dir"`         // where .dot files and images are written
	ImageFormat      string `json:"image_format"`      // any Graphviz -T format, png, svg, pdf ...
	ReportFile       string `json:"report_file"`       // text report path
	EquivalenceDepth int    `json:"equivalence_depth"` // longest word tried by the bounded check
	DotBinary        string `json:"dot_binary"`        // Graphviz executable
	View             bool   `json:"view"`              // open rendered images
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:         "info",
		ImageDir:         "img",
		ImageFormat:      "png",
		ReportFile:       "report_automaton.txt",
		EquivalenceDepth: 4,
		DotBinary:        "dot",
	}
}

// LoadConfigFromFile Read a confl configured file.
func LoadConfigFromFile(filename string) (*Config, error) {
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfig(string(confBytes))
}

// LoadConfig Decode confl text over the defaults.
func LoadConfig(conf string) (*Config, error) {
	c := DefaultConfig()
	if _, err := confl.Decode(os.ExpandEnv(conf), c); err != nil {
		return nil, err
	}
	if c.EquivalenceDepth < 0 {
		u.Warnf("equivalence_depth %d is negative, using 0", c.EquivalenceDepth)
		c.EquivalenceDepth = 0
	}
	return c, nil
}
