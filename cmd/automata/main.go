// Command automata converts finite automata to DFAs, minimizes them and renders the results.
//
// Without -input it runs an interactive menu. With -input it loads a definition file, converts
// and minimizes it, and writes the report and Graphviz files without asking anything.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	u "github.com/araddon/gou"
)

const defaultConfigFile = "automata.conf"

var (
	configFile  = flag.String("config", defaultConfigFile, "automata config file")
	logLevel    = flag.String("loglevel", "", "log level [debug|info|warn|error], overrides log_level")
	inputFile   = flag.String("input", "", "automaton definition file; runs without prompts")
	reportFile  = flag.String("report", "", "report file, overrides report_file")
	imageDir    = flag.String("imagedir", "", "output directory for .dot files and images, overrides image_dir")
	imageFormat = flag.String("format", "", "Graphviz output format, overrides image_format")
	depth       = flag.Int("depth", -1, "longest word tried by the bounded equivalence check, overrides equivalence_depth")
	view        = flag.Bool("view", false, "open rendered images")
)

func main() {
	flag.Parse()

	conf, err := loadConfig()
	if err != nil {
		u.SetupLogging("error")
		u.Errorf("Could not load config: %v", err)
		os.Exit(1)
	}
	u.SetupLogging(conf.LogLevel)
	u.SetColorIfTerminal()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := newSession(conf, os.Stdout)
	if *inputFile != "" {
		err = runBatch(ctx, s, *inputFile)
	} else {
		err = runMenu(ctx, s)
	}
	if err != nil {
		u.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the command-line overrides. The default config
// file may be missing.
func loadConfig() (*Config, error) {
	conf, err := LoadConfigFromFile(*configFile)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !flagSet("config"):
		conf = DefaultConfig()
	default:
		return nil, err
	}

	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	if *reportFile != "" {
		conf.ReportFile = *reportFile
	}
	if *imageDir != "" {
		conf.ImageDir = *imageDir
	}
	if *imageFormat != "" {
		conf.ImageFormat = *imageFormat
	}
	if *depth >= 0 {
		conf.EquivalenceDepth = *depth
	}
	if flagSet("view") {
		conf.View = *view
	}
	return conf, nil
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// runBatch loads a definition, converts and minimizes it, prints and exports every stage, and
// writes the report.
func runBatch(ctx context.Context, s *session, filename string) error {
	if err := s.load(ctx, filename); err != nil {
		return err
	}
	if err := s.convert(ctx); err != nil {
		return err
	}
	if err := s.minimize(ctx); err != nil {
		return err
	}
	if _, err := s.equivalence(); err != nil {
		return err
	}
	return s.writeReport()
}
