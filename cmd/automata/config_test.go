package main

import (
	"os"
	"path/filepath"
	"testing"

	u "github.com/araddon/gou"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	u.SetupLogging("debug")
	u.SetColorOutput()
}

func TestConfig(t *testing.T) {
	var configData = `
log_level = debug
image_dir = "out/img"
image_format = svg
equivalence_depth = 6
view = true
`

	conf, err := LoadConfig(configData)
	assert.True(t, err == nil && conf != nil, "Must not error on parse of config: %v", err)

	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "out/img", conf.ImageDir)
	assert.Equal(t, "svg", conf.ImageFormat)
	assert.Equal(t, 6, conf.EquivalenceDepth)
	assert.True(t, conf.View)

	// Keys missing from the file keep their defaults.
	assert.Equal(t, "dot", conf.DotBinary)
	assert.Equal(t, "report_automaton.txt", conf.ReportFile)
}

func TestConfigNegativeDepth(t *testing.T) {
	conf, err := LoadConfig("equivalence_depth = -3\n")
	require.NoError(t, err)
	assert.Equal(t, 0, conf.EquivalenceDepth)
}

func TestLoadConfigFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "automata.conf")
	require.NoError(t, os.WriteFile(filename, []byte("report_file = \"r.txt\"\n"), 0o644))

	conf, err := LoadConfigFromFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "r.txt", conf.ReportFile)
	assert.Equal(t, DefaultConfig().ImageFormat, conf.ImageFormat)

	_, err = LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
}
