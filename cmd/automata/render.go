package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	u "github.com/araddon/gou"

	automaton "github.com/geange/go-automaton"
)

// renderer writes automata as Graphviz sources and, when the dot binary is available, renders
// them to images.
type renderer struct {
	dir       string
	format    string
	dotBinary string
	view      bool
}

func newRenderer(conf *Config) *renderer {
	return &renderer{
		dir:       conf.ImageDir,
		format:    conf.ImageFormat,
		dotBinary: conf.DotBinary,
		view:      conf.View,
	}
}

// export writes <dir>/<name>.dot and renders <dir>/<name>.<format> from it. The .dot path is
// returned even when rendering fails.
func (r *renderer) export(ctx context.Context, a *automaton.Automaton, name string) (string, string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", "", err
	}

	dotPath := filepath.Join(r.dir, name+".dot")
	f, err := os.Create(dotPath)
	if err != nil {
		return "", "", err
	}
	if err := automaton.WriteDOT(f, a); err != nil {
		f.Close()
		return "", "", err
	}
	if err := f.Close(); err != nil {
		return "", "", err
	}
	u.Debugf("wrote %s", dotPath)

	imagePath, err := r.render(ctx, dotPath, name)
	if err != nil {
		return dotPath, "", err
	}
	if r.view {
		if err := openFile(imagePath); err != nil {
			u.Warnf("could not open %s: %v", imagePath, err)
		}
	}
	return dotPath, imagePath, nil
}

func (r *renderer) render(ctx context.Context, dotPath, name string) (string, error) {
	bin, err := exec.LookPath(r.dotBinary)
	if err != nil {
		return "", fmt.Errorf("graphviz %q: %w", r.dotBinary, err)
	}

	imagePath := filepath.Join(r.dir, name+"."+r.format)
	cmd := exec.CommandContext(ctx, bin, "-T"+r.format, "-o", imagePath, dotPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%s -T%s %s: %w: %s", bin, r.format, dotPath, err, out)
	}
	u.Debugf("rendered %s", imagePath)
	return imagePath, nil
}

func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
