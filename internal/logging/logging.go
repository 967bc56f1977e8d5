// Package logging builds the application's hclog logger.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

// AppName is used as the root logger name
const AppName = "video-converter"

// DefaultLevel is used when no level is configured
const DefaultLevel = "info"

// New creates the root logger writing to stderr.
// Colour is only enabled when stderr is attached to a terminal.
func New(level string) hclog.Logger {
	return NewWithOutput(level, os.Stderr, isTerminal(os.Stderr))
}

// NewWithOutput creates a logger writing to out
func NewWithOutput(level string, out io.Writer, color bool) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}

	colorOpt := hclog.ColorOff
	if color {
		colorOpt = hclog.ForceColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   AppName,
		Level:  lvl,
		Output: out,
		Color:  colorOpt,
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
