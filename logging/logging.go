// Package logging configures the stderr diagnostics logger. Stdout is
// reserved for the encoded literal, so everything else goes here.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// New returns the CLI logger. Verbose enables debug-level output.
// Color is dropped when requested, when NO_COLOR is set, or when stderr
// is not a terminal.
func New(verbose, noColor bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if !noColor {
		noColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd()))
	}
	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h)
}
