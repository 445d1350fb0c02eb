// Package logging provides the process-wide trace logger for muxed.
//
// muxed has a single global debug flag (set once during argument decoding,
// per spec.md §9) that toggles verbose tracing of every gateway call. We
// follow jmgilman-headjack's pattern of wrapping charmbracelet/log behind
// slog so call sites use the standard library logging interface.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

var debug atomic.Bool

var base = newLogger(os.Stderr, charmlog.InfoLevel)

func newLogger(w io.Writer, level charmlog.Level) *slog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	return slog.New(handler)
}

// SetDebug flips the global trace level. Called once from cmd/muxed with
// the value of the --debug flag; treated as immutable thereafter.
func SetDebug(on bool) {
	debug.Store(on)
	level := charmlog.InfoLevel
	if on {
		level = charmlog.DebugLevel
	}
	base = newLogger(os.Stderr, level)
}

// Debug reports whether --debug was set.
func Debug() bool {
	return debug.Load()
}

// L returns the shared logger.
func L() *slog.Logger {
	return base
}
