// Package obslog provides the solver's default structured logger: a
// logr.Logger backed by stdr, the same interface OpenTelemetry's own
// internal error handler uses. Every package that logs takes a logr.Logger
// rather than reaching for the standard library's "log" package directly,
// so a caller embedding this solver can redirect it into their own
// logging pipeline.
package obslog

import (
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Verbosity selects how much detail New's logger emits. Higher values are
// more verbose, matching logr's V(level) convention.
type Verbosity int

const (
	Quiet Verbosity = iota - 1
	Normal
	Verbose
)

// New builds a logr.Logger over a stdlib *log.Logger writing to w, filtered
// to v's verbosity. Quiet suppresses everything above error level.
func New(w io.Writer, v Verbosity) logr.Logger {
	std := log.New(w, "", log.LstdFlags)
	logger := stdr.New(std)
	return logger.V(0).WithSink(withThreshold(logger.GetSink(), int(v)))
}

// Default returns the package-wide logger used when a caller doesn't wire
// its own: stderr, Normal verbosity.
func Default() logr.Logger {
	return New(os.Stderr, Normal)
}

// thresholdSink drops Info calls whose level exceeds the configured
// verbosity, implementing Quiet/Verbose on top of stdr's sink interface.
type thresholdSink struct {
	logr.LogSink
	max int
}

func withThreshold(sink logr.LogSink, max int) logr.LogSink {
	return &thresholdSink{LogSink: sink, max: max}
}

func (s *thresholdSink) Enabled(level int) bool {
	if s.max < 0 {
		return false
	}
	return level <= s.max && s.LogSink.Enabled(level)
}
