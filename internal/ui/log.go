package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide diagnostic logger. It writes to stderr.
var Logger = NewLogger(os.Stderr, false)

// NewLogger builds a logger writing to w. Debug raises the level and adds timestamps.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: debug,
		Prefix:          "scapp",
	})
}

// SetupLogging points Logger at w with the requested verbosity and returns it.
func SetupLogging(w io.Writer, debug bool) *log.Logger {
	Logger = NewLogger(w, debug)
	return Logger
}
