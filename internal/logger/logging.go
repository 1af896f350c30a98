// Package logger configures charmbracelet/log loggers for the afd packages.
// Logs go to stderr; stdout is reserved for command output.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var output io.Writer = os.Stderr

// New creates a logger with the global log level
func New(prefix string) *log.Logger {
	return log.NewWithOptions(output, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a logger with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(output, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// Discard returns a logger that drops everything, for tests and the TUI
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// SetOutput redirects loggers created afterwards
func SetOutput(w io.Writer) {
	output = w
}

// ParseLevel maps a config value to a level. Unknown values fall back to warn.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// SetLevel sets the global level. verbose wins over quiet, and both win
// over the configured level.
func SetLevel(configured string, verbose, quiet bool) log.Level {
	level := ParseLevel(configured)
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}
	log.SetLevel(level)
	return level
}
