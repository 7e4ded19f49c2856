// Package logging provides taskroll's logging infrastructure built on
// charmbracelet/log.
//
// All log output goes to stderr; stdout is reserved for structured output
// (YAML, tables). Setup must be called before New so child loggers inherit
// the configured level and formatter; charmbracelet/log copies state at
// creation time and later changes to the default logger do not propagate.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Level aliases re-exported so consumers do not import charmbracelet/log
// directly.
const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
)

// Setup configures the global logging defaults. Call once during CLI
// initialization. verbose lowers the level to Debug, quiet raises it to
// Error; quiet wins when both are set so scripted runs stay silent.
// jsonFormat switches to NDJSON output for log aggregation.
func Setup(verbose, quiet, jsonFormat bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if jsonFormat {
		log.SetFormatter(log.JSONFormatter)
	} else {
		log.SetFormatter(log.TextFormatter)
	}
}

// New creates a logger with the given component prefix. The returned logger
// inherits the global level and output settings at creation time.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput overrides the output writer for the default logger. Primarily
// useful in tests capturing output with a bytes.Buffer.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
