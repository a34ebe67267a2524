// Package logger builds the zerolog root logger shared by the app.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a structured logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger for interactive runs.
func NewConsole(level zerolog.Level) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}
