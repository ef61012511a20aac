// Package logx builds the zerolog loggers used across the engine.
package logx

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog logger configured for console output.
func NewLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything. Games log through it
// unless the application installs a real logger.
func Nop() zerolog.Logger {
	return zerolog.New(io.Discard)
}
