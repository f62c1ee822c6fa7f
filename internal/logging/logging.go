// Package logging builds the CLI's structured logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger creates a timestamped zerolog.Logger writing to stderr, so log
// output never mixes with rendered plan documents on stdout. An unparseable
// level falls back to info.
func NewLogger(level string) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().
		Str("service", "stackplan").
		Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return logger.Level(lvl)
}
