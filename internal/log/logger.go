// Package log builds the zerolog logger used by the silo command.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for building a logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to os.Stderr)
}

// LevelEnv names the environment variable consulted when Config.Level is empty.
const LevelEnv = "LOG_LEVEL"

// New returns a logger configured from cfg. Unknown level names fall back to info.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	name := cfg.Level
	if name == "" {
		name = os.Getenv(LevelEnv)
	}
	if name != "" {
		if parsed, err := zerolog.ParseLevel(name); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", "silo").
		Logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}
