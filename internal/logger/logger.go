package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// EnvLogLevel is the environment variable selecting diagnostic verbosity.
const EnvLogLevel = "IMAGE_ENTROPY_LOG_LEVEL"

// New returns a console logger on the given writer at the given level name.
// Unknown or empty names fall back to info. Diagnostics belong on stderr so
// the result lines on stdout stay pipeable.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// FromEnv returns the stderr console logger at the level named by
// EnvLogLevel.
func FromEnv() zerolog.Logger {
	return New(os.Stderr, os.Getenv(EnvLogLevel))
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
