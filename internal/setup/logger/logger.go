package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New writes to stderr so stdout stays free for the MCP stdio transport.
func New(level string, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if console {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
