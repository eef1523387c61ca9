package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel converts a config log level to zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a console logger writing to out with RFC3339 UTC timestamps.
// Colour is disabled when noColor is set, e.g. when out is not a terminal.
func New(out io.Writer, level string, noColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(cw).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func init() {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
}
