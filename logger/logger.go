// Package logger builds the process logger.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the requested level is empty or unknown.
const DefaultLevel = zerolog.WarnLevel

// New returns a console logger writing to w at the given level.
// Timestamps are omitted so runs diff cleanly.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = DefaultLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(lvl)
}
