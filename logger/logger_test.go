package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2024/logger"
)

func TestNew_Level(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"error":   zerolog.ErrorLevel,
		"":        logger.DefaultLevel,
		"verbose": logger.DefaultLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, logger.New(in, &bytes.Buffer{}).GetLevel(), in)
	}
}

func TestNew_Writes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("info", &buf)
	log.Debug().Msg("hidden")
	log.Info().Int("day", 6).Msg("solved")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "solved")
	assert.Contains(t, out, "day=6")
}
