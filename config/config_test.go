package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/config"
)

func env(m map[string]string) config.Option {
	return config.WithLookup(func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	})
}

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "missing.yaml"),
		config.WithEnvFile(filepath.Join(dir, "missing.env")), env(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Layers(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "aoc.yaml", "input_dir: puzzles\nlog_level: info\ncolor: never\n")
	dotenv := write(t, dir, ".env", "AOC_LOG_LEVEL=debug\nAOC_EXAMPLE_DIR=samples\n")

	cfg, err := config.Load(path, config.WithEnvFile(dotenv), env(map[string]string{
		config.EnvExampleDir: "fixtures",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		InputDir:   "puzzles",  // yaml
		ExampleDir: "fixtures", // environment beats .env
		LogLevel:   "debug",    // .env beats yaml
		Color:      config.ColorNever,
	}, cfg)
}

// TestLoad_RequiredFile: a named file must exist, the default may not.
func TestLoad_RequiredFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "named.yaml")

	_, err := config.Load(missing, config.WithRequired(true), config.WithEnvFile(""), env(nil))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	cfg, err := config.Load(missing, config.WithRequired(false), config.WithEnvFile(""), env(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "aoc.yaml", "input_dir: [unterminated\n")
	_, err := config.Load(path, config.WithEnvFile(""), env(nil))
	assert.Error(t, err)
}

func TestLoad_InvalidColor(t *testing.T) {
	_, err := config.Load("", config.WithEnvFile(""), env(map[string]string{config.EnvColor: "sometimes"}))
	assert.ErrorIs(t, err, config.ErrInvalidColor)
}
