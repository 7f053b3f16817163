// Package config resolves runtime settings from, in increasing priority,
// built-in defaults, an optional YAML file, an optional .env file and the
// process environment. Command-line flags are layered on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default file names looked up in the working directory.
const (
	DefaultFile    = "aoc.yaml"
	DefaultEnvFile = ".env"
)

// Environment variable names.
const (
	EnvInputDir   = "AOC_INPUT_DIR"
	EnvExampleDir = "AOC_EXAMPLE_DIR"
	EnvLogLevel   = "AOC_LOG_LEVEL"
	EnvColor      = "AOC_COLOR"
)

// ErrInvalidColor indicates a color mode other than auto, always or never.
var ErrInvalidColor = errors.New("config: color must be auto, always or never")

// Color selects when answers are styled.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config holds the resolved settings.
type Config struct {
	InputDir   string `yaml:"input_dir"`
	ExampleDir string `yaml:"example_dir"`
	LogLevel   string `yaml:"log_level"`
	Color      Color  `yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InputDir:   "input",
		ExampleDir: "examples",
		LogLevel:   "warn",
		Color:      ColorAuto,
	}
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	envFile  string
	required bool
	lookup   func(string) (string, bool)
}

// WithRequired makes a missing YAML file an error. Use it when the path was
// named explicitly rather than defaulted.
func WithRequired(on bool) Option {
	return func(l *loader) { l.required = on }
}

// WithEnvFile reads dotenv assignments from path instead of DefaultEnvFile.
// An empty path disables the dotenv layer.
func WithEnvFile(path string) Option {
	return func(l *loader) { l.envFile = path }
}

// WithLookup replaces os.LookupEnv, mainly for tests.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(l *loader) { l.lookup = fn }
}

// Load resolves the configuration. A missing YAML file is skipped unless
// WithRequired is set; a missing dotenv file is always skipped. Unreadable
// or malformed files are errors.
func Load(path string, opts ...Option) (Config, error) {
	l := loader{envFile: DefaultEnvFile, lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&l)
	}
	cfg := Default()

	// 1. YAML file
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !l.required:
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	// 2. dotenv, shadowed by the real environment
	dotenv := map[string]string{}
	if l.envFile != "" {
		m, err := godotenv.Read(l.envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", l.envFile, err)
		default:
			dotenv = m
		}
	}
	get := func(key string) (string, bool) {
		if v, ok := l.lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	// 3. environment overrides
	if v, ok := get(EnvInputDir); ok {
		cfg.InputDir = v
	}
	if v, ok := get(EnvExampleDir); ok {
		cfg.ExampleDir = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvColor); ok {
		cfg.Color = Color(v)
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidColor, c.Color)
}
