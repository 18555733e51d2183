// Package configuration resolves engine settings from environment files.
package configuration

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lexpath/lexpath"
)

const (
	KeyGrammar  = "LEXPATH_GRAMMAR"
	KeyStrict   = "LEXPATH_STRICT"
	KeyBase     = "LEXPATH_BASE"
	KeyLogLevel = "LEXPATH_LOG_LEVEL"
	KeyWorkers  = "LEXPATH_WORKERS"
)

type envFileProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings holds the engine configuration as resolved from an environment file.
type Settings struct {
	Grammar  lexpath.Grammar
	Strict   bool
	Base     string
	LogLevel slog.Level
	Workers  int
}

// Handler is the principal implementation for configuration handling.
type Handler struct {
	EnvFileHandler envFileProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(envFileHandler envFileProvider) *Handler {
	return &Handler{
		EnvFileHandler: envFileHandler,
	}
}

// Load reads the given environment files and resolves them into [Settings].
// Keys that are absent fall back to their defaults (native grammar, lenient
// classification, empty base, info logging, automatic worker count), whereas
// keys that are present but malformed return an error.
func (c *Handler) Load(filenames ...string) (Settings, error) {
	settings := Settings{
		Grammar:  lexpath.Native,
		LogLevel: slog.LevelInfo,
	}

	envMap, err := c.EnvFileHandler.Read(filenames...)
	if err != nil {
		return settings, fmt.Errorf("(config) failed to read environment: %w", err)
	}

	if value := c.MapKeyToString(envMap, KeyGrammar); value != "" {
		grammar, err := lexpath.ParseGrammar(value)
		if err != nil {
			return settings, fmt.Errorf("(config) %s: %w", KeyGrammar, err)
		}

		settings.Grammar = grammar
	}

	if value := c.MapKeyToString(envMap, KeyStrict); value != "" {
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return settings, fmt.Errorf("(config) %s: %w", KeyStrict, err)
		}

		settings.Strict = strict
	}

	settings.Base = c.MapKeyToString(envMap, KeyBase)

	if value := c.MapKeyToString(envMap, KeyLogLevel); value != "" {
		if err := settings.LogLevel.UnmarshalText([]byte(value)); err != nil {
			return settings, fmt.Errorf("(config) %s: %w", KeyLogLevel, err)
		}
	}

	if value := c.MapKeyToString(envMap, KeyWorkers); value != "" {
		workers := c.MapKeyToInt(envMap, KeyWorkers)
		if workers < 0 {
			return settings, fmt.Errorf("(config) %s: %w: %q", KeyWorkers, ErrInvalidWorkers, value)
		}

		settings.Workers = workers
	}

	return settings, nil
}

// MapKeyToString returns the value of a key from an environment map, or an
// empty string when the key is absent.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt returns the integer value of a key from an environment map, or
// -1 when the key is absent or not parseable as an integer.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}
