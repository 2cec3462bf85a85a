// Package config loads the wordsearch command settings: built in defaults,
// then an optional JSON file, then environment variables. Command line
// flags are applied last by the commands themselves.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

//
// ---------- Defaults ----------

const defaultConfigPath = "./wordsearch.json"

// Environment variables read by Load.
const (
	EnvConfig   = "WORDSEARCH_CONFIG"
	EnvDict     = "WORDSEARCH_DICT"
	EnvKind     = "WORDSEARCH_KIND"
	EnvWorkers  = "WORDSEARCH_WORKERS"
	EnvLogLevel = "WORDSEARCH_LOG_LEVEL"
	EnvLogFile  = "WORDSEARCH_LOG_FILE"
)

// Config holds the settings shared by the commands.
type Config struct {
	Dict    string `mapstructure:"dict"`    // word list or saved compact trie
	Kind    string `mapstructure:"kind"`    // dictionary kind
	Workers int    `mapstructure:"workers"` // solver goroutines, 0 for GOMAXPROCS
	Log     Log    `mapstructure:"log"`
}

// Log configures logging.
type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`        // empty to log to stderr only
	Style      string `mapstructure:"style"`       // console theme, "dark" or "light"
	MaxSize    int    `mapstructure:"max_size"`    // MB
	MaxBackups int    `mapstructure:"max_backups"` // rotated files
	MaxAge     int    `mapstructure:"max_age"`     // days
	Compress   bool   `mapstructure:"compress"`
}

// Default returns the built in settings.
func Default() Config {
	return Config{
		Kind: "compact_trie",
		Log: Log{
			Level:      "info",
			Style:      "dark",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

//
// ---------- Load ----------

// Load reads the JSON config at path over the defaults, then applies the
// environment. If path is empty, it uses WORDSEARCH_CONFIG or
// ./wordsearch.json, and a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
		if path == "" {
			path = defaultConfigPath
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decode parses JSON into a map, then decodes the map over cfg so that
// keys missing from the file keep their current values.
func decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvDict); ok {
		cfg.Dict = v
	}
	if v, ok := os.LookupEnv(EnvKind); ok {
		cfg.Kind = v
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Log.File = v
	}
	return nil
}

// Validate checks the values that cannot be checked by type alone.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
