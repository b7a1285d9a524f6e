// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the settings of the httperr demo server from a YAML
// file and environment variable overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/toolhive-httperr/env"
	"github.com/stacklok/toolhive-httperr/logging"
)

// RelPath is the config file location relative to the XDG config directories.
const RelPath = "toolhive-httperr/config.yaml"

// Environment variables overriding file values.
const (
	EnvAddress    = "HTTPERR_ADDRESS"
	EnvLogBackend = "HTTPERR_LOG_BACKEND"
	EnvLogFormat  = "HTTPERR_LOG_FORMAT"
	EnvLogLevel   = "HTTPERR_LOG_LEVEL"
)

// Log backends accepted in LogConfig.Backend.
const (
	BackendZap  = "zap"
	BackendSlog = "slog"
	BackendLogr = "logr"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the demo server configuration.
type Config struct {
	Address string    `yaml:"address"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig selects the logger the recovery boundary writes to.
type LogConfig struct {
	// Backend is one of "zap", "slog" or "logr".
	Backend string `yaml:"backend"`
	// Format is "json" or "text". Only used by the slog backend;
	// zap follows UNSTRUCTURED_LOGS.
	Format string `yaml:"format"`
	// Level is a slog level name: debug, info, warn or error.
	// Every backend honors it; zap maps it through Config.Level.
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Address: ":8080",
		Log: LogConfig{
			Backend: BackendZap,
			Format:  "text",
			Level:   "info",
		},
	}
}

// Load reads the configuration.
//
// Values start from Default, are overlaid by the YAML file at path and then by
// the HTTPERR_* environment variables. If path is empty, RelPath is searched
// in the XDG config directories and a missing file is not an error.
func Load(path string, envReader env.Reader) (Config, error) {
	cfg := Default()

	if path == "" {
		if found, err := xdg.SearchConfigFile(RelPath); err == nil {
			path = found
		}
	}

	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg, envReader)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, envReader env.Reader) {
	if v := envReader.Getenv(EnvAddress); v != "" {
		cfg.Address = v
	}
	if v := envReader.Getenv(EnvLogBackend); v != "" {
		cfg.Log.Backend = v
	}
	if v := envReader.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := envReader.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("%w: address cannot be empty", ErrInvalidConfig)
	}

	switch c.Log.Backend {
	case BackendZap, BackendSlog, BackendLogr:
	default:
		return fmt.Errorf("%w: unknown log backend %q", ErrInvalidConfig, c.Log.Backend)
	}

	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// IsDebug reports whether the log level is debug.
// It makes Config usable as a logger.DebugProvider.
func (c Config) IsDebug() bool {
	return c.Level() <= slog.LevelDebug
}

// Level returns the parsed log level, or info if it cannot be parsed.
// It makes Config a logger.LevelProvider.
func (c Config) Level() slog.Level {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}
