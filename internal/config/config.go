// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

// Package config loads and validates GamePilot configuration from
// layered sources: built-in defaults, an optional YAML file, and
// environment variables, in ascending precedence.
package config

import (
	"fmt"

	"github.com/jonnym69-ai/gamepilot/internal/recommend"
)

// Config is the root configuration for GamePilot.
type Config struct {
	// Logging configures the global logger.
	Logging LoggingConfig `json:"logging" koanf:"logging"`

	// Store configures the persistent profile store.
	Store StoreConfig `json:"store" koanf:"store"`

	// Engine configures the recommendation engine.
	Engine recommend.Config `json:"engine" koanf:"engine"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `json:"level" koanf:"level"`

	// Format is the output format: json or console.
	Format string `json:"format" koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `json:"caller" koanf:"caller"`
}

// StoreConfig configures the persistent profile store.
type StoreConfig struct {
	// Enabled controls whether profiles and weights are persisted.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// Path is the BadgerDB directory.
	Path string `json:"path" koanf:"path"`
}

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Store: StoreConfig{
			Enabled: false, // Opt-in; the CLI works statelessly without it
			Path:    "/data/gamepilot",
		},
		Engine: *recommend.DefaultConfig(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	if c.Store.Enabled && c.Store.Path == "" {
		return fmt.Errorf("store.path must be set when store.enabled is true")
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	return nil
}
