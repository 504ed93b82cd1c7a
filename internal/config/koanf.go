// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"gamepilot.yaml",
	"gamepilot.yml",
	"/etc/gamepilot/config.yaml",
	"/etc/gamepilot/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "GAMEPILOT_CONFIG"

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if it exists)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile loads configuration from an explicit YAML file path layered
// over defaults and under environment variables. An empty path skips
// the file layer.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Layer 2: optional config file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("GAMEPILOT_", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps environment variable suffixes (after GAMEPILOT_) to
// koanf config paths. Only mapped variables are honored; everything
// else is ignored so unrelated GAMEPILOT_* variables cannot corrupt
// nested keys.
var envMappings = map[string]string{
	"log_level":     "logging.level",
	"log_format":    "logging.format",
	"log_caller":    "logging.caller",
	"store_enabled": "store.enabled",
	"store_path":    "store.path",
	"seed":          "engine.seed",
	"target_size":   "engine.limits.target_size",
	"mood_weight":   "engine.scoring.mood_weight",
}

// envTransformFunc transforms environment variable names to koanf
// config paths.
//
// Examples:
//   - GAMEPILOT_LOG_LEVEL -> logging.level
//   - GAMEPILOT_STORE_PATH -> store.path
//   - GAMEPILOT_SEED -> engine.seed
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, "GAMEPILOT_"))
	if path, ok := envMappings[key]; ok {
		return path
	}
	return ""
}
