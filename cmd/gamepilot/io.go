// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/jonnym69-ai/gamepilot/internal/logging"
	"github.com/jonnym69-ai/gamepilot/internal/store"
)

// errStoreDisabled is returned by store-backed commands when
// persistence is not configured.
var errStoreDisabled = errors.New("profile store is disabled; enable it with store.enabled or GAMEPILOT_STORE_ENABLED")

// readJSONFile reads and unmarshals a JSON file into v.
func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from a CLI flag
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// openStore opens the configured profile store.
func openStore() (*store.ProfileStore, error) {
	if !cfg.Store.Enabled {
		return nil, errStoreDisabled
	}
	return store.Open(cfg.Store.Path, logging.Logger())
}
