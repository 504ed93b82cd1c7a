// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonnym69-ai/gamepilot/internal/config"
	"github.com/jonnym69-ai/gamepilot/internal/logging"
)

var version = "dev"

// cfg is the loaded application configuration, populated by the root
// command's PersistentPreRunE before any subcommand runs.
var cfg *config.Config

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gamepilot",
		Short: "GamePilot - mood-aware game recommendations for your library",
		Long: `GamePilot scores your game catalog against your play history and an
optional explicit mood selection, and explains every pick.

It infers a mood from recent play behavior, synthesizes a persona from
your library, and recommends what to play next for the time you have.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configPath := cmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	logLevel := cmd.PersistentFlags().String("log-level", "", "Override log level (debug, info, warn, error)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		if *configPath != "" {
			cfg, err = config.LoadFile(*configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		if *logLevel != "" {
			cfg.Logging.Level = *logLevel
		}
		logging.Init(logging.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			Caller:    cfg.Logging.Caller,
			Timestamp: true,
		})

		return nil
	}

	// Add subcommands
	cmd.AddCommand(newMoodCommand())
	cmd.AddCommand(newPersonaCommand())
	cmd.AddCommand(newRecommendCommand())
	cmd.AddCommand(newProfileCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}
