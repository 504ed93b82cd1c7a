// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package main

import (
	"github.com/spf13/cobra"

	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/persona"
)

func newPersonaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persona",
		Short: "Synthesize persona signals and traits from a game library",
		Long: `Synthesize persona signals and traits from a JSON game library.

Signals are raw aggregates (genre affinity, completion rate, playtime
distribution); traits are the derived 0-1 player dimensions (explorer,
specialist, competitor, completionist, strategist, adventurer). An
optional sessions file refines the session-pattern signal.`,
		RunE: runPersona,
	}

	cmd.Flags().String("library", "", "Path to an owned-games JSON file (required)")
	cmd.Flags().String("sessions", "", "Path to a play-sessions JSON file")
	_ = cmd.MarkFlagRequired("library")

	return cmd
}

// personaReport is the JSON output of the persona command.
type personaReport struct {
	Signals persona.Signals `json:"signals"`
	Traits  persona.Traits  `json:"traits"`
}

func runPersona(cmd *cobra.Command, args []string) error {
	libraryPath, _ := cmd.Flags().GetString("library")
	sessionsPath, _ := cmd.Flags().GetString("sessions")

	var owned []models.OwnedGame
	if err := readJSONFile(libraryPath, &owned); err != nil {
		return err
	}

	var sessions []models.GameSession
	if sessionsPath != "" {
		if err := readJSONFile(sessionsPath, &sessions); err != nil {
			return err
		}
	}

	signals := persona.BuildSignals(owned, sessions)
	return printJSON(personaReport{
		Signals: signals,
		Traits:  persona.BuildTraits(signals),
	})
}
