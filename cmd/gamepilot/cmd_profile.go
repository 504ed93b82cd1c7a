// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package main

import (
	"github.com/spf13/cobra"

	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/taste"
)

func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage persisted taste profiles",
		Long: `Manage taste profiles in the persistent store.

Profiles accumulate mood and genre affinity weights from the user's
library. Saved profiles are preferred over file-built ones by the
recommend command.`,
	}

	cmd.AddCommand(newProfileBuildCommand())
	cmd.AddCommand(newProfileShowCommand())
	cmd.AddCommand(newProfileDeleteCommand())

	return cmd
}

func newProfileBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a taste profile from a library and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			libraryPath, _ := cmd.Flags().GetString("library")
			userID, _ := cmd.Flags().GetString("user")

			var owned []models.OwnedGame
			if err := readJSONFile(libraryPath, &owned); err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck // nothing useful to do on close failure

			profile := taste.Build(owned)
			if err := st.SaveTaste(cmd.Context(), userID, profile); err != nil {
				return err
			}

			return printJSON(profile.Snapshot())
		},
	}

	cmd.Flags().String("library", "", "Path to an owned-games JSON file (required)")
	cmd.Flags().String("user", "", "User ID to save the profile under (required)")
	_ = cmd.MarkFlagRequired("library")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newProfileShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a saved taste profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck // nothing useful to do on close failure

			profile, err := st.LoadTaste(cmd.Context(), userID)
			if err != nil {
				return err
			}

			return printJSON(profile.Snapshot())
		},
	}

	cmd.Flags().String("user", "", "User ID to load (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newProfileDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete all saved state for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck // nothing useful to do on close failure

			return st.DeleteUser(cmd.Context(), userID)
		},
	}

	cmd.Flags().String("user", "", "User ID to delete (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
