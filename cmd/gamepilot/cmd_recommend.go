// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jonnym69-ai/gamepilot/internal/logging"
	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/mood"
	"github.com/jonnym69-ai/gamepilot/internal/recommend"
	"github.com/jonnym69-ai/gamepilot/internal/store"
	"github.com/jonnym69-ai/gamepilot/internal/taste"
)

func newRecommendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend games from a catalog for the current mood",
		Long: `Recommend games from a JSON catalog, scored against the user's taste
profile and an optional explicit mood.

The taste profile is built from the library file, or loaded from the
profile store when --user is given and a saved profile exists. Owned
titles are always excluded from the results.`,
		RunE: runRecommend,
	}

	cmd.Flags().String("library", "", "Path to an owned-games JSON file (required)")
	cmd.Flags().String("catalog", "", "Path to a candidate-catalog JSON file (required)")
	cmd.Flags().String("user", "", "User ID for persisted taste profiles")
	cmd.Flags().String("mood", "", "Explicit mood (calm, competitive, curious, social, focused)")
	cmd.Flags().String("secondary", "", "Secondary mood for hybrid selection")
	cmd.Flags().Float64("intensity", 0, "Mood intensity (0-1, default 1)")
	cmd.Flags().String("budget", "", "Time budget: short, medium, long")
	cmd.Flags().String("category", "", "Category filter: top_rated, underrated, hidden_gems")
	cmd.Flags().Int64("seed", 0, "Random seed for reproducible output")
	_ = cmd.MarkFlagRequired("library")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	libraryPath, _ := cmd.Flags().GetString("library")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	userID, _ := cmd.Flags().GetString("user")
	moodFlag, _ := cmd.Flags().GetString("mood")
	secondary, _ := cmd.Flags().GetString("secondary")
	intensity, _ := cmd.Flags().GetFloat64("intensity")
	budget, _ := cmd.Flags().GetString("budget")
	category, _ := cmd.Flags().GetString("category")
	seed, _ := cmd.Flags().GetInt64("seed")

	var owned []models.OwnedGame
	if err := readJSONFile(libraryPath, &owned); err != nil {
		return err
	}
	var catalog []models.CandidateGame
	if err := readJSONFile(catalogPath, &catalog); err != nil {
		return err
	}

	profile, err := loadProfile(cmd, userID, owned)
	if err != nil {
		return err
	}

	engine, err := recommend.NewEngine(&cfg.Engine, mood.DefaultTables(), logging.Logger())
	if err != nil {
		return err
	}

	resp, err := engine.Recommend(cmd.Context(), recommend.Request{
		UserID:        userID,
		Candidates:    catalog,
		Owned:         owned,
		Profile:       profile,
		SelectedMood:  mood.Mood(moodFlag),
		SecondaryMood: mood.Mood(secondary),
		Intensity:     intensity,
		TimeBudget:    recommend.TimeBudget(budget),
		Category:      recommend.Category(category),
		Seed:          seed,
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

// loadProfile prefers a persisted taste profile, falling back to one
// built from the library file.
func loadProfile(cmd *cobra.Command, userID string, owned []models.OwnedGame) (*taste.Profile, error) {
	if userID != "" && cfg.Store.Enabled {
		st, err := openStore()
		if err != nil {
			return nil, err
		}
		defer st.Close() //nolint:errcheck // nothing useful to do on close failure

		profile, err := st.LoadTaste(cmd.Context(), userID)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	return taste.Build(owned), nil
}
