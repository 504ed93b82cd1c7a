// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonnym69-ai/gamepilot/internal/logging"
	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/mood"
	"github.com/jonnym69-ai/gamepilot/internal/store"
)

func newMoodCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Infer the user's current mood from a behavior snapshot",
		Long: `Infer the user's current mood from a JSON behavior snapshot.

The snapshot aggregates recent play behavior (session counts and lengths,
genre switches, multiplayer activity). It is normalized into behavioral
features and scored against every mood; the output includes the full
score vector, the dominant mood, an optional secondary mood, and a
confidence estimate.

With --actual, the observed mood is fed back into the per-user weight
table, which adapts future inferences. Weight tables persist in the
profile store when it is enabled.`,
		RunE: runMood,
	}

	cmd.Flags().String("snapshot", "", "Path to a behavior snapshot JSON file (required)")
	cmd.Flags().String("user", "", "User ID for persisted weight tables")
	cmd.Flags().String("actual", "", "Observed mood for feedback adjustment")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

// moodReport is the JSON output of the mood command.
type moodReport struct {
	Features mood.FeatureVector     `json:"features"`
	Result   mood.InferenceResult   `json:"result"`
	Issues   []mood.Issue           `json:"issues,omitempty"`
	Adjusted mood.WeightTable       `json:"adjusted_weights,omitempty"`
	Pairings []mood.CombinationRule `json:"suggested_pairings,omitempty"`
}

func runMood(cmd *cobra.Command, args []string) error {
	snapshotPath, _ := cmd.Flags().GetString("snapshot")
	userID, _ := cmd.Flags().GetString("user")
	actual, _ := cmd.Flags().GetString("actual")

	var snap models.BehaviorSnapshot
	if err := readJSONFile(snapshotPath, &snap); err != nil {
		return err
	}

	engine := mood.NewEngine(nil, logging.Logger())
	weights, st, err := loadWeights(cmd, userID)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close() //nolint:errcheck // nothing useful to do on close failure
	}

	features := mood.NormalizeFeatures(snap)
	result := engine.InferResult(features, weights)

	report := moodReport{
		Features: features,
		Result:   result,
		Issues:   engine.ValidateVector(result.Vector).Issues,
	}

	if pairings, err := engine.Tables().SuggestCombinations(result.Dominant); err == nil {
		report.Pairings = pairings
	}

	if actual != "" {
		adjusted, err := applyFeedback(cmd, engine, weights, result, mood.Mood(actual), userID, st)
		if err != nil {
			return err
		}
		report.Adjusted = adjusted
	}

	return printJSON(report)
}

// loadWeights returns the user's persisted weight table when available,
// falling back to defaults. The returned store is non-nil only when
// persistence is enabled and a user was given.
func loadWeights(cmd *cobra.Command, userID string) (mood.WeightTable, *store.ProfileStore, error) {
	weights := mood.DefaultWeights()
	if userID == "" || !cfg.Store.Enabled {
		return weights, nil, nil
	}

	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	saved, err := st.LoadWeights(cmd.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return weights, st, nil
	}
	if err != nil {
		st.Close() //nolint:errcheck,gosec // already failing
		return nil, nil, err
	}

	return saved, st, nil
}

// applyFeedback adjusts the weight table from observed feedback and
// persists the result when a store is open.
func applyFeedback(
	cmd *cobra.Command,
	engine *mood.Engine,
	weights mood.WeightTable,
	result mood.InferenceResult,
	actual mood.Mood,
	userID string,
	st *store.ProfileStore,
) (mood.WeightTable, error) {
	if !actual.Valid() {
		return nil, fmt.Errorf("observed mood %q: %w", actual, mood.ErrInvalidMood)
	}

	adjusted, err := engine.AdjustWeights(weights, mood.Feedback{
		Predicted:  result.Dominant,
		Actual:     actual,
		Confidence: result.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("adjust weights: %w", err)
	}

	if st != nil && userID != "" {
		if err := st.SaveWeights(cmd.Context(), userID, adjusted); err != nil {
			return nil, err
		}
	}

	return adjusted, nil
}
