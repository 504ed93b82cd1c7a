// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package mood

import (
	"math"

	"github.com/jonnym69-ai/gamepilot/internal/models"
)

// Reference scales for mapping raw counters into [-1, 1]. A counter at the
// reference value normalizes to 1 (or -1 on the negative side); larger
// values saturate.
const (
	// volatilityRefMinutes is the session-length stddev that saturates
	// engagement volatility.
	volatilityRefMinutes = 90.0

	// socialRefInteractions is the interaction count that saturates
	// social openness.
	socialRefInteractions = 50.0

	// explorationRefSwitches is the genre-switch count that saturates
	// exploration bias.
	explorationRefSwitches = 20.0

	// explorationRefGenres is the distinct-genre count that saturates
	// the variety component of exploration bias.
	explorationRefGenres = 10.0

	// focusRefMinutes is the mean session length that saturates focus
	// stability.
	focusRefMinutes = 120.0
)

// NormalizeFeatures maps a bundle of raw behavioral counters into a
// FeatureVector with every feature present and clamped to [-1, 1].
//
// The function is pure and total: the same snapshot always yields the same
// vector, absent counters normalize to 0, and non-finite intermediate
// values are sanitized to 0 instead of propagating.
func NormalizeFeatures(snap models.BehaviorSnapshot) FeatureVector {
	fv := FeatureVector{
		EngagementVolatility: normalizeVolatility(snap),
		ChallengeSeeking:     normalizeChallenge(snap),
		SocialOpenness:       normalizeSocial(snap),
		ExplorationBias:      normalizeExploration(snap),
		FocusStability:       normalizeFocus(snap),
	}

	for f, v := range fv {
		fv[f] = clampFeature(v)
	}

	return fv
}

// normalizeVolatility maps session-length irregularity to [-1, 1].
// High stddev relative to the reference scale reads as volatile; very
// regular sessions read as negative (stable).
func normalizeVolatility(snap models.BehaviorSnapshot) float64 {
	if snap.SessionCount == 0 {
		return 0
	}
	ratio := snap.SessionMinutesStdDev / volatilityRefMinutes
	return ratio*2 - 1
}

// normalizeChallenge blends the reported difficulty preference with the
// completion-to-abandonment balance.
func normalizeChallenge(snap models.BehaviorSnapshot) float64 {
	pref := snap.DifficultyPreference

	attempts := snap.CompletedGames + snap.AbandonedGames
	if attempts == 0 {
		return pref
	}

	// Abandoning hard content pulls challenge seeking down.
	balance := float64(snap.CompletedGames-snap.AbandonedGames) / float64(attempts)
	return 0.7*pref + 0.3*balance
}

// normalizeSocial maps multiplayer share and social-platform activity
// to [-1, 1]. No observed sessions and no interactions is absent data
// and stays neutral.
func normalizeSocial(snap models.BehaviorSnapshot) float64 {
	if snap.SessionCount == 0 && snap.SocialInteractions == 0 {
		return 0
	}

	activity := math.Min(float64(snap.SocialInteractions)/socialRefInteractions, 1)
	if snap.SessionCount == 0 {
		return activity*2 - 1
	}

	share := float64(snap.MultiplayerSessions) / float64(snap.SessionCount)
	return (0.5*share+0.5*activity)*2 - 1
}

// normalizeExploration maps genre switching, genre variety, and new-game
// starts to [-1, 1]. All-zero exploration counters are absent data and
// stay neutral.
func normalizeExploration(snap models.BehaviorSnapshot) float64 {
	if snap.GenreSwitches == 0 && snap.DistinctGenres == 0 && snap.NewGamesStarted == 0 {
		return 0
	}

	switches := math.Min(float64(snap.GenreSwitches)/explorationRefSwitches, 1)
	variety := math.Min(float64(snap.DistinctGenres)/explorationRefGenres, 1)
	novelty := 0.0
	if snap.SessionCount > 0 {
		novelty = math.Min(float64(snap.NewGamesStarted)/float64(snap.SessionCount), 1)
	}
	return (0.5*switches+0.3*variety+0.2*novelty)*2 - 1
}

// normalizeFocus maps mean session length to [-1, 1].
func normalizeFocus(snap models.BehaviorSnapshot) float64 {
	if snap.SessionCount == 0 {
		return 0
	}
	return (snap.MeanSessionMinutes/focusRefMinutes)*2 - 1
}

// clampFeature bounds a feature value to [-1, 1] and sanitizes non-finite
// input to 0.
func clampFeature(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp01 bounds a probability-like value to [0, 1], sanitizing non-finite
// input to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
