// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package persona

import (
	"sort"
	"strings"

	"github.com/jonnym69-ai/gamepilot/internal/metrics"
	"github.com/jonnym69-ai/gamepilot/internal/models"
)

// Signals are the intermediate aggregates derived from a user's library
// and session history. Derived once per persona recompute; read-only
// downstream.
type Signals struct {
	// GenreAffinity is cumulative weighted playtime hours per genre.
	GenreAffinity map[string]float64 `json:"genre_affinity"`

	// CompletionRate is the share of owned games with at least one
	// unlocked achievement (0-1).
	CompletionRate float64 `json:"completion_rate"`

	// SessionPattern is the mean session length in minutes.
	SessionPattern float64 `json:"session_pattern"`

	// PlaytimeDistribution lists per-game hours sorted descending.
	PlaytimeDistribution []float64 `json:"playtime_distribution"`

	// MultiplayerRatio is the share of owned games tagged multiplayer
	// (0-1).
	MultiplayerRatio float64 `json:"multiplayer_ratio"`
}

// defaultPlaytimeHours weights owned-but-unplayed games so they still
// register in genre affinity.
const defaultPlaytimeHours = 1.0

// BuildSignals aggregates ownership and session records into Signals.
//
// The function is total over all input sizes: an empty library yields
// zero-valued signals with an empty affinity map, never an error.
func BuildSignals(owned []models.OwnedGame, sessions []models.GameSession) Signals {
	metrics.PersonaBuilds.Inc()

	s := Signals{
		GenreAffinity:        make(map[string]float64),
		PlaytimeDistribution: make([]float64, 0, len(owned)),
	}

	if len(owned) > 0 {
		completed := 0
		multiplayer := 0

		for _, g := range owned {
			hours := g.HoursPlayed
			if hours <= 0 {
				hours = defaultPlaytimeHours
			}

			for _, genre := range g.Genres {
				s.GenreAffinity[strings.ToLower(genre)] += hours
			}

			s.PlaytimeDistribution = append(s.PlaytimeDistribution, g.HoursPlayed)

			if g.AchievementsUnlocked > 0 {
				completed++
			}
			if g.Multiplayer {
				multiplayer++
			}
		}

		s.CompletionRate = float64(completed) / float64(len(owned))
		s.MultiplayerRatio = float64(multiplayer) / float64(len(owned))

		sort.Sort(sort.Reverse(sort.Float64Slice(s.PlaytimeDistribution)))
	}

	if len(sessions) > 0 {
		var total float64
		for _, sess := range sessions {
			total += sess.Minutes()
		}
		s.SessionPattern = total / float64(len(sessions))
	}

	return s
}
