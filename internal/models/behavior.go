// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package models

// BehaviorSnapshot is the bundle of raw behavioral counters collected by
// external adapters over an observation window. Every field is optional;
// absent data is represented by the zero value and normalizes to a neutral
// feature rather than an error.
type BehaviorSnapshot struct {
	// SessionCount is the number of play sessions in the window.
	SessionCount int `json:"session_count,omitempty"`

	// MeanSessionMinutes is the average session length in minutes.
	MeanSessionMinutes float64 `json:"mean_session_minutes,omitempty"`

	// SessionMinutesStdDev is the standard deviation of session lengths.
	SessionMinutesStdDev float64 `json:"session_minutes_stddev,omitempty"`

	// GenreSwitches is how many times consecutive sessions changed genre.
	GenreSwitches int `json:"genre_switches,omitempty"`

	// DistinctGenres is the number of distinct genres played.
	DistinctGenres int `json:"distinct_genres,omitempty"`

	// MultiplayerSessions is the number of sessions in multiplayer titles.
	MultiplayerSessions int `json:"multiplayer_sessions,omitempty"`

	// SocialInteractions counts friend invites, chat messages, and other
	// social-platform activity observed in the window.
	SocialInteractions int `json:"social_interactions,omitempty"`

	// CompletedGames is the number of games finished in the window.
	CompletedGames int `json:"completed_games,omitempty"`

	// AbandonedGames is the number of games dropped before 10% progress.
	AbandonedGames int `json:"abandoned_games,omitempty"`

	// DifficultyPreference is the adapter-reported difficulty preference
	// on a -1 (easiest) to 1 (hardest) scale.
	DifficultyPreference float64 `json:"difficulty_preference,omitempty"`

	// NewGamesStarted is the number of previously unplayed games started.
	NewGamesStarted int `json:"new_games_started,omitempty"`
}
