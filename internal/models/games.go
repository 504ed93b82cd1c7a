// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package models

import (
	"strings"
	"time"
)

// OwnedGame is a library entry supplied by a platform adapter.
// All optional metadata defaults to its zero value; the engine treats
// missing tags as contributing no score rather than as an error.
type OwnedGame struct {
	// ID is the platform-scoped game identifier.
	ID string `json:"id"`

	// Title is the display title. Dedup checks are case-insensitive.
	Title string `json:"title"`

	// Genres is the list of genre tags (lowercase by convention).
	Genres []string `json:"genres,omitempty"`

	// Moods is the optional list of mood tags attached by the catalog.
	Moods []string `json:"moods,omitempty"`

	// HoursPlayed is the cumulative playtime in hours.
	HoursPlayed float64 `json:"hours_played,omitempty"`

	// AchievementsUnlocked is the number of unlocked achievements.
	AchievementsUnlocked int `json:"achievements_unlocked,omitempty"`

	// Multiplayer indicates the game is tagged multiplayer.
	Multiplayer bool `json:"multiplayer,omitempty"`
}

// GameSession is a single play session supplied by a platform adapter.
type GameSession struct {
	// GameID is the game the session belongs to.
	GameID string `json:"game_id"`

	// StartedAt is when the session began.
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the session ended.
	EndedAt time.Time `json:"ended_at,omitempty"`

	// DurationMinutes is the session length in minutes. When zero and
	// both timestamps are set, the duration is derived from them.
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
}

// Minutes returns the session duration in minutes, deriving it from the
// timestamps when DurationMinutes is unset. Negative results clamp to 0.
func (s GameSession) Minutes() float64 {
	d := s.DurationMinutes
	if d == 0 && !s.EndedAt.IsZero() && s.EndedAt.After(s.StartedAt) {
		d = s.EndedAt.Sub(s.StartedAt).Minutes()
	}
	if d < 0 {
		return 0
	}
	return d
}

// CandidateGame is a not-yet-owned catalog item supplied by the candidate
// source. Immutable, read-only input to the scorer.
type CandidateGame struct {
	// ID is the catalog identifier.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Genres is the list of genre tags.
	Genres []string `json:"genres,omitempty"`

	// QualityScore is the aggregate review quality (0-100).
	QualityScore float64 `json:"quality_score"`

	// PopularityScore is the relative popularity (0-100).
	PopularityScore float64 `json:"popularity_score"`
}

// HasGenre reports whether the candidate carries the given genre tag.
// Comparison is case-insensitive.
func (c CandidateGame) HasGenre(genre string) bool {
	for _, g := range c.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
