// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package recommend

import (
	"time"

	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/mood"
	"github.com/jonnym69-ai/gamepilot/internal/taste"
)

// TimeBudget hints how much time the user has for this play session.
// It drives the exploration rate: a longer budget leaves more room for
// discovery picks.
type TimeBudget string

const (
	// BudgetShort is a quick session; mostly safe picks.
	BudgetShort TimeBudget = "short"
	// BudgetMedium is the default budget.
	BudgetMedium TimeBudget = "medium"
	// BudgetLong is an open-ended session with more discovery.
	BudgetLong TimeBudget = "long"
)

// Category narrows the candidate pool before scoring.
type Category string

const (
	// CategoryNone applies no pre-filter.
	CategoryNone Category = ""
	// CategoryTopRated keeps the highest-quality candidates.
	CategoryTopRated Category = "top_rated"
	// CategoryUnderrated keeps high-quality candidates with low popularity.
	CategoryUnderrated Category = "underrated"
	// CategoryHiddenGems keeps the best of the low-popularity tail.
	CategoryHiddenGems Category = "hidden_gems"
)

// Request represents a recommendation request. The engine holds no user
// state; everything a scoring pass needs travels with the request.
type Request struct {
	// UserID identifies the user for logging and response metadata.
	UserID string `json:"user_id,omitempty"`

	// Candidates is the catalog pool to score.
	Candidates []models.CandidateGame `json:"candidates"`

	// Owned is the user's library, used to exclude already-owned titles.
	Owned []models.OwnedGame `json:"owned,omitempty"`

	// Profile is the user's taste profile. A nil profile degrades to
	// mood- and quality-driven scoring.
	Profile *taste.Profile `json:"-"`

	// SelectedMood is an optional explicit mood choice.
	SelectedMood mood.Mood `json:"selected_mood,omitempty" validate:"omitempty,oneof=calm competitive curious social focused"`

	// SecondaryMood optionally pairs with SelectedMood for hybrid
	// selection. Validated against the combination table.
	SecondaryMood mood.Mood `json:"secondary_mood,omitempty" validate:"omitempty,oneof=calm competitive curious social focused"`

	// Intensity scales the explicit-mood score component.
	// Zero means unset and defaults to 1.
	Intensity float64 `json:"intensity,omitempty" validate:"gte=0,lte=1"`

	// TimeBudget selects the exploration rate. Empty means medium.
	TimeBudget TimeBudget `json:"time_budget,omitempty" validate:"omitempty,oneof=short medium long"`

	// Category optionally pre-filters the candidate pool.
	Category Category `json:"category,omitempty" validate:"omitempty,oneof=top_rated underrated hidden_gems"`

	// Seed makes a single request reproducible. Zero uses the engine's
	// shared seeded source.
	Seed int64 `json:"seed,omitempty"`

	// RequestID is a unique identifier for tracing.
	// Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// ScoredGame represents one ranked recommendation with its explanation.
type ScoredGame struct {
	// Game is the recommended catalog item.
	Game models.CandidateGame `json:"game"`

	// Score is the combined recommendation score.
	Score float64 `json:"score"`

	// Moods lists the moods derived from the game's genres.
	Moods []mood.Mood `json:"moods,omitempty"`

	// Reasons holds up to two short human-readable justifications,
	// highest priority first.
	Reasons []string `json:"reasons,omitempty"`

	// Exploration marks picks sampled from outside the top ranks.
	Exploration bool `json:"exploration,omitempty"`
}

// Response represents the outcome of one scoring pass.
type Response struct {
	// Items is the final recommendation list in presentation order.
	Items []ScoredGame `json:"items"`

	// TotalCandidates is the pool size after ownership exclusion and
	// category filtering.
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// UserID is the user the recommendations are for.
	UserID string `json:"user_id,omitempty"`

	// Mood echoes the selected mood, if any.
	Mood mood.Mood `json:"mood,omitempty"`

	// Category echoes the category filter, if any.
	Category Category `json:"category,omitempty"`

	// ExplorationCount is how many slots were filled by sampling.
	ExplorationCount int `json:"exploration_count"`

	// LatencyMS is the scoring latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}
