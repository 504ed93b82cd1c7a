// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package persona

// Traits are the six bounded play-style scores. Each is a pure function
// of Signals with no independent lifecycle; recompute whenever the
// signals change.
type Traits struct {
	// Explorer rewards breadth of distinct genres (saturates at 10).
	Explorer float64 `json:"explorer"`

	// Specialist rewards concentration of playtime in a single genre.
	Specialist float64 `json:"specialist"`

	// Competitor tracks the multiplayer share of the library.
	Competitor float64 `json:"competitor"`

	// Completionist tracks the achievement completion rate.
	Completionist float64 `json:"completionist"`

	// Strategist rewards long average sessions (saturates at 3 hours).
	Strategist float64 `json:"strategist"`

	// Adventurer tracks the share of lightly-played games (<= 5 hours).
	Adventurer float64 `json:"adventurer"`
}

// Trait saturation constants.
const (
	// explorerGenreSaturation is the distinct-genre count that maxes
	// the explorer trait.
	explorerGenreSaturation = 10.0

	// strategistSessionSaturation is the mean session length in minutes
	// that maxes the strategist trait.
	strategistSessionSaturation = 180.0

	// adventurerHoursCeiling is the playtime at or below which a game
	// counts as a light dip.
	adventurerHoursCeiling = 5.0
)

// BuildTraits derives the six trait scores from persona signals. Every
// trait is clamped to [0, 1] regardless of intermediate arithmetic, and
// empty signals resolve to all-zero traits.
func BuildTraits(s Signals) Traits {
	return Traits{
		Explorer:      clamp01(float64(len(s.GenreAffinity)) / explorerGenreSaturation),
		Specialist:    clamp01(specialistScore(s.GenreAffinity)),
		Competitor:    clamp01(s.MultiplayerRatio),
		Completionist: clamp01(s.CompletionRate),
		Strategist:    clamp01(s.SessionPattern / strategistSessionSaturation),
		Adventurer:    clamp01(adventurerScore(s.PlaytimeDistribution)),
	}
}

// specialistScore is the largest single-genre share of total genre
// playtime, 0 when there is no playtime at all.
func specialistScore(affinity map[string]float64) float64 {
	var total, top float64
	for _, hours := range affinity {
		total += hours
		if hours > top {
			top = hours
		}
	}
	if total == 0 {
		return 0
	}
	return top / total
}

// adventurerScore is the share of games with at most 5 hours of playtime.
func adventurerScore(distribution []float64) float64 {
	if len(distribution) == 0 {
		return 0
	}
	light := 0
	for _, hours := range distribution {
		if hours <= adventurerHoursCeiling {
			light++
		}
	}
	return float64(light) / float64(len(distribution))
}

// clamp01 bounds a trait score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
