// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package mood

import (
	"sort"
	"strings"
)

// Tables holds the static configuration data the inference engine operates
// on: per-mood feature coefficients, the default weight table, the
// genre-to-mood mapping, and the mood combination rules. Tables are
// immutable after construction and injectable so tests can substitute them.
type Tables struct {
	// Coefficients maps each mood to its feature coefficient vector.
	// Coefficients are roughly in [-1, 1].
	Coefficients map[Mood]map[Feature]float64

	// Weights is the default feature weight table (sums to 1).
	Weights WeightTable

	// GenreMoods maps a lowercase genre tag to the moods it implies.
	// A genre may map to multiple moods.
	GenreMoods map[string][]Mood

	// Combinations lists the known primary/secondary compatibility rules.
	// Lookup is symmetric.
	Combinations []CombinationRule
}

// DefaultTables returns the built-in configuration tables.
func DefaultTables() *Tables {
	return &Tables{
		Coefficients: map[Mood]map[Feature]float64{
			Calm: {
				EngagementVolatility: -0.9,
				ChallengeSeeking:     -0.6,
				SocialOpenness:       -0.2,
				ExplorationBias:      -0.1,
				FocusStability:       0.8,
			},
			Competitive: {
				EngagementVolatility: 0.4,
				ChallengeSeeking:     0.9,
				SocialOpenness:       0.3,
				ExplorationBias:      -0.2,
				FocusStability:       0.3,
			},
			Curious: {
				EngagementVolatility: 0.2,
				ChallengeSeeking:     0.1,
				SocialOpenness:       0.0,
				ExplorationBias:      0.9,
				FocusStability:       -0.1,
			},
			Social: {
				EngagementVolatility: 0.3,
				ChallengeSeeking:     0.2,
				SocialOpenness:       0.9,
				ExplorationBias:      0.1,
				FocusStability:       -0.2,
			},
			Focused: {
				EngagementVolatility: -0.5,
				ChallengeSeeking:     0.3,
				SocialOpenness:       -0.3,
				ExplorationBias:      -0.2,
				FocusStability:       0.9,
			},
		},
		Weights:      DefaultWeights(),
		GenreMoods:   defaultGenreMoods(),
		Combinations: defaultCombinations(),
	}
}

// DefaultWeights returns a fresh copy of the default weight table.
// Weights sum to 1.
func DefaultWeights() WeightTable {
	return WeightTable{
		EngagementVolatility: 0.2,
		ChallengeSeeking:     0.2,
		SocialOpenness:       0.2,
		ExplorationBias:      0.2,
		FocusStability:       0.2,
	}
}

// defaultGenreMoods returns the built-in genre-to-mood lookup table.
func defaultGenreMoods() map[string][]Mood {
	return map[string][]Mood{
		"puzzle":       {Calm, Focused},
		"simulation":   {Calm},
		"casual":       {Calm},
		"sandbox":      {Calm, Curious},
		"shooter":      {Competitive},
		"fighting":     {Competitive},
		"racing":       {Competitive},
		"moba":         {Competitive, Social},
		"sports":       {Competitive, Social},
		"roguelike":    {Curious, Competitive},
		"rpg":          {Curious, Focused},
		"adventure":    {Curious},
		"open world":   {Curious},
		"metroidvania": {Curious, Focused},
		"indie":        {Curious},
		"mmo":          {Social},
		"party":        {Social},
		"co-op":        {Social},
		"strategy":     {Focused, Calm},
		"survival":     {Focused},
		"platformer":   {Focused},
		"horror":       {Focused},
	}
}

// defaultCombinations returns the built-in hybrid-mood compatibility rules.
func defaultCombinations() []CombinationRule {
	return []CombinationRule{
		{Primary: Calm, Secondary: Focused, Compatibility: 0.9},
		{Primary: Competitive, Secondary: Focused, Compatibility: 0.85},
		{Primary: Calm, Secondary: Curious, Compatibility: 0.8},
		{Primary: Curious, Secondary: Focused, Compatibility: 0.8},
		{Primary: Competitive, Secondary: Social, Compatibility: 0.75},
		{Primary: Curious, Secondary: Social, Compatibility: 0.7},
		{Primary: Competitive, Secondary: Curious, Compatibility: 0.6},
		{Primary: Calm, Secondary: Social, Compatibility: 0.5},
		{Primary: Social, Secondary: Focused, Compatibility: 0.4},
		{Primary: Calm, Secondary: Competitive, Compatibility: 0.2},
	}
}

// DeriveMoods returns the moods implied by a candidate's genre tags,
// de-duplicated, in stable order. Unknown genres contribute nothing.
func (t *Tables) DeriveMoods(genres []string) []Mood {
	seen := make(map[Mood]struct{}, len(All))
	out := make([]Mood, 0, len(All))
	for _, g := range genres {
		for _, m := range t.GenreMoods[strings.ToLower(g)] {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// ValidateCombination checks a primary/secondary pair against the
// compatibility table. Both moods must be members of the fixed set.
// Pairs without a rule get a neutral rule with zero compatibility.
func (t *Tables) ValidateCombination(primary, secondary Mood) (CombinationRule, error) {
	if !primary.Valid() {
		return CombinationRule{}, ErrInvalidMood
	}
	if !secondary.Valid() {
		return CombinationRule{}, ErrInvalidMood
	}

	for _, r := range t.Combinations {
		if (r.Primary == primary && r.Secondary == secondary) ||
			(r.Primary == secondary && r.Secondary == primary) {
			return CombinationRule{Primary: primary, Secondary: secondary, Compatibility: r.Compatibility}, nil
		}
	}

	return CombinationRule{Primary: primary, Secondary: secondary, Compatibility: 0}, nil
}

// SuggestCombinations returns rules involving the given primary mood,
// sorted by compatibility descending.
func (t *Tables) SuggestCombinations(primary Mood) ([]CombinationRule, error) {
	if !primary.Valid() {
		return nil, ErrInvalidMood
	}

	out := make([]CombinationRule, 0, len(t.Combinations))
	for _, r := range t.Combinations {
		switch primary {
		case r.Primary:
			out = append(out, r)
		case r.Secondary:
			out = append(out, CombinationRule{
				Primary:       primary,
				Secondary:     r.Primary,
				Compatibility: r.Compatibility,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Compatibility > out[j].Compatibility
	})

	return out, nil
}
