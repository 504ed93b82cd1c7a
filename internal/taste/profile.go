// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

// Package taste builds long-term mood/genre affinity profiles from a
// user's owned-game history, independent of the momentary mood vector.
package taste

import (
	"sort"
	"strings"

	"github.com/jonnym69-ai/gamepilot/internal/models"
)

// Per-item weight bounds. Weight grows with playtime but a single
// mega-played title cannot swamp the rest of the profile.
const (
	minItemWeight = 1.0
	maxItemWeight = 6.0

	// hoursPerWeightStep is the playtime that adds one unit of weight.
	hoursPerWeightStep = 10.0

	// topKeys is how many keys the Top accessors return.
	topKeys = 6
)

// Profile accumulates mood and genre affinity weights from owned-game
// history. Weights only grow as more history is folded in; Reset is the
// only decrement path.
//
// Tie-breaks in the Top accessors follow first-encountered order, so key
// insertion order is tracked alongside the weight maps.
type Profile struct {
	moodWeights  map[string]float64
	genreWeights map[string]float64
	moodOrder    []string
	genreOrder   []string
}

// NewProfile returns an empty profile.
func NewProfile() *Profile {
	return &Profile{
		moodWeights:  make(map[string]float64),
		genreWeights: make(map[string]float64),
	}
}

// Build folds a list of owned games into a fresh profile.
func Build(owned []models.OwnedGame) *Profile {
	p := NewProfile()
	for _, g := range owned {
		p.AddGame(g)
	}
	return p
}

// ItemWeight maps hours played to the per-item accumulation weight:
// 1 + hours/10, clamped to [1, 6]. Monotonically non-decreasing in hours
// for all non-negative inputs.
func ItemWeight(hoursPlayed float64) float64 {
	w := 1 + hoursPlayed/hoursPerWeightStep
	if w < minItemWeight {
		return minItemWeight
	}
	if w > maxItemWeight {
		return maxItemWeight
	}
	return w
}

// AddGame folds a single owned game into the profile, accumulating its
// weight into every mood and genre tag the game carries.
func (p *Profile) AddGame(g models.OwnedGame) {
	w := ItemWeight(g.HoursPlayed)

	for _, m := range g.Moods {
		p.addMood(strings.ToLower(m), w)
	}
	for _, genre := range g.Genres {
		p.addGenre(strings.ToLower(genre), w)
	}
}

// MoodWeight returns the accumulated weight for a mood tag (0 if absent).
func (p *Profile) MoodWeight(mood string) float64 {
	return p.moodWeights[strings.ToLower(mood)]
}

// GenreWeight returns the accumulated weight for a genre tag (0 if absent).
func (p *Profile) GenreWeight(genre string) float64 {
	return p.genreWeights[strings.ToLower(genre)]
}

// MoodWeights returns a copy of the mood weight table.
func (p *Profile) MoodWeights() map[string]float64 {
	return copyMap(p.moodWeights)
}

// GenreWeights returns a copy of the genre weight table.
func (p *Profile) GenreWeights() map[string]float64 {
	return copyMap(p.genreWeights)
}

// TopMoods returns up to 6 mood tags by accumulated weight descending,
// ties broken by first-encountered order.
func (p *Profile) TopMoods() []string {
	return topOf(p.moodWeights, p.moodOrder)
}

// TopGenres returns up to 6 genre tags by accumulated weight descending,
// ties broken by first-encountered order.
func (p *Profile) TopGenres() []string {
	return topOf(p.genreWeights, p.genreOrder)
}

// Empty reports whether no history has been folded in.
func (p *Profile) Empty() bool {
	return len(p.moodWeights) == 0 && len(p.genreWeights) == 0
}

// Reset discards all accumulated weights.
func (p *Profile) Reset() {
	p.moodWeights = make(map[string]float64)
	p.genreWeights = make(map[string]float64)
	p.moodOrder = nil
	p.genreOrder = nil
}

// Snapshot is the serializable form of a profile.
type Snapshot struct {
	// MoodWeights is the accumulated mood weight table.
	MoodWeights map[string]float64 `json:"mood_weights"`

	// GenreWeights is the accumulated genre weight table.
	GenreWeights map[string]float64 `json:"genre_weights"`

	// MoodOrder preserves first-encountered mood order for tie-breaks.
	MoodOrder []string `json:"mood_order,omitempty"`

	// GenreOrder preserves first-encountered genre order for tie-breaks.
	GenreOrder []string `json:"genre_order,omitempty"`
}

// Snapshot returns a serializable copy of the profile.
func (p *Profile) Snapshot() Snapshot {
	return Snapshot{
		MoodWeights:  copyMap(p.moodWeights),
		GenreWeights: copyMap(p.genreWeights),
		MoodOrder:    append([]string(nil), p.moodOrder...),
		GenreOrder:   append([]string(nil), p.genreOrder...),
	}
}

// FromSnapshot reconstructs a profile from its serialized form.
func FromSnapshot(s Snapshot) *Profile {
	p := NewProfile()
	for _, m := range s.MoodOrder {
		p.addMood(m, s.MoodWeights[m])
	}
	for _, g := range s.GenreOrder {
		p.addGenre(g, s.GenreWeights[g])
	}
	// Entries not covered by the order slices (older snapshots) still load.
	for m, w := range s.MoodWeights {
		if _, ok := p.moodWeights[m]; !ok {
			p.addMood(m, w)
		}
	}
	for g, w := range s.GenreWeights {
		if _, ok := p.genreWeights[g]; !ok {
			p.addGenre(g, w)
		}
	}
	return p
}

func (p *Profile) addMood(mood string, w float64) {
	if _, ok := p.moodWeights[mood]; !ok {
		p.moodOrder = append(p.moodOrder, mood)
	}
	p.moodWeights[mood] += w
}

func (p *Profile) addGenre(genre string, w float64) {
	if _, ok := p.genreWeights[genre]; !ok {
		p.genreOrder = append(p.genreOrder, genre)
	}
	p.genreWeights[genre] += w
}

// topOf returns up to topKeys keys by weight descending, ties broken by
// the given first-encountered order.
func topOf(weights map[string]float64, order []string) []string {
	keys := append([]string(nil), order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return weights[keys[i]] > weights[keys[j]]
	})
	if len(keys) > topKeys {
		keys = keys[:topKeys]
	}
	return keys
}

func copyMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
