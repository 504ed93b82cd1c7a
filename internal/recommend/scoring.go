// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package recommend

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/mood"
	"github.com/jonnym69-ai/gamepilot/internal/taste"
)

// indieGenre marks candidates eligible for the discovery boost.
const indieGenre = "indie"

// qualityScale normalizes catalog quality scores to [0, 1].
const qualityScale = 100.0

// reasonQualityFloor is the minimum quality worth calling out.
const reasonQualityFloor = 85.0

// scorePool scores every candidate in the pool.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) scorePool(pool []models.CandidateGame, req Request) []ScoredGame {
	scored := make([]ScoredGame, 0, len(pool))
	for _, c := range pool {
		moods := e.tables.DeriveMoods(c.Genres)
		scored = append(scored, ScoredGame{
			Game:  c,
			Score: e.scoreCandidate(c, moods, req),
			Moods: moods,
		})
	}
	return scored
}

// scoreCandidate combines the mood, taste, quality and discovery
// components into a single score.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) scoreCandidate(c models.CandidateGame, moods []mood.Mood, req Request) float64 {
	s := &e.config.Scoring
	score := 0.0

	// Explicit mood match, scaled by intensity. A secondary-only match
	// earns a reduced fraction of the mood weight.
	if req.SelectedMood != "" {
		switch {
		case moodsContain(moods, req.SelectedMood):
			score += s.MoodWeight * req.Intensity
		case req.SecondaryMood != "" && moodsContain(moods, req.SecondaryMood):
			score += s.MoodWeight * s.SecondaryMoodFactor * req.Intensity
		}
	}

	// Taste overlap, normalized and capped so heavy libraries cannot
	// drown out the mood signal.
	if req.Profile != nil && !req.Profile.Empty() {
		moodOverlap := 0.0
		for _, m := range moods {
			moodOverlap += req.Profile.MoodWeight(string(m))
		}
		score += math.Min(s.TasteMoodCap, moodOverlap/s.OverlapNormalizer)

		genreOverlap := 0.0
		for _, g := range c.Genres {
			genreOverlap += req.Profile.GenreWeight(g)
		}
		score += math.Min(s.TasteGenreCap, genreOverlap/s.OverlapNormalizer)
	}

	// Quality signal.
	score += s.QualityWeight * (c.QualityScore / qualityScale)

	// Discovery boost for indies; bigger when the title is still under
	// the gem ceiling.
	if c.HasGenre(indieGenre) {
		if c.QualityScore < s.GemQualityCeiling {
			score += s.GemBoost
		} else {
			score += s.IndieBoost
		}
	}

	return score
}

// sortScored ranks by score descending, breaking ties by ID for
// deterministic ordering.
func sortScored(scored []ScoredGame) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Game.ID < scored[j].Game.ID
	})
}

// filterCategory applies the optional category pre-filter.
func (e *Engine) filterCategory(pool []models.CandidateGame, cat Category) []models.CandidateGame {
	cfg := &e.config.Categories
	switch cat {
	case CategoryTopRated:
		out := sortByQuality(pool)
		if len(out) > cfg.TopRatedLimit {
			out = out[:cfg.TopRatedLimit]
		}
		return out
	case CategoryUnderrated:
		out := make([]models.CandidateGame, 0, len(pool))
		for _, c := range pool {
			if c.QualityScore >= cfg.UnderratedQualityFloor && c.PopularityScore <= cfg.UnderratedPopularityCeiling {
				out = append(out, c)
			}
		}
		out = sortByQuality(out)
		if len(out) > cfg.UnderratedLimit {
			out = out[:cfg.UnderratedLimit]
		}
		return out
	case CategoryHiddenGems:
		out := make([]models.CandidateGame, 0, len(pool))
		for _, c := range pool {
			if c.PopularityScore <= cfg.HiddenGemsPopularityCeiling {
				out = append(out, c)
			}
		}
		out = sortByQuality(out)
		if len(out) > cfg.HiddenGemsLimit {
			out = out[:cfg.HiddenGemsLimit]
		}
		return out
	default:
		return pool
	}
}

// capPool truncates oversized pools by quality rank.
func (e *Engine) capPool(pool []models.CandidateGame) []models.CandidateGame {
	if len(pool) <= e.config.Limits.MaxCandidates {
		return pool
	}
	return sortByQuality(pool)[:e.config.Limits.MaxCandidates]
}

// sortByQuality returns a copy sorted by quality descending, ties by ID.
func sortByQuality(pool []models.CandidateGame) []models.CandidateGame {
	out := make([]models.CandidateGame, len(pool))
	copy(out, pool)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].QualityScore != out[j].QualityScore {
			return out[i].QualityScore > out[j].QualityScore
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// explorationRate maps a time budget to its exploration rate.
func (e *Engine) explorationRate(budget TimeBudget) float64 {
	switch budget {
	case BudgetShort:
		return e.config.Exploration.ShortRate
	case BudgetLong:
		return e.config.Exploration.LongRate
	default:
		return e.config.Exploration.MediumRate
	}
}

// mix assembles the final list: top-ranked exploitation picks plus
// exploration picks sampled from below the exploitation pool. Returns
// the mixed list and how many slots were filled by sampling.
func (e *Engine) mix(scored []ScoredGame, budget TimeBudget, rng *rand.Rand) ([]ScoredGame, int) {
	target := e.config.Limits.TargetSize
	if len(scored) <= target {
		out := make([]ScoredGame, len(scored))
		copy(out, scored)
		return out, 0
	}

	explore := int(math.Round(float64(target) * e.explorationRate(budget)))
	explore = int(math.Max(float64(explore), float64(e.config.Exploration.MinPicks)))
	explore = int(math.Min(float64(explore), float64(target)))
	exploit := target - explore

	poolSize := int(math.Min(float64(e.config.Exploration.PoolSize), float64(len(scored))))
	exploit = int(math.Min(float64(exploit), float64(poolSize)))

	out := make([]ScoredGame, 0, target)
	out = append(out, scored[:exploit]...)

	sampled := sampleRanked(scored[poolSize:], explore, rng)
	for i := range sampled {
		sampled[i].Exploration = true
	}
	out = append(out, sampled...)

	// Backfill from the remaining ranked pool when the tail ran short.
	if len(out) < target {
		picked := make(map[string]struct{}, len(out))
		for _, s := range out {
			picked[s.Game.ID] = struct{}{}
		}
		for _, s := range scored {
			if len(out) >= target {
				break
			}
			if _, ok := picked[s.Game.ID]; ok {
				continue
			}
			out = append(out, s)
		}
	}

	return out, len(sampled)
}

// sampleRanked draws n items from the pool without replacement,
// preserving rank order among the picks.
func sampleRanked(pool []ScoredGame, n int, rng *rand.Rand) []ScoredGame {
	if n > len(pool) {
		n = len(pool)
	}
	if n == 0 {
		return nil
	}

	idx := rng.Perm(len(pool))[:n]
	sort.Ints(idx)

	out := make([]ScoredGame, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

// dedupeTitles keeps the first occurrence of each title,
// case-insensitively.
func dedupeTitles(items []ScoredGame) []ScoredGame {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, s := range items {
		key := strings.ToLower(s.Game.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// filterSelectedMood keeps only mood-matching items, but never filters
// the list down to nothing: with zero matches the list passes through.
func filterSelectedMood(items []ScoredGame, selected mood.Mood) []ScoredGame {
	if selected == "" {
		return items
	}

	matches := 0
	for _, s := range items {
		if moodsContain(s.Moods, selected) {
			matches++
		}
	}
	if matches == 0 {
		return items
	}

	out := items[:0]
	for _, s := range items {
		if moodsContain(s.Moods, selected) {
			out = append(out, s)
		}
	}
	return out
}

// attachReasons fills in up to two explanations per item, highest
// priority first: mood match, taste overlap, quality, discovery.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) attachReasons(items []ScoredGame, req Request) {
	const maxReasons = 2

	for i := range items {
		s := &items[i]
		reasons := make([]string, 0, maxReasons)

		if req.SelectedMood != "" && moodsContain(s.Moods, req.SelectedMood) {
			reasons = append(reasons, fmt.Sprintf("matches your %s mood", req.SelectedMood))
		} else if req.SecondaryMood != "" && moodsContain(s.Moods, req.SecondaryMood) {
			reasons = append(reasons, fmt.Sprintf("fits your %s side", req.SecondaryMood))
		}

		if g := bestGenreOverlap(s.Game, req.Profile); g != "" {
			reasons = append(reasons, fmt.Sprintf("you play a lot of %s", g))
		}

		if s.Game.QualityScore >= reasonQualityFloor {
			reasons = append(reasons, fmt.Sprintf("highly rated (%.0f/100)", s.Game.QualityScore))
		}

		if s.Game.HasGenre(indieGenre) {
			if s.Game.QualityScore < e.config.Scoring.GemQualityCeiling {
				reasons = append(reasons, "hidden gem worth a look")
			} else {
				reasons = append(reasons, "standout indie pick")
			}
		}

		if len(reasons) > maxReasons {
			reasons = reasons[:maxReasons]
		}
		s.Reasons = reasons
	}
}

// bestGenreOverlap returns the candidate genre with the highest taste
// weight, or empty when there is no overlap.
func bestGenreOverlap(c models.CandidateGame, profile *taste.Profile) string {
	if profile == nil || profile.Empty() {
		return ""
	}

	best, bestWeight := "", 0.0
	for _, g := range c.Genres {
		if w := profile.GenreWeight(g); w > bestWeight {
			best, bestWeight = strings.ToLower(g), w
		}
	}
	return best
}

// moodsContain reports whether the derived mood list contains m.
func moodsContain(moods []mood.Mood, m mood.Mood) bool {
	for _, x := range moods {
		if x == m {
			return true
		}
	}
	return false
}
