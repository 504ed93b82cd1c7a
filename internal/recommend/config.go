// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package recommend

import "fmt"

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Scoring contains the score component weights.
	Scoring ScoringConfig `json:"scoring" koanf:"scoring"`

	// Exploration contains the exploration/exploitation mix parameters.
	Exploration ExplorationConfig `json:"exploration" koanf:"exploration"`

	// Categories contains the category pre-filter thresholds.
	Categories CategoryConfig `json:"categories" koanf:"categories"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Seed is the random seed for deterministic behavior.
	// If zero, a fixed default seed is used.
	Seed int64 `json:"seed" koanf:"seed"`
}

// ScoringConfig contains the score component weights. The mood, taste
// and quality components are combined additively; caps bound the taste
// contributions so no single affinity dominates.
type ScoringConfig struct {
	// MoodWeight is the explicit-mood match contribution.
	// Default: 0.55.
	MoodWeight float64 `json:"mood_weight" koanf:"mood_weight"`

	// SecondaryMoodFactor is the fraction of MoodWeight credited when
	// only the secondary mood matches. Default: 0.35.
	SecondaryMoodFactor float64 `json:"secondary_mood_factor" koanf:"secondary_mood_factor"`

	// TasteMoodCap bounds the taste-profile mood overlap contribution.
	// Default: 0.25.
	TasteMoodCap float64 `json:"taste_mood_cap" koanf:"taste_mood_cap"`

	// TasteGenreCap bounds the taste-profile genre overlap contribution.
	// Default: 0.20.
	TasteGenreCap float64 `json:"taste_genre_cap" koanf:"taste_genre_cap"`

	// OverlapNormalizer divides raw taste overlap sums before capping.
	// Default: 25.
	OverlapNormalizer float64 `json:"overlap_normalizer" koanf:"overlap_normalizer"`

	// QualityWeight is the contribution of the quality score (0-100).
	// Default: 0.20.
	QualityWeight float64 `json:"quality_weight" koanf:"quality_weight"`

	// GemBoost is the bonus for indie titles under GemQualityCeiling.
	// Default: 0.08.
	GemBoost float64 `json:"gem_boost" koanf:"gem_boost"`

	// IndieBoost is the bonus for indie titles at or above the ceiling.
	// Default: 0.04.
	IndieBoost float64 `json:"indie_boost" koanf:"indie_boost"`

	// GemQualityCeiling separates hidden gems from established indies.
	// Default: 90.
	GemQualityCeiling float64 `json:"gem_quality_ceiling" koanf:"gem_quality_ceiling"`
}

// ExplorationConfig contains the exploration/exploitation mix parameters.
type ExplorationConfig struct {
	// ShortRate is the exploration rate for short time budgets.
	// Default: 0.35.
	ShortRate float64 `json:"short_rate" koanf:"short_rate"`

	// MediumRate is the exploration rate for medium time budgets.
	// Default: 0.42.
	MediumRate float64 `json:"medium_rate" koanf:"medium_rate"`

	// LongRate is the exploration rate for long time budgets.
	// Default: 0.50.
	LongRate float64 `json:"long_rate" koanf:"long_rate"`

	// MinPicks is the minimum number of exploration slots.
	// Default: 2.
	MinPicks int `json:"min_picks" koanf:"min_picks"`

	// PoolSize is how many top-ranked candidates form the
	// exploitation pool; exploration samples from the remainder.
	// Default: 25.
	PoolSize int `json:"pool_size" koanf:"pool_size"`
}

// CategoryConfig contains the category pre-filter thresholds.
type CategoryConfig struct {
	// TopRatedLimit caps the top_rated pool by quality rank.
	// Default: 20.
	TopRatedLimit int `json:"top_rated_limit" koanf:"top_rated_limit"`

	// UnderratedQualityFloor is the minimum quality for underrated.
	// Default: 85.
	UnderratedQualityFloor float64 `json:"underrated_quality_floor" koanf:"underrated_quality_floor"`

	// UnderratedPopularityCeiling is the maximum popularity for
	// underrated. Default: 40.
	UnderratedPopularityCeiling float64 `json:"underrated_popularity_ceiling" koanf:"underrated_popularity_ceiling"`

	// UnderratedLimit caps the underrated pool by quality rank.
	// Default: 15.
	UnderratedLimit int `json:"underrated_limit" koanf:"underrated_limit"`

	// HiddenGemsPopularityCeiling is the maximum popularity for
	// hidden_gems. Default: 30.
	HiddenGemsPopularityCeiling float64 `json:"hidden_gems_popularity_ceiling" koanf:"hidden_gems_popularity_ceiling"`

	// HiddenGemsLimit caps the hidden_gems pool by quality rank.
	// Default: 15.
	HiddenGemsLimit int `json:"hidden_gems_limit" koanf:"hidden_gems_limit"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// TargetSize is the number of recommendations to return.
	// Default: 10.
	TargetSize int `json:"target_size" koanf:"target_size"`

	// MaxCandidates caps the candidate pool size after filtering.
	// Default: 1000.
	MaxCandidates int `json:"max_candidates" koanf:"max_candidates"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			MoodWeight:          0.55,
			SecondaryMoodFactor: 0.35,
			TasteMoodCap:        0.25,
			TasteGenreCap:       0.20,
			OverlapNormalizer:   25.0,
			QualityWeight:       0.20,
			GemBoost:            0.08,
			IndieBoost:          0.04,
			GemQualityCeiling:   90.0,
		},
		Exploration: ExplorationConfig{
			ShortRate:  0.35,
			MediumRate: 0.42,
			LongRate:   0.50,
			MinPicks:   2,
			PoolSize:   25,
		},
		Categories: CategoryConfig{
			TopRatedLimit:               20,
			UnderratedQualityFloor:      85.0,
			UnderratedPopularityCeiling: 40.0,
			UnderratedLimit:             15,
			HiddenGemsPopularityCeiling: 30.0,
			HiddenGemsLimit:             15,
		},
		Limits: LimitsConfig{
			TargetSize:    10,
			MaxCandidates: 1000,
		},
		Seed: 42, // Default seed for determinism
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Scoring.MoodWeight < 0 || c.Scoring.MoodWeight > 1 {
		return fmt.Errorf("scoring.mood_weight must be in [0, 1], got %f", c.Scoring.MoodWeight)
	}
	if c.Scoring.SecondaryMoodFactor < 0 || c.Scoring.SecondaryMoodFactor > 1 {
		return fmt.Errorf("scoring.secondary_mood_factor must be in [0, 1], got %f", c.Scoring.SecondaryMoodFactor)
	}
	if c.Scoring.TasteMoodCap < 0 {
		return fmt.Errorf("scoring.taste_mood_cap must be non-negative, got %f", c.Scoring.TasteMoodCap)
	}
	if c.Scoring.TasteGenreCap < 0 {
		return fmt.Errorf("scoring.taste_genre_cap must be non-negative, got %f", c.Scoring.TasteGenreCap)
	}
	if c.Scoring.OverlapNormalizer <= 0 {
		return fmt.Errorf("scoring.overlap_normalizer must be positive, got %f", c.Scoring.OverlapNormalizer)
	}
	if c.Scoring.QualityWeight < 0 || c.Scoring.QualityWeight > 1 {
		return fmt.Errorf("scoring.quality_weight must be in [0, 1], got %f", c.Scoring.QualityWeight)
	}

	for name, rate := range map[string]float64{
		"exploration.short_rate":  c.Exploration.ShortRate,
		"exploration.medium_rate": c.Exploration.MediumRate,
		"exploration.long_rate":   c.Exploration.LongRate,
	} {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %f", name, rate)
		}
	}
	if c.Exploration.MinPicks < 0 {
		return fmt.Errorf("exploration.min_picks must be non-negative, got %d", c.Exploration.MinPicks)
	}
	if c.Exploration.PoolSize < 1 {
		return fmt.Errorf("exploration.pool_size must be positive, got %d", c.Exploration.PoolSize)
	}

	if c.Categories.TopRatedLimit < 1 {
		return fmt.Errorf("categories.top_rated_limit must be positive, got %d", c.Categories.TopRatedLimit)
	}
	if c.Categories.UnderratedLimit < 1 {
		return fmt.Errorf("categories.underrated_limit must be positive, got %d", c.Categories.UnderratedLimit)
	}
	if c.Categories.HiddenGemsLimit < 1 {
		return fmt.Errorf("categories.hidden_gems_limit must be positive, got %d", c.Categories.HiddenGemsLimit)
	}

	if c.Limits.TargetSize < 1 {
		return fmt.Errorf("limits.target_size must be positive, got %d", c.Limits.TargetSize)
	}
	if c.Limits.MaxCandidates < c.Limits.TargetSize {
		return fmt.Errorf("limits.max_candidates must be >= limits.target_size, got %d < %d",
			c.Limits.MaxCandidates, c.Limits.TargetSize)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	return &Config{
		Scoring:     c.Scoring,
		Exploration: c.Exploration,
		Categories:  c.Categories,
		Limits:      c.Limits,
		Seed:        c.Seed,
	}
}
