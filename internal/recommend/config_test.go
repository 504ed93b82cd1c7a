// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package recommend

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("is valid", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
		}
	})

	t.Run("scoring defaults", func(t *testing.T) {
		if cfg.Scoring.MoodWeight != 0.55 {
			t.Errorf("MoodWeight = %f, want 0.55", cfg.Scoring.MoodWeight)
		}
		if cfg.Scoring.SecondaryMoodFactor != 0.35 {
			t.Errorf("SecondaryMoodFactor = %f, want 0.35", cfg.Scoring.SecondaryMoodFactor)
		}
		if cfg.Scoring.QualityWeight != 0.20 {
			t.Errorf("QualityWeight = %f, want 0.20", cfg.Scoring.QualityWeight)
		}
	})

	t.Run("limits defaults", func(t *testing.T) {
		if cfg.Limits.TargetSize != 10 {
			t.Errorf("TargetSize = %d, want 10", cfg.Limits.TargetSize)
		}
		if cfg.Limits.MaxCandidates != 1000 {
			t.Errorf("MaxCandidates = %d, want 1000", cfg.Limits.MaxCandidates)
		}
	})

	t.Run("deterministic seed", func(t *testing.T) {
		if cfg.Seed != 42 {
			t.Errorf("Seed = %d, want 42", cfg.Seed)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	validConfig := func() *Config {
		return DefaultConfig()
	}

	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:   "valid default",
			modify: func(*Config) {},
		},
		{
			name:      "mood weight negative",
			modify:    func(c *Config) { c.Scoring.MoodWeight = -0.1 },
			wantError: "scoring.mood_weight",
		},
		{
			name:      "mood weight above one",
			modify:    func(c *Config) { c.Scoring.MoodWeight = 1.5 },
			wantError: "scoring.mood_weight",
		},
		{
			name:      "secondary mood factor above one",
			modify:    func(c *Config) { c.Scoring.SecondaryMoodFactor = 2 },
			wantError: "scoring.secondary_mood_factor",
		},
		{
			name:      "taste mood cap negative",
			modify:    func(c *Config) { c.Scoring.TasteMoodCap = -1 },
			wantError: "scoring.taste_mood_cap",
		},
		{
			name:      "taste genre cap negative",
			modify:    func(c *Config) { c.Scoring.TasteGenreCap = -0.5 },
			wantError: "scoring.taste_genre_cap",
		},
		{
			name:      "overlap normalizer zero",
			modify:    func(c *Config) { c.Scoring.OverlapNormalizer = 0 },
			wantError: "scoring.overlap_normalizer",
		},
		{
			name:      "quality weight above one",
			modify:    func(c *Config) { c.Scoring.QualityWeight = 1.1 },
			wantError: "scoring.quality_weight",
		},
		{
			name:      "short rate above one",
			modify:    func(c *Config) { c.Exploration.ShortRate = 1.2 },
			wantError: "exploration.short_rate",
		},
		{
			name:      "medium rate negative",
			modify:    func(c *Config) { c.Exploration.MediumRate = -0.1 },
			wantError: "exploration.medium_rate",
		},
		{
			name:      "long rate above one",
			modify:    func(c *Config) { c.Exploration.LongRate = 1.01 },
			wantError: "exploration.long_rate",
		},
		{
			name:      "min picks negative",
			modify:    func(c *Config) { c.Exploration.MinPicks = -1 },
			wantError: "exploration.min_picks",
		},
		{
			name:      "pool size zero",
			modify:    func(c *Config) { c.Exploration.PoolSize = 0 },
			wantError: "exploration.pool_size",
		},
		{
			name:      "top rated limit zero",
			modify:    func(c *Config) { c.Categories.TopRatedLimit = 0 },
			wantError: "categories.top_rated_limit",
		},
		{
			name:      "underrated limit zero",
			modify:    func(c *Config) { c.Categories.UnderratedLimit = 0 },
			wantError: "categories.underrated_limit",
		},
		{
			name:      "hidden gems limit zero",
			modify:    func(c *Config) { c.Categories.HiddenGemsLimit = 0 },
			wantError: "categories.hidden_gems_limit",
		},
		{
			name:      "target size zero",
			modify:    func(c *Config) { c.Limits.TargetSize = 0 },
			wantError: "limits.target_size",
		},
		{
			name:      "max candidates below target size",
			modify:    func(c *Config) { c.Limits.MaxCandidates = 5 },
			wantError: "limits.max_candidates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantError)
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Validate() = %q, want error containing %q", err, tt.wantError)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	original := DefaultConfig()
	clone := original.Clone()

	if *clone != *original {
		t.Fatal("Clone() differs from original")
	}

	clone.Scoring.MoodWeight = 0.9
	clone.Limits.TargetSize = 3
	if original.Scoring.MoodWeight != 0.55 {
		t.Error("modifying clone changed original scoring weights")
	}
	if original.Limits.TargetSize != 10 {
		t.Error("modifying clone changed original limits")
	}
}
