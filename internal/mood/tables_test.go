// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package mood

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	t.Run("every mood has a full coefficient vector", func(t *testing.T) {
		for _, m := range All {
			coeffs, ok := tables.Coefficients[m]
			if !ok {
				t.Fatalf("mood %s has no coefficients", m)
			}
			for _, f := range Features {
				if _, ok := coeffs[f]; !ok {
					t.Errorf("mood %s missing coefficient for %s", m, f)
				}
			}
		}
	})

	t.Run("default weights sum to 1", func(t *testing.T) {
		var sum float64
		for _, w := range DefaultWeights() {
			sum += w
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("weights sum = %f, want 1", sum)
		}
	})

	t.Run("genre map targets valid moods", func(t *testing.T) {
		for genre, moods := range tables.GenreMoods {
			for _, m := range moods {
				if !m.Valid() {
					t.Errorf("genre %q maps to invalid mood %q", genre, m)
				}
			}
		}
	})

	t.Run("combination rules are in unit range", func(t *testing.T) {
		for _, r := range tables.Combinations {
			if r.Compatibility < 0 || r.Compatibility > 1 {
				t.Errorf("rule %s+%s compatibility = %f, want in [0, 1]", r.Primary, r.Secondary, r.Compatibility)
			}
		}
	})
}

func TestTables_DeriveMoods(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name   string
		genres []string
		want   []Mood
	}{
		{
			name:   "overlapping genres de-duplicate",
			genres: []string{"rpg", "indie", "rpg"},
			want:   []Mood{Curious, Focused},
		},
		{
			name:   "case insensitive lookup",
			genres: []string{"RPG", "Shooter"},
			want:   []Mood{Curious, Focused, Competitive},
		},
		{
			name:   "unknown genres contribute nothing",
			genres: []string{"visual novel", "walking sim"},
			want:   []Mood{},
		},
		{
			name:   "empty input",
			genres: nil,
			want:   []Mood{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.DeriveMoods(tt.genres)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeriveMoods(%v) = %v, want %v", tt.genres, got, tt.want)
			}
		})
	}
}

func TestTables_ValidateCombination(t *testing.T) {
	tables := DefaultTables()

	t.Run("known pair returns its compatibility", func(t *testing.T) {
		rule, err := tables.ValidateCombination(Calm, Focused)
		if err != nil {
			t.Fatalf("ValidateCombination() error = %v", err)
		}
		if rule.Compatibility != 0.9 {
			t.Errorf("compatibility = %f, want 0.9", rule.Compatibility)
		}
	})

	t.Run("lookup is symmetric", func(t *testing.T) {
		a, err := tables.ValidateCombination(Competitive, Social)
		if err != nil {
			t.Fatalf("ValidateCombination() error = %v", err)
		}
		b, err := tables.ValidateCombination(Social, Competitive)
		if err != nil {
			t.Fatalf("ValidateCombination() error = %v", err)
		}
		if a.Compatibility != b.Compatibility {
			t.Errorf("asymmetric compatibility: %f vs %f", a.Compatibility, b.Compatibility)
		}
	})

	t.Run("unlisted pair gets zero compatibility without error", func(t *testing.T) {
		rule, err := tables.ValidateCombination(Curious, Curious)
		if err != nil {
			t.Fatalf("ValidateCombination() error = %v", err)
		}
		if rule.Compatibility != 0 {
			t.Errorf("compatibility = %f, want 0", rule.Compatibility)
		}
	})

	t.Run("invalid mood is rejected", func(t *testing.T) {
		if _, err := tables.ValidateCombination("angry", Calm); !errors.Is(err, ErrInvalidMood) {
			t.Errorf("error = %v, want ErrInvalidMood", err)
		}
	})
}

func TestTables_SuggestCombinations(t *testing.T) {
	tables := DefaultTables()

	t.Run("sorted by compatibility descending", func(t *testing.T) {
		rules, err := tables.SuggestCombinations(Calm)
		if err != nil {
			t.Fatalf("SuggestCombinations() error = %v", err)
		}
		if len(rules) == 0 {
			t.Fatal("expected at least one rule for calm")
		}
		for i := 1; i < len(rules); i++ {
			if rules[i].Compatibility > rules[i-1].Compatibility {
				t.Errorf("rules not sorted at index %d: %f > %f", i, rules[i].Compatibility, rules[i-1].Compatibility)
			}
		}
		for _, r := range rules {
			if r.Primary != Calm {
				t.Errorf("rule primary = %s, want %s", r.Primary, Calm)
			}
		}
	})

	t.Run("invalid mood is rejected", func(t *testing.T) {
		if _, err := tables.SuggestCombinations("angry"); !errors.Is(err, ErrInvalidMood) {
			t.Errorf("error = %v, want ErrInvalidMood", err)
		}
	})
}
