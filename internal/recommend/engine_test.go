// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/mood"
	"github.com/jonnym69-ai/gamepilot/internal/taste"
)

func newTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, mood.DefaultTables(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

// makeCatalog builds n candidates with unique IDs and titles, cycling
// through a fixed set of genre tags so every mood is represented.
func makeCatalog(n int) []models.CandidateGame {
	genres := [][]string{
		{"shooter"},
		{"simulation"},
		{"rpg", "indie"},
		{"mmo"},
		{"puzzle"},
	}
	out := make([]models.CandidateGame, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.CandidateGame{
			ID:              fmt.Sprintf("game-%03d", i),
			Title:           fmt.Sprintf("Game %03d", i),
			Genres:          genres[i%len(genres)],
			QualityScore:    float64(50 + i%50),
			PopularityScore: float64(i % 100),
		})
	}
	return out
}

func itemIDs(items []ScoredGame) []string {
	ids := make([]string, 0, len(items))
	for _, s := range items {
		ids = append(ids, s.Game.ID)
	}
	return ids
}

func TestNewEngine(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		e, err := NewEngine(nil, nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine(nil, nil) error = %v", err)
		}
		if e.config.Limits.TargetSize != 10 {
			t.Errorf("TargetSize = %d, want default 10", e.config.Limits.TargetSize)
		}
		if e.tables == nil {
			t.Error("tables not defaulted")
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Limits.TargetSize = 0
		if _, err := NewEngine(cfg, nil, zerolog.Nop()); err == nil {
			t.Fatal("NewEngine() = nil error, want invalid config error")
		}
	})
}

func TestEngine_Recommend_Validation(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "unknown selected mood",
			req:  Request{SelectedMood: "angry", Candidates: makeCatalog(5)},
		},
		{
			name: "secondary without primary",
			req:  Request{SecondaryMood: mood.Focused, Candidates: makeCatalog(5)},
		},
		{
			name: "intensity above one",
			req:  Request{Intensity: 1.5, Candidates: makeCatalog(5)},
		},
		{
			name: "negative intensity",
			req:  Request{Intensity: -0.2, Candidates: makeCatalog(5)},
		},
		{
			name: "unknown time budget",
			req:  Request{TimeBudget: "forever", Candidates: makeCatalog(5)},
		},
		{
			name: "unknown category",
			req:  Request{Category: "best_ever", Candidates: makeCatalog(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Recommend(ctx, tt.req); err == nil {
				t.Fatal("Recommend() = nil error, want validation error")
			}
		})
	}

	t.Run("invalid mood wraps sentinel", func(t *testing.T) {
		_, err := e.Recommend(ctx, Request{SelectedMood: "angry"})
		if !errors.Is(err, mood.ErrInvalidMood) {
			t.Fatalf("Recommend() error = %v, want ErrInvalidMood", err)
		}
	})
}

func TestEngine_Recommend_EmptyPool(t *testing.T) {
	e := newTestEngine(t, nil)

	resp, err := e.Recommend(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("Items = %d, want 0", len(resp.Items))
	}
	if resp.Metadata.RequestID == "" {
		t.Error("RequestID not generated")
	}
	if resp.Metadata.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", resp.Metadata.UserID, "u1")
	}
}

func TestEngine_Recommend_ExcludesOwned(t *testing.T) {
	e := newTestEngine(t, nil)
	catalog := makeCatalog(8)

	owned := []models.OwnedGame{
		{ID: "game-002", Title: "Game 002"},
		{Title: "GAME 005"}, // title-only match, different case
	}

	resp, err := e.Recommend(context.Background(), Request{
		Candidates: catalog,
		Owned:      owned,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	for _, s := range resp.Items {
		if s.Game.ID == "game-002" {
			t.Error("owned game-002 present in results")
		}
		if strings.EqualFold(s.Game.Title, "Game 005") {
			t.Error("owned title Game 005 present in results")
		}
	}
	if resp.TotalCandidates != 6 {
		t.Errorf("TotalCandidates = %d, want 6", resp.TotalCandidates)
	}
}

func TestEngine_Recommend_DedupesTitles(t *testing.T) {
	e := newTestEngine(t, nil)
	catalog := []models.CandidateGame{
		{ID: "a", Title: "Starfall", Genres: []string{"rpg"}, QualityScore: 90},
		{ID: "b", Title: "STARFALL", Genres: []string{"rpg"}, QualityScore: 80},
		{ID: "c", Title: "Moonrise", Genres: []string{"puzzle"}, QualityScore: 70},
	}

	resp, err := e.Recommend(context.Background(), Request{Candidates: catalog})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	seen := make(map[string]int)
	for _, s := range resp.Items {
		seen[strings.ToLower(s.Game.Title)]++
	}
	if seen["starfall"] != 1 {
		t.Errorf("starfall appears %d times, want 1", seen["starfall"])
	}
	if seen["moonrise"] != 1 {
		t.Errorf("moonrise appears %d times, want 1", seen["moonrise"])
	}
}

func TestEngine_Recommend_Deterministic(t *testing.T) {
	e := newTestEngine(t, nil)
	catalog := makeCatalog(40)

	req := Request{
		Candidates: catalog,
		TimeBudget: BudgetMedium,
		Seed:       99,
	}

	first, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	second, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if !reflect.DeepEqual(itemIDs(first.Items), itemIDs(second.Items)) {
		t.Errorf("seeded requests diverged:\n first = %v\nsecond = %v",
			itemIDs(first.Items), itemIDs(second.Items))
	}
}

func TestEngine_Recommend_TargetSize(t *testing.T) {
	e := newTestEngine(t, nil)

	t.Run("large pool fills target", func(t *testing.T) {
		resp, err := e.Recommend(context.Background(), Request{
			Candidates: makeCatalog(60),
			Seed:       7,
		})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(resp.Items) != 10 {
			t.Errorf("Items = %d, want 10", len(resp.Items))
		}
	})

	t.Run("small pool returns all", func(t *testing.T) {
		resp, err := e.Recommend(context.Background(), Request{
			Candidates: makeCatalog(4),
			Seed:       7,
		})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(resp.Items) != 4 {
			t.Errorf("Items = %d, want 4", len(resp.Items))
		}
		if resp.Metadata.ExplorationCount != 0 {
			t.Errorf("ExplorationCount = %d, want 0 for small pool", resp.Metadata.ExplorationCount)
		}
	})
}

func TestEngine_Recommend_ExplorationPicks(t *testing.T) {
	e := newTestEngine(t, nil)

	// Pool large enough for a tail beyond the exploitation pool.
	resp, err := e.Recommend(context.Background(), Request{
		Candidates: makeCatalog(40),
		TimeBudget: BudgetMedium,
		Seed:       3,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	flagged := 0
	for _, s := range resp.Items {
		if s.Exploration {
			flagged++
		}
	}

	// Medium budget: round(10 * 0.42) = 4 exploration slots.
	if resp.Metadata.ExplorationCount != 4 {
		t.Errorf("ExplorationCount = %d, want 4", resp.Metadata.ExplorationCount)
	}
	if flagged != resp.Metadata.ExplorationCount {
		t.Errorf("flagged items = %d, metadata reports %d", flagged, resp.Metadata.ExplorationCount)
	}
}

func TestEngine_Recommend_MoodFilter(t *testing.T) {
	e := newTestEngine(t, nil)

	t.Run("keeps matches", func(t *testing.T) {
		catalog := []models.CandidateGame{
			{ID: "s1", Title: "Arena One", Genres: []string{"shooter"}, QualityScore: 80},
			{ID: "s2", Title: "Arena Two", Genres: []string{"fighting"}, QualityScore: 75},
			{ID: "c1", Title: "Garden", Genres: []string{"simulation"}, QualityScore: 95},
			{ID: "c2", Title: "Pond", Genres: []string{"casual"}, QualityScore: 90},
		}

		resp, err := e.Recommend(context.Background(), Request{
			Candidates:   catalog,
			SelectedMood: mood.Competitive,
		})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(resp.Items) != 2 {
			t.Fatalf("Items = %d, want 2 competitive matches", len(resp.Items))
		}
		for _, s := range resp.Items {
			if !moodsContain(s.Moods, mood.Competitive) {
				t.Errorf("item %s does not match competitive", s.Game.ID)
			}
		}
	})

	t.Run("passes through on zero matches", func(t *testing.T) {
		catalog := []models.CandidateGame{
			{ID: "c1", Title: "Garden", Genres: []string{"simulation"}, QualityScore: 95},
			{ID: "c2", Title: "Pond", Genres: []string{"casual"}, QualityScore: 90},
		}

		resp, err := e.Recommend(context.Background(), Request{
			Candidates:   catalog,
			SelectedMood: mood.Social,
		})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(resp.Items) != 2 {
			t.Errorf("Items = %d, want 2 (filter must not empty the list)", len(resp.Items))
		}
	})
}

func TestEngine_Recommend_Reasons(t *testing.T) {
	e := newTestEngine(t, nil)

	profile := taste.Build([]models.OwnedGame{
		{ID: "lib-1", Title: "Quest", Genres: []string{"rpg"}, HoursPlayed: 120},
	})

	catalog := []models.CandidateGame{
		{ID: "r1", Title: "New Quest", Genres: []string{"rpg", "indie"}, QualityScore: 88},
	}

	resp, err := e.Recommend(context.Background(), Request{
		Candidates:   catalog,
		Profile:      profile,
		SelectedMood: mood.Curious,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(resp.Items))
	}

	reasons := resp.Items[0].Reasons
	if len(reasons) != 2 {
		t.Fatalf("Reasons = %v, want exactly 2 entries", reasons)
	}
	if !strings.Contains(reasons[0], "curious") {
		t.Errorf("Reasons[0] = %q, want mood match first", reasons[0])
	}
	if !strings.Contains(reasons[1], "rpg") {
		t.Errorf("Reasons[1] = %q, want taste overlap second", reasons[1])
	}
}

func TestEngine_Recommend_CategoryFilter(t *testing.T) {
	e := newTestEngine(t, nil)
	catalog := makeCatalog(60)

	resp, err := e.Recommend(context.Background(), Request{
		Candidates: catalog,
		Category:   CategoryTopRated,
		Seed:       11,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.TotalCandidates != 20 {
		t.Errorf("TotalCandidates = %d, want top_rated limit 20", resp.TotalCandidates)
	}
	if resp.Metadata.Category != CategoryTopRated {
		t.Errorf("Metadata.Category = %q, want %q", resp.Metadata.Category, CategoryTopRated)
	}
}

func TestEngine_Recommend_NilProfile(t *testing.T) {
	e := newTestEngine(t, nil)

	resp, err := e.Recommend(context.Background(), Request{
		Candidates:   makeCatalog(15),
		SelectedMood: mood.Calm,
		Seed:         5,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("no items returned without a taste profile")
	}
}

func TestEngine_Recommend_MoodCombination(t *testing.T) {
	e := newTestEngine(t, nil)

	t.Run("valid pairing accepted", func(t *testing.T) {
		_, err := e.Recommend(context.Background(), Request{
			Candidates:    makeCatalog(10),
			SelectedMood:  mood.Calm,
			SecondaryMood: mood.Focused,
		})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
	})

	t.Run("metadata echoes mood", func(t *testing.T) {
		resp, err := e.Recommend(context.Background(), Request{
			Candidates:   makeCatalog(10),
			SelectedMood: mood.Calm,
		})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if resp.Metadata.Mood != mood.Calm {
			t.Errorf("Metadata.Mood = %q, want %q", resp.Metadata.Mood, mood.Calm)
		}
	})
}
