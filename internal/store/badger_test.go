// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package store

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/mood"
	"github.com/jonnym69-ai/gamepilot/internal/taste"
)

func newTestStore(t *testing.T) *ProfileStore {
	t.Helper()
	s, err := OpenInMemory(zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func TestProfileStore_Weights(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("missing user returns not found", func(t *testing.T) {
		if _, err := s.LoadWeights(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("LoadWeights() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		weights := mood.DefaultTables().Weights.Clone()
		if err := s.SaveWeights(ctx, "alice", weights); err != nil {
			t.Fatalf("SaveWeights() error = %v", err)
		}

		got, err := s.LoadWeights(ctx, "alice")
		if err != nil {
			t.Fatalf("LoadWeights() error = %v", err)
		}
		if len(got) != len(weights) {
			t.Fatalf("loaded %d moods, want %d", len(got), len(weights))
		}
		for m, w := range weights {
			if math.Abs(got[m]-w) > 1e-9 {
				t.Errorf("weight[%s] = %f, want %f", m, got[m], w)
			}
		}
	})

	t.Run("overwrite replaces previous", func(t *testing.T) {
		adjusted := mood.DefaultTables().Weights.Clone()
		adjusted[mood.FocusStability] = 0.4
		weights, err := adjusted.Normalize()
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if err := s.SaveWeights(ctx, "alice", weights); err != nil {
			t.Fatalf("SaveWeights() error = %v", err)
		}

		got, err := s.LoadWeights(ctx, "alice")
		if err != nil {
			t.Fatalf("LoadWeights() error = %v", err)
		}
		if math.Abs(got[mood.FocusStability]-weights[mood.FocusStability]) > 1e-9 {
			t.Errorf("weight[focus_stability] = %f, want %f", got[mood.FocusStability], weights[mood.FocusStability])
		}
	})
}

func TestProfileStore_Taste(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("missing user returns not found", func(t *testing.T) {
		if _, err := s.LoadTaste(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("LoadTaste() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("round trip preserves weights and ordering", func(t *testing.T) {
		profile := taste.Build([]models.OwnedGame{
			{ID: "1", Title: "Dungeon", Genres: []string{"rpg"}, Moods: []string{"curious"}, HoursPlayed: 30},
			{ID: "2", Title: "Circuit", Genres: []string{"racing"}, Moods: []string{"competitive"}, HoursPlayed: 5},
		})

		if err := s.SaveTaste(ctx, "bob", profile); err != nil {
			t.Fatalf("SaveTaste() error = %v", err)
		}

		got, err := s.LoadTaste(ctx, "bob")
		if err != nil {
			t.Fatalf("LoadTaste() error = %v", err)
		}

		if w := got.GenreWeight("rpg"); math.Abs(w-profile.GenreWeight("rpg")) > 1e-9 {
			t.Errorf("GenreWeight(rpg) = %f, want %f", w, profile.GenreWeight("rpg"))
		}
		if w := got.MoodWeight("curious"); math.Abs(w-profile.MoodWeight("curious")) > 1e-9 {
			t.Errorf("MoodWeight(curious) = %f, want %f", w, profile.MoodWeight("curious"))
		}
		if !reflect.DeepEqual(got.TopGenres(), profile.TopGenres()) {
			t.Errorf("TopGenres = %v, want %v", got.TopGenres(), profile.TopGenres())
		}
	})
}

func TestProfileStore_DeleteUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("removes both keys", func(t *testing.T) {
		if err := s.SaveWeights(ctx, "carol", mood.DefaultTables().Weights.Clone()); err != nil {
			t.Fatalf("SaveWeights() error = %v", err)
		}
		profile := taste.Build([]models.OwnedGame{
			{ID: "1", Title: "Farm", Genres: []string{"simulation"}, HoursPlayed: 10},
		})
		if err := s.SaveTaste(ctx, "carol", profile); err != nil {
			t.Fatalf("SaveTaste() error = %v", err)
		}

		if err := s.DeleteUser(ctx, "carol"); err != nil {
			t.Fatalf("DeleteUser() error = %v", err)
		}

		if _, err := s.LoadWeights(ctx, "carol"); !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadWeights() after delete = %v, want ErrNotFound", err)
		}
		if _, err := s.LoadTaste(ctx, "carol"); !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadTaste() after delete = %v, want ErrNotFound", err)
		}
	})

	t.Run("absent user is not an error", func(t *testing.T) {
		if err := s.DeleteUser(ctx, "ghost"); err != nil {
			t.Fatalf("DeleteUser() error = %v", err)
		}
	})
}

func TestProfileStore_ListUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		users, err := s.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers() error = %v", err)
		}
		if len(users) != 0 {
			t.Errorf("users = %v, want none", users)
		}
	})

	t.Run("lists users with saved weights", func(t *testing.T) {
		for _, id := range []string{"alice", "bob"} {
			if err := s.SaveWeights(ctx, id, mood.DefaultTables().Weights.Clone()); err != nil {
				t.Fatalf("SaveWeights(%s) error = %v", id, err)
			}
		}
		// Taste-only users are not listed.
		profile := taste.Build([]models.OwnedGame{
			{ID: "1", Title: "Farm", Genres: []string{"simulation"}},
		})
		if err := s.SaveTaste(ctx, "carol", profile); err != nil {
			t.Fatalf("SaveTaste() error = %v", err)
		}

		users, err := s.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers() error = %v", err)
		}
		if !reflect.DeepEqual(users, []string{"alice", "bob"}) {
			t.Errorf("users = %v, want [alice bob]", users)
		}
	})
}
