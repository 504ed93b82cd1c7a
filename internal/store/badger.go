// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/jonnym69-ai/gamepilot/internal/metrics"
	"github.com/jonnym69-ai/gamepilot/internal/mood"
	"github.com/jonnym69-ai/gamepilot/internal/taste"
)

// Key prefixes for BadgerDB storage
const (
	weightsKeyPrefix = "weights:"
	tasteKeyPrefix   = "taste:"
)

// ErrNotFound is returned when no state exists for a user.
var ErrNotFound = errors.New("store: not found")

// ProfileStore persists mood weight tables and taste profile snapshots
// in BadgerDB. It is safe for concurrent use; Badger provides
// transactional isolation.
type ProfileStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens a BadgerDB at the given path and wraps it in a
// ProfileStore. The caller owns Close.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(path string, logger zerolog.Logger) (*ProfileStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return NewProfileStore(db, logger), nil
}

// OpenInMemory opens an ephemeral in-memory store, used in tests.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OpenInMemory(logger zerolog.Logger) (*ProfileStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger: %w", err)
	}
	return NewProfileStore(db, logger), nil
}

// NewProfileStore wraps an already-open BadgerDB.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProfileStore(db *badger.DB, logger zerolog.Logger) *ProfileStore {
	return &ProfileStore{
		db:     db,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// Close closes the underlying database.
func (s *ProfileStore) Close() error {
	return s.db.Close()
}

// SaveWeights persists a user's adaptive mood weight table.
func (s *ProfileStore) SaveWeights(_ context.Context, userID string, weights mood.WeightTable) error {
	data, err := json.Marshal(weights)
	if err != nil {
		metrics.StoreOperations.WithLabelValues("save_weights", "error").Inc()
		return fmt.Errorf("marshal weights: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(weightsKeyPrefix+userID), data)
	})
	if err != nil {
		metrics.StoreOperations.WithLabelValues("save_weights", "error").Inc()
		return fmt.Errorf("save weights for %s: %w", userID, err)
	}

	metrics.StoreOperations.WithLabelValues("save_weights", "ok").Inc()
	s.logger.Debug().Str("user_id", userID).Msg("saved weight table")
	return nil
}

// LoadWeights retrieves a user's mood weight table.
// Returns ErrNotFound when the user has no saved weights.
func (s *ProfileStore) LoadWeights(_ context.Context, userID string) (mood.WeightTable, error) {
	var weights mood.WeightTable

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(weightsKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get weights: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &weights)
		})
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, ErrNotFound) {
			outcome = "miss"
		}
		metrics.StoreOperations.WithLabelValues("load_weights", outcome).Inc()
		return nil, err
	}

	metrics.StoreOperations.WithLabelValues("load_weights", "ok").Inc()
	return weights, nil
}

// SaveTaste persists a snapshot of a user's taste profile.
func (s *ProfileStore) SaveTaste(_ context.Context, userID string, profile *taste.Profile) error {
	snap := profile.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		metrics.StoreOperations.WithLabelValues("save_taste", "error").Inc()
		return fmt.Errorf("marshal taste snapshot: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(tasteKeyPrefix+userID), data)
	})
	if err != nil {
		metrics.StoreOperations.WithLabelValues("save_taste", "error").Inc()
		return fmt.Errorf("save taste for %s: %w", userID, err)
	}

	metrics.StoreOperations.WithLabelValues("save_taste", "ok").Inc()
	s.logger.Debug().Str("user_id", userID).Msg("saved taste profile")
	return nil
}

// LoadTaste retrieves a user's taste profile.
// Returns ErrNotFound when the user has no saved profile.
func (s *ProfileStore) LoadTaste(_ context.Context, userID string) (*taste.Profile, error) {
	var snap taste.Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tasteKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get taste: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, ErrNotFound) {
			outcome = "miss"
		}
		metrics.StoreOperations.WithLabelValues("load_taste", outcome).Inc()
		return nil, err
	}

	metrics.StoreOperations.WithLabelValues("load_taste", "ok").Inc()
	return taste.FromSnapshot(snap), nil
}

// DeleteUser removes all persisted state for a user. Deleting a user
// with no state is not an error.
func (s *ProfileStore) DeleteUser(_ context.Context, userID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{weightsKeyPrefix + userID, tasteKeyPrefix + userID} {
			if err := txn.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		metrics.StoreOperations.WithLabelValues("delete_user", "error").Inc()
		return err
	}

	metrics.StoreOperations.WithLabelValues("delete_user", "ok").Inc()
	s.logger.Debug().Str("user_id", userID).Msg("deleted user state")
	return nil
}

// ListUsers returns the IDs of all users with saved weight tables.
func (s *ProfileStore) ListUsers(_ context.Context) ([]string, error) {
	var users []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(weightsKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			users = append(users, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
