// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonnym69-ai/gamepilot/internal/metrics"
	"github.com/jonnym69-ai/gamepilot/internal/models"
	"github.com/jonnym69-ai/gamepilot/internal/mood"
	"github.com/jonnym69-ai/gamepilot/internal/validation"
)

// Engine scores candidate games against a taste profile and an optional
// explicit mood selection. It is safe for concurrent use: scoring is
// pure, and the shared random source is guarded by a mutex.
type Engine struct {
	config *Config
	tables *mood.Tables
	logger zerolog.Logger

	// Random source for exploration sampling and final shuffle
	// (protected by rngMu for concurrent access).
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, tables *mood.Tables, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if tables == nil {
		tables = mood.DefaultTables()
	}

	// Use provided seed or default for determinism
	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	return &Engine{
		config: cfg,
		tables: tables,
		logger: logger.With().Str("component", "recommend").Logger(),
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for recommendation shuffling
	}, nil
}

// Recommend generates recommendations from the request's candidate pool.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(_ context.Context, req Request) (*Response, error) {
	start := time.Now()
	metrics.RecommendationRequests.WithLabelValues(categoryLabel(req.Category)).Inc()

	// Mood checks run first so callers get the domain sentinel rather
	// than a generic tag failure.
	if err := e.validateMoods(req); err != nil {
		return nil, err
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fmt.Errorf("invalid request: %w", verr)
	}

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)
	logger.Debug().Int("candidates", len(req.Candidates)).Msg("processing recommendation request")

	// Ownership exclusion, category pre-filter, pool cap
	pool := e.excludeOwned(req.Candidates, req.Owned)
	pool = e.filterCategory(pool, req.Category)
	pool = e.capPool(pool)

	if len(pool) == 0 {
		logger.Debug().Msg("no candidates after filtering")
		return e.emptyResponse(req, start), nil
	}

	// Score every candidate and rank deterministically
	scored := e.scorePool(pool, req)
	sortScored(scored)

	// Mix exploitation and exploration, then post-process
	rng, release := e.requestRNG(req.Seed)
	mixed, explorationCount := e.mix(scored, req.TimeBudget, rng)
	mixed = dedupeTitles(mixed)
	mixed = filterSelectedMood(mixed, req.SelectedMood)
	e.attachReasons(mixed, req)
	rng.Shuffle(len(mixed), func(i, j int) {
		mixed[i], mixed[j] = mixed[j], mixed[i]
	})
	release()

	resp := &Response{
		Items:           mixed,
		TotalCandidates: len(pool),
		Metadata: ResponseMetadata{
			RequestID:        req.RequestID,
			UserID:           req.UserID,
			Mood:             req.SelectedMood,
			Category:         req.Category,
			ExplorationCount: explorationCount,
			LatencyMS:        time.Since(start).Milliseconds(),
			Timestamp:        time.Now().UTC(),
		},
	}

	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendationResults.Observe(float64(len(mixed)))

	logger.Debug().
		Int("pool", len(pool)).
		Int("returned", len(mixed)).
		Int("exploration", explorationCount).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.TimeBudget == "" {
		req.TimeBudget = BudgetMedium
	}
	if req.Intensity == 0 {
		req.Intensity = 1.0
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", req.UserID).
		Str("mood", string(req.SelectedMood)).
		Str("budget", string(req.TimeBudget)).
		Logger()
}

// validateMoods checks the explicit mood selection against the fixed
// mood set and the combination table.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) validateMoods(req Request) error {
	if req.SelectedMood != "" && !req.SelectedMood.Valid() {
		return fmt.Errorf("selected mood %q: %w", req.SelectedMood, mood.ErrInvalidMood)
	}
	if req.SecondaryMood == "" {
		return nil
	}
	if req.SelectedMood == "" {
		return fmt.Errorf("secondary mood %q without a primary: %w", req.SecondaryMood, mood.ErrInvalidMood)
	}
	if _, err := e.tables.ValidateCombination(req.SelectedMood, req.SecondaryMood); err != nil {
		return fmt.Errorf("mood combination: %w", err)
	}
	return nil
}

// excludeOwned removes candidates the user already owns, matched by ID
// or by case-insensitive title.
func (e *Engine) excludeOwned(candidates []models.CandidateGame, owned []models.OwnedGame) []models.CandidateGame {
	if len(owned) == 0 {
		out := make([]models.CandidateGame, len(candidates))
		copy(out, candidates)
		return out
	}

	ownedIDs := make(map[string]struct{}, len(owned))
	ownedTitles := make(map[string]struct{}, len(owned))
	for _, g := range owned {
		if g.ID != "" {
			ownedIDs[g.ID] = struct{}{}
		}
		ownedTitles[strings.ToLower(g.Title)] = struct{}{}
	}

	out := make([]models.CandidateGame, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := ownedIDs[c.ID]; ok {
			continue
		}
		if _, ok := ownedTitles[strings.ToLower(c.Title)]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// requestRNG returns the random source for one request. A non-zero
// per-request seed gets a private source so identical requests produce
// identical output regardless of engine history; otherwise the shared
// seeded source is locked for the duration of the mixing phase.
func (e *Engine) requestRNG(seed int64) (rng *rand.Rand, release func()) {
	if seed != 0 {
		return rand.New(rand.NewSource(seed)), func() {} //nolint:gosec // deterministic sampling only
	}
	e.rngMu.Lock()
	return e.rng, e.rngMu.Unlock
}

// emptyResponse builds a response with no items.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) emptyResponse(req Request, start time.Time) *Response {
	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendationResults.Observe(0)
	return &Response{
		Items: []ScoredGame{},
		Metadata: ResponseMetadata{
			RequestID: req.RequestID,
			UserID:    req.UserID,
			Mood:      req.SelectedMood,
			Category:  req.Category,
			LatencyMS: time.Since(start).Milliseconds(),
			Timestamp: time.Now().UTC(),
		},
	}
}

// categoryLabel returns the metrics label for a category filter.
func categoryLabel(c Category) string {
	if c == CategoryNone {
		return "none"
	}
	return string(c)
}
