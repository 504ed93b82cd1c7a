// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

// Package recommend implements the mood-aware game recommendation engine.
//
// # Architecture
//
// The engine scores a candidate pool against the user's taste profile and
// an optional explicit mood selection, then mixes the ranked list with a
// small number of exploration picks:
//
//   - Mood Matching: explicit mood against genre-derived mood tags
//   - Taste Overlap: accumulated mood and genre affinity weights
//   - Quality Signal: normalized catalog quality score
//   - Discovery Boost: small bonus for indie and hidden-gem titles
//
// # Design Principles
//
//   - Stateless: each request carries the full library and candidate pool
//   - Deterministic: seeded RNG makes exploration sampling reproducible
//   - Auditable: every request is logged with structured fields
//   - Observable: request counts and latencies exposed as metrics
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	engine, err := recommend.NewEngine(cfg, mood.DefaultTables(), logger)
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Candidates:   catalog,
//	    Owned:        library,
//	    Profile:      profile,
//	    SelectedMood: mood.Calm,
//	    TimeBudget:   recommend.BudgetMedium,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. Scoring is pure; only the shared
// random source is guarded by a mutex.
package recommend
