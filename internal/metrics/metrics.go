// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MoodInferences counts mood inference passes by dominant mood.
	MoodInferences = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_mood_inferences_total",
			Help: "Total number of mood inference passes",
		},
		[]string{"dominant"},
	)

	// WeightAdjustments counts weight-table feedback adjustments.
	WeightAdjustments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_weight_adjustments_total",
			Help: "Total number of weight table adjustments",
		},
		[]string{"direction"}, // "reinforce" or "decay"
	)

	// RecommendationDuration observes end-to-end scoring latency.
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gamepilot_recommendation_duration_seconds",
			Help:    "Duration of recommendation scoring passes in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	// RecommendationRequests counts scoring requests by category filter.
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"category"},
	)

	// RecommendationResults observes how many items each pass returned.
	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gamepilot_recommendation_results",
			Help:    "Number of items returned per recommendation pass",
			Buckets: []float64{0, 1, 2, 4, 6, 8, 10, 15, 20},
		},
	)

	// PersonaBuilds counts persona signal/trait synthesis passes.
	PersonaBuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamepilot_persona_builds_total",
			Help: "Total number of persona synthesis passes",
		},
	)

	// StoreOperations counts profile store operations by kind and outcome.
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_store_operations_total",
			Help: "Total number of profile store operations",
		},
		[]string{"operation", "outcome"},
	)
)
