// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package mood

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jonnym69-ai/gamepilot/internal/metrics"
)

// secondaryThreshold is the minimum score a runner-up mood needs to be
// reported as secondary.
const secondaryThreshold = 0.3

// weakSignalThreshold flags vectors whose best score is too low to act on.
const weakSignalThreshold = 0.3

// Engine performs mood inference over normalized feature vectors.
//
// The engine holds only immutable configuration (tables, logger); the
// weight table is caller-owned state passed explicitly on every call, so
// independent sessions can hold independent tables concurrently.
type Engine struct {
	tables *Tables
	logger zerolog.Logger
}

// NewEngine creates a mood inference engine. A nil tables argument selects
// the built-in defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(tables *Tables, logger zerolog.Logger) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Engine{
		tables: tables,
		logger: logger.With().Str("component", "mood").Logger(),
	}
}

// Tables returns the engine's configuration tables.
func (e *Engine) Tables() *Tables {
	return e.tables
}

// Infer computes a fresh mood vector from a feature vector and a weight
// table. A nil weights argument selects the default table.
//
// For each mood the engine takes the weighted dot product of the features
// against that mood's coefficient vector and squashes the sum through a
// logistic function into [0, 1].
func (e *Engine) Infer(features FeatureVector, weights WeightTable) Vector {
	if weights == nil {
		weights = e.tables.Weights
	}

	v := make(Vector, len(All))
	for _, m := range All {
		coeffs := e.tables.Coefficients[m]

		var sum float64
		for _, f := range Features {
			sum += features[f] * coeffs[f] * weights[f]
		}

		v[m] = clamp01(logistic(sum))
	}

	return v
}

// InferResult runs inference and folds in confidence and dominant-mood
// extraction in one pass.
func (e *Engine) InferResult(features FeatureVector, weights WeightTable) InferenceResult {
	v := e.Infer(features, weights)
	res := e.Dominant(v)
	res.Confidence = e.Confidence(features, v)

	metrics.MoodInferences.WithLabelValues(string(res.Dominant)).Inc()

	e.logger.Debug().
		Str("dominant", string(res.Dominant)).
		Float64("confidence", res.Confidence).
		Msg("mood inferred")

	return res
}

// Confidence estimates how trustworthy an inference is, in [0, 1]:
// 0.4 x (max mood score) + 0.4 x (1 - ambiguity) + 0.2 x (feature
// consistency). Ambiguity is 1 minus the gap between the top two scores;
// consistency is 1 minus the variance of the feature values, clamped at 0.
func (e *Engine) Confidence(features FeatureVector, v Vector) float64 {
	if len(v) == 0 {
		return 0
	}

	top, second := topTwo(v)

	ambiguity := 1 - (top - second)
	consistency := 1 - featureVariance(features)
	if consistency < 0 {
		consistency = 0
	}

	return clamp01(0.4*top + 0.4*(1-ambiguity) + 0.2*consistency)
}

// Dominant extracts the dominant and secondary moods from a vector.
// The runner-up is reported only when its score exceeds 0.3.
func (e *Engine) Dominant(v Vector) InferenceResult {
	res := InferenceResult{Vector: v}
	if len(v) == 0 {
		return res
	}

	ordered := sortedMoods(v)
	res.Dominant = ordered[0]

	if len(ordered) > 1 {
		runnerUp := ordered[1]
		if v[runnerUp] > secondaryThreshold {
			res.Secondary = &runnerUp
			res.SecondaryConfidence = v[runnerUp]
		}
	}

	return res
}

// AdjustWeights applies a prediction-correctness feedback signal to a
// weight table and returns a new, renormalized table. The input table is
// not modified.
//
// On a correct prediction every weight grows by 0.1 x confidence (capped
// at 1); on a miss every weight shrinks by the same amount (floored at
// 0.1). This is a uniform reinforcement rule, not per-feature credit
// assignment.
//
// A table whose weights are all zero cannot be renormalized and returns
// ErrDegenerateWeights; callers recover with DefaultWeights().
func (e *Engine) AdjustWeights(weights WeightTable, fb Feedback) (WeightTable, error) {
	if !fb.Predicted.Valid() || !fb.Actual.Valid() {
		return nil, fmt.Errorf("adjust weights: %w", ErrInvalidMood)
	}
	if weights == nil {
		weights = DefaultWeights()
	}
	if allZero(weights) {
		return nil, ErrDegenerateWeights
	}

	delta := 0.1 * clamp01(fb.Confidence)
	correct := fb.Predicted == fb.Actual

	adjusted := make(WeightTable, len(Features))
	for _, f := range Features {
		w := weights[f]
		if correct {
			w += delta
			if w > 1 {
				w = 1
			}
		} else {
			w -= delta
			if w < 0.1 {
				w = 0.1
			}
		}
		adjusted[f] = w
	}

	normalized, err := adjusted.Normalize()
	if err != nil {
		return nil, err
	}

	direction := "reinforce"
	if !correct {
		direction = "decay"
	}
	metrics.WeightAdjustments.WithLabelValues(direction).Inc()

	e.logger.Debug().
		Bool("correct", correct).
		Float64("delta", delta).
		Msg("weight table adjusted")

	return normalized, nil
}

// ValidateVector checks a mood vector for out-of-range scores (hard
// invalidity) and weak overall signal (a warning, not an error).
func (e *Engine) ValidateVector(v Vector) Validation {
	res := Validation{Valid: true}

	maxScore := -1.0
	for _, m := range All {
		score, ok := v[m]
		if !ok {
			continue
		}
		if score < 0 || score > 1 || math.IsNaN(score) {
			res.Valid = false
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityError,
				Mood:     m,
				Message:  fmt.Sprintf("score %v outside [0, 1]", score),
			})
			continue
		}
		if score > maxScore {
			maxScore = score
		}
	}

	if maxScore >= 0 && maxScore < weakSignalThreshold {
		res.Issues = append(res.Issues, Issue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("weak signal: no mood scores above %.1f", weakSignalThreshold),
		})
	}

	return res
}

// Normalize returns a copy of the table scaled to sum to 1. An all-zero
// table returns ErrDegenerateWeights.
func (w WeightTable) Normalize() (WeightTable, error) {
	var sum float64
	for _, v := range w {
		sum += v
	}
	if sum == 0 {
		return nil, ErrDegenerateWeights
	}

	out := make(WeightTable, len(w))
	for f, v := range w {
		out[f] = v / sum
	}
	return out, nil
}

// Clone returns an independent copy of the table.
func (w WeightTable) Clone() WeightTable {
	out := make(WeightTable, len(w))
	for f, v := range w {
		out[f] = v
	}
	return out
}

// logistic squashes an unbounded sum into (0, 1).
func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// topTwo returns the two highest scores in a vector. The second value is
// 0 for single-entry vectors.
func topTwo(v Vector) (top, second float64) {
	for _, score := range v {
		switch {
		case score > top:
			second = top
			top = score
		case score > second:
			second = score
		}
	}
	return top, second
}

// sortedMoods returns the vector's moods ordered by score descending,
// ties broken by the stable mood order.
func sortedMoods(v Vector) []Mood {
	out := make([]Mood, 0, len(v))
	for _, m := range All {
		if _, ok := v[m]; ok {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return v[out[i]] > v[out[j]]
	})
	return out
}

// featureVariance computes the population variance of the feature values.
func featureVariance(features FeatureVector) float64 {
	if len(features) == 0 {
		return 0
	}

	var mean float64
	for _, f := range Features {
		mean += features[f]
	}
	mean /= float64(len(Features))

	var variance float64
	for _, f := range Features {
		d := features[f] - mean
		variance += d * d
	}
	return variance / float64(len(Features))
}

// allZero reports whether every weight in the table is zero.
func allZero(w WeightTable) bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}
	return true
}
