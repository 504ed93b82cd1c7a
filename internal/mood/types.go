// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

package mood

import "errors"

// Mood identifies one of the fixed emotional/engagement categories.
type Mood string

const (
	// Calm favors low-stimulation, low-volatility play.
	Calm Mood = "calm"
	// Competitive favors challenge-seeking and versus play.
	Competitive Mood = "competitive"
	// Curious favors exploration and novelty.
	Curious Mood = "curious"
	// Social favors multiplayer and cooperative play.
	Social Mood = "social"
	// Focused favors long uninterrupted sessions on a single title.
	Focused Mood = "focused"
)

// All lists every mood in stable order.
var All = []Mood{Calm, Competitive, Curious, Social, Focused}

// Valid reports whether m is one of the fixed mood identifiers.
func (m Mood) Valid() bool {
	switch m {
	case Calm, Competitive, Curious, Social, Focused:
		return true
	default:
		return false
	}
}

// ErrInvalidMood signals a mood identifier outside the fixed set.
var ErrInvalidMood = errors.New("invalid mood identifier")

// ErrDegenerateWeights signals a weight table that cannot be renormalized
// because every weight is zero. The safe recovery is DefaultWeights().
var ErrDegenerateWeights = errors.New("degenerate weight table: all weights are zero")

// Feature identifies one normalized behavioral feature.
type Feature string

const (
	// EngagementVolatility measures session-length irregularity (-1..1).
	EngagementVolatility Feature = "engagement_volatility"
	// ChallengeSeeking measures preference for difficult content (-1..1).
	ChallengeSeeking Feature = "challenge_seeking"
	// SocialOpenness measures multiplayer and social activity (-1..1).
	SocialOpenness Feature = "social_openness"
	// ExplorationBias measures genre switching and novelty seeking (-1..1).
	ExplorationBias Feature = "exploration_bias"
	// FocusStability measures sustained single-title engagement (-1..1).
	FocusStability Feature = "focus_stability"
)

// Features lists every feature in stable order.
var Features = []Feature{
	EngagementVolatility,
	ChallengeSeeking,
	SocialOpenness,
	ExplorationBias,
	FocusStability,
}

// FeatureVector holds one normalized value per behavioral feature.
// Values are clamped to [-1, 1]. Immutable once produced.
type FeatureVector map[Feature]float64

// Vector holds one score per mood, each in [0, 1].
// Inference returns a fresh Vector per call; vectors are never mutated
// in place.
type Vector map[Mood]float64

// WeightTable maps features to weights in [0, 1]. A table in circulation
// always sums to 1; AdjustWeights renormalizes after every change.
type WeightTable map[Feature]float64

// InferenceResult is the outcome of one mood inference pass.
type InferenceResult struct {
	// Vector is the full per-mood score map.
	Vector Vector `json:"vector"`

	// Confidence estimates how trustworthy the inference is (0-1).
	Confidence float64 `json:"confidence"`

	// Dominant is the highest-scoring mood.
	Dominant Mood `json:"dominant"`

	// Secondary is the runner-up mood, present only when its score
	// exceeds the significance threshold.
	Secondary *Mood `json:"secondary,omitempty"`

	// SecondaryConfidence is the runner-up score when Secondary is set.
	SecondaryConfidence float64 `json:"secondary_confidence,omitempty"`
}

// Feedback carries an externally observed prediction-correctness signal
// used to adapt a weight table.
type Feedback struct {
	// Predicted is the mood the engine predicted.
	Predicted Mood `json:"predicted"`

	// Actual is the mood the caller observed.
	Actual Mood `json:"actual"`

	// Confidence is the confidence attached to the prediction (0-1).
	Confidence float64 `json:"confidence"`
}

// IssueSeverity distinguishes hard invalidity from advisory warnings.
type IssueSeverity string

const (
	// SeverityError marks hard invalidity (out-of-range scores).
	SeverityError IssueSeverity = "error"
	// SeverityWarning marks advisory findings (weak signal).
	SeverityWarning IssueSeverity = "warning"
)

// Issue is a single finding from vector validation.
type Issue struct {
	// Severity classifies the finding.
	Severity IssueSeverity `json:"severity"`

	// Mood is the affected mood, empty for vector-wide findings.
	Mood Mood `json:"mood,omitempty"`

	// Message describes the finding.
	Message string `json:"message"`
}

// Validation is the result of validating a mood vector. Warnings do not
// make the vector invalid; callers decide whether to act on them.
type Validation struct {
	// Valid is false only when at least one error-severity issue exists.
	Valid bool `json:"valid"`

	// Issues lists all findings in detection order.
	Issues []Issue `json:"issues,omitempty"`
}

// CombinationRule records the compatibility of a primary/secondary mood
// pair for hybrid mood selections. Compatibility is in [0, 1].
type CombinationRule struct {
	// Primary is the leading mood of the pair.
	Primary Mood `json:"primary"`

	// Secondary is the supporting mood of the pair.
	Secondary Mood `json:"secondary"`

	// Compatibility scores how well the pair combines (0-1).
	Compatibility float64 `json:"compatibility"`
}
