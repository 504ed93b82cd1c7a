// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

// Package metrics provides Prometheus instrumentation for the
// recommendation core: mood inference counts, weight adaptation,
// recommendation latency and result sizes, and profile store activity.
//
// Collectors are registered with the default registry via promauto at
// package load; exposing them over HTTP is the embedding application's
// concern.
package metrics
