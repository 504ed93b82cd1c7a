// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

// Package persona synthesizes a longer-lived play-style profile from a
// user's library and session history.
//
// Synthesis is a two-stage pure computation: BuildSignals aggregates raw
// ownership and session records into intermediate Signals (genre affinity,
// completion rate, session pattern, playtime distribution, multiplayer
// ratio), and BuildTraits derives the six bounded trait scores from them.
// Both stages are total: empty history produces defined defaults rather
// than errors.
package persona
