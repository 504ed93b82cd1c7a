// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

// Package models defines the domain records exchanged with external
// collaborators: platform adapters (owned games, play sessions, behavioral
// counters) and the catalog candidate source.
//
// The types are plain tagged structs with explicit optional fields. The
// engine packages pattern-match on them directly instead of probing dynamic
// shapes at runtime, and every absent field has a defined neutral default.
package models
