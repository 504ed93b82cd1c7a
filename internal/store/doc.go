// GamePilot - Gaming Library Mood & Persona Recommendation Engine
// Copyright 2026 jonnym69-ai
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jonnym69-ai/gamepilot

// Package store persists per-user engine state in BadgerDB.
//
// Two kinds of state survive restarts: the adaptive mood weight table
// and the taste profile snapshot. Both are stored as JSON values under
// user-scoped key prefixes, so deleting a user is a bounded prefix
// operation.
package store
