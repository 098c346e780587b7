// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package detail implements the detail-view state coordinator: the single
// owner of the observable UI state for viewing, editing, creating, and
// deleting one contact at a time.
//
// Three concurrent producers feed the coordinator: the sync engine's
// snapshot stream, user commands from the presentation layer, and phase
// reports from dispatched persistence operations. All of them are serialized
// through one internal lock before touching the published state, so readers
// always observe a consistent, totally ordered sequence of states.
package detail
