// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OperationKind identifies which persistence entry point an operation was
// dispatched to.
type OperationKind int

const (
	OpCreate OperationKind = iota
	OpUpdate
	OpDelete
	OpUndelete
)

func (k OperationKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpUndelete:
		return "undelete"
	default:
		return "unknown"
	}
}

// OperationPhase is one step of the three-step lifecycle every dispatched
// persistence operation passes through: Started, then (on success) Succeeded
// with the resulting record, then Finished carrying the terminal error if
// the operation failed.
type OperationPhase int

const (
	PhaseStarted OperationPhase = iota
	PhaseSucceeded
	PhaseFinished
)

func (p OperationPhase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// OperationEvent is one progress report from a running persistence
// operation. The event stream for an operation is always Started, then
// Succeeded (only when the operation succeeded; Record may be nil for a
// deletion that purged the record), then Finished (Err set on failure),
// after which the stream is closed.
type OperationEvent struct {
	Kind   OperationKind
	Phase  OperationPhase
	Record *ContactRecord
	Err    error
}
