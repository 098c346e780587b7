// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package detail

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// discardAction names what happens when the user agrees to throw away
// unsaved edits in the currently shown DiscardChangesPrompt.
type discardAction int

const (
	discardNone discardAction = iota

	// discardToCreateNew switches to create-new mode (CreateClick path).
	discardToCreateNew

	// discardReload reloads the selected record's fields from upstream and
	// leaves edit mode (ExitEditClick path).
	discardReload

	// discardDeselect clears the selection (Deselect path).
	discardDeselect
)

// Coordinator owns the observable detail-view state. All reads-then-writes
// of that state — upstream reconciliation, user commands, and persistence
// phase reports — happen under one non-reentrant lock, held only for the
// span of a single read-modify-publish step.
type Coordinator struct {
	ctx    context.Context
	engine SyncEngine
	cell   *StateCell
	log    *logger.Logger

	// mu is the serialization lock. No blocking or long-latency call may be
	// made while holding it; persistence work runs in detached goroutines
	// that re-acquire it at each phase boundary.
	mu sync.Mutex

	// upstream is the last received snapshot set. Replaced wholesale.
	upstream models.SnapshotSet

	// selected is the ClientSideID of the shown record, or "" for none.
	// "" combined with a published ViewingContact means create-new mode.
	selected string

	// initialLoad is true until the first upstream emission. Consumed once.
	initialLoad bool

	// pendingDiscard is the continuation armed when a DiscardChangesPrompt
	// is shown, executed by ConfirmDiscard.
	pendingDiscard discardAction

	// opBusy gates acceptance of persistence operations. It is deliberately
	// a separate atomic, checked without mu, so acceptance never waits on
	// state mutation; all effects of acceptance are still published under mu.
	opBusy atomic.Bool

	// fatal forwards terminal persistence failures to the layer above.
	fatal chan error
}

// NewCoordinator builds a coordinator over the given sync engine. The
// published state starts as NoSelection pending the first upstream emission.
// Call Run to start consuming the snapshot stream.
func NewCoordinator(ctx context.Context, engine SyncEngine, log *logger.Logger) *Coordinator {
	return &Coordinator{
		ctx:         ctx,
		engine:      engine,
		cell:        NewStateCell(models.NoSelection{}),
		log:         log,
		upstream:    models.SnapshotSet{},
		initialLoad: true,
		fatal:       make(chan error, 1),
	}
}

// State returns the cell the presentation layer reads and subscribes to.
func (c *Coordinator) State() *StateCell {
	return c.cell
}

// Errors returns the channel on which terminal persistence failures are
// forwarded. The coordinator's responsibility ends at "busy flag cleared,
// error forwarded"; the receiver decides how to present or abort.
func (c *Coordinator) Errors() <-chan error {
	return c.fatal
}

// Selected returns the ClientSideID of the record currently shown, or
// ok=false when nothing is selected (including create-new mode).
func (c *Coordinator) Selected() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.selected != ""
}

// Run consumes the engine's snapshot stream until ctx is cancelled or the
// stream is closed. It blocks and is intended to run on its own goroutine.
func (c *Coordinator) Run(ctx context.Context) {
	snapshots := c.engine.Snapshots()
	for {
		select {
		case <-ctx.Done():
			return
		case set, ok := <-snapshots:
			if !ok {
				return
			}
			c.reconcile(set)
		}
	}
}

// hasUnsavedChanges reports whether leaving the current view would lose
// user input. Caller must hold mu.
//
// Create-new mode counts as dirty even with every slot empty: there is no
// upstream baseline for a record that was never persisted. A form that
// fails validation also counts as dirty.
func (c *Coordinator) hasUnsavedChanges() bool {
	state, ok := c.cell.Current().(models.ViewingContact)
	if !ok {
		return false
	}

	if c.selected == "" {
		return true
	}

	edited, err := contactFromForm(state.Form)
	if err != nil {
		return true
	}

	snap, ok := c.upstream[c.selected]
	if !ok {
		return true
	}
	return !edited.Equal(snap.Record.Contact)
}

// viewSnapshot builds a fresh ViewingContact from an upstream snapshot.
// Caller must hold mu.
func (c *Coordinator) viewSnapshot(snap models.ContactSnapshot, editing bool, dialog models.Dialog) models.ViewingContact {
	return models.ViewingContact{
		Form:            formFromContact(snap.Record.Contact),
		SyncState:       displayState(snap),
		Editing:         editing,
		OperationActive: c.opBusy.Load(),
		Dialog:          dialog,
	}
}

// withOperationActive returns a copy of state with the busy flag replaced
// and everything else preserved.
func withOperationActive(state models.UIState, active bool) models.UIState {
	switch s := state.(type) {
	case models.ViewingContact:
		s.OperationActive = active
		return s
	case models.NoSelection:
		s.OperationActive = active
		return s
	default:
		return state
	}
}

// withDialog returns a copy of state with the dialog slot replaced and
// everything else preserved.
func withDialog(state models.UIState, dialog models.Dialog) models.UIState {
	switch s := state.(type) {
	case models.ViewingContact:
		s.Dialog = dialog
		return s
	case models.NoSelection:
		s.Dialog = dialog
		return s
	default:
		return state
	}
}
