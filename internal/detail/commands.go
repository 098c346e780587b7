// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package detail

import (
	"github.com/MKhiriev/go-contact-keeper/models"
)

// Select changes the detail view to the given contact. An empty id with
// editing=true enters create-new mode; an empty id with editing=false
// clears the selection.
//
// Fails with ErrOperationBlocked while a persistence operation is in flight
// or before the first upstream emission, with ErrUnsavedChanges when the
// switch would lose edits, and with ErrContactNotFound when the id is not
// present upstream.
func (c *Coordinator) Select(clientSideID string, editing bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectLocked(clientSideID, editing, false)
}

// DiscardAndSelect behaves like Select but always throws unsaved edits
// away. It can only fail with ErrOperationBlocked or ErrContactNotFound.
func (c *Coordinator) DiscardAndSelect(clientSideID string, editing bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectLocked(clientSideID, editing, true)
}

func (c *Coordinator) selectLocked(clientSideID string, editing, force bool) error {
	if c.opBusy.Load() || c.initialLoad {
		return ErrOperationBlocked
	}
	if !force && c.hasUnsavedChanges() {
		return ErrUnsavedChanges
	}

	if clientSideID == "" {
		if editing {
			c.enterCreateNew(nil)
			return nil
		}
		c.selected = ""
		c.cell.publish(models.NoSelection{OperationActive: c.opBusy.Load()})
		return nil
	}

	snap, ok := c.upstream[clientSideID]
	if !ok {
		c.log.Error().
			Str("client_side_id", clientSideID).
			Msg("select target missing from upstream set")
		return ErrContactNotFound
	}

	c.selected = clientSideID
	c.pendingDiscard = discardNone
	c.cell.publish(c.viewSnapshot(snap, editing, nil))
	return nil
}

// enterCreateNew clears the selection and publishes an empty editable form.
// Caller must hold mu. The dialog slot carries over so a caller that just
// dismissed a prompt can hand nil explicitly.
func (c *Coordinator) enterCreateNew(dialog models.Dialog) {
	c.selected = ""
	c.cell.publish(models.ViewingContact{
		Form:            models.ContactForm{},
		SyncState:       models.DisplayNotSaved,
		Editing:         true,
		OperationActive: c.opBusy.Load(),
		Dialog:          dialog,
	})
}

// CreateClick starts composing a new contact. With unsaved edits present it
// shows a DiscardChangesPrompt first; confirming the prompt lands in
// create-new mode, keeping it only dismisses the dialog.
func (c *Coordinator) CreateClick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasUnsavedChanges() {
		c.enterCreateNew(nil)
		return
	}

	c.pendingDiscard = discardToCreateNew
	c.cell.publish(withDialog(c.cell.Current(), models.DiscardChangesPrompt{}))
}

// EditClick enables editing of the shown contact. No-op without a view.
func (c *Coordinator) EditClick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.cell.Current().(models.ViewingContact)
	if !ok {
		return
	}
	state.Editing = true
	c.cell.publish(state)
}

// ExitEditClick leaves edit mode. With unsaved edits it shows a
// DiscardChangesPrompt whose discard path reloads the fields from upstream
// (or falls back to NoSelection if the record vanished meanwhile).
func (c *Coordinator) ExitEditClick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.cell.Current().(models.ViewingContact)
	if !ok || !state.Editing {
		return
	}

	if !c.hasUnsavedChanges() {
		state.Editing = false
		c.cell.publish(state)
		return
	}

	c.pendingDiscard = discardReload
	state.Dialog = models.DiscardChangesPrompt{}
	c.cell.publish(state)
}

// Deselect clears the detail view. With unsaved edits it prompts first.
func (c *Coordinator) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, isNone := c.cell.Current().(models.NoSelection); isNone {
		return
	}

	if !c.hasUnsavedChanges() {
		c.selected = ""
		c.cell.publish(models.NoSelection{OperationActive: c.opBusy.Load()})
		return
	}

	c.pendingDiscard = discardDeselect
	c.cell.publish(withDialog(c.cell.Current(), models.DiscardChangesPrompt{}))
}

// FieldChange replaces the named form slot's value, nothing else. No-op
// unless a contact view is shown.
func (c *Coordinator) FieldChange(field models.FormField, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.cell.Current().(models.ViewingContact)
	if !ok {
		return
	}

	switch field {
	case models.FieldFirstName:
		state.Form.FirstName = value
	case models.FieldLastName:
		state.Form.LastName = value
	case models.FieldTitle:
		state.Form.Title = value
	case models.FieldDepartment:
		state.Form.Department = value
	default:
		return
	}
	c.cell.publish(state)
}

// SaveClick validates the form and dispatches an upsert: a create when
// composing a new contact, an update otherwise. Validation failure only
// raises the scroll-to-error flag; no persistence is attempted. A dispatch
// rejected because another operation is active is dropped silently — the
// busy flag is already visible in the published state.
func (c *Coordinator) SaveClick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.cell.Current().(models.ViewingContact)
	if !ok {
		return
	}

	contact, err := contactFromForm(state.Form)
	if err != nil {
		state.ScrollToError = true
		c.cell.publish(state)
		return
	}

	kind := models.OpUpdate
	if c.selected == "" {
		kind = models.OpCreate
	}
	targetID := c.selected

	accepted := c.dispatch(kind, func() <-chan models.OperationEvent {
		return c.engine.Upsert(c.ctx, targetID, contact)
	})
	if !accepted {
		c.log.Debug().
			Str("kind", kind.String()).
			Msg("save dropped: another operation is in flight")
	}
}

// DeleteClick shows the delete confirmation for the selected contact.
// No-op when nothing is selected.
func (c *Coordinator) DeleteClick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, ok := c.upstream[c.selected]
	if c.selected == "" || !ok {
		return
	}

	c.cell.publish(withDialog(c.cell.Current(), models.DeleteConfirm{
		TargetID:   c.selected,
		TargetName: snap.Record.Contact.DisplayName(),
	}))
}

// UndeleteClick shows the undelete confirmation for the selected contact.
// No-op when nothing is selected.
func (c *Coordinator) UndeleteClick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, ok := c.upstream[c.selected]
	if c.selected == "" || !ok {
		return
	}

	c.cell.publish(withDialog(c.cell.Current(), models.UndeleteConfirm{
		TargetID:   c.selected,
		TargetName: snap.Record.Contact.DisplayName(),
	}))
}

// ConfirmDiscard executes the continuation armed by the currently shown
// DiscardChangesPrompt and dismisses it. No-op without such a prompt.
func (c *Coordinator) ConfirmDiscard() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.cell.Current()
	if _, ok := current.ActiveDialog().(models.DiscardChangesPrompt); !ok {
		return
	}

	action := c.pendingDiscard
	c.pendingDiscard = discardNone

	switch action {
	case discardToCreateNew:
		c.enterCreateNew(nil)

	case discardReload:
		snap, ok := c.upstream[c.selected]
		if !ok {
			c.selected = ""
			c.cell.publish(models.NoSelection{OperationActive: c.opBusy.Load()})
			return
		}
		c.cell.publish(c.viewSnapshot(snap, false, nil))

	case discardDeselect:
		c.selected = ""
		c.cell.publish(models.NoSelection{OperationActive: c.opBusy.Load()})

	default:
		c.cell.publish(withDialog(current, nil))
	}
}

// ConfirmDelete dispatches the deletion the shown DeleteConfirm asked about
// and dismisses the dialog. No-op without a DeleteConfirm.
func (c *Coordinator) ConfirmDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.cell.Current()
	confirm, ok := current.ActiveDialog().(models.DeleteConfirm)
	if !ok {
		return
	}

	c.cell.publish(withDialog(current, nil))

	accepted := c.dispatch(models.OpDelete, func() <-chan models.OperationEvent {
		return c.engine.Delete(c.ctx, confirm.TargetID)
	})
	if !accepted {
		c.log.Debug().
			Str("client_side_id", confirm.TargetID).
			Msg("delete dropped: another operation is in flight")
	}
}

// ConfirmUndelete dispatches the restoration the shown UndeleteConfirm
// asked about and dismisses the dialog. No-op without an UndeleteConfirm.
func (c *Coordinator) ConfirmUndelete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.cell.Current()
	confirm, ok := current.ActiveDialog().(models.UndeleteConfirm)
	if !ok {
		return
	}

	c.cell.publish(withDialog(current, nil))

	accepted := c.dispatch(models.OpUndelete, func() <-chan models.OperationEvent {
		return c.engine.Undelete(c.ctx, confirm.TargetID)
	})
	if !accepted {
		c.log.Debug().
			Str("client_side_id", confirm.TargetID).
			Msg("undelete dropped: another operation is in flight")
	}
}

// CancelDialog dismisses whatever dialog is active without running its
// action. For a DiscardChangesPrompt this is the "keep editing" answer.
func (c *Coordinator) CancelDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.cell.Current()
	if current.ActiveDialog() == nil {
		return
	}
	c.pendingDiscard = discardNone
	c.cell.publish(withDialog(current, nil))
}
