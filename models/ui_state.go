// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UIState is the single published artifact of the detail-view coordinator.
// It is a sealed tagged union: the only variants are [NoSelection] and
// [ViewingContact]. Consumers must type-switch over both.
//
// A UIState value is immutable once published; the coordinator always
// replaces it wholesale, never mutates it in place.
type UIState interface {
	// OperationInFlight reports whether a persistence operation is active
	// at the moment this state was published.
	OperationInFlight() bool

	// ActiveDialog returns the dialog layered over this state, or nil.
	ActiveDialog() Dialog

	uiState()
}

// NoSelection is published when no contact is shown in the detail pane.
type NoSelection struct {
	// OperationActive mirrors the data-operation busy flag at publication.
	OperationActive bool

	// Dialog is the modal overlay, or nil when none is active.
	Dialog Dialog
}

func (NoSelection) uiState() {}

func (s NoSelection) OperationInFlight() bool { return s.OperationActive }

func (s NoSelection) ActiveDialog() Dialog { return s.Dialog }

// ViewingContact is published while one contact is shown or being created.
type ViewingContact struct {
	// Form holds the four editable field slots as raw text.
	Form ContactForm

	// SyncState is the display form of the contact's sync status.
	SyncState DisplaySyncState

	// Editing reports whether the form fields accept input.
	Editing bool

	// OperationActive mirrors the data-operation busy flag at publication.
	OperationActive bool

	// ScrollToError asks the presentation layer to bring the first invalid
	// field into view. Set once per failed save attempt.
	ScrollToError bool

	// Dialog is the modal overlay, or nil when none is active.
	Dialog Dialog
}

func (ViewingContact) uiState() {}

func (s ViewingContact) OperationInFlight() bool { return s.OperationActive }

func (s ViewingContact) ActiveDialog() Dialog { return s.Dialog }

// ContactForm holds the raw text of the four editable slots. No validation
// is embedded here; converting the form back into a [Contact] is where the
// required-field check happens.
type ContactForm struct {
	FirstName  string
	LastName   string
	Title      string
	Department string
}

// FormField names one of the editable slots for field-change commands.
type FormField int

const (
	FieldFirstName FormField = iota
	FieldLastName
	FieldTitle
	FieldDepartment
)

func (f FormField) String() string {
	switch f {
	case FieldFirstName:
		return "first_name"
	case FieldLastName:
		return "last_name"
	case FieldTitle:
		return "title"
	case FieldDepartment:
		return "department"
	default:
		return "unknown"
	}
}

// DisplaySyncState is what the detail pane shows about the contact's
// relationship to the remote store. It is derived from [SyncStatus] plus the
// create-new case that only exists in the UI.
type DisplaySyncState int

const (
	// DisplayInSync means the contact matches the server copy.
	DisplayInSync DisplaySyncState = iota

	// DisplayPendingSync means local changes have not been pushed yet.
	DisplayPendingSync

	// DisplayDeleted means the contact is soft-deleted.
	DisplayDeleted

	// DisplayDeleteFailed means the last deletion attempt was rejected.
	DisplayDeleteFailed

	// DisplayNotSaved means the contact was never persisted (create-new).
	DisplayNotSaved
)

func (d DisplaySyncState) String() string {
	switch d {
	case DisplayInSync:
		return "in_sync"
	case DisplayPendingSync:
		return "pending_sync"
	case DisplayDeleted:
		return "deleted"
	case DisplayDeleteFailed:
		return "delete_failed"
	case DisplayNotSaved:
		return "not_saved"
	default:
		return "unknown"
	}
}

// Dialog is a sealed tagged union of modal confirmation overlays. At most
// one dialog is active at any time, layered over either UIState variant.
//
// Dialog variants are data-only: they carry the information the presentation
// layer needs to render the prompt, and the presentation layer answers by
// dispatching the corresponding coordinator command (ConfirmDiscard,
// ConfirmDelete, ConfirmUndelete, CancelDialog).
type Dialog interface {
	dialog()
}

// DiscardChangesPrompt asks whether unsaved edits may be thrown away.
type DiscardChangesPrompt struct{}

func (DiscardChangesPrompt) dialog() {}

// DeleteConfirm asks for confirmation before deleting the named contact.
type DeleteConfirm struct {
	TargetID   string
	TargetName string
}

func (DeleteConfirm) dialog() {}

// UndeleteConfirm asks for confirmation before restoring the named contact.
type UndeleteConfirm struct {
	TargetID   string
	TargetName string
}

func (UndeleteConfirm) dialog() {}
