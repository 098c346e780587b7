package detail

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/models"
)

var (
	// ErrOperationBlocked is returned when a selection change is attempted
	// while a persistence operation is in flight, or before the first
	// upstream emission arrived. The caller may retry later.
	ErrOperationBlocked = errors.New("selection blocked: operation in flight or initial load pending")

	// ErrUnsavedChanges is returned when a selection change would discard
	// edits and the caller did not force it. The caller should re-invoke
	// via DiscardAndSelect or abandon the change.
	ErrUnsavedChanges = errors.New("selection would discard unsaved changes")

	// ErrContactNotFound is returned when a selection target is absent from
	// the upstream set. Stale selection targets are not expected from a
	// well-behaved presentation layer, so callers should treat this as a
	// genuine fault rather than a routine condition.
	ErrContactNotFound = errors.New("selected contact not present upstream")

	// errEditConflictsWithDeletion marks the reconciliation branch that is
	// deliberately left unresolved: the upstream copy of the selected
	// record became locally-deleted while the user holds unsaved edits.
	// The reconciler logs it loudly and leaves the state untouched; it must
	// never raise a dialog from a reconciliation pass.
	errEditConflictsWithDeletion = errors.New("unresolved: upstream record deleted while edits are held")
)

// ValidationError reports that the form fields cannot produce a valid
// contact, naming the first offending field.
type ValidationError struct {
	Field models.FormField
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid contact form: field %s", e.Field)
}
