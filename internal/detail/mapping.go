package detail

import (
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// formFromContact converts a contact's field values into the editable form
// representation. Nil optional fields become empty slots.
func formFromContact(c models.Contact) models.ContactForm {
	return models.ContactForm{
		FirstName:  stringValue(c.FirstName),
		LastName:   c.LastName,
		Title:      stringValue(c.Title),
		Department: stringValue(c.Department),
	}
}

// contactFromForm converts raw form slots back into a contact.
// Whitespace is trimmed; empty optional slots become nil. An empty last
// name fails with a *ValidationError naming the field.
func contactFromForm(f models.ContactForm) (models.Contact, error) {
	lastName := strings.TrimSpace(f.LastName)
	if lastName == "" {
		return models.Contact{}, &ValidationError{Field: models.FieldLastName}
	}

	return models.Contact{
		FirstName:  optional(f.FirstName),
		LastName:   lastName,
		Title:      optional(f.Title),
		Department: optional(f.Department),
	}, nil
}

// displayState derives what the detail pane shows about a snapshot's sync
// relationship.
func displayState(snap models.ContactSnapshot) models.DisplaySyncState {
	if snap.Record.Deleted {
		if snap.Status == models.StatusDeleteFailed {
			return models.DisplayDeleteFailed
		}
		return models.DisplayDeleted
	}

	switch snap.Status {
	case models.StatusCreatedLocal, models.StatusUpdatedLocal:
		return models.DisplayPendingSync
	case models.StatusDeleteFailed:
		return models.DisplayDeleteFailed
	default:
		return models.DisplayInSync
	}
}

func optional(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
