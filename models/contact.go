// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact holds the editable field values of a single address-book entry.
// Optional fields are modelled as pointers; a nil pointer means the field
// was never filled, while an empty string is treated as "cleared".
type Contact struct {
	// FirstName is the optional given name.
	FirstName *string `json:"first_name,omitempty"`

	// LastName is the family name. It is the only required field.
	LastName string `json:"last_name"`

	// Title is the optional job title.
	Title *string `json:"title,omitempty"`

	// Department is the optional organizational unit.
	Department *string `json:"department,omitempty"`
}

// Equal reports structural equality over field values.
// A nil optional field and a present-but-empty one are considered different.
func (c Contact) Equal(other Contact) bool {
	return c.LastName == other.LastName &&
		equalOptional(c.FirstName, other.FirstName) &&
		equalOptional(c.Title, other.Title) &&
		equalOptional(c.Department, other.Department)
}

// DisplayName returns the human-readable name used in lists and dialogs.
func (c Contact) DisplayName() string {
	if c.FirstName != nil && *c.FirstName != "" {
		return *c.FirstName + " " + c.LastName
	}
	return c.LastName
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ContactRecord is the persistence model for one contact.
// It pairs the contact field values with the bookkeeping columns shared by
// the local store and the server: version counter, soft-delete flag, and
// the local modification status used by the sync planner.
type ContactRecord struct {
	// ClientSideID is the stable identifier assigned by the client on the
	// first successful persistence (UUID). It never changes afterwards.
	ClientSideID string `json:"client_side_id"`

	// UserID is the owner of this contact.
	UserID int64 `json:"user_id"`

	// Contact holds the editable field values.
	Contact Contact `json:"contact"`

	// Version is a monotonically increasing change counter used for
	// optimistic concurrency between client and server.
	Version int64 `json:"version"`

	// Deleted marks the record soft-deleted. Deleted records stay in the
	// store so they can be undeleted until the next purge.
	Deleted bool `json:"deleted"`

	// Status describes the record's relationship to the remote store.
	Status SyncStatus `json:"status"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the ContactRecord model.
func (c *ContactRecord) TableName() string {
	return "contacts"
}
