// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatesRequest is sent by the client to fetch the server-side state
// descriptor of every contact that belongs to the user.
type StatesRequest struct {
	// UserID is the owner of the contact set being synchronized.
	UserID int64 `json:"user_id"`
}

// DownloadRequest asks the server for the full records of the listed ids.
type DownloadRequest struct {
	UserID        int64    `json:"user_id"`
	ClientSideIDs []string `json:"client_side_ids"`

	// Length is the total number of entries in ClientSideIDs.
	Length int `json:"length"`
}

// UploadRequest pushes locally created records to the server.
type UploadRequest struct {
	UserID   int64            `json:"user_id"`
	Contacts []*ContactRecord `json:"contacts"`
	Length   int              `json:"length"`
}

// ContactFieldsUpdate carries the changed field values of one contact.
// Nil pointers mean "leave the column unchanged".
type ContactFieldsUpdate struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Title      *string `json:"title,omitempty"`
	Department *string `json:"department,omitempty"`
}

// ContactUpdate describes one optimistic-concurrency update entry.
type ContactUpdate struct {
	ClientSideID string `json:"client_side_id"`

	// Version is the base version the update was computed against. The
	// server rejects the entry with a version conflict if its stored
	// version differs.
	Version int64 `json:"version"`

	Fields ContactFieldsUpdate `json:"fields"`
}

// UpdateRequest pushes locally modified records to the server.
type UpdateRequest struct {
	UserID  int64           `json:"user_id"`
	Updates []ContactUpdate `json:"updates"`
}

// DeleteEntry identifies one record whose deletion must be propagated.
type DeleteEntry struct {
	ClientSideID string `json:"client_side_id"`
	Version      int64  `json:"version"`
}

// DeleteRequest propagates local soft-deletions to the server.
type DeleteRequest struct {
	UserID  int64         `json:"user_id"`
	Entries []DeleteEntry `json:"entries"`
}

// UndeleteRequest propagates local restorations to the server.
type UndeleteRequest struct {
	UserID  int64         `json:"user_id"`
	Entries []DeleteEntry `json:"entries"`
}
