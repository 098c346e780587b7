package detail

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// SnapshotSource is the authoritative side of the sync engine boundary.
type SnapshotSource interface {
	// Snapshots returns the stream of full known-record-set emissions.
	// Each received mapping replaces the previous one wholesale. The
	// channel is closed when the engine shuts down.
	Snapshots() <-chan models.SnapshotSet
}

// ContactWriter is the persistence side of the sync engine boundary.
//
// Every entry point returns a phased progress stream (see
// [models.OperationEvent]): Started, then Succeeded on success, then
// Finished, after which the channel is closed. Once dispatched an operation
// runs to Finished uninterruptibly; cancellation and timeouts are the
// engine's concern, surfaced only as a Finished error.
type ContactWriter interface {
	// Upsert persists the given field values. An empty clientSideID means
	// "create": the engine assigns a new identifier and returns it in the
	// Succeeded record. A non-empty id means "update this record".
	Upsert(ctx context.Context, clientSideID string, contact models.Contact) <-chan models.OperationEvent

	// Delete soft-deletes the record. The Succeeded record carries the
	// deleted snapshot, or nil when the record was purged outright.
	Delete(ctx context.Context, clientSideID string) <-chan models.OperationEvent

	// Undelete restores a soft-deleted record.
	Undelete(ctx context.Context, clientSideID string) <-chan models.OperationEvent
}

// SyncEngine is the full collaborator contract the coordinator composes on.
type SyncEngine interface {
	SnapshotSource
	ContactWriter
}
