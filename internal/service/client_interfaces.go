package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ClientAuthService defines the client-side contract for user registration
// and authentication against the remote server.
type ClientAuthService interface {
	// Register creates a new account on the server for the given user.
	// On success the adapter stores the issued bearer token and the
	// returned user carries the server-assigned UserID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user against the server. On success the
	// adapter stores the issued bearer token and the returned user carries
	// the server-assigned UserID.
	Login(ctx context.Context, user models.User) (models.User, error)
}

// ClientContactService is the client-side contact engine. It owns the local
// contact store, propagates changes to the server, and broadcasts full
// snapshot sets to every subscribed consumer (detail pane, list pane).
//
// Upsert, Delete and Undelete report progress through a phased event stream:
// Started, then Succeeded carrying the resulting record on success, then
// Finished carrying the terminal error on failure, after which the channel
// is closed. A local persistence failure is terminal; a failed server push
// only leaves the record staged with a dirty sync status for the next
// background sync.
type ClientContactService interface {
	// SetUser binds all subsequent operations to the given account.
	// Must be called once after a successful login.
	SetUser(userID int64)

	// Snapshots returns a stream of full known-record-set emissions. Each
	// received mapping replaces the previous one wholesale. A new
	// subscriber immediately receives the most recent emission, if any.
	Snapshots() <-chan models.SnapshotSet

	// Upsert persists the given field values. An empty clientSideID means
	// "create": a new UUID is assigned and returned in the Succeeded
	// record. A non-empty id updates that record.
	Upsert(ctx context.Context, clientSideID string, contact models.Contact) <-chan models.OperationEvent

	// Delete soft-deletes the record. A record the server has never seen
	// is purged outright; the Succeeded record is nil in that case.
	Delete(ctx context.Context, clientSideID string) <-chan models.OperationEvent

	// Undelete restores a soft-deleted record.
	Undelete(ctx context.Context, clientSideID string) <-chan models.OperationEvent

	// RefreshSnapshots reloads the full record set from the local store
	// and broadcasts it to every subscriber.
	RefreshSnapshots(ctx context.Context) error
}

// ClientSyncService defines the client-side contract for synchronising the
// local contact store with the remote server.
type ClientSyncService interface {
	// FullSync performs a complete bidirectional synchronisation for the
	// given user: it fetches server and client state descriptors, builds a
	// sync plan, and executes all required download, upload, update, and
	// delete actions. Returns an error if any step of the sync fails.
	FullSync(ctx context.Context, userID int64) error

	// ExecutePlan carries out the actions described in plan for the given
	// user. Each action category (Download, Upload, Update, DeleteClient,
	// DeleteServer) is executed in order. Returns the first error
	// encountered, if any.
	ExecutePlan(ctx context.Context, userID int64, plan models.SyncPlan) error
}

// SyncService builds a synchronisation plan from server and client state
// descriptors. The comparison is purely in-memory and side-effect free.
type SyncService interface {
	BuildSyncPlan(ctx context.Context, serverData, clientData []models.ContactState) (models.SyncPlan, error)
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls FullSync for the authenticated user.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
