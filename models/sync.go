package models

import "time"

// SyncStatus describes a contact record's relationship to the remote store.
// The enumeration is owned by the sync engine; the detail-view coordinator
// treats it as opaque input.
type SyncStatus int

const (
	// StatusClean means the record matches the server copy.
	StatusClean SyncStatus = iota

	// StatusCreatedLocal means the record was created locally and has not
	// been uploaded yet.
	StatusCreatedLocal

	// StatusUpdatedLocal means the record has local field changes that have
	// not been pushed yet.
	StatusUpdatedLocal

	// StatusDeletedLocal means the record was soft-deleted locally and the
	// deletion has not been propagated yet.
	StatusDeletedLocal

	// StatusDeleteFailed means the last attempt to propagate a deletion was
	// rejected by the server.
	StatusDeleteFailed
)

func (s SyncStatus) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusCreatedLocal:
		return "created_local"
	case StatusUpdatedLocal:
		return "updated_local"
	case StatusDeletedLocal:
		return "deleted_local"
	case StatusDeleteFailed:
		return "delete_failed"
	default:
		return "unknown"
	}
}

// ContactSnapshot pairs a contact record with its sync status as last known
// from the authoritative source. Snapshot sets arrive as a mapping from
// ClientSideID to snapshot and replace the previous mapping wholesale.
type ContactSnapshot struct {
	Record ContactRecord `json:"record"`
	Status SyncStatus    `json:"status"`
}

// SnapshotSet is one full emission of the authoritative record set.
type SnapshotSet map[string]ContactSnapshot

// ContactState is the lightweight per-record descriptor exchanged during
// synchronization: enough for either side to decide whether a full fetch or
// push is needed without transferring field values.
type ContactState struct {
	ClientSideID string     `json:"client_side_id"`
	Version      int64      `json:"version"`
	Deleted      bool       `json:"deleted"`
	Status       SyncStatus `json:"status"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// SyncPlan is the outcome of comparing server and client state descriptors.
// Each bucket lists the records the corresponding action applies to.
type SyncPlan struct {
	// Download lists records that must be fetched from the server.
	Download []ContactState

	// Upload lists locally created records that must be pushed.
	Upload []ContactState

	// Update lists locally modified records that must be pushed as updates.
	Update []ContactState

	// DeleteClient lists records the server deleted that must be removed
	// locally.
	DeleteClient []ContactState

	// DeleteServer lists locally deleted records whose deletion must be
	// propagated to the server.
	DeleteServer []ContactState
}

// IsEmpty reports whether the plan contains no actions.
func (p SyncPlan) IsEmpty() bool {
	return len(p.Download) == 0 && len(p.Upload) == 0 && len(p.Update) == 0 &&
		len(p.DeleteClient) == 0 && len(p.DeleteServer) == 0
}
