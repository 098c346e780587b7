package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalContactRepository is the low-level local contact store. The sync
// engine is its only consumer: it replays server downloads into it, stages
// local edits with the matching sync status, and purges records the server
// deleted.
type LocalContactRepository interface {
	SaveContacts(ctx context.Context, userID int64, records ...models.ContactRecord) error
	GetContact(ctx context.Context, clientSideID string, userID int64) (models.ContactRecord, error)
	GetAllContacts(ctx context.Context, userID int64) ([]models.ContactRecord, error)
	GetAllStates(ctx context.Context, userID int64) ([]models.ContactState, error)
	UpdateContact(ctx context.Context, record models.ContactRecord) error
	MarkDeleted(ctx context.Context, clientSideID string, userID int64, status models.SyncStatus) error
	Restore(ctx context.Context, clientSideID string, userID int64, status models.SyncStatus) error
	SetStatus(ctx context.Context, clientSideID string, userID int64, status models.SyncStatus) error
	RemoveContact(ctx context.Context, clientSideID string, userID int64) error
	IncrementVersion(ctx context.Context, clientSideID string, userID int64) error
}
