package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists server-side user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// ContactRepository is the server-side contact store. Every method scopes
// its queries to a single user; cross-user access is impossible by
// construction.
type ContactRepository interface {
	GetAllStates(ctx context.Context, userID int64) ([]models.ContactState, error)
	GetContacts(ctx context.Context, userID int64, clientSideIDs []string) ([]models.ContactRecord, error)
	SaveContacts(ctx context.Context, userID int64, records ...models.ContactRecord) error
	UpdateContact(ctx context.Context, userID int64, update models.ContactUpdate) error
	DeleteContact(ctx context.Context, userID int64, entry models.DeleteEntry) error
	UndeleteContact(ctx context.Context, userID int64, entry models.DeleteEntry) error
}
