package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactService is the server-side contact data service. It validates
// incoming sync requests and delegates persistence to the contact
// repository.
type ContactService interface {
	GetStates(ctx context.Context, userID int64) ([]models.ContactState, error)

	UploadContacts(ctx context.Context, req models.UploadRequest) error
	DownloadContacts(ctx context.Context, req models.DownloadRequest) ([]models.ContactRecord, error)

	UpdateContacts(ctx context.Context, req models.UpdateRequest) error
	DeleteContacts(ctx context.Context, req models.DeleteRequest) error
	UndeleteContacts(ctx context.Context, req models.UndeleteRequest) error
}

// AuthService is the server-side account service: registration, credential
// verification, and JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
