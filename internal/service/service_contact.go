package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactService struct {
	contactRepository store.ContactRepository

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

func (s *contactService) GetStates(ctx context.Context, userID int64) ([]models.ContactState, error) {
	if userID == 0 {
		return nil, ErrValidationNoUserID
	}

	return s.contactRepository.GetAllStates(ctx, userID)
}

func (s *contactService) UploadContacts(ctx context.Context, req models.UploadRequest) error {
	if req.UserID == 0 {
		return ErrValidationNoUserID
	}
	if len(req.Contacts) == 0 {
		return ErrValidationNoContactsProvided
	}

	records := make([]models.ContactRecord, 0, len(req.Contacts))
	for _, record := range req.Contacts {
		if record == nil || record.ClientSideID == "" {
			return ErrInvalidDataProvided
		}
		if record.Contact.LastName == "" {
			return fmt.Errorf("%w: contact %s has no last name", ErrInvalidDataProvided, record.ClientSideID)
		}
		records = append(records, *record)
	}

	return s.contactRepository.SaveContacts(ctx, req.UserID, records...)
}

func (s *contactService) DownloadContacts(ctx context.Context, req models.DownloadRequest) ([]models.ContactRecord, error) {
	if req.UserID == 0 {
		return nil, ErrValidationNoUserID
	}
	if len(req.ClientSideIDs) == 0 {
		return nil, ErrValidationNoDownloadRequestProvided
	}
	for _, id := range req.ClientSideIDs {
		if id == "" {
			return nil, ErrInvalidDataProvided
		}
	}

	return s.contactRepository.GetContacts(ctx, req.UserID, req.ClientSideIDs)
}

func (s *contactService) UpdateContacts(ctx context.Context, req models.UpdateRequest) error {
	if req.UserID == 0 {
		return ErrValidationNoUserID
	}
	if len(req.Updates) == 0 {
		return ErrValidationNoUpdateRequestsProvided
	}

	for _, update := range req.Updates {
		if update.ClientSideID == "" {
			return ErrInvalidDataProvided
		}
		if err := s.contactRepository.UpdateContact(ctx, req.UserID, update); err != nil {
			return fmt.Errorf("update contact %s: %w", update.ClientSideID, err)
		}
	}

	return nil
}

func (s *contactService) DeleteContacts(ctx context.Context, req models.DeleteRequest) error {
	if req.UserID == 0 {
		return ErrValidationNoUserID
	}
	if len(req.Entries) == 0 {
		return ErrValidationNoDeleteRequestsProvided
	}

	for _, entry := range req.Entries {
		if entry.ClientSideID == "" {
			return ErrInvalidDataProvided
		}
		if err := s.contactRepository.DeleteContact(ctx, req.UserID, entry); err != nil {
			return fmt.Errorf("delete contact %s: %w", entry.ClientSideID, err)
		}
	}

	return nil
}

func (s *contactService) UndeleteContacts(ctx context.Context, req models.UndeleteRequest) error {
	if req.UserID == 0 {
		return ErrValidationNoUserID
	}
	if len(req.Entries) == 0 {
		return ErrValidationNoDeleteRequestsProvided
	}

	for _, entry := range req.Entries {
		if entry.ClientSideID == "" {
			return ErrInvalidDataProvided
		}
		if err := s.contactRepository.UndeleteContact(ctx, req.UserID, entry); err != nil {
			return fmt.Errorf("undelete contact %s: %w", entry.ClientSideID, err)
		}
	}

	return nil
}
