// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type clientContactService struct {
	contacts store.LocalContactRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	mu     sync.RWMutex
	userID int64

	// feedMu guards the subscriber list and the last broadcast set.
	feedMu sync.Mutex
	feeds  []chan models.SnapshotSet
	last   models.SnapshotSet
}

func NewClientContactService(contacts store.LocalContactRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientContactService {
	return &clientContactService{
		contacts: contacts,
		adapter:  serverAdapter,
		logger:   logger,
	}
}

func (s *clientContactService) SetUser(userID int64) {
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
}

func (s *clientContactService) currentUser() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Snapshots implements ClientContactService. Subscriber channels have
// capacity one and are served last-value-wins: a slow consumer only ever
// sees the most recent full set.
func (s *clientContactService) Snapshots() <-chan models.SnapshotSet {
	ch := make(chan models.SnapshotSet, 1)

	s.feedMu.Lock()
	s.feeds = append(s.feeds, ch)
	if s.last != nil {
		ch <- s.last
	}
	s.feedMu.Unlock()

	return ch
}

func (s *clientContactService) RefreshSnapshots(ctx context.Context) error {
	userID := s.currentUser()
	if userID == 0 {
		return nil
	}

	records, err := s.contacts.GetAllContacts(ctx, userID)
	if err != nil {
		return fmt.Errorf("load contacts for snapshot: %w", err)
	}

	set := make(models.SnapshotSet, len(records))
	for _, record := range records {
		set[record.ClientSideID] = models.ContactSnapshot{Record: record, Status: record.Status}
	}

	s.publish(set)
	return nil
}

// publish replaces the last broadcast set and delivers it to every
// subscriber, dropping the stale value a slow subscriber has not taken yet.
func (s *clientContactService) publish(set models.SnapshotSet) {
	s.feedMu.Lock()
	defer s.feedMu.Unlock()

	s.last = set
	for _, ch := range s.feeds {
		select {
		case <-ch:
		default:
		}
		ch <- set
	}
}

func (s *clientContactService) Upsert(ctx context.Context, clientSideID string, contact models.Contact) <-chan models.OperationEvent {
	kind := models.OpUpdate
	if clientSideID == "" {
		kind = models.OpCreate
	}

	return s.run(ctx, kind, func(ctx context.Context, userID int64) (*models.ContactRecord, error) {
		if clientSideID == "" {
			return s.create(ctx, userID, contact)
		}
		return s.update(ctx, userID, clientSideID, contact)
	})
}

func (s *clientContactService) Delete(ctx context.Context, clientSideID string) <-chan models.OperationEvent {
	return s.run(ctx, models.OpDelete, func(ctx context.Context, userID int64) (*models.ContactRecord, error) {
		return s.delete(ctx, userID, clientSideID)
	})
}

func (s *clientContactService) Undelete(ctx context.Context, clientSideID string) <-chan models.OperationEvent {
	return s.run(ctx, models.OpUndelete, func(ctx context.Context, userID int64) (*models.ContactRecord, error) {
		return s.undelete(ctx, userID, clientSideID)
	})
}

// run executes op in a background goroutine and reports its progress as a
// phased event stream: Started, then Succeeded with the resulting record,
// then Finished. A failure skips Succeeded and carries the error on the
// Finished event. The channel is closed after Finished.
func (s *clientContactService) run(ctx context.Context, kind models.OperationKind, op func(ctx context.Context, userID int64) (*models.ContactRecord, error)) <-chan models.OperationEvent {
	events := make(chan models.OperationEvent, 3)

	go func() {
		defer close(events)

		events <- models.OperationEvent{Kind: kind, Phase: models.PhaseStarted}

		userID := s.currentUser()
		if userID == 0 {
			events <- models.OperationEvent{Kind: kind, Phase: models.PhaseFinished, Err: ErrNoActiveUser}
			return
		}

		record, err := op(ctx, userID)
		if err != nil {
			s.logger.Err(err).Str("operation", kind.String()).Msg("contact operation failed")
			events <- models.OperationEvent{Kind: kind, Phase: models.PhaseFinished, Err: err}
			return
		}

		events <- models.OperationEvent{Kind: kind, Phase: models.PhaseSucceeded, Record: record}

		if err = s.RefreshSnapshots(ctx); err != nil {
			s.logger.Err(err).Str("operation", kind.String()).Msg("snapshot refresh after operation failed")
		}

		events <- models.OperationEvent{Kind: kind, Phase: models.PhaseFinished}
	}()

	return events
}

func (s *clientContactService) create(ctx context.Context, userID int64, contact models.Contact) (*models.ContactRecord, error) {
	now := time.Now().UTC()
	record := models.ContactRecord{
		ClientSideID: uuid.NewString(),
		UserID:       userID,
		Contact:      contact,
		Version:      1,
		Status:       models.StatusCreatedLocal,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}

	if err := s.contacts.SaveContacts(ctx, userID, record); err != nil {
		return nil, fmt.Errorf("save created contact to local store: %w", err)
	}

	req := models.UploadRequest{UserID: userID, Contacts: []*models.ContactRecord{&record}, Length: 1}
	if err := s.adapter.Upload(ctx, req); err != nil {
		s.logger.Err(err).Str("clientSideID", record.ClientSideID).Msg("upload of created contact failed, staged for next sync")
		return &record, nil
	}

	if err := s.contacts.SetStatus(ctx, record.ClientSideID, userID, models.StatusClean); err != nil {
		return nil, fmt.Errorf("mark created contact clean: %w", err)
	}
	record.Status = models.StatusClean

	return &record, nil
}

func (s *clientContactService) update(ctx context.Context, userID int64, clientSideID string, contact models.Contact) (*models.ContactRecord, error) {
	prev, err := s.contacts.GetContact(ctx, clientSideID, userID)
	if err != nil {
		return nil, fmt.Errorf("load contact for update: %w", err)
	}

	now := time.Now().UTC()
	updated := prev
	updated.Contact = contact
	updated.Status = models.StatusUpdatedLocal
	updated.UpdatedAt = &now

	if err = s.contacts.UpdateContact(ctx, updated); err != nil {
		return nil, fmt.Errorf("update contact in local store: %w", err)
	}

	req := models.UpdateRequest{
		UserID: userID,
		Updates: []models.ContactUpdate{{
			ClientSideID: clientSideID,
			Version:      prev.Version,
			Fields:       fieldsUpdate(contact),
		}},
	}
	if err = s.adapter.Update(ctx, req); err != nil {
		s.logger.Err(err).Str("clientSideID", clientSideID).Msg("update of contact on server failed, staged for next sync")
		return &updated, nil
	}

	if err = s.acceptServerWrite(ctx, clientSideID, userID); err != nil {
		return nil, err
	}
	updated.Version++
	updated.Status = models.StatusClean

	return &updated, nil
}

func (s *clientContactService) delete(ctx context.Context, userID int64, clientSideID string) (*models.ContactRecord, error) {
	prev, err := s.contacts.GetContact(ctx, clientSideID, userID)
	if err != nil {
		return nil, fmt.Errorf("load contact for delete: %w", err)
	}

	// A record the server has never seen leaves nothing to propagate:
	// purge it outright.
	if prev.Status == models.StatusCreatedLocal {
		if err = s.contacts.RemoveContact(ctx, clientSideID, userID); err != nil {
			return nil, fmt.Errorf("remove never-uploaded contact: %w", err)
		}
		return nil, nil
	}

	if err = s.contacts.MarkDeleted(ctx, clientSideID, userID, models.StatusDeletedLocal); err != nil {
		return nil, fmt.Errorf("soft delete contact in local store: %w", err)
	}

	deleted := prev
	deleted.Deleted = true
	deleted.Status = models.StatusDeletedLocal

	req := models.DeleteRequest{UserID: userID, Entries: []models.DeleteEntry{{
		ClientSideID: clientSideID,
		Version:      prev.Version,
	}}}
	if err = s.adapter.Delete(ctx, req); err != nil {
		s.logger.Err(err).Str("clientSideID", clientSideID).Msg("delete of contact on server failed")
		if statusErr := s.contacts.SetStatus(ctx, clientSideID, userID, models.StatusDeleteFailed); statusErr != nil {
			return nil, fmt.Errorf("mark contact delete-failed: %w", statusErr)
		}
		deleted.Status = models.StatusDeleteFailed
		return &deleted, nil
	}

	if err = s.acceptServerWrite(ctx, clientSideID, userID); err != nil {
		return nil, err
	}
	deleted.Version++
	deleted.Status = models.StatusClean

	return &deleted, nil
}

func (s *clientContactService) undelete(ctx context.Context, userID int64, clientSideID string) (*models.ContactRecord, error) {
	prev, err := s.contacts.GetContact(ctx, clientSideID, userID)
	if err != nil {
		return nil, fmt.Errorf("load contact for undelete: %w", err)
	}

	if err = s.contacts.Restore(ctx, clientSideID, userID, models.StatusUpdatedLocal); err != nil {
		return nil, fmt.Errorf("restore contact in local store: %w", err)
	}

	restored := prev
	restored.Deleted = false
	restored.Status = models.StatusUpdatedLocal

	req := models.UndeleteRequest{UserID: userID, Entries: []models.DeleteEntry{{
		ClientSideID: clientSideID,
		Version:      prev.Version,
	}}}
	if err = s.adapter.Undelete(ctx, req); err != nil {
		s.logger.Err(err).Str("clientSideID", clientSideID).Msg("undelete of contact on server failed, staged for next sync")
		return &restored, nil
	}

	if err = s.acceptServerWrite(ctx, clientSideID, userID); err != nil {
		return nil, err
	}
	restored.Version++
	restored.Status = models.StatusClean

	return &restored, nil
}

// acceptServerWrite records a server-acknowledged mutation locally: the
// version counter follows the server's bump and the record becomes clean.
func (s *clientContactService) acceptServerWrite(ctx context.Context, clientSideID string, userID int64) error {
	if err := s.contacts.IncrementVersion(ctx, clientSideID, userID); err != nil {
		return fmt.Errorf("bump contact version after server write: %w", err)
	}
	if err := s.contacts.SetStatus(ctx, clientSideID, userID, models.StatusClean); err != nil {
		return fmt.Errorf("mark contact clean after server write: %w", err)
	}
	return nil
}

func fieldsUpdate(contact models.Contact) models.ContactFieldsUpdate {
	lastName := contact.LastName
	return models.ContactFieldsUpdate{
		FirstName:  contact.FirstName,
		LastName:   &lastName,
		Title:      contact.Title,
		Department: contact.Department,
	}
}
