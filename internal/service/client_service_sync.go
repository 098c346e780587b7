package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type clientSyncService struct {
	contacts store.LocalContactRepository
	adapter  adapter.ServerAdapter
	planner  SyncService
	logger   *logger.Logger

	mu          sync.RWMutex
	serverState map[string]models.ContactState
}

func NewClientSyncService(contacts store.LocalContactRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		contacts:    contacts,
		adapter:     serverAdapter,
		planner:     NewSyncService(),
		logger:      logger,
		serverState: make(map[string]models.ContactState),
	}
}

func (s *clientSyncService) FullSync(ctx context.Context, userID int64) error {
	serverStates, err := s.adapter.GetServerStates(ctx)
	if err != nil {
		return fmt.Errorf("get server states: %w", err)
	}

	clientStates, err := s.contacts.GetAllStates(ctx, userID)
	if err != nil {
		return fmt.Errorf("get local states: %w", err)
	}

	plan, err := s.planner.BuildSyncPlan(ctx, serverStates, clientStates)
	if err != nil {
		return fmt.Errorf("build sync plan: %w", err)
	}

	idx := make(map[string]models.ContactState, len(serverStates))
	for _, st := range serverStates {
		idx[st.ClientSideID] = st
	}
	s.mu.Lock()
	s.serverState = idx
	s.mu.Unlock()

	if err = s.ExecutePlan(ctx, userID, plan); err != nil {
		return fmt.Errorf("execute sync plan: %w", err)
	}

	return nil
}

func (s *clientSyncService) ExecutePlan(ctx context.Context, userID int64, plan models.SyncPlan) error {
	if len(plan.Download) > 0 {
		ids := collectIDs(plan.Download)
		records, err := s.adapter.Download(ctx, models.DownloadRequest{UserID: userID, ClientSideIDs: ids, Length: len(ids)})
		if err != nil {
			return fmt.Errorf("download records in plan: %w", err)
		}
		for i := range records {
			records[i].Status = models.StatusClean
		}
		if err = s.contacts.SaveContacts(ctx, userID, records...); err != nil {
			return fmt.Errorf("save downloaded records locally: %w", err)
		}
	}

	if len(plan.Upload) > 0 {
		payload := make([]*models.ContactRecord, 0, len(plan.Upload))
		for _, st := range plan.Upload {
			record, err := s.contacts.GetContact(ctx, st.ClientSideID, userID)
			if err != nil {
				return fmt.Errorf("get local upload record %s: %w", st.ClientSideID, err)
			}
			rec := record
			payload = append(payload, &rec)
		}
		if err := s.adapter.Upload(ctx, models.UploadRequest{UserID: userID, Contacts: payload, Length: len(payload)}); err != nil {
			return fmt.Errorf("upload records in sync plan: %w", err)
		}
		for _, record := range payload {
			if err := s.contacts.SetStatus(ctx, record.ClientSideID, userID, models.StatusClean); err != nil {
				return fmt.Errorf("mark uploaded record %s clean: %w", record.ClientSideID, err)
			}
		}
	}

	for _, st := range plan.Update {
		if err := s.updateServer(ctx, userID, st.ClientSideID); err != nil {
			return err
		}
	}

	for _, st := range plan.DeleteClient {
		if err := s.contacts.MarkDeleted(ctx, st.ClientSideID, userID, models.StatusClean); err != nil {
			return fmt.Errorf("delete on client for %s: %w", st.ClientSideID, err)
		}
	}

	for _, st := range plan.DeleteServer {
		if err := s.deleteServer(ctx, userID, st.ClientSideID); err != nil {
			return err
		}
	}

	return nil
}

func (s *clientSyncService) updateServer(ctx context.Context, userID int64, clientSideID string) error {
	record, err := s.contacts.GetContact(ctx, clientSideID, userID)
	if err != nil {
		return fmt.Errorf("load local record for update %s: %w", clientSideID, err)
	}

	req := models.UpdateRequest{
		UserID: userID,
		Updates: []models.ContactUpdate{{
			ClientSideID: record.ClientSideID,
			Version:      s.serverVersion(clientSideID, record.Version),
			Fields:       fieldsUpdate(record.Contact),
		}},
	}

	err = s.adapter.Update(ctx, req)
	if err == nil {
		if err = s.contacts.SetStatus(ctx, clientSideID, userID, models.StatusClean); err != nil {
			return fmt.Errorf("mark updated record %s clean: %w", clientSideID, err)
		}
		return nil
	}
	if !errors.Is(err, adapter.ErrVersionConflict) {
		return fmt.Errorf("update server record %s: %w", clientSideID, err)
	}

	return s.refreshConflict(ctx, userID, clientSideID)
}

func (s *clientSyncService) deleteServer(ctx context.Context, userID int64, clientSideID string) error {
	record, err := s.contacts.GetContact(ctx, clientSideID, userID)
	if err != nil {
		return fmt.Errorf("load local record for delete %s: %w", clientSideID, err)
	}

	req := models.DeleteRequest{UserID: userID, Entries: []models.DeleteEntry{{
		ClientSideID: clientSideID,
		Version:      s.serverVersion(clientSideID, record.Version),
	}}}

	err = s.adapter.Delete(ctx, req)
	if err == nil {
		if err = s.contacts.SetStatus(ctx, clientSideID, userID, models.StatusClean); err != nil {
			return fmt.Errorf("mark deleted record %s clean: %w", clientSideID, err)
		}
		return nil
	}
	if !errors.Is(err, adapter.ErrVersionConflict) {
		return fmt.Errorf("delete server record %s: %w", clientSideID, err)
	}

	// The server moved on since the deletion was staged. Keep the local
	// soft-delete but surface the rejection through the sync status.
	s.logger.Err(err).Str("clientSideID", clientSideID).Msg("server rejected staged deletion")
	if err = s.contacts.SetStatus(ctx, clientSideID, userID, models.StatusDeleteFailed); err != nil {
		return fmt.Errorf("mark record %s delete-failed: %w", clientSideID, err)
	}
	return nil
}

func (s *clientSyncService) refreshConflict(ctx context.Context, userID int64, clientSideID string) error {
	req := models.DownloadRequest{UserID: userID, ClientSideIDs: []string{clientSideID}, Length: 1}
	records, err := s.adapter.Download(ctx, req)
	if err != nil {
		return fmt.Errorf("download conflict record %s: %w", clientSideID, err)
	}
	if len(records) == 0 {
		return nil
	}

	for i := range records {
		records[i].Status = models.StatusClean
	}
	if err = s.contacts.SaveContacts(ctx, userID, records...); err != nil {
		return fmt.Errorf("save conflict record %s: %w", clientSideID, err)
	}
	return nil
}

func (s *clientSyncService) serverVersion(clientSideID string, fallback int64) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.serverState[clientSideID]; ok {
		return st.Version
	}
	if fallback > 0 {
		return fallback - 1
	}
	return 0
}

func collectIDs(states []models.ContactState) []string {
	ids := make([]string, 0, len(states))
	for _, st := range states {
		ids = append(ids, st.ClientSideID)
	}
	return ids
}
