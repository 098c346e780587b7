// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubPlanner — простой мок SyncService, не требует mockgen (избегаем цикл импортов).
type stubPlanner struct {
	plan models.SyncPlan
	err  error
}

func (s *stubPlanner) BuildSyncPlan(_ context.Context, _, _ []models.ContactState) (models.SyncPlan, error) {
	return s.plan, s.err
}

// newTestSyncSvc — хелпер для создания clientSyncService с моками
func newTestSyncSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientSyncService,
	*mock.MockLocalContactRepository,
	*mock.MockServerAdapter,
	*stubPlanner,
) {
	t.Helper()
	mockRepo := mock.NewMockLocalContactRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	planner := &stubPlanner{}

	svc := NewClientSyncService(mockRepo, mockAdapter, logger.Nop()).(*clientSyncService)
	svc.planner = planner

	return svc, mockRepo, mockAdapter, planner
}

// ── FullSync ─────────────────────────────────────────────────────────────────

func TestClientSyncService_FullSync_EmptyPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, planner := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(1)

	serverStates := []models.ContactState{{ClientSideID: "s1", Version: 1}}
	clientStates := []models.ContactState{{ClientSideID: "s1", Version: 1}}

	mockAdapter.EXPECT().GetServerStates(ctx).Return(serverStates, nil)
	mockRepo.EXPECT().GetAllStates(ctx, userID).Return(clientStates, nil)
	planner.plan = models.SyncPlan{} // пустой план — всё синхронизировано

	err := svc.FullSync(ctx, userID)
	require.NoError(t, err)
}

func TestClientSyncService_FullSync_DownloadAndUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, planner := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(1)

	// Сервер: есть «new-on-server», нет «new-on-client»
	// Клиент: нет «new-on-server», есть «new-on-client»
	serverStates := []models.ContactState{
		{ClientSideID: "new-on-server", Version: 2},
	}
	clientStates := []models.ContactState{
		{ClientSideID: "new-on-client", Version: 1, Status: models.StatusCreatedLocal},
	}

	// Planner решает: скачать серверный, загрузить клиентский
	planner.plan = models.SyncPlan{
		Download: []models.ContactState{{ClientSideID: "new-on-server"}},
		Upload:   []models.ContactState{{ClientSideID: "new-on-client"}},
	}

	mockAdapter.EXPECT().GetServerStates(ctx).Return(serverStates, nil)
	mockRepo.EXPECT().GetAllStates(ctx, userID).Return(clientStates, nil)

	// Download: скачанная запись сохраняется локально со статусом clean
	downloaded := []models.ContactRecord{{ClientSideID: "new-on-server", UserID: userID, Status: models.StatusUpdatedLocal}}
	mockAdapter.EXPECT().Download(ctx, gomock.Any()).Return(downloaded, nil)
	mockRepo.EXPECT().
		SaveContacts(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, records ...models.ContactRecord) error {
			require.Len(t, records, 1)
			assert.Equal(t, models.StatusClean, records[0].Status)
			return nil
		})

	// Upload
	localRecord := models.ContactRecord{ClientSideID: "new-on-client", UserID: userID, Version: 1}
	mockRepo.EXPECT().GetContact(ctx, "new-on-client", userID).Return(localRecord, nil)
	mockAdapter.EXPECT().Upload(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().SetStatus(ctx, "new-on-client", userID, models.StatusClean).Return(nil)

	err := svc.FullSync(ctx, userID)
	require.NoError(t, err)
}

func TestClientSyncService_FullSync_UpdateAndDeleteClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, planner := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(1)

	// Клиент опередил сервер по «edited», а сервер пометил «removed» удалённым
	serverStates := []models.ContactState{
		{ClientSideID: "edited", Version: 3},
		{ClientSideID: "removed", Version: 4, Deleted: true},
	}
	clientStates := []models.ContactState{
		{ClientSideID: "edited", Version: 4, Status: models.StatusUpdatedLocal},
		{ClientSideID: "removed", Version: 3},
	}

	planner.plan = models.SyncPlan{
		Update:       []models.ContactState{{ClientSideID: "edited"}},
		DeleteClient: []models.ContactState{{ClientSideID: "removed", Version: 4}},
	}

	mockAdapter.EXPECT().GetServerStates(ctx).Return(serverStates, nil)
	mockRepo.EXPECT().GetAllStates(ctx, userID).Return(clientStates, nil)

	// Update: базовая версия берётся из серверного состояния (3)
	mockRepo.EXPECT().GetContact(ctx, "edited", userID).Return(models.ContactRecord{
		ClientSideID: "edited", UserID: userID, Version: 4,
		Contact: models.Contact{LastName: "Иванов"},
	}, nil)
	mockAdapter.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpdateRequest) error {
			require.Len(t, req.Updates, 1)
			assert.Equal(t, int64(3), req.Updates[0].Version)
			return nil
		})
	mockRepo.EXPECT().SetStatus(ctx, "edited", userID, models.StatusClean).Return(nil)

	// DeleteClient: сервер удалил запись — помечаем локально удалённой
	mockRepo.EXPECT().MarkDeleted(ctx, "removed", userID, models.StatusClean).Return(nil)

	err := svc.FullSync(ctx, userID)
	require.NoError(t, err)
}

func TestClientSyncService_FullSync_ServerStatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	wantErr := errors.New("network down")
	mockAdapter.EXPECT().GetServerStates(ctx).Return(nil, wantErr)

	err := svc.FullSync(ctx, 1)
	require.ErrorIs(t, err, wantErr)
}

// ── ExecutePlan: конфликты версий ───────────────────────────────────────────

func TestClientSyncService_ExecutePlan_UpdateConflict_RefreshesFromServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(1)

	plan := models.SyncPlan{Update: []models.ContactState{{ClientSideID: "conflicted"}}}

	mockRepo.EXPECT().GetContact(ctx, "conflicted", userID).Return(models.ContactRecord{
		ClientSideID: "conflicted", UserID: userID, Version: 2,
	}, nil)
	mockAdapter.EXPECT().Update(ctx, gomock.Any()).Return(adapter.ErrVersionConflict)

	// Конфликт: скачиваем серверную копию и перезаписываем локальную
	serverCopy := []models.ContactRecord{{ClientSideID: "conflicted", UserID: userID, Version: 5}}
	mockAdapter.EXPECT().Download(ctx, gomock.Any()).Return(serverCopy, nil)
	mockRepo.EXPECT().SaveContacts(ctx, userID, gomock.Any()).Return(nil)

	err := svc.ExecutePlan(ctx, userID, plan)
	require.NoError(t, err)
}

func TestClientSyncService_ExecutePlan_DeleteConflict_MarksDeleteFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(1)

	plan := models.SyncPlan{DeleteServer: []models.ContactState{{ClientSideID: "stale-delete"}}}

	mockRepo.EXPECT().GetContact(ctx, "stale-delete", userID).Return(models.ContactRecord{
		ClientSideID: "stale-delete", UserID: userID, Version: 2, Deleted: true,
	}, nil)
	mockAdapter.EXPECT().Delete(ctx, gomock.Any()).Return(adapter.ErrVersionConflict)

	// Отклонённое удаление остаётся локально со статусом delete_failed
	mockRepo.EXPECT().SetStatus(ctx, "stale-delete", userID, models.StatusDeleteFailed).Return(nil)

	err := svc.ExecutePlan(ctx, userID, plan)
	require.NoError(t, err)
}

func TestClientSyncService_ExecutePlan_UploadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(1)

	plan := models.SyncPlan{Upload: []models.ContactState{{ClientSideID: "fresh"}}}

	mockRepo.EXPECT().GetContact(ctx, "fresh", userID).Return(models.ContactRecord{ClientSideID: "fresh"}, nil)
	wantErr := errors.New("server down")
	mockAdapter.EXPECT().Upload(ctx, gomock.Any()).Return(wantErr)

	err := svc.ExecutePlan(ctx, userID, plan)
	require.ErrorIs(t, err, wantErr)
}
