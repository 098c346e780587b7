// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestContactSvc — хелпер для создания clientContactService с моками
func newTestContactSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientContactService,
	*mock.MockLocalContactRepository,
	*mock.MockServerAdapter,
) {
	t.Helper()
	mockRepo := mock.NewMockLocalContactRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	svc := NewClientContactService(mockRepo, mockAdapter, logger.Nop()).(*clientContactService)
	svc.SetUser(7)

	return svc, mockRepo, mockAdapter
}

// collectEvents вычитывает фазовый поток операции до закрытия канала.
func collectEvents(t *testing.T, ch <-chan models.OperationEvent) []models.OperationEvent {
	t.Helper()
	var events []models.OperationEvent
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-time.After(2 * time.Second):
			t.Fatal("operation event stream did not complete")
		}
	}
}

// ── Upsert: создание ────────────────────────────────────────────────────────

func TestClientContactService_Create_FullLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	var createdID string
	mockRepo.EXPECT().
		SaveContacts(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, records ...models.ContactRecord) error {
			require.Len(t, records, 1)
			require.NotEmpty(t, records[0].ClientSideID) // новый UUID присвоен
			assert.Equal(t, models.StatusCreatedLocal, records[0].Status)
			assert.Equal(t, int64(1), records[0].Version)
			createdID = records[0].ClientSideID
			return nil
		})
	mockAdapter.EXPECT().Upload(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().SetStatus(ctx, gomock.Any(), userID, models.StatusClean).Return(nil)
	mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(nil, nil)

	events := collectEvents(t, svc.Upsert(ctx, "", models.Contact{LastName: "Smith"}))

	require.Len(t, events, 3)
	assert.Equal(t, models.PhaseStarted, events[0].Phase)
	assert.Equal(t, models.OpCreate, events[0].Kind)

	require.Equal(t, models.PhaseSucceeded, events[1].Phase)
	require.NotNil(t, events[1].Record)
	assert.Equal(t, createdID, events[1].Record.ClientSideID)
	assert.Equal(t, models.StatusClean, events[1].Record.Status)

	assert.Equal(t, models.PhaseFinished, events[2].Phase)
	assert.NoError(t, events[2].Err)
}

func TestClientContactService_Create_ServerUnreachable_StaysStaged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	mockRepo.EXPECT().SaveContacts(ctx, userID, gomock.Any()).Return(nil)
	mockAdapter.EXPECT().Upload(ctx, gomock.Any()).Return(errors.New("connection refused"))
	mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(nil, nil)

	events := collectEvents(t, svc.Upsert(ctx, "", models.Contact{LastName: "Офлайн"}))

	// Недоступный сервер — не ошибка операции: запись остаётся staged
	require.Len(t, events, 3)
	require.Equal(t, models.PhaseSucceeded, events[1].Phase)
	assert.Equal(t, models.StatusCreatedLocal, events[1].Record.Status)
	assert.NoError(t, events[2].Err)
}

func TestClientContactService_Create_LocalStoreFailure_Fatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestContactSvc(t, ctrl)
	ctx := context.Background()

	wantErr := errors.New("disk full")
	mockRepo.EXPECT().SaveContacts(ctx, int64(7), gomock.Any()).Return(wantErr)

	events := collectEvents(t, svc.Upsert(ctx, "", models.Contact{LastName: "Smith"}))

	// Локальный сбой терминален: Succeeded нет, Finished несёт ошибку
	require.Len(t, events, 2)
	assert.Equal(t, models.PhaseStarted, events[0].Phase)
	require.Equal(t, models.PhaseFinished, events[1].Phase)
	require.ErrorIs(t, events[1].Err, wantErr)
}

func TestClientContactService_NoActiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestContactSvc(t, ctrl)
	svc.SetUser(0)

	events := collectEvents(t, svc.Upsert(context.Background(), "", models.Contact{LastName: "Smith"}))

	require.Len(t, events, 2)
	require.Equal(t, models.PhaseFinished, events[1].Phase)
	require.ErrorIs(t, events[1].Err, ErrNoActiveUser)
}

// ── Upsert: обновление ──────────────────────────────────────────────────────

func TestClientContactService_Update_ServerAck_BumpsVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	prev := models.ContactRecord{
		ClientSideID: "c-1", UserID: userID, Version: 2,
		Contact: models.Contact{LastName: "Old"}, Status: models.StatusClean,
	}
	mockRepo.EXPECT().GetContact(ctx, "c-1", userID).Return(prev, nil)
	mockRepo.EXPECT().
		UpdateContact(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.ContactRecord) error {
			assert.Equal(t, "New", record.Contact.LastName)
			assert.Equal(t, models.StatusUpdatedLocal, record.Status)
			return nil
		})
	mockAdapter.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpdateRequest) error {
			require.Len(t, req.Updates, 1)
			assert.Equal(t, int64(2), req.Updates[0].Version) // базовая версия
			return nil
		})
	mockRepo.EXPECT().IncrementVersion(ctx, "c-1", userID).Return(nil)
	mockRepo.EXPECT().SetStatus(ctx, "c-1", userID, models.StatusClean).Return(nil)
	mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(nil, nil)

	events := collectEvents(t, svc.Upsert(ctx, "c-1", models.Contact{LastName: "New"}))

	require.Len(t, events, 3)
	require.Equal(t, models.PhaseSucceeded, events[1].Phase)
	assert.Equal(t, models.OpUpdate, events[1].Kind)
	assert.Equal(t, int64(3), events[1].Record.Version)
	assert.Equal(t, models.StatusClean, events[1].Record.Status)
}

// ── Delete / Undelete ───────────────────────────────────────────────────────

func TestClientContactService_Delete_NeverUploaded_PurgesOutright(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	prev := models.ContactRecord{ClientSideID: "draft", UserID: userID, Version: 1, Status: models.StatusCreatedLocal}
	mockRepo.EXPECT().GetContact(ctx, "draft", userID).Return(prev, nil)
	mockRepo.EXPECT().RemoveContact(ctx, "draft", userID).Return(nil)
	mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(nil, nil)

	events := collectEvents(t, svc.Delete(ctx, "draft"))

	require.Len(t, events, 3)
	require.Equal(t, models.PhaseSucceeded, events[1].Phase)
	assert.Nil(t, events[1].Record) // запись вычищена целиком
	assert.NoError(t, events[2].Err)
}

func TestClientContactService_Delete_ServerAck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	prev := models.ContactRecord{ClientSideID: "c-2", UserID: userID, Version: 3, Status: models.StatusClean}
	mockRepo.EXPECT().GetContact(ctx, "c-2", userID).Return(prev, nil)
	mockRepo.EXPECT().MarkDeleted(ctx, "c-2", userID, models.StatusDeletedLocal).Return(nil)
	mockAdapter.EXPECT().Delete(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().IncrementVersion(ctx, "c-2", userID).Return(nil)
	mockRepo.EXPECT().SetStatus(ctx, "c-2", userID, models.StatusClean).Return(nil)
	mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(nil, nil)

	events := collectEvents(t, svc.Delete(ctx, "c-2"))

	require.Len(t, events, 3)
	require.Equal(t, models.PhaseSucceeded, events[1].Phase)
	require.NotNil(t, events[1].Record)
	assert.True(t, events[1].Record.Deleted)
	assert.Equal(t, models.StatusClean, events[1].Record.Status)
}

func TestClientContactService_Delete_ServerRejects_MarksDeleteFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	prev := models.ContactRecord{ClientSideID: "c-3", UserID: userID, Version: 2, Status: models.StatusClean}
	mockRepo.EXPECT().GetContact(ctx, "c-3", userID).Return(prev, nil)
	mockRepo.EXPECT().MarkDeleted(ctx, "c-3", userID, models.StatusDeletedLocal).Return(nil)
	mockAdapter.EXPECT().Delete(ctx, gomock.Any()).Return(errors.New("409 conflict"))
	mockRepo.EXPECT().SetStatus(ctx, "c-3", userID, models.StatusDeleteFailed).Return(nil)
	mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(nil, nil)

	events := collectEvents(t, svc.Delete(ctx, "c-3"))

	require.Len(t, events, 3)
	require.Equal(t, models.PhaseSucceeded, events[1].Phase)
	assert.Equal(t, models.StatusDeleteFailed, events[1].Record.Status)
	assert.NoError(t, events[2].Err)
}

func TestClientContactService_Undelete_RestoresRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	prev := models.ContactRecord{ClientSideID: "c-4", UserID: userID, Version: 5, Deleted: true, Status: models.StatusDeletedLocal}
	mockRepo.EXPECT().GetContact(ctx, "c-4", userID).Return(prev, nil)
	mockRepo.EXPECT().Restore(ctx, "c-4", userID, models.StatusUpdatedLocal).Return(nil)
	mockAdapter.EXPECT().Undelete(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().IncrementVersion(ctx, "c-4", userID).Return(nil)
	mockRepo.EXPECT().SetStatus(ctx, "c-4", userID, models.StatusClean).Return(nil)
	mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(nil, nil)

	events := collectEvents(t, svc.Undelete(ctx, "c-4"))

	require.Len(t, events, 3)
	assert.Equal(t, models.OpUndelete, events[0].Kind)
	require.Equal(t, models.PhaseSucceeded, events[1].Phase)
	assert.False(t, events[1].Record.Deleted)
	assert.Equal(t, int64(6), events[1].Record.Version)
}

// ── Snapshots ───────────────────────────────────────────────────────────────

func TestClientContactService_Snapshots_SubscriberPrimedWithLastSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	records := []models.ContactRecord{
		{ClientSideID: "a", UserID: userID, Contact: models.Contact{LastName: "Иванов"}, Status: models.StatusClean},
		{ClientSideID: "b", UserID: userID, Contact: models.Contact{LastName: "Петров"}, Status: models.StatusUpdatedLocal},
	}
	mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(records, nil)

	require.NoError(t, svc.RefreshSnapshots(ctx))

	// Подписчик, пришедший после публикации, сразу получает последний набор
	ch := svc.Snapshots()
	select {
	case set := <-ch:
		require.Len(t, set, 2)
		assert.Equal(t, models.StatusUpdatedLocal, set["b"].Status)
		assert.Equal(t, "Иванов", set["a"].Record.Contact.LastName)
	case <-time.After(time.Second):
		t.Fatal("subscriber was not primed with the last snapshot set")
	}
}

func TestClientContactService_Snapshots_SlowSubscriberSeesOnlyLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(7)

	ch := svc.Snapshots()

	first := []models.ContactRecord{{ClientSideID: "a", UserID: userID}}
	second := []models.ContactRecord{{ClientSideID: "a", UserID: userID}, {ClientSideID: "b", UserID: userID}}
	gomock.InOrder(
		mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(first, nil),
		mockRepo.EXPECT().GetAllContacts(ctx, userID).Return(second, nil),
	)

	require.NoError(t, svc.RefreshSnapshots(ctx))
	require.NoError(t, svc.RefreshSnapshots(ctx))

	// Медленный подписчик видит только последний набор
	set := <-ch
	require.Len(t, set, 2)
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot set: %v", extra)
	default:
	}
}
