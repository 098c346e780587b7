// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// countingSyncService считает вызовы FullSync.
type countingSyncService struct {
	calls atomic.Int64
	err   error
}

func (c *countingSyncService) FullSync(_ context.Context, _ int64) error {
	c.calls.Add(1)
	return c.err
}

func (c *countingSyncService) ExecutePlan(_ context.Context, _ int64, _ models.SyncPlan) error {
	return nil
}

// countingContactService считает рассылки снапшотов; остальные методы не используются.
type countingContactService struct {
	ClientContactService
	refreshes atomic.Int64
}

func (c *countingContactService) RefreshSnapshots(_ context.Context) error {
	c.refreshes.Add(1)
	return nil
}

func TestClientSyncJob_StartTicksAndStops(t *testing.T) {
	syncSvc := &countingSyncService{}
	contactSvc := &countingContactService{}
	job := NewClientSyncJob(syncSvc, contactSvc)

	job.Start(context.Background(), 1, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return syncSvc.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond, "sync job did not tick")

	job.Stop()
	calls := syncSvc.calls.Load()

	// После Stop новых тиков быть не должно
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, syncSvc.calls.Load())

	// Каждый успешный проход рассылает свежий набор снапшотов
	assert.Equal(t, calls, contactSvc.refreshes.Load())
}

func TestClientSyncJob_FailedSyncSkipsSnapshotRefresh(t *testing.T) {
	syncSvc := &countingSyncService{err: errors.New("server down")}
	contactSvc := &countingContactService{}
	job := NewClientSyncJob(syncSvc, contactSvc)

	job.Start(context.Background(), 1, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return syncSvc.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	assert.Zero(t, contactSvc.refreshes.Load())
}

func TestClientSyncJob_StopWithoutStartIsNoop(t *testing.T) {
	job := NewClientSyncJob(&countingSyncService{}, &countingContactService{})
	job.Stop() // не должно паниковать и блокироваться
}

func TestClientSyncJob_RestartStopsPreviousRun(t *testing.T) {
	syncSvc := &countingSyncService{}
	contactSvc := &countingContactService{}
	job := NewClientSyncJob(syncSvc, contactSvc)

	job.Start(context.Background(), 1, 10*time.Millisecond)
	job.Start(context.Background(), 2, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return syncSvc.calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	job.Stop()
}
