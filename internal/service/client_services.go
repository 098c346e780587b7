package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	ContactService ClientContactService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	contactSvc := NewClientContactService(storages.ContactRepository, serverAdapter, logger)
	syncSvc := NewClientSyncService(storages.ContactRepository, serverAdapter, logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter),
		ContactService: contactSvc,
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, contactSvc),
	}
}
