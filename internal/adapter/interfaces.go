// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-contact-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrVersionConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-contact-keeper server. Implementations are responsible for
// serialisation, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken and returns the user value with the server-assigned UserID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Upload sends one or more locally created contacts to the server in a
	// single request.
	Upload(ctx context.Context, req models.UploadRequest) error

	// Download retrieves the full contact records identified by
	// req.ClientSideIDs from the server.
	Download(ctx context.Context, req models.DownloadRequest) ([]models.ContactRecord, error)

	// Update pushes a batch of optimistic-concurrency contact updates to the
	// server. Returns [ErrVersionConflict] (wrapped) if the server rejects an
	// entry whose base version is stale.
	Update(ctx context.Context, req models.UpdateRequest) error

	// Delete propagates local soft-deletions to the server. Returns
	// [ErrVersionConflict] (wrapped) on a version conflict.
	Delete(ctx context.Context, req models.DeleteRequest) error

	// Undelete propagates local restorations to the server. Returns
	// [ErrVersionConflict] (wrapped) on a version conflict.
	Undelete(ctx context.Context, req models.UndeleteRequest) error

	// GetServerStates fetches lightweight state descriptors
	// (ClientSideID, Version, Deleted, UpdatedAt) for all contacts owned by
	// the authenticated user. Used by the sync planner to compare server and
	// client state without downloading full records.
	GetServerStates(ctx context.Context) ([]models.ContactState, error)
}
