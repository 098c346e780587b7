package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Storages groups the server-side repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

// NewStorages connects to PostgreSQL, runs pending schema migrations, and
// wires up the server repositories.
func NewStorages(cfg config.StorageConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
	}, nil
}
