package store

import (
	"database/sql"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// DB wraps a database/sql handle together with the migration routine that
// matches its dialect. Both the SQLite-backed client store and the
// PostgreSQL-backed server store hand out this type.
type DB struct {
	*sql.DB
	logger  *logger.Logger
	migrate func(*sql.DB) error
}

func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}
