package store

import (
	"database/sql"

	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/migrations"
)

// DB wraps the journal connection pool.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending journal schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
