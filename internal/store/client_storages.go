package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-offline-keeper/internal/config"
	"github.com/MKhiriev/go-offline-keeper/internal/crypto"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// UsageStore keeps the encrypted usage records.
	UsageStore UsageStore

	// Journal is the SQLite event journal, or a no-op journal when disabled.
	Journal JournalRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Creates the record directory and the [UsageStore] on top of it.
//  2. If a journal DSN is configured, opens the SQLite journal, creating the
//     database file if it does not yet exist, and runs pending migrations.
//
// Returns an error if the directory cannot be created, the database
// connection cannot be established or migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, keyChain crypto.KeyChainService, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	usageStore, err := NewUsageFileStorage(cfg.Dir, keyChain, logger)
	if err != nil {
		return nil, fmt.Errorf("usage store error: %w", err)
	}

	storages := &ClientStorages{
		UsageStore: usageStore,
		Journal:    NewNopJournal(),
	}
	if cfg.JournalDSN == "" {
		logger.Info().Msg("usage journal disabled")
		return storages, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.JournalDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages.db = db
	storages.Journal = NewUsageJournalRepository(db, logger)

	return storages, nil
}

// Close releases the journal database, if one is open.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
