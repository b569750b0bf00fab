package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-offline-keeper/internal/config"
	"github.com/MKhiriev/go-offline-keeper/internal/crypto"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/models"
)

func TestNewClientStorages_WithJournal(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	storages, err := NewClientStorages(ctx, config.ClientStorage{
		Dir:        filepath.Join(dir, "records"),
		JournalDSN: filepath.Join(dir, "journal.db"),
	}, crypto.NewKeyChainService(1000), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	cred := models.NewCredential("alice", "pw")
	require.NoError(t, storages.UsageStore.Save(ctx, cred, models.NewUsageRecord(time.Now())))

	require.NoError(t, storages.Journal.Append(ctx, models.UsageEvent{
		ID:         "e1",
		Identity:   storages.UsageStore.Identity(cred),
		Operation:  models.OperationOnlineLogin,
		Success:    true,
		OccurredAt: time.Now(),
	}))

	events, err := storages.Journal.Recent(ctx, storages.UsageStore.Identity(cred), 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestNewClientStorages_JournalDisabled(t *testing.T) {
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{
		Dir: t.TempDir(),
	}, crypto.NewKeyChainService(1000), logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, nopJournal{}, storages.Journal)
	assert.NoError(t, storages.Close())
}

func TestNewClientStorages_EmptyDir(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.ClientStorage{}, crypto.NewKeyChainService(1000), logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyStorageDir)
}
