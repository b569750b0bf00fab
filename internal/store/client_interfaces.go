package store

import (
	"context"

	"github.com/MKhiriev/go-offline-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// UsageStore is the secure state store: one encrypted usage record file per
// credential identity.
type UsageStore interface {
	// Load reads and decrypts the record of cred. Outcomes other than success
	// are reported through sentinel errors:
	//   - [ErrRecordMissing]   no file exists (never logged in online);
	//   - [ErrRecordCorrupted] file too short, wrong credential or tampered bytes;
	//   - [ErrInvalidPayload]  decrypted bytes do not decode into a record.
	// Any other error is an I/O failure.
	Load(ctx context.Context, cred models.Credential) (models.UsageRecord, error)

	// Save encrypts record under a fresh salt and atomically replaces the
	// file of cred.
	Save(ctx context.Context, cred models.Credential, record models.UsageRecord) error

	// Lock takes the advisory lock guarding a Load+Save pair for cred. The
	// returned func releases it.
	Lock(ctx context.Context, cred models.Credential) (unlock func(), err error)

	// Identity returns the identity hash of cred: the record file name
	// without decoration. Safe to log.
	Identity(cred models.Credential) string
}

// JournalRepository is the append-only local log of session operation
// outcomes.
type JournalRepository interface {
	// Append stores one event.
	Append(ctx context.Context, event models.UsageEvent) error

	// Recent returns up to limit latest events of identity, newest first.
	Recent(ctx context.Context, identity string, limit uint64) ([]models.UsageEvent, error)
}
