// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-offline-keeper/internal/crypto"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/utils"
	"github.com/MKhiriev/go-offline-keeper/internal/validators"
	"github.com/MKhiriev/go-offline-keeper/models"
)

const (
	recordFilePerm = 0o600
	storageDirPerm = 0o700

	// defaultLockTimeout bounds how long Lock waits for another process.
	defaultLockTimeout = 5 * time.Second
	lockRetryInterval  = 50 * time.Millisecond
)

// usageFileStorage keeps one encrypted record file per identity in dir.
type usageFileStorage struct {
	dir         string
	keyChain    crypto.KeyChainService
	validator   validators.Validator
	logger      *logger.Logger
	lockTimeout time.Duration
}

// NewUsageFileStorage creates dir (0700) if it does not exist and returns a
// [UsageStore] keeping its record files there.
func NewUsageFileStorage(dir string, keyChain crypto.KeyChainService, log *logger.Logger) (UsageStore, error) {
	if dir == "" {
		return nil, ErrEmptyStorageDir
	}

	if err := os.MkdirAll(dir, storageDirPerm); err != nil {
		log.Err(err).Str("func", "NewUsageFileStorage").Str("dir", dir).Msg("error creating storage directory")
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	if err := markHidden(dir); err != nil {
		// cosmetic, the store works without it
		log.Warn().Err(err).Str("func", "NewUsageFileStorage").Str("dir", dir).Msg("could not hide storage directory")
	}

	return &usageFileStorage{
		dir:         dir,
		keyChain:    keyChain,
		validator:   validators.NewUsageValidator(),
		logger:      log,
		lockTimeout: defaultLockTimeout,
	}, nil
}

func (s *usageFileStorage) Identity(cred models.Credential) string {
	return IdentityHash(cred)
}

// recordPath is the on-disk location of the record file of cred.
func (s *usageFileStorage) recordPath(cred models.Credential) string {
	return filepath.Join(s.dir, hiddenName(IdentityFileName(cred)))
}

func (s *usageFileStorage) Load(ctx context.Context, cred models.Credential) (models.UsageRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.UsageRecord{}, err
	}

	path := s.recordPath(cred)
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.UsageRecord{}, ErrRecordMissing
		}
		s.logger.Err(err).Str("func", "usageFileStorage.Load").Str("identity", s.Identity(cred)).Msg("error reading record file")
		return models.UsageRecord{}, fmt.Errorf("read record file: %w", err)
	}

	if len(blob) < crypto.SaltSize+crypto.IVSize+crypto.TagSize {
		return models.UsageRecord{}, fmt.Errorf("%w: file is %d bytes", ErrRecordCorrupted, len(blob))
	}

	// key derivation is the expensive part, give cancellation a last chance
	if err = ctx.Err(); err != nil {
		return models.UsageRecord{}, err
	}

	salt, sealed := blob[:crypto.SaltSize], blob[crypto.SaltSize:]
	keys := s.keyChain.DeriveKeys(cred.String(), salt)

	plaintext, err := s.keyChain.Open(keys, salt, sealed)
	if err != nil {
		return models.UsageRecord{}, fmt.Errorf("%w: %w", ErrRecordCorrupted, err)
	}

	record, err := decodeRecord(plaintext)
	if err != nil {
		return models.UsageRecord{}, err
	}
	if err = s.validator.Validate(ctx, record); err != nil {
		return models.UsageRecord{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return record, nil
}

func (s *usageFileStorage) Save(ctx context.Context, cred models.Credential, record models.UsageRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := encodeRecord(record)
	if err != nil {
		s.logger.Err(err).Str("func", "usageFileStorage.Save").Msg("error encoding record")
		return fmt.Errorf("encode record: %w", err)
	}

	salt, err := s.keyChain.GenerateSalt()
	if err != nil {
		s.logger.Err(err).Str("func", "usageFileStorage.Save").Msg("error generating salt")
		return fmt.Errorf("generate salt: %w", err)
	}

	keys := s.keyChain.DeriveKeys(cred.String(), salt)
	sealed, err := s.keyChain.Seal(keys, salt, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "usageFileStorage.Save").Msg("error encrypting record")
		return fmt.Errorf("encrypt record: %w", err)
	}

	blob := make([]byte, 0, len(salt)+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, sealed...)

	path := s.recordPath(cred)
	if err = prepareReplace(path); err != nil {
		s.logger.Err(err).Str("func", "usageFileStorage.Save").Str("identity", s.Identity(cred)).Msg("error clearing file attributes")
		return fmt.Errorf("prepare record file: %w", err)
	}
	if err = utils.WriteFileAtomic(path, blob, recordFilePerm); err != nil {
		s.logger.Err(err).Str("func", "usageFileStorage.Save").Str("identity", s.Identity(cred)).Msg("error writing record file")
		return fmt.Errorf("write record file: %w", err)
	}
	if err = markHidden(path); err != nil {
		s.logger.Warn().Err(err).Str("func", "usageFileStorage.Save").Str("identity", s.Identity(cred)).Msg("could not hide record file")
	}

	return nil
}

func (s *usageFileStorage) Lock(ctx context.Context, cred models.Credential) (func(), error) {
	path := s.recordPath(cred) + ".lock"

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, recordFilePerm)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	deadline := time.Now().Add(s.lockTimeout)
	for {
		locked, err := tryLockFile(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("lock record file: %w", err)
		}
		if locked {
			break
		}
		if time.Now().After(deadline) {
			f.Close()
			return nil, ErrStoreBusy
		}

		select {
		case <-ctx.Done():
			f.Close()
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	return func() {
		if err := unlockFile(f); err != nil {
			s.logger.Warn().Err(err).Str("func", "usageFileStorage.Lock").Msg("error releasing record lock")
		}
		f.Close()
	}, nil
}
