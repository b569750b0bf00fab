package service

import (
	"time"

	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/store"
)

// Option configures a [UsageSessionService].
type Option func(*usageSessionService)

// WithClock replaces the wall clock. Tests use it to move time freely.
func WithClock(now func() time.Time) Option {
	return func(s *usageSessionService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxOfflineTime sets the offline budget. Non-positive values are
// ignored.
func WithMaxOfflineTime(limit time.Duration) Option {
	return func(s *usageSessionService) {
		if limit > 0 {
			s.maxOffline = limit
		}
	}
}

// WithJournal makes the service record every operation outcome in journal.
func WithJournal(journal store.JournalRepository) Option {
	return func(s *usageSessionService) {
		if journal != nil {
			s.journal = journal
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *usageSessionService) {
		if log != nil {
			s.logger = log
		}
	}
}
