// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/models"
)

const usageEventsTable = "usage_events"

var usageEventColumns = []string{
	"id",
	"run_id",
	"identity",
	"operation",
	"success",
	"reason",
	"occurred_at",
}

// usageJournalRepository is the SQLite implementation of
// [JournalRepository].
type usageJournalRepository struct {
	*DB
	logger *logger.Logger
}

// NewUsageJournalRepository returns a [JournalRepository] backed by db. The
// schema must already be migrated.
func NewUsageJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &usageJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *usageJournalRepository) Append(ctx context.Context, event models.UsageEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(usageEventsTable).
		Columns(usageEventColumns...).
		Values(
			event.ID,
			event.RunID,
			event.Identity,
			string(event.Operation),
			event.Success,
			string(event.Reason),
			event.OccurredAt.UTC(),
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "usageJournalRepository.Append").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "usageJournalRepository.Append").
			Str("event_id", event.ID).
			Str("operation", string(event.Operation)).
			Msg("failed to insert usage event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *usageJournalRepository) Recent(ctx context.Context, identity string, limit uint64) ([]models.UsageEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(usageEventColumns...).
		From(usageEventsTable).
		Where(sq.Eq{"identity": identity}).
		OrderBy("occurred_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "usageJournalRepository.Recent").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "usageJournalRepository.Recent").Msg("failed to query usage events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var events []models.UsageEvent
	for rows.Next() {
		var (
			event     models.UsageEvent
			operation string
			reason    string
			occurred  time.Time
		)
		if err = rows.Scan(
			&event.ID,
			&event.RunID,
			&event.Identity,
			&operation,
			&event.Success,
			&reason,
			&occurred,
		); err != nil {
			log.Err(err).Str("func", "usageJournalRepository.Recent").Msg("failed to scan usage event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		event.Operation = models.Operation(operation)
		event.Reason = models.FailureReason(reason)
		event.OccurredAt = occurred.UTC()
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "usageJournalRepository.Recent").Msg("error iterating usage event rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// nopJournal drops every event. Used when no journal DSN is configured.
type nopJournal struct{}

// NewNopJournal returns a [JournalRepository] that stores nothing.
func NewNopJournal() JournalRepository {
	return nopJournal{}
}

func (nopJournal) Append(context.Context, models.UsageEvent) error { return nil }

func (nopJournal) Recent(context.Context, string, uint64) ([]models.UsageEvent, error) {
	return nil, nil
}
