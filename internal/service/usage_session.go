// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-offline-keeper/internal/app"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/store"
	"github.com/MKhiriev/go-offline-keeper/internal/utils"
	"github.com/MKhiriev/go-offline-keeper/models"
)

type usageSessionService struct {
	store   store.UsageStore
	journal store.JournalRepository
	logger  *logger.Logger
	ids     *utils.UUIDGenerator

	now        func() time.Time
	maxOffline time.Duration
}

// NewUsageSessionService returns a [UsageSessionService] persisting records
// in usageStore. Without options it uses the wall clock, a one hour offline
// budget, no journal and a no-op logger.
func NewUsageSessionService(usageStore store.UsageStore, opts ...Option) UsageSessionService {
	s := &usageSessionService{
		store:      usageStore,
		journal:    store.NewNopJournal(),
		logger:     logger.Nop(),
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		maxOffline: models.DefaultMaxOfflineTime,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *usageSessionService) MaxOfflineTime() time.Duration {
	return s.maxOffline
}

func (s *usageSessionService) ProcessOnlineLogin(ctx context.Context, cred models.Credential) (models.LoginResult, error) {
	now, err := s.clock()
	if err != nil {
		return models.LoginResult{}, err
	}

	unlock, err := s.lock(ctx, cred)
	if err != nil {
		return models.LoginResult{}, err
	}
	defer unlock()

	identity := s.store.Identity(cred)

	var (
		next       models.UsageRecord
		firstLogin bool
	)
	current, err := s.store.Load(ctx, cred)
	switch {
	case err == nil:
		next = current.WithOnlineLogin(now)
	case errors.Is(err, store.ErrRecordMissing):
		firstLogin = true
		next = models.NewUsageRecord(now)
	case isUnreadable(err):
		// going online is the recovery path, the unreadable file is overwritten
		s.logger.Warn().Err(err).
			Str("func", "usageSessionService.ProcessOnlineLogin").
			Str("identity", identity).
			Msg("unreadable usage record replaced by online login")
		next = models.NewUsageRecord(now)
	default:
		return models.LoginResult{}, s.loadFailed("usageSessionService.ProcessOnlineLogin", identity, err)
	}

	if err = s.save(ctx, cred, next); err != nil {
		return models.LoginResult{}, err
	}

	result := models.LoginResult{
		Success:               true,
		IsFirstLogin:          firstLogin,
		RemainingOfflineHours: s.maxOffline.Hours(),
		TotalOfflineHoursUsed: 0,
		Message:               fmt.Sprintf(app.MsgOnlineLoginFmt, s.maxOffline.Hours()),
	}
	if firstLogin {
		result.Message = fmt.Sprintf(app.MsgFirstLoginFmt, s.maxOffline.Hours())
	}

	s.logger.Info().
		Str("identity", identity).
		Bool("first_login", firstLogin).
		Msg("online login processed")
	s.appendEvent(ctx, identity, models.OperationOnlineLogin, true, models.ReasonNone, now)

	return result, nil
}

func (s *usageSessionService) ProcessOfflineLogin(ctx context.Context, cred models.Credential) (models.LoginResult, error) {
	now, err := s.clock()
	if err != nil {
		return models.LoginResult{}, err
	}

	unlock, err := s.lock(ctx, cred)
	if err != nil {
		return models.LoginResult{}, err
	}
	defer unlock()

	identity := s.store.Identity(cred)

	current, err := s.store.Load(ctx, cred)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrRecordMissing):
		return s.offlineLoginFailed(ctx, identity, now, models.LoginResult{
			Reason:  models.ReasonNoPriorOnlineLogin,
			Message: app.MsgFirstLoginMustBeOnline,
		}, 0), nil
	case isUnreadable(err):
		s.logger.Warn().Err(err).
			Str("func", "usageSessionService.ProcessOfflineLogin").
			Str("identity", identity).
			Msg("usage record is unreadable")
		return s.offlineLoginFailed(ctx, identity, now, models.LoginResult{
			Reason:  models.ReasonDataTampered,
			Message: app.MsgDataTamperedOffline,
		}, 0), nil
	default:
		return models.LoginResult{}, s.loadFailed("usageSessionService.ProcessOfflineLogin", identity, err)
	}

	total := current.TotalOfflineTime

	if now.Before(current.LastLogin) {
		return s.offlineLoginFailed(ctx, identity, now, models.LoginResult{
			Reason:                models.ReasonClockRetrogression,
			TotalOfflineHoursUsed: total.Hours(),
			RemainingOfflineHours: current.RemainingOfflineTime(s.maxOffline).Hours(),
			Message:               app.MsgClockRetrogression,
		}, total), nil
	}

	if current.IsExhausted(s.maxOffline) {
		return s.offlineLoginFailed(ctx, identity, now, models.LoginResult{
			Reason:                models.ReasonOfflineLimitExceeded,
			TotalOfflineHoursUsed: total.Hours(),
			RemainingOfflineHours: 0,
			Message:               fmt.Sprintf(app.MsgOfflineLimitExceededFmt, total.Hours()),
		}, total), nil
	}

	next := current.WithOfflineLogin(now)
	if err = s.save(ctx, cred, next); err != nil {
		return models.LoginResult{}, err
	}

	remaining := next.RemainingOfflineTime(s.maxOffline).Hours()
	stats := models.NewUsageStats(next, s.maxOffline, 0)

	s.logger.Info().
		Str("identity", identity).
		Dur("total_offline", total).
		Float64("remaining_hours", remaining).
		Msg("offline session started")
	s.appendEvent(ctx, identity, models.OperationOfflineLogin, true, models.ReasonNone, now)

	return models.LoginResult{
		Success:               true,
		RemainingOfflineHours: remaining,
		TotalOfflineHoursUsed: total.Hours(),
		Message:               fmt.Sprintf(app.MsgOfflineLoginFmt, remaining),
		Stats:                 &stats,
	}, nil
}

func (s *usageSessionService) UpdateHeartbeat(ctx context.Context, cred models.Credential) (models.HeartbeatResult, error) {
	now, err := s.clock()
	if err != nil {
		return models.HeartbeatResult{}, err
	}

	unlock, err := s.lock(ctx, cred)
	if err != nil {
		return models.HeartbeatResult{}, err
	}
	defer unlock()

	identity := s.store.Identity(cred)

	current, err := s.store.Load(ctx, cred)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrRecordMissing):
		return s.heartbeatFailed(ctx, identity, now, models.HeartbeatResult{
			Reason:  models.ReasonNoRecord,
			Message: app.MsgNoUserData,
		}, 0), nil
	case isUnreadable(err):
		s.logger.Warn().Err(err).
			Str("func", "usageSessionService.UpdateHeartbeat").
			Str("identity", identity).
			Msg("usage record is unreadable")
		return s.heartbeatFailed(ctx, identity, now, models.HeartbeatResult{
			Reason:       models.ReasonNoRecord,
			DataTampered: true,
			Message:      app.MsgDataTamperedHeartbeat,
		}, 0), nil
	default:
		return models.HeartbeatResult{}, s.loadFailed("usageSessionService.UpdateHeartbeat", identity, err)
	}

	if !current.IsOnline && now.Before(current.LastLogin) {
		// nothing is written, the next tick sees the same record
		return s.heartbeatFailed(ctx, identity, now, models.HeartbeatResult{
			Reason:                    models.ReasonClockManipulationDetected,
			ClockManipulationDetected: true,
			Message:                   app.MsgClockManipulation,
		}, current.TotalOfflineTime), nil
	}

	next := current.WithHeartbeat(now)
	if err = s.save(ctx, cred, next); err != nil {
		return models.HeartbeatResult{}, err
	}

	if !next.IsOnline && next.IsExhausted(s.maxOffline) {
		return s.heartbeatFailed(ctx, identity, now, models.HeartbeatResult{
			Reason:  models.ReasonOfflineLimitExceeded,
			Message: fmt.Sprintf(app.MsgOfflineLimitExceededFmt, next.TotalOfflineTime.Hours()),
		}, next.TotalOfflineTime), nil
	}

	var sessionDuration time.Duration
	if !next.IsOnline {
		sessionDuration = now.Sub(next.SessionStartTime)
	}
	stats := models.NewUsageStats(next, s.maxOffline, sessionDuration)

	s.logger.Debug().
		Str("identity", identity).
		Bool("online", next.IsOnline).
		Dur("total_offline", next.TotalOfflineTime).
		Msg("heartbeat updated")
	s.appendEvent(ctx, identity, models.OperationHeartbeat, true, models.ReasonNone, now)

	return models.HeartbeatResult{
		Success: true,
		Message: app.MsgHeartbeatUpdated,
		Stats:   &stats,
	}, nil
}

func (s *usageSessionService) RecentEvents(ctx context.Context, cred models.Credential, limit uint64) ([]models.UsageEvent, error) {
	events, err := s.journal.Recent(ctx, s.store.Identity(cred), limit)
	if err != nil {
		return nil, fmt.Errorf("recent usage events: %w", err)
	}
	return events, nil
}

func (s *usageSessionService) offlineLoginFailed(ctx context.Context, identity string, now time.Time, result models.LoginResult, total time.Duration) models.LoginResult {
	s.logger.Warn().
		Str("identity", identity).
		Str("reason", string(result.Reason)).
		Dur("total_offline", total).
		Msg("offline login refused")
	s.appendEvent(ctx, identity, models.OperationOfflineLogin, false, result.Reason, now)

	return result
}

func (s *usageSessionService) heartbeatFailed(ctx context.Context, identity string, now time.Time, result models.HeartbeatResult, total time.Duration) models.HeartbeatResult {
	event := s.logger.Warn()
	if result.IsFatal() {
		event = s.logger.Error()
	}
	event.
		Str("identity", identity).
		Str("reason", string(result.Reason)).
		Dur("total_offline", total).
		Msg("heartbeat failed")
	s.appendEvent(ctx, identity, models.OperationHeartbeat, false, result.Reason, now)

	return result
}

// clock reads the current time at record resolution. A reading that no
// record can hold is refused before any record is touched.
func (s *usageSessionService) clock() (time.Time, error) {
	raw := s.now()
	now, ok := models.NormalizeClock(raw)
	if !ok {
		s.logger.Error().Time("clock", raw).Msg("system clock is outside the supported range")
		return time.Time{}, fmt.Errorf("%w: %s", ErrClockOutOfRange, raw.UTC().Format(time.RFC3339))
	}
	return now, nil
}

func (s *usageSessionService) lock(ctx context.Context, cred models.Credential) (func(), error) {
	unlock, err := s.store.Lock(ctx, cred)
	if err != nil {
		s.logger.Err(err).Str("func", "usageSessionService.lock").Str("identity", s.store.Identity(cred)).Msg("error locking usage record")
		return nil, fmt.Errorf("%w: %w", ErrLockingRecord, err)
	}

	return unlock, nil
}

func (s *usageSessionService) save(ctx context.Context, cred models.Credential, record models.UsageRecord) error {
	if err := s.store.Save(ctx, cred, record); err != nil {
		s.logger.Err(err).Str("func", "usageSessionService.save").Str("identity", s.store.Identity(cred)).Msg("error saving usage record")
		return fmt.Errorf("%w: %w", ErrSavingRecord, err)
	}
	return nil
}

func (s *usageSessionService) loadFailed(funcName, identity string, err error) error {
	s.logger.Err(err).Str("func", funcName).Str("identity", identity).Msg("error loading usage record")
	return fmt.Errorf("%w: %w", ErrLoadingRecord, err)
}

// appendEvent journals an operation outcome. Journal failures never change
// the outcome.
func (s *usageSessionService) appendEvent(ctx context.Context, identity string, op models.Operation, success bool, reason models.FailureReason, at time.Time) {
	runID, _ := utils.GetRunIDFromContext(ctx)

	err := s.journal.Append(ctx, models.UsageEvent{
		ID:         s.ids.Generate(),
		RunID:      runID,
		Identity:   identity,
		Operation:  op,
		Success:    success,
		Reason:     reason,
		OccurredAt: at,
	})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "usageSessionService.appendEvent").
			Str("identity", identity).
			Str("operation", string(op)).
			Msg("failed to journal usage event")
	}
}

// isUnreadable reports whether err means the record exists but cannot be
// trusted.
func isUnreadable(err error) bool {
	return errors.Is(err, store.ErrRecordCorrupted) || errors.Is(err, store.ErrInvalidPayload)
}
