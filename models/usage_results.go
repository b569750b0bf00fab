// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FailureReason classifies why a session operation did not succeed.
type FailureReason string

const (
	// ReasonNone is set on successful results.
	ReasonNone FailureReason = ""
	// ReasonNoPriorOnlineLogin: offline login without any record. Recoverable
	// only by logging in online.
	ReasonNoPriorOnlineLogin FailureReason = "no_prior_online_login"
	// ReasonDataTampered: the record file is unreadable or malformed.
	ReasonDataTampered FailureReason = "data_tampered"
	// ReasonNoRecord: heartbeat without a readable record.
	ReasonNoRecord FailureReason = "no_record"
	// ReasonClockRetrogression: offline login with the clock earlier than the
	// last recorded touch.
	ReasonClockRetrogression FailureReason = "clock_retrogression"
	// ReasonClockManipulationDetected: heartbeat with the clock earlier than
	// the last recorded touch. The session must be terminated.
	ReasonClockManipulationDetected FailureReason = "clock_manipulation_detected"
	// ReasonOfflineLimitExceeded: the offline budget is consumed.
	ReasonOfflineLimitExceeded FailureReason = "offline_limit_exceeded"
)

// UsageStats is a snapshot of a usage record as presented to callers.
type UsageStats struct {
	FirstLoginDate           time.Time
	LastLoginDate            time.Time
	LastOnlineLoginDate      time.Time
	TotalOfflineHours        float64
	RemainingOfflineHours    float64
	IsCurrentlyOnline        bool
	CurrentSessionDuration   time.Duration
	TimeManipulationDetected bool
}

// NewUsageStats builds a [UsageStats] snapshot of record under limit.
// sessionDuration is supplied by the caller because it depends on the
// operation (zero right after an offline login).
func NewUsageStats(record UsageRecord, limit time.Duration, sessionDuration time.Duration) UsageStats {
	return UsageStats{
		FirstLoginDate:         record.FirstLogin,
		LastLoginDate:          record.LastLogin,
		LastOnlineLoginDate:    record.LastOnlineLogin,
		TotalOfflineHours:      record.TotalOfflineTime.Hours(),
		RemainingOfflineHours:  record.RemainingOfflineTime(limit).Hours(),
		IsCurrentlyOnline:      record.IsOnline,
		CurrentSessionDuration: sessionDuration,
	}
}

// LoginResult is returned by online and offline logins.
type LoginResult struct {
	Success               bool
	Reason                FailureReason
	IsFirstLogin          bool
	RemainingOfflineHours float64
	TotalOfflineHoursUsed float64
	Message               string

	// Stats is set on successful offline logins.
	Stats *UsageStats
}

// HeartbeatResult is returned by a heartbeat tick.
type HeartbeatResult struct {
	Success                   bool
	Reason                    FailureReason
	ClockManipulationDetected bool

	// DataTampered is set when the record could not be read back.
	DataTampered bool
	Message      string

	// Stats is set on successful heartbeats.
	Stats *UsageStats
}

// IsFatal reports whether the caller must terminate the session immediately
// rather than merely end it.
func (r HeartbeatResult) IsFatal() bool {
	return r.ClockManipulationDetected
}
