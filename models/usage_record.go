// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// DefaultMaxOfflineTime is the reference offline budget granted by every
// online login.
const DefaultMaxOfflineTime = time.Hour

// RecordResolution is the precision kept by persisted timestamps and
// durations.
const RecordResolution = 100 * time.Nanosecond

// MaxTotalOfflineTime is where offline accrual saturates.
const MaxTotalOfflineTime = time.Duration(math.MaxInt64 - math.MaxInt64%int64(RecordResolution))

// MaxRecordTime is the latest timestamp a record can hold. The earliest is
// the first tick after the zero time, which itself means "unset".
var MaxRecordTime = time.Date(9999, time.December, 31, 23, 59, 59, 999_999_900, time.UTC)

// NormalizeClock truncates t to [RecordResolution] in UTC. It reports false
// when the result cannot be stored in a record.
func NormalizeClock(t time.Time) (time.Time, bool) {
	t = t.UTC().Truncate(RecordResolution)
	if !t.After(time.Time{}) || t.After(MaxRecordTime) {
		return time.Time{}, false
	}
	return t, true
}

// UsageRecord is the persisted state of one identity. Values are treated as
// immutable snapshots: operations derive a new record instead of mutating a
// loaded one.
type UsageRecord struct {
	// FirstLogin is set once, at the first-ever online login.
	FirstLogin time.Time

	// LastLogin is the last time any operation touched the record. A value
	// later than the current clock means the clock was wound back.
	LastLogin time.Time

	// LastOnlineLogin is the time of the last successful online login.
	LastOnlineLogin time.Time

	// TotalOfflineTime is the offline time consumed since LastOnlineLogin.
	TotalOfflineTime time.Duration

	// IsOnline is true between an online login and the next offline login.
	IsOnline bool

	// SessionStartTime is the start of the current offline session. It is
	// meaningful only while IsOnline is false.
	SessionStartTime time.Time
}

// NewUsageRecord returns the record created by a first online login at now.
func NewUsageRecord(now time.Time) UsageRecord {
	return UsageRecord{
		FirstLogin:      now,
		LastLogin:       now,
		LastOnlineLogin: now,
		IsOnline:        true,
	}
}

// WithOnlineLogin returns a copy of r reset by an online login at now.
func (r UsageRecord) WithOnlineLogin(now time.Time) UsageRecord {
	r.LastLogin = now
	r.LastOnlineLogin = now
	r.TotalOfflineTime = 0
	r.IsOnline = true
	return r
}

// WithOfflineLogin returns a copy of r that starts an offline session at now.
func (r UsageRecord) WithOfflineLogin(now time.Time) UsageRecord {
	r.LastLogin = now
	r.SessionStartTime = now
	r.IsOnline = false
	return r
}

// WithHeartbeat returns a copy of r touched by a heartbeat at now. While
// offline the time elapsed since LastLogin is added to TotalOfflineTime,
// saturating at [MaxTotalOfflineTime]; the caller must reject a negative
// elapsed time before calling.
func (r UsageRecord) WithHeartbeat(now time.Time) UsageRecord {
	if !r.IsOnline {
		r.TotalOfflineTime = addOfflineTime(r.TotalOfflineTime, now.Sub(r.LastLogin))
	}
	r.LastLogin = now
	return r
}

func addOfflineTime(total, elapsed time.Duration) time.Duration {
	if elapsed >= MaxTotalOfflineTime-total {
		return MaxTotalOfflineTime
	}
	return total + elapsed
}

// RemainingOfflineTime returns how much of limit is left. It is negative once
// the budget has been overrun.
func (r UsageRecord) RemainingOfflineTime(limit time.Duration) time.Duration {
	return limit - r.TotalOfflineTime
}

// IsExhausted reports whether the offline budget limit has been consumed.
func (r UsageRecord) IsExhausted(limit time.Duration) bool {
	return r.TotalOfflineTime >= limit
}

// State derives the session state of r under the given offline limit.
func (r UsageRecord) State(limit time.Duration) SessionState {
	switch {
	case r.IsOnline:
		return StateOnlineActive
	case r.IsExhausted(limit):
		return StateOfflineExhausted
	default:
		return StateOfflineActive
	}
}

// SessionState is the state of an identity, derived from its loaded record.
type SessionState int

const (
	// StateNoRecord means no record file exists for the identity.
	StateNoRecord SessionState = iota
	// StateOnlineActive means the last login was online.
	StateOnlineActive
	// StateOfflineActive means an offline session with budget left.
	StateOfflineActive
	// StateOfflineExhausted means the offline budget is consumed.
	StateOfflineExhausted
)

func (s SessionState) String() string {
	switch s {
	case StateNoRecord:
		return "no_record"
	case StateOnlineActive:
		return "online_active"
	case StateOfflineActive:
		return "offline_active"
	case StateOfflineExhausted:
		return "offline_exhausted"
	default:
		return "unknown"
	}
}
