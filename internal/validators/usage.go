// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-offline-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the credential username (case-insensitive).
	FieldUsername = "username"

	// FieldPassword targets the credential password.
	FieldPassword = "password"

	// FieldFirstLogin targets the time of the first online login.
	FieldFirstLogin = "first_login"

	// FieldLastLogin targets the time of the last touch of the record.
	FieldLastLogin = "last_login"

	// FieldLastOnlineLogin targets the time of the last online login.
	FieldLastOnlineLogin = "last_online_login"

	// FieldTotalOfflineTime targets the consumed offline budget.
	FieldTotalOfflineTime = "total_offline_time"

	// FieldSessionStart targets the start of the current offline session.
	FieldSessionStart = "session_start"
)

// UsageValidator implements [Validator] for models.Credential and
// models.UsageRecord.
//
// Record checks cover only what every record written by this application
// satisfies. Relations between timestamps are not checked: online logins
// and online heartbeats do not guard against a clock set back, so any
// ordering can be legitimate.
type UsageValidator struct {
}

// NewUsageValidator constructs a new UsageValidator and returns it as the
// Validator interface.
func NewUsageValidator() Validator {
	return &UsageValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for any other type.
func (v *UsageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case models.UsageRecord:
		return v.validateUsageRecord(ctx, value, fields...)
	case *models.UsageRecord:
		return v.validateUsageRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UsageValidator) validateCredential(_ context.Context, cred models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(cred.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if cred.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUsageRecord validates a decoded record.
//
// Default validated fields (when none specified): all of them.
func (v *UsageValidator) validateUsageRecord(_ context.Context, record models.UsageRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstLogin, FieldLastLogin, FieldLastOnlineLogin, FieldTotalOfflineTime, FieldSessionStart}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstLogin:
			if record.FirstLogin.IsZero() {
				return ErrMissingTimestamp
			}
		case FieldLastLogin:
			if record.LastLogin.IsZero() {
				return ErrMissingTimestamp
			}
		case FieldLastOnlineLogin:
			if record.LastOnlineLogin.IsZero() {
				return ErrMissingTimestamp
			}
		case FieldTotalOfflineTime:
			if record.TotalOfflineTime < 0 {
				return ErrNegativeOfflineTime
			}
		case FieldSessionStart:
			if !record.IsOnline && record.SessionStartTime.IsZero() {
				return ErrMissingSessionStart
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
