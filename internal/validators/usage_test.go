// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-offline-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var base = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

func validOfflineRecord() models.UsageRecord {
	return models.NewUsageRecord(base).WithOfflineLogin(base.Add(time.Minute)).WithHeartbeat(base.Add(11 * time.Minute))
}

// ---------------------------------------------------------------------------
// TestNewUsageValidator
// ---------------------------------------------------------------------------

func TestNewUsageValidator(t *testing.T) {
	v := NewUsageValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewUsageValidator()
	ctx := context.Background()
	cred := models.NewCredential("alice", "pw")
	record := validOfflineRecord()

	assert.NoError(t, v.Validate(ctx, cred))
	assert.NoError(t, v.Validate(ctx, &cred))
	assert.NoError(t, v.Validate(ctx, record))
	assert.NoError(t, v.Validate(ctx, &record))
	assert.ErrorIs(t, v.Validate(ctx, "alice"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidate_Credential
// ---------------------------------------------------------------------------

func TestValidate_Credential(t *testing.T) {
	tests := []struct {
		name    string
		cred    models.Credential
		fields  []string
		wantErr error
	}{
		{name: "valid", cred: models.NewCredential("Alice", "pw")},
		{name: "empty username", cred: models.NewCredential("", "pw"), wantErr: ErrEmptyUsername},
		{name: "blank username", cred: models.NewCredential("  \t", "pw"), wantErr: ErrEmptyUsername},
		{name: "empty password", cred: models.NewCredential("alice", ""), wantErr: ErrEmptyPassword},
		{name: "blank password is allowed", cred: models.NewCredential("alice", "  ")},
		{name: "scoped to password", cred: models.NewCredential("", "pw"), fields: []string{FieldPassword}},
		{name: "unknown field", cred: models.NewCredential("alice", "pw"), fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	v := NewUsageValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.cred, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_UsageRecord
// ---------------------------------------------------------------------------

func TestValidate_UsageRecord(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.UsageRecord)
		fields  []string
		wantErr error
	}{
		{name: "valid offline", mutate: func(*models.UsageRecord) {}},
		{name: "valid online", mutate: func(r *models.UsageRecord) { *r = r.WithOnlineLogin(base.Add(time.Hour)) }},
		{
			// clock set back before an online heartbeat
			name:   "unordered timestamps are legal",
			mutate: func(r *models.UsageRecord) { *r = r.WithOnlineLogin(base).WithHeartbeat(base.Add(-time.Hour)) },
		},
		{name: "zero first login", mutate: func(r *models.UsageRecord) { r.FirstLogin = time.Time{} }, wantErr: ErrMissingTimestamp},
		{name: "zero last login", mutate: func(r *models.UsageRecord) { r.LastLogin = time.Time{} }, wantErr: ErrMissingTimestamp},
		{name: "zero last online login", mutate: func(r *models.UsageRecord) { r.LastOnlineLogin = time.Time{} }, wantErr: ErrMissingTimestamp},
		{name: "negative total", mutate: func(r *models.UsageRecord) { r.TotalOfflineTime = -time.Second }, wantErr: ErrNegativeOfflineTime},
		{name: "offline without session start", mutate: func(r *models.UsageRecord) { r.SessionStartTime = time.Time{} }, wantErr: ErrMissingSessionStart},
		{
			name:   "online without session start",
			mutate: func(r *models.UsageRecord) { *r = models.NewUsageRecord(base) },
		},
		{
			name:   "scoped check skips other fields",
			mutate: func(r *models.UsageRecord) { r.FirstLogin = time.Time{} },
			fields: []string{FieldTotalOfflineTime},
		},
		{name: "unknown field", mutate: func(*models.UsageRecord) {}, fields: []string{"state"}, wantErr: ErrUnknownField},
	}

	v := NewUsageValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validOfflineRecord()
			tt.mutate(&record)

			err := v.Validate(context.Background(), record, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
