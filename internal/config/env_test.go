// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE": "/var/log/offline-keeper.log",

		"STORAGE_DIR":         "/var/lib/offline-keeper",
		"STORAGE_JOURNAL_DSN": "/var/lib/offline-keeper/journal.db",

		"POLICY_MAX_OFFLINE":    "90m",
		"POLICY_KDF_ITERATIONS": "250000",

		"WORKERS_HEARTBEAT_INTERVAL": "15s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/log/offline-keeper.log", cfg.App.LogFile)
	assert.Equal(t, "/var/lib/offline-keeper", cfg.Storage.Dir)
	assert.Equal(t, "/var/lib/offline-keeper/journal.db", cfg.Storage.JournalDSN)
	assert.Equal(t, 90*time.Minute, cfg.Policy.MaxOffline)
	assert.Equal(t, 250000, cfg.Policy.KDFIterations)
	assert.Equal(t, 15*time.Second, cfg.Workers.HeartbeatInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "POLICY_MAX_OFFLINE", "one hour"},
		{"bad int", "POLICY_KDF_ITERATIONS", "lots"},
		{"bad interval", "WORKERS_HEARTBEAT_INTERVAL", "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			assert.Error(t, err)
		})
	}
}
