package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_DerivedPaths(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Storage: Storage{Dir: "/data"},
		Policy:  Policy{MaxOffline: time.Hour, KDFIterations: MinKDFIterations},
		Workers: Workers{HeartbeatInterval: time.Second},
	})

	assert.Equal(t, filepath.Join("/data", "journal.db"), cfg.Storage.JournalDSN)
	assert.Equal(t, filepath.Join("/data", "client.log"), cfg.App.LogFile)
	assert.Equal(t, time.Hour, cfg.Policy.MaxOffline)
	assert.Equal(t, time.Second, cfg.Workers.HeartbeatInterval)
}

func TestNewClientConfig_JournalDisabled(t *testing.T) {
	for _, v := range []string{"off", "OFF"} {
		cfg := newClientConfig(&StructuredConfig{
			Storage: Storage{Dir: "/data", JournalDSN: v},
		})
		assert.Empty(t, cfg.Storage.JournalDSN)
	}
}

func TestNewClientConfig_ExplicitPathsKept(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{LogFile: "/logs/c.log"},
		Storage: Storage{Dir: "/data", JournalDSN: "file:j.db?cache=shared"},
	})

	assert.Equal(t, "file:j.db?cache=shared", cfg.Storage.JournalDSN)
	assert.Equal(t, "/logs/c.log", cfg.App.LogFile)
}

func TestGetClientConfig(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()

	cfg, err := GetClientConfig([]string{"-d", dir, "-max-offline", "2h"})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, 2*time.Hour, cfg.Policy.MaxOffline)
	assert.Equal(t, MinKDFIterations, cfg.Policy.KDFIterations)
}

func TestGetClientConfig_Invalid(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig([]string{"-heartbeat", "-5s"})
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}
