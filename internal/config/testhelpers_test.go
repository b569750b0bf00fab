package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"APP_LOG_FILE",
	"STORAGE_DIR",
	"STORAGE_JOURNAL_DSN",
	"POLICY_MAX_OFFLINE",
	"POLICY_KDF_ITERATIONS",
	"WORKERS_HEARTBEAT_INTERVAL",
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
