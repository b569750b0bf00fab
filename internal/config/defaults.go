package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultMaxOffline is the offline budget granted by an online login.
	DefaultMaxOffline = time.Hour
	// MinKDFIterations is the lowest accepted PBKDF2 work factor.
	MinKDFIterations = 100_000
	// DefaultHeartbeatInterval is the default offline heartbeat period.
	DefaultHeartbeatInterval = 30 * time.Second

	storageDirName = ".offline-keeper"
)

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Dir: defaultStorageDir(),
		},
		Policy: Policy{
			MaxOffline:    DefaultMaxOffline,
			KDFIterations: MinKDFIterations,
		},
		Workers: Workers{
			HeartbeatInterval: DefaultHeartbeatInterval,
		},
	}
}

// defaultStorageDir is a hidden directory under the per-user config dir,
// falling back to the working directory.
func defaultStorageDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, storageDirName)
}
