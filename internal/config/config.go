// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-offline-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the usage records and of the journal.
	Storage Storage `envPrefix:"STORAGE_"`

	// Policy holds the offline usage policy.
	Policy Policy `envPrefix:"POLICY_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file. The terminal belongs to the
	// UI, so logs never go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the local persistence.
type Storage struct {
	// Dir is the directory holding the encrypted usage record files.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// JournalDSN is the SQLite DSN of the usage event journal. "off"
	// disables the journal.
	// Env: STORAGE_JOURNAL_DSN
	JournalDSN string `env:"JOURNAL_DSN"`
}

// Policy holds the offline usage policy.
type Policy struct {
	// MaxOffline is the offline budget granted by every online login.
	// Env: POLICY_MAX_OFFLINE
	MaxOffline time.Duration `env:"MAX_OFFLINE"`

	// KDFIterations is the PBKDF2 work factor of the record encryption.
	// Env: POLICY_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HeartbeatInterval is the period of the offline heartbeat.
	// Env: WORKERS_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first non-zero value wins, in
// this order:
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
