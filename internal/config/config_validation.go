// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.Dir) == "" {
		return fmt.Errorf("%w: storage directory is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Policy.MaxOffline <= 0 {
		return fmt.Errorf("%w: max offline must be positive, got %s", ErrInvalidPolicyConfigs, cfg.Policy.MaxOffline)
	}
	if cfg.Policy.KDFIterations < MinKDFIterations {
		return fmt.Errorf("%w: kdf iterations must be at least %d, got %d", ErrInvalidPolicyConfigs, MinKDFIterations, cfg.Policy.KDFIterations)
	}

	if cfg.Workers.HeartbeatInterval <= 0 {
		return fmt.Errorf("%w: heartbeat interval must be positive, got %s", ErrInvalidWorkerConfigs, cfg.Workers.HeartbeatInterval)
	}

	return nil
}
