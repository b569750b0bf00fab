// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from STORAGE_*, POLICY_*, WORKERS_*, APP_* and CONFIG.
// Unset variables leave the zero value so later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
