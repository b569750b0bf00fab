package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty storage directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPolicyConfigs indicates an invalid offline policy
	// (non-positive budget or a weak PBKDF2 work factor).
	ErrInvalidPolicyConfigs = errors.New("invalid policy configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, non-positive heartbeat interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
