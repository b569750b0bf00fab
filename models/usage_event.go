// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Operation names a session operation recorded in the usage journal.
type Operation string

const (
	OperationOnlineLogin  Operation = "online_login"
	OperationOfflineLogin Operation = "offline_login"
	OperationHeartbeat    Operation = "heartbeat"
)

// UsageEvent is one journal entry describing the outcome of a session
// operation. The journal is not encrypted, so it holds no usage totals:
// Identity is the identity file hash, never the credential.
type UsageEvent struct {
	ID         string
	RunID      string
	Identity   string
	Operation  Operation
	Success    bool
	Reason     FailureReason
	OccurredAt time.Time
}
