// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-offline-keeper/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the part of the terminal interface the client drives.
type UI interface {
	// SessionFlow collects credentials and starts an offline session.
	SessionFlow(ctx context.Context) (tui.Session, error)
	// StatusLoop shows the running session until it ends.
	StatusLoop(ctx context.Context, session tui.Session, updates <-chan tui.HeartbeatUpdate) (tui.StatusOutcome, error)
}
