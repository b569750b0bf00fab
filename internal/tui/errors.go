// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-offline-keeper/internal/service"
	"github.com/MKhiriev/go-offline-keeper/internal/store"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns an infrastructure error into a line fit for the
// screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrClockOutOfRange):
		return "System clock is out of range, check the date settings"
	case errors.Is(err, store.ErrStoreBusy):
		return "Usage record is in use by another instance"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Operation cancelled"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "permission denied") ||
		strings.Contains(s, "read-only file system") ||
		strings.Contains(s, "no space left") {
		return "Storage directory is not writable: " + err.Error()
	}

	return err.Error()
}
