// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the offline keeper client.
//
// Entries are JSON lines carrying a "role", a timestamp and the calling
// function under "func". Every client process gets a run ID; loggers bound to
// a run are stored in the context and recovered with [FromContext], so store
// and service code log with the run_id of the session that called them.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDirPerm  = 0o700
	logFilePerm = 0o600

	// RunIDField is the field name of the per-process run ID.
	RunIDField = "run_id"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a debug-level logger writing JSON lines to w.
func NewLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewClientLogger appends to the file at path, creating its directory. The
// terminal belongs to the UI, so stderr is only used when the file cannot be
// opened.
func NewClientLogger(role string, path string) *Logger {
	return NewLogger(role, openLogFile(path))
}

func openLogFile(path string) io.Writer {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return os.Stderr
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return os.Stderr
	}
	return f
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithRunID returns a child logger tagged with runID and a copy of ctx that
// carries it.
func (l *Logger) WithRunID(ctx context.Context, runID string) (context.Context, *Logger) {
	child := &Logger{l.With().Str(RunIDField, runID).Logger()}
	return child.WithContext(ctx), child
}

// FromContext returns the logger attached to ctx, or zerolog's global logger
// when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
