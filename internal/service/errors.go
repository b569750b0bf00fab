package service

import "errors"

var (
	// ErrClockOutOfRange is returned when the system clock reads a time
	// before 0001-01-01 or after 9999-12-31 UTC. No record is read or written.
	ErrClockOutOfRange = errors.New("system clock is outside the supported range")

	// ErrLockingRecord wraps failures to take the record lock.
	ErrLockingRecord = errors.New("cannot lock usage record")
	// ErrLoadingRecord wraps I/O failures while reading a record. Corrupted
	// or missing records are not errors.
	ErrLoadingRecord = errors.New("cannot load usage record")
	// ErrSavingRecord wraps failures while writing a record.
	ErrSavingRecord = errors.New("cannot save usage record")
)
