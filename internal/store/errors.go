package store

import "errors"

// Outcomes of [UsageStore.Load]. Callers should use [errors.Is] to match
// against these values; the underlying cause is wrapped alongside.
var (
	// ErrRecordMissing is returned when no record file exists for the
	// identity. It is not a failure: it means "never logged in online".
	ErrRecordMissing = errors.New("usage record not found")

	// ErrRecordCorrupted is returned when the file is too short to hold a
	// salt, or fails authentication/decryption (wrong credential or tampered
	// bytes).
	ErrRecordCorrupted = errors.New("usage record corrupted")

	// ErrInvalidPayload is returned when decryption succeeds but the
	// plaintext does not decode into a well-formed record.
	ErrInvalidPayload = errors.New("usage record payload invalid")

	// ErrTimestampOutOfRange is returned when a timestamp falls outside
	// 0001-01-01..9999-12-31 UTC and cannot be stored as ticks.
	ErrTimestampOutOfRange = errors.New("timestamp out of range")
)

var (
	// ErrStoreBusy is returned by [UsageStore.Lock] when another process holds
	// the record lock for longer than the lock timeout.
	ErrStoreBusy = errors.New("usage record is locked by another process")

	// ErrEmptyStorageDir is returned when the store is constructed without a
	// directory.
	ErrEmptyStorageDir = errors.New("storage directory is not set")
)

// Low-level journal database errors. These are wrapped by journal repository
// methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// journal fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning journal rows fails.
	ErrScanningRows = errors.New("failed to scan usage event rows")
)
