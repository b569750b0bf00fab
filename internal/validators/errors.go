package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrMissingTimestamp    = errors.New("required timestamp is missing")
	ErrNegativeOfflineTime = errors.New("total offline time is negative")
	ErrMissingSessionStart = errors.New("offline record without session start")
)
