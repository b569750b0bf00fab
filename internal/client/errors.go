package client

import "errors"

// ErrClockManipulation ends the process with a non-zero exit code.
var ErrClockManipulation = errors.New("clock manipulation detected")
