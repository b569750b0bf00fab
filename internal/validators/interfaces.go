// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values before they reach or leave the usage
// store: the session service rejects blank credentials up front, and the file
// store refuses to hand out a decrypted record that is not well formed.
//
// A Validator may be asked to check only some fields by name; unknown names
// are an error.
package validators

import "context"

// Validator validates v, or only the named fields of v when fields is not
// empty.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
