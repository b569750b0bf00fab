// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Credential is the username/password pair that identifies a usage record.
// It is never persisted: it only names the record file and keys its
// encryption.
type Credential struct {
	// Username is case-insensitive: "Alice" and "alice" address the same record.
	Username string

	// Password is case-sensitive.
	Password string
}

// NewCredential builds a [Credential] from raw user input.
func NewCredential(username, password string) Credential {
	return Credential{Username: username, Password: password}
}

// String returns the canonical credential string "lower(username):password"
// used both for the identity hash and for key derivation.
func (c Credential) String() string {
	return strings.ToLower(c.Username) + ":" + c.Password
}

// IsEmpty reports whether the username or the password is missing.
func (c Credential) IsEmpty() bool {
	return strings.TrimSpace(c.Username) == "" || c.Password == ""
}
