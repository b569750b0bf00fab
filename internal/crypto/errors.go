// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrCiphertextTooShort is returned when a sealed blob cannot even hold a
	// single cipher block and a tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrAuthenticationFailed is returned when the HMAC tag does not match:
	// the blob was modified or the key belongs to another credential.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrInvalidPadding is returned when the decrypted plaintext does not end
	// with valid PKCS#7 padding.
	ErrInvalidPadding = errors.New("invalid padding")
)
