package store

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/MKhiriev/go-offline-keeper/models"
)

// recordFileExt is appended to every identity hash to form the record file
// name.
const recordFileExt = ".dat"

// IdentityHash returns base64url(SHA-256(lower(username) ":" password))
// without padding. It reveals nothing about the credential.
func IdentityHash(cred models.Credential) string {
	sum := sha256.Sum256([]byte(cred.String()))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// IdentityFileName returns the record file name of cred: the identity hash
// plus a fixed extension.
func IdentityFileName(cred models.Credential) string {
	return IdentityHash(cred) + recordFileExt
}
