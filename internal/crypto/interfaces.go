package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all cryptography of the usage record file. It knows
// nothing about files, records or sessions: it only derives keys and
// seals/opens byte blobs.
//
// Scheme:
//
//	Salt          = GenerateSalt()                     (fresh on every save)
//	Key, IV, MAC  = DeriveKeys(credential, salt)       (PBKDF2-HMAC-SHA256)
//	Sealed        = AES-256-CBC(Key, IV, plaintext) ‖ HMAC-SHA256(MAC, salt ‖ ciphertext)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes from the OS CSPRNG. The salt is not
	// a secret: it is stored in clear at the head of the record file.
	GenerateSalt() ([]byte, error)

	// DeriveKeys stretches credential and salt into the AES key, the CBC IV
	// and the HMAC key. Deterministic for the same inputs.
	DeriveKeys(credential string, salt []byte) DerivedKeys

	// Seal encrypts plaintext and authenticates salt together with the
	// ciphertext. Output: ciphertext ‖ tag.
	Seal(keys DerivedKeys, salt, plaintext []byte) ([]byte, error)

	// Open verifies the tag and decrypts. Any bit flip in salt or sealed, or
	// a key derived from another credential, yields ErrAuthenticationFailed.
	Open(keys DerivedKeys, salt, sealed []byte) ([]byte, error)
}
