// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the per-save random salt.
	SaltSize = 16
	// KeySize is the AES-256 key length.
	KeySize = 32
	// IVSize is the CBC initialization vector length (one AES block).
	IVSize = aes.BlockSize
	// MACKeySize is the HMAC-SHA256 key length.
	MACKeySize = 32
	// TagSize is the HMAC-SHA256 tag length appended to the ciphertext.
	TagSize = sha256.Size

	// DefaultIterations is the PBKDF2 work factor used in production.
	DefaultIterations = 100_000
)

// DerivedKeys is the key material stretched from a credential and a salt.
type DerivedKeys struct {
	Key    []byte
	IV     []byte
	MACKey []byte
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// PBKDF2 work factor. Stored in the struct so tests can run with a cheap
	// value while production keeps [DefaultIterations].
	iterations int
}

// NewKeyChainService constructs a [KeyChainService] with the given PBKDF2
// iteration count. Non-positive values fall back to [DefaultIterations].
func NewKeyChainService(iterations int) KeyChainService {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &keyChainService{iterations: iterations}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKeys implements [KeyChainService]. A single PBKDF2-HMAC-SHA256 stream
// of 80 bytes is split into key (32), IV (16) and MAC key (32), so key and IV
// are exactly the first 48 bytes a reader of the same stream would get.
func (k *keyChainService) DeriveKeys(credential string, salt []byte) DerivedKeys {
	stream := pbkdf2.Key([]byte(credential), salt, k.iterations, KeySize+IVSize+MACKeySize, sha256.New)

	return DerivedKeys{
		Key:    stream[:KeySize],
		IV:     stream[KeySize : KeySize+IVSize],
		MACKey: stream[KeySize+IVSize:],
	}
}

// Seal implements [KeyChainService]. AES-256-CBC with PKCS#7 padding, then
// HMAC-SHA256 over salt ‖ ciphertext (encrypt-then-MAC).
func (k *keyChainService) Seal(keys DerivedKeys, salt, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(keys.Key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(keys.IV) != block.BlockSize() {
		return nil, fmt.Errorf("create cbc encrypter: iv length %d", len(keys.IV))
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded), len(padded)+TagSize)
	cipher.NewCBCEncrypter(block, keys.IV).CryptBlocks(ciphertext, padded)

	return append(ciphertext, computeTag(keys.MACKey, salt, ciphertext)...), nil
}

// Open implements [KeyChainService]. The tag is checked in constant time
// before any decryption happens.
func (k *keyChainService) Open(keys DerivedKeys, salt, sealed []byte) ([]byte, error) {
	if len(sealed) < aes.BlockSize+TagSize {
		return nil, ErrCiphertextTooShort
	}

	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]
	if !hmac.Equal(tag, computeTag(keys.MACKey, salt, ciphertext)) {
		return nil, ErrAuthenticationFailed
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext is not a multiple of the block size: %w", ErrInvalidPadding)
	}

	block, err := aes.NewCipher(keys.Key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(keys.IV) != block.BlockSize() {
		return nil, fmt.Errorf("create cbc decrypter: iv length %d", len(keys.IV))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, keys.IV).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, block.BlockSize())
}

func computeTag(macKey, salt, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, macKey)
	mac.Write(salt)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
