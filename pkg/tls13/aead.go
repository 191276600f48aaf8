// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-tlsclient.
//
// go-tlsclient is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package tls13

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEADAlgorithm builds record-protection ciphers from raw key material.
// All TLS 1.3 AEADs use 12-byte nonces and 16-byte tags; only the key
// length differs.
type AEADAlgorithm interface {
	// KeyLen returns the key length in bytes.
	KeyLen() int

	// NonceLen returns the nonce length in bytes (12 for every suite).
	NonceLen() int

	// Overhead returns the authentication tag length in bytes.
	Overhead() int

	// New builds the AEAD from key material of exactly KeyLen bytes.
	New(key []byte) (cipher.AEAD, error)

	// String returns the algorithm name.
	String() string
}

const (
	aeadNonceLen = 12
	aeadOverhead = 16
)

// aesGCM covers both AES-128-GCM and AES-256-GCM; the key length selects
// the variant.
type aesGCM struct {
	keyLen int
	name   string
}

var _ AEADAlgorithm = (*aesGCM)(nil)

func (a *aesGCM) KeyLen() int   { return a.keyLen }
func (a *aesGCM) NonceLen() int { return aeadNonceLen }
func (a *aesGCM) Overhead() int { return aeadOverhead }

func (a *aesGCM) New(key []byte) (cipher.AEAD, error) {
	if len(key) != a.keyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), a.keyLen)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}
	return cipher.NewGCM(block)
}

func (a *aesGCM) String() string { return a.name }

// chaCha20Poly1305 is the RFC 8439 AEAD.
type chaCha20Poly1305 struct{}

var _ AEADAlgorithm = (*chaCha20Poly1305)(nil)

func (c *chaCha20Poly1305) KeyLen() int   { return chacha20poly1305.KeySize }
func (c *chaCha20Poly1305) NonceLen() int { return aeadNonceLen }
func (c *chaCha20Poly1305) Overhead() int { return aeadOverhead }

func (c *chaCha20Poly1305) New(key []byte) (cipher.AEAD, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), chacha20poly1305.KeySize)
	}
	return chacha20poly1305.New(key)
}

func (c *chaCha20Poly1305) String() string { return "CHACHA20_POLY1305" }

var (
	aeadAES128GCM        AEADAlgorithm = &aesGCM{keyLen: 16, name: "AES_128_GCM"}
	aeadAES256GCM        AEADAlgorithm = &aesGCM{keyLen: 32, name: "AES_256_GCM"}
	aeadChaCha20Poly1305 AEADAlgorithm = &chaCha20Poly1305{}
)
