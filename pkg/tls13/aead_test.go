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
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAEADSealOpen runs an encrypt/decrypt round trip through every
// suite's AEAD.
func TestAEADSealOpen(t *testing.T) {
	for _, suite := range DefaultCipherSuites() {
		t.Run(suite.String(), func(t *testing.T) {
			key := make([]byte, suite.AEAD.KeyLen())
			_, err := rand.Read(key)
			require.NoError(t, err)

			aead, err := suite.AEAD.New(key)
			require.NoError(t, err)
			assert.Equal(t, suite.AEAD.NonceLen(), aead.NonceSize())
			assert.Equal(t, suite.AEAD.Overhead(), aead.Overhead())

			nonce := make([]byte, aead.NonceSize())
			_, err = rand.Read(nonce)
			require.NoError(t, err)

			plaintext := []byte("application data record")
			aad := []byte{0x17, 0x03, 0x03, 0x00, 0x27}

			ciphertext := aead.Seal(nil, nonce, plaintext, aad)
			assert.Len(t, ciphertext, len(plaintext)+aead.Overhead())

			opened, err := aead.Open(nil, nonce, ciphertext, aad)
			require.NoError(t, err)
			assert.Equal(t, plaintext, opened)
		})
	}
}

// TestAEADTamperDetection flips one ciphertext bit and expects open to
// fail.
func TestAEADTamperDetection(t *testing.T) {
	suite := TLS13CHACHA20POLY1305SHA256
	key := make([]byte, suite.AEAD.KeyLen())
	_, err := rand.Read(key)
	require.NoError(t, err)

	aead, err := suite.AEAD.New(key)
	require.NoError(t, err)

	nonce := make([]byte, aead.NonceSize())
	ciphertext := aead.Seal(nil, nonce, []byte("secret"), nil)
	ciphertext[0] ^= 0x01

	_, err = aead.Open(nil, nonce, ciphertext, nil)
	assert.Error(t, err)
}

func TestAEADKeySizeValidation(t *testing.T) {
	for _, suite := range DefaultCipherSuites() {
		t.Run(suite.String(), func(t *testing.T) {
			short := make([]byte, suite.AEAD.KeyLen()-1)
			_, err := suite.AEAD.New(short)
			assert.True(t, errors.Is(err, ErrInvalidKeySize))

			long := make([]byte, suite.AEAD.KeyLen()+1)
			_, err = suite.AEAD.New(long)
			assert.True(t, errors.Is(err, ErrInvalidKeySize))
		})
	}
}
