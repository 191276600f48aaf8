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

package client

import (
	"crypto/rand"
	"io"

	"github.com/jeremyhahn/go-tlsclient/pkg/keyexchange"
	"github.com/jeremyhahn/go-tlsclient/pkg/signing"
	"github.com/jeremyhahn/go-tlsclient/pkg/tls13"
	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// CryptoProvider bundles the cryptographic capabilities a configuration
// is built from: the cipher suites and key exchange groups in preference
// order, the signature schemes the client offers, the randomness source,
// and the key loader for client certificates.
type CryptoProvider struct {
	CipherSuites     []*tls13.CipherSuite
	KxGroups         []keyexchange.Group
	SignatureSchemes []types.SignatureScheme
	SecureRandom     io.Reader
	KeyProvider      KeyProvider
}

// KeyProvider turns private key DER into a usable signing key.
type KeyProvider interface {
	LoadPrivateKey(key types.PrivateKeyDER) (signing.SigningKey, error)
}

// StandardKeyProvider loads RSA, ECDSA, and Ed25519 keys through
// signing.ParseAny.
type StandardKeyProvider struct{}

var _ KeyProvider = StandardKeyProvider{}

func (StandardKeyProvider) LoadPrivateKey(key types.PrivateKeyDER) (signing.SigningKey, error) {
	return signing.ParseAny(key)
}

// DefaultProvider assembles the stock provider: all three TLS 1.3 suites,
// the default group preference, every supported signature scheme, and
// crypto/rand.
func DefaultProvider() *CryptoProvider {
	return &CryptoProvider{
		CipherSuites:     tls13.DefaultCipherSuites(),
		KxGroups:         keyexchange.DefaultGroups(),
		SignatureSchemes: types.AllSignatureSchemes(),
		SecureRandom:     rand.Reader,
		KeyProvider:      StandardKeyProvider{},
	}
}
