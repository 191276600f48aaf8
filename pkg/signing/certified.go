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

package signing

import "github.com/jeremyhahn/go-tlsclient/pkg/types"

// CertifiedKey pairs a certificate chain with the signing key that proves
// possession of the chain's end-entity public key. This is the unit client
// certificate resolvers hand to the handshake.
type CertifiedKey struct {
	// Chain is the certificate chain, end-entity first.
	Chain []types.CertificateDER

	// Key signs CertificateVerify for the chain.
	Key SigningKey
}

// NewCertifiedKey builds a CertifiedKey, rejecting empty chains and nil
// keys. Whether the key actually matches the end-entity certificate is not
// checked here; the peer finds out during the handshake.
func NewCertifiedKey(chain []types.CertificateDER, key SigningKey) (*CertifiedKey, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	if key == nil {
		return nil, ErrKeyRequired
	}
	return &CertifiedKey{Chain: chain, Key: key}, nil
}

// EndEntity returns the leaf certificate.
func (c *CertifiedKey) EndEntity() (types.CertificateDER, error) {
	if len(c.Chain) == 0 {
		return nil, ErrNoEndEntity
	}
	return c.Chain[0], nil
}
