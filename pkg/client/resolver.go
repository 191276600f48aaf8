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
	"github.com/jeremyhahn/go-tlsclient/pkg/signing"
	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// ClientCertResolver picks the certificate and key to answer a server's
// certificate request with.
type ClientCertResolver interface {
	// ResolveClientCert returns the certified key to present, or nil to
	// send no certificate. acceptableIssuers carries the DER
	// distinguished names from the server's request and offeredSchemes
	// the signature schemes it accepts.
	ResolveClientCert(acceptableIssuers [][]byte, offeredSchemes []types.SignatureScheme) *signing.CertifiedKey
}

// AlwaysResolvesClientCert answers every certificate request with the
// same certified key, ignoring the server's issuer and scheme hints.
type AlwaysResolvesClientCert struct {
	key *signing.CertifiedKey
}

var _ ClientCertResolver = (*AlwaysResolvesClientCert)(nil)

// NewAlwaysResolvesClientCert wraps the chain and key into a resolver.
// The chain must be non-empty and the key non-nil.
func NewAlwaysResolvesClientCert(chain []types.CertificateDER, key signing.SigningKey) (*AlwaysResolvesClientCert, error) {
	certified, err := signing.NewCertifiedKey(chain, key)
	if err != nil {
		return nil, err
	}
	return &AlwaysResolvesClientCert{key: certified}, nil
}

func (r *AlwaysResolvesClientCert) ResolveClientCert(_ [][]byte, _ []types.SignatureScheme) *signing.CertifiedKey {
	return r.key
}

// FailResolveClientCert never presents a certificate.
type FailResolveClientCert struct{}

var _ ClientCertResolver = FailResolveClientCert{}

func (FailResolveClientCert) ResolveClientCert(_ [][]byte, _ []types.SignatureScheme) *signing.CertifiedKey {
	return nil
}
