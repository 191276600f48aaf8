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

// Package client builds TLS 1.3 client configurations. The builder moves
// through fixed stages, each represented by its own type, so a
// configuration cannot be assembled out of order: choose a crypto
// provider, then how server certificates are verified, then whether the
// client authenticates, which yields the finished ClientConfig.
package client

import (
	"crypto/rand"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
	"github.com/jeremyhahn/go-tlsclient/pkg/verify"
)

// WantsVerifier is the builder stage that needs a server certificate
// verification method.
type WantsVerifier struct {
	provider *CryptoProvider
	versions []types.ProtocolVersion
}

// NewConfigBuilder starts a builder over the given provider. The provider
// must carry at least one cipher suite and one key exchange group; a nil
// randomness source, key provider, or scheme list falls back to the
// defaults. The provider is copied, so later mutation of the argument
// does not affect the builder.
func NewConfigBuilder(provider *CryptoProvider) (*WantsVerifier, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	if len(provider.CipherSuites) == 0 || len(provider.KxGroups) == 0 {
		return nil, ErrEmptyProvider
	}

	p := *provider
	if p.SecureRandom == nil {
		p.SecureRandom = rand.Reader
	}
	if p.KeyProvider == nil {
		p.KeyProvider = StandardKeyProvider{}
	}
	if len(p.SignatureSchemes) == 0 {
		p.SignatureSchemes = types.AllSignatureSchemes()
	}

	return &WantsVerifier{
		provider: &p,
		versions: []types.ProtocolVersion{types.TLS13},
	}, nil
}

// NewDefaultConfigBuilder starts a builder over DefaultProvider.
func NewDefaultConfigBuilder() *WantsVerifier {
	b, err := NewConfigBuilder(DefaultProvider())
	if err != nil {
		// DefaultProvider always satisfies the builder's requirements.
		panic(err)
	}
	return b
}

// WithRootCertificates installs the default WebPKI verifier over the
// given trust anchors. An empty store is rejected.
func (b *WantsVerifier) WithRootCertificates(roots *verify.RootCertStore) (*WantsClientCert, error) {
	v, err := verify.NewWebPKIVerifier(roots)
	if err != nil {
		return nil, err
	}
	return &WantsClientCert{provider: b.provider, versions: b.versions, verifier: v}, nil
}

// Dangerous exposes builder transitions that replace standard certificate
// verification. Using them shifts the whole burden of authenticating the
// server onto the caller.
func (b *WantsVerifier) Dangerous() *DangerousBuilder {
	return &DangerousBuilder{inner: b}
}

// DangerousBuilder holds the escape hatches off the verifier stage.
type DangerousBuilder struct {
	inner *WantsVerifier
}

// WithCustomCertificateVerifier installs a caller-supplied verifier in
// place of the WebPKI default.
func (d *DangerousBuilder) WithCustomCertificateVerifier(v verify.ServerCertVerifier) *WantsClientCert {
	return &WantsClientCert{provider: d.inner.provider, versions: d.inner.versions, verifier: v}
}

// WantsClientCert is the builder stage that decides client
// authentication.
type WantsClientCert struct {
	provider *CryptoProvider
	versions []types.ProtocolVersion
	verifier verify.ServerCertVerifier
}

// WithClientAuthCert finishes the configuration with a fixed client
// certificate chain. The key is loaded through the provider's
// KeyProvider, so a parse failure surfaces the loader's error.
func (b *WantsClientCert) WithClientAuthCert(chain []types.CertificateDER, key types.PrivateKeyDER) (*ClientConfig, error) {
	signingKey, err := b.provider.KeyProvider.LoadPrivateKey(key)
	if err != nil {
		return nil, err
	}
	resolver, err := NewAlwaysResolvesClientCert(chain, signingKey)
	if err != nil {
		return nil, err
	}
	return b.build(resolver), nil
}

// WithNoClientAuth finishes the configuration without client
// authentication.
func (b *WantsClientCert) WithNoClientAuth() *ClientConfig {
	return b.build(FailResolveClientCert{})
}

// WithClientCertResolver finishes the configuration with a caller
// supplied resolver, consulted when the server requests a certificate.
func (b *WantsClientCert) WithClientCertResolver(r ClientCertResolver) *ClientConfig {
	return b.build(r)
}

func (b *WantsClientCert) build(r ClientCertResolver) *ClientConfig {
	return &ClientConfig{
		Provider:           b.provider,
		Versions:           b.versions,
		ServerCertVerifier: b.verifier,
		ClientAuthResolver: r,
		Resumption:         DefaultResumption(),
		EnableSNI:          true,
		KeyLog:             NoKeyLog{},
	}
}
