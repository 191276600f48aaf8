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
	"fmt"

	"github.com/jeremyhahn/go-tlsclient/pkg/tls13"
	"github.com/jeremyhahn/go-tlsclient/pkg/types"
	"github.com/jeremyhahn/go-tlsclient/pkg/verify"
)

// ClientConfig is a finished client configuration. The builder produces
// it with the defaults below; the exported fields may be adjusted before
// the configuration is put into use, after which it must be treated as
// immutable and may be shared across connections.
//
//	ALPNProtocols           none
//	Resumption              DefaultResumption (256 sessions, tickets on)
//	MaxFragmentSize         nil (unlimited)
//	EnableSNI               true
//	EnableSecretExtraction  false
//	EnableEarlyData         false
//	KeyLog                  NoKeyLog
type ClientConfig struct {
	// Provider carries the cryptographic capabilities the configuration
	// was built from.
	Provider *CryptoProvider

	// Versions lists the protocol versions the client offers.
	Versions []types.ProtocolVersion

	// ServerCertVerifier authenticates the server's certificate chain.
	ServerCertVerifier verify.ServerCertVerifier

	// ClientAuthResolver answers server certificate requests.
	ClientAuthResolver ClientCertResolver

	// ALPNProtocols lists application protocols in preference order.
	ALPNProtocols [][]byte

	// Resumption controls session resumption behavior.
	Resumption *Resumption

	// MaxFragmentSize caps outgoing plaintext fragments when set.
	MaxFragmentSize *uint16

	// EnableSNI controls sending the server name in the ClientHello.
	EnableSNI bool

	// EnableSecretExtraction permits exporting connection secrets after
	// the handshake, for kernel or NIC offload.
	EnableSecretExtraction bool

	// EnableEarlyData permits sending 0-RTT data when resuming.
	EnableEarlyData bool

	// KeyLog receives handshake secrets for debugging tools.
	KeyLog KeyLog
}

// SupportsVersion reports whether the configuration offers the given
// protocol version.
func (c *ClientConfig) SupportsVersion(v types.ProtocolVersion) bool {
	for _, have := range c.Versions {
		if have == v {
			return true
		}
	}
	return false
}

// SuiteForID returns the configured cipher suite with the given
// identifier. Suites the provider does not carry are not found, even
// when the library supports them.
func (c *ClientConfig) SuiteForID(id types.CipherSuite) (*tls13.CipherSuite, bool) {
	if c.Provider == nil {
		return nil, false
	}
	for _, suite := range c.Provider.CipherSuites {
		if suite.ID == id {
			return suite, true
		}
	}
	return nil, false
}

// Validate checks the configuration for internal consistency. Builder
// output always validates; the check exists for configurations adjusted
// after building.
func (c *ClientConfig) Validate() error {
	if c.Provider == nil {
		return fmt.Errorf("%w: nil provider", ErrInvalidConfig)
	}
	if len(c.Provider.CipherSuites) == 0 {
		return fmt.Errorf("%w: no cipher suites", ErrInvalidConfig)
	}
	if len(c.Provider.KxGroups) == 0 {
		return fmt.Errorf("%w: no key exchange groups", ErrInvalidConfig)
	}
	if len(c.Versions) == 0 {
		return fmt.Errorf("%w: no protocol versions", ErrInvalidConfig)
	}
	if c.ServerCertVerifier == nil {
		return fmt.Errorf("%w: no server certificate verifier", ErrInvalidConfig)
	}
	if c.ClientAuthResolver == nil {
		return fmt.Errorf("%w: no client certificate resolver", ErrInvalidConfig)
	}
	return nil
}
