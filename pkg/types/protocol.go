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

package types

import "fmt"

// =============================================================================
// Protocol Versions
// =============================================================================

// ProtocolVersion is a TLS protocol version as it appears on the wire.
type ProtocolVersion uint16

const (
	// TLS12 is TLS 1.2 (RFC 5246).
	TLS12 ProtocolVersion = 0x0303

	// TLS13 is TLS 1.3 (RFC 8446).
	TLS13 ProtocolVersion = 0x0304
)

// String returns the conventional version name.
func (v ProtocolVersion) String() string {
	switch v {
	case TLS12:
		return "TLSv1.2"
	case TLS13:
		return "TLSv1.3"
	default:
		return fmt.Sprintf("ProtocolVersion(0x%04x)", uint16(v))
	}
}

// =============================================================================
// Cipher Suites
// =============================================================================
// Only the TLS 1.3 suites from RFC 8446 appendix B.4. TLS 1.2 suites have
// a separate registry shape and are out of scope for this library.

// CipherSuite is a TLS cipher suite identifier.
type CipherSuite uint16

const (
	// TLS_AES_128_GCM_SHA256 is AEAD-AES-128-GCM with SHA-256.
	TLS_AES_128_GCM_SHA256 CipherSuite = 0x1301

	// TLS_AES_256_GCM_SHA384 is AEAD-AES-256-GCM with SHA-384.
	TLS_AES_256_GCM_SHA384 CipherSuite = 0x1302

	// TLS_CHACHA20_POLY1305_SHA256 is AEAD-CHACHA20-POLY1305 with SHA-256.
	TLS_CHACHA20_POLY1305_SHA256 CipherSuite = 0x1303
)

var cipherSuiteNames = map[CipherSuite]string{
	TLS_AES_128_GCM_SHA256:       "TLS_AES_128_GCM_SHA256",
	TLS_AES_256_GCM_SHA384:       "TLS_AES_256_GCM_SHA384",
	TLS_CHACHA20_POLY1305_SHA256: "TLS_CHACHA20_POLY1305_SHA256",
}

// String returns the registry name, or the hex value for unknown suites.
func (c CipherSuite) String() string {
	if name, ok := cipherSuiteNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CipherSuite(0x%04x)", uint16(c))
}

// =============================================================================
// Named Groups
// =============================================================================

// NamedGroup is a key-exchange group identifier (RFC 8446, section 4.2.7).
type NamedGroup uint16

const (
	// SECP256R1 is the NIST P-256 curve.
	SECP256R1 NamedGroup = 0x0017

	// SECP384R1 is the NIST P-384 curve.
	SECP384R1 NamedGroup = 0x0018

	// X25519 is Curve25519 key agreement.
	X25519 NamedGroup = 0x001d

	// X25519MLKEM768 is the hybrid X25519 + ML-KEM-768 group
	// (draft-kwiatkowski-tls-ecdhe-mlkem).
	X25519MLKEM768 NamedGroup = 0x11ec
)

var namedGroupNames = map[NamedGroup]string{
	SECP256R1:      "secp256r1",
	SECP384R1:      "secp384r1",
	X25519:         "x25519",
	X25519MLKEM768: "X25519MLKEM768",
}

// String returns the registry name, or the hex value for unknown groups.
func (g NamedGroup) String() string {
	if name, ok := namedGroupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("NamedGroup(0x%04x)", uint16(g))
}
