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
// Signature Schemes
// =============================================================================
// Values are from the IANA TLS SignatureScheme registry and appear on the
// wire in signature_algorithms extensions and CertificateVerify messages.

// SignatureScheme identifies a TLS signature scheme (RFC 8446, section 4.2.3).
type SignatureScheme uint16

const (
	// RSA_PKCS1_SHA256 is RSASSA-PKCS1-v1_5 with SHA-256.
	RSA_PKCS1_SHA256 SignatureScheme = 0x0401

	// RSA_PKCS1_SHA384 is RSASSA-PKCS1-v1_5 with SHA-384.
	RSA_PKCS1_SHA384 SignatureScheme = 0x0501

	// RSA_PKCS1_SHA512 is RSASSA-PKCS1-v1_5 with SHA-512.
	RSA_PKCS1_SHA512 SignatureScheme = 0x0601

	// ECDSA_NISTP256_SHA256 is ECDSA on P-256 with SHA-256.
	ECDSA_NISTP256_SHA256 SignatureScheme = 0x0403

	// ECDSA_NISTP384_SHA384 is ECDSA on P-384 with SHA-384.
	ECDSA_NISTP384_SHA384 SignatureScheme = 0x0503

	// ECDSA_NISTP521_SHA512 is ECDSA on P-521 with SHA-512.
	ECDSA_NISTP521_SHA512 SignatureScheme = 0x0603

	// RSA_PSS_SHA256 is RSASSA-PSS with SHA-256.
	RSA_PSS_SHA256 SignatureScheme = 0x0804

	// RSA_PSS_SHA384 is RSASSA-PSS with SHA-384.
	RSA_PSS_SHA384 SignatureScheme = 0x0805

	// RSA_PSS_SHA512 is RSASSA-PSS with SHA-512.
	RSA_PSS_SHA512 SignatureScheme = 0x0806

	// ED25519 is EdDSA on edwards25519.
	ED25519 SignatureScheme = 0x0807
)

var signatureSchemeNames = map[SignatureScheme]string{
	RSA_PKCS1_SHA256:      "RSA_PKCS1_SHA256",
	RSA_PKCS1_SHA384:      "RSA_PKCS1_SHA384",
	RSA_PKCS1_SHA512:      "RSA_PKCS1_SHA512",
	ECDSA_NISTP256_SHA256: "ECDSA_NISTP256_SHA256",
	ECDSA_NISTP384_SHA384: "ECDSA_NISTP384_SHA384",
	ECDSA_NISTP521_SHA512: "ECDSA_NISTP521_SHA512",
	RSA_PSS_SHA256:        "RSA_PSS_SHA256",
	RSA_PSS_SHA384:        "RSA_PSS_SHA384",
	RSA_PSS_SHA512:        "RSA_PSS_SHA512",
	ED25519:               "ED25519",
}

// String returns the registry name, or the hex value for unknown schemes.
func (s SignatureScheme) String() string {
	if name, ok := signatureSchemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SignatureScheme(0x%04x)", uint16(s))
}

// Algorithm returns the key algorithm family that produces this scheme.
func (s SignatureScheme) Algorithm() SignatureAlgorithm {
	switch s {
	case RSA_PKCS1_SHA256, RSA_PKCS1_SHA384, RSA_PKCS1_SHA512,
		RSA_PSS_SHA256, RSA_PSS_SHA384, RSA_PSS_SHA512:
		return AlgRSA
	case ECDSA_NISTP256_SHA256, ECDSA_NISTP384_SHA384, ECDSA_NISTP521_SHA512:
		return AlgECDSA
	case ED25519:
		return AlgEd25519
	default:
		return AlgUnknown
	}
}

// AllSignatureSchemes lists every scheme this library understands, in
// registry order.
func AllSignatureSchemes() []SignatureScheme {
	return []SignatureScheme{
		RSA_PKCS1_SHA256,
		RSA_PKCS1_SHA384,
		RSA_PKCS1_SHA512,
		ECDSA_NISTP256_SHA256,
		ECDSA_NISTP384_SHA384,
		ECDSA_NISTP521_SHA512,
		RSA_PSS_SHA256,
		RSA_PSS_SHA384,
		RSA_PSS_SHA512,
		ED25519,
	}
}

// =============================================================================
// Signature Algorithm Families
// =============================================================================

// SignatureAlgorithm is the key algorithm family behind a signature scheme.
type SignatureAlgorithm uint8

const (
	// AlgUnknown is the zero value for unrecognized schemes.
	AlgUnknown SignatureAlgorithm = iota

	// AlgRSA covers both RSASSA-PKCS1-v1_5 and RSASSA-PSS schemes.
	AlgRSA

	// AlgECDSA covers the NIST-curve ECDSA schemes.
	AlgECDSA

	// AlgEd25519 covers EdDSA on edwards25519.
	AlgEd25519
)

// String returns the family name.
func (a SignatureAlgorithm) String() string {
	switch a {
	case AlgRSA:
		return "RSA"
	case AlgECDSA:
		return "ECDSA"
	case AlgEd25519:
		return "Ed25519"
	default:
		return fmt.Sprintf("SignatureAlgorithm(%d)", uint8(a))
	}
}
