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
// Key and Certificate Material
// =============================================================================

// KeyFormat declares which DER container a private key blob claims to be.
// The tag records the caller's claim; whether the bytes actually parse under
// that container is decided when the key is loaded.
type KeyFormat uint8

const (
	// FormatPKCS1 is an RSA private key in PKCS#1 ASN.1 DER (RFC 8017).
	FormatPKCS1 KeyFormat = iota + 1

	// FormatPKCS8 is a PrivateKeyInfo structure in PKCS#8 ASN.1 DER
	// (RFC 5958). Any key algorithm may be carried in this container.
	FormatPKCS8

	// FormatSEC1 is an EC private key in SEC1 ASN.1 DER (RFC 5915).
	FormatSEC1
)

// String returns the container name.
func (f KeyFormat) String() string {
	switch f {
	case FormatPKCS1:
		return "PKCS#1"
	case FormatPKCS8:
		return "PKCS#8"
	case FormatSEC1:
		return "SEC1"
	default:
		return fmt.Sprintf("KeyFormat(%d)", uint8(f))
	}
}

// PrivateKeyDER is a private key in binary DER together with its declared
// container format.
type PrivateKeyDER struct {
	Format KeyFormat
	DER    []byte
}

// PKCS1Key wraps DER bytes declared to be a PKCS#1 RSA private key.
func PKCS1Key(der []byte) PrivateKeyDER {
	return PrivateKeyDER{Format: FormatPKCS1, DER: der}
}

// PKCS8Key wraps DER bytes declared to be a PKCS#8 PrivateKeyInfo.
func PKCS8Key(der []byte) PrivateKeyDER {
	return PrivateKeyDER{Format: FormatPKCS8, DER: der}
}

// SEC1Key wraps DER bytes declared to be a SEC1 EC private key.
func SEC1Key(der []byte) PrivateKeyDER {
	return PrivateKeyDER{Format: FormatSEC1, DER: der}
}

// Clone returns a deep copy so callers can zeroize their buffer
// independently of the library's copy.
func (k PrivateKeyDER) Clone() PrivateKeyDER {
	der := make([]byte, len(k.DER))
	copy(der, k.DER)
	return PrivateKeyDER{Format: k.Format, DER: der}
}

// CertificateDER is a single X.509 certificate in binary DER.
type CertificateDER []byte
