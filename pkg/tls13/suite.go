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

// Package tls13 models the TLS 1.3 cipher suites (RFC 8446) and the
// handshake crypto that hangs off them: transcript hashing, HKDF, AEAD
// record protection, QUIC header protection, and the CertificateVerify
// signature payload.
package tls13

import (
	"io"
	"math"

	"golang.org/x/crypto/hkdf"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// CipherSuite is a TLS 1.3 cipher suite together with its cryptographic
// providers and QUIC usage limits.
type CipherSuite struct {
	// ID is the wire identifier.
	ID types.CipherSuite

	// Hash is the transcript and HKDF hash.
	Hash *HashAlgorithm

	// AEAD protects records.
	AEAD AEADAlgorithm

	// QUIC masks packet headers when the suite runs under QUIC.
	QUIC *QUICAlgorithm

	// ConfidentialityLimit is the number of packets that may be
	// protected under one key (RFC 9001, section 6.6).
	ConfidentialityLimit uint64

	// IntegrityLimit is the number of forged packets that may be
	// rejected under one key before the key must be retired.
	IntegrityLimit uint64
}

// Suite definitions. Limits are the RFC 9001 section 6.6 bounds; ChaCha20's
// confidentiality bound exceeds the packet-number space, so it is set to
// the maximum.
var (
	// TLS13AES128GCMSHA256 is TLS_AES_128_GCM_SHA256.
	TLS13AES128GCMSHA256 = &CipherSuite{
		ID:                   types.TLS_AES_128_GCM_SHA256,
		Hash:                 SHA256,
		AEAD:                 aeadAES128GCM,
		QUIC:                 quicAES128,
		ConfidentialityLimit: 1 << 23,
		IntegrityLimit:       1 << 52,
	}

	// TLS13AES256GCMSHA384 is TLS_AES_256_GCM_SHA384.
	TLS13AES256GCMSHA384 = &CipherSuite{
		ID:                   types.TLS_AES_256_GCM_SHA384,
		Hash:                 SHA384,
		AEAD:                 aeadAES256GCM,
		QUIC:                 quicAES256,
		ConfidentialityLimit: 1 << 23,
		IntegrityLimit:       1 << 52,
	}

	// TLS13CHACHA20POLY1305SHA256 is TLS_CHACHA20_POLY1305_SHA256.
	TLS13CHACHA20POLY1305SHA256 = &CipherSuite{
		ID:                   types.TLS_CHACHA20_POLY1305_SHA256,
		Hash:                 SHA256,
		AEAD:                 aeadChaCha20Poly1305,
		QUIC:                 quicChaCha,
		ConfidentialityLimit: math.MaxUint64,
		IntegrityLimit:       1 << 36,
	}
)

// DefaultCipherSuites lists the supported suites in preference order.
func DefaultCipherSuites() []*CipherSuite {
	return []*CipherSuite{
		TLS13AES256GCMSHA384,
		TLS13AES128GCMSHA256,
		TLS13CHACHA20POLY1305SHA256,
	}
}

// SuiteByID looks up a supported suite by wire identifier.
func SuiteByID(id types.CipherSuite) (*CipherSuite, bool) {
	for _, s := range DefaultCipherSuites() {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// CanResumeFrom reports whether a session established under prev can be
// resumed under this suite. Resumption binds the PSK to the hash family:
// any SHA-256 suite resumes from any other SHA-256 suite, while the
// SHA-384 suite only resumes from itself.
func (c *CipherSuite) CanResumeFrom(prev *CipherSuite) bool {
	return prev != nil && c.Hash == prev.Hash
}

// Equal compares suites by wire identifier alone.
func (c *CipherSuite) Equal(other *CipherSuite) bool {
	return other != nil && c.ID == other.ID
}

// String returns the suite's registry name.
func (c *CipherSuite) String() string {
	return c.ID.String()
}

// HKDFExtract runs HKDF-Extract with the suite hash. A nil salt means a
// zeroed salt of hash length, per RFC 5869.
func (c *CipherSuite) HKDFExtract(secret, salt []byte) []byte {
	return hkdf.Extract(c.Hash.newFn, secret, salt)
}

// HKDFExpand runs HKDF-Expand with the suite hash.
func (c *CipherSuite) HKDFExpand(prk, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > 255*c.Hash.Size() {
		return nil, ErrInvalidLength
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(c.Hash.newFn, prk, info), out); err != nil {
		return nil, ErrInvalidLength
	}
	return out, nil
}

// HKDFExpandLabel runs the TLS 1.3 HKDF-Expand-Label construction
// (RFC 8446, section 7.1): the info is a HkdfLabel holding the output
// length, the label prefixed with "tls13 ", and the context.
func (c *CipherSuite) HKDFExpandLabel(secret []byte, label string, context []byte, length int) ([]byte, error) {
	const prefix = "tls13 "
	if len(prefix)+len(label) > 255 || len(context) > 255 {
		return nil, ErrInvalidLength
	}

	info := make([]byte, 0, 2+1+len(prefix)+len(label)+1+len(context))
	info = append(info, byte(length>>8), byte(length))
	info = append(info, byte(len(prefix)+len(label)))
	info = append(info, prefix...)
	info = append(info, label...)
	info = append(info, byte(len(context)))
	info = append(info, context...)

	return c.HKDFExpand(secret, info, length)
}
