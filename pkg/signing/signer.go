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

// Package signing loads TLS client private keys and negotiates signature
// schemes for CertificateVerify.
//
// A SigningKey is a parsed private key that knows which TLS signature
// schemes it can produce. Given the peer's offered schemes it either mints
// a single-scheme Signer or reports no overlap. Supported key types:
//   - RSA (PKCS#1 or PKCS#8 containers), serving PSS and PKCS#1 v1.5 schemes
//   - ECDSA on P-256 and P-384 (SEC1 or PKCS#8 containers)
//   - Ed25519 (PKCS#8 container only)
package signing

import (
	"crypto"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// SigningKey is a private key held by the client for certificate
// authentication.
type SigningKey interface {
	// ChooseScheme selects a scheme from the peer's offered list and
	// returns a Signer bound to it. Selection follows the key's own
	// preference order, not the order of the offered list. Returns nil
	// when no offered scheme is supported.
	ChooseScheme(offered []types.SignatureScheme) Signer

	// Algorithm reports the key's algorithm family.
	Algorithm() types.SignatureAlgorithm

	// Public returns the verifying key.
	Public() crypto.PublicKey
}

// Signer produces signatures under exactly one signature scheme, fixed at
// negotiation time.
type Signer interface {
	// Sign signs the message. Hashing, when the scheme calls for it,
	// happens inside; callers pass the raw to-be-signed bytes.
	//
	// Failures are reported as ErrSigningFailed with no further detail.
	Sign(message []byte) ([]byte, error)

	// Scheme reports the negotiated signature scheme.
	Scheme() types.SignatureScheme
}

// firstSupported returns the first scheme of prefer that also appears in
// offered. The preference list drives the scan; offered order is ignored.
func firstSupported(prefer, offered []types.SignatureScheme) (types.SignatureScheme, bool) {
	for _, p := range prefer {
		for _, o := range offered {
			if p == o {
				return p, true
			}
		}
	}
	return 0, false
}

// schemeHash maps a signature scheme to the hash it signs with.
// Ed25519 returns 0: it hashes internally.
func schemeHash(scheme types.SignatureScheme) crypto.Hash {
	switch scheme {
	case types.RSA_PKCS1_SHA256, types.RSA_PSS_SHA256, types.ECDSA_NISTP256_SHA256:
		return crypto.SHA256
	case types.RSA_PKCS1_SHA384, types.RSA_PSS_SHA384, types.ECDSA_NISTP384_SHA384:
		return crypto.SHA384
	case types.RSA_PKCS1_SHA512, types.RSA_PSS_SHA512, types.ECDSA_NISTP521_SHA512:
		return crypto.SHA512
	default:
		return 0
	}
}
