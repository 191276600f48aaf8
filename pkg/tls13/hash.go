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

package tls13

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// HashAlgorithm is the hash a cipher suite transcripts, HMACs, and HKDFs
// with. The two instances SHA256 and SHA384 are the only values; suites
// referring to the same instance share a hash family, which is what gates
// session resumption across suites.
type HashAlgorithm struct {
	name  string
	size  int
	newFn func() hash.Hash
}

// SHA256 backs TLS_AES_128_GCM_SHA256 and TLS_CHACHA20_POLY1305_SHA256.
var SHA256 = &HashAlgorithm{name: "SHA-256", size: sha256.Size, newFn: sha256.New}

// SHA384 backs TLS_AES_256_GCM_SHA384.
var SHA384 = &HashAlgorithm{name: "SHA-384", size: sha512.Size384, newFn: sha512.New384}

// New returns a fresh hash state.
func (h *HashAlgorithm) New() hash.Hash {
	return h.newFn()
}

// Size returns the digest length in bytes.
func (h *HashAlgorithm) Size() int {
	return h.size
}

// Sum hashes data in one shot.
func (h *HashAlgorithm) Sum(data []byte) []byte {
	d := h.newFn()
	d.Write(data)
	return d.Sum(nil)
}

// NewHMAC returns a keyed MAC over this hash.
func (h *HashAlgorithm) NewHMAC(key []byte) hash.Hash {
	return hmac.New(h.newFn, key)
}

// String returns the hash name.
func (h *HashAlgorithm) String() string {
	return h.name
}
