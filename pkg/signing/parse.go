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

import (
	"fmt"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// ParseAny parses a private key of any supported type. Key types are tried
// in a fixed order and the first success wins:
//
//  1. RSA (PKCS#1 or PKCS#8)
//  2. ECDSA P-256 (SEC1 or PKCS#8)
//  3. ECDSA P-384 (SEC1 or PKCS#8)
//  4. Ed25519 (PKCS#8 only)
//
// Individual attempt failures are not reported; if nothing matches the
// result is ErrKeyParse.
func ParseAny(key types.PrivateKeyDER) (SigningKey, error) {
	if k, err := newRSASigningKey(key); err == nil {
		return k, nil
	}
	if k, err := ParseAnyECDSA(key); err == nil {
		return k, nil
	}
	if key.Format == types.FormatPKCS8 {
		if k, err := ParseAnyEdDSA(key); err == nil {
			return k, nil
		}
	}
	return nil, fmt.Errorf("%w: not RSA, ECDSA, or EdDSA", ErrKeyParse)
}

// ParseAnyECDSA parses an ECDSA private key on P-256 or P-384, tried in
// that order.
func ParseAnyECDSA(key types.PrivateKeyDER) (SigningKey, error) {
	if k, err := newECDSASigningKey(key, types.SECP256R1, types.ECDSA_NISTP256_SHA256); err == nil {
		return k, nil
	}
	if k, err := newECDSASigningKey(key, types.SECP384R1, types.ECDSA_NISTP384_SHA384); err == nil {
		return k, nil
	}
	return nil, fmt.Errorf("%w: not ECDSA on P-256 or P-384", ErrKeyParse)
}

// ParseAnyEdDSA parses an Ed25519 private key from a PKCS#8 container.
func ParseAnyEdDSA(key types.PrivateKeyDER) (SigningKey, error) {
	k, err := newEd25519SigningKey(key)
	if err != nil {
		return nil, err
	}
	return k, nil
}
