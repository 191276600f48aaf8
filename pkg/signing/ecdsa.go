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
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"

	"github.com/jeremyhahn/go-tlsclient/pkg/encoding"
	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// ecdsaSigningKey serves exactly one scheme, fixed by its curve. A P-384
// key never answers for the P-256 scheme, and the reverse.
type ecdsaSigningKey struct {
	key    *ecdsa.PrivateKey
	scheme types.SignatureScheme
}

var _ SigningKey = (*ecdsaSigningKey)(nil)

// newECDSASigningKey parses an EC private key for the given named curve
// from a SEC1 or PKCS#8 container. SEC1 input is first rewrapped as
// PKCS#8 with the curve's template, so both containers funnel through one
// parser. A key on any other curve than the requested one is rejected.
func newECDSASigningKey(der types.PrivateKeyDER, group types.NamedGroup, scheme types.SignatureScheme) (*ecdsaSigningKey, error) {
	pkcs8DER := der.DER

	switch der.Format {
	case types.FormatSEC1:
		converted, err := encoding.SEC1ToPKCS8(der.DER, group)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
		}
		pkcs8DER = converted
	case types.FormatPKCS8:
	default:
		return nil, fmt.Errorf("%w: %s cannot hold an EC key", ErrKeyParse, der.Format)
	}

	parsed, err := encoding.ParsePKCS8(pkcs8DER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}
	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: PKCS#8 does not contain an EC key", ErrKeyParse)
	}
	if key.Curve != curveForGroup(group) {
		return nil, fmt.Errorf("%w: key curve does not match %s", ErrKeyParse, group)
	}

	return &ecdsaSigningKey{key: key, scheme: scheme}, nil
}

func curveForGroup(group types.NamedGroup) elliptic.Curve {
	switch group {
	case types.SECP256R1:
		return elliptic.P256()
	case types.SECP384R1:
		return elliptic.P384()
	default:
		return nil
	}
}

func (k *ecdsaSigningKey) ChooseScheme(offered []types.SignatureScheme) Signer {
	if _, ok := firstSupported([]types.SignatureScheme{k.scheme}, offered); !ok {
		return nil
	}
	return &ecdsaSigner{key: k.key, scheme: k.scheme}
}

func (k *ecdsaSigningKey) Algorithm() types.SignatureAlgorithm {
	return types.AlgECDSA
}

func (k *ecdsaSigningKey) Public() crypto.PublicKey {
	return &k.key.PublicKey
}

// ecdsaSigner signs with the key's fixed scheme, producing ASN.1 DER
// encoded (r, s) pairs.
type ecdsaSigner struct {
	key    *ecdsa.PrivateKey
	scheme types.SignatureScheme
}

var _ Signer = (*ecdsaSigner)(nil)

func (s *ecdsaSigner) Sign(message []byte) ([]byte, error) {
	hash := schemeHash(s.scheme)
	h := hash.New()
	h.Write(message)
	digest := h.Sum(nil)

	sig, err := ecdsa.SignASN1(rand.Reader, s.key, digest)
	if err != nil {
		return nil, ErrSigningFailed
	}
	return sig, nil
}

func (s *ecdsaSigner) Scheme() types.SignatureScheme {
	return s.scheme
}
