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
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/jeremyhahn/go-tlsclient/pkg/encoding"
	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// rsaSchemePreference is the fixed order in which an RSA key offers its
// schemes during negotiation. PSS outranks PKCS#1 v1.5, and within each
// padding family a longer hash outranks a shorter one.
var rsaSchemePreference = []types.SignatureScheme{
	types.RSA_PSS_SHA512,
	types.RSA_PSS_SHA384,
	types.RSA_PSS_SHA256,
	types.RSA_PKCS1_SHA512,
	types.RSA_PKCS1_SHA384,
	types.RSA_PKCS1_SHA256,
}

// rsaSigningKey serves all six RSA schemes from one key.
type rsaSigningKey struct {
	key *rsa.PrivateKey
}

var _ SigningKey = (*rsaSigningKey)(nil)

// newRSASigningKey parses an RSA private key from a PKCS#1 or PKCS#8
// container. A SEC1 tag can never hold RSA and is rejected outright.
func newRSASigningKey(der types.PrivateKeyDER) (*rsaSigningKey, error) {
	var (
		key *rsa.PrivateKey
		err error
	)

	switch der.Format {
	case types.FormatPKCS1:
		key, err = encoding.ParsePKCS1(der.DER)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
		}
	case types.FormatPKCS8:
		parsed, perr := encoding.ParsePKCS8(der.DER)
		if perr != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyParse, perr)
		}
		var ok bool
		key, ok = parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: PKCS#8 does not contain an RSA key", ErrKeyParse)
		}
	default:
		return nil, fmt.Errorf("%w: %s cannot hold an RSA key", ErrKeyParse, der.Format)
	}

	return &rsaSigningKey{key: key}, nil
}

func (k *rsaSigningKey) ChooseScheme(offered []types.SignatureScheme) Signer {
	scheme, ok := firstSupported(rsaSchemePreference, offered)
	if !ok {
		return nil
	}
	return &rsaSigner{key: k.key, scheme: scheme}
}

func (k *rsaSigningKey) Algorithm() types.SignatureAlgorithm {
	return types.AlgRSA
}

func (k *rsaSigningKey) Public() crypto.PublicKey {
	return &k.key.PublicKey
}

// rsaSigner signs under one negotiated RSA scheme.
type rsaSigner struct {
	key    *rsa.PrivateKey
	scheme types.SignatureScheme
}

var _ Signer = (*rsaSigner)(nil)

func (s *rsaSigner) Sign(message []byte) ([]byte, error) {
	hash := schemeHash(s.scheme)
	h := hash.New()
	h.Write(message)
	digest := h.Sum(nil)

	var (
		sig []byte
		err error
	)
	switch s.scheme {
	case types.RSA_PSS_SHA256, types.RSA_PSS_SHA384, types.RSA_PSS_SHA512:
		opts := &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: hash}
		sig, err = rsa.SignPSS(rand.Reader, s.key, hash, digest, opts)
	default:
		sig, err = rsa.SignPKCS1v15(rand.Reader, s.key, hash, digest)
	}
	if err != nil {
		return nil, ErrSigningFailed
	}
	return sig, nil
}

func (s *rsaSigner) Scheme() types.SignatureScheme {
	return s.scheme
}
