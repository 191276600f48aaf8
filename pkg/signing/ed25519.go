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
	"crypto/ed25519"
	"fmt"

	"github.com/jeremyhahn/go-tlsclient/pkg/encoding"
	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// ed25519SigningKey serves the single ED25519 scheme. Only the PKCS#8
// container is accepted; there is no SEC1 or PKCS#1 form for this key type.
type ed25519SigningKey struct {
	key ed25519.PrivateKey
}

var _ SigningKey = (*ed25519SigningKey)(nil)

func newEd25519SigningKey(der types.PrivateKeyDER) (*ed25519SigningKey, error) {
	if der.Format != types.FormatPKCS8 {
		return nil, fmt.Errorf("%w: Ed25519 requires a PKCS#8 container", ErrKeyParse)
	}

	parsed, err := encoding.ParsePKCS8(der.DER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}
	key, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: PKCS#8 does not contain an Ed25519 key", ErrKeyParse)
	}

	return &ed25519SigningKey{key: key}, nil
}

func (k *ed25519SigningKey) ChooseScheme(offered []types.SignatureScheme) Signer {
	if _, ok := firstSupported([]types.SignatureScheme{types.ED25519}, offered); !ok {
		return nil
	}
	return &ed25519Signer{key: k.key}
}

func (k *ed25519SigningKey) Algorithm() types.SignatureAlgorithm {
	return types.AlgEd25519
}

func (k *ed25519SigningKey) Public() crypto.PublicKey {
	return k.key.Public()
}

// ed25519Signer signs the message directly; Ed25519 hashes internally.
type ed25519Signer struct {
	key ed25519.PrivateKey
}

var _ Signer = (*ed25519Signer)(nil)

func (s *ed25519Signer) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(s.key, message), nil
}

func (s *ed25519Signer) Scheme() types.SignatureScheme {
	return types.ED25519
}
