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

package keyexchange

import (
	"crypto/ecdh"
	"fmt"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// ecdhGroup covers every Diffie-Hellman group the stdlib provides: X25519
// and the NIST curves. NIST shares travel as uncompressed points, X25519
// as the raw 32-byte u-coordinate, which is exactly the encoding
// crypto/ecdh speaks.
type ecdhGroup struct {
	id    types.NamedGroup
	curve ecdh.Curve
}

var _ Group = (*ecdhGroup)(nil)

// X25519 returns the Curve25519 group.
func X25519() Group {
	return &ecdhGroup{id: types.X25519, curve: ecdh.X25519()}
}

// SECP256R1 returns the NIST P-256 group.
func SECP256R1() Group {
	return &ecdhGroup{id: types.SECP256R1, curve: ecdh.P256()}
}

// SECP384R1 returns the NIST P-384 group.
func SECP384R1() Group {
	return &ecdhGroup{id: types.SECP384R1, curve: ecdh.P384()}
}

func (g *ecdhGroup) ID() types.NamedGroup {
	return g.id
}

func (g *ecdhGroup) Start() (Exchange, error) {
	priv, err := g.curve.GenerateKey(randReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	return &ecdhExchange{group: g, priv: priv}, nil
}

type ecdhExchange struct {
	group *ecdhGroup
	priv  *ecdh.PrivateKey
	done  bool
}

var _ Exchange = (*ecdhExchange)(nil)

func (e *ecdhExchange) PublicShare() []byte {
	return e.priv.PublicKey().Bytes()
}

func (e *ecdhExchange) Complete(peer []byte) ([]byte, error) {
	if e.done {
		return nil, ErrExchangeConsumed
	}
	e.done = true

	peerKey, err := e.group.curve.NewPublicKey(peer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeerShare, err)
	}

	secret, err := e.priv.ECDH(peerKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeerShare, err)
	}
	return secret, nil
}
