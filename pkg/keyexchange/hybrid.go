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

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// Sizes fixed by ML-KEM-768 and X25519. The client share carries the
// encapsulation key followed by the X25519 point, the server share
// carries the KEM ciphertext followed by the X25519 point, and the
// shared secret is the ML-KEM secret followed by the ECDH secret.
const (
	mlkemEncapsKeyLen  = 1184
	mlkemCiphertextLen = 1088
	mlkemSharedLen     = 32
	x25519PointLen     = 32

	hybridClientShareLen = mlkemEncapsKeyLen + x25519PointLen
	hybridServerShareLen = mlkemCiphertextLen + x25519PointLen
)

type hybridGroup struct{}

var _ Group = (*hybridGroup)(nil)

// X25519MLKEM768 returns the post-quantum hybrid group combining
// ML-KEM-768 encapsulation with an X25519 exchange.
func X25519MLKEM768() Group {
	return &hybridGroup{}
}

func (g *hybridGroup) ID() types.NamedGroup {
	return types.X25519MLKEM768
}

func (g *hybridGroup) Start() (Exchange, error) {
	kemPub, kemPriv, err := mlkem768.GenerateKeyPair(randReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	// MarshalBinary never fails for keys produced by GenerateKeyPair.
	kemPubBytes, _ := kemPub.MarshalBinary()

	ecdhPriv, err := ecdh.X25519().GenerateKey(randReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	share := make([]byte, 0, hybridClientShareLen)
	share = append(share, kemPubBytes...)
	share = append(share, ecdhPriv.PublicKey().Bytes()...)

	return &hybridExchange{kemPriv: kemPriv, ecdhPriv: ecdhPriv, share: share}, nil
}

type hybridExchange struct {
	kemPriv  *mlkem768.PrivateKey
	ecdhPriv *ecdh.PrivateKey
	share    []byte
	done     bool
}

var _ Exchange = (*hybridExchange)(nil)

func (e *hybridExchange) PublicShare() []byte {
	return e.share
}

func (e *hybridExchange) Complete(peer []byte) ([]byte, error) {
	if e.done {
		return nil, ErrExchangeConsumed
	}
	e.done = true

	if len(peer) != hybridServerShareLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d",
			ErrInvalidPeerShare, len(peer), hybridServerShareLen)
	}
	ciphertext := peer[:mlkemCiphertextLen]
	point := peer[mlkemCiphertextLen:]

	kemShared := make([]byte, mlkemSharedLen)
	e.kemPriv.DecapsulateTo(kemShared, ciphertext)

	peerKey, err := ecdh.X25519().NewPublicKey(point)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeerShare, err)
	}
	ecdhShared, err := e.ecdhPriv.ECDH(peerKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeerShare, err)
	}

	secret := make([]byte, 0, mlkemSharedLen+len(ecdhShared))
	secret = append(secret, kemShared...)
	secret = append(secret, ecdhShared...)
	return secret, nil
}
