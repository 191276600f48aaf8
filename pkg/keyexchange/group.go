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

// Package keyexchange implements the client side of the TLS 1.3 key
// exchange for the supported named groups: X25519, the NIST curves P-256
// and P-384, and the post-quantum hybrid X25519MLKEM768.
package keyexchange

import (
	"crypto/rand"
	"io"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// randReader is the random source for fresh exchange keys. It defaults to
// crypto/rand and is overridden in tests.
var randReader io.Reader = rand.Reader

// Group is a named group the client can offer in its key_share extension.
type Group interface {
	// ID returns the group's wire identifier.
	ID() types.NamedGroup

	// Start generates fresh key material and returns the in-flight
	// exchange holding it.
	Start() (Exchange, error)
}

// Exchange is one half-open key exchange. It is single use: Complete
// consumes it.
type Exchange interface {
	// PublicShare returns the bytes to place in the client key_share.
	PublicShare() []byte

	// Complete combines the peer's share with the local secret and
	// returns the shared secret. A second call fails with
	// ErrExchangeConsumed.
	Complete(peer []byte) ([]byte, error)
}

// DefaultGroups lists the supported groups in preference order. The
// hybrid group leads so a post-quantum-capable peer never falls back to a
// classical exchange.
func DefaultGroups() []Group {
	return []Group{
		X25519MLKEM768(),
		X25519(),
		SECP256R1(),
		SECP384R1(),
	}
}

// GroupByID looks up a supported group by wire identifier.
func GroupByID(id types.NamedGroup) (Group, bool) {
	for _, g := range DefaultGroups() {
		if g.ID() == id {
			return g, true
		}
	}
	return nil, false
}
