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

import "errors"

var (
	// ErrKeyGeneration is returned when fresh key material cannot be
	// generated
	ErrKeyGeneration = errors.New("keyexchange: key generation failed")

	// ErrInvalidPeerShare is returned when the peer's share has the wrong
	// length or is not a valid group element
	ErrInvalidPeerShare = errors.New("keyexchange: invalid peer key share")

	// ErrExchangeConsumed is returned when an exchange is completed twice
	ErrExchangeConsumed = errors.New("keyexchange: exchange already completed")
)
