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

import "errors"

var (
	// ErrKeyParse indicates no supported key type matched the DER input.
	// This is a configuration-time failure and fatal for the key material
	// that produced it.
	ErrKeyParse = errors.New("signing: failed to parse private key")

	// ErrSigningFailed indicates a signing operation failed. The message
	// is deliberately free of operand detail; peers that can provoke
	// signing failures must not learn anything about the key from them.
	ErrSigningFailed = errors.New("signing: signing failed")

	// ErrEmptyChain indicates a certified key was built without
	// certificates
	ErrEmptyChain = errors.New("signing: certificate chain is empty")

	// ErrKeyRequired indicates a certified key was built without a
	// signing key
	ErrKeyRequired = errors.New("signing: signing key is required")

	// ErrNoEndEntity indicates a certified key has no end-entity
	// certificate to return
	ErrNoEndEntity = errors.New("signing: no end-entity certificate")
)
