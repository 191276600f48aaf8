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

import "errors"

var (
	// ErrInvalidKeySize is returned when key material does not match the
	// algorithm's key length
	ErrInvalidKeySize = errors.New("tls13: invalid key size")

	// ErrInvalidSampleSize is returned when a header protection sample is
	// not the algorithm's sample length
	ErrInvalidSampleSize = errors.New("tls13: invalid sample size")

	// ErrInvalidLength is returned when an HKDF expansion asks for more
	// output than the hash allows
	ErrInvalidLength = errors.New("tls13: invalid output length")
)
