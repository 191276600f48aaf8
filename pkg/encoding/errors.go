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

package encoding

import "errors"

var (
	// ErrInvalidData is returned when input data is nil, empty, or malformed
	ErrInvalidData = errors.New("encoding: invalid data")

	// ErrInvalidPrivateKey is returned when a private key does not parse
	// under its declared container
	ErrInvalidPrivateKey = errors.New("encoding: invalid private key")

	// ErrUnsupportedCurve is returned when a curve has no PKCS#8
	// conversion template
	ErrUnsupportedCurve = errors.New("encoding: unsupported curve")

	// ErrInvalidPassword is returned when an encrypted key's password is
	// incorrect
	ErrInvalidPassword = errors.New("encoding: invalid password")

	// ErrNoPEMBlock is returned when no PEM block of the expected kind is
	// present in the input
	ErrNoPEMBlock = errors.New("encoding: no PEM block found")

	// ErrUnknownPEMType is returned when a PEM block type is not a
	// recognized private key or certificate type
	ErrUnknownPEMType = errors.New("encoding: unknown PEM block type")
)
