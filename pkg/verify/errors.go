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

package verify

import "errors"

var (
	// ErrNoRootCAs is returned when a verifier is built over an empty
	// root store
	ErrNoRootCAs = errors.New("verify: no root certificates")

	// ErrBadCertificate is returned when a certificate cannot be parsed
	// or fails validation for a reason other than trust, name, or time
	ErrBadCertificate = errors.New("verify: bad certificate")

	// ErrUnknownAuthority is returned when no chain to a trusted root
	// can be built
	ErrUnknownAuthority = errors.New("verify: certificate signed by unknown authority")

	// ErrNameMismatch is returned when the certificate does not cover the
	// requested server name
	ErrNameMismatch = errors.New("verify: certificate name mismatch")

	// ErrExpired is returned when the certificate is outside its validity
	// window
	ErrExpired = errors.New("verify: certificate expired or not yet valid")
)
