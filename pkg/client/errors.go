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

package client

import "errors"

var (
	// ErrNoProvider is returned when a builder is created without a
	// crypto provider
	ErrNoProvider = errors.New("client: nil crypto provider")

	// ErrEmptyProvider is returned when the provider has no cipher suites
	// or no key exchange groups
	ErrEmptyProvider = errors.New("client: provider has no cipher suites or key exchange groups")

	// ErrInvalidConfig is returned by Validate when a configuration is
	// internally inconsistent
	ErrInvalidConfig = errors.New("client: invalid configuration")
)
