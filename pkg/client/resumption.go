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

import "github.com/jeremyhahn/go-tlsclient/pkg/tls13"

// Resumption describes the client's session resumption policy: how many
// sessions the in-memory store keeps and whether session tickets are
// accepted.
type Resumption struct {
	// StoreSize is the capacity of the session store. Zero disables
	// resumption.
	StoreSize int

	// Tickets controls acceptance of TLS 1.3 session tickets.
	Tickets bool
}

// DefaultResumption keeps 256 sessions with tickets enabled.
func DefaultResumption() *Resumption {
	return &Resumption{StoreSize: 256, Tickets: true}
}

// DisabledResumption turns resumption off entirely.
func DisabledResumption() *Resumption {
	return &Resumption{}
}

// Enabled reports whether any session may be stored or resumed.
func (r *Resumption) Enabled() bool {
	return r != nil && r.StoreSize > 0
}

// CanResume reports whether a session established under prev may be
// resumed on a connection negotiating next. Besides the policy being
// enabled, the suites must share a hash algorithm, since the resumption
// secret is bound to the transcript hash.
func (r *Resumption) CanResume(prev, next *tls13.CipherSuite) bool {
	if !r.Enabled() || next == nil {
		return false
	}
	return next.CanResumeFrom(prev)
}
