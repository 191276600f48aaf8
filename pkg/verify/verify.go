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

// Package verify provides server certificate verification. The default
// WebPKIVerifier chains to a RootCertStore; callers with their own trust
// model implement ServerCertVerifier instead.
package verify

import (
	"time"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// ServerCertVerifier checks the certificate chain a server presents
// during the handshake.
type ServerCertVerifier interface {
	// VerifyServerCert validates the end-entity certificate against the
	// verifier's trust anchors, using the presented intermediates, for
	// the given server name at the given time. The server name may be a
	// DNS name or an IP address literal; when empty the name check is
	// skipped.
	VerifyServerCert(end types.CertificateDER, intermediates []types.CertificateDER, serverName string, now time.Time) error

	// SupportedSchemes lists the signature schemes the verifier accepts
	// for the server's CertificateVerify signature.
	SupportedSchemes() []types.SignatureScheme
}
