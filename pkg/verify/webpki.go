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

import (
	"crypto/x509"
	"errors"
	"fmt"
	"time"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// WebPKIVerifier verifies server chains against a snapshot of a
// RootCertStore taken at construction. Later additions to the store do
// not affect an existing verifier.
type WebPKIVerifier struct {
	roots *x509.CertPool
}

var _ ServerCertVerifier = (*WebPKIVerifier)(nil)

// NewWebPKIVerifier builds the default chain verifier. An empty or nil
// store is rejected with ErrNoRootCAs.
func NewWebPKIVerifier(roots *RootCertStore) (*WebPKIVerifier, error) {
	if roots == nil || roots.Len() == 0 {
		return nil, ErrNoRootCAs
	}
	return &WebPKIVerifier{roots: roots.Pool()}, nil
}

func (v *WebPKIVerifier) VerifyServerCert(end types.CertificateDER, intermediates []types.CertificateDER, serverName string, now time.Time) error {
	cert, err := x509.ParseCertificate(end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadCertificate, err)
	}

	pool := x509.NewCertPool()
	for _, der := range intermediates {
		intermediate, err := x509.ParseCertificate(der)
		if err != nil {
			return fmt.Errorf("%w: intermediate: %v", ErrBadCertificate, err)
		}
		pool.AddCert(intermediate)
	}

	// DNSName covers IP literals too: VerifyHostname matches them against
	// the IP SANs.
	opts := x509.VerifyOptions{
		Roots:         v.roots,
		Intermediates: pool,
		DNSName:       serverName,
		CurrentTime:   now,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	if _, err := cert.Verify(opts); err != nil {
		return classifyVerifyError(err)
	}
	return nil
}

// SupportedSchemes lists every scheme the library can validate.
func (v *WebPKIVerifier) SupportedSchemes() []types.SignatureScheme {
	return types.AllSignatureSchemes()
}

// classifyVerifyError maps crypto/x509 verification failures onto the
// package sentinels so callers can branch without string matching.
func classifyVerifyError(err error) error {
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &invalidErr) {
		if invalidErr.Reason == x509.Expired {
			return fmt.Errorf("%w: %v", ErrExpired, err)
		}
		return fmt.Errorf("%w: %v", ErrBadCertificate, err)
	}

	var hostErr x509.HostnameError
	if errors.As(err, &hostErr) {
		return fmt.Errorf("%w: %v", ErrNameMismatch, err)
	}

	var authorityErr x509.UnknownAuthorityError
	if errors.As(err, &authorityErr) {
		return fmt.Errorf("%w: %v", ErrUnknownAuthority, err)
	}

	return fmt.Errorf("%w: %v", ErrBadCertificate, err)
}
