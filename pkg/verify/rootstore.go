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
	"fmt"

	"github.com/jeremyhahn/go-tlsclient/pkg/encoding"
	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// RootCertStore collects trust anchors for chain verification. The zero
// value is an empty, usable store.
type RootCertStore struct {
	pool  *x509.CertPool
	count int
}

// NewRootCertStore returns an empty store.
func NewRootCertStore() *RootCertStore {
	return &RootCertStore{pool: x509.NewCertPool()}
}

// Add parses the DER certificate and adds it as a trust anchor.
func (s *RootCertStore) Add(der types.CertificateDER) error {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadCertificate, err)
	}
	if s.pool == nil {
		s.pool = x509.NewCertPool()
	}
	s.pool.AddCert(cert)
	s.count++
	return nil
}

// AddPEM adds every parsable CERTIFICATE block in the input and reports
// how many were added and how many were skipped as unparsable. It fails
// only when the input contains no certificate blocks at all, so a bundle
// with a few stale entries still loads.
func (s *RootCertStore) AddPEM(data []byte) (added, skipped int, err error) {
	ders, err := encoding.DecodeCertificatesPEM(data)
	if err != nil {
		return 0, 0, err
	}
	for _, der := range ders {
		if addErr := s.Add(der); addErr != nil {
			skipped++
			continue
		}
		added++
	}
	return added, skipped, nil
}

// Len reports the number of trust anchors in the store.
func (s *RootCertStore) Len() int {
	return s.count
}

// Pool returns a copy of the store's certificate pool. Mutating the copy
// does not affect the store.
func (s *RootCertStore) Pool() *x509.CertPool {
	if s.pool == nil {
		return x509.NewCertPool()
	}
	return s.pool.Clone()
}
