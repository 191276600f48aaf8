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
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// TestRootCertStore_Add verifies adding parsed anchors and rejecting garbage
func TestRootCertStore_Add(t *testing.T) {
	_, _, rootDER := generateTestCert(t, "Test Root CA", true, nil, nil)

	store := NewRootCertStore()
	assert.Equal(t, 0, store.Len())

	require.NoError(t, store.Add(rootDER))
	assert.Equal(t, 1, store.Len())

	err := store.Add(types.CertificateDER("not a certificate"))
	assert.ErrorIs(t, err, ErrBadCertificate)
	assert.Equal(t, 1, store.Len())
}

// TestRootCertStore_ZeroValue verifies the zero value store is usable
func TestRootCertStore_ZeroValue(t *testing.T) {
	_, _, rootDER := generateTestCert(t, "Test Root CA", true, nil, nil)

	var store RootCertStore
	require.NoError(t, store.Add(rootDER))
	assert.Equal(t, 1, store.Len())
	assert.NotNil(t, store.Pool())
}

// TestRootCertStore_AddPEM verifies tolerant bulk loading of a bundle with
// both valid and unparsable entries
func TestRootCertStore_AddPEM(t *testing.T) {
	_, _, firstDER := generateTestCert(t, "First Root CA", true, nil, nil)
	_, _, secondDER := generateTestCert(t, "Second Root CA", true, nil, nil)

	var bundle []byte
	bundle = append(bundle, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: firstDER})...)
	bundle = append(bundle, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("stale entry")})...)
	bundle = append(bundle, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: secondDER})...)

	store := NewRootCertStore()
	added, skipped, err := store.AddPEM(bundle)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 2, store.Len())
}

// TestRootCertStore_AddPEM_NoCertificates verifies input without certificate
// blocks is an error
func TestRootCertStore_AddPEM_NoCertificates(t *testing.T) {
	store := NewRootCertStore()

	_, _, err := store.AddPEM([]byte("no pem here"))
	assert.Error(t, err)

	block := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{0x01}})
	_, _, err = store.AddPEM(block)
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

// TestRootCertStore_PoolIsCopy verifies mutating the returned pool does not
// affect the store
func TestRootCertStore_PoolIsCopy(t *testing.T) {
	root, rootKey, rootDER := generateTestCert(t, "Test Root CA", true, nil, nil)
	_, _, leafDER := generateTestCert(t, "server.test", false, root, rootKey)

	store := storeWithRoot(t, rootDER)

	pool := store.Pool()
	otherCert, _, _ := generateTestCert(t, "Other Root CA", true, nil, nil)
	pool.AddCert(otherCert)

	// A verifier built after the mutation still sees only the original root.
	verifier, err := NewWebPKIVerifier(store)
	require.NoError(t, err)

	err = verifier.VerifyServerCert(leafDER, nil, "server.test", time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
