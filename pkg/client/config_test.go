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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-tlsclient/pkg/tls13"
	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

func testConfig(t *testing.T) *ClientConfig {
	t.Helper()

	return NewDefaultConfigBuilder().
		Dangerous().
		WithCustomCertificateVerifier(acceptAllVerifier{}).
		WithNoClientAuth()
}

// TestClientConfig_SupportsVersion verifies only offered versions match
func TestClientConfig_SupportsVersion(t *testing.T) {
	cfg := testConfig(t)

	assert.True(t, cfg.SupportsVersion(types.TLS13))
	assert.False(t, cfg.SupportsVersion(types.TLS12))
}

// TestClientConfig_SuiteForID verifies lookup against the configured suites
func TestClientConfig_SuiteForID(t *testing.T) {
	cfg := testConfig(t)

	for _, id := range []types.CipherSuite{
		types.TLS_AES_128_GCM_SHA256,
		types.TLS_AES_256_GCM_SHA384,
		types.TLS_CHACHA20_POLY1305_SHA256,
	} {
		suite, ok := cfg.SuiteForID(id)
		require.True(t, ok, "suite %s should be configured", id)
		assert.Equal(t, id, suite.ID)
	}

	_, ok := cfg.SuiteForID(types.CipherSuite(0x1399))
	assert.False(t, ok)
}

// TestClientConfig_SuiteForID_Restricted verifies suites absent from the
// provider are not found even though the library supports them
func TestClientConfig_SuiteForID_Restricted(t *testing.T) {
	provider := DefaultProvider()
	aes128, ok := tls13.SuiteByID(types.TLS_AES_128_GCM_SHA256)
	require.True(t, ok)
	provider.CipherSuites = []*tls13.CipherSuite{aes128}

	builder, err := NewConfigBuilder(provider)
	require.NoError(t, err)
	cfg := builder.Dangerous().WithCustomCertificateVerifier(acceptAllVerifier{}).WithNoClientAuth()

	_, ok = cfg.SuiteForID(types.TLS_AES_128_GCM_SHA256)
	assert.True(t, ok)
	_, ok = cfg.SuiteForID(types.TLS_CHACHA20_POLY1305_SHA256)
	assert.False(t, ok)
}

// TestClientConfig_Validate verifies each consistency check
func TestClientConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(cfg *ClientConfig)
	}{
		{"nil provider", func(cfg *ClientConfig) { cfg.Provider = nil }},
		{"no suites", func(cfg *ClientConfig) { cfg.Provider.CipherSuites = nil }},
		{"no groups", func(cfg *ClientConfig) { cfg.Provider.KxGroups = nil }},
		{"no versions", func(cfg *ClientConfig) { cfg.Versions = nil }},
		{"no verifier", func(cfg *ClientConfig) { cfg.ServerCertVerifier = nil }},
		{"no resolver", func(cfg *ClientConfig) { cfg.ClientAuthResolver = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			require.NoError(t, cfg.Validate())

			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
