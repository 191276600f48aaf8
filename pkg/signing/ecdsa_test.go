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

package signing

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"testing"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// TestECDSAChooseScheme tests that a key only ever answers for its own
// curve's scheme.
func TestECDSAChooseScheme(t *testing.T) {
	p256, err := ParseAny(ecdsaSEC1DER(t, elliptic.P256()))
	if err != nil {
		t.Fatalf("ParseAny failed: %v", err)
	}
	p384, err := ParseAny(ecdsaSEC1DER(t, elliptic.P384()))
	if err != nil {
		t.Fatalf("ParseAny failed: %v", err)
	}

	all := types.AllSignatureSchemes()

	if s := p256.ChooseScheme(all); s == nil || s.Scheme() != types.ECDSA_NISTP256_SHA256 {
		t.Errorf("P-256 key chose %v, want ECDSA_NISTP256_SHA256", s)
	}
	if s := p384.ChooseScheme(all); s == nil || s.Scheme() != types.ECDSA_NISTP384_SHA384 {
		t.Errorf("P-384 key chose %v, want ECDSA_NISTP384_SHA384", s)
	}

	if s := p256.ChooseScheme([]types.SignatureScheme{types.ECDSA_NISTP384_SHA384}); s != nil {
		t.Error("P-256 key must not serve the P-384 scheme")
	}
	if s := p384.ChooseScheme([]types.SignatureScheme{types.ECDSA_NISTP256_SHA256}); s != nil {
		t.Error("P-384 key must not serve the P-256 scheme")
	}
}

// TestECDSASign tests ECDSA signing end-to-end against the stdlib verifier
// for both curves and both containers.
func TestECDSASign(t *testing.T) {
	tests := []struct {
		name   string
		key    types.PrivateKeyDER
		scheme types.SignatureScheme
		hash   crypto.Hash
	}{
		{"P-256 SEC1", ecdsaSEC1DER(t, elliptic.P256()), types.ECDSA_NISTP256_SHA256, crypto.SHA256},
		{"P-256 PKCS#8", ecdsaPKCS8DER(t, elliptic.P256()), types.ECDSA_NISTP256_SHA256, crypto.SHA256},
		{"P-384 SEC1", ecdsaSEC1DER(t, elliptic.P384()), types.ECDSA_NISTP384_SHA384, crypto.SHA384},
		{"P-384 PKCS#8", ecdsaPKCS8DER(t, elliptic.P384()), types.ECDSA_NISTP384_SHA384, crypto.SHA384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseAnyECDSA(tt.key)
			if err != nil {
				t.Fatalf("ParseAnyECDSA failed: %v", err)
			}

			signer := key.ChooseScheme([]types.SignatureScheme{tt.scheme})
			if signer == nil {
				t.Fatal("ChooseScheme returned nil")
			}

			message := []byte("handshake transcript")
			sig, err := signer.Sign(message)
			if err != nil {
				t.Fatalf("Sign failed: %v", err)
			}

			h := tt.hash.New()
			h.Write(message)
			pub := key.Public().(*ecdsa.PublicKey)
			if !ecdsa.VerifyASN1(pub, h.Sum(nil), sig) {
				t.Error("VerifyASN1 rejected the signature")
			}
		})
	}
}
