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
	"crypto/rsa"
	"testing"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// TestRSAChooseScheme tests that scheme selection follows the key's
// preference order regardless of how the peer orders its list.
func TestRSAChooseScheme(t *testing.T) {
	key, err := ParseAny(rsaPKCS1DER(t))
	if err != nil {
		t.Fatalf("ParseAny failed: %v", err)
	}

	tests := []struct {
		name    string
		offered []types.SignatureScheme
		want    types.SignatureScheme
	}{
		{
			name:    "PSS outranks PKCS1",
			offered: []types.SignatureScheme{types.RSA_PKCS1_SHA256, types.RSA_PSS_SHA256},
			want:    types.RSA_PSS_SHA256,
		},
		{
			name:    "longer hash outranks within PSS",
			offered: []types.SignatureScheme{types.RSA_PSS_SHA256, types.RSA_PSS_SHA512},
			want:    types.RSA_PSS_SHA512,
		},
		{
			name:    "offered order does not matter",
			offered: []types.SignatureScheme{types.RSA_PSS_SHA512, types.RSA_PSS_SHA256},
			want:    types.RSA_PSS_SHA512,
		},
		{
			name:    "PKCS1 only",
			offered: []types.SignatureScheme{types.ED25519, types.RSA_PKCS1_SHA384},
			want:    types.RSA_PKCS1_SHA384,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer := key.ChooseScheme(tt.offered)
			if signer == nil {
				t.Fatal("ChooseScheme returned nil")
			}
			if signer.Scheme() != tt.want {
				t.Errorf("Scheme() = %v, want %v", signer.Scheme(), tt.want)
			}
		})
	}

	t.Run("no overlap", func(t *testing.T) {
		offered := []types.SignatureScheme{types.ED25519, types.ECDSA_NISTP256_SHA256}
		if signer := key.ChooseScheme(offered); signer != nil {
			t.Fatalf("expected nil signer, got scheme %v", signer.Scheme())
		}
	})
}

// TestRSASignPSS tests PSS signing end-to-end against the stdlib verifier.
func TestRSASignPSS(t *testing.T) {
	key, err := ParseAny(rsaPKCS8DER(t))
	if err != nil {
		t.Fatalf("ParseAny failed: %v", err)
	}

	signer := key.ChooseScheme([]types.SignatureScheme{types.RSA_PSS_SHA384})
	if signer == nil {
		t.Fatal("ChooseScheme returned nil")
	}

	message := []byte("TLS 1.3 client CertificateVerify content")
	sig, err := signer.Sign(message)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	pub := key.Public().(*rsa.PublicKey)
	if len(sig) != pub.Size() {
		t.Errorf("signature length %d, want modulus length %d", len(sig), pub.Size())
	}

	h := crypto.SHA384.New()
	h.Write(message)
	opts := &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: crypto.SHA384}
	if err := rsa.VerifyPSS(pub, crypto.SHA384, h.Sum(nil), sig, opts); err != nil {
		t.Errorf("VerifyPSS failed: %v", err)
	}
}

// TestRSASignPKCS1 tests PKCS#1 v1.5 signing end-to-end against the stdlib
// verifier.
func TestRSASignPKCS1(t *testing.T) {
	key, err := ParseAny(rsaPKCS1DER(t))
	if err != nil {
		t.Fatalf("ParseAny failed: %v", err)
	}

	signer := key.ChooseScheme([]types.SignatureScheme{types.RSA_PKCS1_SHA256})
	if signer == nil {
		t.Fatal("ChooseScheme returned nil")
	}

	message := []byte("handshake transcript")
	sig, err := signer.Sign(message)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	pub := key.Public().(*rsa.PublicKey)
	if len(sig) != pub.Size() {
		t.Errorf("signature length %d, want modulus length %d", len(sig), pub.Size())
	}

	h := crypto.SHA256.New()
	h.Write(message)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, h.Sum(nil), sig); err != nil {
		t.Errorf("VerifyPKCS1v15 failed: %v", err)
	}
}
