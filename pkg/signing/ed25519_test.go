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
	"crypto/ed25519"
	"testing"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// TestEd25519Sign tests Ed25519 signing end-to-end against the stdlib
// verifier.
func TestEd25519Sign(t *testing.T) {
	key, err := ParseAnyEdDSA(ed25519PKCS8DER(t))
	if err != nil {
		t.Fatalf("ParseAnyEdDSA failed: %v", err)
	}

	signer := key.ChooseScheme(types.AllSignatureSchemes())
	if signer == nil {
		t.Fatal("ChooseScheme returned nil")
	}
	if signer.Scheme() != types.ED25519 {
		t.Errorf("Scheme() = %v, want ED25519", signer.Scheme())
	}

	message := []byte("handshake transcript")
	sig, err := signer.Sign(message)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if len(sig) != ed25519.SignatureSize {
		t.Errorf("signature length %d, want %d", len(sig), ed25519.SignatureSize)
	}

	pub := key.Public().(ed25519.PublicKey)
	if !ed25519.Verify(pub, message, sig) {
		t.Error("Verify rejected the signature")
	}
}

// TestEd25519ChooseScheme_NoOverlap tests that an Ed25519 key refuses every
// non-Ed25519 scheme.
func TestEd25519ChooseScheme_NoOverlap(t *testing.T) {
	key, err := ParseAnyEdDSA(ed25519PKCS8DER(t))
	if err != nil {
		t.Fatalf("ParseAnyEdDSA failed: %v", err)
	}

	offered := []types.SignatureScheme{
		types.RSA_PSS_SHA256,
		types.ECDSA_NISTP256_SHA256,
	}
	if signer := key.ChooseScheme(offered); signer != nil {
		t.Fatalf("expected nil signer, got scheme %v", signer.Scheme())
	}
}
