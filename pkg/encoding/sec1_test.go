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

package encoding

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"errors"
	"testing"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

func TestSEC1ToPKCS8_P256(t *testing.T) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate ECDSA key: %v", err)
	}
	sec1, err := x509.MarshalECPrivateKey(privateKey)
	if err != nil {
		t.Fatalf("Failed to marshal SEC1: %v", err)
	}

	der, err := SEC1ToPKCS8(sec1, types.SECP256R1)
	if err != nil {
		t.Fatalf("SEC1ToPKCS8 failed: %v", err)
	}

	// The stdlib PKCS#8 parser must accept the converted document and
	// recover the same key.
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		t.Fatalf("Converted PKCS#8 does not parse: %v", err)
	}
	ecKey, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		t.Fatal("Parsed key is not *ecdsa.PrivateKey")
	}
	if ecKey.Curve != elliptic.P256() {
		t.Fatalf("Parsed curve %v, want P-256", ecKey.Curve)
	}
	if ecKey.D.Cmp(privateKey.D) != 0 {
		t.Fatal("Parsed key D doesn't match original")
	}
}

func TestSEC1ToPKCS8_P384(t *testing.T) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate ECDSA key: %v", err)
	}
	sec1, err := x509.MarshalECPrivateKey(privateKey)
	if err != nil {
		t.Fatalf("Failed to marshal SEC1: %v", err)
	}

	der, err := SEC1ToPKCS8(sec1, types.SECP384R1)
	if err != nil {
		t.Fatalf("SEC1ToPKCS8 failed: %v", err)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		t.Fatalf("Converted PKCS#8 does not parse: %v", err)
	}
	ecKey, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		t.Fatal("Parsed key is not *ecdsa.PrivateKey")
	}
	if ecKey.Curve != elliptic.P384() {
		t.Fatalf("Parsed curve %v, want P-384", ecKey.Curve)
	}
}

// TestSEC1ToPKCS8_CurveMismatch wraps a P-384 SEC1 body in the P-256
// template. The conversion itself is pure templating and succeeds; the
// downstream PKCS#8 parse is where the mismatch must surface.
func TestSEC1ToPKCS8_CurveMismatch(t *testing.T) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate ECDSA key: %v", err)
	}
	sec1, err := x509.MarshalECPrivateKey(privateKey)
	if err != nil {
		t.Fatalf("Failed to marshal SEC1: %v", err)
	}

	der, err := SEC1ToPKCS8(sec1, types.SECP256R1)
	if err != nil {
		t.Fatalf("SEC1ToPKCS8 failed: %v", err)
	}
	if _, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		t.Fatal("Expected mismatched curve to fail PKCS#8 parsing")
	}
}

func TestSEC1ToPKCS8_UnsupportedCurve(t *testing.T) {
	sec1 := []byte{0x30, 0x05, 0x02, 0x01, 0x01, 0x04, 0x00}

	if _, err := SEC1ToPKCS8(sec1, types.X25519); !errors.Is(err, ErrUnsupportedCurve) {
		t.Fatalf("Expected ErrUnsupportedCurve, got %v", err)
	}
}

func TestSEC1ToPKCS8_Empty(t *testing.T) {
	if _, err := SEC1ToPKCS8(nil, types.SECP256R1); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("Expected ErrInvalidData, got %v", err)
	}
}
