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
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"strings"

	"github.com/youmark/pkcs8"
)

// ParsePKCS8 parses an unencrypted PKCS#8 PrivateKeyInfo (RFC 5958).
//
// Returns the private key as crypto.PrivateKey (type assert to the specific
// type if needed).
func ParsePKCS8(der []byte) (crypto.PrivateKey, error) {
	if len(der) == 0 {
		return nil, ErrInvalidData
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// ParsePKCS1 parses an RSA private key in PKCS#1 ASN.1 DER (RFC 8017).
func ParsePKCS1(der []byte) (*rsa.PrivateKey, error) {
	if len(der) == 0 {
		return nil, ErrInvalidData
	}

	key, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// ParseSEC1 parses an EC private key in SEC1 ASN.1 DER (RFC 5915). The
// curve is taken from the structure's embedded parameters.
func ParseSEC1(der []byte) (*ecdsa.PrivateKey, error) {
	if len(der) == 0 {
		return nil, ErrInvalidData
	}

	key, err := x509.ParseECPrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// ParseEncryptedPKCS8 parses a password-protected PKCS#8 EncryptedPrivateKeyInfo.
// An unencrypted document also parses when password is nil.
//
// Example:
//
//	key, err := encoding.ParseEncryptedPKCS8(derData, []byte("mypassword"))
//	rsaKey := key.(*rsa.PrivateKey)
func ParseEncryptedPKCS8(der []byte, password []byte) (crypto.PrivateKey, error) {
	if len(der) == 0 {
		return nil, ErrInvalidData
	}

	key, err := pkcs8.ParsePKCS8PrivateKey(der, password)
	if err != nil {
		if isPasswordError(err) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	privKey, ok := key.(crypto.PrivateKey)
	if !ok {
		return nil, ErrInvalidPrivateKey
	}
	return privKey, nil
}

// isPasswordError checks if an error is related to an incorrect password.
// The pkcs8 package returns various error messages for password issues.
func isPasswordError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	passwordErrors := []string{
		"pkcs8: incorrect password",
		"incorrect password",
		"asn1: structure error",
		"tags don't match",
	}

	for _, msg := range passwordErrors {
		if strings.Contains(errMsg, msg) {
			return true
		}
	}
	return false
}
