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
	"encoding/pem"
	"fmt"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// PEM block types
const (
	PEMTypeRSAPrivateKey       = "RSA PRIVATE KEY"
	PEMTypeECPrivateKey        = "EC PRIVATE KEY"
	PEMTypePrivateKey          = "PRIVATE KEY"
	PEMTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	PEMTypeCertificate         = "CERTIFICATE"
)

// DecodePrivateKeyPEM scans the input for the first private key PEM block
// and returns its DER bytes tagged with the container format the block type
// declares:
//
//   - "RSA PRIVATE KEY" tags PKCS#1
//   - "EC PRIVATE KEY" tags SEC1
//   - "PRIVATE KEY" tags PKCS#8
//
// Non-key blocks (certificates, parameters) are skipped. Encrypted keys are
// not handled here; see ParseEncryptedPKCS8.
func DecodePrivateKeyPEM(data []byte) (types.PrivateKeyDER, error) {
	if len(data) == 0 {
		return types.PrivateKeyDER{}, ErrInvalidData
	}

	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return types.PrivateKeyDER{}, fmt.Errorf("%w: no private key", ErrNoPEMBlock)
		}

		switch block.Type {
		case PEMTypeRSAPrivateKey:
			return types.PKCS1Key(block.Bytes), nil
		case PEMTypeECPrivateKey:
			return types.SEC1Key(block.Bytes), nil
		case PEMTypePrivateKey:
			return types.PKCS8Key(block.Bytes), nil
		case PEMTypeEncryptedPrivateKey:
			return types.PrivateKeyDER{}, fmt.Errorf("%w: %q requires a password", ErrUnknownPEMType, block.Type)
		}
	}
}

// DecodeCertificatesPEM returns the DER bytes of every CERTIFICATE block in
// the input, in order. Other block types are skipped.
func DecodeCertificatesPEM(data []byte) ([]types.CertificateDER, error) {
	if len(data) == 0 {
		return nil, ErrInvalidData
	}

	var certs []types.CertificateDER
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type == PEMTypeCertificate {
			certs = append(certs, types.CertificateDER(block.Bytes))
		}
	}

	if len(certs) == 0 {
		return nil, fmt.Errorf("%w: no certificates", ErrNoPEMBlock)
	}
	return certs, nil
}
