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
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/jeremyhahn/go-tlsclient/pkg/types"
)

// PKCS#8 PrivateKeyInfo templates for the supported named curves. Each is
// the version INTEGER (0) followed by the AlgorithmIdentifier SEQUENCE
// carrying id-ecPublicKey (1.2.840.10045.2.1) and the curve OID.
var (
	// prime256v1 (1.2.840.10045.3.1.7)
	pkcs8PrefixP256 = []byte{
		0x02, 0x01, 0x00,
		0x30, 0x13,
		0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01,
		0x06, 0x08, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07,
	}

	// secp384r1 (1.3.132.0.34)
	pkcs8PrefixP384 = []byte{
		0x02, 0x01, 0x00,
		0x30, 0x10,
		0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01,
		0x06, 0x05, 0x2b, 0x81, 0x04, 0x00, 0x22,
	}
)

// SEC1ToPKCS8 wraps a SEC1 EC private key (RFC 5915) into an unencrypted
// PKCS#8 PrivateKeyInfo for the given named curve.
//
// The SEC1 payload is embedded as-is inside an OCTET STRING behind a fixed
// per-curve template; it is not parsed or validated here. A payload whose
// embedded curve disagrees with the requested template is rejected later,
// when the resulting PKCS#8 document is parsed.
//
// Only secp256r1 and secp384r1 have templates. Other curves return
// ErrUnsupportedCurve.
func SEC1ToPKCS8(sec1 []byte, curve types.NamedGroup) ([]byte, error) {
	if len(sec1) == 0 {
		return nil, ErrInvalidData
	}

	var prefix []byte
	switch curve {
	case types.SECP256R1:
		prefix = pkcs8PrefixP256
	case types.SECP384R1:
		prefix = pkcs8PrefixP384
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurve, curve)
	}

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddBytes(prefix)
		b.AddASN1(asn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddBytes(sec1)
		})
	})

	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return der, nil
}
