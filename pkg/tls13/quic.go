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

package tls13

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// QUIC header protection (RFC 9001, section 5.4). The suite carries the
// per-AEAD masking algorithm so a QUIC stack on top of this library can
// protect packet headers without knowing which suite was negotiated.

// hpMaskLen is the mask length applied to first byte and packet number.
const hpMaskLen = 5

// hpSampleLen is the ciphertext sample length, 16 for every algorithm.
const hpSampleLen = 16

// HeaderProtector computes header protection masks from ciphertext
// samples.
type HeaderProtector interface {
	// Mask derives the 5-byte mask for one packet from a 16-byte sample.
	Mask(sample []byte) ([]byte, error)
}

// QUICAlgorithm describes how a suite masks QUIC headers and builds
// protectors from header-protection keys.
type QUICAlgorithm struct {
	name   string
	keyLen int
	newFn  func(key []byte) (HeaderProtector, error)
}

// SampleLen returns the required ciphertext sample length.
func (q *QUICAlgorithm) SampleLen() int { return hpSampleLen }

// KeyLen returns the header-protection key length.
func (q *QUICAlgorithm) KeyLen() int { return q.keyLen }

// NewHeaderProtector builds a protector from a header-protection key of
// exactly KeyLen bytes.
func (q *QUICAlgorithm) NewHeaderProtector(key []byte) (HeaderProtector, error) {
	if len(key) != q.keyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), q.keyLen)
	}
	return q.newFn(key)
}

// String returns the algorithm name.
func (q *QUICAlgorithm) String() string { return q.name }

// aesHeaderProtector masks with AES-ECB of the sample (RFC 9001, 5.4.3).
type aesHeaderProtector struct {
	block cipher.Block
}

var _ HeaderProtector = (*aesHeaderProtector)(nil)

func newAESHeaderProtector(key []byte) (HeaderProtector, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}
	return &aesHeaderProtector{block: block}, nil
}

func (p *aesHeaderProtector) Mask(sample []byte) ([]byte, error) {
	if len(sample) != hpSampleLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSampleSize, len(sample), hpSampleLen)
	}
	var out [aes.BlockSize]byte
	p.block.Encrypt(out[:], sample)
	return out[:hpMaskLen], nil
}

// chaChaHeaderProtector masks with raw ChaCha20 (RFC 9001, 5.4.4): the
// sample's first 4 bytes are the block counter, the remaining 12 the
// nonce, and the mask is the keystream over 5 zero bytes.
type chaChaHeaderProtector struct {
	key [chacha20.KeySize]byte
}

var _ HeaderProtector = (*chaChaHeaderProtector)(nil)

func newChaChaHeaderProtector(key []byte) (HeaderProtector, error) {
	p := &chaChaHeaderProtector{}
	copy(p.key[:], key)
	return p, nil
}

func (p *chaChaHeaderProtector) Mask(sample []byte) ([]byte, error) {
	if len(sample) != hpSampleLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSampleSize, len(sample), hpSampleLen)
	}

	counter := binary.LittleEndian.Uint32(sample[:4])
	c, err := chacha20.NewUnauthenticatedCipher(p.key[:], sample[4:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}
	c.SetCounter(counter)

	mask := make([]byte, hpMaskLen)
	c.XORKeyStream(mask, mask)
	return mask, nil
}

var (
	quicAES128 = &QUICAlgorithm{name: "AES_128", keyLen: 16, newFn: newAESHeaderProtector}
	quicAES256 = &QUICAlgorithm{name: "AES_256", keyLen: 32, newFn: newAESHeaderProtector}
	quicChaCha = &QUICAlgorithm{name: "CHACHA20", keyLen: chacha20.KeySize, newFn: newChaChaHeaderProtector}
)
