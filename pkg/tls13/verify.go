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

import "fmt"

// Side is the handshake role whose CertificateVerify is being built.
type Side uint8

const (
	// Client builds the client CertificateVerify payload.
	Client Side = iota

	// Server builds the server CertificateVerify payload.
	Server
)

// String returns the role name.
func (s Side) String() string {
	switch s {
	case Client:
		return "client"
	case Server:
		return "server"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Context strings from RFC 8446, section 4.4.3, with the terminating NUL
// included.
var (
	clientVerifyContext = []byte("TLS 1.3, client CertificateVerify\x00")
	serverVerifyContext = []byte("TLS 1.3, server CertificateVerify\x00")
)

// ConstructVerifyMessage builds the to-be-signed CertificateVerify content
// from RFC 8446, section 4.4.3: 64 bytes of 0x20, the role's context
// string, a NUL separator, then the transcript hash verbatim. The hash
// length is not validated; the caller owns transcript correctness.
func ConstructVerifyMessage(transcriptHash []byte, side Side) []byte {
	context := clientVerifyContext
	if side == Server {
		context = serverVerifyContext
	}

	msg := make([]byte, 0, 64+len(context)+len(transcriptHash))
	for i := 0; i < 64; i++ {
		msg = append(msg, 0x20)
	}
	msg = append(msg, context...)
	msg = append(msg, transcriptHash...)
	return msg
}

// ClientVerifyMessage builds the client-side payload.
func ClientVerifyMessage(transcriptHash []byte) []byte {
	return ConstructVerifyMessage(transcriptHash, Client)
}

// ServerVerifyMessage builds the server-side payload.
func ServerVerifyMessage(transcriptHash []byte) []byte {
	return ConstructVerifyMessage(transcriptHash, Server)
}
