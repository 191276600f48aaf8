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
	"fmt"
	"io"
	"os"
	"sync"
)

// KeyLog receives handshake secrets so external tools such as Wireshark
// can decrypt captured sessions. Implementations must be safe for
// concurrent use.
type KeyLog interface {
	// WillLog reports whether the given label would be written, letting
	// callers skip secret serialization entirely.
	WillLog(label string) bool

	// Log writes one secret keyed by label and client random.
	Log(label string, clientRandom, secret []byte) error
}

// NoKeyLog discards everything. It is the default.
type NoKeyLog struct{}

var _ KeyLog = NoKeyLog{}

func (NoKeyLog) WillLog(string) bool { return false }

func (NoKeyLog) Log(string, []byte, []byte) error { return nil }

// KeyLogFile appends secrets in the NSS key log format, one line per
// secret:
//
//	<label> <client random hex> <secret hex>
type KeyLogFile struct {
	mu sync.Mutex
	w  io.Writer
}

var _ KeyLog = (*KeyLogFile)(nil)

// NewKeyLogFile opens the file named by the SSLKEYLOGFILE environment
// variable for appending. When the variable is unset or the file cannot
// be opened, the returned log is inert.
func NewKeyLogFile() *KeyLogFile {
	path := os.Getenv("SSLKEYLOGFILE")
	if path == "" {
		return &KeyLogFile{}
	}
	// #nosec G304 - the user opted in by setting SSLKEYLOGFILE
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return &KeyLogFile{}
	}
	return &KeyLogFile{w: f}
}

// NewKeyLogWriter logs to the given writer regardless of environment.
func NewKeyLogWriter(w io.Writer) *KeyLogFile {
	return &KeyLogFile{w: w}
}

func (k *KeyLogFile) WillLog(string) bool {
	return k.w != nil
}

func (k *KeyLogFile) Log(label string, clientRandom, secret []byte) error {
	if k.w == nil {
		return nil
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	_, err := fmt.Fprintf(k.w, "%s %x %x\n", label, clientRandom, secret)
	return err
}
