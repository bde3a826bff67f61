// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package netio is the TCP accept-loop and request-line collaborator
// described at the interface level in §6 of the scheduler spec: the
// scheduler core never touches a net.Listener directly, only the
// already-accepted net.Conn and the parsed method/path pair.
package netio

import (
	"bufio"
	"fmt"
	"net"
	"strings"
)

// maxRequestLine is the maximum number of bytes read while looking for
// the request line, matching the spec's "reads up to 8192 bytes".
const maxRequestLine = 8192

// Listener wraps net.Listen("tcp", ...), standing in for the source's
// network_init/network_wait/network_open collaborator trio.
type Listener struct {
	ln net.Listener
}

// Listen opens a TCP listener on the given port.
func Listen(port int) (*Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	return &Listener{ln: ln}, nil
}

// Accept blocks until a client connects, returning the accepted
// connection. This is the Go equivalent of network_wait + network_open.
func (l *Listener) Accept() (net.Conn, error) {
	return l.ln.Accept()
}

// Close releases the listening socket.
func (l *Listener) Close() error {
	return l.ln.Close()
}

// Addr reports the listener's bound network address, mainly useful for
// tests that bind an ephemeral port.
func (l *Listener) Addr() string {
	return l.ln.Addr().String()
}

// ReadRequestLine reads the first line of an HTTP request from conn and
// splits it on whitespace, returning the method and the raw path token.
// Only the first two whitespace-separated tokens matter: the method and
// the path; anything after (e.g. "HTTP/1.1") is ignored, matching §6's
// "only method and first token matter."
func ReadRequestLine(conn net.Conn) (method, path string, err error) {
	r := bufio.NewReaderSize(conn, maxRequestLine)
	// ReadSlice stops at a full buffer, so at most maxRequestLine bytes
	// are ever considered; a longer line is parsed from its first
	// maxRequestLine bytes.
	slice, err := r.ReadSlice('\n')
	line := string(slice)
	if err != nil && line == "" {
		return "", "", err
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "", fmt.Errorf("netio: malformed request line %q", strings.TrimSpace(line))
	}
	return fields[0], fields[1], nil
}
