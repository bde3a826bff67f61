// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netio_test

import (
	"net"
	"testing"

	"code.hybscloud.com/sws/internal/netio"
)

func TestReadRequestLineParsesMethodAndPath(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go client.Write([]byte("GET /index.html HTTP/1.1\r\n"))

	method, path, err := netio.ReadRequestLine(server)
	if err != nil {
		t.Fatalf("ReadRequestLine: %v", err)
	}
	if method != "GET" {
		t.Fatalf("method: got %q, want %q", method, "GET")
	}
	if path != "/index.html" {
		t.Fatalf("path: got %q, want %q", path, "/index.html")
	}
}

func TestReadRequestLineRejectsMalformed(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go client.Write([]byte("justonefield\n"))

	_, _, err := netio.ReadRequestLine(server)
	if err == nil {
		t.Fatalf("ReadRequestLine: got nil error, want malformed-line error")
	}
}

func TestListenAndAccept(t *testing.T) {
	// Port 0 (ephemeral) is not part of the CLI's <port> contract, but
	// Listener itself has no opinion on port numbers; it only wraps
	// net.Listen, so an ephemeral port is the simplest way to exercise
	// Accept without a fixed-port collision risk in CI.
	ln, err := netio.Listen(0)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	addr := ln.Addr()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			close(accepted)
			return
		}
		accepted <- conn
	}()

	client, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	conn, ok := <-accepted
	if !ok || conn == nil {
		t.Fatalf("Accept: got no connection")
	}
	defer conn.Close()
}
