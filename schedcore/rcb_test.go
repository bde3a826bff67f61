// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore_test

import (
	"net"
	"testing"

	"code.hybscloud.com/sws/schedcore"
)

// =============================================================================
// RCB - Invariants
// =============================================================================

func TestRCBRemainingAndDone(t *testing.T) {
	rcb := &schedcore.RCB{TotBytes: 100}

	if rcb.Remaining() != 100 {
		t.Fatalf("Remaining: got %d, want 100", rcb.Remaining())
	}
	if rcb.Done() {
		t.Fatalf("Done: got true, want false")
	}

	rcb.SntBytes = 100
	if rcb.Remaining() != 0 {
		t.Fatalf("Remaining after full send: got %d, want 0", rcb.Remaining())
	}
	if !rcb.Done() {
		t.Fatalf("Done after full send: got false, want true")
	}
}

func TestRCBSendStatusOnce(t *testing.T) {
	c1, c2 := net.Pipe()
	defer c1.Close()
	defer c2.Close()

	rcb := &schedcore.RCB{Conn: c1}
	done := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 64)
		n, _ := c2.Read(buf)
		done <- buf[:n]
	}()

	if err := rcb.SendStatus(); err != nil {
		t.Fatalf("SendStatus: %v", err)
	}
	got := <-done
	if string(got) != "HTTP/1.1 200 OK\n\n" {
		t.Fatalf("SendStatus wrote %q, want %q", got, "HTTP/1.1 200 OK\n\n")
	}
	if !rcb.StatusSent {
		t.Fatalf("StatusSent: got false, want true")
	}

	// Second call must not write again.
	if err := rcb.SendStatus(); err != nil {
		t.Fatalf("SendStatus (second call): %v", err)
	}
}

func TestRCBCloseIsIdempotentAndNils(t *testing.T) {
	c1, c2 := net.Pipe()
	defer c2.Close()

	rcb := &schedcore.RCB{Conn: c1}
	rcb.Close()
	if rcb.Conn != nil {
		t.Fatalf("Conn after Close: got non-nil, want nil")
	}
	// Calling again must not panic.
	rcb.Close()
}
