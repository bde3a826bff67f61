// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

import (
	"net"
	"os"
	"time"
)

// Tier is the MLQF priority level an RCB currently belongs to. SJF and RR
// leave Tier at its zero value; it is meaningful only to the MLQF policy.
type Tier int

const (
	// TierT0 is the 8 KiB quantum tier. Every new RCB starts here.
	TierT0 Tier = iota
	// TierT1 is the 64 KiB quantum tier, entered on demotion from T0.
	TierT1
	// TierT2 is the round-robin tier, entered on demotion from T1. Tier
	// never advances past T2.
	TierT2
)

func (t Tier) String() string {
	switch t {
	case TierT0:
		return "T0"
	case TierT1:
		return "T1"
	case TierT2:
		return "T2"
	default:
		return "T?"
	}
}

// RCB is a request control block: the per-request state a policy queues,
// serves, and eventually destroys.
//
// An RCB is, at any instant, in exactly one of: owned by the dispatcher
// (submission in flight), a member of exactly one policy queue, being
// served by exactly one worker, or destroyed. Field access outside of
// that single holder is a bug; nothing in this package provides locking
// at the RCB level, only at the policy's queue level.
type RCB struct {
	// SeqNum is the monotonically assigned identity, unique for the
	// process lifetime, assigned under the dispatcher mutex.
	SeqNum uint64

	// Conn is the client connection, owned by the RCB from submission to
	// completion or abandonment.
	Conn net.Conn

	// Path is the requested path string exactly as it appeared in the
	// request line, leading slash included; servefs.Open strips the slash
	// when resolving it against the server's current working directory.
	Path string

	// File is an open, readable handle on the requested file.
	File *os.File

	// TotBytes is the file size at submission time. Immutable after
	// construction.
	TotBytes int64

	// SntBytes is the count of bytes already written to Conn. Monotone
	// nondecreasing; completion is defined as SntBytes == TotBytes.
	SntBytes int64

	// Tier is the MLQF priority level; unused by SJF and RR.
	Tier Tier

	// StatusSent guards the worker loop's rule that the HTTP status line
	// is emitted exactly once per RCB, even across RR/MLQF re-enqueues.
	StatusSent bool

	// link is the FIFO successor pointer, used by RR and MLQF. It is nil
	// when the RCB is not a member of a linked-list queue.
	link *RCB

	// SubmittedAt is the wall-clock time submit() constructed this RCB.
	// Observational only: no policy's ordering decision reads it.
	SubmittedAt time.Time
}

// statusOK is the success status line a worker writes exactly once per
// RCB, before the first byte of the body, per §4.6.
const statusOK = "HTTP/1.1 200 OK\n\n"

// SendStatus writes the 200 OK status line the first time it is called
// for this RCB, and is a no-op on every subsequent call — the guard
// that keeps RR/MLQF re-enqueues from re-emitting it.
func (r *RCB) SendStatus() error {
	if r.StatusSent {
		return nil
	}
	r.StatusSent = true
	_, err := r.Conn.Write([]byte(statusOK))
	return err
}

// Remaining reports how many bytes are left to send.
func (r *RCB) Remaining() int64 {
	return r.TotBytes - r.SntBytes
}

// Done reports whether the RCB has sent every byte of its file.
func (r *RCB) Done() bool {
	return r.SntBytes >= r.TotBytes
}

// Close releases the RCB's owned resources at destruction time
// (invariant 3: fd and file are closed exactly once). It nils each field
// it closes, so a repeated call is a no-op.
func (r *RCB) Close() {
	if r.File != nil {
		_ = r.File.Close()
		r.File = nil
	}
	if r.Conn != nil {
		_ = r.Conn.Close()
		r.Conn = nil
	}
}
