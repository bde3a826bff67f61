// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

import (
	"errors"
	"net"
	"sync"
	"time"

	"code.hybscloud.com/sws/internal/netio"
	"code.hybscloud.com/sws/internal/servefs"
)

// Dispatcher protects the active policy object with one mutex and
// coordinates the accept goroutine (the producer calling Submit) with
// worker goroutines (the consumers calling Next then Serve), exactly as
// described in §4.5. Workers block on a condition variable when
// Dequeue returns empty; Submit and re-enqueue both signal the
// condition after a successful Insert.
type Dispatcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	policy  Policy
	nextSeq uint64
}

// NewDispatcher wraps policy with the mutex/condition-variable protocol.
func NewDispatcher(policy Policy) *Dispatcher {
	d := &Dispatcher{policy: policy}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// Policy returns the active scheduling policy, mainly for logging the
// configured scheduler name at startup.
func (d *Dispatcher) Policy() Policy {
	return d.policy
}

// statusBadRequest and statusNotFound are the two failure status lines
// §4.5 requires submit(fd) to write itself, before closing fd. The
// success line, 200 OK, is a worker's responsibility (§4.6) because it
// is only known once a worker actually dequeues the RCB.
const (
	statusBadRequest = "HTTP/1.1 400 Bad request\n\n"
	statusNotFound   = "HTTP/1.1 404 File not found\n\n"
)

// Submit implements §4.5's submit(fd): reads the request line and
// validates "GET <path>". On parse failure or a missing file it writes
// the matching status line, closes conn itself, and returns the
// sentinel error purely for the caller's logging — the connection is
// already fully handled. On success it stats/opens the file,
// constructs an RCB, assigns its seq_num, inserts it into the active
// policy, and signals any waiting worker; conn stays open for a worker
// to write the 200 status line and stream the body.
//
// Submit never blocks on the dispatcher mutex for the I/O it performs
// before enqueueing: the socket read and filesystem stat/open happen
// before the lock is acquired, matching §4.5's division of labor (the
// mutex protects only the policy's queue state, not request parsing).
func (d *Dispatcher) Submit(conn net.Conn) (*RCB, error) {
	method, path, err := netio.ReadRequestLine(conn)
	if err != nil || method != "GET" {
		_, _ = conn.Write([]byte(statusBadRequest))
		_ = conn.Close()
		return nil, ErrBadRequest
	}

	file, size, err := servefs.Open(path)
	if err != nil {
		_, _ = conn.Write([]byte(statusNotFound))
		_ = conn.Close()
		if errors.Is(err, servefs.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrNotFound
	}

	rcb := &RCB{
		Conn:        conn,
		Path:        path,
		File:        file,
		TotBytes:    size,
		SubmittedAt: time.Now(),
	}

	d.mu.Lock()
	d.nextSeq++
	rcb.SeqNum = d.nextSeq
	d.policy.Insert(rcb)
	d.cond.Signal()
	d.mu.Unlock()

	return rcb, nil
}

// Next implements §4.5's next(): blocks on the condition variable while
// the active policy's queue is empty, retrying on every wakeup per the
// standard predicate-loop idiom (tolerating spurious wakeups), and
// returns a dequeued RCB with the mutex released.
func (d *Dispatcher) Next() *RCB {
	d.mu.Lock()
	defer d.mu.Unlock()
	for {
		if rcb, ok := d.policy.Dequeue(); ok {
			return rcb
		}
		d.cond.Wait()
	}
}

// reinsert re-acquires the mutex to hand an unfinished RCB back to the
// policy, then signals any waiting worker. It is only ever called by a
// Policy implementation, from within its own Serve method, never
// directly by a worker.
func (d *Dispatcher) reinsert(rcb *RCB) {
	d.mu.Lock()
	d.policy.Insert(rcb)
	d.cond.Signal()
	d.mu.Unlock()
}

// Serve runs one scheduling unit of work for rcb, without holding the
// dispatcher mutex, so that I/O across workers is fully parallel. io
// should ordinarily be a fresh NewIOFunc() per worker goroutine, never
// shared across goroutines.
//
// Serve writes the 200 OK status line first, guarded by rcb.StatusSent
// so a RR/MLQF re-enqueue never emits it twice, matching §4.6's "write
// the status line... once per RCB."
func (d *Dispatcher) Serve(rcb *RCB, io IOFunc) Outcome {
	if err := rcb.SendStatus(); err != nil {
		return Aborted
	}
	return d.policy.Serve(rcb, io, d.reinsert)
}
