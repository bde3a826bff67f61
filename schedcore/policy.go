// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

// IOUnit is the fixed read/write chunk size every policy's serve loop
// operates in, in bytes.
const IOUnit = 8 * 1024

// Outcome reports what happened to an RCB after one call to
// Policy.Serve, so the dispatcher and worker loop know whether to
// destroy it, log completion, or simply move on because it was handed
// back to the queue already.
type Outcome int

const (
	// Completed means the RCB sent every byte; it should be destroyed
	// and its completion logged.
	Completed Outcome = iota
	// Aborted means a socket write or file read failed mid-serve; the
	// RCB should be destroyed without a completion log.
	Aborted
	// Requeued means the policy already reinserted the RCB (via the
	// reinsert callback); the caller does nothing further.
	Requeued
)

// Policy is the uniform contract every scheduling policy implements.
//
// insert and dequeue are always called with the dispatcher's mutex held;
// they must not block. serve is always called with the mutex released,
// since I/O is the dominant cost and must be parallelizable across
// workers.
//
// Implementations encapsulate their own queue storage; the dispatcher
// holds exactly one Policy value for the lifetime of the process.
type Policy interface {
	// Name identifies the policy, for logging and CLI validation.
	Name() string

	// Insert places rcb in the policy's internal structure. Must not
	// fail for memory-admissible inputs; may grow internal storage.
	// Does not block.
	Insert(rcb *RCB)

	// Dequeue removes and returns the highest-priority RCB by the
	// policy's ordering. Returns (nil, false) iff no RCB is queued.
	// Does not block.
	Dequeue() (*RCB, bool)

	// Serve performs one scheduling unit of work for rcb: a full serve
	// for SJF, a single quantum for RR and MLQF. reinsert is called (by
	// Serve itself), never by the caller, to hand a not-yet-complete
	// rcb back to the dispatcher, which reacquires the mutex and
	// signals workers; io supplies the chunked file-to-socket copy
	// primitive shared by every policy.
	Serve(rcb *RCB, io IOFunc, reinsert func(*RCB)) Outcome
}

// IOFunc copies up to IOUnit bytes from rcb.File to rcb.Conn, advancing
// rcb.SntBytes, and returns the number of bytes copied and any I/O
// error. A return of (0, nil) with rcb.Done() true indicates a clean
// EOF-at-boundary completion.
type IOFunc func(rcb *RCB) (n int, err error)
