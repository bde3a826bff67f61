// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package schedcore implements the request scheduler at the heart of
// sws: a policy-agnostic queue abstraction with three concrete
// policies, a shared mutex/condition-variable dispatcher, and the
// request control block (RCB) data model they all operate on.
//
// # Quick Start
//
//	policy, err := schedcore.New("MLQF") // or "SJF", "RR"
//	if err != nil {
//	    log.Fatal(err)
//	}
//	disp := schedcore.NewDispatcher(policy)
//
//	// Producer (accept loop):
//	disp.Submit(conn)
//
//	// Consumers (worker goroutines):
//	io := schedcore.NewIOFunc()
//	for {
//	    rcb := disp.Next()
//	    disp.Serve(rcb, io) // writes the 200 OK status line on first call
//	}
//
// # Policies
//
//   - SJF: a binary min-heap keyed by total file size, served to
//     completion non-preemptively.
//   - RR: a single FIFO, served one 8 KiB quantum at a time.
//   - MLQF: three FIFOs (8 KiB / 64 KiB / round-robin) with demotion on
//     an unfinished quantum.
//
// # Concurrency Model
//
// Exactly one producer goroutine calls Submit; any number of worker
// goroutines call Next then Serve in a loop. Dispatcher.Submit and
// Dispatcher.Next acquire the dispatcher's mutex for the duration of a
// policy's Insert/Dequeue call; Serve always runs with the mutex
// released, since I/O dominates and must be parallelizable across
// workers. A worker blocks in Next only when every policy queue is
// empty, waking via the condition variable signaled after every
// successful Submit or re-enqueue.
//
// # Error Handling
//
// Submit-time errors ([ErrBadRequest], [ErrNotFound]) are isolated to
// the one offending connection; the server continues unaffected.
// [ErrAborted] marks an RCB abandoned mid-serve (socket write or file
// read failure) rather than completed. [ErrUnknownPolicy] is the only
// sentinel that should be treated as fatal, and only at startup, before
// any connection is accepted.
package schedcore
