// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

// mlqfQuanta maps a tier to its quantum, in IOUnit-sized read/write
// cycles: T0 gets 1 (8 KiB), T1 and T2 get 8 (64 KiB).
var mlqfQuanta = [3]int{1, 8, 8}

// MLQF is the three-level Multi-Level Queue with Feedback policy: three
// independent FIFOs with strict priority Q0 > Q1 > Q2. It approximates
// SJF without knowing file sizes a priori — small files finish in T0
// before any large file occupies a worker for long; only long-lived
// flows reach T2, where they round-robin among themselves. Tier is
// never decremented; there is no anti-aging.
type MLQF struct {
	q [3]fifo
}

// NewMLQF constructs an empty MLQF policy.
func NewMLQF() *MLQF {
	return &MLQF{}
}

func (p *MLQF) Name() string { return "MLQF" }

// Insert appends rcb to the FIFO for its current tier. New RCBs have
// the zero-value Tier, TierT0, so first-time submissions land in Q0
// without the caller needing to set Tier explicitly.
func (p *MLQF) Insert(rcb *RCB) {
	p.q[rcb.Tier].pushBack(rcb)
}

// Dequeue scans Q0, Q1, Q2 in strict priority order and returns the
// head of the first non-empty queue.
func (p *MLQF) Dequeue() (*RCB, bool) {
	for tier := range p.q {
		if rcb, ok := p.q[tier].popFront(); ok {
			return rcb, true
		}
	}
	return nil, false
}

// Serve runs rcb's current tier's quantum (1 read/write cycle for T0,
// 8 for T1/T2). On completion, nothing is reinserted. On an unfinished
// quantum, T0 and T1 demote and reinsert one tier down; T2 reinserts at
// its own tail.
func (p *MLQF) Serve(rcb *RCB, io IOFunc, reinsert func(*RCB)) Outcome {
	quantum := mlqfQuanta[rcb.Tier]
	for i := 0; i < quantum && !rcb.Done(); i++ {
		if _, err := io(rcb); err != nil {
			return Aborted
		}
	}
	if rcb.Done() {
		return Completed
	}
	if rcb.Tier < TierT2 {
		rcb.Tier++
	}
	reinsert(rcb)
	return Requeued
}
