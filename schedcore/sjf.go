// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

import "container/heap"

// sjfInitialCap is the dynamic array's starting capacity; it doubles on
// overflow, matching container/heap's slice growth for free.
const sjfInitialCap = 100

// sjfHeap is a binary min-heap keyed by TotBytes. Ties are broken
// arbitrarily: stable ordering across equal-sized files is not
// required (§9 OQ3).
type sjfHeap []*RCB

func (h sjfHeap) Len() int { return len(h) }

func (h sjfHeap) Less(i, j int) bool {
	return h[i].TotBytes < h[j].TotBytes
}

func (h sjfHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *sjfHeap) Push(x any) {
	*h = append(*h, x.(*RCB))
}

func (h *sjfHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// SJF is the Shortest Job First policy: a min-heap keyed by total file
// size, serving each dequeued RCB to completion without preemption.
// Preemption gains nothing here because the ordering key never changes
// once an RCB is queued.
type SJF struct {
	h sjfHeap
}

// NewSJF constructs an empty SJF policy with the spec's documented
// initial heap capacity.
func NewSJF() *SJF {
	h := make(sjfHeap, 0, sjfInitialCap)
	return &SJF{h: h}
}

func (p *SJF) Name() string { return "SJF" }

// Insert appends rcb and sifts it up into heap order.
func (p *SJF) Insert(rcb *RCB) {
	heap.Push(&p.h, rcb)
}

// Dequeue pops the smallest-TotBytes RCB, moving the heap's last
// element to the root and sifting down.
func (p *SJF) Dequeue() (*RCB, bool) {
	if len(p.h) == 0 {
		return nil, false
	}
	return heap.Pop(&p.h).(*RCB), true
}

// Serve runs rcb to completion: repeated IOUnit read/write cycles until
// SntBytes == TotBytes or an I/O error occurs. No preemption, no
// re-enqueue — SJF never calls reinsert.
func (p *SJF) Serve(rcb *RCB, io IOFunc, reinsert func(*RCB)) Outcome {
	for !rcb.Done() {
		if _, err := io(rcb); err != nil {
			return Aborted
		}
	}
	return Completed
}
