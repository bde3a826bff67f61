// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

// fifo is a singly-linked FIFO queue of *RCB, using the RCB's own link
// field for membership. head owns the chain; tail is a non-owning
// cursor, valid only while the dispatcher mutex is held.
type fifo struct {
	head, tail *RCB
}

func (q *fifo) pushBack(rcb *RCB) {
	rcb.link = nil
	if q.tail == nil {
		q.head, q.tail = rcb, rcb
		return
	}
	q.tail.link = rcb
	q.tail = rcb
}

func (q *fifo) popFront() (*RCB, bool) {
	if q.head == nil {
		return nil, false
	}
	rcb := q.head
	q.head = rcb.link
	if q.head == nil {
		q.tail = nil
	}
	rcb.link = nil
	return rcb, true
}

func (q *fifo) empty() bool {
	return q.head == nil
}

// RR is the Round-Robin policy: a single FIFO, serving one IOUnit
// quantum per dequeue and re-enqueueing unfinished RCBs at the tail.
// Bounded per-quantum service gives strict round-robin fairness in
// byte units, so no single flow can monopolize a worker.
type RR struct {
	q fifo
}

// NewRR constructs an empty RR policy.
func NewRR() *RR {
	return &RR{}
}

func (p *RR) Name() string { return "RR" }

// Insert appends rcb to the tail of the single FIFO.
func (p *RR) Insert(rcb *RCB) {
	p.q.pushBack(rcb)
}

// Dequeue detaches the head of the FIFO.
func (p *RR) Dequeue() (*RCB, bool) {
	return p.q.popFront()
}

// Serve performs exactly one quantum: a single IOUnit read+write. If
// rcb is not yet complete, it is handed back to reinsert for re-queuing
// at the tail; otherwise it is simply left to be destroyed by the
// caller.
func (p *RR) Serve(rcb *RCB, io IOFunc, reinsert func(*RCB)) Outcome {
	if _, err := io(rcb); err != nil {
		return Aborted
	}
	if rcb.Done() {
		return Completed
	}
	reinsert(rcb)
	return Requeued
}
