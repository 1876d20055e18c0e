package mesh

import (
	"sync"

	"github.com/aozyumenko/go-mesh/access"
)

// Filter selects the inbound messages a pending expectation accepts.
type Filter struct {
	// Source is the required source address.
	Source Address

	// AppIndex is the required application key index.
	AppIndex uint16

	// Destination, when non-nil, is the required destination address. A nil
	// Destination matches any destination, covering replies addressed to a
	// group the element subscribes to.
	Destination *Address

	// Opcode is the required message opcode.
	Opcode access.Opcode

	// Params, when non-empty, is a partial-parameter predicate: every entry
	// must equal the corresponding decoded parameter.
	Params access.Params
}

func (f *Filter) match(in *Incoming) bool {
	if in.Src != f.Source || in.AppIndex != f.AppIndex {
		return false
	}
	if f.Destination != nil && in.Dst != *f.Destination {
		return false
	}
	if !in.Message.Known() || in.Message.Opcode != f.Opcode {
		return false
	}
	if len(f.Params) != 0 && !in.Message.Params.Matches(f.Params) {
		return false
	}
	return true
}

type expState int

const (
	expPending expState = iota
	expFulfilled
	expTimedOut
	expCancelled
)

// expectation is a one-shot result slot bound to a filter. Only the dispatch
// path moves it pending→fulfilled and only the waiter's timer moves it
// pending→timed-out; the two transitions exclude each other under the mutex,
// so a slot can never be fulfilled after timing out.
type expectation struct {
	id     uint64
	filter Filter

	mu    sync.Mutex
	state expState
	ch    chan *Incoming
}

func newExpectation(id uint64, filter Filter) *expectation {
	return &expectation{
		id:     id,
		filter: filter,
		ch:     make(chan *Incoming, 1),
	}
}

// fulfill resolves the slot with in. It reports false when the slot already
// reached a terminal state, in which case the message must be treated as a
// surplus duplicate and discarded.
func (x *expectation) fulfill(in *Incoming) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.state != expPending {
		return false
	}
	x.state = expFulfilled
	x.ch <- in
	return true
}

// timeout moves the slot to timed-out. It reports false when the slot was
// already fulfilled; the result is then waiting in the channel.
func (x *expectation) timeout() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.state != expPending {
		return false
	}
	x.state = expTimedOut
	return true
}

// cancel moves the slot to cancelled. It reports false when the slot already
// reached a terminal state.
func (x *expectation) cancel() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.state != expPending {
		return false
	}
	x.state = expCancelled
	return true
}
