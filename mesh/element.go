package mesh

import (
	"context"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/logger"
)

// Handler processes inbound messages bound to a server model opcode. Unknown
// opcodes and messages matching a pending expectation never reach handlers.
type Handler func(in *Incoming)

type inboundEvent struct {
	src      Address
	dst      Address
	appIndex uint16
	data     []byte
}

// Element owns one opcode registry and one transport and runs the
// request/response correlation engine on top of them.
//
// Inbound PDUs are decoded and dispatched on a single goroutine: first
// against the table of pending expectations, resolving at most one, then to
// the handler bound to the opcode. The expectation table is also mutated by
// callers registering and deregistering queries, hence the concurrent map.
type Element struct {
	cfg       elementConfig
	registry  *access.Registry
	transport Transport
	logger    logger.Logger
	taskMgr   *TaskManager

	inbound      chan inboundEvent
	expID        atomic.Uint64
	expectations *xsync.MapOf[uint64, *expectation]
	handlers     *xsync.MapOf[access.Opcode, Handler]
	tids         *tidGenerator
	closed       atomic.Bool
}

// NewElement creates an element over the given transport and registry and
// starts its dispatch goroutine. Close releases it.
func NewElement(ctx context.Context, transport Transport, registry *access.Registry, opts ...Option) (*Element, error) {
	if transport == nil {
		return nil, ErrTransportNil
	}
	if registry == nil {
		return nil, ErrRegistryNil
	}

	cfg := defaultElementConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Element{
		cfg:          cfg,
		registry:     registry,
		transport:    transport,
		logger:       cfg.logger,
		inbound:      make(chan inboundEvent, cfg.queueSize),
		expectations: xsync.NewMapOf[uint64, *expectation](),
		handlers:     xsync.NewMapOf[access.Opcode, Handler](),
		tids:         newTIDGenerator(),
	}
	e.taskMgr = NewTaskManager(ctx, cfg.logger)

	transport.Subscribe(e.enqueue)
	if err := StartConsumer(e.taskMgr, "dispatcher", e.inbound, e.dispatch); err != nil {
		return nil, err
	}

	return e, nil
}

// Registry returns the element's opcode registry.
func (e *Element) Registry() *access.Registry { return e.registry }

// NextTID returns the next transaction identifier. Call it once per logical
// user action and reuse the value across that action's retransmissions.
func (e *Element) NextTID() uint8 { return e.tids.next() }

// Bind routes inbound messages with the given opcode to a handler. Used by
// server models; at most one handler per opcode.
func (e *Element) Bind(op access.Opcode, h Handler) error {
	if _, loaded := e.handlers.LoadOrStore(op, h); loaded {
		return ErrOpcodeBound
	}
	return nil
}

// Send encodes one message and hands it to the transport.
func (e *Element) Send(ctx context.Context, dst Address, appIndex uint16, op access.Opcode, params access.Params) error {
	if e.closed.Load() {
		return ErrElementClosed
	}
	data, err := e.registry.Encode(op, params)
	if err != nil {
		return err
	}
	if e.logger.Level() == logger.DebugLevel {
		e.logger.Debug("send message", "dst", dst, "appIndex", appIndex, "opcode", op, "len", len(data))
	}
	return e.transport.Send(ctx, dst, appIndex, data)
}

// Close stops the dispatch goroutine and resolves every pending expectation
// as closed.
func (e *Element) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}
	e.taskMgr.Stop()
	e.taskMgr.Wait()
	e.dropAllExpectations()
}

// enqueue is the transport's receive callback. The dispatch queue is bounded;
// on overflow the PDU is dropped, which the medium permits anyway.
func (e *Element) enqueue(src Address, appIndex uint16, dst Address, data []byte) {
	select {
	case e.inbound <- inboundEvent{src: src, dst: dst, appIndex: appIndex, data: data}:
	default:
		e.logger.Warn("inbound queue full, message dropped", "src", src, "dst", dst)
	}
}

func (e *Element) dispatch(ev inboundEvent) bool {
	msg, err := e.registry.Decode(ev.data)
	if err != nil {
		e.logger.Warn("drop malformed message", "src", ev.src, "error", err)
		return true
	}

	in := &Incoming{Src: ev.src, Dst: ev.dst, AppIndex: ev.appIndex, Message: msg}

	if e.resolveExpectation(in) {
		return true
	}

	if h, ok := e.handlers.Load(msg.Opcode); ok {
		h(in)
		return true
	}

	if e.logger.Level() == logger.DebugLevel {
		e.logger.Debug("unhandled message", "src", ev.src, "opcode", msg.Opcode, "known", msg.Known())
	}

	return true
}

// resolveExpectation fulfills at most one pending expectation with in.
// Messages matching an already-resolved slot are surplus and fall through to
// be discarded.
func (e *Element) resolveExpectation(in *Incoming) bool {
	var hit *expectation
	e.expectations.Range(func(_ uint64, x *expectation) bool {
		if x.filter.match(in) && x.fulfill(in) {
			hit = x
			return false
		}
		return true
	})
	if hit == nil {
		return false
	}
	e.expectations.Delete(hit.id)
	return true
}

// expect registers a one-shot expectation. The caller must deregister it on
// every exit path so a later spurious match cannot leak it.
func (e *Element) expect(filter Filter) *expectation {
	x := newExpectation(e.expID.Add(1), filter)
	e.expectations.Store(x.id, x)
	return x
}

func (e *Element) deregister(x *expectation) {
	e.expectations.Delete(x.id)
}

func (e *Element) dropAllExpectations() {
	e.expectations.Range(func(id uint64, x *expectation) bool {
		if x.cancel() {
			close(x.ch)
		}
		e.expectations.Delete(id)
		return true
	})
}

func (e *Element) callOptions(opts []CallOption) callOptions {
	co := callOptions{
		timeout:         e.cfg.timeout,
		sendInterval:    e.cfg.sendInterval,
		retransmissions: e.cfg.retransmissions,
		delay:           e.cfg.unackDelay,
	}
	for _, opt := range opts {
		opt(&co)
	}
	return co
}
