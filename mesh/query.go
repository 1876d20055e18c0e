package mesh

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/internal/pool"
)

// Request describes one outbound message of a query.
type Request struct {
	Destination Address
	AppIndex    uint16
	Opcode      access.Opcode
	Params      access.Params
}

// RequestFunc builds the request for one target node of a bulk query.
type RequestFunc func(node Address) Request

// FilterFunc builds the response filter for one target node of a bulk query.
type FilterFunc func(node Address) Filter

// Query sends one request and awaits the first inbound message matching the
// filter.
//
// A timeout is an expected outcome on this medium and yields (nil, nil); a
// transport or encode fault yields an error. The first match wins: the
// expectation is deregistered on every exit path, and later duplicates are
// discarded by the dispatcher.
func (e *Element) Query(ctx context.Context, req Request, filter Filter, opts ...CallOption) (*access.Message, error) {
	if e.closed.Load() {
		return nil, ErrElementClosed
	}
	co := e.callOptions(opts)

	x := e.expect(filter)
	defer e.deregister(x)

	if err := e.Send(ctx, req.Destination, req.AppIndex, req.Opcode, req.Params); err != nil {
		x.cancel()
		return nil, err
	}

	timer := pool.GetTimer(co.timeout)
	defer pool.PutTimer(timer)

	select {
	case <-ctx.Done():
		x.cancel()
		return nil, ctx.Err()

	case <-timer.C:
		if !x.timeout() {
			// Fulfilled in the same instant; the result is already buffered.
			return e.collect(x)
		}
		return nil, nil

	case in := <-x.ch:
		if in == nil {
			return nil, ErrElementClosed
		}
		return in.Message, nil
	}
}

// BulkQuery issues one request per target node, paced by the call's minimum
// send interval, and awaits the responses under one shared deadline.
//
// Every node resolves independently: the result maps each node either to its
// first matching response or to nil when none arrived in time. A node whose
// send fails resolves to nil without affecting the others; only context
// cancellation aborts the whole call.
func (e *Element) BulkQuery(ctx context.Context, nodes []Address, reqFn RequestFunc, filterFn FilterFunc, opts ...CallOption) (map[Address]*access.Message, error) {
	if e.closed.Load() {
		return nil, ErrElementClosed
	}
	co := e.callOptions(opts)

	nodes = dedupeAddresses(nodes)

	results := make(map[Address]*access.Message, len(nodes))
	if len(nodes) == 0 {
		return results, nil
	}

	// Register all expectations before the first send: a fast node may reply
	// while later requests are still being paced out.
	expects := make(map[Address]*expectation, len(nodes))
	for _, node := range nodes {
		expects[node] = e.expect(filterFn(node))
	}
	defer func() {
		for _, x := range expects {
			if x == nil {
				continue
			}
			x.cancel()
			e.deregister(x)
		}
	}()

	// The deadline is shared by pacing and waiting.
	deadline := pool.GetTimer(co.timeout)
	defer pool.PutTimer(deadline)

	limiter := rate.NewLimiter(rate.Every(co.sendInterval), 1)
	for _, node := range nodes {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		req := reqFn(node)
		if err := e.Send(ctx, req.Destination, req.AppIndex, req.Opcode, req.Params); err != nil {
			e.logger.Warn("bulk query send failed", "node", node, "error", err)
			expects[node].cancel()
			e.deregister(expects[node])
			expects[node] = nil
			results[node] = nil
		}
	}

	expired := false
	for _, node := range nodes {
		x := expects[node]
		if x == nil {
			continue
		}
		if expired {
			results[node] = e.drain(x)
			continue
		}
		select {
		case in := <-x.ch:
			if in == nil {
				return nil, ErrElementClosed
			}
			results[node] = in.Message
		case <-deadline.C:
			expired = true
			results[node] = e.drain(x)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return results, nil
}

// Repeat invokes send once per retransmission, spaced by the call's send
// interval. It consumes no responses; it completes when the repeat count is
// exhausted or the context is cancelled.
func (e *Element) Repeat(ctx context.Context, send func(attempt int) error, opts ...CallOption) error {
	if e.closed.Load() {
		return ErrElementClosed
	}
	co := e.callOptions(opts)

	for i := 0; i < co.retransmissions; i++ {
		if i > 0 {
			timer := pool.GetTimer(co.sendInterval)
			select {
			case <-ctx.Done():
				pool.PutTimer(timer)
				return ctx.Err()
			case <-timer.C:
			}
			pool.PutTimer(timer)
		}
		if err := send(i); err != nil {
			return err
		}
	}

	return nil
}

// dedupeAddresses drops repeated addresses, keeping first-occurrence order.
// One expectation and one send per node; a repeat would shadow the first
// expectation in the per-node table and leak it.
func dedupeAddresses(nodes []Address) []Address {
	seen := make(map[Address]struct{}, len(nodes))
	out := nodes[:0:0]
	for _, node := range nodes {
		if _, dup := seen[node]; dup {
			continue
		}
		seen[node] = struct{}{}
		out = append(out, node)
	}
	return out
}

// collect receives the already-buffered result of a fulfilled expectation.
func (e *Element) collect(x *expectation) (*access.Message, error) {
	in := <-x.ch
	if in == nil {
		return nil, ErrElementClosed
	}
	return in.Message, nil
}

// drain resolves one bulk-query expectation after the shared deadline: a
// racing fulfillment still counts, anything else is absent.
func (e *Element) drain(x *expectation) *access.Message {
	if x.timeout() {
		return nil
	}
	select {
	case in := <-x.ch:
		if in != nil {
			return in.Message
		}
	default:
	}
	return nil
}
