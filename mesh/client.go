package mesh

import (
	"context"
	"time"

	"github.com/aozyumenko/go-mesh/access"
)

// Client is the shared base of the model façade clients. It reaches the mesh
// only through the element's opcode registry and correlation engine.
type Client struct {
	element *Element
}

// NewClient creates a base client for custom model façades.
func NewClient(e *Element) *Client { return &Client{element: e} }

// Element returns the underlying element.
func (c *Client) Element() *Element { return c.element }

// SimpleGet fans a get request out to the nodes and collects the decoded
// status parameters. Nodes that do not answer before the deadline map to nil.
func (c *Client) SimpleGet(ctx context.Context, nodes []Address, appIndex uint16, reqOp, statusOp access.Opcode, reqParams access.Params, opts ...CallOption) (map[Address]access.Params, error) {
	results, err := c.element.BulkQuery(ctx, nodes,
		func(node Address) Request {
			return Request{Destination: node, AppIndex: appIndex, Opcode: reqOp, Params: reqParams}
		},
		func(node Address) Filter {
			return Filter{Source: node, AppIndex: appIndex, Opcode: statusOp}
		},
		opts...)
	if err != nil {
		return nil, err
	}
	return statusParams(results), nil
}

// SimpleSet fans an acknowledged set out to the nodes. When withTID is set, a
// fresh transaction identifier is added per node message. A transition time
// given via WithTransitionTime is attached together with its delay field, the
// two forming the schema's all-or-none optional tail.
func (c *Client) SimpleSet(ctx context.Context, nodes []Address, appIndex uint16, reqOp, statusOp access.Opcode, params access.Params, withTID bool, opts ...CallOption) (map[Address]access.Params, error) {
	co := c.element.callOptions(opts)

	results, err := c.element.BulkQuery(ctx, nodes,
		func(node Address) Request {
			p := cloneParams(params)
			if withTID {
				p["tid"] = c.element.NextTID()
			}
			if co.hasTransition {
				p["transition_time"] = co.transitionTime
				p["delay"] = 0.0
				if co.hasDelay {
					p["delay"] = co.delay.Seconds()
				}
			}
			return Request{Destination: node, AppIndex: appIndex, Opcode: reqOp, Params: p}
		},
		func(node Address) Filter {
			return Filter{Source: node, AppIndex: appIndex, Opcode: statusOp}
		},
		opts...)
	if err != nil {
		return nil, err
	}
	return statusParams(results), nil
}

// SimpleSetUnack repeats an unacknowledged set toward one destination. All
// retransmissions share one transaction identifier. When the message carries
// the transition tail, every attempt transmits the delay remaining at its
// scheduled send time: the initial delay minus one send interval per earlier
// attempt, floored at zero, so all receivers act at the same instant.
func (c *Client) SimpleSetUnack(ctx context.Context, dst Address, appIndex uint16, op access.Opcode, params access.Params, withTID, withTail bool, opts ...CallOption) error {
	co := c.element.callOptions(opts)

	var tid uint8
	if withTID {
		tid = c.element.NextTID()
	}

	return c.element.Repeat(ctx, func(attempt int) error {
		p := cloneParams(params)
		if withTID {
			p["tid"] = tid
		}
		if withTail {
			p["transition_time"] = co.transitionTime
			remaining := co.delay - time.Duration(attempt)*co.sendInterval
			if remaining < 0 {
				remaining = 0
			}
			p["delay"] = remaining.Seconds()
		}
		return c.element.Send(ctx, dst, appIndex, op, p)
	}, opts...)
}

// SubGet is SimpleGet for vendor models: the request and the expected status
// are selected by sub-opcode under one vendor opcode, and the returned
// parameters are the status sub-message's payload.
func (c *Client) SubGet(ctx context.Context, nodes []Address, appIndex uint16, op access.Opcode, reqSub, statusSub uint64, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SubSet(ctx, nodes, appIndex, op, reqSub, statusSub, access.Params{}, false, opts...)
}

// SubSet is SimpleSet for vendor models.
func (c *Client) SubSet(ctx context.Context, nodes []Address, appIndex uint16, op access.Opcode, reqSub, statusSub uint64, payload access.Params, withTID bool, opts ...CallOption) (map[Address]access.Params, error) {
	results, err := c.element.BulkQuery(ctx, nodes,
		func(node Address) Request {
			p := cloneParams(payload)
			if withTID {
				p["tid"] = c.element.NextTID()
			}
			return Request{
				Destination: node,
				AppIndex:    appIndex,
				Opcode:      op,
				Params:      access.Params{"subopcode": reqSub, "payload": p},
			}
		},
		func(node Address) Filter {
			return Filter{
				Source:   node,
				AppIndex: appIndex,
				Opcode:   op,
				Params:   access.Params{"subopcode": statusSub},
			}
		},
		opts...)
	if err != nil {
		return nil, err
	}

	out := make(map[Address]access.Params, len(results))
	for node, msg := range results {
		if msg == nil {
			out[node] = nil
			continue
		}
		payload, _ := msg.Params.Nested("payload")
		out[node] = payload
	}
	return out, nil
}

func statusParams(results map[Address]*access.Message) map[Address]access.Params {
	out := make(map[Address]access.Params, len(results))
	for node, msg := range results {
		if msg == nil {
			out[node] = nil
			continue
		}
		out[node] = msg.Params
	}
	return out
}

func cloneParams(p access.Params) access.Params {
	out := make(access.Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}
