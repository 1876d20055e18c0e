package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// DTTClient drives remote generic default transition time servers.
type DTTClient struct {
	*Client
}

// NewDTTClient creates a default transition time client over the element.
func NewDTTClient(e *Element) *DTTClient {
	return &DTTClient{Client: NewClient(e)}
}

// Get reads the default transition time of the nodes.
func (c *DTTClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.GenericDTTGet, messages.GenericDTTStatus, access.Params{}, opts...)
}

// Set writes the default transition time, in seconds, on the nodes.
func (c *DTTClient) Set(ctx context.Context, nodes []Address, appIndex uint16, seconds float64, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.GenericDTTSet, messages.GenericDTTStatus,
		access.Params{"transition_time": seconds}, false, opts...)
}

// SetUnack writes the default transition time without acknowledgement.
func (c *DTTClient) SetUnack(ctx context.Context, dst Address, appIndex uint16, seconds float64, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.GenericDTTSetUnacknowledged,
		access.Params{"transition_time": seconds}, false, false, opts...)
}
