package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// OnOffClient drives remote generic on/off servers.
type OnOffClient struct {
	*Client
}

// NewOnOffClient creates a generic on/off client over the element.
func NewOnOffClient(e *Element) *OnOffClient {
	return &OnOffClient{Client: NewClient(e)}
}

// Get reads the on/off state of the nodes.
func (c *OnOffClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.GenericOnOffGet, messages.GenericOnOffStatus, access.Params{}, opts...)
}

// Set switches the nodes on or off and awaits their status responses.
func (c *OnOffClient) Set(ctx context.Context, nodes []Address, appIndex uint16, on bool, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.GenericOnOffSet, messages.GenericOnOffStatus,
		access.Params{"onoff": on}, true, opts...)
}

// SetUnack switches a destination, typically a group address, without
// acknowledgement.
func (c *OnOffClient) SetUnack(ctx context.Context, dst Address, appIndex uint16, on bool, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.GenericOnOffSetUnacknowledged,
		access.Params{"onoff": on}, true, true, opts...)
}
