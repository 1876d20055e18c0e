package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// BatteryClient reads remote generic battery servers.
type BatteryClient struct {
	*Client
}

// NewBatteryClient creates a generic battery client over the element.
func NewBatteryClient(e *Element) *BatteryClient {
	return &BatteryClient{Client: NewClient(e)}
}

// Get reads the battery state of the nodes. Levels and charge times a node
// does not know come back as access.Unknown.
func (c *BatteryClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.GenericBatteryGet, messages.GenericBatteryStatus, access.Params{}, opts...)
}
