package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// PowerOnOffClient drives remote generic power on/off servers.
type PowerOnOffClient struct {
	*Client
}

// NewPowerOnOffClient creates a generic power on/off client over the element.
func NewPowerOnOffClient(e *Element) *PowerOnOffClient {
	return &PowerOnOffClient{Client: NewClient(e)}
}

// Get reads the power-up behavior of the nodes.
func (c *PowerOnOffClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.GenericPowerOnOffGet, messages.GenericPowerOnOffStatus, access.Params{}, opts...)
}

// Set writes the power-up behavior on the nodes. See messages.OnPowerUp for
// the admissible values.
func (c *PowerOnOffClient) Set(ctx context.Context, nodes []Address, appIndex uint16, onPowerUp uint8, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.GenericPowerOnOffSet, messages.GenericPowerOnOffStatus,
		access.Params{"on_power_up": uint64(onPowerUp)}, false, opts...)
}

// SetUnack writes the power-up behavior without acknowledgement.
func (c *PowerOnOffClient) SetUnack(ctx context.Context, dst Address, appIndex uint16, onPowerUp uint8, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.GenericPowerOnOffSetUnacknowledged,
		access.Params{"on_power_up": uint64(onPowerUp)}, false, false, opts...)
}
