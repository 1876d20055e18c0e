package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// LightnessClient drives remote light lightness and lightness setup servers.
type LightnessClient struct {
	*Client
}

// NewLightnessClient creates a light lightness client over the element.
func NewLightnessClient(e *Element) *LightnessClient {
	return &LightnessClient{Client: NewClient(e)}
}

// Get reads the actual lightness of the nodes.
func (c *LightnessClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightLightnessGet, messages.LightLightnessStatus, access.Params{}, opts...)
}

// Set writes the actual lightness on the nodes.
func (c *LightnessClient) Set(ctx context.Context, nodes []Address, appIndex uint16, lightness uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightLightnessSet, messages.LightLightnessStatus,
		access.Params{"lightness": uint64(lightness)}, true, opts...)
}

// SetUnack writes the actual lightness without acknowledgement.
func (c *LightnessClient) SetUnack(ctx context.Context, dst Address, appIndex uint16, lightness uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightLightnessSetUnacknowledged,
		access.Params{"lightness": uint64(lightness)}, true, true, opts...)
}

// LinearGet reads the linear lightness of the nodes.
func (c *LightnessClient) LinearGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightLightnessLinearGet, messages.LightLightnessLinearStatus, access.Params{}, opts...)
}

// LinearSet writes the linear lightness on the nodes.
func (c *LightnessClient) LinearSet(ctx context.Context, nodes []Address, appIndex uint16, lightness uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightLightnessLinearSet, messages.LightLightnessLinearStatus,
		access.Params{"lightness": uint64(lightness)}, true, opts...)
}

// LinearSetUnack writes the linear lightness without acknowledgement.
func (c *LightnessClient) LinearSetUnack(ctx context.Context, dst Address, appIndex uint16, lightness uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightLightnessLinearSetUnacknowledged,
		access.Params{"lightness": uint64(lightness)}, true, true, opts...)
}

// LastGet reads the lightness the nodes had before their last power-off.
func (c *LightnessClient) LastGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightLightnessLastGet, messages.LightLightnessLastStatus, access.Params{}, opts...)
}

// DefaultGet reads the default lightness of the nodes.
func (c *LightnessClient) DefaultGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightLightnessDefaultGet, messages.LightLightnessDefaultStatus, access.Params{}, opts...)
}

// DefaultSet writes the default lightness on the nodes.
func (c *LightnessClient) DefaultSet(ctx context.Context, nodes []Address, appIndex uint16, lightness uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightLightnessSetupDefaultSet, messages.LightLightnessDefaultStatus,
		access.Params{"lightness": uint64(lightness)}, false, opts...)
}

// DefaultSetUnack writes the default lightness without acknowledgement.
func (c *LightnessClient) DefaultSetUnack(ctx context.Context, dst Address, appIndex uint16, lightness uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightLightnessSetupDefaultSetUnacknowledged,
		access.Params{"lightness": uint64(lightness)}, false, false, opts...)
}

// RangeGet reads the lightness range of the nodes.
func (c *LightnessClient) RangeGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightLightnessRangeGet, messages.LightLightnessRangeStatus, access.Params{}, opts...)
}

// RangeSet writes the lightness range on the nodes.
func (c *LightnessClient) RangeSet(ctx context.Context, nodes []Address, appIndex uint16, rangeMin, rangeMax uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightLightnessSetupRangeSet, messages.LightLightnessRangeStatus,
		access.Params{"range_min": uint64(rangeMin), "range_max": uint64(rangeMax)}, false, opts...)
}

// RangeSetUnack writes the lightness range without acknowledgement.
func (c *LightnessClient) RangeSetUnack(ctx context.Context, dst Address, appIndex uint16, rangeMin, rangeMax uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightLightnessSetupRangeSetUnacknowledged,
		access.Params{"range_min": uint64(rangeMin), "range_max": uint64(rangeMax)}, false, false, opts...)
}
