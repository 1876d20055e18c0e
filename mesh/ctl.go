package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// CTLClient drives remote light CTL and CTL setup servers.
type CTLClient struct {
	*Client
}

// NewCTLClient creates a light CTL client over the element.
func NewCTLClient(e *Element) *CTLClient {
	return &CTLClient{Client: NewClient(e)}
}

// Get reads the combined lightness and color temperature state of the nodes.
func (c *CTLClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightCTLGet, messages.LightCTLStatus, access.Params{}, opts...)
}

// Set writes lightness, color temperature and delta UV on the nodes.
func (c *CTLClient) Set(ctx context.Context, nodes []Address, appIndex uint16, lightness, temperature uint16, deltaUV int16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightCTLSet, messages.LightCTLStatus,
		access.Params{
			"ctl_lightness":   uint64(lightness),
			"ctl_temperature": uint64(temperature),
			"ctl_delta_uv":    int64(deltaUV),
		}, true, opts...)
}

// SetUnack writes lightness, color temperature and delta UV without
// acknowledgement.
func (c *CTLClient) SetUnack(ctx context.Context, dst Address, appIndex uint16, lightness, temperature uint16, deltaUV int16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightCTLSetUnacknowledged,
		access.Params{
			"ctl_lightness":   uint64(lightness),
			"ctl_temperature": uint64(temperature),
			"ctl_delta_uv":    int64(deltaUV),
		}, true, true, opts...)
}

// TemperatureGet reads the color temperature state of the nodes.
func (c *CTLClient) TemperatureGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightCTLTemperatureGet, messages.LightCTLTemperatureStatus, access.Params{}, opts...)
}

// TemperatureSet writes the color temperature and delta UV on the nodes.
func (c *CTLClient) TemperatureSet(ctx context.Context, nodes []Address, appIndex uint16, temperature uint16, deltaUV int16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightCTLTemperatureSet, messages.LightCTLTemperatureStatus,
		access.Params{
			"ctl_temperature": uint64(temperature),
			"ctl_delta_uv":    int64(deltaUV),
		}, true, opts...)
}

// TemperatureSetUnack writes the color temperature and delta UV without
// acknowledgement.
func (c *CTLClient) TemperatureSetUnack(ctx context.Context, dst Address, appIndex uint16, temperature uint16, deltaUV int16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightCTLTemperatureSetUnacknowledged,
		access.Params{
			"ctl_temperature": uint64(temperature),
			"ctl_delta_uv":    int64(deltaUV),
		}, true, true, opts...)
}

// TemperatureRangeGet reads the color temperature range of the nodes.
func (c *CTLClient) TemperatureRangeGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightCTLTemperatureRangeGet, messages.LightCTLTemperatureRangeStatus, access.Params{}, opts...)
}

// TemperatureRangeSet writes the color temperature range on the nodes.
func (c *CTLClient) TemperatureRangeSet(ctx context.Context, nodes []Address, appIndex uint16, rangeMin, rangeMax uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightCTLSetupTemperatureRangeSet, messages.LightCTLTemperatureRangeStatus,
		access.Params{"range_min": uint64(rangeMin), "range_max": uint64(rangeMax)}, false, opts...)
}

// DefaultGet reads the default CTL state of the nodes.
func (c *CTLClient) DefaultGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightCTLDefaultGet, messages.LightCTLDefaultStatus, access.Params{}, opts...)
}

// DefaultSet writes the default CTL state on the nodes.
func (c *CTLClient) DefaultSet(ctx context.Context, nodes []Address, appIndex uint16, lightness, temperature uint16, deltaUV int16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightCTLSetupDefaultSet, messages.LightCTLDefaultStatus,
		access.Params{
			"lightness":   uint64(lightness),
			"temperature": uint64(temperature),
			"delta_uv":    int64(deltaUV),
		}, false, opts...)
}
