package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// HSLClient drives remote light HSL and HSL setup servers.
type HSLClient struct {
	*Client
}

// NewHSLClient creates a light HSL client over the element.
func NewHSLClient(e *Element) *HSLClient {
	return &HSLClient{Client: NewClient(e)}
}

// Get reads the combined HSL state of the nodes.
func (c *HSLClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightHSLGet, messages.LightHSLStatus, access.Params{}, opts...)
}

// Set writes lightness, hue and saturation on the nodes.
func (c *HSLClient) Set(ctx context.Context, nodes []Address, appIndex uint16, lightness, hue, saturation uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightHSLSet, messages.LightHSLStatus,
		access.Params{
			"hsl_lightness":  uint64(lightness),
			"hsl_hue":        uint64(hue),
			"hsl_saturation": uint64(saturation),
		}, true, opts...)
}

// SetUnack writes lightness, hue and saturation without acknowledgement.
func (c *HSLClient) SetUnack(ctx context.Context, dst Address, appIndex uint16, lightness, hue, saturation uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightHSLSetUnacknowledged,
		access.Params{
			"hsl_lightness":  uint64(lightness),
			"hsl_hue":        uint64(hue),
			"hsl_saturation": uint64(saturation),
		}, true, true, opts...)
}

// TargetGet reads the HSL state the nodes are transitioning toward.
func (c *HSLClient) TargetGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightHSLTargetGet, messages.LightHSLTargetStatus, access.Params{}, opts...)
}

// HueGet reads the hue state of the nodes.
func (c *HSLClient) HueGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightHSLHueGet, messages.LightHSLHueStatus, access.Params{}, opts...)
}

// HueSet writes the hue on the nodes.
func (c *HSLClient) HueSet(ctx context.Context, nodes []Address, appIndex uint16, hue uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightHSLHueSet, messages.LightHSLHueStatus,
		access.Params{"hue": uint64(hue)}, true, opts...)
}

// HueSetUnack writes the hue without acknowledgement.
func (c *HSLClient) HueSetUnack(ctx context.Context, dst Address, appIndex uint16, hue uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightHSLHueSetUnacknowledged,
		access.Params{"hue": uint64(hue)}, true, true, opts...)
}

// SaturationGet reads the saturation state of the nodes.
func (c *HSLClient) SaturationGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightHSLSaturationGet, messages.LightHSLSaturationStatus, access.Params{}, opts...)
}

// SaturationSet writes the saturation on the nodes.
func (c *HSLClient) SaturationSet(ctx context.Context, nodes []Address, appIndex uint16, saturation uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightHSLSaturationSet, messages.LightHSLSaturationStatus,
		access.Params{"saturation": uint64(saturation)}, true, opts...)
}

// SaturationSetUnack writes the saturation without acknowledgement.
func (c *HSLClient) SaturationSetUnack(ctx context.Context, dst Address, appIndex uint16, saturation uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.LightHSLSaturationSetUnacknowledged,
		access.Params{"saturation": uint64(saturation)}, true, true, opts...)
}

// DefaultGet reads the default HSL state of the nodes.
func (c *HSLClient) DefaultGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightHSLDefaultGet, messages.LightHSLDefaultStatus, access.Params{}, opts...)
}

// DefaultSet writes the default HSL state on the nodes.
func (c *HSLClient) DefaultSet(ctx context.Context, nodes []Address, appIndex uint16, lightness, hue, saturation uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightHSLSetupDefaultSet, messages.LightHSLDefaultStatus,
		access.Params{
			"lightness":  uint64(lightness),
			"hue":        uint64(hue),
			"saturation": uint64(saturation),
		}, false, opts...)
}

// RangeGet reads the hue and saturation ranges of the nodes.
func (c *HSLClient) RangeGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.LightHSLRangeGet, messages.LightHSLRangeStatus, access.Params{}, opts...)
}

// RangeSet writes the hue and saturation ranges on the nodes.
func (c *HSLClient) RangeSet(ctx context.Context, nodes []Address, appIndex uint16, hueMin, hueMax, satMin, satMax uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.LightHSLSetupRangeSet, messages.LightHSLRangeStatus,
		access.Params{
			"hue_range_min":        uint64(hueMin),
			"hue_range_max":        uint64(hueMax),
			"saturation_range_min": uint64(satMin),
			"saturation_range_max": uint64(satMax),
		}, false, opts...)
}
