package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// ModelID identifies a model within an element: a company id and a
// vendor-assigned model number. SIG models use company id zero.
type ModelID struct {
	Company uint16
	Model   uint16
}

// Thermostat vendor model identifiers.
var (
	ThermostatServerModelID = ModelID{Company: 0x0005, Model: 0x0000}
	ThermostatClientModelID = ModelID{Company: 0x0005, Model: 0x0001}
)

// ThermostatClient drives remote thermostat vendor servers. All of its
// messages ride under one vendor opcode with a sub-opcode selecting the
// sub-message.
type ThermostatClient struct {
	*Client
}

// NewThermostatClient creates a thermostat client over the element.
func NewThermostatClient(e *Element) *ThermostatClient {
	return &ThermostatClient{Client: NewClient(e)}
}

// Get reads the thermostat state of the nodes. Each result carries the
// status_code, mode, heater_status, onoff_status and the target and present
// temperatures in degrees Celsius.
func (c *ThermostatClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SubGet(ctx, nodes, appIndex, messages.Thermostat,
		messages.ThermostatGet, messages.ThermostatStatus, opts...)
}

// Set writes the thermostat mode and target temperature, in degrees Celsius,
// on the nodes. See messages.ThermostatMode for the admissible modes.
func (c *ThermostatClient) Set(ctx context.Context, nodes []Address, appIndex uint16, mode uint8, temperature float64, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SubSet(ctx, nodes, appIndex, messages.Thermostat,
		messages.ThermostatSet, messages.ThermostatStatus,
		access.Params{
			"mode":        uint64(mode),
			"temperature": temperature,
		}, false, opts...)
}

// RangeGet reads the supported temperature range of the nodes.
func (c *ThermostatClient) RangeGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SubGet(ctx, nodes, appIndex, messages.Thermostat,
		messages.ThermostatRangeGet, messages.ThermostatRangeStatus, opts...)
}
