package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// TimeClient drives remote time servers.
type TimeClient struct {
	*Client
}

// NewTimeClient creates a time client over the element.
func NewTimeClient(e *Element) *TimeClient {
	return &TimeClient{Client: NewClient(e)}
}

// TimeState is the full mesh time state. A zero TAISeconds means the time is
// unknown and the remaining fields are not transmitted.
type TimeState struct {
	TAISeconds    uint64
	Subsecond     float64 // seconds, 1/256 resolution
	Uncertainty   float64 // seconds, 10ms resolution
	TAIUTCDelta   uint16
	TimeAuthority bool
	ZoneOffset    uint8
}

func (t TimeState) params() access.Params {
	if t.TAISeconds == 0 {
		return access.Params{"tai_seconds": access.Unknown}
	}
	return access.Params{
		"tai_seconds":      t.TAISeconds,
		"subsecond":        t.Subsecond,
		"uncertainty":      t.Uncertainty,
		"tai_utc_delta":    uint64(t.TAIUTCDelta),
		"time_authority":   t.TimeAuthority,
		"time_zone_offset": uint64(t.ZoneOffset),
	}
}

// Get reads the time state of the nodes.
func (c *TimeClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.TimeGet, messages.TimeStatus, access.Params{}, opts...)
}

// Set writes the time state on the nodes.
func (c *TimeClient) Set(ctx context.Context, nodes []Address, appIndex uint16, state TimeState, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.TimeSet, messages.TimeStatus, state.params(), false, opts...)
}

// RoleGet reads the time role of the nodes.
func (c *TimeClient) RoleGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.TimeRoleGet, messages.TimeRoleStatus, access.Params{}, opts...)
}

// RoleSet writes the time role on the nodes. See messages.TimeRole for the
// admissible values.
func (c *TimeClient) RoleSet(ctx context.Context, nodes []Address, appIndex uint16, role uint8, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.TimeRoleSet, messages.TimeRoleStatus,
		access.Params{"time_role": uint64(role)}, false, opts...)
}

// ZoneGet reads the time zone state of the nodes.
func (c *TimeClient) ZoneGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.TimeZoneGet, messages.TimeZoneStatus, access.Params{}, opts...)
}

// ZoneSet schedules a time zone offset change on the nodes.
func (c *TimeClient) ZoneSet(ctx context.Context, nodes []Address, appIndex uint16, offsetNew uint8, taiOfChange uint64, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.TimeZoneSet, messages.TimeZoneStatus,
		access.Params{
			"time_zone_offset_new": uint64(offsetNew),
			"tai_of_zone_change":   taiOfChange,
		}, false, opts...)
}

// DeltaGet reads the TAI-UTC delta state of the nodes.
func (c *TimeClient) DeltaGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.TAIUTCDeltaGet, messages.TAIUTCDeltaStatus, access.Params{}, opts...)
}

// DeltaSet schedules a TAI-UTC delta change on the nodes.
func (c *TimeClient) DeltaSet(ctx context.Context, nodes []Address, appIndex uint16, deltaNew uint16, taiOfChange uint64, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.TAIUTCDeltaSet, messages.TAIUTCDeltaStatus,
		access.Params{
			"tai_utc_delta_new":   uint64(deltaNew),
			"tai_of_delta_change": taiOfChange,
		}, false, opts...)
}
