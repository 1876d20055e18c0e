package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// LevelClient drives remote generic level servers.
type LevelClient struct {
	*Client
}

// NewLevelClient creates a generic level client over the element.
func NewLevelClient(e *Element) *LevelClient {
	return &LevelClient{Client: NewClient(e)}
}

// Get reads the level state of the nodes.
func (c *LevelClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.GenericLevelGet, messages.GenericLevelStatus, access.Params{}, opts...)
}

// Set moves the nodes to an absolute level.
func (c *LevelClient) Set(ctx context.Context, nodes []Address, appIndex uint16, level int16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.GenericLevelSet, messages.GenericLevelStatus,
		access.Params{"level": int64(level)}, true, opts...)
}

// SetUnack moves a destination to an absolute level without acknowledgement.
func (c *LevelClient) SetUnack(ctx context.Context, dst Address, appIndex uint16, level int16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.GenericLevelSetUnacknowledged,
		access.Params{"level": int64(level)}, true, true, opts...)
}

// DeltaSet shifts the nodes' level by a relative amount.
func (c *LevelClient) DeltaSet(ctx context.Context, nodes []Address, appIndex uint16, delta int32, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.GenericDeltaSet, messages.GenericLevelStatus,
		access.Params{"delta_level": int64(delta)}, true, opts...)
}

// DeltaSetUnack shifts a destination's level without acknowledgement.
func (c *LevelClient) DeltaSetUnack(ctx context.Context, dst Address, appIndex uint16, delta int32, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.GenericDeltaSetUnacknowledged,
		access.Params{"delta_level": int64(delta)}, true, true, opts...)
}

// MoveSet starts a continuous level move at the given speed per transition
// step.
func (c *LevelClient) MoveSet(ctx context.Context, nodes []Address, appIndex uint16, delta int16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.GenericMoveSet, messages.GenericLevelStatus,
		access.Params{"delta_level": int64(delta)}, true, opts...)
}

// MoveSetUnack starts a continuous level move without acknowledgement.
func (c *LevelClient) MoveSetUnack(ctx context.Context, dst Address, appIndex uint16, delta int16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.GenericMoveSetUnacknowledged,
		access.Params{"delta_level": int64(delta)}, true, true, opts...)
}
