package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// SceneClient drives remote scene and scene setup servers.
type SceneClient struct {
	*Client
}

// NewSceneClient creates a scene client over the element.
func NewSceneClient(e *Element) *SceneClient {
	return &SceneClient{Client: NewClient(e)}
}

// Get reads the current scene of the nodes.
func (c *SceneClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.SceneGet, messages.SceneStatus, access.Params{}, opts...)
}

// Recall activates a stored scene on the nodes.
func (c *SceneClient) Recall(ctx context.Context, nodes []Address, appIndex uint16, scene uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.SceneRecall, messages.SceneStatus,
		access.Params{"scene_number": uint64(scene)}, true, opts...)
}

// RecallUnack activates a stored scene without acknowledgement.
func (c *SceneClient) RecallUnack(ctx context.Context, dst Address, appIndex uint16, scene uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.SceneRecallUnacknowledged,
		access.Params{"scene_number": uint64(scene)}, true, true, opts...)
}

// RegisterGet reads the scene registers of the nodes.
func (c *SceneClient) RegisterGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.SceneRegisterGet, messages.SceneRegisterStatus, access.Params{}, opts...)
}

// Store saves the current state as a scene on the nodes.
func (c *SceneClient) Store(ctx context.Context, nodes []Address, appIndex uint16, scene uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.SceneStore, messages.SceneRegisterStatus,
		access.Params{"scene_number": uint64(scene)}, false, opts...)
}

// StoreUnack saves the current state as a scene without acknowledgement.
func (c *SceneClient) StoreUnack(ctx context.Context, dst Address, appIndex uint16, scene uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.SceneStoreUnacknowledged,
		access.Params{"scene_number": uint64(scene)}, false, false, opts...)
}

// Delete removes a scene from the registers of the nodes.
func (c *SceneClient) Delete(ctx context.Context, nodes []Address, appIndex uint16, scene uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.SceneDelete, messages.SceneRegisterStatus,
		access.Params{"scene_number": uint64(scene)}, false, opts...)
}

// DeleteUnack removes a scene without acknowledgement.
func (c *SceneClient) DeleteUnack(ctx context.Context, dst Address, appIndex uint16, scene uint16, opts ...CallOption) error {
	return c.SimpleSetUnack(ctx, dst, appIndex,
		messages.SceneDeleteUnacknowledged,
		access.Params{"scene_number": uint64(scene)}, false, false, opts...)
}
