package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// HealthClient drives remote health servers.
type HealthClient struct {
	*Client
}

// NewHealthClient creates a health client over the element.
func NewHealthClient(e *Element) *HealthClient {
	return &HealthClient{Client: NewClient(e)}
}

// FaultGet reads the registered fault array for a company id.
func (c *HealthClient) FaultGet(ctx context.Context, nodes []Address, appIndex uint16, companyID uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.HealthFaultGet, messages.HealthFaultStatus,
		access.Params{"company_id": uint64(companyID)}, opts...)
}

// FaultClear clears the registered fault array for a company id.
func (c *HealthClient) FaultClear(ctx context.Context, nodes []Address, appIndex uint16, companyID uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.HealthFaultClear, messages.HealthFaultStatus,
		access.Params{"company_id": uint64(companyID)}, false, opts...)
}

// FaultTest invokes a self-test on the nodes.
func (c *HealthClient) FaultTest(ctx context.Context, nodes []Address, appIndex uint16, testID uint8, companyID uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.HealthFaultTest, messages.HealthFaultStatus,
		access.Params{"test_id": uint64(testID), "company_id": uint64(companyID)}, false, opts...)
}

// PeriodGet reads the fast period divisor of the nodes.
func (c *HealthClient) PeriodGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.HealthPeriodGet, messages.HealthPeriodStatus, access.Params{}, opts...)
}

// PeriodSet writes the fast period divisor on the nodes.
func (c *HealthClient) PeriodSet(ctx context.Context, nodes []Address, appIndex uint16, divisor uint8, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.HealthPeriodSet, messages.HealthPeriodStatus,
		access.Params{"fast_period_divisor": uint64(divisor)}, false, opts...)
}

// AttentionGet reads the attention timer of the nodes.
func (c *HealthClient) AttentionGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.HealthAttentionGet, messages.HealthAttentionStatus, access.Params{}, opts...)
}

// AttentionSet writes the attention timer, in seconds, on the nodes.
func (c *HealthClient) AttentionSet(ctx context.Context, nodes []Address, appIndex uint16, attention uint8, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.HealthAttentionSet, messages.HealthAttentionStatus,
		access.Params{"attention": uint64(attention)}, false, opts...)
}
