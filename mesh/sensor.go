package mesh

import (
	"context"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

// SensorClient reads remote sensor servers. Descriptors, cadence parameters
// and marshalled sensor data come back as raw byte tails for the caller to
// interpret against its property tables.
type SensorClient struct {
	*Client
}

// NewSensorClient creates a sensor client over the element.
func NewSensorClient(e *Element) *SensorClient {
	return &SensorClient{Client: NewClient(e)}
}

// DescriptorGet reads the sensor descriptors of the nodes.
func (c *SensorClient) DescriptorGet(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.SensorDescriptorGet, messages.SensorDescriptorStatus, access.Params{}, opts...)
}

// Get reads the sensor data of the nodes, all properties at once.
func (c *SensorClient) Get(ctx context.Context, nodes []Address, appIndex uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.SensorGet, messages.SensorStatus, access.Params{}, opts...)
}

// GetProperty reads the sensor data of one property.
func (c *SensorClient) GetProperty(ctx context.Context, nodes []Address, appIndex uint16, propertyID uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.SensorGet, messages.SensorStatus,
		access.Params{"property_id": uint64(propertyID)}, opts...)
}

// CadenceGet reads the cadence state of one property.
func (c *SensorClient) CadenceGet(ctx context.Context, nodes []Address, appIndex uint16, propertyID uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.SensorCadenceGet, messages.SensorCadenceStatus,
		access.Params{"property_id": uint64(propertyID)}, opts...)
}

// CadenceSet writes the cadence state of one property.
func (c *SensorClient) CadenceSet(ctx context.Context, nodes []Address, appIndex uint16, propertyID uint16, cadence []byte, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.SensorCadenceSet, messages.SensorCadenceStatus,
		access.Params{"property_id": uint64(propertyID), "cadence": cadence}, false, opts...)
}

// SettingsGet reads the setting property ids of one sensor.
func (c *SensorClient) SettingsGet(ctx context.Context, nodes []Address, appIndex uint16, sensorPropertyID uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.SensorSettingsGet, messages.SensorSettingsStatus,
		access.Params{"sensor_property_id": uint64(sensorPropertyID)}, opts...)
}

// SettingGet reads one sensor setting.
func (c *SensorClient) SettingGet(ctx context.Context, nodes []Address, appIndex uint16, sensorPropertyID, settingPropertyID uint16, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleGet(ctx, nodes, appIndex,
		messages.SensorSettingGet, messages.SensorSettingStatus,
		access.Params{
			"sensor_property_id":         uint64(sensorPropertyID),
			"sensor_setting_property_id": uint64(settingPropertyID),
		}, opts...)
}

// SettingSet writes one sensor setting.
func (c *SensorClient) SettingSet(ctx context.Context, nodes []Address, appIndex uint16, sensorPropertyID, settingPropertyID uint16, raw []byte, opts ...CallOption) (map[Address]access.Params, error) {
	return c.SimpleSet(ctx, nodes, appIndex,
		messages.SensorSettingSet, messages.SensorSettingStatus,
		access.Params{
			"sensor_property_id":         uint64(sensorPropertyID),
			"sensor_setting_property_id": uint64(settingPropertyID),
			"sensor_setting_raw":         raw,
		}, false, opts...)
}
