package messages

import "github.com/aozyumenko/go-mesh/access"

// Sensor and Sensor Setup opcodes.
const (
	SensorDescriptorGet    access.Opcode = 0x8230
	SensorDescriptorStatus access.Opcode = 0x51
	SensorGet              access.Opcode = 0x8231
	SensorStatus           access.Opcode = 0x52

	SensorCadenceGet               access.Opcode = 0x8234
	SensorCadenceSet               access.Opcode = 0x55
	SensorCadenceSetUnacknowledged access.Opcode = 0x56
	SensorCadenceStatus            access.Opcode = 0x57
	SensorSettingsGet              access.Opcode = 0x8235
	SensorSettingsStatus           access.Opcode = 0x58
	SensorSettingGet               access.Opcode = 0x8236
	SensorSettingSet               access.Opcode = 0x59
	SensorSettingSetUnacknowledged access.Opcode = 0x5A
	SensorSettingStatus            access.Opcode = 0x5B
)

// Sensor descriptors, cadence parameters and marshalled sensor data are
// property-dependent variable structures; they are carried as raw byte tails
// and interpreted by the caller against its property tables.
func registerSensor(r *access.Registry) {
	mustRegister(r, SensorDescriptorGet, access.NewSchema("sensor_descriptor_get",
		access.U16("property_id").AsOptional(),
	))
	mustRegister(r, SensorDescriptorStatus, access.NewSchema("sensor_descriptor_status",
		access.Raw("descriptors"),
	))
	mustRegister(r, SensorGet, access.NewSchema("sensor_get",
		access.U16("property_id").AsOptional(),
	))
	mustRegister(r, SensorStatus, access.NewSchema("sensor_status",
		access.Raw("marshalled_sensor_data"),
	))

	mustRegister(r, SensorCadenceGet, access.NewSchema("sensor_cadence_get",
		access.U16("property_id"),
	))
	cadence := []access.Field{
		access.U16("property_id"),
		access.Raw("cadence"),
	}
	mustRegister(r, SensorCadenceSet, access.NewSchema("sensor_cadence_set", cadence...))
	mustRegister(r, SensorCadenceSetUnacknowledged, access.NewSchema("sensor_cadence_set_unacknowledged", cadence...))
	mustRegister(r, SensorCadenceStatus, access.NewSchema("sensor_cadence_status", cadence...))

	mustRegister(r, SensorSettingsGet, access.NewSchema("sensor_settings_get",
		access.U16("sensor_property_id"),
	))
	mustRegister(r, SensorSettingsStatus, access.NewSchema("sensor_settings_status",
		access.U16("sensor_property_id"),
		access.U16List("sensor_setting_property_ids"),
	))

	mustRegister(r, SensorSettingGet, access.NewSchema("sensor_setting_get",
		access.U16("sensor_property_id"),
		access.U16("sensor_setting_property_id"),
	))
	setting := []access.Field{
		access.U16("sensor_property_id"),
		access.U16("sensor_setting_property_id"),
		access.Raw("sensor_setting_raw"),
	}
	mustRegister(r, SensorSettingSet, access.NewSchema("sensor_setting_set", setting...))
	mustRegister(r, SensorSettingSetUnacknowledged, access.NewSchema("sensor_setting_set_unacknowledged", setting...))
	mustRegister(r, SensorSettingStatus, access.NewSchema("sensor_setting_status", setting...))
}
