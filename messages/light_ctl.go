package messages

import "github.com/aozyumenko/go-mesh/access"

// Light CTL and Light CTL Setup opcodes.
const (
	LightCTLGet                          access.Opcode = 0x825D
	LightCTLSet                          access.Opcode = 0x825E
	LightCTLSetUnacknowledged            access.Opcode = 0x825F
	LightCTLStatus                       access.Opcode = 0x8260
	LightCTLTemperatureGet               access.Opcode = 0x8261
	LightCTLTemperatureRangeGet          access.Opcode = 0x8262
	LightCTLTemperatureRangeStatus       access.Opcode = 0x8263
	LightCTLTemperatureSet               access.Opcode = 0x8264
	LightCTLTemperatureSetUnacknowledged access.Opcode = 0x8265
	LightCTLTemperatureStatus            access.Opcode = 0x8266
	LightCTLDefaultGet                   access.Opcode = 0x8267
	LightCTLDefaultStatus                access.Opcode = 0x8268

	LightCTLSetupDefaultSet                        access.Opcode = 0x8269
	LightCTLSetupDefaultSetUnacknowledged          access.Opcode = 0x826A
	LightCTLSetupTemperatureRangeSet               access.Opcode = 0x826B
	LightCTLSetupTemperatureRangeSetUnacknowledged access.Opcode = 0x826C
)

func registerLightCTL(r *access.Registry) {
	set := []access.Field{
		access.U16("ctl_lightness"),
		access.U16("ctl_temperature"),
		access.I16("ctl_delta_uv"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, LightCTLGet, access.NewSchema("light_ctl_get"))
	mustRegister(r, LightCTLSet, access.NewSchema("light_ctl_set", set...))
	mustRegister(r, LightCTLSetUnacknowledged, access.NewSchema("light_ctl_set_unacknowledged", set...))

	mustRegister(r, LightCTLStatus, access.NewSchema("light_ctl_status",
		access.U16("present_ctl_lightness"),
		access.U16("present_ctl_temperature"),
		access.U16("target_ctl_lightness").AsOptional(),
		access.U16("target_ctl_temperature").AsOptional(),
		optRemainingTime(),
	))

	temperatureSet := []access.Field{
		access.U16("ctl_temperature"),
		access.I16("ctl_delta_uv"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, LightCTLTemperatureGet, access.NewSchema("light_ctl_temperature_get"))
	mustRegister(r, LightCTLTemperatureSet, access.NewSchema("light_ctl_temperature_set", temperatureSet...))
	mustRegister(r, LightCTLTemperatureSetUnacknowledged, access.NewSchema("light_ctl_temperature_set_unacknowledged", temperatureSet...))
	mustRegister(r, LightCTLTemperatureStatus, access.NewSchema("light_ctl_temperature_status",
		access.U16("present_ctl_temperature"),
		access.I16("present_ctl_delta_uv"),
		access.U16("target_ctl_temperature").AsOptional(),
		access.I16("target_ctl_delta_uv").AsOptional(),
		optRemainingTime(),
	))

	mustRegister(r, LightCTLTemperatureRangeGet, access.NewSchema("light_ctl_temperature_range_get"))
	mustRegister(r, LightCTLTemperatureRangeStatus, access.NewSchema("light_ctl_temperature_range_status",
		access.Enum8("status_code", RangeStatusCode),
		access.U16("range_min"),
		access.U16("range_max"),
	))

	defaults := []access.Field{
		access.U16("lightness"),
		access.U16("temperature"),
		access.I16("delta_uv"),
	}
	mustRegister(r, LightCTLDefaultGet, access.NewSchema("light_ctl_default_get"))
	mustRegister(r, LightCTLDefaultStatus, access.NewSchema("light_ctl_default_status", defaults...))
	mustRegister(r, LightCTLSetupDefaultSet, access.NewSchema("light_ctl_setup_default_set", defaults...))
	mustRegister(r, LightCTLSetupDefaultSetUnacknowledged, access.NewSchema("light_ctl_setup_default_set_unacknowledged", defaults...))

	mustRegister(r, LightCTLSetupTemperatureRangeSet, access.NewSchema("light_ctl_setup_temperature_range_set",
		access.U16("range_min"),
		access.U16("range_max"),
	))
	mustRegister(r, LightCTLSetupTemperatureRangeSetUnacknowledged, access.NewSchema("light_ctl_setup_temperature_range_set_unacknowledged",
		access.U16("range_min"),
		access.U16("range_max"),
	))
}
