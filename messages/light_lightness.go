package messages

import "github.com/aozyumenko/go-mesh/access"

// Light Lightness and Light Lightness Setup opcodes.
const (
	LightLightnessGet                     access.Opcode = 0x824B
	LightLightnessSet                     access.Opcode = 0x824C
	LightLightnessSetUnacknowledged       access.Opcode = 0x824D
	LightLightnessStatus                  access.Opcode = 0x824E
	LightLightnessLinearGet               access.Opcode = 0x824F
	LightLightnessLinearSet               access.Opcode = 0x8250
	LightLightnessLinearSetUnacknowledged access.Opcode = 0x8251
	LightLightnessLinearStatus            access.Opcode = 0x8252
	LightLightnessLastGet                 access.Opcode = 0x8253
	LightLightnessLastStatus              access.Opcode = 0x8254
	LightLightnessDefaultGet              access.Opcode = 0x8255
	LightLightnessDefaultStatus           access.Opcode = 0x8256
	LightLightnessRangeGet                access.Opcode = 0x8257
	LightLightnessRangeStatus             access.Opcode = 0x8258

	LightLightnessSetupDefaultSet               access.Opcode = 0x8259
	LightLightnessSetupDefaultSetUnacknowledged access.Opcode = 0x825A
	LightLightnessSetupRangeSet                 access.Opcode = 0x825B
	LightLightnessSetupRangeSetUnacknowledged   access.Opcode = 0x825C
)

// RangeStatusCode is the symbol set of range-set status codes shared by the
// lightness, CTL and HSL models.
var RangeStatusCode = access.NewEnumSet("range_status_code", map[uint64]string{
	0: "success",
	1: "cannot_set_range_min",
	2: "cannot_set_range_max",
})

func registerLightLightness(r *access.Registry) {
	set := []access.Field{
		access.U16("lightness"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	status := []access.Field{
		access.U16("present_lightness"),
		access.U16("target_lightness").AsOptional(),
		optRemainingTime(),
	}

	mustRegister(r, LightLightnessGet, access.NewSchema("light_lightness_get"))
	mustRegister(r, LightLightnessSet, access.NewSchema("light_lightness_set", set...))
	mustRegister(r, LightLightnessSetUnacknowledged, access.NewSchema("light_lightness_set_unacknowledged", set...))
	mustRegister(r, LightLightnessStatus, access.NewSchema("light_lightness_status", status...))

	mustRegister(r, LightLightnessLinearGet, access.NewSchema("light_lightness_linear_get"))
	mustRegister(r, LightLightnessLinearSet, access.NewSchema("light_lightness_linear_set", set...))
	mustRegister(r, LightLightnessLinearSetUnacknowledged, access.NewSchema("light_lightness_linear_set_unacknowledged", set...))
	mustRegister(r, LightLightnessLinearStatus, access.NewSchema("light_lightness_linear_status", status...))

	mustRegister(r, LightLightnessLastGet, access.NewSchema("light_lightness_last_get"))
	mustRegister(r, LightLightnessLastStatus, access.NewSchema("light_lightness_last_status",
		access.U16("lightness"),
	))

	mustRegister(r, LightLightnessDefaultGet, access.NewSchema("light_lightness_default_get"))
	mustRegister(r, LightLightnessDefaultStatus, access.NewSchema("light_lightness_default_status",
		access.U16("lightness"),
	))

	mustRegister(r, LightLightnessRangeGet, access.NewSchema("light_lightness_range_get"))
	mustRegister(r, LightLightnessRangeStatus, access.NewSchema("light_lightness_range_status",
		access.Enum8("status_code", RangeStatusCode),
		access.U16("range_min"),
		access.U16("range_max"),
	))

	mustRegister(r, LightLightnessSetupDefaultSet, access.NewSchema("light_lightness_setup_default_set",
		access.U16("lightness"),
	))
	mustRegister(r, LightLightnessSetupDefaultSetUnacknowledged, access.NewSchema("light_lightness_setup_default_set_unacknowledged",
		access.U16("lightness"),
	))
	mustRegister(r, LightLightnessSetupRangeSet, access.NewSchema("light_lightness_setup_range_set",
		access.U16("range_min"),
		access.U16("range_max"),
	))
	mustRegister(r, LightLightnessSetupRangeSetUnacknowledged, access.NewSchema("light_lightness_setup_range_set_unacknowledged",
		access.U16("range_min"),
		access.U16("range_max"),
	))
}
