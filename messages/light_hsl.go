package messages

import "github.com/aozyumenko/go-mesh/access"

// Light HSL and Light HSL Setup opcodes.
const (
	LightHSLGet                         access.Opcode = 0x826D
	LightHSLHueGet                      access.Opcode = 0x826E
	LightHSLHueSet                      access.Opcode = 0x826F
	LightHSLHueSetUnacknowledged        access.Opcode = 0x8270
	LightHSLHueStatus                   access.Opcode = 0x8271
	LightHSLSaturationGet               access.Opcode = 0x8272
	LightHSLSaturationSet               access.Opcode = 0x8273
	LightHSLSaturationSetUnacknowledged access.Opcode = 0x8274
	LightHSLSaturationStatus            access.Opcode = 0x8275
	LightHSLSet                         access.Opcode = 0x8276
	LightHSLSetUnacknowledged           access.Opcode = 0x8277
	LightHSLStatus                      access.Opcode = 0x8278
	LightHSLTargetGet                   access.Opcode = 0x8279
	LightHSLTargetStatus                access.Opcode = 0x827A
	LightHSLDefaultGet                  access.Opcode = 0x827B
	LightHSLDefaultStatus               access.Opcode = 0x827C
	LightHSLRangeGet                    access.Opcode = 0x827D
	LightHSLRangeStatus                 access.Opcode = 0x827E

	LightHSLSetupDefaultSet               access.Opcode = 0x827F
	LightHSLSetupDefaultSetUnacknowledged access.Opcode = 0x8280
	LightHSLSetupRangeSet                 access.Opcode = 0x8281
	LightHSLSetupRangeSetUnacknowledged   access.Opcode = 0x8282
)

func registerLightHSL(r *access.Registry) {
	set := []access.Field{
		access.U16("hsl_lightness"),
		access.U16("hsl_hue"),
		access.U16("hsl_saturation"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	status := []access.Field{
		access.U16("hsl_lightness"),
		access.U16("hsl_hue"),
		access.U16("hsl_saturation"),
		optRemainingTime(),
	}
	mustRegister(r, LightHSLGet, access.NewSchema("light_hsl_get"))
	mustRegister(r, LightHSLSet, access.NewSchema("light_hsl_set", set...))
	mustRegister(r, LightHSLSetUnacknowledged, access.NewSchema("light_hsl_set_unacknowledged", set...))
	mustRegister(r, LightHSLStatus, access.NewSchema("light_hsl_status", status...))
	mustRegister(r, LightHSLTargetGet, access.NewSchema("light_hsl_target_get"))
	mustRegister(r, LightHSLTargetStatus, access.NewSchema("light_hsl_target_status",
		access.U16("hsl_lightness_target"),
		access.U16("hsl_hue_target"),
		access.U16("hsl_saturation_target"),
		optRemainingTime(),
	))

	hueSet := []access.Field{
		access.U16("hue"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, LightHSLHueGet, access.NewSchema("light_hsl_hue_get"))
	mustRegister(r, LightHSLHueSet, access.NewSchema("light_hsl_hue_set", hueSet...))
	mustRegister(r, LightHSLHueSetUnacknowledged, access.NewSchema("light_hsl_hue_set_unacknowledged", hueSet...))
	mustRegister(r, LightHSLHueStatus, access.NewSchema("light_hsl_hue_status",
		access.U16("present_hue"),
		access.U16("target_hue").AsOptional(),
		optRemainingTime(),
	))

	saturationSet := []access.Field{
		access.U16("saturation"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, LightHSLSaturationGet, access.NewSchema("light_hsl_saturation_get"))
	mustRegister(r, LightHSLSaturationSet, access.NewSchema("light_hsl_saturation_set", saturationSet...))
	mustRegister(r, LightHSLSaturationSetUnacknowledged, access.NewSchema("light_hsl_saturation_set_unacknowledged", saturationSet...))
	mustRegister(r, LightHSLSaturationStatus, access.NewSchema("light_hsl_saturation_status",
		access.U16("present_saturation"),
		access.U16("target_saturation").AsOptional(),
		optRemainingTime(),
	))

	defaults := []access.Field{
		access.U16("lightness"),
		access.U16("hue"),
		access.U16("saturation"),
	}
	mustRegister(r, LightHSLDefaultGet, access.NewSchema("light_hsl_default_get"))
	mustRegister(r, LightHSLDefaultStatus, access.NewSchema("light_hsl_default_status", defaults...))
	mustRegister(r, LightHSLSetupDefaultSet, access.NewSchema("light_hsl_setup_default_set", defaults...))
	mustRegister(r, LightHSLSetupDefaultSetUnacknowledged, access.NewSchema("light_hsl_setup_default_set_unacknowledged", defaults...))

	ranges := []access.Field{
		access.U16("hue_range_min"),
		access.U16("hue_range_max"),
		access.U16("saturation_range_min"),
		access.U16("saturation_range_max"),
	}
	mustRegister(r, LightHSLRangeGet, access.NewSchema("light_hsl_range_get"))
	mustRegister(r, LightHSLRangeStatus, access.NewSchema("light_hsl_range_status",
		append([]access.Field{access.Enum8("status_code", RangeStatusCode)}, ranges...)...,
	))
	mustRegister(r, LightHSLSetupRangeSet, access.NewSchema("light_hsl_setup_range_set", ranges...))
	mustRegister(r, LightHSLSetupRangeSetUnacknowledged, access.NewSchema("light_hsl_setup_range_set_unacknowledged", ranges...))
}
