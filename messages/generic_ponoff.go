package messages

import "github.com/aozyumenko/go-mesh/access"

// Generic Power OnOff opcodes.
const (
	GenericPowerOnOffGet               access.Opcode = 0x8211
	GenericPowerOnOffStatus            access.Opcode = 0x8212
	GenericPowerOnOffSet               access.Opcode = 0x8213
	GenericPowerOnOffSetUnacknowledged access.Opcode = 0x8214
)

// OnPowerUp is the symbol set of the power-up behavior state.
var OnPowerUp = access.NewEnumSet("on_power_up", map[uint64]string{
	0: "off",
	1: "default",
	2: "restore",
})

func registerGenericPowerOnOff(r *access.Registry) {
	mustRegister(r, GenericPowerOnOffGet, access.NewSchema("generic_ponoff_get"))
	mustRegister(r, GenericPowerOnOffStatus, access.NewSchema("generic_ponoff_status",
		access.Enum8("on_power_up", OnPowerUp),
	))
	mustRegister(r, GenericPowerOnOffSet, access.NewSchema("generic_ponoff_set",
		access.Enum8("on_power_up", OnPowerUp),
	))
	mustRegister(r, GenericPowerOnOffSetUnacknowledged, access.NewSchema("generic_ponoff_set_unacknowledged",
		access.Enum8("on_power_up", OnPowerUp),
	))
}
