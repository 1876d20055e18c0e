package messages

import "github.com/aozyumenko/go-mesh/access"

// Generic OnOff opcodes.
const (
	GenericOnOffGet               access.Opcode = 0x8201
	GenericOnOffSet               access.Opcode = 0x8202
	GenericOnOffSetUnacknowledged access.Opcode = 0x8203
	GenericOnOffStatus            access.Opcode = 0x8204
)

// OnOff is the symbol set of the generic on/off state.
var OnOff = access.NewEnumSet("onoff", map[uint64]string{
	0: "off",
	1: "on",
})

func registerGenericOnOff(r *access.Registry) {
	mustRegister(r, GenericOnOffGet, access.NewSchema("generic_onoff_get"))

	set := []access.Field{
		access.Enum8("onoff", OnOff),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, GenericOnOffSet, access.NewSchema("generic_onoff_set", set...))
	mustRegister(r, GenericOnOffSetUnacknowledged, access.NewSchema("generic_onoff_set_unacknowledged", set...))

	mustRegister(r, GenericOnOffStatus, access.NewSchema("generic_onoff_status",
		access.Enum8("present_onoff", OnOff),
		access.Enum8("target_onoff", OnOff).AsOptional(),
		optRemainingTime(),
	))
}
