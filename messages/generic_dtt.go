package messages

import "github.com/aozyumenko/go-mesh/access"

// Generic Default Transition Time opcodes.
const (
	GenericDTTGet               access.Opcode = 0x820D
	GenericDTTSet               access.Opcode = 0x820E
	GenericDTTSetUnacknowledged access.Opcode = 0x820F
	GenericDTTStatus            access.Opcode = 0x8210
)

func registerGenericDTT(r *access.Registry) {
	mustRegister(r, GenericDTTGet, access.NewSchema("generic_dtt_get"))
	mustRegister(r, GenericDTTSet, access.NewSchema("generic_dtt_set",
		access.TransitionTime("transition_time"),
	))
	mustRegister(r, GenericDTTSetUnacknowledged, access.NewSchema("generic_dtt_set_unacknowledged",
		access.TransitionTime("transition_time"),
	))
	mustRegister(r, GenericDTTStatus, access.NewSchema("generic_dtt_status",
		access.TransitionTime("transition_time"),
	))
}
