package messages

import "github.com/aozyumenko/go-mesh/access"

// Generic Level opcodes.
const (
	GenericLevelGet               access.Opcode = 0x8205
	GenericLevelSet               access.Opcode = 0x8206
	GenericLevelSetUnacknowledged access.Opcode = 0x8207
	GenericLevelStatus            access.Opcode = 0x8208
	GenericDeltaSet               access.Opcode = 0x8209
	GenericDeltaSetUnacknowledged access.Opcode = 0x820A
	GenericMoveSet                access.Opcode = 0x820B
	GenericMoveSetUnacknowledged  access.Opcode = 0x820C
)

func registerGenericLevel(r *access.Registry) {
	mustRegister(r, GenericLevelGet, access.NewSchema("generic_level_get"))

	set := []access.Field{
		access.I16("level"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, GenericLevelSet, access.NewSchema("generic_level_set", set...))
	mustRegister(r, GenericLevelSetUnacknowledged, access.NewSchema("generic_level_set_unacknowledged", set...))

	mustRegister(r, GenericLevelStatus, access.NewSchema("generic_level_status",
		access.I16("present_level"),
		access.I16("target_level").AsOptional(),
		optRemainingTime(),
	))

	deltaSet := []access.Field{
		access.I32("delta_level"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, GenericDeltaSet, access.NewSchema("generic_delta_set", deltaSet...))
	mustRegister(r, GenericDeltaSetUnacknowledged, access.NewSchema("generic_delta_set_unacknowledged", deltaSet...))

	moveSet := []access.Field{
		access.I16("delta_level"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, GenericMoveSet, access.NewSchema("generic_move_set", moveSet...))
	mustRegister(r, GenericMoveSetUnacknowledged, access.NewSchema("generic_move_set_unacknowledged", moveSet...))
}
