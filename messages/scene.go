package messages

import "github.com/aozyumenko/go-mesh/access"

// Scene opcodes.
const (
	SceneGet                  access.Opcode = 0x8241
	SceneRecall               access.Opcode = 0x8242
	SceneRecallUnacknowledged access.Opcode = 0x8243
	SceneStatus               access.Opcode = 0x5E
	SceneRegisterGet          access.Opcode = 0x8244
	SceneRegisterStatus       access.Opcode = 0x8245
	SceneStore                access.Opcode = 0x8246
	SceneStoreUnacknowledged  access.Opcode = 0x8247
	SceneDelete               access.Opcode = 0x829E
	SceneDeleteUnacknowledged access.Opcode = 0x829F
)

// SceneStatusCode is the symbol set of scene operation status codes.
var SceneStatusCode = access.NewEnumSet("scene_status_code", map[uint64]string{
	0: "success",
	1: "scene_register_full",
	2: "scene_not_found",
})

func registerScene(r *access.Registry) {
	mustRegister(r, SceneGet, access.NewSchema("scene_get"))

	recall := []access.Field{
		access.U16("scene_number"),
		tid(),
		optTransitionTime(),
		optDelay(),
	}
	mustRegister(r, SceneRecall, access.NewSchema("scene_recall", recall...))
	mustRegister(r, SceneRecallUnacknowledged, access.NewSchema("scene_recall_unacknowledged", recall...))

	mustRegister(r, SceneStatus, access.NewSchema("scene_status",
		access.Enum8("status_code", SceneStatusCode),
		access.U16("current_scene"),
		access.U16("target_scene").AsOptional(),
		optRemainingTime(),
	))

	mustRegister(r, SceneRegisterGet, access.NewSchema("scene_register_get"))
	mustRegister(r, SceneRegisterStatus, access.NewSchema("scene_register_status",
		access.Enum8("status_code", SceneStatusCode),
		access.U16("current_scene"),
		access.U16List("scenes"),
	))

	mustRegister(r, SceneStore, access.NewSchema("scene_store",
		access.U16("scene_number"),
	))
	mustRegister(r, SceneStoreUnacknowledged, access.NewSchema("scene_store_unacknowledged",
		access.U16("scene_number"),
	))
	mustRegister(r, SceneDelete, access.NewSchema("scene_delete",
		access.U16("scene_number"),
	))
	mustRegister(r, SceneDeleteUnacknowledged, access.NewSchema("scene_delete_unacknowledged",
		access.U16("scene_number"),
	))
}
