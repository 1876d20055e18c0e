package messages

import "github.com/aozyumenko/go-mesh/access"

// Time opcodes.
const (
	TimeGet           access.Opcode = 0x8237
	TimeSet           access.Opcode = 0x5C
	TimeStatus        access.Opcode = 0x5D
	TimeRoleGet       access.Opcode = 0x8238
	TimeRoleSet       access.Opcode = 0x8239
	TimeRoleStatus    access.Opcode = 0x823A
	TimeZoneGet       access.Opcode = 0x823B
	TimeZoneSet       access.Opcode = 0x823C
	TimeZoneStatus    access.Opcode = 0x823D
	TAIUTCDeltaGet    access.Opcode = 0x823E
	TAIUTCDeltaSet    access.Opcode = 0x823F
	TAIUTCDeltaStatus access.Opcode = 0x8240
)

// TimeRole is the symbol set of the time role state.
var TimeRole = access.NewEnumSet("time_role", map[uint64]string{
	0: "none",
	1: "mesh_time_authority",
	2: "mesh_time_relay",
	3: "mesh_time_client",
})

func registerTime(r *access.Registry) {
	// A TAI seconds value of zero means the time is unknown; the rest of the
	// message is omitted in that case.
	timeFields := []access.Field{
		access.U40("tai_seconds").WithSentinel(0, access.Unknown),
		access.Quantity("subsecond", 1, false, 1.0/256, 4).AsOptional(),
		access.Quantity("uncertainty", 1, false, 0.01, 2).AsOptional(),
		access.Bits2(
			access.BitUint("tai_utc_delta", 15),
			access.Flag("time_authority"),
		).AsOptional(),
		access.U8("time_zone_offset").AsOptional(),
	}
	mustRegister(r, TimeGet, access.NewSchema("time_get"))
	mustRegister(r, TimeSet, access.NewSchema("time_set", timeFields...))
	mustRegister(r, TimeStatus, access.NewSchema("time_status", timeFields...))

	mustRegister(r, TimeRoleGet, access.NewSchema("time_role_get"))
	mustRegister(r, TimeRoleSet, access.NewSchema("time_role_set",
		access.Enum8("time_role", TimeRole),
	))
	mustRegister(r, TimeRoleStatus, access.NewSchema("time_role_status",
		access.Enum8("time_role", TimeRole),
	))

	mustRegister(r, TimeZoneGet, access.NewSchema("time_zone_get"))
	mustRegister(r, TimeZoneSet, access.NewSchema("time_zone_set",
		access.U8("time_zone_offset_new"),
		access.U40("tai_of_zone_change"),
	))
	mustRegister(r, TimeZoneStatus, access.NewSchema("time_zone_status",
		access.U8("time_zone_offset_current"),
		access.U8("time_zone_offset_new"),
		access.U40("tai_of_zone_change"),
	))

	mustRegister(r, TAIUTCDeltaGet, access.NewSchema("tai_utc_delta_get"))
	mustRegister(r, TAIUTCDeltaSet, access.NewSchema("tai_utc_delta_set",
		access.Bits2(
			access.BitUint("tai_utc_delta_new", 15),
			access.Reserved("padding", 1),
		),
		access.U40("tai_of_delta_change"),
	))
	mustRegister(r, TAIUTCDeltaStatus, access.NewSchema("tai_utc_delta_status",
		access.Bits2(
			access.BitUint("tai_utc_delta_current", 15),
			access.Reserved("padding", 1),
		),
		access.Bits2(
			access.BitUint("tai_utc_delta_new", 15),
			access.Reserved("padding_new", 1),
		),
		access.U40("tai_of_delta_change"),
	))
}
