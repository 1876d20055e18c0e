package messages

import "github.com/aozyumenko/go-mesh/access"

// Generic Battery opcodes.
const (
	GenericBatteryGet    access.Opcode = 0x8223
	GenericBatteryStatus access.Opcode = 0x8224
)

// Battery flag symbol sets, two bits each.
var (
	BatteryPresence = access.NewEnumSet("battery_presence", map[uint64]string{
		0: "not_present",
		1: "present_removable",
		2: "present_non_removable",
		3: "unknown",
	})
	BatteryIndicator = access.NewEnumSet("battery_indicator", map[uint64]string{
		0: "critically_low",
		1: "low",
		2: "good",
		3: "unknown",
	})
	BatteryCharging = access.NewEnumSet("battery_charging", map[uint64]string{
		0: "not_chargeable",
		1: "chargeable_not_charging",
		2: "chargeable_charging",
		3: "unknown",
	})
	BatteryServiceability = access.NewEnumSet("battery_serviceability", map[uint64]string{
		0: "reserved",
		1: "not_requiring_service",
		2: "requiring_service",
		3: "unknown",
	})
)

func registerGenericBattery(r *access.Registry) {
	mustRegister(r, GenericBatteryGet, access.NewSchema("generic_battery_get"))
	mustRegister(r, GenericBatteryStatus, access.NewSchema("generic_battery_status",
		access.Quantity("battery_level", 1, false, 1, 0).WithSentinel(0xFF, access.Unknown),
		access.U24("time_to_discharge").WithSentinel(0xFFFFFF, access.Unknown),
		access.U24("time_to_charge").WithSentinel(0xFFFFFF, access.Unknown),
		access.Bits1(
			access.BitEnum("battery_serviceability", 2, BatteryServiceability),
			access.BitEnum("battery_charging", 2, BatteryCharging),
			access.BitEnum("battery_indicator", 2, BatteryIndicator),
			access.BitEnum("battery_presence", 2, BatteryPresence),
		),
	))
}
