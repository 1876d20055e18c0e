package messages

import "github.com/aozyumenko/go-mesh/access"

// Thermostat is the vendor opcode of the thermostat model: marker 0xC0 plus
// company id 0x0005. The first payload octet is a sub-opcode selecting the
// sub-message schema.
const Thermostat access.Opcode = 0xC00500

// Thermostat sub-opcodes.
const (
	ThermostatGet         uint64 = 0x00
	ThermostatSet         uint64 = 0x01
	ThermostatStatus      uint64 = 0x02
	ThermostatRangeGet    uint64 = 0x03
	ThermostatRangeStatus uint64 = 0x04
)

// Thermostat symbol sets.
var (
	ThermostatSubOpcode = access.NewEnumSet("thermostat_subopcode", map[uint64]string{
		ThermostatGet:         "thermostat_get",
		ThermostatSet:         "thermostat_set",
		ThermostatStatus:      "thermostat_status",
		ThermostatRangeGet:    "thermostat_range_get",
		ThermostatRangeStatus: "thermostat_range_status",
	})
	ThermostatStatusCode = access.NewEnumSet("thermostat_status_code", map[uint64]string{
		0: "good",
		1: "invalid_mode",
		2: "invalid_temperature",
	})
	ThermostatMode = access.NewEnumSet("thermostat_mode", map[uint64]string{
		0: "manual",
		1: "auto",
		2: "rsvd1",
		3: "rsvd2",
	})
)

// temperature is a signed 16-bit quantity in degrees Celsius with a 0.01
// resolution.
func temperature(name string) access.Field {
	return access.Quantity(name, 2, true, 0.01, 2)
}

func registerThermostat(r *access.Registry) {
	cases := map[uint64]*access.Schema{
		ThermostatGet: access.NewSchema("thermostat_get"),
		ThermostatSet: access.NewSchema("thermostat_set",
			access.Bits1(
				access.Reserved("rsvd", 6),
				access.BitEnum("mode", 2, ThermostatMode),
			),
			temperature("temperature"),
		),
		ThermostatStatus: access.NewSchema("thermostat_status",
			access.Enum8("status_code", ThermostatStatusCode),
			access.Bits1(
				access.Reserved("rsvd", 4),
				access.Flag("heater_status"),
				access.BitEnum("mode", 2, ThermostatMode),
				access.Flag("onoff_status"),
			),
			temperature("target_temperature"),
			temperature("present_temperature"),
		),
		ThermostatRangeGet: access.NewSchema("thermostat_range_get"),
		ThermostatRangeStatus: access.NewSchema("thermostat_range_status",
			temperature("min_temperature"),
			temperature("max_temperature"),
		),
	}

	mustRegister(r, Thermostat, access.NewSchema("thermostat",
		access.Enum8("subopcode", ThermostatSubOpcode),
		access.Switch("payload", "subopcode", cases),
	))
}
