package messages

import "github.com/aozyumenko/go-mesh/access"

// Configuration model opcodes (subset).
const (
	ConfigAppKeyStatus          access.Opcode = 0x8003
	ConfigBeaconGet             access.Opcode = 0x8009
	ConfigBeaconSet             access.Opcode = 0x800A
	ConfigBeaconStatus          access.Opcode = 0x800B
	ConfigCompositionDataGet    access.Opcode = 0x8008
	ConfigCompositionDataStatus access.Opcode = 0x02
	ConfigDefaultTTLGet         access.Opcode = 0x800C
	ConfigDefaultTTLSet         access.Opcode = 0x800D
	ConfigDefaultTTLStatus      access.Opcode = 0x800E
	ConfigModelAppBind          access.Opcode = 0x803D
	ConfigModelAppStatus        access.Opcode = 0x803E
	ConfigRelayGet              access.Opcode = 0x8026
	ConfigRelaySet              access.Opcode = 0x8027
	ConfigRelayStatus           access.Opcode = 0x8028
	ConfigNodeReset             access.Opcode = 0x8049
	ConfigNodeResetStatus       access.Opcode = 0x804A
)

// Configuration symbol sets.
var (
	SecureBeacon = access.NewEnumSet("secure_beacon", map[uint64]string{
		0: "off",
		1: "on",
	})
	Relay = access.NewEnumSet("relay", map[uint64]string{
		0: "disabled",
		1: "enabled",
		2: "not_supported",
	})
)

func registerConfig(r *access.Registry) {
	// App-key indexes come packed three octets per pair; they are surfaced
	// raw, like the composition data page.
	mustRegister(r, ConfigAppKeyStatus, access.NewSchema("config_appkey_status",
		access.U8("status"),
		access.Raw("key_indexes"),
	))

	mustRegister(r, ConfigBeaconGet, access.NewSchema("config_beacon_get"))
	mustRegister(r, ConfigBeaconSet, access.NewSchema("config_beacon_set",
		access.Enum8("beacon", SecureBeacon),
	))
	mustRegister(r, ConfigBeaconStatus, access.NewSchema("config_beacon_status",
		access.Enum8("beacon", SecureBeacon),
	))

	mustRegister(r, ConfigCompositionDataGet, access.NewSchema("config_composition_data_get",
		access.U8("page"),
	))
	mustRegister(r, ConfigCompositionDataStatus, access.NewSchema("config_composition_data_status",
		access.U8("page"),
		access.Raw("data"),
	))

	mustRegister(r, ConfigDefaultTTLGet, access.NewSchema("config_default_ttl_get"))
	mustRegister(r, ConfigDefaultTTLSet, access.NewSchema("config_default_ttl_set",
		access.U8("ttl"),
	))
	mustRegister(r, ConfigDefaultTTLStatus, access.NewSchema("config_default_ttl_status",
		access.U8("ttl"),
	))

	// Model id is 2 octets for SIG models and 4 for vendor models; it rides
	// as a raw tail.
	mustRegister(r, ConfigModelAppBind, access.NewSchema("config_model_app_bind",
		access.U16("element_address"),
		access.U16("app_key_index"),
		access.Raw("model_id"),
	))
	mustRegister(r, ConfigModelAppStatus, access.NewSchema("config_model_app_status",
		access.U8("status"),
		access.U16("element_address"),
		access.U16("app_key_index"),
		access.Raw("model_id"),
	))

	relayFields := []access.Field{
		access.Enum8("relay", Relay),
		access.Bits1(
			access.BitUint("retransmit_interval_steps", 5),
			access.BitUint("retransmit_count", 3),
		),
	}
	mustRegister(r, ConfigRelayGet, access.NewSchema("config_relay_get"))
	mustRegister(r, ConfigRelaySet, access.NewSchema("config_relay_set", relayFields...))
	mustRegister(r, ConfigRelayStatus, access.NewSchema("config_relay_status", relayFields...))

	mustRegister(r, ConfigNodeReset, access.NewSchema("config_node_reset"))
	mustRegister(r, ConfigNodeResetStatus, access.NewSchema("config_node_reset_status"))
}
