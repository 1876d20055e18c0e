package messages

import "github.com/aozyumenko/go-mesh/access"

// Health opcodes.
const (
	HealthCurrentStatus              access.Opcode = 0x04
	HealthFaultStatus                access.Opcode = 0x05
	HealthFaultGet                   access.Opcode = 0x8031
	HealthFaultClear                 access.Opcode = 0x802F
	HealthFaultClearUnacknowledged   access.Opcode = 0x8030
	HealthFaultTest                  access.Opcode = 0x8032
	HealthFaultTestUnacknowledged    access.Opcode = 0x8033
	HealthPeriodGet                  access.Opcode = 0x8034
	HealthPeriodSet                  access.Opcode = 0x8035
	HealthPeriodSetUnacknowledged    access.Opcode = 0x8036
	HealthPeriodStatus               access.Opcode = 0x8037
	HealthAttentionGet               access.Opcode = 0x8004
	HealthAttentionSet               access.Opcode = 0x8005
	HealthAttentionSetUnacknowledged access.Opcode = 0x8006
	HealthAttentionStatus            access.Opcode = 0x8007
)

func registerHealth(r *access.Registry) {
	faultStatus := []access.Field{
		access.U8("test_id"),
		access.U16("company_id"),
		access.Raw("fault_array"),
	}
	mustRegister(r, HealthCurrentStatus, access.NewSchema("health_current_status", faultStatus...))
	mustRegister(r, HealthFaultStatus, access.NewSchema("health_fault_status",
		access.U8("test_id"),
		access.U16("company_id"),
		access.Raw("faults"),
	))

	mustRegister(r, HealthFaultGet, access.NewSchema("health_fault_get",
		access.U16("company_id"),
	))
	mustRegister(r, HealthFaultClear, access.NewSchema("health_fault_clear",
		access.U16("company_id"),
	))
	mustRegister(r, HealthFaultClearUnacknowledged, access.NewSchema("health_fault_clear_unacknowledged",
		access.U16("company_id"),
	))

	test := []access.Field{
		access.U8("test_id"),
		access.U16("company_id"),
	}
	mustRegister(r, HealthFaultTest, access.NewSchema("health_fault_test", test...))
	mustRegister(r, HealthFaultTestUnacknowledged, access.NewSchema("health_fault_test_unacknowledged", test...))

	mustRegister(r, HealthPeriodGet, access.NewSchema("health_period_get"))
	mustRegister(r, HealthPeriodSet, access.NewSchema("health_period_set",
		access.U8("fast_period_divisor"),
	))
	mustRegister(r, HealthPeriodSetUnacknowledged, access.NewSchema("health_period_set_unacknowledged",
		access.U8("fast_period_divisor"),
	))
	mustRegister(r, HealthPeriodStatus, access.NewSchema("health_period_status",
		access.U8("fast_period_divisor"),
	))

	mustRegister(r, HealthAttentionGet, access.NewSchema("health_attention_get"))
	mustRegister(r, HealthAttentionSet, access.NewSchema("health_attention_set",
		access.U8("attention"),
	))
	mustRegister(r, HealthAttentionSetUnacknowledged, access.NewSchema("health_attention_set_unacknowledged",
		access.U8("attention"),
	))
	mustRegister(r, HealthAttentionStatus, access.NewSchema("health_attention_status",
		access.U8("attention"),
	))
}
