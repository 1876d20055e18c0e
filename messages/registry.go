package messages

import (
	"fmt"

	"github.com/aozyumenko/go-mesh/access"
)

// NewRegistry builds the opcode registry for every message family declared in
// this package. Build it once at startup and share it; the result is
// immutable and safe for concurrent use.
func NewRegistry() *access.Registry {
	r := access.NewRegistry()
	registerGenericOnOff(r)
	registerGenericLevel(r)
	registerGenericDTT(r)
	registerGenericPowerOnOff(r)
	registerGenericBattery(r)
	registerLightLightness(r)
	registerLightCTL(r)
	registerLightHSL(r)
	registerSensor(r)
	registerTime(r)
	registerScene(r)
	registerHealth(r)
	registerConfig(r)
	registerThermostat(r)
	return r
}

// mustRegister binds an opcode to a schema, panicking on registration
// conflicts. The tables in this package are static declarations, so a
// conflict is a programming error.
func mustRegister(r *access.Registry, op access.Opcode, s *access.Schema) {
	if err := r.Register(op, s); err != nil {
		panic(fmt.Sprintf("messages: %v", err))
	}
}
