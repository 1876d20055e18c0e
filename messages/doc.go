// Package messages declares the opcode constants and message schemas of the
// supported mesh model families: generic on/off, level, default transition
// time, power on/off, battery, light lightness, light CTL, light HSL, sensor,
// time, scene, health, a practical subset of the configuration model, and the
// vendor thermostat model.
//
// NewRegistry builds the process-wide access.Registry from these tables. The
// registry is immutable once built; callers are expected to build it once at
// startup and share it.
package messages
