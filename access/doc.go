// Package access implements the application-facing message codec of a mesh
// networking stack: variable-width opcodes, declarative message schemas built
// from typed fields, and an opcode registry that multiplexes encode and decode
// across all registered message formats.
//
// Opcodes are 1, 2 or 3 octets wide; the width is selected by the high bits of
// the first octet. 3-octet opcodes are vendor opcodes and embed a 16-bit
// company identifier.
//
// A Schema is an ordered list of Field definitions. Fields cover unsigned and
// signed integers (1 to 8 bytes), enumerations with closed symbol sets,
// bit-packed sub-byte groups, fixed-point physical quantities with a declared
// resolution and reserved sentinel raw values, transition-time rasters, greedy
// byte tails and greedy uint16 lists. A schema may switch its trailing
// structure on a discriminant field decoded earlier in the same message; the
// full discriminant table is declared at registration time.
//
// The Registry maps opcodes to schemas. Decoding bytes with an unregistered
// opcode is not an error: it yields a raw envelope carrying the opcode and the
// undecoded payload, preserving forward compatibility. Encoding mirrors this:
// an unregistered opcode can still be sent by supplying a raw payload under
// the RawParams key.
package access
