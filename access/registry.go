package access

import (
	"fmt"

	"github.com/aozyumenko/go-mesh/internal/util"
)

// Message is the decoded form of an access-layer message.
//
// For a registered opcode, Name and Params carry the schema name and the
// decoded parameters. For an unregistered opcode, Params is nil and Raw holds
// the undecoded payload; such envelopes are not an error.
type Message struct {
	Opcode Opcode
	Name   string
	Params Params
	Raw    []byte
}

// Known reports whether the message was decoded against a registered schema.
func (m *Message) Known() bool { return m.Params != nil }

// Registry maps opcodes to message schemas and multiplexes encode and decode
// across them. A Registry is built once at startup and must not be mutated
// afterward; a fully built Registry is safe for concurrent use.
type Registry struct {
	schemas map[Opcode]*Schema
	names   map[string]Opcode
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[Opcode]*Schema),
		names:   make(map[string]Opcode),
	}
}

// Register binds an opcode to a schema. Each opcode and each schema name can
// be registered only once.
func (r *Registry) Register(op Opcode, s *Schema) error {
	if !op.Valid() {
		return fmt.Errorf("opcode %#x: %w", uint32(op), ErrInvalidOpcode)
	}
	if _, ok := r.schemas[op]; ok {
		return fmt.Errorf("opcode %v: %w", op, ErrDuplicateOpcode)
	}
	if _, ok := r.names[s.Name()]; ok {
		return fmt.Errorf("schema %q: %w", s.Name(), ErrDuplicateOpcode)
	}
	r.schemas[op] = s
	r.names[s.Name()] = op
	return nil
}

// Schema returns the schema registered for op.
func (r *Registry) Schema(op Opcode) (*Schema, bool) {
	s, ok := r.schemas[op]
	return s, ok
}

// OpcodeByName returns the opcode registered under the given schema name.
func (r *Registry) OpcodeByName(name string) (Opcode, bool) {
	op, ok := r.names[name]
	return op, ok
}

// Decode reads the opcode from data and decodes the remaining payload against
// the registered schema.
//
// An unregistered opcode yields a raw envelope, never an error. A malformed
// payload for a registered opcode is a structural decode fault.
func (r *Registry) Decode(data []byte) (*Message, error) {
	op, n, err := DecodeOpcode(data)
	if err != nil {
		return nil, err
	}
	s, ok := r.schemas[op]
	if !ok {
		return &Message{Opcode: op, Raw: util.CloneSlice(data[n:], 0)}, nil
	}
	params, err := s.Decode(data[n:])
	if err != nil {
		return nil, err
	}
	return &Message{Opcode: op, Name: s.Name(), Params: params}, nil
}

// Encode writes the opcode prefix followed by the payload encoded against the
// registered schema.
//
// When no schema is registered for op, the payload is taken verbatim from the
// RawParams entry of p, mirroring the decode fallback so not-yet-modeled
// messages can still be sent; without that entry, ErrNoSchema is returned.
func (r *Registry) Encode(op Opcode, p Params) ([]byte, error) {
	s, ok := r.schemas[op]
	if !ok {
		raw, ok := p.Bytes(RawParams)
		if !ok {
			return nil, fmt.Errorf("opcode %v: %w", op, ErrNoSchema)
		}
		return r.EncodeRaw(op, raw)
	}
	buf, err := AppendOpcode(make([]byte, 0, op.Size()+8), op)
	if err != nil {
		return nil, err
	}
	buf, err = s.appendEncode(buf, p)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeName encodes against the schema registered under the given symbolic
// name.
func (r *Registry) EncodeName(name string, p Params) ([]byte, error) {
	op, ok := r.names[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownName)
	}
	return r.Encode(op, p)
}

// EncodeRaw writes the opcode prefix followed by a caller-supplied payload,
// bypassing schema lookup.
func (r *Registry) EncodeRaw(op Opcode, payload []byte) ([]byte, error) {
	buf, err := AppendOpcode(make([]byte, 0, op.Size()+len(payload)), op)
	if err != nil {
		return nil, err
	}
	return append(buf, payload...), nil
}
