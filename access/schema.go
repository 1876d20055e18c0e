package access

import "fmt"

// Schema is a named, ordered field layout used for both encoding and decoding
// one message format.
type Schema struct {
	name   string
	fields []Field
}

// NewSchema creates a schema from an ordered field list.
//
// It panics when the layout is malformed: a greedy or switch field not in
// last position, a bit group whose widths do not sum to the group size, or an
// optional field followed by a required one. Schemas are static declarations,
// so a malformed layout is a programming error caught at registration.
func NewSchema(name string, fields ...Field) *Schema {
	optional := false
	for i, f := range fields {
		if f.Kind == FieldBytes || f.Kind == FieldUint16List || f.Kind == FieldSwitch {
			if i != len(fields)-1 {
				panic(fmt.Sprintf("schema %s: greedy field %q must be last", name, f.Name))
			}
		}
		if f.Kind == FieldBits {
			width := 0
			for _, bit := range f.Bits {
				width += bit.Width
			}
			if width != 8*f.ByteSize {
				panic(fmt.Sprintf("schema %s: bit group widths sum to %d, want %d", name, width, 8*f.ByteSize))
			}
		}
		if f.Optional {
			optional = true
		} else if optional {
			panic(fmt.Sprintf("schema %s: required field %q after optional tail", name, f.Name))
		}
	}
	return &Schema{name: name, fields: fields}
}

// Name returns the schema's registered name.
func (s *Schema) Name() string { return s.name }

// Decode parses a full payload into a parameter map. The payload must match
// the schema exactly: a short payload for a required field is a truncation
// fault, bytes beyond the last field are a trailing-bytes fault, and an
// exhausted payload at the optional tail simply omits the tail.
func (s *Schema) Decode(data []byte) (Params, error) {
	p := make(Params, len(s.fields))
	off := 0
	for i := range s.fields {
		f := &s.fields[i]
		if f.Optional && off == len(data) {
			break
		}
		n, err := f.decode(data[off:], p)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", s.name, f.Name, err)
		}
		off += n
	}
	if off != len(data) {
		return nil, fmt.Errorf("%s: %w (%d)", s.name, ErrTrailingBytes, len(data)-off)
	}
	return p, nil
}

// Encode builds the payload for the given parameter map. All required fields
// must be present; the optional tail is encoded only when all of its fields
// are present. No bytes are returned on error.
func (s *Schema) Encode(p Params) ([]byte, error) {
	return s.appendEncode(nil, p)
}

func (s *Schema) appendEncode(dst []byte, p Params) ([]byte, error) {
	buf := dst
	skippedTail := false
	var err error
	for i := range s.fields {
		f := &s.fields[i]
		if f.Optional {
			if _, ok := p[f.presenceName()]; !ok {
				skippedTail = true
				continue
			}
			if skippedTail {
				return dst, fmt.Errorf("%s.%s: %w", s.name, f.Name, ErrPartialOptionalTail)
			}
		}
		buf, err = f.appendEncode(buf, p)
		if err != nil {
			return dst, fmt.Errorf("%s.%s: %w", s.name, f.Name, err)
		}
	}
	return buf, nil
}
