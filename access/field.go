package access

import (
	"fmt"
	"math"

	"github.com/aozyumenko/go-mesh/internal/util"
)

// FieldKind enumerates the wire representations a Field can take.
type FieldKind int

const (
	FieldUint FieldKind = iota
	FieldInt
	FieldEnum
	FieldQuantity
	FieldBits
	FieldTransitionTime
	FieldBytes
	FieldUint16List
	FieldSwitch
)

// EnumSet declares the symbol set of an enumeration field. Decoding a raw
// value outside a closed set is a decode fault; an open set passes unknown
// values through untouched.
type EnumSet struct {
	name    string
	symbols map[uint64]string
	open    bool
}

// NewEnumSet creates a closed enumeration symbol set.
func NewEnumSet(name string, symbols map[uint64]string) *EnumSet {
	return &EnumSet{name: name, symbols: symbols}
}

// NewOpenEnumSet creates an enumeration set that documents known symbols but
// accepts any raw value.
func NewOpenEnumSet(name string, symbols map[uint64]string) *EnumSet {
	return &EnumSet{name: name, symbols: symbols, open: true}
}

// Name returns the set's name.
func (e *EnumSet) Name() string { return e.name }

// Has reports whether raw is a declared symbol.
func (e *EnumSet) Has(raw uint64) bool {
	_, ok := e.symbols[raw]
	return ok
}

// Symbol returns the declared name of raw, or the empty string.
func (e *EnumSet) Symbol(raw uint64) string { return e.symbols[raw] }

func (e *EnumSet) check(raw uint64) error {
	if e.open || e.Has(raw) {
		return nil
	}
	return fmt.Errorf("%w: %d not in %s", ErrUnknownEnum, raw, e.name)
}

// Bit declares one sub-field of a bit-packed group. Sub-fields are packed
// most-significant-bit first in declaration order.
type Bit struct {
	Name     string
	Width    int
	Flag     bool     // surface as bool instead of uint64
	Enum     *EnumSet // optional symbol set for the sub-field
	Reserved bool     // written as zero, surfaced but not validated on decode
}

// Flag declares a single-bit boolean sub-field.
func Flag(name string) Bit { return Bit{Name: name, Width: 1, Flag: true} }

// BitUint declares an unsigned sub-field of the given bit width.
func BitUint(name string, width int) Bit { return Bit{Name: name, Width: width} }

// BitEnum declares an enumerated sub-field of the given bit width.
func BitEnum(name string, width int, set *EnumSet) Bit {
	return Bit{Name: name, Width: width, Enum: set}
}

// Reserved declares padding bits: written as zero, surfaced on decode under
// the given name without validation.
func Reserved(name string, width int) Bit {
	return Bit{Name: name, Width: width, Reserved: true}
}

// Field is one entry of a Schema. Fields are built with the constructor
// functions below and modified with the chainable With* methods.
type Field struct {
	Name       string
	Kind       FieldKind
	ByteSize   int
	Signed     bool
	BigEndian  bool
	Enum       *EnumSet
	Resolution float64
	Digits     int
	Sentinels  map[uint64]Sentinel
	Bits       []Bit
	Optional   bool
	SwitchOn   string
	Cases      map[uint64]*Schema
}

// U8 declares a 1-byte unsigned integer field.
func U8(name string) Field { return Field{Name: name, Kind: FieldUint, ByteSize: 1} }

// U16 declares a 2-byte unsigned integer field.
func U16(name string) Field { return Field{Name: name, Kind: FieldUint, ByteSize: 2} }

// U24 declares a 3-byte unsigned integer field.
func U24(name string) Field { return Field{Name: name, Kind: FieldUint, ByteSize: 3} }

// U32 declares a 4-byte unsigned integer field.
func U32(name string) Field { return Field{Name: name, Kind: FieldUint, ByteSize: 4} }

// U40 declares a 5-byte unsigned integer field.
func U40(name string) Field { return Field{Name: name, Kind: FieldUint, ByteSize: 5} }

// I8 declares a 1-byte signed integer field.
func I8(name string) Field { return Field{Name: name, Kind: FieldInt, ByteSize: 1, Signed: true} }

// I16 declares a 2-byte signed integer field.
func I16(name string) Field { return Field{Name: name, Kind: FieldInt, ByteSize: 2, Signed: true} }

// I32 declares a 4-byte signed integer field.
func I32(name string) Field { return Field{Name: name, Kind: FieldInt, ByteSize: 4, Signed: true} }

// Enum8 declares a 1-byte enumeration field.
func Enum8(name string, set *EnumSet) Field {
	return Field{Name: name, Kind: FieldEnum, ByteSize: 1, Enum: set}
}

// Enum16 declares a 2-byte enumeration field.
func Enum16(name string, set *EnumSet) Field {
	return Field{Name: name, Kind: FieldEnum, ByteSize: 2, Enum: set}
}

// Quantity declares a fixed-point physical quantity transmitted as a scaled
// integer of the given byte size. Decoding computes raw*resolution rounded to
// digits decimal places; encoding computes round(value/resolution) and
// range-checks it against the field's bit width.
func Quantity(name string, byteSize int, signed bool, resolution float64, digits int) Field {
	return Field{
		Name:       name,
		Kind:       FieldQuantity,
		ByteSize:   byteSize,
		Signed:     signed,
		Resolution: resolution,
		Digits:     digits,
	}
}

// Bits1 declares a 1-byte bit-packed group. The sub-field widths must sum
// to 8.
func Bits1(bits ...Bit) Field { return Field{Kind: FieldBits, ByteSize: 1, Bits: bits} }

// Bits2 declares a 2-byte bit-packed group. The sub-field widths must sum
// to 16.
func Bits2(bits ...Bit) Field { return Field{Kind: FieldBits, ByteSize: 2, Bits: bits} }

// TransitionTime declares a 1-byte transition-time field: 2 resolution bits
// selecting a step raster (100ms, 1s, 10s, 10min) and 6 step bits, with 0x3F
// steps meaning "unknown". The decoded value is in seconds.
func TransitionTime(name string) Field {
	return Field{Name: name, Kind: FieldTransitionTime, ByteSize: 1}
}

// Raw declares a greedy byte-tail field consuming the rest of the payload.
// It must be the last field of its schema.
func Raw(name string) Field { return Field{Name: name, Kind: FieldBytes} }

// U16List declares a greedy list of 2-byte unsigned integers consuming the
// rest of the payload. It must be the last field of its schema.
func U16List(name string) Field { return Field{Name: name, Kind: FieldUint16List} }

// Switch declares a field whose structure is selected by the value of an
// already-decoded discriminant field. The decoded variant is stored as a
// nested Params under the field's name. It must be the last field of its
// schema, and every admissible discriminant value must appear in cases.
func Switch(name, on string, cases map[uint64]*Schema) Field {
	return Field{Name: name, Kind: FieldSwitch, SwitchOn: on, Cases: cases}
}

// WithSentinel declares a reserved raw value decoded as (and encoded from)
// the given sentinel symbol instead of a numeric value.
func (f Field) WithSentinel(raw uint64, s Sentinel) Field {
	sentinels := make(map[uint64]Sentinel, len(f.Sentinels)+1)
	for k, v := range f.Sentinels {
		sentinels[k] = v
	}
	sentinels[raw] = s
	f.Sentinels = sentinels
	return f
}

// BE switches the field to big-endian wire order. Payload fields default to
// little-endian.
func (f Field) BE() Field {
	f.BigEndian = true
	return f
}

// AsOptional marks the field as part of the schema's optional tail: absent
// bytes on decode and an absent parameter on encode skip it. Optional fields
// must be contiguous at the end of the schema and are all-or-none.
func (f Field) AsOptional() Field {
	f.Optional = true
	return f
}

// presenceName is the parameter key that decides whether an optional field is
// present for encoding. Bit groups have no name of their own, so the first
// non-reserved sub-field stands in.
func (f *Field) presenceName() string {
	if f.Kind != FieldBits {
		return f.Name
	}
	for _, bit := range f.Bits {
		if !bit.Reserved {
			return bit.Name
		}
	}
	return f.Name
}

var transitionRasters = [4]float64{0.1, 1, 10, 600}

const transitionStepsUnknown = 0x3F

func (f *Field) readUint(data []byte) uint64 {
	var v uint64
	if f.BigEndian {
		for _, b := range data[:f.ByteSize] {
			v = v<<8 | uint64(b)
		}
		return v
	}
	for i := f.ByteSize - 1; i >= 0; i-- {
		v = v<<8 | uint64(data[i])
	}
	return v
}

func (f *Field) appendUint(dst []byte, v uint64) []byte {
	if f.BigEndian {
		for i := f.ByteSize - 1; i >= 0; i-- {
			dst = append(dst, byte(v>>(8*i)))
		}
		return dst
	}
	for i := 0; i < f.ByteSize; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

func (f *Field) signExtend(raw uint64) int64 {
	shift := 64 - 8*f.ByteSize
	return int64(raw<<shift) >> shift
}

func (f *Field) uintMax() uint64 {
	if f.ByteSize >= 8 {
		return math.MaxUint64
	}
	return 1<<(8*f.ByteSize) - 1
}

func (f *Field) intRange() (int64, int64) {
	bits := 8 * f.ByteSize
	return -(1 << (bits - 1)), 1<<(bits-1) - 1
}

// decode reads the field from the start of data into p and returns the number
// of bytes consumed.
func (f *Field) decode(data []byte, p Params) (int, error) {
	switch f.Kind {
	case FieldBytes:
		p[f.Name] = util.CloneSlice(data, 0)
		return len(data), nil

	case FieldUint16List:
		if len(data)%2 != 0 {
			return 0, ErrTruncated
		}
		list := make([]uint64, 0, len(data)/2)
		for off := 0; off < len(data); off += 2 {
			if f.BigEndian {
				list = append(list, uint64(data[off])<<8|uint64(data[off+1]))
			} else {
				list = append(list, uint64(data[off+1])<<8|uint64(data[off]))
			}
		}
		p[f.Name] = list
		return len(data), nil

	case FieldSwitch:
		disc, ok := p.Uint(f.SwitchOn)
		if !ok {
			return 0, fmt.Errorf("discriminant %q: %w", f.SwitchOn, ErrMissingParam)
		}
		variant, ok := f.Cases[disc]
		if !ok {
			return 0, fmt.Errorf("%w: %s=%d", ErrUnknownVariant, f.SwitchOn, disc)
		}
		sub, err := variant.Decode(data)
		if err != nil {
			return 0, err
		}
		p[f.Name] = sub
		return len(data), nil
	}

	if len(data) < f.ByteSize {
		return 0, ErrTruncated
	}
	raw := f.readUint(data)

	if s, ok := f.Sentinels[raw]; ok {
		p[f.Name] = s
		return f.ByteSize, nil
	}

	switch f.Kind {
	case FieldUint:
		p[f.Name] = raw

	case FieldInt:
		p[f.Name] = f.signExtend(raw)

	case FieldEnum:
		if err := f.Enum.check(raw); err != nil {
			return 0, err
		}
		p[f.Name] = raw

	case FieldQuantity:
		var v float64
		if f.Signed {
			v = float64(f.signExtend(raw)) * f.Resolution
		} else {
			v = float64(raw) * f.Resolution
		}
		p[f.Name] = roundDigits(v, f.Digits)

	case FieldTransitionTime:
		steps := raw & 0x3F
		if steps == transitionStepsUnknown {
			p[f.Name] = Unknown
			break
		}
		p[f.Name] = roundDigits(float64(steps)*transitionRasters[raw>>6], 1)

	case FieldBits:
		shift := 8 * f.ByteSize
		for _, bit := range f.Bits {
			shift -= bit.Width
			v := (raw >> shift) & (1<<bit.Width - 1)
			switch {
			case bit.Flag:
				p[bit.Name] = v != 0
			case bit.Enum != nil && !bit.Reserved:
				if err := bit.Enum.check(v); err != nil {
					return 0, fmt.Errorf("%s: %w", bit.Name, err)
				}
				p[bit.Name] = v
			default:
				p[bit.Name] = v
			}
		}
	}

	return f.ByteSize, nil
}

// appendEncode appends the field's wire form to dst. No bytes are appended
// when an error is returned.
func (f *Field) appendEncode(dst []byte, p Params) ([]byte, error) {
	switch f.Kind {
	case FieldBytes:
		b, ok := p.Bytes(f.Name)
		if !ok {
			if _, present := p[f.Name]; !present {
				return dst, ErrMissingParam
			}
			return dst, ErrBadParamType
		}
		return append(dst, b...), nil

	case FieldUint16List:
		list, err := uint16ListParam(p[f.Name])
		if err != nil {
			return dst, err
		}
		for _, v := range list {
			if v > math.MaxUint16 {
				return dst, fmt.Errorf("%w: %d exceeds u16", ErrOutOfRange, v)
			}
			if f.BigEndian {
				dst = append(dst, byte(v>>8), byte(v))
			} else {
				dst = append(dst, byte(v), byte(v>>8))
			}
		}
		return dst, nil

	case FieldSwitch:
		disc, ok := p.Uint(f.SwitchOn)
		if !ok {
			return dst, fmt.Errorf("discriminant %q: %w", f.SwitchOn, ErrMissingParam)
		}
		variant, ok := f.Cases[disc]
		if !ok {
			return dst, fmt.Errorf("%w: %s=%d", ErrUnknownVariant, f.SwitchOn, disc)
		}
		sub, ok := p.Nested(f.Name)
		if !ok {
			if _, present := p[f.Name]; !present {
				return dst, ErrMissingParam
			}
			return dst, ErrBadParamType
		}
		return variant.appendEncode(dst, sub)

	case FieldBits:
		var group uint64
		shift := 8 * f.ByteSize
		for _, bit := range f.Bits {
			shift -= bit.Width
			v, err := bitParam(p, bit)
			if err != nil {
				return dst, fmt.Errorf("%s: %w", bit.Name, err)
			}
			if v > 1<<bit.Width-1 {
				return dst, fmt.Errorf("%s: %w: %d exceeds %d bits", bit.Name, ErrOutOfRange, v, bit.Width)
			}
			group |= v << shift
		}
		return f.appendUint(dst, group), nil
	}

	v, ok := p[f.Name]
	if !ok {
		return dst, ErrMissingParam
	}

	if s, ok := v.(Sentinel); ok {
		// Transition time carries its unknown marker in the step bits rather
		// than a declared sentinel raw value.
		if f.Kind == FieldTransitionTime && s == Unknown {
			return append(dst, transitionStepsUnknown), nil
		}
		for raw, sym := range f.Sentinels {
			if sym == s {
				return f.appendUint(dst, raw), nil
			}
		}
		return dst, fmt.Errorf("%w: no sentinel %q", ErrBadParamType, string(s))
	}

	switch f.Kind {
	case FieldUint:
		u, ok := asUint64(v)
		if !ok {
			return dst, ErrBadParamType
		}
		if u > f.uintMax() {
			return dst, fmt.Errorf("%w: %d exceeds %d bytes unsigned", ErrOutOfRange, u, f.ByteSize)
		}
		return f.appendUint(dst, u), nil

	case FieldInt:
		i, ok := asInt64(v)
		if !ok {
			return dst, ErrBadParamType
		}
		lo, hi := f.intRange()
		if i < lo || i > hi {
			return dst, fmt.Errorf("%w: %d exceeds %d bytes signed", ErrOutOfRange, i, f.ByteSize)
		}
		return f.appendUint(dst, uint64(i)&f.uintMax()), nil

	case FieldEnum:
		u, ok := asUint64(v)
		if !ok {
			return dst, ErrBadParamType
		}
		if err := f.Enum.check(u); err != nil {
			return dst, err
		}
		if u > f.uintMax() {
			return dst, fmt.Errorf("%w: %d exceeds %d bytes unsigned", ErrOutOfRange, u, f.ByteSize)
		}
		return f.appendUint(dst, u), nil

	case FieldQuantity:
		val, ok := asFloat64(v)
		if !ok {
			return dst, ErrBadParamType
		}
		raw := math.Round(val / f.Resolution)
		if f.Signed {
			lo, hi := f.intRange()
			if raw < float64(lo) || raw > float64(hi) {
				return dst, fmt.Errorf("%w: %v exceeds %d bytes signed at resolution %v", ErrOutOfRange, val, f.ByteSize, f.Resolution)
			}
			return f.appendUint(dst, uint64(int64(raw))&f.uintMax()), nil
		}
		if raw < 0 || raw > float64(f.uintMax()) {
			return dst, fmt.Errorf("%w: %v exceeds %d bytes unsigned at resolution %v", ErrOutOfRange, val, f.ByteSize, f.Resolution)
		}
		return f.appendUint(dst, uint64(raw)), nil

	case FieldTransitionTime:
		val, ok := asFloat64(v)
		if !ok {
			return dst, ErrBadParamType
		}
		if val < 0 {
			return dst, fmt.Errorf("%w: negative transition time %v", ErrOutOfRange, val)
		}
		for res, raster := range transitionRasters {
			steps := math.Round(val / raster)
			if steps <= 62 {
				return append(dst, byte(res)<<6|byte(steps)), nil
			}
		}
		return dst, fmt.Errorf("%w: transition time %v exceeds raster", ErrOutOfRange, val)
	}

	return dst, ErrBadParamType
}

func bitParam(p Params, bit Bit) (uint64, error) {
	if bit.Reserved {
		return 0, nil
	}
	v, ok := p[bit.Name]
	if !ok {
		return 0, ErrMissingParam
	}
	u, ok := asUint64(v)
	if !ok {
		return 0, ErrBadParamType
	}
	if bit.Enum != nil {
		if err := bit.Enum.check(u); err != nil {
			return 0, err
		}
	}
	return u, nil
}

func uint16ListParam(v any) ([]uint64, error) {
	switch list := v.(type) {
	case []uint64:
		return list, nil
	case []uint16:
		out := make([]uint64, len(list))
		for i, e := range list {
			out[i] = uint64(e)
		}
		return out, nil
	case []int:
		out := make([]uint64, len(list))
		for i, e := range list {
			if e < 0 {
				return nil, fmt.Errorf("%w: negative list element %d", ErrOutOfRange, e)
			}
			out[i] = uint64(e)
		}
		return out, nil
	case nil:
		return nil, ErrMissingParam
	default:
		return nil, ErrBadParamType
	}
}

func roundDigits(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
