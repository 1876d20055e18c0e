package access

import "fmt"

// Opcode identifies a message type. It holds the big-endian concatenation of
// the 1, 2 or 3 wire octets, e.g. 0x8201 for the two octets 0x82 0x01 and
// 0xC00500 for the vendor opcode 0xC0 0x05 0x00.
//
// The wire width is selected by the high bits of the first octet:
//
//	0xxxxxxx            1 octet  (0x7F is reserved and invalid)
//	10xxxxxx            2 octets
//	11xxxxxx            3 octets (vendor; last two octets carry the company id)
type Opcode uint32

// Size returns the wire width of the opcode in octets.
func (op Opcode) Size() int {
	switch {
	case op <= 0x7F:
		return 1
	case op <= 0xBFFF:
		return 2
	default:
		return 3
	}
}

// Valid reports whether the opcode value falls inside one of the three
// encodable ranges.
func (op Opcode) Valid() bool {
	switch {
	case op < 0x7F:
		return true
	case op >= 0x8000 && op <= 0xBFFF:
		return true
	case op >= 0xC00000 && op <= 0xFFFFFF:
		return true
	default:
		return false
	}
}

// IsVendor reports whether the opcode is a 3-octet vendor opcode.
func (op Opcode) IsVendor() bool {
	return op >= 0xC00000 && op <= 0xFFFFFF
}

// Company returns the 16-bit company identifier embedded in a vendor opcode.
// The identifier occupies the last two octets in little-endian order.
// It returns false for non-vendor opcodes.
func (op Opcode) Company() (uint16, bool) {
	if !op.IsVendor() {
		return 0, false
	}
	return uint16(byte(op))<<8 | uint16(byte(op>>8)), true
}

// String implements fmt.Stringer.
func (op Opcode) String() string {
	return fmt.Sprintf("%#0*x", op.Size()*2, uint32(op))
}

func (op Opcode) appendTo(dst []byte) []byte {
	switch op.Size() {
	case 1:
		return append(dst, byte(op))
	case 2:
		return append(dst, byte(op>>8), byte(op))
	default:
		return append(dst, byte(op>>16), byte(op>>8), byte(op))
	}
}

// AppendOpcode appends the wire form of op to dst and returns the extended
// slice. It returns ErrInvalidOpcode when op is outside the encodable ranges.
func AppendOpcode(dst []byte, op Opcode) ([]byte, error) {
	if !op.Valid() {
		return dst, fmt.Errorf("opcode %#x: %w", uint32(op), ErrInvalidOpcode)
	}
	return op.appendTo(dst), nil
}

// DecodeOpcode reads an opcode from the start of data using the 1/2/3-octet
// width rule. It returns the opcode and the number of octets consumed.
func DecodeOpcode(data []byte) (Opcode, int, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("opcode: %w", ErrTruncated)
	}
	b := data[0]
	switch {
	case b < 0x80:
		if b == 0x7F {
			return 0, 0, fmt.Errorf("opcode %#x: %w", b, ErrInvalidOpcode)
		}
		return Opcode(b), 1, nil
	case b < 0xC0:
		if len(data) < 2 {
			return 0, 0, fmt.Errorf("opcode: %w", ErrTruncated)
		}
		return Opcode(b)<<8 | Opcode(data[1]), 2, nil
	default:
		if len(data) < 3 {
			return 0, 0, fmt.Errorf("opcode: %w", ErrTruncated)
		}
		return Opcode(b)<<16 | Opcode(data[1])<<8 | Opcode(data[2]), 3, nil
	}
}
