package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcodeSizeAndValid(t *testing.T) {
	tests := []struct {
		name  string
		op    Opcode
		size  int
		valid bool
	}{
		{"single octet zero", 0x00, 1, true},
		{"single octet max", 0x7E, 1, true},
		{"reserved 0x7F", 0x7F, 1, false},
		{"two octet min", 0x8000, 2, true},
		{"two octet", 0x8201, 2, true},
		{"two octet max", 0xBFFF, 2, true},
		{"gap below two octet range", 0x00FF, 2, false},
		{"gap above two octet range", 0xC000, 3, false},
		{"vendor min", 0xC00000, 3, true},
		{"vendor", 0xC00500, 3, true},
		{"vendor max", 0xFFFFFF, 3, true},
		{"beyond three octets", 0x1000000, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.op.Size())
			assert.Equal(t, tt.valid, tt.op.Valid())
		})
	}
}

func TestOpcodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		op   Opcode
		wire []byte
	}{
		{"one octet", 0x04, []byte{0x04}},
		{"two octets", 0x8201, []byte{0x82, 0x01}},
		{"vendor three octets", 0xC00500, []byte{0xC0, 0x05, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := AppendOpcode(nil, tt.op)
			require.NoError(t, err)
			require.Equal(t, tt.wire, buf)

			op, n, err := DecodeOpcode(buf)
			require.NoError(t, err)
			assert.Equal(t, tt.op, op)
			assert.Equal(t, len(tt.wire), n)
		})
	}
}

func TestDecodeOpcodeFaults(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"empty", nil, ErrTruncated},
		{"reserved first octet", []byte{0x7F}, ErrInvalidOpcode},
		{"short two octet", []byte{0x82}, ErrTruncated},
		{"short vendor", []byte{0xC0, 0x05}, ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeOpcode(tt.data)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestAppendOpcodeInvalid(t *testing.T) {
	_, err := AppendOpcode(nil, 0x7F)
	require.ErrorIs(t, err, ErrInvalidOpcode)

	_, err = AppendOpcode(nil, 0xC000)
	require.ErrorIs(t, err, ErrInvalidOpcode)
}

func TestOpcodeCompany(t *testing.T) {
	company, ok := Opcode(0xC00500).Company()
	require.True(t, ok)
	// The company id rides little-endian in the last two octets.
	assert.Equal(t, uint16(0x0005), company)

	_, ok = Opcode(0x8201).Company()
	assert.False(t, ok)
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "0x04", Opcode(0x04).String())
	assert.Equal(t, "0x8201", Opcode(0x8201).String())
	assert.Equal(t, "0xc00500", Opcode(0xC00500).String())
}
