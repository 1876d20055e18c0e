package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsGetters(t *testing.T) {
	p := Params{
		"u":      uint64(7),
		"i":      int64(-7),
		"f":      3.5,
		"b":      true,
		"raw":    []byte{1, 2},
		"nested": Params{"x": uint64(1)},
	}

	u, ok := p.Uint("u")
	assert.True(t, ok)
	assert.Equal(t, uint64(7), u)

	i, ok := p.Int("i")
	assert.True(t, ok)
	assert.Equal(t, int64(-7), i)

	f, ok := p.Float("f")
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)

	b, ok := p.Bool("b")
	assert.True(t, ok)
	assert.True(t, b)

	raw, ok := p.Bytes("raw")
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2}, raw)

	nested, ok := p.Nested("nested")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), nested["x"])

	_, ok = p.Uint("missing")
	assert.False(t, ok)

	_, ok = p.Uint("i") // negative does not convert
	assert.False(t, ok)
}

func TestParamsMatches(t *testing.T) {
	p := Params{
		"status":  uint64(0),
		"mode":    uint64(2),
		"level":   int64(-3),
		"flag":    true,
		"payload": Params{"subopcode": uint64(2), "temperature": 26.5},
	}

	tests := []struct {
		name string
		want Params
		ok   bool
	}{
		{"empty matches anything", Params{}, true},
		{"single numeric", Params{"status": 0}, true},
		{"mixed numeric types", Params{"mode": uint8(2), "level": -3}, true},
		{"bool against numeric one", Params{"flag": true}, true},
		{"nested partial", Params{"payload": Params{"subopcode": 2}}, true},
		{"nested full", Params{"payload": Params{"subopcode": 2, "temperature": 26.5}}, true},
		{"value mismatch", Params{"status": 1}, false},
		{"missing key", Params{"absent": 1}, false},
		{"nested mismatch", Params{"payload": Params{"subopcode": 3}}, false},
		{"nested against scalar", Params{"status": Params{"x": 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, p.Matches(tt.want))
		})
	}
}
