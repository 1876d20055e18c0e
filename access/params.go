package access

// Params holds message parameters keyed by field name. Decoding fills a
// Params map with concrete values (uint64, int64, float64, bool, Sentinel,
// []byte, []uint64 or a nested Params for switch payloads); encoding accepts
// any Go integer or float type and converts it to the field's wire form.
type Params map[string]any

// RawParams is the parameter key holding the undecoded payload when encoding
// a message whose opcode has no registered schema.
const RawParams = "params"

// Sentinel is a reserved raw value surfaced as its schema-declared symbol
// instead of a numeric value, e.g. a battery level of 0xFF decoding to
// Unknown rather than 255.
type Sentinel string

// Unknown is the conventional sentinel symbol for "value not known".
const Unknown Sentinel = "unknown"

// Uint returns the named parameter as an unsigned integer.
func (p Params) Uint(name string) (uint64, bool) {
	v, ok := p[name]
	if !ok {
		return 0, false
	}
	return asUint64(v)
}

// Int returns the named parameter as a signed integer.
func (p Params) Int(name string) (int64, bool) {
	v, ok := p[name]
	if !ok {
		return 0, false
	}
	return asInt64(v)
}

// Float returns the named parameter as a float64.
func (p Params) Float(name string) (float64, bool) {
	v, ok := p[name]
	if !ok {
		return 0, false
	}
	return asFloat64(v)
}

// Bool returns the named parameter as a boolean.
func (p Params) Bool(name string) (bool, bool) {
	b, ok := p[name].(bool)
	return b, ok
}

// Bytes returns the named parameter as a byte slice.
func (p Params) Bytes(name string) ([]byte, bool) {
	b, ok := p[name].([]byte)
	return b, ok
}

// Nested returns the named parameter as a nested Params map, as produced by a
// switch field.
func (p Params) Nested(name string) (Params, bool) {
	n, ok := p[name].(Params)
	return n, ok
}

// Matches reports whether every entry of want equals the corresponding entry
// of p. Numeric values are compared by value regardless of their Go type;
// nested Params are matched recursively. An empty or nil want matches any
// Params.
func (p Params) Matches(want Params) bool {
	for name, wv := range want {
		pv, ok := p[name]
		if !ok {
			return false
		}
		if sub, ok := wv.(Params); ok {
			nested, ok := pv.(Params)
			if !ok || !nested.Matches(sub) {
				return false
			}
			continue
		}
		if !valueEqual(pv, wv) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	if au, ok := asUint64(a); ok {
		if bu, ok := asUint64(b); ok {
			return au == bu
		}
	}
	if ai, ok := asInt64(a); ok {
		if bi, ok := asInt64(b); ok {
			return ai == bi
		}
	}
	if af, ok := asFloat64(a); ok {
		if bf, ok := asFloat64(b); ok {
			return af == bf
		}
	}
	return a == b
}

func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int8:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int16:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		if i, ok := asInt64(v); ok {
			return float64(i), true
		}
		if u, ok := asUint64(v); ok {
			return float64(u), true
		}
		return 0, false
	}
}
