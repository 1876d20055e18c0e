package access

import "errors"

var (
	// ErrInvalidOpcode indicates an opcode value outside the 1/2/3-octet
	// encodable ranges, or the reserved single-octet value 0x7F.
	ErrInvalidOpcode = errors.New("invalid opcode")

	// ErrTruncated indicates that a payload ended before a field could be
	// fully decoded.
	ErrTruncated = errors.New("truncated payload")

	// ErrTrailingBytes indicates that a payload contained bytes beyond the
	// last field of its schema.
	ErrTrailingBytes = errors.New("trailing bytes after last field")

	// ErrOutOfRange indicates an encode-time value outside the representable
	// range of its field.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownEnum indicates a value outside the declared symbol set of a
	// closed enumeration field.
	ErrUnknownEnum = errors.New("value not in enum symbol set")

	// ErrUnknownVariant indicates a discriminant value with no entry in the
	// switch field's variant table.
	ErrUnknownVariant = errors.New("no variant for discriminant value")

	// ErrMissingParam indicates that a required field has no value in the
	// parameter map.
	ErrMissingParam = errors.New("missing parameter")

	// ErrBadParamType indicates a parameter value whose Go type cannot be
	// converted to the field's wire representation.
	ErrBadParamType = errors.New("unsupported parameter type")

	// ErrPartialOptionalTail indicates that only some fields of an
	// all-or-none optional tail were supplied for encoding.
	ErrPartialOptionalTail = errors.New("partial optional tail")

	// ErrNoSchema indicates an encode request for an opcode without a
	// registered schema and without a raw payload fallback.
	ErrNoSchema = errors.New("no schema registered for opcode")

	// ErrDuplicateOpcode indicates an attempt to register an opcode or a
	// schema name twice.
	ErrDuplicateOpcode = errors.New("opcode or schema name already registered")

	// ErrUnknownName indicates an encode request using a symbolic schema name
	// that is not registered.
	ErrUnknownName = errors.New("unknown schema name")
)
