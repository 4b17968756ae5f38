package valfmt

import "errors"

// Sentinel errors for programmatic error handling. Every failure returned by
// this package wraps one of these, so callers can branch with [errors.Is].
var (
	// ErrTypeMismatch means an accessor or renderer was invoked on a Value
	// whose kind does not support the operation.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrMissingKey means a required object field was absent. Use [Value.Lookup]
	// when presence is not guaranteed.
	ErrMissingKey = errors.New("missing key")
	// ErrIndexOutOfRange means an array index was outside [0, length).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnsupportedType means the converter met a native Go value it has no
	// Value representation for.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrMalformedInput means the input text could not be decoded as JSON.
	ErrMalformedInput = errors.New("malformed input")
	// ErrIrregularGrid means a table row's cell count disagrees with the
	// first row's.
	ErrIrregularGrid = errors.New("irregular grid")
	// ErrUnsupportedFormat means an unknown format string.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
