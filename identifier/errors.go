package identifier

import "errors"

// Decode errors.
var (
	// ErrMalformedIdentifier is returned when a string does not match the grammar.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrInvalidStructure is returned when an identifier is well formed but names an
	// impossible structure (order or position out of range, self-loop, endpoints out
	// of canonical order).
	ErrInvalidStructure = errors.New("invalid structure")
)
