package entry

import "errors"

var (
	// ErrUnknownLanguage is returned for a language outside Languages().
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrEmptyValue is returned when a label or character has no value.
	ErrEmptyValue = errors.New("empty value")

	// ErrInvalidEntry is returned when an entry's payload does not match its kind
	// or its identifier.
	ErrInvalidEntry = errors.New("invalid entry")
)
