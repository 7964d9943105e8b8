package storage

import "errors"

// Store errors. They are only returned while a graph is being built.
var (
	// ErrDuplicate is returned when an identifier is inserted twice.
	ErrDuplicate = errors.New("duplicate identifier")

	// ErrDanglingReference is returned when a link endpoint or tag is missing from
	// the entry store or has the wrong kind.
	ErrDanglingReference = errors.New("dangling reference")
)
