package kvstore

import "errors"

var (
	// ErrNotFound is returned when a snapshot does not exist.
	ErrNotFound = errors.New("snapshot not found")

	// ErrInvalidSnapshotID is returned for identifiers that are not UUIDs.
	ErrInvalidSnapshotID = errors.New("invalid snapshot ID")
)
