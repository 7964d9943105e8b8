package export

import "errors"

var (
	// ErrUnsupportedFormat is returned for an unknown serialization format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnknownProfile is returned by ParseProfile for an unknown profile name.
	ErrUnknownProfile = errors.New("unknown profile")
)
