package link

import "errors"

// ErrInvalidLink is returned when a link's fields disagree with its identifier.
var ErrInvalidLink = errors.New("invalid link")
