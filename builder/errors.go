package builder

import "errors"

// ErrUnknownOrder is returned when the registry has no row for a requested order.
var ErrUnknownOrder = errors.New("order not in registry")
