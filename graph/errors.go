package graph

import "errors"

var (
	// ErrNotFound is returned by queries for identifiers absent from the graph.
	ErrNotFound = errors.New("not found")

	// ErrSealed is returned when a sealed draft is modified or sealed again.
	ErrSealed = errors.New("graph already sealed")

	// ErrIncomplete is returned by Seal when an order is structurally incomplete.
	ErrIncomplete = errors.New("incomplete order")
)
