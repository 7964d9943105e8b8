package vocabulary

import "errors"

var (
	// ErrInvalidRegistry is returned for inconsistent registry rows or palettes.
	ErrInvalidRegistry = errors.New("invalid registry")

	// ErrInvalidVocabulary is returned for term or connective characters that do
	// not fit the order they are assigned to.
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
)
