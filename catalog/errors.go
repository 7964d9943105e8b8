package catalog

import "errors"

var (
	// ErrNoVocabulary is returned for a language no vocabulary is loaded for.
	ErrNoVocabulary = errors.New("no vocabulary for language")

	// ErrNoDirectory is returned by Watch when the catalog has no vocabulary directory.
	ErrNoDirectory = errors.New("catalog has no vocabulary directory")
)
