package entry

import (
	"fmt"
	"strings"
)

// Language names a semantic vocabulary. Characters belong to exactly one language.
type Language string

const (
	// Canonical is the standard vocabulary of the twelve systems.
	Canonical Language = "canonical"
	// Energy describes terms as affirming, denying and reconciling impulses.
	Energy Language = "energy"
	// Values is a values-based vocabulary.
	Values Language = "values"
	// Society is a social vocabulary.
	Society Language = "society"
)

// Languages returns every known vocabulary language.
func Languages() []Language {
	return []Language{Canonical, Energy, Values, Society}
}

// ParseLanguage resolves a language name case-insensitively.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return l, nil
}

// IsValid reports whether l is one of Languages().
func (l Language) IsValid() bool {
	switch l {
	case Canonical, Energy, Values, Society:
		return true
	}
	return false
}

// Title returns the display form, e.g. "Canonical".
func (l Language) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

func (l Language) String() string { return string(l) }
