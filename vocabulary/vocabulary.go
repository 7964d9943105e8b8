package vocabulary

import (
	"fmt"
	"sort"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
)

// Vocabulary holds the term and connective characters of one language. A nil
// *Vocabulary is valid and has no characters.
type Vocabulary struct {
	Language    entry.Language
	Description string

	terms       map[int][]string
	connectives map[int]map[pair]string
}

// pair is an unordered position pair with a < b.
type pair struct{ a, b int }

func newPair(p, q int) pair {
	if q < p {
		p, q = q, p
	}
	return pair{a: p, b: q}
}

// New creates an empty vocabulary for language.
func New(language entry.Language) (*Vocabulary, error) {
	if !language.IsValid() {
		return nil, fmt.Errorf("%w: %q", entry.ErrUnknownLanguage, language)
	}
	return &Vocabulary{
		Language:    language,
		terms:       make(map[int][]string),
		connectives: make(map[int]map[pair]string),
	}, nil
}

// SetTerms assigns term characters to the positions of order n, position 1
// first. An empty string leaves that position without a term; positions past the
// end of values also stay empty.
func (v *Vocabulary) SetTerms(n int, values ...string) error {
	if err := identifier.ValidateOrder(n); err != nil {
		return err
	}
	if len(values) > n {
		return fmt.Errorf("%w: %d terms for order %d", ErrInvalidVocabulary, len(values), n)
	}
	for _, value := range values {
		if value == "" {
			continue
		}
		if err := identifier.ValidateCharacter(string(v.Language), value); err != nil {
			return fmt.Errorf("term %q of order %d: %w", value, n, err)
		}
	}
	v.terms[n] = append([]string(nil), values...)
	return nil
}

// SetConnective assigns the character of the connective between positions p and
// q of order n. The pair is unordered; assigning it twice is an error.
func (v *Vocabulary) SetConnective(n, p, q int, value string) error {
	a, err := identifier.NewLoc(n, p)
	if err != nil {
		return err
	}
	b, err := identifier.NewLoc(n, q)
	if err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: connective %s to itself", ErrInvalidVocabulary, a)
	}
	if value == "" {
		return fmt.Errorf("%w: empty connective between %s and %s", ErrInvalidVocabulary, a, b)
	}
	if err := identifier.ValidateCharacter(string(v.Language), value); err != nil {
		return fmt.Errorf("connective %q of order %d: %w", value, n, err)
	}
	if v.connectives[n] == nil {
		v.connectives[n] = make(map[pair]string)
	}
	key := newPair(p, q)
	if existing, dup := v.connectives[n][key]; dup {
		return fmt.Errorf("%w: %s already labels positions %d-%d of order %d", ErrInvalidVocabulary, existing, key.a, key.b, n)
	}
	v.connectives[n][key] = value
	return nil
}

// Term returns the term character at loc.
func (v *Vocabulary) Term(loc identifier.Loc) (string, bool) {
	if v == nil {
		return "", false
	}
	values := v.terms[loc.Order()]
	i := loc.Position() - 1
	if i < 0 || i >= len(values) || values[i] == "" {
		return "", false
	}
	return values[i], true
}

// Connective returns the character labelling the connective between a and b.
func (v *Vocabulary) Connective(a, b identifier.Loc) (string, bool) {
	if v == nil || a.Order() != b.Order() {
		return "", false
	}
	value, ok := v.connectives[a.Order()][newPair(a.Position(), b.Position())]
	return value, ok
}

// Orders returns the orders with at least one term or connective, ascending.
func (v *Vocabulary) Orders() []int {
	if v == nil {
		return nil
	}
	seen := make(map[int]bool)
	for n := range v.terms {
		seen[n] = true
	}
	for n := range v.connectives {
		seen[n] = true
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Terms returns the term characters of order n by position.
func (v *Vocabulary) Terms(n int) []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.terms[n]...)
}

// ConnectiveCount returns the number of labelled connectives of order n.
func (v *Vocabulary) ConnectiveCount(n int) int {
	if v == nil {
		return 0
	}
	return len(v.connectives[n])
}

// LanguageOrDefault returns the vocabulary's language, or Canonical for a nil
// vocabulary.
func (v *Vocabulary) LanguageOrDefault() entry.Language {
	if v == nil {
		return entry.Canonical
	}
	return v.Language
}
