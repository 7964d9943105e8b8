package vocabulary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/systematics/entry"
)

// File is the YAML form of a vocabulary:
//
//	language: energy
//	description: Energy vocabulary
//	orders:
//	  - order: 3
//	    terms: [Affirming, Denying, Reconciling]
//	    connectives:
//	      - between: [1, 2]
//	        character: Tension
type File struct {
	Language    string      `yaml:"language"`
	Description string      `yaml:"description,omitempty"`
	Orders      []OrderFile `yaml:"orders"`
}

// OrderFile holds the characters of one order.
type OrderFile struct {
	Order       int              `yaml:"order"`
	Terms       []string         `yaml:"terms,omitempty"`
	Connectives []ConnectiveFile `yaml:"connectives,omitempty"`
}

// ConnectiveFile labels the connective between two positions.
type ConnectiveFile struct {
	Between   [2]int `yaml:"between"`
	Character string `yaml:"character"`
}

// RegistryFile is the YAML form of a registry.
type RegistryFile struct {
	Orders  []OrderInfo     `yaml:"orders"`
	Palette []PaletteColour `yaml:"palette"`
}

// Parse decodes a YAML vocabulary.
func Parse(data []byte) (*Vocabulary, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	return f.Vocabulary()
}

// Vocabulary validates the file and builds the vocabulary it describes.
func (f File) Vocabulary() (*Vocabulary, error) {
	language, err := entry.ParseLanguage(f.Language)
	if err != nil {
		return nil, err
	}
	v, err := New(language)
	if err != nil {
		return nil, err
	}
	v.Description = f.Description
	for _, o := range f.Orders {
		if len(o.Terms) > 0 {
			if err := v.SetTerms(o.Order, o.Terms...); err != nil {
				return nil, err
			}
		}
		for _, c := range o.Connectives {
			if err := v.SetConnective(o.Order, c.Between[0], c.Between[1], c.Character); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// ToFile converts a vocabulary back into its YAML form. Connectives are listed
// by position pair.
func (v *Vocabulary) ToFile() File {
	f := File{Language: string(v.Language), Description: v.Description}
	for _, n := range v.Orders() {
		o := OrderFile{Order: n, Terms: v.Terms(n)}
		pairs := make([]pair, 0, len(v.connectives[n]))
		for p := range v.connectives[n] {
			pairs = append(pairs, p)
		}
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].a != pairs[j].a {
				return pairs[i].a < pairs[j].a
			}
			return pairs[i].b < pairs[j].b
		})
		for _, p := range pairs {
			o.Connectives = append(o.Connectives, ConnectiveFile{
				Between:   [2]int{p.a, p.b},
				Character: v.connectives[n][p],
			})
		}
		f.Orders = append(f.Orders, o)
	}
	return f
}

// LoadFile reads a YAML vocabulary from path.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ParseRegistry decodes a YAML registry.
func ParseRegistry(data []byte) (*Registry, error) {
	var f RegistryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return NewRegistry(f.Orders, f.Palette)
}

// LoadRegistryFile reads a YAML registry from path.
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	r, err := ParseRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Discover expands a glob pattern (with ** support) to the matching files,
// sorted.
func Discover(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// DirPattern is the glob LoadDir uses below its directory.
const DirPattern = "**/*.{yaml,yml}"

// LoadDir loads every vocabulary file below dir, keyed by language. Two files
// for the same language are an error.
func LoadDir(dir string) (map[entry.Language]*Vocabulary, error) {
	paths, err := Discover(filepath.Join(dir, DirPattern))
	if err != nil {
		return nil, err
	}
	out := make(map[entry.Language]*Vocabulary, len(paths))
	sources := make(map[entry.Language]string, len(paths))
	for _, path := range paths {
		v, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := sources[v.Language]; dup {
			return nil, fmt.Errorf("%w: language %s defined in %s and %s", ErrInvalidVocabulary, v.Language, prev, path)
		}
		out[v.Language] = v
		sources[v.Language] = path
	}
	return out, nil
}
