// Package vocabulary holds the static configuration a systematics graph is built
// from: the order registry (names, coherence attributes, designations and the
// position palette) and per-language vocabularies of term and connective
// characters.
//
// Registries and vocabularies are plain values. They are assembled once, from Go
// code or YAML files, and treated as read-only after being handed to a builder.
package vocabulary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/systematics/identifier"
)

// OrderInfo is the registry row of one order. Empty designations are absent.
type OrderInfo struct {
	Order                 int    `yaml:"order" json:"order"`
	Name                  string `yaml:"name" json:"name"`
	Coherence             string `yaml:"coherence" json:"coherence"`
	TermDesignation       string `yaml:"term_designation,omitempty" json:"term_designation,omitempty"`
	ConnectiveDesignation string `yaml:"connective_designation,omitempty" json:"connective_designation,omitempty"`
}

// PaletteColour is the display colour of one position.
type PaletteColour struct {
	Hex  string `yaml:"hex" json:"hex"`
	Name string `yaml:"name" json:"name"`
}

// Registry maps orders to their metadata and positions to colours.
type Registry struct {
	orders  map[int]OrderInfo
	palette []PaletteColour
}

// NewRegistry validates rows and palette. Each order appears at most once, every
// row needs a name and coherence, and palette entry i colours position i+1.
func NewRegistry(rows []OrderInfo, palette []PaletteColour) (*Registry, error) {
	r := &Registry{orders: make(map[int]OrderInfo, len(rows))}
	for _, row := range rows {
		if err := identifier.ValidateOrder(row.Order); err != nil {
			return nil, fmt.Errorf("registry row: %w", err)
		}
		if _, dup := r.orders[row.Order]; dup {
			return nil, fmt.Errorf("%w: order %d listed twice", ErrInvalidRegistry, row.Order)
		}
		if row.Name == "" || row.Coherence == "" {
			return nil, fmt.Errorf("%w: order %d needs a name and coherence", ErrInvalidRegistry, row.Order)
		}
		r.orders[row.Order] = row
	}
	if len(palette) > identifier.MaxOrder {
		return nil, fmt.Errorf("%w: palette has %d colours, max %d", ErrInvalidRegistry, len(palette), identifier.MaxOrder)
	}
	for i, c := range palette {
		if !validHex(c.Hex) {
			return nil, fmt.Errorf("%w: palette colour %d has hex %q", ErrInvalidRegistry, i+1, c.Hex)
		}
	}
	r.palette = append([]PaletteColour(nil), palette...)
	return r, nil
}

// Order returns the registry row of order n.
func (r *Registry) Order(n int) (OrderInfo, bool) {
	row, ok := r.orders[n]
	return row, ok
}

// Orders returns the registered orders ascending.
func (r *Registry) Orders() []int {
	out := make([]int, 0, len(r.orders))
	for n := range r.orders {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Colour returns the palette colour of position p.
func (r *Registry) Colour(p int) (PaletteColour, bool) {
	if p < 1 || p > len(r.palette) {
		return PaletteColour{}, false
	}
	return r.palette[p-1], true
}

// Palette returns a copy of the palette.
func (r *Registry) Palette() []PaletteColour {
	return append([]PaletteColour(nil), r.palette...)
}

// SystemByName resolves an order from its system name, case-insensitively.
func (r *Registry) SystemByName(name string) (int, bool) {
	for n, row := range r.orders {
		if strings.EqualFold(row.Name, strings.TrimSpace(name)) {
			return n, true
		}
	}
	return 0, false
}

// Rows returns the registry rows ordered by order.
func (r *Registry) Rows() []OrderInfo {
	out := make([]OrderInfo, 0, len(r.orders))
	for _, n := range r.Orders() {
		out = append(out, r.orders[n])
	}
	return out
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
