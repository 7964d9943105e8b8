// Package query filters graph entries and links with boolean expressions.
//
// Expressions use the expr language over one flat environment:
//
//	kind == "term" && order == 3 && character startsWith "W"
//	kind == "connective" && tagged && base_position == 1
//
// Fields that do not apply to an element are zero values.
package query

import (
	"errors"
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
)

// ErrEmptyExpression is returned by Compile for a blank expression.
var ErrEmptyExpression = errors.New("expression must not be empty")

// Env is the environment an expression sees for one entry or link.
type Env struct {
	Kind     string `expr:"kind"`
	ID       string `expr:"id"`
	Order    int    `expr:"order"`
	Position int    `expr:"position"`
	Value    string `expr:"value"`
	Language string `expr:"language"`

	// Character is the character text of a term or character entry.
	Character string `expr:"character"`

	X      float64 `expr:"x"`
	Y      float64 `expr:"y"`
	Z      float64 `expr:"z"`
	Hex    string  `expr:"hex"`
	Colour string  `expr:"colour"`

	Base           string `expr:"base"`
	Target         string `expr:"target"`
	BasePosition   int    `expr:"base_position"`
	TargetPosition int    `expr:"target_position"`
	Tag            string `expr:"tag"`
	Tagged         bool   `expr:"tagged"`
}

// Filter is a compiled expression.
type Filter struct {
	expression string
	program    *exprvm.Program
}

// Compile checks expression against Env and requires a boolean result.
func Compile(expression string) (*Filter, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	program, err := exprlang.Compile(expression, exprlang.Env(Env{}), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return &Filter{expression: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expression }

// Match evaluates the filter against env.
func (f *Filter) Match(env Env) (bool, error) {
	out, err := exprlang.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", f.expression, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Entries returns the entries of g matching the filter, in insertion order.
func (f *Filter) Entries(g *graph.Graph) ([]entry.Entry, error) {
	var out []entry.Entry
	for _, e := range g.Entries() {
		ok, err := f.Match(EntryEnv(g, e))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Links returns the links of g matching the filter.
func (f *Filter) Links(g *graph.Graph) ([]link.Link, error) {
	var out []link.Link
	for _, l := range g.Links() {
		ok, err := f.Match(LinkEnv(g, l))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, l)
		}
	}
	return out, nil
}

// EntryEnv builds the environment of an entry in g.
func EntryEnv(g *graph.Graph, e entry.Entry) Env {
	env := Env{
		Kind:     string(e.Kind),
		ID:       string(e.ID),
		Value:    e.Value(),
		Language: string(g.Language()),
	}
	if n, ok := e.OrderOf(); ok {
		env.Order = n
	}

	switch e.Kind {
	case entry.KindPosition:
		env.Position = e.Position.Value
	case entry.KindLocation:
		env.Position = e.Location.Position
	case entry.KindTerm, entry.KindCoordinate, entry.KindColour:
		if ref, err := identifier.Parse(string(e.Anchor())); err == nil {
			env.Position = ref.Loc.Position()
		}
	}

	switch e.Kind {
	case entry.KindTerm:
		if c, ok := g.Character(e.Term.Character); ok {
			env.Character = c.Value
			env.Value = c.Value
		}
	case entry.KindCharacter:
		env.Character = e.Character.Value
		env.Language = string(e.Character.Language)
	case entry.KindCoordinate:
		env.X, env.Y, env.Z = e.Coordinate.Point.X, e.Coordinate.Point.Y, e.Coordinate.Point.Z
	case entry.KindColour:
		env.Hex = e.Colour.Hex
		env.Colour = e.Colour.Name
	}
	return env
}

// LinkEnv builds the environment of a link in g.
func LinkEnv(g *graph.Graph, l link.Link) Env {
	env := Env{
		Kind:     string(l.Kind),
		ID:       string(l.ID),
		Value:    string(l.ID),
		Language: string(g.Language()),
		Base:     string(l.Base),
		Target:   string(l.Target),
	}
	if base, target, err := l.Endpoints(); err == nil {
		env.Order = base.Order()
		env.BasePosition = base.Position()
		env.TargetPosition = target.Position()
	}
	if id, ok := l.Character(); ok {
		env.Tagged = true
		if c, ok := g.Character(id); ok {
			env.Tag = c.Value
			env.Character = c.Value
			env.Value = c.Value
		}
	}
	return env
}
