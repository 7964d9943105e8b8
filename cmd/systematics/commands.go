package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
	"github.com/c360studio/systematics/query"
)

func buildCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "build [orders...]",
		Example: "  systematics build 3 4\n  systematics build triad tetrad",
		Short:   "Build a graph and print its statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.parseOrders(args)
			if err != nil {
				return err
			}
			g, err := a.graph(cmd.Context(), orders)
			if err != nil {
				return err
			}

			stats := g.Stats()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, stats)
			}

			title(out, "%s: orders %v", g.Language(), g.Orders())
			t := newTable("KIND", "COUNT")
			for _, kind := range entry.Kinds() {
				if n := stats.ByKind[kind]; n > 0 {
					t.add(string(kind), fmt.Sprint(n))
				}
			}
			t.add(string(link.KindLine), fmt.Sprint(stats.Lines))
			t.add(string(link.KindConnective), fmt.Sprintf("%d %s", stats.Connectives, muted(fmt.Sprintf("(%d tagged)", stats.Tagged))))
			t.render(out)
			fmt.Fprintf(out, "%d entries, %d links\n", stats.Entries, stats.Links)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print statistics as JSON")
	return cmd
}

func summaryCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary [orders...]",
		Short: "Print the names, coherences and designations of each order",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.parseOrders(args)
			if err != nil {
				return err
			}
			g, err := a.graph(cmd.Context(), orders)
			if err != nil {
				return err
			}

			summaries := make([]graph.Summary, 0, len(g.Orders()))
			for _, n := range g.Orders() {
				s, err := g.OrderSummary(n)
				if err != nil {
					return err
				}
				summaries = append(summaries, s)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, summaries)
			}
			t := newTable("ORDER", "NAME", "COHERENCE", "TERMS", "CONNECTIVES")
			for _, s := range summaries {
				t.add(fmt.Sprint(s.Order), orNone(s.Name), orNone(s.Coherence),
					orNone(s.TermDesignation), orNone(s.ConnectiveDesignation))
			}
			t.render(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print summaries as JSON")
	return cmd
}

func connectivesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connectives <order> [position] [position]",
		Short: "List the connectives of an order, optionally between positions",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := a.orderAndPositions(args)
			if err != nil {
				return err
			}
			nums = append(nums, 0, 0)
			n, p, q := nums[0], nums[1], nums[2]

			g, err := a.graph(cmd.Context(), []int{n})
			if err != nil {
				return err
			}

			t := newTable("BASE", "TARGET", "CHARACTER")
			for _, l := range g.Connectives(n, p, q) {
				character := none
				if tag, ok := l.Character(); ok {
					if c, ok := g.Character(tag); ok {
						character = c.Value
					}
				}
				t.add(termOrID(g, l.Base), termOrID(g, l.Target), character)
			}
			t.render(cmd.OutOrStdout())
			return nil
		},
	}
}

// orderAndPositions parses an order (number or system name) followed by
// position numbers.
func (a *app) orderAndPositions(args []string) ([]int, error) {
	order, err := a.parseOrders(args[:1])
	if err != nil {
		return nil, err
	}
	positions, err := parseInts(args[1:])
	if err != nil {
		return nil, err
	}
	return append(order, positions...), nil
}

// termOrID labels a location with its term character when it has one.
func termOrID(g *graph.Graph, location identifier.ID) string {
	if c, ok := g.TermCharacterAt(location); ok {
		return fmt.Sprintf("%s %s", location, muted("("+c.Value+")"))
	}
	return string(location)
}

func sliceCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "slice <order> <position>",
		Short: "Show everything anchored at one location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := a.orderAndPositions(args)
			if err != nil {
				return err
			}
			loc, err := identifier.NewLoc(nums[0], nums[1])
			if err != nil {
				return err
			}
			g, err := a.graph(cmd.Context(), []int{loc.Order()})
			if err != nil {
				return err
			}
			s, err := g.Slice(loc.ID())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, s)
			}

			title(out, "%s", loc.ID())
			if s.Character != nil {
				fmt.Fprintf(out, "term:        %s\n", s.Character.Value)
			}
			p := s.Coordinate.Point
			fmt.Fprintf(out, "coordinate:  (%.4f, %.4f, %.4f)\n", p.X, p.Y, p.Z)
			if s.Colour != nil {
				fmt.Fprintf(out, "colour:      %s %s %s\n", swatch(s.Colour.Hex), s.Colour.Name, muted(s.Colour.Hex))
			}
			fmt.Fprintf(out, "connectives: %d\n", len(s.Connectives))
			for _, l := range s.Connectives {
				character := none
				if tag, ok := l.Character(); ok {
					if c, ok := g.Character(tag); ok {
						character = c.Value
					}
				}
				fmt.Fprintf(out, "  %s  %s\n", termOrID(g, l.Other(loc.ID())), muted(character))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the slice as JSON")
	return cmd
}

func queryCmd(a *app) *cobra.Command {
	var (
		links  bool
		orders []int
	)

	cmd := &cobra.Command{
		Use:   "query <expression>",
		Short: "List entries or links matching an expression",
		Long: `Evaluate a boolean expression against every entry (or link with --links).

Entry fields: kind, id, order, position, value, language, character,
x, y, z, hex, colour. Link fields: kind, id, order, base, target,
base_position, target_position, tag, tagged, character.

Examples:
  systematics query 'kind == "term" && order == 3'
  systematics query --links 'tagged && order == 4'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := query.Compile(args[0])
			if err != nil {
				return err
			}
			g, err := a.graph(cmd.Context(), orders)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if links {
				matched, err := filter.Links(g)
				if err != nil {
					return err
				}
				t := newTable("ID", "KIND", "TAG")
				for _, l := range matched {
					tag := none
					if c, ok := l.Character(); ok {
						tag = string(c)
					}
					t.add(string(l.ID), string(l.Kind), tag)
				}
				t.render(out)
				return nil
			}

			matched, err := filter.Entries(g)
			if err != nil {
				return err
			}
			sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
			t := newTable("ID", "KIND", "VALUE")
			for _, e := range matched {
				t.add(string(e.ID), string(e.Kind), e.Value())
			}
			t.render(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&links, "links", false, "Match links instead of entries")
	cmd.Flags().IntSliceVar(&orders, "orders", nil, "Build only these orders")
	return cmd
}
