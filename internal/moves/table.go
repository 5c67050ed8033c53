package moves

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/failures"
)

const component = "moves"

// Directive relocates one item from a source category to a destination.
type Directive struct {
	From string `json:"from"`
	To   string `json:"to"`
	Item string `json:"item"`
}

// Group is one [[move]] block: items that go from one category to another.
type Group struct {
	From  string   `toml:"from" json:"from"`
	To    string   `toml:"to" json:"to"`
	Items []string `toml:"items" json:"items"`
}

// Table is an ordered relocation ruleset.
type Table struct {
	Groups []Group `toml:"move" json:"groups"`
}

// Sources returns the distinct source categories in first-appearance order.
func (t Table) Sources() []string {
	seen := make(map[string]struct{}, len(t.Groups))
	var sources []string
	for _, g := range t.Groups {
		if _, ok := seen[g.From]; ok {
			continue
		}
		seen[g.From] = struct{}{}
		sources = append(sources, g.From)
	}
	return sources
}

// GroupsFrom returns the groups whose source is category, in table order.
func (t Table) GroupsFrom(category string) []Group {
	var out []Group
	for _, g := range t.Groups {
		if g.From == category {
			out = append(out, g)
		}
	}
	return out
}

// Directives flattens the table in application order: by source, then by
// destination, then by item.
func (t Table) Directives() []Directive {
	out := make([]Directive, 0, t.Count())
	for _, source := range t.Sources() {
		for _, g := range t.GroupsFrom(source) {
			for _, item := range g.Items {
				out = append(out, Directive{From: g.From, To: g.To, Item: item})
			}
		}
	}
	return out
}

// Count returns the number of directives.
func (t Table) Count() int {
	n := 0
	for _, g := range t.Groups {
		n += len(g.Items)
	}
	return n
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	groups := make([]Group, len(t.Groups))
	for i, g := range t.Groups {
		groups[i] = Group{From: g.From, To: g.To, Items: slices.Clone(g.Items)}
	}
	return Table{Groups: groups}
}

// Validate rejects tables that cannot be applied unambiguously: blank
// category names, a group that moves a category onto itself, and an item
// listed more than once for the same source category (including under two
// different destinations).
func (t Table) Validate() error {
	type key struct{ from, item string }
	firstDest := make(map[key]string)

	for i, g := range t.Groups {
		if strings.TrimSpace(g.From) == "" {
			return failures.Wrap(failures.ErrValidation, component, "validate", fmt.Sprintf("move #%d: from must be set", i+1), nil)
		}
		if strings.TrimSpace(g.To) == "" {
			return failures.Wrap(failures.ErrValidation, component, "validate", fmt.Sprintf("move #%d: to must be set", i+1), nil)
		}
		if g.From == g.To {
			return failures.Wrap(failures.ErrValidation, component, "validate", fmt.Sprintf("move #%d: from and to are both %q", i+1, g.From), nil)
		}
		for _, item := range g.Items {
			k := key{from: g.From, item: item}
			if prev, ok := firstDest[k]; ok {
				return failures.Wrap(failures.ErrValidation, component, "validate",
					fmt.Sprintf("item %q from %q is listed for both %q and %q", item, g.From, prev, g.To), nil)
			}
			firstDest[k] = g.To
		}
	}
	return nil
}
