package lineup

import (
	"fmt"
	"sort"
)

// Collection is an ordered, immutable set of lineups fed into one analysis
// run. The order fixes row and column order in every downstream matrix.
type Collection struct {
	lineups []*Lineup
	byID    map[string]*Lineup
}

// NewCollection builds a collection preserving the caller-supplied order.
// Duplicate lineup identifiers are a caller programming error and fail
// loudly.
func NewCollection(lineups ...*Lineup) (*Collection, error) {
	byID := make(map[string]*Lineup, len(lineups))
	ordered := make([]*Lineup, 0, len(lineups))
	for _, l := range lineups {
		if l == nil {
			return nil, fmt.Errorf("lineup: nil lineup in collection")
		}
		if _, ok := byID[l.ID()]; ok {
			return nil, fmt.Errorf("lineup: duplicate lineup id %q", l.ID())
		}
		byID[l.ID()] = l
		ordered = append(ordered, l)
	}
	return &Collection{lineups: ordered, byID: byID}, nil
}

// NewSortedCollection builds a collection in the canonical deterministic
// order: ascending numeric value for numeric identifiers, shorter-first
// lexicographic otherwise.
func NewSortedCollection(lineups ...*Lineup) (*Collection, error) {
	ordered := make([]*Lineup, len(lineups))
	copy(ordered, lineups)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i] == nil || ordered[j] == nil {
			return false
		}
		return LessID(ordered[i].ID(), ordered[j].ID())
	})
	return NewCollection(ordered...)
}

// LessID orders lineup identifiers the way numeric labels sort: shorter
// identifiers first, then lexicographic. For digit-only identifiers without
// leading zeros this equals ascending numeric order. Zero-padded
// identifiers compare as text, so "007" sorts after "12"; upstream lineup
// identifiers are not zero-padded.
func LessID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// Lineups returns the ordered lineups.
func (c *Collection) Lineups() []*Lineup {
	out := make([]*Lineup, len(c.lineups))
	copy(out, c.lineups)
	return out
}

// Len returns the number of lineups in the collection.
func (c *Collection) Len() int { return len(c.lineups) }

// ByID looks up a lineup by identifier.
func (c *Collection) ByID(id string) (*Lineup, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// IDs returns the lineup identifiers in collection order.
func (c *Collection) IDs() []string {
	out := make([]string, 0, len(c.lineups))
	for _, l := range c.lineups {
		out = append(out, l.ID())
	}
	return out
}
