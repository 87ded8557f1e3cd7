package baseline

import (
	"fmt"
	"sort"

	"lineuplens/internal/lineup"
)

// DefaultGroup names the implicit group holding every lineup when no
// partitioning is configured, and any lineup left without a group tag when
// partitioning is.
const DefaultGroup = "all"

// Entry is one channel reference inside a keep or remove list.
type Entry struct {
	ID          string
	Number      string
	DisplayName string
}

// Member is one lineup's keep/remove split against its group baseline.
// Baseline rows (the elected primary and any pinned base lineup) carry
// KeepAll and no lists: they are never candidates for removal.
type Member struct {
	LineupID     string
	Label        string
	ChannelCount int
	Primary      bool
	KeepAll      bool
	Remove       []Entry
	Keep         []Entry
}

// Group is the resolved baseline split for one comparison group.
type Group struct {
	Name      string
	PrimaryID string
	Members   []Member
}

// Resolve partitions the collection into comparison groups and, per group,
// elects the lineup with the strictly greatest channel count as the
// deduplication baseline. Ties elect the member appearing first in group
// iteration order; the election must be stable across runs because the
// keep/remove report depends on it.
//
// baseOverride, when non-empty, names a lineup whose own row is forced to
// keep-all/remove-none regardless of its size. The override does not change
// which primary the other members of its group are split against. A
// baseOverride that names no lineup in the collection is a caller
// programming error and fails loudly.
func Resolve(c *lineup.Collection, baseOverride string) ([]Group, error) {
	if c == nil {
		return nil, fmt.Errorf("baseline: nil collection")
	}
	if baseOverride != "" {
		if _, ok := c.ByID(baseOverride); !ok {
			return nil, fmt.Errorf("baseline: base lineup %q is not in the collection", baseOverride)
		}
	}

	groups := partition(c)

	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		primary := electPrimary(g.members)
		primarySet := primary.ChannelSet()

		resolved := Group{Name: g.name, PrimaryID: primary.ID()}
		for _, member := range g.members {
			m := Member{
				LineupID:     member.ID(),
				Label:        member.Label(),
				ChannelCount: member.Len(),
			}
			switch {
			case member == primary:
				m.Primary = true
				m.KeepAll = true
			case member.ID() == baseOverride:
				m.KeepAll = true
			default:
				m.Remove, m.Keep = split(member, primarySet)
			}
			resolved.Members = append(resolved.Members, m)
		}
		out = append(out, resolved)
	}
	return out, nil
}

type rawGroup struct {
	name    string
	members []*lineup.Lineup
}

// partition groups lineups by their group tag, keeping group order by first
// appearance and member order by collection order. When no lineup carries a
// tag the whole collection forms one default group.
func partition(c *lineup.Collection) []rawGroup {
	lineups := c.Lineups()

	tagged := false
	for _, l := range lineups {
		if l.Group() != "" {
			tagged = true
			break
		}
	}
	if !tagged {
		return []rawGroup{{name: DefaultGroup, members: lineups}}
	}

	index := make(map[string]int)
	var groups []rawGroup
	for _, l := range lineups {
		name := l.Group()
		if name == "" {
			name = DefaultGroup
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, rawGroup{name: name})
		}
		groups[i].members = append(groups[i].members, l)
	}
	return groups
}

// electPrimary picks the member with the greatest channel count, first in
// iteration order winning ties.
func electPrimary(members []*lineup.Lineup) *lineup.Lineup {
	primary := members[0]
	for _, candidate := range members[1:] {
		if candidate.Len() > primary.Len() {
			primary = candidate
		}
	}
	return primary
}

// split partitions a member's channels against the primary set: remove =
// duplicates of the baseline, keep = unique relative to it. Entries are
// ordered by ascending channel identifier for deterministic report lines.
func split(member *lineup.Lineup, primarySet map[string]struct{}) (remove, keep []Entry) {
	ids := make([]string, 0, member.Len())
	for id := range member.ChannelSet() {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := Entry{ID: id}
		if ch, ok := member.Channel(id); ok {
			entry.Number = ch.Number()
			entry.DisplayName = ch.DisplayName()
		}
		if _, dup := primarySet[id]; dup {
			remove = append(remove, entry)
		} else {
			keep = append(keep, entry)
		}
	}
	return remove, keep
}
