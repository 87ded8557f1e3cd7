package report

import (
	"sort"
	"strconv"

	"lineuplens/internal/baseline"
	"lineuplens/internal/lineup"
	"lineuplens/internal/overlap"
)

// Table is one row-oriented report ready for serialization. Rows and columns
// preserve the caller-supplied lineup ordering; the writers never reorder.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Summary builds the per-lineup channel count table.
func Summary(c *lineup.Collection) Table {
	t := Table{Headers: []string{"lineup_id", "channel_count"}}
	for _, l := range c.Lineups() {
		t.Rows = append(t.Rows, []string{l.ID(), strconv.Itoa(l.Len())})
	}
	return t
}

// Counts builds the N×N intersection-count matrix table, lineup identifiers
// as both header row and leading column.
func Counts(res *overlap.Result) Table {
	ids := res.IDs()
	t := Table{Headers: append([]string{"lineup_id"}, ids...)}
	for i := range ids {
		row := make([]string, 0, len(ids)+1)
		row = append(row, ids[i])
		for j := range ids {
			row = append(row, strconv.Itoa(res.Count(i, j)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Similarity builds the N×N Jaccard matrix table. Scores are emitted as
// fixed-precision decimal text so the file is byte-stable across runs.
func Similarity(res *overlap.Result) Table {
	ids := res.IDs()
	t := Table{Headers: append([]string{"lineup_id"}, ids...)}
	for i := range ids {
		row := make([]string, 0, len(ids)+1)
		row = append(row, ids[i])
		for j := range ids {
			row = append(row, res.FormatScore(i, j))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Uniques builds the per-lineup unique channel table, preserving the
// resolver's presentation order.
func Uniques(set overlap.UniqueSet) Table {
	t := Table{Headers: []string{"channel_id", "display_name"}}
	for _, ch := range set.Channels {
		t.Rows = append(t.Rows, []string{ch.ID, ch.DisplayName})
	}
	return t
}

// GroupSummary builds the per-group membership table with the elected
// primary flagged.
func GroupSummary(groups []baseline.Group) Table {
	t := Table{Headers: []string{"group", "lineup_label", "lineup_id", "channel_count", "role"}}
	for _, g := range groups {
		for _, m := range g.Members {
			role := ""
			switch {
			case m.Primary:
				role = "PRIMARY(max channels)"
			case m.KeepAll:
				role = "BASE(keep all)"
			}
			t.Rows = append(t.Rows, []string{g.Name, m.Label, m.LineupID, strconv.Itoa(m.ChannelCount), role})
		}
	}
	return t
}

// Inventory builds the union table: one row per channel identifier across
// the whole collection, the best available display name, and a Y flag per
// lineup that carries the channel.
func Inventory(c *lineup.Collection) Table {
	lineups := c.Lineups()

	headers := []string{"channel_id", "display_name"}
	for _, l := range lineups {
		headers = append(headers, l.Label())
	}
	t := Table{Headers: headers}

	union := map[string]struct{}{}
	for _, l := range lineups {
		for id := range l.ChannelSet() {
			union[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(union))
	for id := range union {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		name := ""
		for _, l := range lineups {
			if n := l.DisplayName(id); n != "" {
				name = n
				break
			}
		}
		row := []string{id, name}
		for _, l := range lineups {
			if _, ok := l.Channel(id); ok {
				row = append(row, "Y")
			} else {
				row = append(row, "")
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
