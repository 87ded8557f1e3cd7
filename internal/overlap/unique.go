package overlap

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"lineuplens/internal/lineup"
)

// UniqueChannel is one channel present in exactly one lineup of the
// comparison scope, carrying its best available display name for reports.
type UniqueChannel struct {
	ID          string
	DisplayName string
}

// UniqueSet lists the channels unique to one lineup relative to every other
// lineup in the collection.
type UniqueSet struct {
	LineupID string
	Channels []UniqueChannel
}

// Uniques resolves, for every lineup, the channel identifiers absent from
// all peers. A single-lineup collection has no peers, so every channel is
// unique by definition. Results follow collection order; channels within a
// set are ordered by display name (case-insensitive), unnamed channels
// after named ones, raw identifier as the final tie-break.
func Uniques(c *lineup.Collection) []UniqueSet {
	lineups := c.Lineups()
	sets := make([]map[string]struct{}, len(lineups))
	for i, l := range lineups {
		sets[i] = l.ChannelSet()
	}

	collator := collate.New(language.Und, collate.IgnoreCase)

	out := make([]UniqueSet, 0, len(lineups))
	for i, l := range lineups {
		others := make(map[string]struct{})
		for j, set := range sets {
			if j == i {
				continue
			}
			for id := range set {
				others[id] = struct{}{}
			}
		}

		var channels []UniqueChannel
		for id := range sets[i] {
			if _, shared := others[id]; shared {
				continue
			}
			channels = append(channels, UniqueChannel{ID: id, DisplayName: l.DisplayName(id)})
		}

		sort.Slice(channels, func(a, b int) bool {
			na, nb := channels[a].DisplayName, channels[b].DisplayName
			if (na == "") != (nb == "") {
				return na != ""
			}
			if cmp := collator.CompareString(na, nb); cmp != 0 {
				return cmp < 0
			}
			return channels[a].ID < channels[b].ID
		})

		out = append(out, UniqueSet{LineupID: l.ID(), Channels: channels})
	}
	return out
}
