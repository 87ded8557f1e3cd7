package lineup

import "regexp"

// channelNumberRE matches display names that carry a broadcast channel
// number, e.g. "12" or "12.3".
var channelNumberRE = regexp.MustCompile(`^\d{1,4}(\.\d{1,3})?$`)

// Channel is one broadcastable entity within a single lineup's catalog.
// Channels are immutable once constructed and owned by the lineup that
// built them.
type Channel struct {
	id      string
	names   []string
	number  string
	iconURL string
	pageURL string
}

func newChannel(id string, names []string, iconURL, pageURL string) *Channel {
	distinct := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		// Exact-string dedup: case is preserved and not folded, so "ESPN"
		// and "espn" stay separate entries.
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}

	number := ""
	for _, name := range distinct {
		if channelNumberRE.MatchString(name) {
			number = name
			break
		}
	}

	return &Channel{
		id:      id,
		names:   distinct,
		number:  number,
		iconURL: iconURL,
		pageURL: pageURL,
	}
}

// ID returns the opaque channel identifier, the stable join key across
// lineups. Never empty inside the model.
func (c *Channel) ID() string { return c.id }

// DisplayNames returns the ordered distinct display names. The first
// non-empty name from the source record holds position 0.
func (c *Channel) DisplayNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// DisplayName returns the best available display name, or "" when the
// source record carried none.
func (c *Channel) DisplayName() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[0]
}

// Number returns the first display name that looks like a broadcast channel
// number, or "" when none matched.
func (c *Channel) Number() string { return c.number }

// IconURL returns the channel icon URL when the source carried one.
func (c *Channel) IconURL() string { return c.iconURL }

// PageURL returns the channel web page URL when the source carried one.
func (c *Channel) PageURL() string { return c.pageURL }
