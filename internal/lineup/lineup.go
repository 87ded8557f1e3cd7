package lineup

import (
	"errors"
	"strings"
)

// Record is the loader-facing shape of one raw channel entry. Records with a
// blank identifier (after trimming) are discarded during lineup
// construction; upstream catalogs are known to contain them.
type Record struct {
	ID           string
	DisplayNames []string
	IconURL      string
	PageURL      string
}

// Lineup is one provider/market channel catalog. Construction is the only
// mutation point; every accessor afterwards works on an immutable snapshot.
type Lineup struct {
	id       string
	label    string
	group    string
	channels map[string]*Channel
}

// New builds a lineup from raw loader records. Blank channel identifiers are
// dropped silently. A lineup with zero channels is valid and produces
// empty-set results downstream. When the same channel identifier occurs
// twice the later record wins, matching upstream catalog behavior.
func New(id, label, group string, records []Record) (*Lineup, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("lineup: identifier must not be empty")
	}

	channels := make(map[string]*Channel, len(records))
	for _, rec := range records {
		cid := strings.TrimSpace(rec.ID)
		if cid == "" {
			continue
		}
		channels[cid] = newChannel(cid, rec.DisplayNames, rec.IconURL, rec.PageURL)
	}

	return &Lineup{
		id:       id,
		label:    strings.TrimSpace(label),
		group:    strings.TrimSpace(group),
		channels: channels,
	}, nil
}

// ID returns the lineup identifier. Conventionally numeric, compared as
// opaque text.
func (l *Lineup) ID() string { return l.id }

// Label returns the configured human label, falling back to the identifier.
func (l *Lineup) Label() string {
	if l.label == "" {
		return l.id
	}
	return l.label
}

// Group returns the comparison group tag, or "" when ungrouped.
func (l *Lineup) Group() string { return l.group }

// Len returns the number of channels in the catalog.
func (l *Lineup) Len() int { return len(l.channels) }

// Channel looks up a channel by identifier.
func (l *Lineup) Channel(id string) (*Channel, bool) {
	ch, ok := l.channels[id]
	return ch, ok
}

// DisplayName returns the best display name for a channel identifier, or ""
// when the channel is absent or unnamed.
func (l *Lineup) DisplayName(id string) string {
	if ch, ok := l.channels[id]; ok {
		return ch.DisplayName()
	}
	return ""
}

// ChannelSet returns the set of channel identifiers. The set is derived
// fresh on every call rather than cached; membership queries must never see
// a stale snapshot.
func (l *Lineup) ChannelSet() map[string]struct{} {
	set := make(map[string]struct{}, len(l.channels))
	for id := range l.channels {
		set[id] = struct{}{}
	}
	return set
}
