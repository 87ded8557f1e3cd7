package baseline_test

import (
	"reflect"
	"testing"

	"lineuplens/internal/baseline"
	"lineuplens/internal/lineup"
)

func buildLineup(t *testing.T, id, group string, channels map[string]string) *lineup.Lineup {
	t.Helper()
	records := make([]lineup.Record, 0, len(channels))
	for cid, name := range channels {
		rec := lineup.Record{ID: cid}
		if name != "" {
			rec.DisplayNames = []string{name}
		}
		records = append(records, rec)
	}
	l, err := lineup.New(id, "", group, records)
	if err != nil {
		t.Fatalf("build lineup %q: %v", id, err)
	}
	return l
}

func buildCollection(t *testing.T, lineups ...*lineup.Lineup) *lineup.Collection {
	t.Helper()
	c, err := lineup.NewCollection(lineups...)
	if err != nil {
		t.Fatalf("build collection: %v", err)
	}
	return c
}

func entryIDs(entries []baseline.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestResolveSplitsAgainstMaxCountPrimary(t *testing.T) {
	big := buildLineup(t, "10270", "CA", map[string]string{"1": "CBC", "2": "CTV", "3": "TSN"})
	small := buildLineup(t, "10269", "CA", map[string]string{"2": "CTV", "4": "Telus Local"})
	col := buildCollection(t, big, small)

	groups, err := baseline.Resolve(col, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.Name != "CA" || g.PrimaryID != "10270" {
		t.Fatalf("unexpected group %q primary %q", g.Name, g.PrimaryID)
	}

	var primary, member baseline.Member
	for _, m := range g.Members {
		if m.Primary {
			primary = m
		} else {
			member = m
		}
	}
	if !primary.KeepAll || primary.Remove != nil || primary.Keep != nil {
		t.Fatalf("primary must be keep-all with no lists: %+v", primary)
	}
	if got := entryIDs(member.Remove); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("remove = %v, want [2]", got)
	}
	if got := entryIDs(member.Keep); !reflect.DeepEqual(got, []string{"4"}) {
		t.Fatalf("keep = %v, want [4]", got)
	}
}

func TestResolveKeepRemovePartitionMemberSet(t *testing.T) {
	a := buildLineup(t, "a", "", map[string]string{"1": "", "2": "", "3": "", "4": ""})
	b := buildLineup(t, "b", "", map[string]string{"2": "", "3": "", "9": ""})
	col := buildCollection(t, a, b)

	groups, err := baseline.Resolve(col, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	member := groups[0].Members[1]
	if member.Primary {
		t.Fatal("expected b to be the non-primary member")
	}

	seen := map[string]int{}
	for _, e := range member.Remove {
		seen[e.ID]++
	}
	for _, e := range member.Keep {
		seen[e.ID]++
	}
	for id := range b.ChannelSet() {
		if seen[id] != 1 {
			t.Fatalf("channel %s must appear exactly once across keep/remove, saw %d", id, seen[id])
		}
	}
	if len(seen) != b.Len() {
		t.Fatalf("keep ∪ remove covers %d channels, want %d", len(seen), b.Len())
	}
}

func TestResolveTieBreakFirstInOrder(t *testing.T) {
	first := buildLineup(t, "aaa", "", map[string]string{"1": "", "2": ""})
	second := buildLineup(t, "zzz", "", map[string]string{"3": "", "4": ""})
	col := buildCollection(t, first, second)

	for run := 0; run < 5; run++ {
		groups, err := baseline.Resolve(col, "")
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if groups[0].PrimaryID != "aaa" {
			t.Fatalf("run %d: tie must elect the first member, got %q", run, groups[0].PrimaryID)
		}
	}
}

func TestResolveSingleMemberGroup(t *testing.T) {
	only := buildLineup(t, "a", "", map[string]string{"1": "CNN", "2": "ESPN", "3": "HBO"})
	col := buildCollection(t, only)

	groups, err := baseline.Resolve(col, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	g := groups[0]
	if g.PrimaryID != "a" {
		t.Fatalf("primary = %q, want a", g.PrimaryID)
	}
	m := g.Members[0]
	if !m.Primary || !m.KeepAll {
		t.Fatalf("single member must be the keep-all primary: %+v", m)
	}
	if m.Remove != nil || m.Keep != nil {
		t.Fatalf("primary carries no remove/keep lists: %+v", m)
	}
}

func TestResolveGroupPartitioning(t *testing.T) {
	ca1 := buildLineup(t, "10270", "CA", map[string]string{"1": "", "2": ""})
	us1 := buildLineup(t, "10271", "US", map[string]string{"1": "", "2": "", "3": ""})
	ca2 := buildLineup(t, "10269", "CA", map[string]string{"2": ""})
	untagged := buildLineup(t, "9999", "", map[string]string{"7": ""})
	col := buildCollection(t, ca1, us1, ca2, untagged)

	groups, err := baseline.Resolve(col, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	// Group order follows first appearance; untagged lineups join the
	// default group.
	if !reflect.DeepEqual(names, []string{"CA", "US", baseline.DefaultGroup}) {
		t.Fatalf("group order = %v", names)
	}
	if groups[0].PrimaryID != "10270" || groups[1].PrimaryID != "10271" {
		t.Fatalf("unexpected primaries: %q, %q", groups[0].PrimaryID, groups[1].PrimaryID)
	}
}

func TestResolveBaseOverridePinsKeepAll(t *testing.T) {
	big := buildLineup(t, "9329", "", map[string]string{"1": "", "2": "", "3": ""})
	pinned := buildLineup(t, "9330", "", map[string]string{"2": "", "5": ""})
	other := buildLineup(t, "9331", "", map[string]string{"1": "", "6": ""})
	col := buildCollection(t, big, pinned, other)

	groups, err := baseline.Resolve(col, "9330")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	g := groups[0]
	// Max-count election is untouched for other members.
	if g.PrimaryID != "9329" {
		t.Fatalf("primary = %q, want 9329", g.PrimaryID)
	}

	byID := map[string]baseline.Member{}
	for _, m := range g.Members {
		byID[m.LineupID] = m
	}
	if m := byID["9330"]; !m.KeepAll || m.Primary || m.Remove != nil || m.Keep != nil {
		t.Fatalf("override row must be keep-all and not primary: %+v", m)
	}
	if m := byID["9331"]; m.KeepAll {
		t.Fatalf("override must not affect other members: %+v", m)
	}
	if got := entryIDs(byID["9331"].Remove); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("9331 remove = %v, want [1]", got)
	}
}

func TestResolveUnknownBaseOverrideFails(t *testing.T) {
	a := buildLineup(t, "a", "", map[string]string{"1": ""})
	col := buildCollection(t, a)

	if _, err := baseline.Resolve(col, "missing"); err == nil {
		t.Fatal("expected error for unknown base lineup")
	}
}

func TestResolveEntriesCarryNumberAndName(t *testing.T) {
	primary := buildLineup(t, "p", "", map[string]string{"x1": "", "x2": ""})
	memberLineup, err := lineup.New("m", "", "", []lineup.Record{
		{ID: "x1", DisplayNames: []string{"12", "CityNews"}},
	})
	if err != nil {
		t.Fatalf("build lineup: %v", err)
	}
	col := buildCollection(t, primary, memberLineup)

	groups, err := baseline.Resolve(col, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	member := groups[0].Members[1]
	if len(member.Remove) != 1 {
		t.Fatalf("expected one remove entry, got %v", member.Remove)
	}
	e := member.Remove[0]
	if e.Number != "12" || e.DisplayName != "12" {
		t.Fatalf("entry = %+v, want number 12 and first display name 12", e)
	}
}
