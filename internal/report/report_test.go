package report_test

import (
	"bytes"
	"strings"
	"testing"

	"lineuplens/internal/baseline"
	"lineuplens/internal/lineup"
	"lineuplens/internal/overlap"
	"lineuplens/internal/report"
)

func buildLineup(t *testing.T, id, label, group string, channels map[string]string) *lineup.Lineup {
	t.Helper()
	records := make([]lineup.Record, 0, len(channels))
	for cid, name := range channels {
		rec := lineup.Record{ID: cid}
		if name != "" {
			rec.DisplayNames = []string{name}
		}
		records = append(records, rec)
	}
	l, err := lineup.New(id, label, group, records)
	if err != nil {
		t.Fatalf("build lineup %q: %v", id, err)
	}
	return l
}

func testCollection(t *testing.T) *lineup.Collection {
	t.Helper()
	a := buildLineup(t, "a", "Alpha", "", map[string]string{"1": "CNN", "2": "ESPN", "3": "HBO"})
	b := buildLineup(t, "b", "Bravo", "", map[string]string{"2": "ESPN", "3": "HBO", "4": "FOX"})
	c, err := lineup.NewCollection(a, b)
	if err != nil {
		t.Fatalf("build collection: %v", err)
	}
	return c
}

func csvString(t *testing.T, table report.Table) string {
	t.Helper()
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}
	return buf.String()
}

func TestSummaryCSV(t *testing.T) {
	got := csvString(t, report.Summary(testCollection(t)))
	want := "lineup_id,channel_count\na,3\nb,3\n"
	if got != want {
		t.Fatalf("summary csv = %q, want %q", got, want)
	}
}

func TestCountsAndSimilarityTablesPreserveOrdering(t *testing.T) {
	c := testCollection(t)
	res, err := overlap.Compute(c, overlap.DefaultPrecision)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	counts := csvString(t, report.Counts(res))
	wantCounts := "lineup_id,a,b\na,3,2\nb,2,3\n"
	if counts != wantCounts {
		t.Fatalf("counts csv = %q, want %q", counts, wantCounts)
	}

	similarity := csvString(t, report.Similarity(res))
	wantSimilarity := "lineup_id,a,b\na,1.0000,0.5000\nb,0.5000,1.0000\n"
	if similarity != wantSimilarity {
		t.Fatalf("similarity csv = %q, want %q", similarity, wantSimilarity)
	}
}

func TestSimilarityOutputIdempotent(t *testing.T) {
	c := testCollection(t)
	res1, err := overlap.Compute(c, overlap.DefaultPrecision)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	res2, err := overlap.Compute(c, overlap.DefaultPrecision)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if csvString(t, report.Similarity(res1)) != csvString(t, report.Similarity(res2)) {
		t.Fatal("repeated runs must produce byte-identical similarity output")
	}
}

func TestUniquesTable(t *testing.T) {
	c := testCollection(t)
	sets := overlap.Uniques(c)

	got := csvString(t, report.Uniques(sets[0]))
	want := "channel_id,display_name\n1,CNN\n"
	if got != want {
		t.Fatalf("uniques csv = %q, want %q", got, want)
	}
}

func TestInventoryTable(t *testing.T) {
	c := testCollection(t)
	inv := report.Inventory(c)

	if want := []string{"channel_id", "display_name", "Alpha", "Bravo"}; strings.Join(inv.Headers, ",") != strings.Join(want, ",") {
		t.Fatalf("inventory headers = %v, want %v", inv.Headers, want)
	}
	if len(inv.Rows) != 4 {
		t.Fatalf("expected 4 union rows, got %d", len(inv.Rows))
	}
	// Channel 4 only exists in Bravo.
	last := inv.Rows[3]
	if last[0] != "4" || last[1] != "FOX" || last[2] != "" || last[3] != "Y" {
		t.Fatalf("unexpected inventory row: %v", last)
	}
	// Shared channel 2 is flagged in both.
	if inv.Rows[1][2] != "Y" || inv.Rows[1][3] != "Y" {
		t.Fatalf("shared channel flags wrong: %v", inv.Rows[1])
	}
}

func TestRenderTextAlignsColumns(t *testing.T) {
	out := report.RenderText(report.Summary(testCollection(t)))
	if !strings.Contains(out, "lineup_id") || !strings.Contains(out, "channel_count") {
		t.Fatalf("render missing headers: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("rendered table must end with a newline")
	}
}

func TestKeepRemoveText(t *testing.T) {
	primary := buildLineup(t, "10270", "Rogers", "CA", map[string]string{"1": "CBC", "2": "CTV", "3": "TSN"})
	member := buildLineup(t, "10269", "Telus", "CA", map[string]string{"2": "CTV", "4": "Telus Local"})
	col, err := lineup.NewCollection(primary, member)
	if err != nil {
		t.Fatalf("build collection: %v", err)
	}
	groups, err := baseline.Resolve(col, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	out := report.KeepRemoveText(groups)
	for _, want := range []string{
		"GROUP: CA",
		"PRIMARY (keep as-is): Rogers (10270)  channels=3",
		"LINEUP: Telus (10269)",
		"REMOVE (duplicates vs primary): 1",
		"\tCTV\t[2]",
		"KEEP (unique vs primary): 1",
		"\tTelus Local\t[4]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestKeepRemoveTextBaseOverrideRow(t *testing.T) {
	big := buildLineup(t, "9329", "DirecTV", "", map[string]string{"1": "", "2": "", "3": ""})
	pinned := buildLineup(t, "9330", "Spectrum", "", map[string]string{"2": "", "5": ""})
	col, err := lineup.NewCollection(big, pinned)
	if err != nil {
		t.Fatalf("build collection: %v", err)
	}
	groups, err := baseline.Resolve(col, "9330")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	out := report.KeepRemoveText(groups)
	if !strings.Contains(out, "KEEP (BASE LINEUP): ALL (2)") {
		t.Fatalf("missing base lineup row:\n%s", out)
	}
	if !strings.Contains(out, "REMOVE: NONE") {
		t.Fatalf("base lineup must remove nothing:\n%s", out)
	}
}

func TestGroupSummaryRoles(t *testing.T) {
	primary := buildLineup(t, "1", "Big", "", map[string]string{"a": "", "b": ""})
	other := buildLineup(t, "2", "Small", "", map[string]string{"a": ""})
	col, err := lineup.NewCollection(primary, other)
	if err != nil {
		t.Fatalf("build collection: %v", err)
	}
	groups, err := baseline.Resolve(col, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	got := csvString(t, report.GroupSummary(groups))
	want := "group,lineup_label,lineup_id,channel_count,role\nall,Big,1,2,PRIMARY(max channels)\nall,Small,2,1,\n"
	if got != want {
		t.Fatalf("group summary csv = %q, want %q", got, want)
	}
}
