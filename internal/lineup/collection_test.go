package lineup_test

import (
	"reflect"
	"testing"

	"lineuplens/internal/lineup"
)

func mustLineup(t *testing.T, id string) *lineup.Lineup {
	t.Helper()
	l, err := lineup.New(id, "", "", nil)
	if err != nil {
		t.Fatalf("build lineup %q: %v", id, err)
	}
	return l
}

func TestNewCollectionRejectsDuplicateIDs(t *testing.T) {
	a := mustLineup(t, "9329")
	b := mustLineup(t, "9329")
	if _, err := lineup.NewCollection(a, b); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewCollectionPreservesOrder(t *testing.T) {
	c, err := lineup.NewCollection(mustLineup(t, "b"), mustLineup(t, "a"))
	if err != nil {
		t.Fatalf("NewCollection returned error: %v", err)
	}
	if got := c.IDs(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestNewSortedCollectionNumericAwareOrder(t *testing.T) {
	c, err := lineup.NewSortedCollection(
		mustLineup(t, "10270"),
		mustLineup(t, "9329"),
		mustLineup(t, "9331"),
		mustLineup(t, "9330"),
	)
	if err != nil {
		t.Fatalf("NewSortedCollection returned error: %v", err)
	}
	want := []string{"9329", "9330", "9331", "10270"}
	if got := c.IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("sorted ids = %v, want %v", got, want)
	}
}

func TestLessIDShorterFirst(t *testing.T) {
	if !lineup.LessID("99", "100") {
		t.Fatal("expected 99 < 100")
	}
	if lineup.LessID("abc", "ab") {
		t.Fatal("expected ab < abc")
	}
	if !lineup.LessID("abc", "abd") {
		t.Fatal("expected abc < abd at equal length")
	}
}

func TestLessIDZeroPaddedComparesAsText(t *testing.T) {
	// Length wins before digits are compared, so a zero-padded identifier
	// does not sort by its numeric value.
	if lineup.LessID("007", "12") {
		t.Fatal(`expected "12" before "007"`)
	}
	if !lineup.LessID("12", "007") {
		t.Fatal(`expected "12" < "007"`)
	}
}
