package xmltv_test

import (
	"reflect"
	"strings"
	"testing"

	"lineuplens/internal/xmltv"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<tv generator-info-name="xmltvlistings">
  <channel id="101">
    <display-name>12</display-name>
    <display-name>CBC   Toronto
	(CBLT)</display-name>
    <icon src="https://example.com/cblt.png"/>
    <url>https://example.com/cblt</url>
  </channel>
  <channel id="">
    <display-name>orphan</display-name>
  </channel>
  <channel id=" 102 ">
    <display-name>  </display-name>
    <display-name>TSN</display-name>
  </channel>
</tv>`

func TestParseChannels(t *testing.T) {
	records, err := xmltv.ParseChannels(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("ParseChannels returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records (blank ids pass through), got %d", len(records))
	}

	first := records[0]
	if first.ID != "101" {
		t.Fatalf("unexpected id %q", first.ID)
	}
	want := []string{"12", "CBC Toronto (CBLT)"}
	if !reflect.DeepEqual(first.DisplayNames, want) {
		t.Fatalf("display names = %v, want %v", first.DisplayNames, want)
	}
	if first.IconURL != "https://example.com/cblt.png" {
		t.Fatalf("icon url = %q", first.IconURL)
	}
	if first.PageURL != "https://example.com/cblt" {
		t.Fatalf("page url = %q", first.PageURL)
	}

	if records[1].ID != "" {
		t.Fatalf("blank id must pass through untouched, got %q", records[1].ID)
	}
	third := records[2]
	if third.ID != "102" {
		t.Fatalf("identifier not trimmed: %q", third.ID)
	}
	if !reflect.DeepEqual(third.DisplayNames, []string{"TSN"}) {
		t.Fatalf("blank display names must be dropped: %v", third.DisplayNames)
	}
}

func TestParseChannelsRejectsMalformedXML(t *testing.T) {
	if _, err := xmltv.ParseChannels(strings.NewReader("<tv><channel")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseChannelsEmptyDocument(t *testing.T) {
	records, err := xmltv.ParseChannels(strings.NewReader("<tv></tv>"))
	if err != nil {
		t.Fatalf("ParseChannels returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
