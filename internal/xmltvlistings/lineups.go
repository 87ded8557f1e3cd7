package xmltvlistings

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var lineupsBlockRE = regexp.MustCompile(`(?is)(<lineups\b[\s\S]*?</lineups>)`)

// Info is one lineup entry from the account's lineup list.
type Info struct {
	ID   string `json:"lineup_id"`
	Name string `json:"lineup_name"`
}

type lineupsDocument struct {
	XMLName xml.Name        `xml:"lineups"`
	Lineups []lineupElement `xml:"lineup"`
}

type lineupElement struct {
	ID   string `xml:"id,attr"`
	Name string `xml:",chardata"`
}

// ParseLineups decodes a <lineups> document into entries sorted by
// ascending numeric lineup identifier, non-numeric identifiers last.
func ParseLineups(payload string) ([]Info, error) {
	var doc lineupsDocument
	if err := xml.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("xmltvlistings: parse lineups: %w", err)
	}

	out := make([]Info, 0, len(doc.Lineups))
	for _, el := range doc.Lineups {
		id := strings.TrimSpace(el.ID)
		name := strings.TrimSpace(el.Name)
		if id == "" && name == "" {
			continue
		}
		out = append(out, Info{ID: id, Name: name})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lineupSortKey(out[i].ID) < lineupSortKey(out[j].ID)
	})
	return out, nil
}

func lineupSortKey(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 999999999
	}
	return n
}

// extractLineupsBlock returns the first well-formed <lineups> block inside
// body, tolerating junk after the document element.
func extractLineupsBlock(body string) string {
	m := lineupsBlockRE.FindString(body)
	return strings.TrimSpace(m)
}
