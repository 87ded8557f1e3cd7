package xmltv

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"lineuplens/internal/lineup"
	"lineuplens/internal/textutil"
)

type tvDocument struct {
	XMLName  xml.Name         `xml:"tv"`
	Channels []channelElement `xml:"channel"`
}

type channelElement struct {
	ID           string   `xml:"id,attr"`
	DisplayNames []string `xml:"display-name"`
	Icon         struct {
		Src string `xml:"src,attr"`
	} `xml:"icon"`
	URL string `xml:"url"`
}

// ParseChannels reads an XMLTV document (full listing or channels-only
// payload) and returns one record per <channel> element. Display names are
// whitespace-collapsed; identifiers are trimmed but otherwise passed
// through, so the lineup model decides what to discard.
func ParseChannels(r io.Reader) ([]lineup.Record, error) {
	var doc tvDocument
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("xmltv: parse document: %w", err)
	}

	records := make([]lineup.Record, 0, len(doc.Channels))
	for _, ch := range doc.Channels {
		names := make([]string, 0, len(ch.DisplayNames))
		for _, name := range ch.DisplayNames {
			if cleaned := textutil.CollapseWhitespace(name); cleaned != "" {
				names = append(names, cleaned)
			}
		}
		records = append(records, lineup.Record{
			ID:           strings.TrimSpace(ch.ID),
			DisplayNames: names,
			IconURL:      strings.TrimSpace(ch.Icon.Src),
			PageURL:      strings.TrimSpace(ch.URL),
		})
	}
	return records, nil
}

// ParseChannelsFile reads records from an XMLTV file on disk.
func ParseChannelsFile(path string) ([]lineup.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xmltv: open %s: %w", path, err)
	}
	defer file.Close()

	records, err := ParseChannels(file)
	if err != nil {
		return nil, fmt.Errorf("xmltv: %s: %w", path, err)
	}
	return records, nil
}
