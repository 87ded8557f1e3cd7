package report

import (
	"fmt"
	"strings"

	"lineuplens/internal/baseline"
)

// KeepRemoveText renders the keep/remove decision report for every
// comparison group. The line format (number, name, bracketed identifier,
// tab-separated) is what the manual review workflow expects to paste from.
func KeepRemoveText(groups []baseline.Group) string {
	var b strings.Builder

	for _, g := range groups {
		var primary baseline.Member
		for _, m := range g.Members {
			if m.Primary {
				primary = m
			}
		}

		fmt.Fprintf(&b, "GROUP: %s\n", g.Name)
		fmt.Fprintf(&b, "PRIMARY (keep as-is): %s (%s)  channels=%d\n\n", primary.Label, primary.LineupID, primary.ChannelCount)

		for _, m := range g.Members {
			if m.Primary {
				continue
			}

			fmt.Fprintf(&b, "LINEUP: %s (%s)\n", m.Label, m.LineupID)
			if m.KeepAll {
				fmt.Fprintf(&b, "KEEP (BASE LINEUP): ALL (%d)\n", m.ChannelCount)
				b.WriteString("REMOVE: NONE\n\n")
				b.WriteString(strings.Repeat("-", 72) + "\n\n")
				continue
			}

			fmt.Fprintf(&b, "REMOVE (duplicates vs primary): %d\n", len(m.Remove))
			writeEntries(&b, m.Remove)
			b.WriteString("\n")
			fmt.Fprintf(&b, "KEEP (unique vs primary): %d\n", len(m.Keep))
			writeEntries(&b, m.Keep)
			b.WriteString("\n")
			b.WriteString(strings.Repeat("-", 72) + "\n\n")
		}

		b.WriteString(strings.Repeat("=", 72) + "\n\n")
	}

	return b.String()
}

func writeEntries(b *strings.Builder, entries []baseline.Entry) {
	if len(entries) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(b, "  %s\t%s\t[%s]\n", e.Number, e.DisplayName, e.ID)
	}
}
