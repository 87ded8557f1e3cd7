package main

import (
	"lineuplens/internal/overlap"
	"lineuplens/internal/report"
)

type uniqueChannelView struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
}

type uniqueSetView struct {
	LineupID string              `json:"lineup_id"`
	Channels []uniqueChannelView `json:"channels"`
}

type analyzeResultView struct {
	Lineups    []string        `json:"lineups"`
	Precision  int             `json:"precision"`
	Counts     [][]int         `json:"overlap_counts"`
	Similarity [][]string      `json:"similarity"`
	Uniques    []uniqueSetView `json:"unique_channels"`
	ReportDir  string          `json:"report_dir"`
}

func analyzeView(result *overlap.Result, uniques []overlap.UniqueSet, reportDir string) analyzeResultView {
	n := result.Len()
	counts := make([][]int, n)
	similarity := make([][]string, n)
	for i := 0; i < n; i++ {
		counts[i] = make([]int, n)
		similarity[i] = make([]string, n)
		for j := 0; j < n; j++ {
			counts[i][j] = result.Count(i, j)
			similarity[i][j] = result.FormatScore(i, j)
		}
	}

	sets := make([]uniqueSetView, 0, len(uniques))
	for _, set := range uniques {
		channels := make([]uniqueChannelView, 0, len(set.Channels))
		for _, ch := range set.Channels {
			channels = append(channels, uniqueChannelView{ID: ch.ID, DisplayName: ch.DisplayName})
		}
		sets = append(sets, uniqueSetView{LineupID: set.LineupID, Channels: channels})
	}

	return analyzeResultView{
		Lineups:    result.IDs(),
		Precision:  result.Precision(),
		Counts:     counts,
		Similarity: similarity,
		Uniques:    sets,
		ReportDir:  reportDir,
	}
}

// renderReportTable renders an assembled report table through the CLI table
// helper. Columns from rightAlignFrom onward are right aligned; pass 0 to
// left align everything.
func renderReportTable(t report.Table, rightAlignFrom int) string {
	aligns := make([]columnAlignment, len(t.Headers))
	for i := range aligns {
		if i >= rightAlignFrom && rightAlignFrom > 0 {
			aligns[i] = alignRight
		}
	}
	return renderTable(t.Headers, t.Rows, aligns)
}
