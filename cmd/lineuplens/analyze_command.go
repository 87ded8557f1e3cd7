package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineuplens/internal/logging"
	"lineuplens/internal/overlap"
	"lineuplens/internal/report"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var precisionFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute overlap matrices and unique channels across lineups",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.logger().With(logging.String(logging.FieldComponent, "analyze"))

			dir := dirFlag
			if dir == "" {
				dir = cfg.Paths.PublishDir
			}
			precision := precisionFlag
			if precision == 0 {
				precision = cfg.Analysis.Precision
			}

			collection, err := loadCollection(cmd.Context(), cfg, dir)
			if err != nil {
				return err
			}
			log.Info("loaded lineups",
				logging.Int("lineups", collection.Len()),
				logging.String("dir", dir))

			result, err := overlap.Compute(collection, precision)
			if err != nil {
				return err
			}
			uniques := overlap.Uniques(collection)

			reportDir, err := newReportDir(cfg.Paths.OutDir)
			if err != nil {
				return err
			}

			if err := writeReportCSV(reportDir, cfg.Paths.OutDir, "channel_counts.csv", report.Summary(collection)); err != nil {
				return err
			}
			if err := writeReportCSV(reportDir, cfg.Paths.OutDir, "overlap_counts.csv", report.Counts(result)); err != nil {
				return err
			}
			if err := writeReportCSV(reportDir, cfg.Paths.OutDir, "overlap_similarity.csv", report.Similarity(result)); err != nil {
				return err
			}
			for _, set := range uniques {
				name := fmt.Sprintf("unique_channels_%s.csv", set.LineupID)
				if err := writeReportCSV(reportDir, cfg.Paths.OutDir, name, report.Uniques(set)); err != nil {
					return err
				}
			}
			log.Info("reports written", logging.String("dir", reportDir))

			if jsonFlag {
				return writeJSON(cmd, analyzeView(result, uniques, reportDir))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderReportTable(report.Summary(collection), 1))
			fmt.Fprintln(out, renderReportTable(report.Similarity(result), 1))
			for _, set := range uniques {
				fmt.Fprintf(out, "Unique to %s: %d channels\n", set.LineupID, len(set.Channels))
			}
			fmt.Fprintf(out, "Reports written to %s\n", reportDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory holding channel catalog files (defaults to the publish directory)")
	cmd.Flags().IntVarP(&precisionFlag, "precision", "p", 0, "Similarity decimal places, 2 to 6 (defaults to the configured value)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit results as JSON")
	return cmd
}
