package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineuplens/internal/baseline"
	"lineuplens/internal/logging"
	"lineuplens/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var baseFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build per-group keep/remove lists against the primary lineup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.logger().With(logging.String(logging.FieldComponent, "report"))

			dir := dirFlag
			if dir == "" {
				dir = cfg.Paths.PublishDir
			}
			base := baseFlag
			if base == "" {
				base = cfg.Analysis.BaseLineup
			}

			collection, err := loadCollection(cmd.Context(), cfg, dir)
			if err != nil {
				return err
			}

			groups, err := baseline.Resolve(collection, base)
			if err != nil {
				return err
			}
			for _, group := range groups {
				log.Info("group resolved",
					logging.String(logging.FieldGroup, group.Name),
					logging.String("primary", group.PrimaryID),
					logging.Int("members", len(group.Members)))
			}

			reportDir, err := newReportDir(cfg.Paths.OutDir)
			if err != nil {
				return err
			}

			if err := writeReportCSV(reportDir, cfg.Paths.OutDir, "group_summary.csv", report.GroupSummary(groups)); err != nil {
				return err
			}
			text := report.KeepRemoveText(groups)
			if err := writeReportFile(reportDir, cfg.Paths.OutDir, "remove_lists.txt", []byte(text)); err != nil {
				return err
			}
			log.Info("keep/remove report written",
				logging.Int("groups", len(groups)),
				logging.String("dir", reportDir))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderReportTable(report.GroupSummary(groups), 0))
			for _, group := range groups {
				fmt.Fprintf(out, "Group %s: primary %s (%d members)\n",
					group.Name, group.PrimaryID, len(group.Members))
			}
			fmt.Fprintf(out, "Reports written to %s\n", reportDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory holding channel catalog files (defaults to the publish directory)")
	cmd.Flags().StringVar(&baseFlag, "base", "", "Lineup ID to pin as keep-all (defaults to the configured base lineup)")
	return cmd
}
