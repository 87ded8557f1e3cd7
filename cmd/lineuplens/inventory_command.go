package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineuplens/internal/logging"
	"lineuplens/internal/report"
)

func newInventoryCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List every channel across lineups with presence flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.logger().With(logging.String(logging.FieldComponent, "inventory"))

			dir := dirFlag
			if dir == "" {
				dir = cfg.Paths.PublishDir
			}

			collection, err := loadCollection(cmd.Context(), cfg, dir)
			if err != nil {
				return err
			}

			inventory := report.Inventory(collection)

			reportDir, err := newReportDir(cfg.Paths.OutDir)
			if err != nil {
				return err
			}
			if err := writeReportCSV(reportDir, cfg.Paths.OutDir, "channels_inventory.csv", inventory); err != nil {
				return err
			}
			if err := writeReportFile(reportDir, cfg.Paths.OutDir, "channels_inventory.txt", []byte(report.RenderText(inventory))); err != nil {
				return err
			}
			log.Info("inventory written",
				logging.Int("channels", len(inventory.Rows)),
				logging.String("dir", reportDir))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderReportTable(inventory, 0))
			fmt.Fprintf(out, "Reports written to %s\n", reportDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory holding channel catalog files (defaults to the publish directory)")
	return cmd
}
