package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lineuplens/internal/xmltvlistings"
)

type lineupView struct {
	ID        string `json:"id"`
	Label     string `json:"label,omitempty"`
	Group     string `json:"group,omitempty"`
	Name      string `json:"name,omitempty"`
	Published bool   `json:"published"`
}

func newLineupsCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "lineups",
		Short: "Show configured lineups and their published catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			names, err := publishedLineupNames(cfg.Paths.PublishDir)
			if err != nil {
				return err
			}

			views := make([]lineupView, 0, len(cfg.Lineups))
			for _, ref := range cfg.Lineups {
				published := true
				if _, err := os.Stat(filepath.Join(cfg.Paths.PublishDir, publishedChannelsName(ref.ID, ref.Label))); err != nil {
					if !errors.Is(err, fs.ErrNotExist) {
						return fmt.Errorf("inspect published catalog for %s: %w", ref.ID, err)
					}
					published = false
				}
				views = append(views, lineupView{
					ID:        ref.ID,
					Label:     ref.Label,
					Group:     ref.Group,
					Name:      names[ref.ID],
					Published: published,
				})
			}

			if jsonFlag {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					view.ID, view.Label, view.Group, view.Name, yesNo(view.Published),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"Lineup", "Label", "Group", "Name", "Published"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit lineups as JSON")
	return cmd
}

// publishedLineupNames maps lineup IDs to upstream names using the published
// lineup directory, when one has been fetched.
func publishedLineupNames(publishDir string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(publishDir, "lineups.xml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read lineup directory: %w", err)
	}
	infos, err := xmltvlistings.ParseLineups(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse lineup directory: %w", err)
	}
	names := make(map[string]string, len(infos))
	for _, info := range infos {
		names[info.ID] = info.Name
	}
	return names, nil
}
