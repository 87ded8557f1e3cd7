package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lineuplens/internal/catalogstore"
	"lineuplens/internal/config"
	"lineuplens/internal/fileutil"
	"lineuplens/internal/lineup"
	"lineuplens/internal/report"
	"lineuplens/internal/xmltv"
)

// loadCollection builds the lineup collection from the catalog files in dir.
// Configured lineup entries supply labels and group tags; a label embedded in
// the filename is used when the configuration has none. Configured lineups
// with no published file fall back to the newest archived payload, so a
// quota-blocked fetch does not hide a lineup from analysis.
func loadCollection(ctx context.Context, cfg *config.Config, dir string) (*lineup.Collection, error) {
	files, err := xmltv.ScanDir(dir)
	if err != nil {
		return nil, err
	}

	lineups := make([]*lineup.Lineup, 0, len(files))
	for _, file := range files {
		records, err := xmltv.ParseChannelsFile(file.Path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file.Name, err)
		}

		label := file.Label
		group := ""
		if ref, ok := cfg.LineupByID(file.LineupID); ok {
			if ref.Label != "" {
				label = ref.Label
			}
			group = ref.Group
		}

		l, err := lineup.New(file.LineupID, label, group, records)
		if err != nil {
			return nil, fmt.Errorf("build lineup from %s: %w", file.Name, err)
		}
		lineups = append(lineups, l)
	}

	published := make(map[string]struct{}, len(files))
	for _, file := range files {
		published[file.LineupID] = struct{}{}
	}
	var missing []config.LineupRef
	for _, ref := range cfg.Lineups {
		if _, ok := published[ref.ID]; !ok {
			missing = append(missing, ref)
		}
	}
	if len(missing) > 0 {
		archived, err := archivedLineups(ctx, cfg, missing)
		if err != nil {
			return nil, err
		}
		lineups = append(lineups, archived...)
	}

	if len(lineups) == 0 {
		return nil, fmt.Errorf("no channel catalogs found in %s or the catalog archive", dir)
	}
	return lineup.NewSortedCollection(lineups...)
}

// archivedLineups loads the newest archived payload for each lineup. Lineups
// that were never fetched are skipped; the archive keeps every valid
// download precisely so the daily quota is not spent re-fetching.
func archivedLineups(ctx context.Context, cfg *config.Config, refs []config.LineupRef) ([]*lineup.Lineup, error) {
	store, err := catalogstore.Open(cfg.Paths.CatalogDB)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	var out []*lineup.Lineup
	for _, ref := range refs {
		d, err := store.LatestChannels(ctx, ref.ID)
		if errors.Is(err, catalogstore.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog archive for %s: %w", ref.ID, err)
		}

		records, err := xmltv.ParseChannels(strings.NewReader(d.Payload))
		if err != nil {
			return nil, fmt.Errorf("parse archived catalog for %s: %w", ref.ID, err)
		}
		l, err := lineup.New(ref.ID, ref.Label, ref.Group, records)
		if err != nil {
			return nil, fmt.Errorf("build lineup %s from archive: %w", ref.ID, err)
		}
		out = append(out, l)
	}
	return out, nil
}

// newReportDir creates a fresh timestamped directory under <outDir>/reports.
func newReportDir(outDir string) (string, error) {
	return fileutil.TimestampDir(filepath.Join(outDir, "reports"), time.Now())
}

// writeReportCSV writes one report table into dir and mirrors it into the
// stable <outDir>/current directory so the latest run is always at a fixed
// path.
func writeReportCSV(dir, outDir, name string, t report.Table) error {
	data, err := report.CSVBytes(t)
	if err != nil {
		return fmt.Errorf("assemble %s: %w", name, err)
	}
	return writeReportFile(dir, outDir, name, data)
}

func writeReportFile(dir, outDir, name string, data []byte) error {
	if err := fileutil.AtomicWriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	current := filepath.Join(outDir, "current")
	if err := os.MkdirAll(current, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", current, err)
	}
	if err := fileutil.AtomicWriteFile(filepath.Join(current, name), data, 0o644); err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return nil
}
