package main

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lineuplens/internal/catalogstore"
	"lineuplens/internal/config"
	"lineuplens/internal/fileutil"
	"lineuplens/internal/logging"
	"lineuplens/internal/textutil"
	"lineuplens/internal/xmltv"
	"lineuplens/internal/xmltvlistings"
)

// errPartialFetch reports that at least one lineup download was blocked by
// the daily quota or returned an unusable payload. Published files are left
// untouched for the affected lineups; main maps this to exit code 2.
var errPartialFetch = errors.New("some lineups were not fetched")

func newFetchCommand(ctx *commandContext) *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download channel catalogs from xmltvlistings.com",
	}

	fetchCmd.AddCommand(newFetchChannelsCommand(ctx))
	fetchCmd.AddCommand(newFetchLineupsCommand(ctx))
	fetchCmd.AddCommand(newFetchHistoryCommand(ctx))
	return fetchCmd
}

func newFetchChannelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "channels [lineup-id...]",
		Short: "Fetch channel catalogs for configured (or named) lineups",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runID := uuid.NewString()
			log := ctx.logger().With(
				logging.String(logging.FieldComponent, "fetch"),
				logging.String(logging.FieldRunID, runID))

			ids := args
			if len(ids) == 0 {
				for _, ref := range cfg.Lineups {
					ids = append(ids, ref.ID)
				}
			}
			if len(ids) == 0 {
				return errors.New("no lineups configured and none named on the command line")
			}

			client, err := newListingsClient(cfg)
			if err != nil {
				return err
			}

			unlock, err := acquireFetchLock(cfg)
			if err != nil {
				return err
			}
			defer unlock()

			store, err := catalogstore.Open(cfg.Paths.CatalogDB)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			skipped := 0
			for _, id := range ids {
				payload, err := client.GetChannels(cmd.Context(), id)
				switch {
				case errors.Is(err, xmltvlistings.ErrDailyLimit):
					log.Warn("daily download limit reached",
						logging.String(logging.FieldLineupID, id),
						logging.Error(err))
					fmt.Fprintf(out, "%s: blocked by daily download limit, keeping published file\n", id)
					skipped++
					continue
				case errors.Is(err, xmltvlistings.ErrInvalidPayload):
					log.Warn("response is not a channel catalog",
						logging.String(logging.FieldLineupID, id),
						logging.Error(err))
					fmt.Fprintf(out, "%s: response was not a channel catalog, keeping published file\n", id)
					skipped++
					continue
				case err != nil:
					return fmt.Errorf("fetch lineup %s: %w", id, err)
				}

				records, err := xmltv.ParseChannels(strings.NewReader(payload))
				if err != nil {
					return fmt.Errorf("parse lineup %s: %w", id, err)
				}

				if _, err := store.RecordDownload(cmd.Context(), catalogstore.Download{
					RunID:        runID,
					Kind:         catalogstore.KindChannels,
					LineupID:     id,
					Payload:      payload,
					ChannelCount: len(records),
					FetchedAt:    time.Now(),
				}); err != nil {
					return fmt.Errorf("archive lineup %s: %w", id, err)
				}

				label := ""
				if ref, ok := cfg.LineupByID(id); ok {
					label = ref.Label
				}
				target := filepath.Join(cfg.Paths.PublishDir, publishedChannelsName(id, label))
				if err := fileutil.AtomicWriteFile(target, []byte(payload), 0o644); err != nil {
					return fmt.Errorf("publish lineup %s: %w", id, err)
				}

				log.Info("lineup fetched",
					logging.String(logging.FieldLineupID, id),
					logging.Int("channels", len(records)))
				fmt.Fprintf(out, "%s: %d channels -> %s\n", id, len(records), target)
			}

			if skipped > 0 {
				return fmt.Errorf("%w: %d of %d blocked or invalid", errPartialFetch, skipped, len(ids))
			}
			return nil
		},
	}
}

func newFetchLineupsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lineups",
		Short: "Fetch the lineup directory for the configured account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runID := uuid.NewString()
			log := ctx.logger().With(
				logging.String(logging.FieldComponent, "fetch"),
				logging.String(logging.FieldRunID, runID))

			client, err := newListingsClient(cfg)
			if err != nil {
				return err
			}

			unlock, err := acquireFetchLock(cfg)
			if err != nil {
				return err
			}
			defer unlock()

			payload, err := client.GetLineups(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch lineup directory: %w", err)
			}
			infos, err := xmltvlistings.ParseLineups(payload)
			if err != nil {
				return fmt.Errorf("parse lineup directory: %w", err)
			}

			store, err := catalogstore.Open(cfg.Paths.CatalogDB)
			if err != nil {
				return err
			}
			defer store.Close()
			if _, err := store.RecordDownload(cmd.Context(), catalogstore.Download{
				RunID:     runID,
				Kind:      catalogstore.KindLineups,
				Payload:   payload,
				FetchedAt: time.Now(),
			}); err != nil {
				return fmt.Errorf("archive lineup directory: %w", err)
			}

			target := filepath.Join(cfg.Paths.PublishDir, "lineups.xml")
			if err := fileutil.AtomicWriteFile(target, []byte(payload), 0o644); err != nil {
				return fmt.Errorf("publish lineup directory: %w", err)
			}
			log.Info("lineup directory fetched", logging.Int("lineups", len(infos)))

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{info.ID, info.Name})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Lineup", "Name"}, rows, nil))
			fmt.Fprintf(out, "Published to %s\n", target)
			return nil
		},
	}
}

func newFetchHistoryCommand(ctx *commandContext) *cobra.Command {
	var lineupFlag string
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archived downloads, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := catalogstore.Open(cfg.Paths.CatalogDB)
			if err != nil {
				return err
			}
			defer store.Close()

			downloads, err := store.History(cmd.Context(), lineupFlag, limitFlag)
			if err != nil {
				return fmt.Errorf("read catalog archive: %w", err)
			}

			rows := make([][]string, 0, len(downloads))
			for _, d := range downloads {
				channels := ""
				if d.Kind == catalogstore.KindChannels {
					channels = fmt.Sprintf("%d", d.ChannelCount)
				}
				rows = append(rows, []string{
					d.FetchedAt.Format(time.RFC3339),
					d.Kind,
					d.LineupID,
					channels,
					d.RunID,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Fetched", "Kind", "Lineup", "Channels", "Run"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVar(&lineupFlag, "lineup", "", "Only show downloads for one lineup")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum entries to show (default 20)")
	return cmd
}

func newListingsClient(cfg *config.Config) (*xmltvlistings.Client, error) {
	return xmltvlistings.New(xmltvlistings.Config{
		APIKey:  cfg.API.APIKey,
		BaseURL: cfg.API.BaseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		},
	})
}

// acquireFetchLock takes the single-writer lock that keeps concurrent fetch
// runs from racing on published files and the download quota.
func acquireFetchLock(cfg *config.Config) (func(), error) {
	lock := flock.New(filepath.Join(cfg.Paths.LogDir, "fetch.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire fetch lock: %w", err)
	}
	if !locked {
		return nil, errors.New("another fetch is already running")
	}
	return func() { _ = lock.Unlock() }, nil
}

// publishedChannelsName picks the published filename for a lineup's catalog.
// Labeled lineups publish under the <label>-channels-<id>.xml convention the
// directory scanner recognizes; the label is sanitized into a filesystem
// token first.
func publishedChannelsName(lineupID, label string) string {
	if strings.TrimSpace(label) != "" {
		return fmt.Sprintf("%s-channels-%s.xml", textutil.SanitizeToken(label), lineupID)
	}
	return fmt.Sprintf("xmltv-%s.xml", lineupID)
}
