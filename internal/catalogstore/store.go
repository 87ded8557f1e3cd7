package catalogstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users delete the database to adopt the new schema.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrNotFound indicates no download matched the query.
var ErrNotFound = errors.New("download not found")

// Download kinds.
const (
	KindChannels = "channels"
	KindLineups  = "lineups"
)

// Download is one archived API payload.
type Download struct {
	ID           int64
	RunID        string
	Kind         string
	LineupID     string
	Payload      string
	ChannelCount int
	FetchedAt    time.Time
}

// Store archives fetched catalog payloads in SQLite. The upstream API
// enforces a small daily download quota, so every valid payload is kept and
// the loader can reuse the latest one instead of re-fetching.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// RecordDownload archives one payload.
func (s *Store) RecordDownload(ctx context.Context, d Download) (int64, error) {
	if d.Kind != KindChannels && d.Kind != KindLineups {
		return 0, fmt.Errorf("record download: unknown kind %q", d.Kind)
	}
	if d.Kind == KindChannels && d.LineupID == "" {
		return 0, errors.New("record download: channels payload requires a lineup id")
	}
	fetchedAt := d.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO downloads (run_id, kind, lineup_id, payload, channel_count, fetched_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		d.RunID,
		d.Kind,
		d.LineupID,
		d.Payload,
		d.ChannelCount,
		fetchedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert download: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// LatestChannels returns the most recent archived channels payload for a
// lineup, or ErrNotFound when the lineup was never fetched.
func (s *Store) LatestChannels(ctx context.Context, lineupID string) (*Download, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, run_id, kind, lineup_id, payload, channel_count, fetched_at
         FROM downloads
         WHERE kind = ? AND lineup_id = ?
         ORDER BY fetched_at DESC, id DESC
         LIMIT 1`,
		KindChannels,
		lineupID,
	)
	return scanDownload(row)
}

// History lists archived downloads newest first. An empty lineupID lists
// every download of every kind; a non-empty one narrows to that lineup's
// channel payloads.
func (s *Store) History(ctx context.Context, lineupID string, limit int) ([]Download, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, run_id, kind, lineup_id, payload, channel_count, fetched_at
         FROM downloads`
	args := []any{}
	if lineupID != "" {
		query += ` WHERE kind = ? AND lineup_id = ?`
		args = append(args, KindChannels, lineupID)
	}
	query += ` ORDER BY fetched_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Download
	for rows.Next() {
		d, err := scanDownloadRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDownload(row *sql.Row) (*Download, error) {
	d, err := scanDownloadRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func scanDownloadRow(scanner rowScanner) (*Download, error) {
	var d Download
	var fetchedAt string
	if err := scanner.Scan(&d.ID, &d.RunID, &d.Kind, &d.LineupID, &d.Payload, &d.ChannelCount, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan download: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at %q: %w", fetchedAt, err)
	}
	d.FetchedAt = parsed
	return &d, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to recreate)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
