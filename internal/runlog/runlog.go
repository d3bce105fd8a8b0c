// Package runlog keeps an audit trail of scrape requests in SQLite.
// It is never consulted to skip or resume work.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded scrape request.
type Run struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	Source     string
	Mode       string
	Selection  string
	Path       string
	NoData     bool
	Attempted  int
	Succeeded  int
	Failed     int
	Skipped    int
	Error      string
	Failures   []Failure
}

// Failure is a game that failed during a run.
type Failure struct {
	GameID string
	Error  string
}

// Log wraps the SQLite connection.
type Log struct {
	conn *sql.DB
	path string
}

// Open opens or creates the run log at path.
func Open(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create run log directory: %w", err)
		}
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	l := &Log{conn: conn, path: path}
	if err := l.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return l, nil
}

// Close closes the database connection.
func (l *Log) Close() error {
	return l.conn.Close()
}

// Path returns the database file location.
func (l *Log) Path() string {
	return l.path
}

func (l *Log) migrate() error {
	if _, err := l.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var version int
	if err := l.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if version < 1 {
		if err := l.migrateV1(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Log) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			source TEXT NOT NULL,
			mode TEXT NOT NULL,
			selection TEXT NOT NULL,
			output_path TEXT,
			no_data INTEGER NOT NULL DEFAULT 0,
			attempted INTEGER NOT NULL DEFAULT 0,
			succeeded INTEGER NOT NULL DEFAULT 0,
			failed INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0,
			error TEXT
		);

		CREATE TABLE IF NOT EXISTS failures (
			id INTEGER PRIMARY KEY,
			run_id INTEGER NOT NULL,
			game_id TEXT NOT NULL,
			error TEXT NOT NULL,
			FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_failures_run_id ON failures(run_id);

		INSERT INTO schema_version (version) VALUES (1);
	`
	if _, err := l.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute v1 migration: %w", err)
	}
	return nil
}

// Record stores a run and its failures and returns the new run id.
func (l *Log) Record(ctx context.Context, run Run) (int64, error) {
	tx, err := l.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (started_at, finished_at, source, mode, selection, output_path,
			no_data, attempted, succeeded, failed, skipped, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		formatTime(run.StartedAt), formatTime(run.FinishedAt),
		run.Source, run.Mode, run.Selection, run.Path,
		run.NoData, run.Attempted, run.Succeeded, run.Failed, run.Skipped, run.Error,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, f := range run.Failures {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO failures (run_id, game_id, error) VALUES (?, ?, ?)",
			id, f.GameID, f.Error,
		); err != nil {
			return 0, fmt.Errorf("insert failure: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns the most recent runs first, with their failures.
// A non-positive limit returns every run.
func (l *Log) List(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, started_at, finished_at, source, mode, selection, COALESCE(output_path, ''),
			no_data, attempted, succeeded, failed, skipped, COALESCE(error, '')
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := l.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r                 Run
			started, finished string
		)
		if err := rows.Scan(&r.ID, &started, &finished, &r.Source, &r.Mode, &r.Selection, &r.Path,
			&r.NoData, &r.Attempted, &r.Succeeded, &r.Failed, &r.Skipped, &r.Error); err != nil {
			return nil, err
		}
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		failures, err := l.failures(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Failures = failures
	}
	return runs, nil
}

func (l *Log) failures(ctx context.Context, runID int64) ([]Failure, error) {
	rows, err := l.conn.QueryContext(ctx,
		"SELECT game_id, error FROM failures WHERE run_id = ? ORDER BY id", runID)
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	var out []Failure
	for rows.Next() {
		var f Failure
		if err := rows.Scan(&f.GameID, &f.Error); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
