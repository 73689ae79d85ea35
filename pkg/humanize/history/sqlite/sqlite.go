// Package sqlite implements the history store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/prosekit/humanize/pkg/humanize/history"
	"github.com/prosekit/humanize/pkg/humanize/internalerr"
)

// sqliteStore implements history.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (and if necessary creates) a run-history database at path, with
// WAL mode enabled.
func Open(ctx context.Context, path string) (history.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	language TEXT NOT NULL,
	profile TEXT NOT NULL,
	intensity INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	input_chars INTEGER NOT NULL,
	change_ratio REAL NOT NULL,
	similarity REAL NOT NULL,
	quality_score REAL NOT NULL,
	rolled_back INTEGER NOT NULL DEFAULT 0,
	changes INTEGER NOT NULL DEFAULT 0,
	skipped INTEGER NOT NULL DEFAULT 0,
	elapsed_ms INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// RecordRun implements history.Store.
func (s *sqliteStore) RecordRun(ctx context.Context, r history.Run) error {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO runs
	(id, created_at, language, profile, intensity, seed, input_chars,
	 change_ratio, similarity, quality_score, rolled_back, changes, skipped, elapsed_ms)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, createdAt.Format(time.RFC3339Nano), r.Language, r.Profile, r.Intensity,
		r.Seed, r.InputChars, r.ChangeRatio, r.Similarity, r.QualityScore,
		boolToInt(r.RolledBack), r.Changes, r.Skipped, r.ElapsedMS)
	return err
}

// RecentRuns implements history.Store.
func (s *sqliteStore) RecentRuns(ctx context.Context, limit int) ([]history.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, created_at, language, profile, intensity, seed, input_chars,
	change_ratio, similarity, quality_score, rolled_back, changes, skipped, elapsed_ms
FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []history.Run
	for rows.Next() {
		var r history.Run
		var createdAt string
		var rolledBack int
		if err := rows.Scan(&r.ID, &createdAt, &r.Language, &r.Profile, &r.Intensity,
			&r.Seed, &r.InputChars, &r.ChangeRatio, &r.Similarity, &r.QualityScore,
			&rolledBack, &r.Changes, &r.Skipped, &r.ElapsedMS); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = ts
		}
		r.RolledBack = rolledBack != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ProfileStats implements history.Store.
func (s *sqliteStore) ProfileStats(ctx context.Context, profile string) (history.Stats, error) {
	var st history.Stats
	err := s.db.QueryRowContext(ctx, `
SELECT COUNT(*),
	COALESCE(SUM(rolled_back), 0),
	COALESCE(AVG(change_ratio), 0),
	COALESCE(AVG(quality_score), 0)
FROM runs WHERE profile = ?`, profile).
		Scan(&st.Runs, &st.Rollbacks, &st.AvgChangeRatio, &st.AvgQuality)
	return st, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
