// Package storage provides SQLite-based persistence for scene query runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Record is the stored outcome of one query.
type Record struct {
	ID        int64
	RunID     int64 // 0 when saved on its own
	SceneID   string
	Query     string
	Kind      string
	Value     string
	Matched   bool
	Passed    bool
	CreatedAt time.Time
}

// RunEntry summarises one saved run of a scene.
type RunEntry struct {
	ID        int64
	SceneID   string
	Digest    string // content hash of the scene document that was run
	Total     int
	Passed    int
	CreatedAt time.Time
}

// Failed returns the number of queries whose expectation did not hold.
func (r RunEntry) Failed() int {
	return r.Total - r.Passed
}

// ShortDigest abbreviates the scene digest for display, or returns "-" for
// runs saved without one.
func (r RunEntry) ShortDigest() string {
	if r.Digest == "" {
		return "-"
	}
	return r.Digest[:min(len(r.Digest), 8)]
}

// SceneStats contains aggregated statistics for a scene.
type SceneStats struct {
	SceneID string
	Runs    int
	Queries int
	Passed  int
	LastRun time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			digest TEXT NOT NULL DEFAULT '',
			total INTEGER NOT NULL DEFAULT 0,
			passed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene_id ON runs(scene_id);

		CREATE TABLE IF NOT EXISTS query_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER REFERENCES runs(id),
			scene_id TEXT NOT NULL,
			query TEXT NOT NULL,
			kind TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			matched INTEGER NOT NULL DEFAULT 0,
			passed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_query_runs_scene_id ON query_runs(scene_id);
		CREATE INDEX IF NOT EXISTS idx_query_runs_run_id ON query_runs(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a single query outcome outside of any run.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Record) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO query_runs (scene_id, query, kind, value, matched, passed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.SceneID, r.Query, r.Kind, r.Value, r.Matched, r.Passed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveRun records every query outcome of one scene run in a single
// transaction. digest identifies the scene content that produced them.
// Returns the ID of the run.
func (s *Store) SaveRun(sceneID, digest string, records []Record) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run: %w", err)
	}
	defer tx.Rollback()

	passed := 0
	for _, r := range records {
		if r.Passed {
			passed++
		}
	}

	res, err := tx.Exec(
		"INSERT INTO runs (scene_id, digest, total, passed) VALUES (?, ?, ?, ?)",
		sceneID, digest, len(records), passed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO query_runs (run_id, scene_id, query, kind, value, matched, passed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(runID, sceneID, r.Query, r.Kind, r.Value, r.Matched, r.Passed); err != nil {
			return 0, fmt.Errorf("storage: cannot save query %q: %w", r.Query, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return runID, nil
}

// RecentRuns retrieves the most recent runs of the given scene, newest first.
func (s *Store) RecentRuns(sceneID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, digest, total, passed, created_at
		 FROM runs
		 WHERE scene_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SceneID, &e.Digest, &e.Total, &e.Passed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunResults retrieves the query outcomes of a run in the order they were saved.
func (s *Store) RunResults(runID int64) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, scene_id, query, kind, value, matched, passed, created_at
		 FROM query_runs
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var run sql.NullInt64
		var createdAt any
		if err := rows.Scan(&r.ID, &run, &r.SceneID, &r.Query, &r.Kind, &r.Value, &r.Matched, &r.Passed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if run.Valid {
			r.RunID = run.Int64
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns how many query outcomes were stored for the scene and how
// many of them passed.
func (s *Store) Stats(sceneID string) (total, passed int, err error) {
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(passed), 0)
		 FROM query_runs WHERE scene_id = ?`,
		sceneID,
	).Scan(&total, &passed)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	return total, passed, nil
}

// AllSceneStats retrieves run statistics for every scene that has been run.
func (s *Store) AllSceneStats() (map[string]*SceneStats, error) {
	rows, err := s.db.Query(
		`SELECT scene_id, COUNT(*), SUM(total), SUM(passed), MAX(created_at)
		 FROM runs
		 GROUP BY scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SceneStats)
	for rows.Next() {
		var st SceneStats
		var lastRun any
		if err := rows.Scan(&st.SceneID, &st.Runs, &st.Queries, &st.Passed, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.SceneID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes the stored history of the given scene.
func (s *Store) ClearRuns(sceneID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin clear: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM query_runs WHERE scene_id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE scene_id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return tx.Commit()
}

// parseTime handles both time.Time and the SQLite text format.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
