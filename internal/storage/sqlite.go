// Package storage provides SQLite-based persistence for Runefall
// progress: run attempts and level completions. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress
// persistence. The simulation core never touches this: the host
// records attempts when a run starts and commits completions when it
// observes the won terminal state.
type Store struct {
	db *sql.DB
}

// Completion is one committed level win.
type Completion struct {
	ID        int64
	LevelID   string
	Runes     int
	CreatedAt time.Time
}

// LevelStats aggregates a single level's history.
type LevelStats struct {
	LevelID     string
	Attempts    int
	Completions int
	BestRunes   int
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_level_id ON attempts(level_id);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			runes INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level_id ON completions(level_id);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(level_id, runes DESC);
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

// RecordAttempt logs the start of a run for the given level.
func (s *Store) RecordAttempt(levelID string) error {
	_, err := s.db.Exec("INSERT INTO attempts (level_id) VALUES (?)", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot record attempt: %w", err)
	}
	return nil
}

// RecordCompletion commits a level win with its rune count.
// Returns the ID of the inserted record.
func (s *Store) RecordCompletion(levelID string, runes int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (level_id, runes) VALUES (?, ?)",
		levelID, runes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRunes returns the highest rune count committed for a level.
// Returns 0 if the level has never been completed.
func (s *Store) BestRunes(levelID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(runes) FROM completions WHERE level_id = ?",
		levelID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best runes: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// TotalRunes returns the sum of per-level best rune counts. This is
// the bank unlock eligibility is judged against: replaying a level
// only counts its best run, not every run.
func (s *Store) TotalRunes() (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(
		`SELECT SUM(best) FROM (
			SELECT MAX(runes) AS best FROM completions GROUP BY level_id
		)`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query total runes: %w", err)
	}
	if !total.Valid {
		return 0, nil
	}
	return int(total.Int64), nil
}

// Attempts returns how many runs were started on a level.
func (s *Store) Attempts(levelID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM attempts WHERE level_id = ?",
		levelID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	return count, nil
}

// Completions returns a level's committed wins, newest first.
func (s *Store) Completions(levelID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, runes, created_at
		 FROM completions
		 WHERE level_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var e Completion
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Runes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseDBTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Stats aggregates one level's attempt and completion history.
func (s *Store) Stats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var err error
	if stats.Attempts, err = s.Attempts(levelID); err != nil {
		return nil, err
	}

	err = s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(MAX(runes), 0) FROM completions WHERE level_id = ?",
		levelID,
	).Scan(&stats.Completions, &stats.BestRunes)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completion stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM attempts WHERE level_id = ? ORDER BY created_at DESC LIMIT 1",
		levelID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot query last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseDBTime(lastPlayed)
	}

	return stats, nil
}

// AllStats aggregates history for every level with at least one
// attempt, keyed by level ID.
func (s *Store) AllStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		"SELECT level_id, COUNT(*), MAX(created_at) FROM attempts GROUP BY level_id",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempt stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Attempts, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseDBTime(lastPlayed)
		stats[st.LevelID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	crows, err := s.db.Query(
		"SELECT level_id, COUNT(*), MAX(runes) FROM completions GROUP BY level_id",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completion stats: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var levelID string
		var completions, best int
		if err := crows.Scan(&levelID, &completions, &best); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st, ok := stats[levelID]
		if !ok {
			// Completions without attempts only happen on databases
			// written by older builds; surface them anyway.
			st = &LevelStats{LevelID: levelID}
			stats[levelID] = st
		}
		st.Completions = completions
		st.BestRunes = best
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseDBTime handles the driver returning DATETIME columns as either
// time.Time or string.
func parseDBTime(v any) time.Time {
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
