// Package storage provides SQLite-based persistence for finished
// rounds. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundEntry represents one finished round.
type RoundEntry struct {
	ID         int64
	Word       string
	Difficulty string
	Score      int
	Outcome    string // "won", "lost_time", "lost_score"
	Duration   int    // Seconds of clock consumed
	CreatedAt  time.Time
}

// Stats contains aggregated statistics over recorded rounds.
type Stats struct {
	Played    int
	Won       int
	BestScore int
	AvgScore  float64
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_difficulty ON rounds(difficulty);
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

// SaveResult records a finished round. Returns the ID of the inserted
// record.
func (s *Store) SaveResult(e RoundEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (word, difficulty, score, outcome, duration_secs) VALUES (?, ?, ?, ?, ?)",
		e.Word, e.Difficulty, e.Score, e.Outcome, e.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the N best-scoring rounds, ordered by score
// descending.
func (s *Store) TopScores(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, word, difficulty, score, outcome, duration_secs, created_at
		 FROM rounds
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
}

// RecentRounds retrieves the most recently finished rounds.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, word, difficulty, score, outcome, duration_secs, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]RoundEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Word, &e.Difficulty, &e.Score, &e.Outcome, &e.Duration, &createdAt); err != nil {
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

// BestScore returns the highest recorded score, or 0 when no rounds
// exist.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// GetStats retrieves aggregated statistics over all recorded rounds.
func (s *Store) GetStats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM rounds`,
	).Scan(&st.Played, &st.Won, &st.BestScore, &st.AvgScore)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// ClearRounds deletes all recorded rounds.
func (s *Store) ClearRounds() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles the datetime both as time.Time and as string,
// depending on how the driver returns it.
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
