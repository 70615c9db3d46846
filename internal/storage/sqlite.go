// Package storage persists finished rush sessions and per-round results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished rush session.
type SessionRecord struct {
	ID           string
	Player       string // Empty for local play; SSH user for remote play
	Score        int
	RoundsWon    int
	RoundsPlayed int
	MaxSpeed     float64
	DurationSecs int
	CreatedAt    time.Time
}

// RoundResult is the outcome of a single round within a session.
type RoundResult struct {
	RoundID string
	Won     bool
}

// RoundStats aggregates how a round has treated players historically.
type RoundStats struct {
	RoundID string
	Plays   int
	Wins    int
}

// WinRate returns the fraction of plays won, or 0 for an unplayed round.
func (s RoundStats) WinRate() float64 {
	if s.Plays == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Plays)
}

// Open creates or opens a SQLite database at the given path. Parent
// directories are created as needed and migrations run on open.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			rounds_won INTEGER NOT NULL,
			rounds_played INTEGER NOT NULL,
			max_speed REAL NOT NULL DEFAULT 1.0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);

		CREATE TABLE IF NOT EXISTS round_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			round_id TEXT NOT NULL,
			won INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_round_results_round ON round_results(round_id);
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

// SaveSession records a finished session together with its per-round
// results and returns the generated session ID.
func (s *Store) SaveSession(rec SessionRecord, results []RoundResult) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	_, err = tx.Exec(
		`INSERT INTO sessions (id, player, score, rounds_won, rounds_played, max_speed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Player, rec.Score, rec.RoundsWon, rec.RoundsPlayed, rec.MaxSpeed, rec.DurationSecs,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	for _, r := range results {
		if _, err := tx.Exec(
			"INSERT INTO round_results (session_id, round_id, won) VALUES (?, ?, ?)",
			rec.ID, r.RoundID, r.Won,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save round result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return rec.ID, nil
}

// TopSessions retrieves the best sessions ordered by score descending.
func (s *Store) TopSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, rounds_won, rounds_played, max_speed, duration_secs, created_at
		 FROM sessions
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// RecentSessions retrieves the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, rounds_won, rounds_played, max_speed, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// HighScore returns the best session score, or 0 when nothing is recorded.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// AllRoundStats aggregates plays and wins for every round ever played.
func (s *Store) AllRoundStats() (map[string]RoundStats, error) {
	rows, err := s.db.Query(
		`SELECT round_id, COUNT(*), SUM(won)
		 FROM round_results
		 GROUP BY round_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]RoundStats)
	for rows.Next() {
		var st RoundStats
		if err := rows.Scan(&st.RoundID, &st.Plays, &st.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.RoundID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearSessions deletes everything. Used by tests and the reset flag.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM round_results"); err != nil {
		return fmt.Errorf("storage: cannot clear round results: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// scanSession reads one session row, tolerating both time.Time and string
// datetime representations from the driver.
func scanSession(rows *sql.Rows) (SessionRecord, error) {
	var rec SessionRecord
	var createdAt any
	if err := rows.Scan(
		&rec.ID, &rec.Player, &rec.Score, &rec.RoundsWon, &rec.RoundsPlayed,
		&rec.MaxSpeed, &rec.DurationSecs, &createdAt,
	); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}
	return rec, nil
}
