// Package storage provides SQLite-based persistence for completed quests.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for completion records.
type Store struct {
	db *sql.DB
}

// Completion is one delivered quest.
type Completion struct {
	ID        int64
	Player    string
	Duration  time.Duration // Time spent playing before the delivery
	Flowers   int           // Flowers carried at delivery
	Goal      int           // Flowers the quest asked for
	Jumps     int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			flowers INTEGER NOT NULL,
			goal INTEGER NOT NULL,
			jumps INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_fastest ON completions(goal, duration_ms);
		CREATE INDEX IF NOT EXISTS idx_completions_player ON completions(player);
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

// SaveCompletion records a delivered quest and returns the new record ID.
func (s *Store) SaveCompletion(c Completion) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (player, duration_ms, flowers, goal, jumps) VALUES (?, ?, ?, ?, ?)",
		c.Player, c.Duration.Milliseconds(), c.Flowers, c.Goal, c.Jumps,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Fastest returns the quickest completions for a goal, fastest first.
// A goal of 0 or less includes every goal.
func (s *Store) Fastest(goal, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, duration_ms, flowers, goal, jumps, created_at
		 FROM completions
		 WHERE ? <= 0 OR goal = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		goal, goal, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

// PlayerCompletions returns a player's completions, most recent first.
func (s *Store) PlayerCompletions(player string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, duration_ms, flowers, goal, jumps, created_at
		 FROM completions
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

// PersonalBest returns a player's fastest completion for a goal.
// Returns 0 without error if the player has none.
func (s *Store) PersonalBest(player string, goal int) (time.Duration, error) {
	var ms int64
	err := s.db.QueryRow(
		"SELECT duration_ms FROM completions WHERE player = ? AND goal = ? ORDER BY duration_ms ASC LIMIT 1",
		player, goal,
	).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query personal best: %w", err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// ClearCompletions removes every completion record.
func (s *Store) ClearCompletions() error {
	if _, err := s.db.Exec("DELETE FROM completions"); err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

func scanCompletions(rows *sql.Rows) ([]Completion, error) {
	var entries []Completion
	for rows.Next() {
		var c Completion
		var ms int64
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Player, &ms, &c.Flowers, &c.Goal, &c.Jumps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Duration = time.Duration(ms) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			c.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				c.CreatedAt = parsed
			}
		}
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
