// Package history keeps a local log of completed quiz attempts.
//
// The log is an audit trail only. It is written after an attempt
// finishes regardless of whether the cloud submission succeeded, and
// nothing is ever replayed from it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Attempt is one finished run through the wizard.
type Attempt struct {
	ID              string
	GivenName       string
	PaternalSurname string
	MaternalSurname string
	Sex             string
	ZodiacSign      string
	Age             int
	Score           int
	Delivered       bool // whether the sink accepted the record
	CreatedAt       time.Time
}

// Store is the SQLite-backed attempt log.
type Store struct {
	db *sql.DB
}

// Open connects to the database at dsn, applies pragmas, and creates
// the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records a finished attempt. A blank ID gets a fresh uuid.
func (s *Store) Append(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts
			(id, given_name, paternal_surname, maternal_surname,
			 sex, zodiac_sign, age, score, delivered, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.GivenName, a.PaternalSurname, a.MaternalSurname,
		a.Sex, a.ZodiacSign, a.Age, a.Score, a.Delivered,
		a.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// Recent returns the newest attempts, most recent first. limit <= 0
// means no limit.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	q := `
		SELECT id, given_name, paternal_surname, maternal_surname,
		       sex, zodiac_sign, age, score, delivered, created_at
		FROM attempts
		ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var created string
		if err := rows.Scan(
			&a.ID, &a.GivenName, &a.PaternalSurname, &a.MaternalSurname,
			&a.Sex, &a.ZodiacSign, &a.Age, &a.Score, &a.Delivered, &created,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Count returns the number of logged attempts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM attempts").Scan(&n); err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS attempts (
			id               TEXT PRIMARY KEY,
			given_name       TEXT NOT NULL,
			paternal_surname TEXT NOT NULL,
			maternal_surname TEXT NOT NULL DEFAULT '',
			sex              TEXT NOT NULL,
			zodiac_sign      TEXT NOT NULL,
			age              INTEGER NOT NULL,
			score            INTEGER NOT NULL,
			delivered        INTEGER NOT NULL DEFAULT 0,
			created_at       TEXT NOT NULL
		)`)
	return err
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ZODICO_DB environment variable
// 2. $XDG_DATA_HOME/zodico/zodico.db
// 3. ~/.local/share/zodico/zodico.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ZODICO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "zodico", "zodico.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
