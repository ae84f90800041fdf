package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/rusphonetic/internal"
)

// ErrNotFound is returned by Lookup when the word was never saved.
var ErrNotFound = errors.New("record not found")

// Record is one transcribed word
type Record struct {
	ID            string
	Word          string
	Stress        int
	Transcription string
	CreatedAt     time.Time
}

// Store is the history database
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id            TEXT PRIMARY KEY,
	word          TEXT NOT NULL,
	stress        INTEGER NOT NULL,
	transcription TEXT NOT NULL,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcriptions_word ON transcriptions(word, stress);
CREATE INDEX IF NOT EXISTS idx_transcriptions_created ON transcriptions(created_at);
`

// Open opens (and if needed creates) the history database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a record. ID and CreatedAt are filled in when empty.
func (s *Store) Save(ctx context.Context, r *Record) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.ID == "" {
		r.ID = internal.GenerateID(r.Word, r.CreatedAt)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO transcriptions (id, word, stress, transcription, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Word, r.Stress, r.Transcription, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save transcription: %w", err)
	}
	return nil
}

// Lookup returns the most recent record for word with the given stress
func (s *Store) Lookup(ctx context.Context, word string, stress int) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, word, stress, transcription, created_at FROM transcriptions
		 WHERE word = ? AND stress = ? ORDER BY created_at DESC LIMIT 1`,
		word, stress,
	)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %q: %w", word, err)
	}
	return r, nil
}

// Recent returns up to limit records, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word, stress, transcription, created_at FROM transcriptions
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		r       Record
		created int64
	)
	if err := sc.Scan(&r.ID, &r.Word, &r.Stress, &r.Transcription, &created); err != nil {
		return nil, err
	}
	r.CreatedAt = time.UnixMilli(created)
	return &r, nil
}
