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

	"codeberg.org/snonux/saypyu/internal/saypyu"
)

// Entry is a cached pronunciation for one word.
type Entry struct {
	Word      string
	IPA       string
	SaypYu    string
	Source    string // phonetic source that produced the IPA
	CreatedAt time.Time
}

// Store caches looked-up transcriptions in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the cache database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS transcriptions (
			word text PRIMARY KEY,
			ipa text NOT NULL,
			saypyu text NOT NULL,
			source text NOT NULL,
			created_at integer NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_transcriptions_created ON transcriptions (created_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Put inserts or replaces the entry for e.Word. A zero CreatedAt is set to
// the current time.
func (s *Store) Put(ctx context.Context, e Entry) error {
	if e.Word == "" {
		return fmt.Errorf("word cannot be empty")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO transcriptions (word, ipa, saypyu, source, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Word, e.IPA, e.SaypYu, e.Source, e.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to store %q: %w", e.Word, err)
	}
	return nil
}

// Get returns the cached entry for word. The boolean is false when the word
// is not cached.
//
// The SaypYu spelling is recomputed from the cached IPA, and written back
// if the rule tables have changed since it was stored.
func (s *Store) Get(ctx context.Context, word string) (Entry, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT word, ipa, saypyu, source, created_at FROM transcriptions WHERE word = ?`, word)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to read %q: %w", word, err)
	}

	if current := saypyu.Transliterate(e.IPA); current != e.SaypYu {
		e.SaypYu = current
		if err := s.Put(ctx, e); err != nil {
			return e, true, err
		}
	}

	return e, true, nil
}

// List returns all cached entries ordered by word.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, ipa, saypyu, source, created_at FROM transcriptions ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read cache row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes word from the cache. Deleting a missing word is not an error.
func (s *Store) Delete(ctx context.Context, word string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transcriptions WHERE word = ?`, word); err != nil {
		return fmt.Errorf("failed to delete %q: %w", word, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var e Entry
	var created int64
	if err := sc.Scan(&e.Word, &e.IPA, &e.SaypYu, &e.Source, &created); err != nil {
		return Entry{}, err
	}
	e.CreatedAt = time.UnixMilli(created)
	return e, nil
}
