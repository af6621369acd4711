package datastore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SavedVersesTable is the table saved verses are recorded in.
const SavedVersesTable = "saved_verses"

// SavedVersesSchema defines the history table of saved verses.
const SavedVersesSchema = `
CREATE TABLE IF NOT EXISTS saved_verses (
	id TEXT PRIMARY KEY NOT NULL,
	reference TEXT NOT NULL,
	book TEXT NOT NULL,
	chapter TEXT NOT NULL,
	verse TEXT NOT NULL,
	text TEXT NOT NULL,
	saved_at TEXT NOT NULL
);
`

// SavedVerse is one row of the history table.
type SavedVerse struct {
	ID        string    `yaml:"id"`
	Reference string    `yaml:"reference"`
	Book      string    `yaml:"book"`
	Chapter   string    `yaml:"chapter"`
	Verse     string    `yaml:"verse"`
	Text      string    `yaml:"text"`
	SavedAt   time.Time `yaml:"saved_at"`
}

// OpenHistory connects to the history database at dbPath and ensures its table exists.
func OpenHistory(dbPath string) (*SQLiteStore, error) {
	store := NewSQLiteStore(dbPath)
	if err := store.Connect(); err != nil {
		return nil, err
	}
	if err := store.CreateTable(SavedVersesSchema); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// SaveVerse records a verse, assigning an ID and timestamp when they are empty.
func (s *SQLiteStore) SaveVerse(v SavedVerse) (SavedVerse, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.SavedAt.IsZero() {
		v.SavedAt = time.Now()
	}
	v.SavedAt = v.SavedAt.UTC()

	record := map[string]any{
		"id":        v.ID,
		"reference": v.Reference,
		"book":      v.Book,
		"chapter":   v.Chapter,
		"verse":     v.Verse,
		"text":      v.Text,
		"saved_at":  v.SavedAt.Format(time.RFC3339Nano),
	}
	if err := s.Insert(SavedVersesTable, []map[string]any{record}); err != nil {
		return SavedVerse{}, err
	}
	return v, nil
}

// RecentVerses returns up to limit saved verses, most recently saved first.
// A limit <= 0 returns every row.
func (s *SQLiteStore) RecentVerses(limit int) ([]SavedVerse, error) {
	query := "SELECT id, reference, book, chapter, verse, text, saved_at FROM saved_verses ORDER BY rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var verses []SavedVerse
	for rows.Next() {
		var v SavedVerse
		var savedAt string
		if err := rows.Scan(&v.ID, &v.Reference, &v.Book, &v.Chapter, &v.Verse, &v.Text, &savedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if v.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt); err != nil {
			return nil, fmt.Errorf("invalid saved_at %q: %w", savedAt, err)
		}
		verses = append(verses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return verses, nil
}
