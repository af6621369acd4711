package datastore

// Store is a local SQLite-backed table store.
type Store interface {
	Connect() error
	// CreateTable runs a CREATE TABLE IF NOT EXISTS schema.
	CreateTable(schema string) error
	// Insert writes records into table in one transaction; every record must carry the
	// same columns.
	Insert(table string, records []map[string]any) error
	Close() error
}

// History is the saved-verse log kept on top of a Store.
type History interface {
	Store
	SaveVerse(v SavedVerse) (SavedVerse, error)
	RecentVerses(limit int) ([]SavedVerse, error)
}

var _ History = (*SQLiteStore)(nil)
