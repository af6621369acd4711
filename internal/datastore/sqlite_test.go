package datastore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_CreateTableAndInsert(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, store.Connect())
	defer func() { _ = store.Close() }()

	schema := `CREATE TABLE IF NOT EXISTS test_table (
		id INTEGER PRIMARY KEY,
		name TEXT,
		value INTEGER
	)`
	require.NoError(t, store.CreateTable(schema))

	records := []map[string]any{
		{"id": 1, "name": "foo", "value": 42},
		{"id": 2, "name": "bar", "value": 99},
	}
	require.NoError(t, store.Insert("test_table", records))

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM test_table").Scan(&count))
	assert.Equal(t, 2, count)

	assert.NoError(t, store.Insert("test_table", nil))
}

func TestSQLiteStore_InsertRollsBack(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, store.Connect())
	defer func() { _ = store.Close() }()

	require.NoError(t, store.CreateTable(`CREATE TABLE t (id INTEGER PRIMARY KEY)`))

	err := store.Insert("t", []map[string]any{{"id": 1}, {"id": 1}})
	require.Error(t, err)

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM t").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSQLiteStore_CloseWithoutConnect(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_InsertRejectsMismatchedRecords(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, store.Connect())
	defer func() { _ = store.Close() }()

	require.NoError(t, store.CreateTable(`CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)`))

	tests := []struct {
		name    string
		records []map[string]any
		want    string
	}{
		{
			name:    "fewer columns",
			records: []map[string]any{{"id": 1, "name": "a"}, {"id": 2}},
			want:    "has 1 columns, want 2",
		},
		{
			name:    "different column",
			records: []map[string]any{{"id": 1, "name": "a"}, {"id": 2, "title": "b"}},
			want:    `missing column "name"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Insert("t", tt.records)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM t").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestInsertQuery(t *testing.T) {
	assert.Equal(t, "INSERT INTO t (a, b, c) VALUES (?, ?, ?)", insertQuery("t", []string{"a", "b", "c"}))
}
