package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestFS(t *testing.T) {
	for _, dialect := range []Dialect{Postgres, SQLite} {
		t.Run(string(dialect), func(t *testing.T) {
			source, err := FS(dialect)
			require.NoError(t, err)

			names, err := fs.Glob(source, "*.sql")
			require.NoError(t, err)
			assert.Equal(t, []string{"00001_create_items.sql", "00002_create_sync_metadata.sql"}, names)
		})
	}

	_, err := FS("mysql")
	assert.Error(t, err)
}

func TestUp_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	applied, err := Up(ctx, db, SQLite)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	version, err := Version(ctx, db, SQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	for _, table := range []string{"items", "sync_metadata"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}

	// Nothing pending on a second run
	applied, err = Up(ctx, db, SQLite)
	require.NoError(t, err)
	assert.Zero(t, applied)
}

func TestUp_UnknownDialect(t *testing.T) {
	_, err := Up(context.Background(), openSQLite(t), "oracle")
	assert.ErrorContains(t, err, "unsupported migration dialect")
}
