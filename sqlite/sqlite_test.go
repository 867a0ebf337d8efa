package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates the records table and stamps the schema version", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		defer db.Close()

		ctx := context.Background()
		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&count))
		assert.Zero(t, count)

		v, err := db.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})

	t.Run("fails for a directory that does not exist", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/goose.db")

		assert.Error(t, db.Open())
	})

	t.Run("uses WAL for files", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "goose.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var mode string
		require.NoError(t, db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode)
	})

	t.Run("keeps records across reopen", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "goose.db")

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		rec := &goose.Record{URL: "https://example.com/story", Title: "Kept"}
		require.NoError(t, sqlite.NewRecordService(db).CreateRecord(ctx, rec))
		require.NoError(t, db.Close())

		reopened := sqlite.NewDB(path)
		require.NoError(t, reopened.Open())
		defer reopened.Close()

		got, err := sqlite.NewRecordService(reopened).FindRecordByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "Kept", got.Title)
	})
}
