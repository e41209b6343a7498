package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc")))

	value, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	value, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyUsername, []byte("alice")))
	require.NoError(t, repo.Set(ctx, KeyUsername, []byte("bob")))

	value, err := repo.Get(ctx, KeyUsername)
	require.NoError(t, err)
	assert.Equal(t, []byte("bob"), value)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc")))
	require.NoError(t, repo.Set(ctx, KeyUsername, []byte("alice")))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{KeyToken, KeyUsername} {
		value, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, value)
	}
}
