package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konkrer/hack-or-snooze/internal/repositories/metadata"
)

func TestInitDatabase(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "snooze.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	// the migrated schema is usable through the repository
	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, metadata.KeyToken, []byte("abc")))

	value, err := repo.Get(ctx, metadata.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}

func TestInitDatabase_Idempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "snooze.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening an already-migrated database must not fail
	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
