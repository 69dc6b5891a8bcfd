package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newStore(t *testing.T) *sqlite.KVStore {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "cardboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewKVStore(db)
}

func TestKVStore_CRUD(t *testing.T) {
	ctx := testCtx()
	store := newStore(t)

	_, err := store.Get(ctx, "card_a")
	require.ErrorIs(t, err, port.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "card_a", []byte(`{"isPinned":true}`)))
	got, err := store.Get(ctx, "card_a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"isPinned":true}`, string(got))

	require.NoError(t, store.Set(ctx, "card_a", []byte(`{"isPinned":false}`)))
	got, err = store.Get(ctx, "card_a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"isPinned":false}`, string(got))

	require.NoError(t, store.Delete(ctx, "card_a"))
	require.NoError(t, store.Delete(ctx, "card_a"), "deleting an absent key is not an error")
	_, err = store.Get(ctx, "card_a")
	assert.ErrorIs(t, err, port.ErrKeyNotFound)
}

func TestKVStore_KeysByPrefix(t *testing.T) {
	ctx := testCtx()
	store := newStore(t)

	for _, key := range []string{"card_b", "card_a", "canvas_transform", "cardXa", "metric_visibility_s_m"} {
		require.NoError(t, store.Set(ctx, key, []byte("1")))
	}

	keys, err := store.Keys(ctx, "card_")
	require.NoError(t, err)
	assert.Equal(t, []string{"card_a", "card_b"}, keys, "underscore in the prefix is literal")

	all, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	require.NoError(t, store.Clear(ctx))
	all, err = store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "cardboard.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.RunMigrations(ctx, db))

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	require.NoError(t, db.Close())

	// Reopening runs migrations again without error.
	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
