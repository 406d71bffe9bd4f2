package kv_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"calm/internal/platform/kv"
)

func exerciseStore(t *testing.T, store kv.Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "zen_streak")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, "tsec_theme", "light"))
	v, ok, err := store.Get(ctx, "tsec_theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "light", v)

	require.NoError(t, store.SetMany(ctx, map[string]string{"zen_streak": "3", "zen_last_date": "2024-01-01"}))
	require.NoError(t, store.SetMany(ctx, map[string]string{"zen_streak": "4", "zen_last_date": "2024-01-02"}))
	v, _, _ = store.Get(ctx, "zen_streak")
	require.Equal(t, "4", v)
	v, _, _ = store.Get(ctx, "zen_last_date")
	require.Equal(t, "2024-01-02", v)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, kv.NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()
	store, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "calm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	exerciseStore(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "calm.db")
	first, err := kv.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.SetMany(context.Background(), map[string]string{"zen_streak": "7"}))
	require.NoError(t, first.Close())

	second, err := kv.NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	v, ok, err := second.Get(context.Background(), "zen_streak")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "7", v)
}

func TestSQLiteStoreRejectsCanceledContext(t *testing.T) {
	t.Parallel()
	store, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "calm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, store.SetMany(ctx, map[string]string{"zen_streak": "1", "zen_last_date": "2024-01-01"}))

	_, ok, err := store.Get(context.Background(), "zen_streak")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteStoreRollsBackFailedBatch(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "calm.db")
	store, err := kv.NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	// Reject one key so the batch fails after its first insert.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TRIGGER reject_streak BEFORE INSERT ON kv
WHEN NEW.key = 'zen_streak' BEGIN SELECT RAISE(ABORT, 'rejected'); END;`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ctx := context.Background()
	err = store.SetMany(ctx, map[string]string{"zen_last_date": "2024-01-01", "zen_streak": "1"})
	require.ErrorContains(t, err, "zen_streak")

	for _, key := range []string{"zen_last_date", "zen_streak"} {
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.False(t, ok, key)
	}
}
