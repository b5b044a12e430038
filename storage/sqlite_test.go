package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Seed: 7, Level: 2})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	n, err := store.RunCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBestRunsOrdering(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{Seed: 1, Level: 2, Stickers: 1, Frames: 900},
		{Seed: 2, Level: 4, Stickers: 3, Won: true, Frames: 5000},
		{Seed: 3, Level: 4, Stickers: 3, Won: true, Frames: 4000},
		{Seed: 4, Level: 3, Stickers: 2, Frames: 3000},
		{Seed: 5, Level: 4, Stickers: 2, Won: false, Frames: 3500},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	best, err := store.BestRuns(10)
	require.NoError(t, err)
	require.Len(t, best, 5)

	var seeds []int64
	for _, r := range best {
		seeds = append(seeds, r.Seed)
	}
	assert.Equal(t, []int64{3, 2, 5, 4, 1}, seeds)
	assert.True(t, best[0].Won)
	assert.False(t, best[2].Won)
	assert.False(t, best[0].CreatedAt.IsZero())

	top, err := store.BestRuns(2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestBestRunsEmpty(t *testing.T) {
	store := openTemp(t)
	best, err := store.BestRuns(0)
	require.NoError(t, err)
	assert.Empty(t, best)
}
