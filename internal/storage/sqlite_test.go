package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dinorun/internal/scores"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var base = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func entry(id string, score int, offset time.Duration) ScoreEntry {
	return ScoreEntry{ID: id, PlayerName: "p-" + id, Score: score, Level: 1 + score/10, CreatedAt: base.Add(offset)}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveScore(ctx, entry("a", 7, 0)))
	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, high)

	v, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScore(ctx, entry("a", 100, 0)))
	require.NoError(t, store.SaveScore(ctx, entry("b", 50, time.Second)))
	require.NoError(t, store.SaveScore(ctx, entry("c", 200, 2*time.Second)))

	scores, err := store.TopScores(ctx, 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, []int{200, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.Equal(t, "c", scores[0].ID)
	assert.Equal(t, "p-c", scores[0].PlayerName)
	assert.Equal(t, 21, scores[0].Level)
	assert.True(t, scores[0].CreatedAt.Equal(base.Add(2*time.Second)), "created_at = %v", scores[0].CreatedAt)
}

func TestStoreDuplicateID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScore(ctx, entry("a", 1, 0)))
	assert.Error(t, store.SaveScore(ctx, entry("a", 2, 0)))
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveScore(ctx, entry(fmt.Sprint(i), (i+1)*100, time.Duration(i)*time.Second)))
	}

	scores, err := store.TopScores(ctx, 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 500, scores[0].Score)
	assert.Equal(t, 400, scores[1].Score)
	assert.Equal(t, 300, scores[2].Score)

	// Non-positive limits fall back to 10.
	scores, err = store.TopScores(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, scores, 5)
}

func TestStoreTiesOldestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScore(ctx, entry("new", 10, time.Minute)))
	require.NoError(t, store.SaveScore(ctx, entry("old", 10, 0)))

	scores, err := store.TopScores(ctx, 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "old", scores[0].ID)
	assert.Equal(t, "new", scores[1].ID)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore(ctx, entry("a", 100, 0))
	store.SaveScore(ctx, entry("b", 300, 0))
	store.SaveScore(ctx, entry("c", 200, 0))

	high, err = store.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveScore(ctx, entry("a", 100, 0))
	store.SaveScore(ctx, entry("b", 200, 0))
	require.NoError(t, store.Set("keep", "me"))

	require.NoError(t, store.ClearScores(ctx))

	scores, err := store.TopScores(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	v, ok, err := store.Get("keep")
	require.NoError(t, err)
	assert.True(t, ok, "clearing scores must not touch the kv table")
	assert.Equal(t, "me", v)
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("dinoGameScores", "[]"))
	require.NoError(t, store.Set("dinoGameScores", `[{"id":"x"}]`))

	v, ok, err := store.Get("dinoGameScores")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, v)
}

func TestStoreCancelledContext(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.SaveScore(ctx, entry("a", 1, 0)))
	_, err := store.TopScores(ctx, 10)
	assert.Error(t, err)
}

func TestStoreBacksLocalScores(t *testing.T) {
	store := openTestStore(t)
	local := scores.NewLocalStore(store, nil)

	for i, s := range []int{5, 40, 12} {
		_, err := local.Add(scores.RunResult{ID: fmt.Sprint(i), PlayerName: "p", Score: s, Level: 1})
		require.NoError(t, err)
	}
	_, err := local.RecordBest(40)
	require.NoError(t, err)

	reopened := scores.NewLocalStore(store, nil)
	top := reopened.Top(scores.LeaderboardSize)
	require.Len(t, top, 3)
	assert.Equal(t, 40, top[0].Score)
	assert.Equal(t, 5, top[2].Score)
	assert.Equal(t, 40, reopened.Best())
}
