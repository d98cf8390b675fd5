package scores

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenKV fails every call.
type brokenKV struct{}

func (brokenKV) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (brokenKV) Set(string, string) error         { return errors.New("disk gone") }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name               string
		inName             string
		inScore, inLevel   int
		wantName           string
		wantScore, wantLvl int
	}{
		{"passthrough", "Ann", 42, 3, "Ann", 42, 3},
		{"trimmed", "  Bob \t", 1, 1, "Bob", 1, 1},
		{"blank name", "   ", 5, 2, DefaultName, 5, 2},
		{"negative score", "Cy", -7, 2, "Cy", 0, 2},
		{"zero level", "Di", 3, 0, "Di", 3, 1},
		{"long name", "abcdefghijklmnopqrstuvwxyz", 1, 1, "abcdefghijklmnopqrst", 1, 1},
		{"multibyte name", "ñññññññññññññññññññññññ", 1, 1, "ññññññññññññññññññññ", 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.inName, tc.inScore, tc.inLevel)
			assert.Equal(t, Submission{PlayerName: tc.wantName, Score: tc.wantScore, Level: tc.wantLvl}, got)
		})
	}
}

func TestLocalStoreKeepsTopFifty(t *testing.T) {
	store := NewLocalStore(NewMemoryKV(), nil)

	for i := 0; i < 60; i++ {
		// Scores arrive out of order: 0, 37, 14, 51, ...
		score := (i * 37) % 60
		_, err := store.Add(RunResult{ID: fmt.Sprint(i), PlayerName: "p", Score: score, Level: 1})
		require.NoError(t, err)
	}

	all := store.Top(0)
	require.Len(t, all, LocalCapacity)
	for i, r := range all {
		assert.Equal(t, 59-i, r.Score, "rank %d", i)
	}
}

func TestLocalStoreReportsEviction(t *testing.T) {
	store := NewLocalStore(NewMemoryKV(), nil)
	for i := 0; i < LocalCapacity; i++ {
		_, err := store.Add(RunResult{ID: fmt.Sprint(i), Score: 100 + i})
		require.NoError(t, err)
	}

	kept, err := store.Add(RunResult{ID: "low", Score: 1})
	require.NoError(t, err)
	assert.False(t, kept)

	// A tie with the last place loses to the older entry.
	kept, err = store.Add(RunResult{ID: "tie", Score: 100})
	require.NoError(t, err)
	assert.False(t, kept)

	kept, err = store.Add(RunResult{ID: "high", Score: 1000})
	require.NoError(t, err)
	assert.True(t, kept)
	assert.Equal(t, "high", store.Top(1)[0].ID)
}

func TestLocalStoreCorruptContent(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ScoresKey, "{not json"))
	store := NewLocalStore(kv, nil)

	assert.Empty(t, store.Top(LeaderboardSize))

	kept, err := store.Add(RunResult{ID: "a", Score: 3})
	require.NoError(t, err)
	assert.True(t, kept)
	assert.Len(t, store.Top(LeaderboardSize), 1)
}

func TestLocalStoreUnavailable(t *testing.T) {
	store := NewLocalStore(brokenKV{}, nil)

	assert.Empty(t, store.Top(10))
	_, err := store.Add(RunResult{ID: "a", Score: 3})
	assert.Error(t, err)
	assert.Equal(t, 0, store.Best())
}

func TestLocalStoreBest(t *testing.T) {
	store := NewLocalStore(NewMemoryKV(), nil)
	assert.Equal(t, 0, store.Best())

	updated, err := store.RecordBest(12)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = store.RecordBest(5)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 12, store.Best())
}
