package scores

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// Keys used in the local key/value store.
const (
	ScoresKey = "dinoGameScores"
	BestKey   = "bestScore"
)

// KV is a string key/value store, the local persistence backend.
type KV interface {
	// Get returns the value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryKV is an in-process KV. It is used when no database is available
// and in tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// LocalStore keeps the best LocalCapacity runs as one JSON array under
// ScoresKey, sorted by score descending.
type LocalStore struct {
	mu       sync.Mutex
	kv       KV
	capacity int
	logger   *log.Logger
}

// NewLocalStore wraps kv. A nil logger discards log output.
func NewLocalStore(kv KV, logger *log.Logger) *LocalStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LocalStore{kv: kv, capacity: LocalCapacity, logger: logger}
}

// read loads the stored runs. Missing, unreadable or malformed content
// reads as an empty store.
func (s *LocalStore) read() []RunResult {
	raw, ok, err := s.kv.Get(ScoresKey)
	if err != nil {
		s.logger.Error("reading local scores", "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var list []RunResult
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Warn("local scores are corrupt, treating as empty", "error", err)
		return nil
	}
	return list
}

// sortByScore orders runs by score, highest first. Equal scores keep their
// existing order, so older runs stay ahead of newer ties.
func sortByScore(list []RunResult) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
}

// Add merges r into the store, keeps the top entries and writes them back.
// It reports whether r survived the cut.
func (s *LocalStore) Add(r RunResult) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(s.read(), r)
	sortByScore(list)
	if len(list) > s.capacity {
		list = list[:s.capacity]
	}

	data, err := json.Marshal(list)
	if err != nil {
		return false, fmt.Errorf("scores: encode local scores: %w", err)
	}
	if err := s.kv.Set(ScoresKey, string(data)); err != nil {
		return false, fmt.Errorf("scores: write local scores: %w", err)
	}

	for _, kept := range list {
		if kept.ID == r.ID {
			return true, nil
		}
	}
	return false, nil
}

// Top returns up to n runs, highest score first.
func (s *LocalStore) Top(n int) []RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.read()
	sortByScore(list)
	if n > 0 && len(list) > n {
		list = list[:n]
	}
	return list
}

// Best returns the personal best, or 0 when none was recorded.
func (s *LocalStore) Best() int {
	raw, ok, err := s.kv.Get(BestKey)
	if err != nil || !ok {
		return 0
	}
	best, err := strconv.Atoi(raw)
	if err != nil || best < 0 {
		return 0
	}
	return best
}

// RecordBest stores score as the personal best if it beats the current one.
func (s *LocalStore) RecordBest(score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.Best() {
		return false, nil
	}
	if err := s.kv.Set(BestKey, strconv.Itoa(score)); err != nil {
		return false, fmt.Errorf("scores: write best score: %w", err)
	}
	return true, nil
}
