package scores

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures an Adapter.
type Options struct {
	// Remote is the scores service. Nil runs the adapter offline.
	Remote Remote
	// Local is the fallback store. Required.
	Local *LocalStore
	// Logger receives fallback warnings. Nil discards them.
	Logger *log.Logger
	// Limit is the leaderboard size requested by Load.
	Limit int

	Now   func() time.Time
	NewID func() string
}

// Adapter saves and loads runs, preferring the remote service and falling
// back to the local store on any remote failure.
type Adapter struct {
	remote    Remote
	local     *LocalStore
	logger    *log.Logger
	limit     int
	now       func() time.Time
	newID     func() string
	available atomic.Bool
}

// NewAdapter builds an adapter from opts.
func NewAdapter(opts Options) *Adapter {
	a := &Adapter{
		remote: opts.Remote,
		local:  opts.Local,
		logger: opts.Logger,
		limit:  opts.Limit,
		now:    opts.Now,
		newID:  opts.NewID,
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	if a.limit <= 0 {
		a.limit = LeaderboardSize
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	a.available.Store(a.remote != nil)
	return a
}

// Local returns the fallback store.
func (a *Adapter) Local() *LocalStore {
	return a.local
}

// ServerAvailable reports whether the last remote call succeeded.
func (a *Adapter) ServerAvailable() bool {
	return a.available.Load()
}

// CheckServer probes the remote service and updates ServerAvailable.
func (a *Adapter) CheckServer(ctx context.Context) bool {
	if a.remote == nil {
		return false
	}
	ok := a.remote.Ping(ctx) == nil
	a.available.Store(ok)
	return ok
}

// Save records a finished run. Input is normalized first. The result is
// tagged with the tier that stored it; remote failures are logged and
// absorbed by the local store.
func (a *Adapter) Save(ctx context.Context, name string, score, level int) SaveResult {
	sub := Normalize(name, score, level)

	if a.remote != nil {
		rec, err := a.remote.Submit(ctx, sub)
		if err == nil {
			a.available.Store(true)
			return SaveResult{Success: true, Record: rec, Source: SourceRemote}
		}
		a.available.Store(false)
		a.logger.Warn("remote save failed, saving locally", "player", sub.PlayerName, "score", sub.Score, "error", err)
	}

	return a.saveLocal(sub)
}

func (a *Adapter) saveLocal(sub Submission) SaveResult {
	now := a.now()
	rec := RunResult{
		ID:         a.newID(),
		PlayerName: sub.PlayerName,
		Score:      sub.Score,
		Level:      sub.Level,
		Date:       now.UTC(),
		Timestamp:  now.UnixMilli(),
		IsLocal:    true,
	}

	kept, err := a.local.Add(rec)
	if err != nil {
		a.logger.Error("local save failed", "player", rec.PlayerName, "error", err)
		return SaveResult{Success: false, Record: rec, Source: SourceLocal, Err: err}
	}
	if !kept {
		a.logger.Info("run saved below the local cut-off", "player", rec.PlayerName, "score", rec.Score)
	}
	return SaveResult{Success: true, Record: rec, Source: SourceLocal, Evicted: !kept}
}

// Load returns the leaderboard from the remote service, or the local top
// LeaderboardSize when the service cannot be reached.
func (a *Adapter) Load(ctx context.Context) LoadResult {
	if a.remote != nil {
		list, err := a.remote.Top(ctx, a.limit)
		if err == nil {
			a.available.Store(true)
			sortByScore(list)
			return LoadResult{Success: true, Scores: list, Source: SourceRemote}
		}
		a.available.Store(false)
		a.logger.Warn("remote leaderboard failed, using local scores", "error", err)
	}

	return LoadResult{
		Success: true,
		Scores:  a.local.Top(LeaderboardSize),
		Source:  SourceLocal,
	}
}
