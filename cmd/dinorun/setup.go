package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinorun/internal/scores"
	"github.com/vovakirdan/dinorun/internal/storage"
)

// newLogger builds a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(appCfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
		logger.Warn("unknown log level, using info", "level", appCfg.LogLevel)
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the TUI log file so logs stay off the alt screen.
// It falls back to discarding output.
func openLogFile() (io.Writer, func()) {
	path := expandHome(appCfg.LogFile)
	if path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}

// openAdapter wires the score adapter: the SQLite kv table as the local
// store (in memory if the database cannot be opened) and the scores
// service unless running offline.
func openAdapter(logger *log.Logger) (*scores.Adapter, func(), error) {
	closeFn := func() {}

	var kv scores.KV
	store, err := storage.Open(appCfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, keeping scores in memory", "path", appCfg.DBPath, "error", err)
		kv = scores.NewMemoryKV()
	} else {
		kv = store
		closeFn = func() { store.Close() }
	}

	opts := scores.Options{
		Local:  scores.NewLocalStore(kv, logger),
		Logger: logger,
	}
	if !appCfg.Offline {
		client, err := scores.NewClient(appCfg.Endpoint, appCfg.HTTPTimeout)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("scores endpoint: %w", err)
		}
		opts.Remote = client
	}

	return scores.NewAdapter(opts), closeFn, nil
}

// requestTimeout bounds a one-shot save or load: one remote attempt plus
// the local fallback.
func requestTimeout() time.Duration {
	if appCfg.HTTPTimeout <= 0 {
		return 30 * time.Second
	}
	return 2 * appCfg.HTTPTimeout
}
