package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinorun/internal/scores"
)

// ioTimeout bounds a single save, load or health probe.
const ioTimeout = 10 * time.Second

// SavedMsg carries the outcome of a score save.
type SavedMsg struct {
	Result scores.SaveResult
}

// LoadedMsg carries a leaderboard load.
type LoadedMsg struct {
	Result scores.LoadResult
}

// ServerStatusMsg reports whether the scores service answered a probe.
type ServerStatusMsg struct {
	Online bool
}

func saveCmd(a *scores.Adapter, name string, score, level int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		return SavedMsg{Result: a.Save(ctx, name, score, level)}
	}
}

func loadCmd(a *scores.Adapter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		return LoadedMsg{Result: a.Load(ctx)}
	}
}

func checkServerCmd(a *scores.Adapter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		return ServerStatusMsg{Online: a.CheckServer(ctx)}
	}
}

// saveToast describes a save outcome in one line.
func saveToast(res scores.SaveResult) string {
	switch {
	case !res.Success:
		return fmt.Sprintf("Could not save score: %v", res.Err)
	case !res.IsLocal():
		return fmt.Sprintf("Score %d saved to server as %s", res.Record.Score, res.Record.PlayerName)
	case res.Evicted:
		return fmt.Sprintf("Saved locally (server unavailable), but %d is below the local top %d", res.Record.Score, scores.LocalCapacity)
	default:
		return fmt.Sprintf("Score %d saved locally (server unavailable)", res.Record.Score)
	}
}
