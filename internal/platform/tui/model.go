package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/games/dino"
	"github.com/vovakirdan/dinorun/internal/scores"
)

// stage is the part of the session the player is in.
type stage int

const (
	stagePlaying     stage = iota
	stagePrompt            // Game over, asking for a name
	stageSaving            // Waiting for the adapter
	stageResult            // Save finished, offering restart or leaderboard
	stageLeaderboard       // Leaderboard on screen
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	toastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a Model.
type Options struct {
	Game    *dino.Game
	Adapter *scores.Adapter
	Config  core.RuntimeConfig
	// PlayerName pre-fills the name prompt. Blank names are saved as
	// scores.DefaultName.
	PlayerName string
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a Dino Runner session.
type Model struct {
	game       *dino.Game
	adapter    *scores.Adapter
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	logger     *log.Logger

	stage      stage
	name       textinput.Model
	playerName string
	toast      string
	online     bool
	help       help.Model
	resultKeys resultKeys
	board      LeaderboardModel
	quitting   bool
}

// NewModel creates a model; the game is reset when the program starts.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = scores.DefaultName
	ti.CharLimit = scores.MaxNameLen
	ti.Width = scores.MaxNameLen + 1
	ti.Prompt = "> "

	opts.Game.SetBest(opts.Adapter.Local().Best())

	return Model{
		game:       opts.Game,
		adapter:    opts.Adapter,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  opts.Game.State(),
		keys:       NewKeyMapper(),
		logger:     logger,
		name:       ti,
		playerName: strings.TrimSpace(opts.PlayerName),
		help:       help.New(),
		resultKeys: defaultResultKeys(),
		online:     opts.Adapter.ServerAvailable(),
	}
}

// Init starts the run, the tick loop and a server probe.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), checkServerCmd(m.adapter))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case SavedMsg:
		return m.handleSaved(msg)

	case ServerStatusMsg:
		m.online = msg.Online
		return m, nil

	case LoadedMsg:
		m.online = !msg.Result.IsLocal()
		m.board = m.board.SetResult(msg.Result)
		return m, nil
	}

	if m.stage == stagePrompt {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes keyboard input by stage.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.stage {
	case stagePrompt:
		return m.updatePrompt(msg)
	case stageLeaderboard:
		return m.updateLeaderboard(msg)
	case stageSaving:
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stage == stageResult {
		switch action {
		case core.ActionRestart:
			m.inputFrame.Set(core.ActionRestart)
		case core.ActionScores:
			return m.openLeaderboard()
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.playerName = strings.TrimSpace(m.name.Value())
		m.name.Blur()
		m.stage = stageSaving
		m.toast = "Saving score..."
		return m, saveCmd(m.adapter, m.playerName, m.gameState.Score, m.gameState.Level)

	case tea.KeyEsc:
		m.name.Blur()
		m.stage = stageResult
		m.toast = "Score not saved"
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) updateLeaderboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board, cmd := m.board.Update(msg)
	m.board = board.(LeaderboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.Done():
		m.stage = stageResult
		return m, nil
	}
	return m, cmd
}

func (m Model) openLeaderboard() (tea.Model, tea.Cmd) {
	m.stage = stageLeaderboard
	m.board = NewLeaderboardModel(m.config.ScreenW, m.config.ScreenH)
	return m, loadCmd(m.adapter)
}

// handleResize processes window resize events. The world is kept: it is
// simulated in its own units and only scaled when drawn.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	board, _ := m.board.Update(msg)
	m.board = board.(LeaderboardModel)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	switch {
	case m.gameState.GameOver && !wasOver:
		m.recordBest(m.gameState.Score)
		m.stage = stagePrompt
		m.toast = ""
		m.name.SetValue(m.playerName)
		m.name.CursorEnd()
		cmds = append(cmds, m.name.Focus())

	case !m.gameState.GameOver && wasOver:
		m.stage = stagePlaying
		m.toast = ""
	}

	return m, tea.Batch(cmds...)
}

// handleSaved shows the save outcome. Results of saves from an earlier run
// still update the toast.
func (m Model) handleSaved(msg SavedMsg) (tea.Model, tea.Cmd) {
	res := msg.Result
	m.online = !res.IsLocal()
	m.toast = saveToast(res)
	if m.stage == stageSaving {
		m.stage = stageResult
	}
	if !res.Success {
		m.logger.Error("saving score failed", "player", res.Record.PlayerName, "error", res.Err)
	}
	return m, nil
}

func (m Model) recordBest(score int) {
	if _, err := m.adapter.Local().RecordBest(score); err != nil {
		m.logger.Warn("could not record personal best", "score", score, "error", err)
	}
}

// footer is the status area under the playfield, empty while playing.
func (m Model) footer() string {
	switch m.stage {
	case stagePrompt:
		return promptStyle.Render("New run over! Enter your name:") + "\n" +
			m.name.View() + "\n" +
			mutedStyle.Render("enter save • esc skip")
	case stageSaving:
		return toastStyle.Render(m.toast)
	case stageResult:
		status := "server: offline"
		if m.online {
			status = "server: online"
		}
		return toastStyle.Render(m.toast) + "\n" +
			mutedStyle.Render(status) + "  " + m.help.View(m.resultKeys)
	}
	return ""
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.stage == stageLeaderboard {
		return m.board.View()
	}

	footer := m.footer()
	height := m.config.ScreenH
	if footer != "" {
		height -= lipgloss.Height(footer)
	}
	height = max(1, height)
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != height {
		m.screen.Resize(m.config.ScreenW, height)
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if footer != "" {
		out += "\n" + strings.TrimRight(footer, "\n")
	}
	return out
}

// Stage names the current stage, for logs and tests.
func (m Model) Stage() string {
	switch m.stage {
	case stagePlaying:
		return "playing"
	case stagePrompt:
		return "prompt"
	case stageSaving:
		return "saving"
	case stageResult:
		return "result"
	case stageLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
