package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dinorun/internal/scores"
)

// LeaderboardKeyMap defines the key bindings for the leaderboard.
type LeaderboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// OfflineBanner is shown above scores that came from the local store.
const OfflineBanner = "offline: showing scores saved on this machine"

var medals = []string{"🥇", "🥈", "🥉"}

// LeaderboardModel is the Bubble Tea model for the leaderboard screen.
type LeaderboardModel struct {
	result   scores.LoadResult
	loading  bool
	table    table.Model
	help     help.Model
	keys     LeaderboardKeyMap
	width    int
	height   int
	done     bool
	quitting bool
}

// NewLeaderboardModel creates a leaderboard that waits for a LoadedMsg.
func NewLeaderboardModel(width, height int) LeaderboardModel {
	m := LeaderboardModel{
		loading: true,
		help:    help.New(),
		keys:    DefaultLeaderboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a table sized to the window.
func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: scores.MaxNameLen},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetResult fills the table from a load.
func (m LeaderboardModel) SetResult(res scores.LoadResult) LeaderboardModel {
	m.result = res
	m.loading = false
	m.updateTableRows()
	return m
}

// updateTableRows updates the table with current scores.
func (m *LeaderboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.result.Scores))
	for i, s := range m.result.Scores {
		date := "-"
		if !s.Date.IsZero() {
			date = s.Date.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			rankLabel(i),
			s.PlayerName,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			date,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func rankLabel(i int) string {
	if i < len(medals) {
		return medals[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

// Init initializes the leaderboard model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case LoadedMsg:
		return m.SetResult(msg.Result), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("DINO RUNNER - HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	if !m.loading && m.result.IsLocal() {
		bannerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
		b.WriteString(bannerStyle.Render(centerText(OfflineBanner, m.width)))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder.
func (m LeaderboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.loading:
		return emptyStyle.Render("Loading scores...")
	case len(m.result.Scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

// Done reports whether the user asked to leave the leaderboard.
func (m LeaderboardModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit entirely.
func (m LeaderboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// leaderboardProgram wraps a LeaderboardModel so it loads on start.
type leaderboardProgram struct {
	LeaderboardModel
	adapter *scores.Adapter
}

func (p leaderboardProgram) Init() tea.Cmd {
	return loadCmd(p.adapter)
}

func (p leaderboardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.LeaderboardModel.Update(msg)
	p.LeaderboardModel = next.(LeaderboardModel)
	if p.Done() {
		return p, tea.Quit
	}
	return p, cmd
}

// RunLeaderboard shows the leaderboard as its own program.
func RunLeaderboard(adapter *scores.Adapter, width, height int) error {
	p := tea.NewProgram(
		leaderboardProgram{LeaderboardModel: NewLeaderboardModel(width, height), adapter: adapter},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
