package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

const (
	maxScores      = 50 // Rows loaded for one game
	sessionIDWidth = 8  // Visible prefix of a session id
)

// scoreboardKeys are the bindings of both scoreboard pages.
type scoreboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "scores")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the scores of the current process. The first page
// summarizes every game played so far; Enter opens the ranked rounds of
// the selected game.
type ScoreboardModel struct {
	store   *storage.Store
	titles  map[string]string
	summary []storage.GameSummary
	table   table.Model
	help    help.Model
	keys    scoreboardKeys

	game      string // Game whose rounds are shown; empty on the summary page
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard on the summary page.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	titles := make(map[string]string)
	for _, g := range registry.List() {
		titles[g.ID] = g.Title
	}

	m := ScoreboardModel{
		store:  store,
		titles: titles,
		help:   help.New(),
		keys:   defaultScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.showSummary()
	return m
}

// showSummary loads one row per played game.
func (m *ScoreboardModel) showSummary() {
	m.game = ""
	m.summary = nil
	if m.store != nil {
		if summary, err := m.store.Summary(); err == nil {
			m.summary = summary
		}
	}

	rows := make([]table.Row, len(m.summary))
	for i, s := range m.summary {
		rows[i] = table.Row{m.title(s.GameID), strconv.Itoa(s.Rounds), strconv.Itoa(s.Best), strconv.Itoa(s.Last)}
	}
	m.table = m.newTable([]table.Column{
		{Title: "Game", Width: 18},
		{Title: "Rounds", Width: 8},
		{Title: "Best", Width: 8},
		{Title: "Last", Width: 8},
	}, rows)
}

// showGame loads the ranked rounds of one game.
func (m *ScoreboardModel) showGame(gameID string) {
	m.game = gameID
	var scores []storage.ScoreEntry
	if m.store != nil {
		scores, _ = m.store.TopScores(gameID, maxScores)
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		session := s.SessionID
		if len(session) > sessionIDWidth {
			session = session[:sessionIDWidth]
		}
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), strconv.Itoa(s.Score), session, s.CreatedAt.Format("15:04:05")}
	}
	m.table = m.newTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Session", Width: sessionIDWidth + 2},
		{Title: "Time", Width: 10},
	}, rows)
}

func (m *ScoreboardModel) newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

func (m ScoreboardModel) title(gameID string) string {
	if t, ok := m.titles[gameID]; ok {
		return t
	}
	return gameID
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.game != "" {
				m.showSummary()
				return m, nil
			}
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if m.game == "" && len(m.summary) > 0 {
				m.showGame(m.summary[m.table.Cursor()].GameID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(m.height-8, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	title := "SESSION SCORES"
	if m.game != "" {
		title = "SESSION SCORES - " + m.title(m.game)
	}

	var body string
	switch {
	case m.game == "" && len(m.summary) == 0:
		body = emptyStyle.Render("No scores this session.\nPlay a round to set one!")
	case len(m.table.Rows()) == 0:
		body = emptyStyle.Render("No rounds recorded.")
	default:
		body = m.table.View()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	for _, line := range strings.Split(boxStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
