package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// sessionView is the screen a SessionModel is showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewScoreboard
	viewFrameGame
	viewTextGame
)

// SessionModel manages the full arcade session flow: menu -> game -> menu,
// with the scoreboard one Tab away. It is the top-level model of both the
// local menu and every SSH session.
type SessionModel struct {
	store   *storage.Store
	config  core.RuntimeConfig
	palette *Palette
	logger  *zap.Logger

	view       sessionView
	menu       MenuModel
	scoreboard ScoreboardModel
	frame      Model
	text       TextModel
	quitting   bool
}

// NewSessionModel creates a new session model. A nil palette renders with
// the local terminal's color profile.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, palette *Palette, logger *zap.Logger) SessionModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	if palette == nil {
		palette = defaultPalette
	}
	return SessionModel{
		store:   store,
		config:  cfg,
		palette: palette,
		logger:  logger,
		menu:    NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewScoreboard:
		return m.updateScoreboard(msg)
	case viewFrameGame:
		return m.updateFrame(msg)
	case viewTextGame:
		return m.updateText(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, _ := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.start(*m.menu.Selected())
	}
	return m, nil
}

// start creates the selected game. The menu only lists registered games,
// so a creation failure just returns to the menu.
func (m SessionModel) start(item MenuItem) (tea.Model, tea.Cmd) {
	cfg := m.menu.Config()
	m.config = cfg

	switch item.Kind {
	case registry.KindText:
		g, err := registry.CreateText(item.GameID)
		if err != nil {
			m.logger.Warn("cannot create game", zap.String("game", item.GameID), zap.Error(err))
			return m.backToMenu()
		}
		var scores core.ScoreRecorder
		if m.store != nil {
			scores = m.store
		}
		m.text = NewTextModel(g, scores, cfg, m.logger, true)
		m.view = viewTextGame
		return m, m.text.Init()

	default:
		g, err := registry.Create(item.GameID)
		if err != nil {
			m.logger.Warn("cannot create game", zap.String("game", item.GameID), zap.Error(err))
			return m.backToMenu()
		}
		m.frame = NewModel(g, m.store, cfg, m.logger, Embedded(), WithPalette(m.palette))
		m.view = viewFrameGame
		return m, m.frame.Init()
	}
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}
	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateFrame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.frame.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.frame = gm
	}
	if m.frame.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.frame.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateText(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.text.Update(msg)
	if tm, ok := newModel.(TextModel); ok {
		m.text = tm
	}
	if m.text.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewScoreboard:
		return m.scoreboard.View()
	case viewFrameGame:
		return m.frame.View()
	case viewTextGame:
		return m.text.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven arcade in the local terminal until the
// user quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, logger *zap.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, nil, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
