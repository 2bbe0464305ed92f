package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/engine"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// Model is the Bubble Tea model for running a frame game. Key and mouse
// messages feed an input queue; each TickMsg drains it into one
// controller step.
type Model struct {
	ctrl      *engine.Controller
	queue     *engine.Queue
	clock     *engine.Clock
	loop      uint64
	screen    *core.Screen
	palette   *Palette
	keyMapper *KeyMapper
	logger    *zap.Logger
	pending   []engine.ControllerOption

	embedded   bool // Back returns to a parent menu instead of quitting
	quitting   bool
	backToMenu bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPalette renders with p instead of the default palette.
func WithPalette(p *Palette) ModelOption {
	return func(m *Model) { m.palette = p }
}

// Embedded makes Back on a finished or paused game leave for the menu.
func Embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// WithControllerOptions passes extra options to the game controller.
func WithControllerOptions(opts ...engine.ControllerOption) ModelOption {
	return func(m *Model) { m.pending = append(m.pending, opts...) }
}

// NewModel creates a Bubble Tea model for the given game. Finished rounds
// are recorded in store when it is not nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *zap.Logger, opts ...ModelOption) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		keyMapper: NewKeyMapper(),
		palette:   defaultPalette,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(&m)
	}

	ctrlOpts := append([]engine.ControllerOption{engine.WithLogger(logger)}, m.pending...)
	if store != nil {
		ctrlOpts = append(ctrlOpts, engine.WithScoreRecorder(store))
	}
	m.pending = nil

	m.ctrl = engine.NewController(game, cfg, ctrlOpts...)
	m.queue = engine.NewQueue(engine.DefaultHoldTicks)
	m.clock = engine.NewClock(m.ctrl.Config().TickRate)
	m.loop = nextLoopID()
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the tick loop. The controller already reset the game.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.clock, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	ev, ok := m.keyMapper.MapKey(msg)
	if !ok {
		return m, nil
	}

	switch ev.Action {
	case core.ActionQuit:
		m.ctrl.Quit()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		state := m.ctrl.State()
		if !state.Phase.IsTerminal() && !state.Paused {
			return m, nil
		}
		if !m.embedded {
			m.ctrl.Quit()
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	m.queue.Push(ev)
	return m, nil
}

// handleResize resizes the screen buffer. A round still in play restarts
// at the new size; a finished one keeps its final frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.ctrl.Resize(msg.Width, msg.Height)

	if !m.ctrl.State().Phase.IsTerminal() {
		m.ctrl.Reset()
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.ctrl.Step(m.queue.Sample(m.ctrl.State().Phase))
	if m.ctrl.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.clock, m.loop)
}

// saveScreenshot writes the current frame as plain text to
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.ctrl.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", zap.Error(err))
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", zap.Error(err))
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.ctrl.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", zap.Error(err))
		return
	}
	m.logger.Info("screenshot saved", zap.String("path", path))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.ctrl.Render(m.screen)
	return m.palette.Render(m.screen)
}

// State returns the latest game state.
func (m Model) State() core.GameState {
	return m.ctrl.State()
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *zap.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
