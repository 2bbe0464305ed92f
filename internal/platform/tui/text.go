package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

const againPrompt = "Play again? (y/n) "

// TextModel plays a console game inside Bubble Tea, for hosts without a
// line-oriented stdin (SSH sessions). It follows the same protocol as
// console.Run: quit words leave, a finished round asks to play again.
type TextModel struct {
	game      console.Game
	rng       *rand.Rand
	scores    core.ScoreRecorder
	sessionID string
	logger    *zap.Logger

	input      textinput.Model
	transcript []string
	width      int
	height     int

	session    core.Session
	askAgain   bool
	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewTextModel starts the first round of g. scores may be nil.
func NewTextModel(g console.Game, scores core.ScoreRecorder, cfg core.RuntimeConfig, logger *zap.Logger, embedded bool) TextModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sessionID := uuid.NewString()

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Focus()

	m := TextModel{
		game:      g,
		rng:       rand.New(rand.NewSource(seed)),
		scores:    scores,
		sessionID: sessionID,
		logger:    logger.With(zap.String("game", g.ID()), zap.String("session", sessionID)),
		input:     ti,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		embedded:  embedded,
	}
	m.say(g.Reset(m.rng))
	m.input.Prompt = g.Prompt()
	m.logger.Info("round started")
	return m
}

// Init starts the cursor blink.
func (m TextModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the text game.
func (m TextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m.leave()
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			m.transcript = append(m.transcript, m.input.Prompt+line)
			return m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TextModel) submit(line string) (tea.Model, tea.Cmd) {
	if console.Quits(m.game, line) {
		m.logger.Info("player quit")
		return m.leave()
	}

	if m.askAgain {
		switch console.Normalize(line) {
		case "y", "yes":
			m.askAgain = false
			m.say(m.game.Reset(m.rng))
			m.input.Prompt = m.game.Prompt()
			m.logger.Info("round started")
		case "n", "no":
			return m.leave()
		default:
			m.say("Please answer y or n.")
		}
		return m, nil
	}

	reply := m.game.Handle(line)
	m.say(reply.Text)
	if !reply.Done {
		m.input.Prompt = m.game.Prompt()
		return m, nil
	}

	m.finish()
	m.askAgain = true
	m.input.Prompt = againPrompt
	return m, nil
}

func (m *TextModel) finish() {
	score := m.game.Score()
	m.session.Raise(score)
	m.session.Reset()
	m.logger.Info("round finished", zap.Int("score", score))
	if m.scores == nil {
		return
	}
	if _, err := m.scores.SaveScore(m.game.ID(), m.sessionID, score); err != nil {
		m.logger.Warn("cannot record score", zap.Error(err))
	}
}

func (m TextModel) leave() (tea.Model, tea.Cmd) {
	if m.embedded {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *TextModel) say(text string) {
	if text == "" {
		return
	}
	m.transcript = append(m.transcript, strings.Split(text, "\n")...)
}

// View renders the transcript tail and the input line.
func (m TextModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("=== %s ===", m.game.Title())))
	b.WriteString("\n")

	lines := m.transcript
	if room := m.height - 4; room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("best %d  |  type q to leave", m.session.HighScore())))
	return b.String()
}

// IsQuitting returns true if the user asked to quit entirely.
func (m TextModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left for the menu.
func (m TextModel) BackToMenu() bool {
	return m.backToMenu
}
