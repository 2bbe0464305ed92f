package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game event.
// Returns false if the key is not bound.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	k := msg.String()

	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		return core.Event{Action: core.ActionDigit, Digit: int(k[0] - '0')}, true
	}

	var a core.Action
	switch k {
	case "ctrl+c", "q":
		a = core.ActionQuit
	case "w", "up":
		a = core.ActionUp
	case "s", "down":
		a = core.ActionDown
	case "a", "left":
		a = core.ActionLeft
	case "d", "right":
		a = core.ActionRight
	case " ": // Space: flap, shoot, launch, hard drop
		a = core.ActionJump
	case "enter":
		a = core.ActionConfirm
	case "f":
		a = core.ActionFlag
	case "b", "esc":
		a = core.ActionBack
	case "p":
		a = core.ActionPause
	case "r":
		a = core.ActionRestart
	default:
		return core.Event{}, false
	}
	return core.Event{Action: a}, true
}

// MapMouse translates a left click to a pointer event in screen cells.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Event, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Event{}, false
	}
	return core.Event{Action: core.ActionPointer, X: msg.X, Y: msg.Y}, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// menuKeys are the menu bindings. They double as the menu's help bar.
type menuKeys struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Back}}
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	keys := defaultMenuKeys()

	switch {
	case key.Matches(msg, keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, keys.Up):
		return MenuActionUp
	case key.Matches(msg, keys.Down):
		return MenuActionDown
	case key.Matches(msg, keys.Select):
		return MenuActionSelect
	case key.Matches(msg, keys.Scoreboard):
		return MenuActionScoreboard
	case key.Matches(msg, keys.Back):
		return MenuActionBack
	}

	return MenuActionNone
}
