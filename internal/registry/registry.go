// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
//
// Two kinds of games exist: frame games stepped by the fixed-timestep loop,
// and text games driven by the console prompt/response runner.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Game is the interface all frame games implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tetris", "snake").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Tetris").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again on every restart.
	// The RuntimeConfig provides screen dimensions and the round's RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// In a terminal phase it must leave the state untouched.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call. Render never mutates the game.
	Render(dst *core.Screen)

	// State returns the current game state (score, phase, paused).
	State() core.GameState
}

// Kind separates frame games from text games.
type Kind int

const (
	KindFrame Kind = iota
	KindText
)

// String returns "frame" or "text".
func (k Kind) String() string {
	if k == KindText {
		return "text"
	}
	return "frame"
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Kind  Kind
}

// Factory is a function that creates a new instance of a frame game.
type Factory func() Game

// TextFactory is a function that creates a new instance of a text game.
type TextFactory func() console.Game

type entry struct {
	title string
	kind  Kind
	frame Factory
	text  TextFactory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

func add(id string, e entry) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = e
}

// Register adds a frame game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	// Get title by creating a temporary instance
	add(id, entry{title: f().Title(), kind: KindFrame, frame: f})
}

// RegisterText adds a text game factory. Panics on duplicate IDs.
func RegisterText(id string, f TextFactory) {
	add(id, entry{title: f().Title(), kind: KindText, text: f})
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title, Kind: e.kind})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// ListKind returns the registered games of one kind, sorted by ID.
func ListKind(k Kind) []GameInfo {
	var out []GameInfo
	for _, info := range List() {
		if info.Kind == k {
			out = append(out, info)
		}
	}
	return out
}

// Create instantiates a frame game by its ID.
// Returns an error if the ID is unknown or names a text game.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if e.kind != KindFrame {
		return nil, fmt.Errorf("registry: %q is a text game", id)
	}
	return e.frame(), nil
}

// CreateText instantiates a text game by its ID.
func CreateText(id string) (console.Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if e.kind != KindText {
		return nil, fmt.Errorf("registry: %q is a frame game", id)
	}
	return e.text(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// KindOf returns the kind of a registered game.
func KindOf(id string) (Kind, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.kind, ok
}
