package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for this round, drawn by the lifecycle controller

	ConfigPath string // Optional per-game config file (.yaml or .toml)
	Difficulty string // Optional preset: easy, normal, hard or fixed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means "draw from the process-wide source"
	}
}

// PlayerID identifies a side in two-player games.
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

// Other returns the opposing player.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int   // Current score
	HighScore int   // Best score seen this process
	Phase     Phase // Current simulation phase
	Paused    bool  // Whether the game is paused
}

// GameOver reports whether the game reached a terminal phase,
// either by losing or by winning.
func (s GameState) GameOver() bool {
	return s.Phase.IsTerminal()
}

// Won reports whether the game ended in a win.
func (s GameState) Won() bool {
	return s.Phase == PhaseWon
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
