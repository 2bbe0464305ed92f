// Package rps implements rock-paper-scissors against the computer.
package rps

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Move is a hand shape.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

var moveNames = [...]string{"rock", "paper", "scissors"}

// String returns the move name.
func (m Move) String() string {
	return moveNames[m]
}

// Beats reports whether m wins against o.
func (m Move) Beats(o Move) bool {
	return (m+3-o)%3 == 1
}

// ParseMove accepts a full move name or its first letter.
func ParseMove(s string) (Move, error) {
	switch console.Normalize(s) {
	case "r", "rock":
		return Rock, nil
	case "p", "paper":
		return Paper, nil
	case "s", "scissors":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: enter rock, paper or scissors (r/p/s)", console.ErrInvalidInput)
}

// Game keeps the running score. A round lasts until the player quits.
type Game struct {
	rng      *rand.Rand
	player   int
	computer int
	ties     int
}

// New creates a new game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("rps", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "rps" }

// Title returns the display name.
func (g *Game) Title() string { return "Rock Paper Scissors" }

// Reset clears the score.
func (g *Game) Reset(rng *rand.Rand) string {
	g.rng = rng
	g.player, g.computer, g.ties = 0, 0, 0
	return "Best the computer. Type q to stop."
}

// Prompt asks for a move.
func (g *Game) Prompt() string {
	return "Your choice (rock/paper/scissors or r/p/s): "
}

// Score is the number of rounds the player won.
func (g *Game) Score() int {
	return g.player
}

// Handle plays one throw.
func (g *Game) Handle(line string) console.Reply {
	m, err := ParseMove(line)
	if err != nil {
		return console.Invalid(err)
	}
	return console.Say("%s", g.play(m, Move(g.rng.Intn(3))))
}

func (g *Game) play(m, cpu Move) string {
	var verdict string
	switch {
	case m == cpu:
		g.ties++
		verdict = "It's a tie!"
	case m.Beats(cpu):
		g.player++
		verdict = "You win!"
	default:
		g.computer++
		verdict = "Computer wins!"
	}
	return fmt.Sprintf("You chose %s, computer chose %s. %s\nScore - You: %d | Computer: %d | Ties: %d",
		m, cpu, verdict, g.player, g.computer, g.ties)
}
