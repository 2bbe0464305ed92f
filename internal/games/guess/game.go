// Package guess implements the number guessing game on the console
// protocol.
package guess

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Level is one difficulty setting.
type Level struct {
	Name    string
	Max     int
	Guesses int
}

// Levels are selected by number 1-3.
var Levels = [3]Level{
	{Name: "Easy", Max: 50, Guesses: 10},
	{Name: "Medium", Max: 100, Guesses: 7},
	{Name: "Hard", Max: 200, Guesses: 6},
}

// Game is one secret number.
type Game struct {
	rng    *rand.Rand
	level  *Level
	secret int
	used   int
	won    bool
}

// New creates a new guessing game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("guess", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "guess" }

// Title returns the display name.
func (g *Game) Title() string { return "Number Guessing" }

// Reset asks for a difficulty; the secret is drawn once it is chosen.
func (g *Game) Reset(rng *rand.Rand) string {
	g.rng = rng
	g.level = nil
	g.secret = 0
	g.used = 0
	g.won = false

	var b strings.Builder
	b.WriteString("Difficulty:")
	for i, l := range Levels {
		fmt.Fprintf(&b, "\n%d. %s (1-%d, %d guesses)", i+1, l.Name, l.Max, l.Guesses)
	}
	return b.String()
}

// Prompt returns the input hint for the current stage.
func (g *Game) Prompt() string {
	if g.level == nil {
		return "Select difficulty (1-3): "
	}
	return fmt.Sprintf("Guess %d/%d: ", g.used+1, g.level.Guesses)
}

// Score rewards unused guesses on a win.
func (g *Game) Score() int {
	if !g.won || g.level == nil {
		return 0
	}
	return (g.level.Guesses - g.used + 1) * 10
}

// Handle parses a difficulty or a guess.
func (g *Game) Handle(line string) console.Reply {
	if g.level == nil {
		n, err := console.ParseInt(line, 1, len(Levels))
		if err != nil {
			return console.Invalid(err)
		}
		g.choose(n - 1)
		return console.Say("I'm thinking of a number between 1 and %d. You have %d guesses.",
			g.level.Max, g.level.Guesses)
	}

	n, err := console.ParseInt(line, 1, g.level.Max)
	if err != nil {
		return console.Invalid(err)
	}
	g.used++
	left := g.level.Guesses - g.used

	switch {
	case n == g.secret:
		g.won = true
		return console.End("Correct! You got it in %d guesses.", g.used)
	case left == 0:
		return console.End("Out of guesses! The number was %d.", g.secret)
	case n < g.secret:
		return console.Say("Too low! Try higher. (%d guesses left)", left)
	default:
		return console.Say("Too high! Try lower. (%d guesses left)", left)
	}
}

func (g *Game) choose(i int) {
	g.level = &Levels[i]
	g.secret = g.rng.Intn(g.level.Max) + 1
}
