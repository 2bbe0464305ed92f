// Package dice implements a dice rolling simulator.
package dice

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Dice count limits and the largest roll drawn as faces.
const (
	MinDice  = 1
	MaxDice  = 10
	MaxFaces = 5
	Sides    = 6
)

// pips marks the filled positions of a 3x3 pip grid per face.
var pips = [Sides + 1][3]string{
	{},
	{"   ", " ● ", "   "},
	{"●  ", "   ", "  ●"},
	{"●  ", " ● ", "  ●"},
	{"● ●", "   ", "● ●"},
	{"● ●", " ● ", "● ●"},
	{"● ●", "● ●", "● ●"},
}

// Game rolls dice on request. A round lasts until the player quits.
type Game struct {
	rng  *rand.Rand
	n    int
	last []int
	best int
}

// New creates a new dice roller.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("dice", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "dice" }

// Title returns the display name.
func (g *Game) Title() string { return "Dice Roller" }

// Reset starts with two dice and rolls them.
func (g *Game) Reset(rng *rand.Rand) string {
	g.rng = rng
	g.n = 2
	g.best = 0
	return g.roll()
}

// Prompt explains the commands.
func (g *Game) Prompt() string {
	return fmt.Sprintf("ENTER to roll again, or number of dice (%d-%d): ", MinDice, MaxDice)
}

// Score is the highest total rolled.
func (g *Game) Score() int {
	return g.best
}

// Handle re-rolls on ENTER; a number changes the dice count first.
func (g *Game) Handle(line string) console.Reply {
	if strings.TrimSpace(line) != "" {
		n, err := console.ParseInt(line, MinDice, MaxDice)
		if err != nil {
			return console.Invalid(err)
		}
		g.n = n
		return console.Say("Set to %d dice.\n%s", g.n, g.roll())
	}
	return console.Say("%s", g.roll())
}

func (g *Game) roll() string {
	g.last = make([]int, g.n)
	total := 0
	for i := range g.last {
		g.last[i] = g.rng.Intn(Sides) + 1
		total += g.last[i]
	}
	g.best = max(g.best, total)

	var b strings.Builder
	fmt.Fprintf(&b, "Rolling %d dice...\n%s\n", g.n, Faces(g.last))
	fmt.Fprintf(&b, "Total: %d", total)
	if g.n > 1 {
		fmt.Fprintf(&b, "  Average: %.1f", float64(total)/float64(g.n))
	}
	return b.String()
}

// Faces draws up to MaxFaces dice as boxes side by side; more dice are
// listed as numbers.
func Faces(values []int) string {
	if len(values) > MaxFaces {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("[%d]", v)
		}
		return strings.Join(parts, " ")
	}
	rows := make([][]string, 5)
	for _, v := range values {
		p := pips[v]
		rows[0] = append(rows[0], "┌───────┐")
		for i := range 3 {
			rows[i+1] = append(rows[i+1], "│ "+spread(p[i])+" │")
		}
		rows[4] = append(rows[4], "└───────┘")
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.Join(r, "  ")
	}
	return strings.Join(lines, "\n")
}

// spread widens a 3-cell pip row to 5 columns.
func spread(s string) string {
	r := []rune(s)
	return string([]rune{r[0], ' ', r[1], ' ', r[2]})
}
