// Package yahtzee implements solo Yahtzee: 13 turns, five dice, up to
// three rolls a turn.
package yahtzee

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Turns and rolls per game.
const (
	Turns        = int(numCategories)
	RollsPerTurn = 3
)

// Game is one solo game.
type Game struct {
	rng       *rand.Rand
	card      Scorecard
	dice      Dice
	turn      int
	rollsLeft int
	scoring   bool
}

// New creates a new Yahtzee game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("yahtzee", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "yahtzee" }

// Title returns the display name.
func (g *Game) Title() string { return "Yahtzee" }

// Reset clears the scorecard and rolls the first turn.
func (g *Game) Reset(rng *rand.Rand) string {
	g.rng = rng
	g.card = Scorecard{}
	g.turn = 0
	return "Commands: ENTER rerolls all, 'hold 1 3' keeps dice, 'score' picks a category.\n" + g.startTurn()
}

// Prompt returns the input hint for the current stage.
func (g *Game) Prompt() string {
	if g.scoring {
		return "Choose category (number or name): "
	}
	return fmt.Sprintf("Rolls left %d> ", g.rollsLeft)
}

// Score returns the scorecard total including the upper bonus.
func (g *Game) Score() int {
	return g.card.Total()
}

// Dice returns the current roll.
func (g *Game) Dice() Dice {
	return g.dice
}

// Handle processes a roll or scoring command.
func (g *Game) Handle(line string) console.Reply {
	if g.scoring {
		return g.fill(line)
	}

	cmd := console.Normalize(line)
	switch {
	case cmd == "score" || cmd == "done":
		g.scoring = true
		return console.Say("%s", g.options())
	case cmd == "":
		return g.reroll(nil)
	}
	keep, err := console.ParseInts(strings.TrimPrefix(cmd, "hold"), 1, len(g.dice))
	if err != nil || len(keep) == 0 {
		return console.Invalid(fmt.Errorf("%w: use ENTER, 'hold 1 3 5' or 'score'", console.ErrInvalidInput))
	}
	return g.reroll(keep)
}

func (g *Game) startTurn() string {
	g.turn++
	g.rollsLeft = RollsPerTurn
	g.scoring = false
	g.roll(nil)
	return fmt.Sprintf("Turn %d of %d\n%s", g.turn, Turns, g.status())
}

// roll rerolls every die whose 1-based position is not in keep.
func (g *Game) roll(keep []int) {
	held := make(map[int]bool, len(keep))
	for _, k := range keep {
		held[k-1] = true
	}
	for i := range g.dice {
		if !held[i] {
			g.dice[i] = g.rng.Intn(6) + 1
		}
	}
	g.rollsLeft--
}

func (g *Game) reroll(keep []int) console.Reply {
	g.roll(keep)
	if g.rollsLeft == 0 {
		g.scoring = true
		return console.Say("%s\n%s", g.status(), g.options())
	}
	return console.Say("%s", g.status())
}

func (g *Game) fill(line string) console.Reply {
	c, err := parseCategory(line)
	if err != nil {
		return console.Invalid(err)
	}
	points, ok := g.card.Fill(c, g.dice)
	if !ok {
		return console.Say("%s is already used.", c)
	}
	msg := fmt.Sprintf("Scored %d for %s. Total: %d", points, c, g.card.Total())
	if g.turn >= Turns {
		return console.End("%s\n%s", msg, g.summary())
	}
	return console.Say("%s\n%s", msg, g.startTurn())
}

func parseCategory(line string) (Category, error) {
	s := console.Normalize(line)
	for c := Category(0); c < numCategories; c++ {
		if s == strings.ToLower(c.String()) {
			return c, nil
		}
	}
	n, err := console.ParseInt(s, 1, int(numCategories))
	if err != nil {
		return 0, fmt.Errorf("%w: pick a category 1-%d or by name", console.ErrInvalidInput, numCategories)
	}
	return Category(n - 1), nil
}

func (g *Game) status() string {
	parts := make([]string, len(g.dice))
	for i, d := range g.dice {
		parts[i] = fmt.Sprintf("%d:[%d]", i+1, d)
	}
	return fmt.Sprintf("Dice: %s  (rolls left: %d)", strings.Join(parts, " "), g.rollsLeft)
}

func (g *Game) options() string {
	var b strings.Builder
	b.WriteString("Available scores:")
	for _, c := range g.card.Open() {
		fmt.Fprintf(&b, "\n  %2d. %-12s %d", int(c)+1, c, Score(c, g.dice))
	}
	return b.String()
}

func (g *Game) summary() string {
	var b strings.Builder
	b.WriteString("FINAL SCORECARD")
	for c := Category(0); c < numCategories; c++ {
		fmt.Fprintf(&b, "\n  %-12s %3d", c, g.card.scores[c])
	}
	fmt.Fprintf(&b, "\n  %-12s %3d\n  %-12s %3d", "Upper Bonus", g.card.Bonus(), "TOTAL", g.card.Total())
	return b.String()
}
