// Package war implements the War card game against the computer.
package war

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/cards"
	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// MaxRounds caps a game; the bigger pile then wins.
const MaxRounds = 50

// Game is one game of War.
type Game struct {
	player   cards.Deck
	computer cards.Deck
	round    int
}

// New creates a new War game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("war", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "war" }

// Title returns the display name.
func (g *Game) Title() string { return "War" }

// Reset shuffles and splits the deck.
func (g *Game) Reset(rng *rand.Rand) string {
	g.deal(cards.Shuffled(rng))
	return fmt.Sprintf("Higher card takes both. %d rounds at most.", MaxRounds)
}

func (g *Game) deal(d cards.Deck) {
	half := len(d) / 2
	g.player = append(cards.Deck(nil), d[:half]...)
	g.computer = append(cards.Deck(nil), d[half:]...)
	g.round = 0
}

// Prompt shows the pile sizes.
func (g *Game) Prompt() string {
	return fmt.Sprintf("Round %d  You: %d  Computer: %d  Press ENTER to draw: ",
		g.round+1, g.player.Len(), g.computer.Len())
}

// Score is the player's pile size.
func (g *Game) Score() int {
	return g.player.Len()
}

// Handle draws on an empty line.
func (g *Game) Handle(line string) console.Reply {
	if strings.TrimSpace(line) != "" {
		return console.Invalid(fmt.Errorf("%w: press ENTER to draw or q to quit", console.ErrInvalidInput))
	}
	text := g.play()
	if g.round >= MaxRounds || g.player.Len() == 0 || g.computer.Len() == 0 {
		return console.End("%s\n%s", text, g.result())
	}
	return console.Say("%s", text)
}

// play resolves one round. A tie goes to a one-card war; a tied war
// goes to the player.
func (g *Game) play() string {
	pc, _ := g.player.Draw()
	cc, _ := g.computer.Draw()
	g.round++

	var b strings.Builder
	fmt.Fprintf(&b, "You drew %s, computer drew %s. ", pc, cc)
	switch {
	case pc.Rank > cc.Rank:
		b.WriteString("You win this round!")
		g.player = append(g.player, pc, cc)
	case cc.Rank > pc.Rank:
		b.WriteString("Computer wins this round!")
		g.computer = append(g.computer, pc, cc)
	default:
		b.WriteString("WAR! ")
		if g.player.Len() == 0 || g.computer.Len() == 0 {
			b.WriteString("Not enough cards, each keeps its own.")
			g.player = append(g.player, pc)
			g.computer = append(g.computer, cc)
			break
		}
		pw, _ := g.player.Draw()
		cw, _ := g.computer.Draw()
		fmt.Fprintf(&b, "You: %s  Computer: %s. ", pw, cw)
		if pw.Rank >= cw.Rank {
			b.WriteString("You win the war!")
			g.player = append(g.player, pc, cc, pw, cw)
		} else {
			b.WriteString("Computer wins the war!")
			g.computer = append(g.computer, pc, cc, pw, cw)
		}
	}
	return b.String()
}

func (g *Game) result() string {
	p, c := g.player.Len(), g.computer.Len()
	switch {
	case p > c:
		return fmt.Sprintf("Final: %d to %d. YOU WIN THE WAR!", p, c)
	case c > p:
		return fmt.Sprintf("Final: %d to %d. Computer wins the war.", p, c)
	}
	return fmt.Sprintf("Final: %d to %d. It's a draw!", p, c)
}
