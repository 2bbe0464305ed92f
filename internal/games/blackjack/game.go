// Package blackjack implements single-player Blackjack against the dealer
// on the console protocol.
package blackjack

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/cards"
	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

const (
	StartBalance = 100
	MaxBet       = 10
	DealerStands = 17
)

type stage int

const (
	stagePlaying stage = iota
	stageBetween
	stageBroke
)

// Game holds one session at the table. A round lasts until the player
// runs out of money.
type Game struct {
	rng     *rand.Rand
	deck    cards.Deck
	player  []cards.Card
	dealer  []cards.Card
	balance int
	best    int
	bet     int
	hands   int
	stage   stage
}

// New creates a new Blackjack table.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("blackjack", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "blackjack" }

// Title returns the display name.
func (g *Game) Title() string { return "Blackjack" }

// Reset sits down with a fresh balance and deals the first hand.
func (g *Game) Reset(rng *rand.Rand) string {
	g.rng = rng
	g.balance = StartBalance
	g.best = StartBalance
	g.hands = 0
	return "Get as close to 21 as you can without going over.\n" + g.deal().Text
}

// Prompt returns the input hint for the current stage.
func (g *Game) Prompt() string {
	if g.stage == stagePlaying {
		return "(H)it or (S)tand? "
	}
	return "Press ENTER to deal the next hand: "
}

// Score is the best balance reached this session.
func (g *Game) Score() int {
	return g.best
}

// Balance returns the money left.
func (g *Game) Balance() int {
	return g.balance
}

// Handle plays one line of input.
func (g *Game) Handle(line string) console.Reply {
	cmd := console.Normalize(line)
	switch g.stage {
	case stagePlaying:
		switch cmd {
		case "h", "hit":
			return g.hit()
		case "s", "stand":
			return g.settle("")
		}
		return console.Invalid(fmt.Errorf("%w: type h to hit or s to stand", console.ErrInvalidInput))
	case stageBetween:
		switch cmd {
		case "", "d", "deal", "p", "play":
			return g.deal()
		}
		return console.Invalid(fmt.Errorf("%w: press ENTER to deal or q to leave", console.ErrInvalidInput))
	default:
		return console.End("The table is closed.")
	}
}

// deal shuffles a fresh deck and deals a new hand from it.
func (g *Game) deal() console.Reply {
	return g.dealFrom(cards.Shuffled(g.rng))
}

func (g *Game) dealFrom(deck cards.Deck) console.Reply {
	g.deck = deck
	g.bet = min(MaxBet, g.balance)
	g.player = []cards.Card{g.draw(), g.draw()}
	g.dealer = []cards.Card{g.draw(), g.draw()}
	g.hands++
	g.stage = stagePlaying

	var b strings.Builder
	fmt.Fprintf(&b, "\nHand %d  Balance: $%d  Bet: $%d\n", g.hands, g.balance, g.bet)
	b.WriteString(g.table(true))
	if HandValue(g.player) == 21 {
		return g.settle(b.String() + "BLACKJACK!\n")
	}
	return console.Say("%s", strings.TrimRight(b.String(), "\n"))
}

// draw takes the top card, starting a new shuffled deck if it runs dry.
func (g *Game) draw() cards.Card {
	c, ok := g.deck.Draw()
	if !ok {
		g.deck = cards.Shuffled(g.rng)
		c, _ = g.deck.Draw()
	}
	return c
}

func (g *Game) hit() console.Reply {
	g.player = append(g.player, g.draw())
	text := g.table(true)
	switch v := HandValue(g.player); {
	case v > 21:
		return g.settle(text + "BUST!\n")
	case v == 21:
		return g.settle(text + "21!\n")
	}
	return console.Say("%s", strings.TrimRight(text, "\n"))
}

// settle plays the dealer's hand, pays out and moves to the next hand.
func (g *Game) settle(prefix string) console.Reply {
	var b strings.Builder
	b.WriteString(prefix)

	pv := HandValue(g.player)
	if pv <= 21 {
		fmt.Fprintf(&b, "Dealer reveals: %s = %d\n", cards.Hand(g.dealer, false), HandValue(g.dealer))
		for HandValue(g.dealer) < DealerStands {
			g.dealer = append(g.dealer, g.draw())
			fmt.Fprintf(&b, "Dealer hits: %s = %d\n", cards.Hand(g.dealer, false), HandValue(g.dealer))
		}
	}
	dv := HandValue(g.dealer)

	switch {
	case pv > 21:
		b.WriteString("You busted! Dealer wins.")
		g.balance -= g.bet
	case dv > 21:
		b.WriteString("Dealer busted! You win!")
		g.balance += g.bet
	case pv > dv:
		b.WriteString("You win!")
		g.balance += g.bet
	case pv < dv:
		b.WriteString("Dealer wins!")
		g.balance -= g.bet
	default:
		b.WriteString("Push! It's a tie.")
	}
	g.best = max(g.best, g.balance)
	fmt.Fprintf(&b, "\nBalance: $%d", g.balance)

	if g.balance <= 0 {
		g.stage = stageBroke
		return console.End("%s\nYou're out of money! Best balance: $%d", b.String(), g.best)
	}
	g.stage = stageBetween
	return console.Say("%s", b.String())
}

func (g *Game) table(hideDealer bool) string {
	return fmt.Sprintf("Your hand: %s = %d\nDealer: %s\n",
		cards.Hand(g.player, false), HandValue(g.player), cards.Hand(g.dealer, hideDealer))
}

// CardValue returns the face value; aces count 11 here.
func CardValue(c cards.Card) int {
	switch {
	case c.Rank == cards.Ace:
		return 11
	case c.Rank >= cards.Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// HandValue totals a hand, counting aces as 1 while the hand is over 21.
func HandValue(hand []cards.Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		total += CardValue(c)
		if c.Rank == cards.Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
