package blackjack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/cards"
)

func c(r cards.Rank) cards.Card {
	return cards.Card{Rank: r, Suit: cards.Spades}
}

// stacked returns a deck dealing player, player, dealer, dealer, then the rest.
func stacked(rs ...cards.Rank) cards.Deck {
	d := make(cards.Deck, len(rs))
	for i, r := range rs {
		d[i] = c(r)
	}
	return d
}

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	require.NotEmpty(t, g.Reset(rand.New(rand.NewSource(1))))
	return g
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []cards.Card
		want int
	}{
		{"ace king", []cards.Card{c(cards.Ace), c(cards.King)}, 21},
		{"two aces", []cards.Card{c(cards.Ace), c(cards.Ace)}, 12},
		{"ace demoted", []cards.Card{c(cards.Ace), c(cards.King), c(cards.Five)}, 16},
		{"aces and nine", []cards.Card{c(cards.Ace), c(cards.Ace), c(cards.Nine)}, 21},
		{"faces", []cards.Card{c(cards.Jack), c(cards.Queen), c(cards.Two)}, 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(tt.hand))
		})
	}
}

func TestOpeningBlackjackResolvesImmediately(t *testing.T) {
	g := newGame(t)
	g.balance = StartBalance

	reply := g.dealFrom(stacked(cards.Ace, cards.King, cards.Nine, cards.Eight))

	assert.Contains(t, reply.Text, "BLACKJACK!")
	assert.Contains(t, reply.Text, "You win!")
	assert.False(t, reply.Done)
	assert.Len(t, g.player, 2, "no further hits")
	assert.Equal(t, stageBetween, g.stage)
	assert.Equal(t, StartBalance+MaxBet, g.Balance())

	// Hitting is no longer possible.
	reply = g.Handle("h")
	assert.Contains(t, reply.Text, "ENTER")
	assert.Len(t, g.player, 2)
}

func TestBustLosesBet(t *testing.T) {
	g := newGame(t)
	g.balance = StartBalance
	g.dealFrom(stacked(cards.Ten, cards.Six, cards.Ten, cards.Seven, cards.King))

	reply := g.Handle("hit")

	assert.Contains(t, reply.Text, "BUST!")
	assert.Len(t, g.dealer, 2, "dealer does not play after a bust")
	assert.Equal(t, StartBalance-MaxBet, g.Balance())
}

func TestDealerDrawsToSeventeen(t *testing.T) {
	g := newGame(t)
	g.balance = StartBalance
	g.dealFrom(stacked(cards.Ten, cards.Nine, cards.Ten, cards.Two, cards.Three, cards.Five))

	reply := g.Handle("s")

	assert.Len(t, g.dealer, 4)
	assert.Equal(t, 20, HandValue(g.dealer))
	assert.Contains(t, reply.Text, "Dealer wins!")
	assert.Equal(t, StartBalance-MaxBet, g.Balance())
}

func TestPush(t *testing.T) {
	g := newGame(t)
	g.balance = StartBalance
	g.dealFrom(stacked(cards.Ten, cards.Eight, cards.Jack, cards.Eight))

	reply := g.Handle("stand")

	assert.Contains(t, reply.Text, "Push")
	assert.Equal(t, StartBalance, g.Balance())
}

func TestBrokeEndsRoundAndScoreIsBestBalance(t *testing.T) {
	g := newGame(t)
	g.balance = 130
	g.best = 130
	g.dealFrom(stacked(cards.Ten, cards.Nine, cards.Ten, cards.Seven))
	g.Handle("s")
	require.Equal(t, 140, g.Balance())

	g.balance = 5
	g.dealFrom(stacked(cards.Ten, cards.Six, cards.Ten, cards.Seven, cards.King))
	assert.Equal(t, 5, g.bet, "bet never exceeds the balance")

	reply := g.Handle("h")
	assert.True(t, reply.Done)
	assert.Contains(t, reply.Text, "out of money")
	assert.Equal(t, 140, g.Score())
}

func TestInvalidInputReprompts(t *testing.T) {
	g := newGame(t)
	g.dealFrom(stacked(cards.Ten, cards.Six, cards.Ten, cards.Seven))

	reply := g.Handle("double")
	assert.False(t, reply.Done)
	assert.Contains(t, reply.Text, "h to hit")
	assert.Equal(t, stagePlaying, g.stage)
	assert.Equal(t, "(H)it or (S)tand? ", g.Prompt())
}

func TestNextHandDeals(t *testing.T) {
	g := newGame(t)
	g.dealFrom(stacked(cards.Ten, cards.Nine, cards.Ten, cards.Seven))
	g.Handle("s")
	require.Equal(t, stageBetween, g.stage)

	g.Handle("")
	assert.Equal(t, 3, g.hands)
	assert.Len(t, g.player, 2)
}
