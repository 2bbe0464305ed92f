package war

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/cards"
)

func card(r cards.Rank) cards.Card {
	return cards.Card{Rank: r, Suit: cards.Hearts}
}

func TestResetSplitsDeck(t *testing.T) {
	g := New()
	g.Reset(rand.New(rand.NewSource(1)))
	assert.Equal(t, 26, g.player.Len())
	assert.Equal(t, 26, g.computer.Len())
}

func TestHigherCardTakesBoth(t *testing.T) {
	g := New()
	g.player = cards.Deck{card(cards.King), card(cards.Two)}
	g.computer = cards.Deck{card(cards.Five), card(cards.Nine)}

	g.Handle("")
	assert.Equal(t, cards.Deck{card(cards.Two), card(cards.King), card(cards.Five)}, g.player)
	assert.Equal(t, 1, g.computer.Len())

	g.Handle("")
	assert.Equal(t, 2, g.player.Len())
	assert.Equal(t, 2, g.computer.Len())
}

func TestTieGoesToWar(t *testing.T) {
	g := New()
	g.player = cards.Deck{card(cards.Seven), card(cards.Three), card(cards.Ace)}
	g.computer = cards.Deck{card(cards.Seven), card(cards.Jack), card(cards.Two)}

	r := g.Handle("")
	assert.Contains(t, r.Text, "WAR!")
	assert.Contains(t, r.Text, "Computer wins the war")
	assert.Equal(t, 1, g.player.Len())
	assert.Equal(t, 5, g.computer.Len())
}

func TestTiedWarGoesToPlayer(t *testing.T) {
	g := New()
	g.player = cards.Deck{card(cards.Seven), card(cards.Jack), card(cards.Ace)}
	g.computer = cards.Deck{card(cards.Seven), card(cards.Jack), card(cards.Two)}

	g.Handle("")
	assert.Equal(t, 5, g.player.Len())
}

func TestEmptyPileEndsGame(t *testing.T) {
	g := New()
	g.player = cards.Deck{card(cards.Ace)}
	g.computer = cards.Deck{card(cards.Two)}

	r := g.Handle("")
	assert.True(t, r.Done)
	assert.Contains(t, r.Text, "YOU WIN")
	assert.Equal(t, 2, g.Score())
}

func TestRoundCap(t *testing.T) {
	g := New()
	g.Reset(rand.New(rand.NewSource(9)))

	var last bool
	for i := 0; i < MaxRounds && !last; i++ {
		last = g.Handle("").Done
	}
	require.True(t, last)
	assert.LessOrEqual(t, g.round, MaxRounds)
	assert.Equal(t, 52, g.player.Len()+g.computer.Len(), "no card is lost")
}

func TestTypedInputReprompts(t *testing.T) {
	g := New()
	g.Reset(rand.New(rand.NewSource(1)))
	r := g.Handle("draw")
	assert.Contains(t, r.Text, "ENTER")
	assert.Zero(t, g.round)
}
