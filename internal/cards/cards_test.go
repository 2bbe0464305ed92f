package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	d := NewDeck()
	require.Equal(t, 52, d.Len())

	seen := make(map[Card]bool)
	for _, c := range d {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestShuffledIsSeeded(t *testing.T) {
	a := Shuffled(rand.New(rand.NewSource(7)))
	b := Shuffled(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
	assert.NotEqual(t, NewDeck(), a)
	assert.ElementsMatch(t, NewDeck(), a)
}

func TestDrawTakesFromTop(t *testing.T) {
	d := Deck{{Ace, Spades}, {Two, Hearts}}

	c, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, Card{Ace, Spades}, c)
	assert.Equal(t, 1, d.Len())

	d.Draw()
	_, ok = d.Draw()
	assert.False(t, ok)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "[A♠]", Card{Ace, Spades}.String())
	assert.Equal(t, "[10♥]", Card{Ten, Hearts}.String())
	assert.Equal(t, "[7♣]", Card{Seven, Clubs}.String())
	assert.Equal(t, "[??] [K♦]", Hand([]Card{{Two, Spades}, {King, Diamonds}}, true))
	assert.Equal(t, "[2♠] [K♦]", Hand([]Card{{Two, Spades}, {King, Diamonds}}, false))
}
