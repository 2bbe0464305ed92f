// Package cards provides a standard 52-card deck for the card games.
package cards

import (
	"math/rand"
	"strconv"
	"strings"
)

// Suit is a card suit.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitGlyphs = [...]string{"♠", "♥", "♦", "♣"}

// String returns the suit symbol.
func (s Suit) String() string {
	if s < Spades || s > Clubs {
		return "?"
	}
	return suitGlyphs[s]
}

// Rank is a card rank, Two lowest and Ace highest.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank label used on card faces.
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String renders the card as "[A♠]".
func (c Card) String() string {
	return "[" + c.Rank.String() + c.Suit.String() + "]"
}

// Deck is an ordered pile of cards; index 0 is the top.
type Deck []Card

// NewDeck returns all 52 cards grouped by suit.
func NewDeck() Deck {
	d := make(Deck, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := Two; r <= Ace; r++ {
			d = append(d, Card{Rank: r, Suit: s})
		}
	}
	return d
}

// Shuffled returns a new full deck shuffled with rng.
func Shuffled(rng *rand.Rand) Deck {
	d := NewDeck()
	d.Shuffle(rng)
	return d
}

// Shuffle reorders the deck in place.
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
}

// Draw removes and returns the top card. ok is false on an empty deck.
func (d *Deck) Draw() (c Card, ok bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	c = (*d)[0]
	*d = (*d)[1:]
	return c, true
}

// Len returns the number of cards left.
func (d Deck) Len() int {
	return len(d)
}

// Hand formats cards separated by spaces. With hideFirst the first card
// is shown face down.
func Hand(cs []Card, hideFirst bool) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		if i == 0 && hideFirst {
			parts[i] = "[??]"
			continue
		}
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
