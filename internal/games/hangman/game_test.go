package hangman

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/console"
)

func TestResetPicksListedWord(t *testing.T) {
	g := New()
	intro := g.Reset(rand.New(rand.NewSource(3)))

	assert.Contains(t, intro, "Wrong guesses left: 6")
	found := false
	for _, w := range Words {
		if g.word == strings.ToUpper(w) {
			found = true
		}
	}
	assert.True(t, found, "word %q not in list", g.word)
}

func TestSolvingWord(t *testing.T) {
	g := New()
	g.start("network")

	for _, l := range "netwo" {
		r := g.Handle(string(l))
		require.False(t, r.Done)
	}
	assert.Equal(t, "N E T W O _ _", g.Masked())

	g.Handle("x")
	g.Handle("r")
	r := g.Handle("K")
	assert.True(t, r.Done)
	assert.Contains(t, r.Text, "You got it")
	assert.Equal(t, MaxWrong-1, g.Score())
}

func TestSixWrongGuessesLose(t *testing.T) {
	g := New()
	g.start("cat")

	for i, l := range "bdefg" {
		r := g.Handle(string(l))
		require.False(t, r.Done, "guess %d", i)
	}
	r := g.Handle("h")
	assert.True(t, r.Done)
	assert.Contains(t, r.Text, "The word was CAT")
	assert.Zero(t, g.Score())
}

func TestInvalidAndRepeatedGuessesAreFree(t *testing.T) {
	g := New()
	g.start("cat")

	for _, in := range []string{"", "ab", "7", "?"} {
		r := g.Handle(in)
		assert.Contains(t, r.Text, "single letter", "input %q", in)
	}
	g.Handle("z")
	require.Equal(t, 1, g.wrong)

	r := g.Handle("Z")
	assert.Contains(t, r.Text, "already guessed")
	assert.Equal(t, 1, g.wrong)
}

func TestLetterQIsAGuess(t *testing.T) {
	g := New()
	var out strings.Builder

	_, err := console.Run(context.Background(), g, strings.NewReader("q\nz\nquit\n"), &out, console.WithSeed(1))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "'Q'")
	assert.Contains(t, out.String(), "'Z'")
	assert.True(t, g.guessed['Q'])
	assert.True(t, console.Quits(g, "quit"))
}
