package rps

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeats(t *testing.T) {
	assert.True(t, Rock.Beats(Scissors))
	assert.True(t, Paper.Beats(Rock))
	assert.True(t, Scissors.Beats(Paper))
	assert.False(t, Rock.Beats(Paper))
	assert.False(t, Rock.Beats(Rock))
	assert.False(t, Scissors.Beats(Rock))
}

func TestParseMove(t *testing.T) {
	for in, want := range map[string]Move{"r": Rock, "Paper": Paper, " s ": Scissors, "scissors": Scissors} {
		m, err := ParseMove(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, m)
	}
	_, err := ParseMove("lizard")
	assert.Error(t, err)
}

func TestRunningScore(t *testing.T) {
	g := New()
	g.Reset(rand.New(rand.NewSource(1)))

	g.play(Rock, Scissors)
	g.play(Rock, Paper)
	text := g.play(Paper, Paper)

	assert.Equal(t, 1, g.Score())
	assert.Contains(t, text, "Score - You: 1 | Computer: 1 | Ties: 1")
}

func TestHandleNeverEndsRound(t *testing.T) {
	g := New()
	g.Reset(rand.New(rand.NewSource(2)))

	for range 20 {
		assert.False(t, g.Handle("p").Done)
	}
	assert.Equal(t, 20, g.player+g.computer+g.ties)

	r := g.Handle("banana")
	assert.Contains(t, r.Text, "r/p/s")
	assert.Equal(t, 20, g.player+g.computer+g.ties)
}
