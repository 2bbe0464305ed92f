package scramble

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sorted(s string) string {
	b := strings.Split(s, "")
	sort.Strings(b)
	return strings.Join(b, "")
}

func started(t *testing.T, level string) *Game {
	t.Helper()
	g := New()
	g.Reset(rand.New(rand.NewSource(4)))
	g.Handle(level)
	require.NotNil(t, g.words)
	return g
}

func TestScrambleDiffersFromWord(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, list := range WordLists {
		for _, w := range list {
			for range 20 {
				s := Scramble(rng, w)
				require.NotEqual(t, w, s)
				assert.Equal(t, sorted(w), sorted(s))
			}
		}
	}
	assert.Equal(t, "aaa", Scramble(rng, "aaa"))
}

func TestDifficultySelectsList(t *testing.T) {
	g := started(t, "3")
	assert.ElementsMatch(t, WordLists[2], g.words)

	g = started(t, "")
	assert.ElementsMatch(t, WordLists[1], g.words, "ENTER picks medium")

	g = New()
	g.Reset(rand.New(rand.NewSource(1)))
	r := g.Handle("five")
	assert.Contains(t, r.Text, "not a number")
	assert.Nil(t, g.words)
}

func TestCorrectGuessScoresAndStreaks(t *testing.T) {
	g := started(t, "1")

	g.Handle(g.words[0])
	assert.Equal(t, 10, g.Score())
	r := g.Handle(strings.ToUpper(g.words[1]))
	assert.Contains(t, r.Text, "2 word streak")
	assert.Equal(t, 20, g.Score())
}

func TestHintsReducePoints(t *testing.T) {
	g := started(t, "3")
	word := g.words[0]

	r := g.Handle("hint")
	assert.Contains(t, r.Text, "Hint:")
	assert.Equal(t, len(word)-1, strings.Count(string(g.revealed), "_"))

	g.Handle("hint")
	g.Handle("hint")
	g.Handle("hint")
	g.Handle(word)
	assert.Equal(t, 3, g.Score(), "points never drop below 3")
}

func TestThreeWrongGuessesMoveOn(t *testing.T) {
	g := started(t, "2")
	g.Handle(g.words[0])
	require.Equal(t, 1, g.streak)

	g.Handle("nope")
	r := g.Handle("nah")
	assert.Contains(t, r.Text, "1 attempts left")
	r = g.Handle("never")
	assert.Contains(t, r.Text, "The word was")
	assert.Equal(t, 2, g.index)
	assert.Zero(t, g.streak)
}

func TestSkipAndFinish(t *testing.T) {
	g := started(t, "3")
	r := g.Handle("skip")
	for !r.Done {
		r = g.Handle("skip")
	}
	assert.Contains(t, r.Text, "Final score: 0")
	assert.Equal(t, len(WordLists[2]), g.index)
}
