// Package scramble implements Word Scramble: unscramble each word of a
// difficulty list.
package scramble

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Attempts is the number of wrong guesses allowed per word.
const Attempts = 3

// WordLists holds the words for difficulty 1 to 3.
var WordLists = [3][]string{
	{"cat", "dog", "car", "sun", "hat", "book", "tree", "fish", "bird", "cake"},
	{"python", "guitar", "planet", "jungle", "rocket", "orange", "dragon", "castle"},
	{"adventure", "beautiful", "challenge", "dangerous", "excellent", "fantastic"},
}

var levelNames = [3]string{"Easy", "Medium", "Hard"}

// Game is one pass through a word list.
type Game struct {
	rng   *rand.Rand
	words []string
	index int

	scrambled string
	revealed  []byte
	hints     int
	attempts  int

	score  int
	streak int
}

// New creates a new Word Scramble game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("scramble", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "scramble" }

// Title returns the display name.
func (g *Game) Title() string { return "Word Scramble" }

// Reset waits for a difficulty choice.
func (g *Game) Reset(rng *rand.Rand) string {
	g.rng = rng
	g.words = nil
	g.index = 0
	g.score = 0
	g.streak = 0
	return "Difficulty: 1. Easy  2. Medium  3. Hard\nCommands: hint, skip"
}

// Prompt returns the input hint for the current stage.
func (g *Game) Prompt() string {
	if g.words == nil {
		return "Choose (1-3, ENTER for medium): "
	}
	return "Your guess: "
}

// Score returns the points collected so far.
func (g *Game) Score() int {
	return g.score
}

// Handle takes a difficulty, a guess, hint or skip.
func (g *Game) Handle(line string) console.Reply {
	if g.words == nil {
		level := 2
		if strings.TrimSpace(line) != "" {
			n, err := console.ParseInt(line, 1, len(WordLists))
			if err != nil {
				return console.Invalid(err)
			}
			level = n
		}
		g.start(level - 1)
		return console.Say("%s words.\n%s", levelNames[level-1], g.header())
	}

	word := g.words[g.index]
	switch guess := console.Normalize(line); guess {
	case "":
		return console.Invalid(fmt.Errorf("%w: type a guess, hint or skip", console.ErrInvalidInput))
	case "hint":
		return g.hint()
	case "skip":
		g.streak = 0
		return g.next(fmt.Sprintf("Skipped! The word was %s.", strings.ToUpper(word)))
	case word:
		points := max(10-3*g.hints, 3)
		g.score += points
		g.streak++
		msg := fmt.Sprintf("Correct! +%d points.", points)
		if g.streak > 1 {
			msg += fmt.Sprintf(" %d word streak!", g.streak)
		}
		return g.next(msg)
	}

	g.attempts--
	if g.attempts > 0 {
		return console.Say("Wrong! %d attempts left.", g.attempts)
	}
	g.streak = 0
	return g.next(fmt.Sprintf("Out of attempts. The word was %s.", strings.ToUpper(word)))
}

func (g *Game) start(level int) {
	g.words = append([]string(nil), WordLists[level]...)
	g.rng.Shuffle(len(g.words), func(i, j int) { g.words[i], g.words[j] = g.words[j], g.words[i] })
	g.index = 0
	g.load()
}

// load prepares the current word.
func (g *Game) load() {
	word := g.words[g.index]
	g.scrambled = Scramble(g.rng, word)
	g.revealed = []byte(strings.Repeat("_", len(word)))
	g.hints = 0
	g.attempts = Attempts
}

func (g *Game) next(msg string) console.Reply {
	g.index++
	if g.index >= len(g.words) {
		return console.End("%s\nFinal score: %d", msg, g.score)
	}
	g.load()
	return console.Say("%s\n%s", msg, g.header())
}

func (g *Game) hint() console.Reply {
	var hidden []int
	for i, b := range g.revealed {
		if b == '_' {
			hidden = append(hidden, i)
		}
	}
	if len(hidden) == 0 {
		return console.Say("No more hints available!")
	}
	i := hidden[g.rng.Intn(len(hidden))]
	g.revealed[i] = g.words[g.index][i]
	g.hints++
	return console.Say("Hint: %s", strings.ToUpper(spaced(string(g.revealed))))
}

func (g *Game) header() string {
	return fmt.Sprintf("Word %d/%d | Score: %d | Streak: %d\nScrambled: %s",
		g.index+1, len(g.words), g.score, g.streak, strings.ToUpper(g.scrambled))
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// Scramble shuffles the letters of word until they differ from it. Words
// made of one repeated letter come back unchanged.
func Scramble(rng *rand.Rand, word string) string {
	letters := []byte(word)
	if strings.Count(word, word[:1]) == len(word) {
		return word
	}
	for {
		rng.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })
		if s := string(letters); s != word {
			return s
		}
	}
}
