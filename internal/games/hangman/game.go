// Package hangman implements Hangman on the console protocol.
package hangman

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// MaxWrong is the number of wrong guesses that hangs the player.
const MaxWrong = 6

// Words is the list a secret word is drawn from.
var Words = []string{
	"python", "programming", "computer", "keyboard", "algorithm",
	"variable", "function", "database", "network", "software",
	"developer", "interface", "application", "framework", "terminal",
}

var gallows = [MaxWrong + 1]string{
	"  +---+\n      |\n      |\n      |\n     ===",
	"  +---+\n  O   |\n      |\n      |\n     ===",
	"  +---+\n  O   |\n  |   |\n      |\n     ===",
	"  +---+\n  O   |\n /|   |\n      |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n      |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n /    |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n / \\  |\n     ===",
}

// Game is one Hangman word.
type Game struct {
	word    string
	guessed map[rune]bool
	wrong   int
	solved  bool
}

// New creates a new Hangman game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("hangman", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "hangman" }

// Title returns the display name.
func (g *Game) Title() string { return "Hangman" }

// Reset picks a new secret word.
func (g *Game) Reset(rng *rand.Rand) string {
	g.start(Words[rng.Intn(len(Words))])
	return "Guess the word letter by letter.\n" + g.board()
}

func (g *Game) start(word string) {
	g.word = strings.ToUpper(word)
	g.guessed = make(map[rune]bool)
	g.wrong = 0
	g.solved = false
}

// QuitWords leaves "q" free as a guess.
func (g *Game) QuitWords() []string {
	return []string{"quit", "exit"}
}

// Prompt asks for the next letter.
func (g *Game) Prompt() string {
	return "Guess a letter: "
}

// Score is the number of wrong guesses left when the word is solved.
func (g *Game) Score() int {
	if !g.solved {
		return 0
	}
	return MaxWrong - g.wrong
}

// Handle takes one guess. Invalid or repeated letters cost nothing.
func (g *Game) Handle(line string) console.Reply {
	guess := []rune(strings.ToUpper(strings.TrimSpace(line)))
	if len(guess) != 1 || guess[0] < 'A' || guess[0] > 'Z' {
		return console.Invalid(fmt.Errorf("%w: please enter a single letter", console.ErrInvalidInput))
	}
	letter := guess[0]
	if g.guessed[letter] {
		return console.Say("You already guessed %q.", letter)
	}
	g.guessed[letter] = true

	var verdict string
	if strings.ContainsRune(g.word, letter) {
		verdict = fmt.Sprintf("Correct! %q is in the word.", letter)
	} else {
		g.wrong++
		verdict = fmt.Sprintf("Wrong! %q is not in the word.", letter)
	}

	switch {
	case g.complete():
		g.solved = true
		return console.End("%s\n%s\nYou got it! The word was %s.", verdict, g.board(), g.word)
	case g.wrong >= MaxWrong:
		return console.End("%s\n%s\nGame over! The word was %s.", verdict, gallows[MaxWrong], g.word)
	}
	return console.Say("%s\n%s", verdict, g.board())
}

func (g *Game) complete() bool {
	for _, r := range g.word {
		if !g.guessed[r] {
			return false
		}
	}
	return true
}

// Masked returns the word with unguessed letters as underscores.
func (g *Game) Masked() string {
	parts := make([]string, 0, len(g.word))
	for _, r := range g.word {
		if g.guessed[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

func (g *Game) board() string {
	letters := make([]string, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, string(r))
	}
	sort.Strings(letters)
	used := "None"
	if len(letters) > 0 {
		used = strings.Join(letters, " ")
	}
	return fmt.Sprintf("%s\nWord: %s\nGuessed: %s\nWrong guesses left: %d",
		gallows[g.wrong], g.Masked(), used, MaxWrong-g.wrong)
}
