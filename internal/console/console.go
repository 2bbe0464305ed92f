// Package console runs turn-based text games over a line-oriented
// prompt/response protocol: read one line, let the game parse it, print
// one message block, repeat.
package console

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidInput marks a line the game could not understand.
// It is always recovered by reprompting.
var ErrInvalidInput = errors.New("console: invalid input")

// Game is a text-mode game driven by Run.
type Game interface {
	// ID returns the registry identifier (e.g., "blackjack").
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new round using rng for shuffles and rolls and
	// returns the opening message.
	Reset(rng *rand.Rand) string

	// Prompt returns the text shown before reading the next line.
	Prompt() string

	// Handle consumes one input line. Quit words never reach it.
	Handle(line string) Reply

	// Score returns the score of the current round.
	Score() int
}

// Reply is a game's answer to one line of input.
type Reply struct {
	Text string
	// Done ends the round. The runner then offers another one.
	Done bool
}

// Say builds a reply that keeps the round going.
func Say(format string, args ...any) Reply {
	return Reply{Text: fmt.Sprintf(format, args...)}
}

// End builds a reply that finishes the round.
func End(format string, args ...any) Reply {
	return Reply{Text: fmt.Sprintf(format, args...), Done: true}
}

// Invalid builds the reprompt message for a malformed line.
func Invalid(err error) Reply {
	return Reply{Text: err.Error()}
}

// QuitWorder is implemented by games whose vocabulary clashes with the
// default quit words, such as a single-letter guess of "q".
type QuitWorder interface {
	QuitWords() []string
}

var defaultQuitWords = []string{"quit", "q", "exit"}

// IsQuit reports whether line is one of the default quit words.
func IsQuit(line string) bool {
	return slices.Contains(defaultQuitWords, Normalize(line))
}

// Quits reports whether line ends a session of g. Games implementing
// QuitWorder replace the default words.
func Quits(g Game, line string) bool {
	words := defaultQuitWords
	if q, ok := g.(QuitWorder); ok {
		words = q.QuitWords()
	}
	return slices.Contains(words, Normalize(line))
}

// Normalize trims and lower-cases a line.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// ParseInt parses a whole line as an integer in [min, max].
func ParseInt(line string, min, max int) (int, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%w: enter a number between %d and %d", ErrInvalidInput, min, max)
	}
	return n, nil
}

// ParseInts parses space or comma separated integers, each in [min, max].
func ParseInts(line string, min, max int) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := ParseInt(f, min, max)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
