// Package trivia implements a multiple-choice quiz over a fixed question
// bank.
package trivia

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// PointsPerAnswer is awarded for every correct answer.
const PointsPerAnswer = 10

// Question has four options; Answer indexes the correct one.
type Question struct {
	Text    string
	Options [4]string
	Answer  int
}

// Category groups questions under a name.
type Category struct {
	Name      string
	Questions []Question
}

// Bank is the full question bank.
var Bank = []Category{
	{Name: "Geography", Questions: []Question{
		{"What is the capital of France?", [4]string{"Paris", "London", "Berlin", "Madrid"}, 0},
		{"Which country has the largest population?", [4]string{"USA", "India", "China", "Russia"}, 1},
		{"What is the largest ocean?", [4]string{"Atlantic", "Indian", "Pacific", "Arctic"}, 2},
		{"What is the tallest mountain on Earth?", [4]string{"K2", "Everest", "Kilimanjaro", "Denali"}, 1},
		{"What is the largest mammal?", [4]string{"Elephant", "Giraffe", "Blue Whale", "Hippopotamus"}, 2},
	}},
	{Name: "Science", Questions: []Question{
		{"Which planet is known as the Red Planet?", [4]string{"Venus", "Mars", "Jupiter", "Saturn"}, 1},
		{"What is the chemical symbol for gold?", [4]string{"Go", "Gd", "Au", "Ag"}, 2},
		{"What is the speed of light?", [4]string{"300,000 km/s", "150,000 km/s", "1,000 km/s", "500,000 km/s"}, 0},
		{"How many planets are in our solar system?", [4]string{"7", "8", "9", "10"}, 1},
		{"What is the hardest natural substance?", [4]string{"Gold", "Iron", "Diamond", "Platinum"}, 2},
		{"Which element has the symbol 'O'?", [4]string{"Gold", "Oxygen", "Osmium", "Oganesson"}, 1},
	}},
	{Name: "History", Questions: []Question{
		{"Who painted the Mona Lisa?", [4]string{"Van Gogh", "Picasso", "Da Vinci", "Michelangelo"}, 2},
		{"What year did World War II end?", [4]string{"1943", "1944", "1945", "1946"}, 2},
		{"Who wrote 'Romeo and Juliet'?", [4]string{"Dickens", "Shakespeare", "Austen", "Hemingway"}, 1},
		{"Who invented the telephone?", [4]string{"Edison", "Tesla", "Bell", "Marconi"}, 2},
	}},
}

// Game is one quiz over a category.
type Game struct {
	rng       *rand.Rand
	category  *Category
	questions []Question
	index     int
	correct   int
}

// New creates a new quiz.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterText("trivia", func() console.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "trivia" }

// Title returns the display name.
func (g *Game) Title() string { return "Trivia Quiz" }

// Reset lists the categories.
func (g *Game) Reset(rng *rand.Rand) string {
	g.rng = rng
	g.category = nil
	g.questions = nil
	g.index = 0
	g.correct = 0

	var b strings.Builder
	b.WriteString("Categories:")
	for i, c := range Bank {
		fmt.Fprintf(&b, "\n  %d. %s (%d questions)", i+1, c.Name, len(c.Questions))
	}
	return b.String()
}

// Prompt returns the input hint for the current stage.
func (g *Game) Prompt() string {
	if g.category == nil {
		return "Pick a category (name or number): "
	}
	return "Your answer (1-4): "
}

// Score returns the points collected so far.
func (g *Game) Score() int {
	return g.correct * PointsPerAnswer
}

// Handle picks a category or answers the current question.
func (g *Game) Handle(line string) console.Reply {
	if g.category == nil {
		c, err := findCategory(line)
		if err != nil {
			return console.Invalid(err)
		}
		g.start(c)
		return console.Say("%s: %d questions.\n%s", c.Name, len(g.questions), g.ask())
	}

	n, err := console.ParseInt(line, 1, 4)
	if err != nil {
		return console.Invalid(err)
	}
	q := g.questions[g.index]
	var verdict string
	if n-1 == q.Answer {
		g.correct++
		verdict = fmt.Sprintf("Correct! +%d", PointsPerAnswer)
	} else {
		verdict = fmt.Sprintf("Wrong! The answer was: %s", q.Options[q.Answer])
	}
	g.index++
	status := fmt.Sprintf("Score: %d/%d", g.correct, g.index)
	if g.index >= len(g.questions) {
		return console.End("%s\n%s\nFinal score: %d points", verdict, status, g.Score())
	}
	return console.Say("%s\n%s\n%s", verdict, status, g.ask())
}

func findCategory(line string) (*Category, error) {
	s := console.Normalize(line)
	for i := range Bank {
		if s == strings.ToLower(Bank[i].Name) || s == fmt.Sprint(i+1) {
			return &Bank[i], nil
		}
	}
	return nil, fmt.Errorf("%w: unknown category %q", console.ErrInvalidInput, strings.TrimSpace(line))
}

// start shuffles the category's questions and each question's options.
func (g *Game) start(c *Category) {
	g.category = c
	g.questions = make([]Question, len(c.Questions))
	for i, q := range c.Questions {
		perm := g.rng.Perm(len(q.Options))
		var shuffled Question
		shuffled.Text = q.Text
		for to, from := range perm {
			shuffled.Options[to] = q.Options[from]
			if from == q.Answer {
				shuffled.Answer = to
			}
		}
		g.questions[i] = shuffled
	}
	g.rng.Shuffle(len(g.questions), func(i, j int) {
		g.questions[i], g.questions[j] = g.questions[j], g.questions[i]
	})
}

func (g *Game) ask() string {
	q := g.questions[g.index]
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d/%d: %s", g.index+1, len(g.questions), q.Text)
	for i, o := range q.Options {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, o)
	}
	return b.String()
}
