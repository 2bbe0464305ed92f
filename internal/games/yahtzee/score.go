package yahtzee

// Category is a scorecard line.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance
	numCategories
)

// Upper section bonus.
const (
	BonusThreshold = 63
	UpperBonus     = 35
)

var categoryNames = [numCategories]string{
	"Ones", "Twos", "Threes", "Fours", "Fives", "Sixes",
	"3 of a Kind", "4 of a Kind", "Full House",
	"Sm Straight", "Lg Straight", "Yahtzee", "Chance",
}

// String returns the scorecard label.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "?"
	}
	return categoryNames[c]
}

// Upper reports whether c counts towards the upper bonus.
func (c Category) Upper() bool {
	return c <= Sixes
}

// Dice holds one roll of five dice.
type Dice [5]int

// Score returns what d is worth in category c.
func Score(c Category, d Dice) int {
	var counts [7]int
	sum := 0
	for _, v := range d {
		counts[v]++
		sum += v
	}
	maxCount := 0
	for _, n := range counts {
		maxCount = max(maxCount, n)
	}

	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		face := int(c) + 1
		return counts[face] * face
	case ThreeOfAKind:
		if maxCount >= 3 {
			return sum
		}
	case FourOfAKind:
		if maxCount >= 4 {
			return sum
		}
	case FullHouse:
		if has(counts, 3) && has(counts, 2) {
			return 25
		}
	case SmallStraight:
		if run(counts) >= 4 {
			return 30
		}
	case LargeStraight:
		if run(counts) == 5 {
			return 40
		}
	case Yahtzee:
		if maxCount == 5 {
			return 50
		}
	case Chance:
		return sum
	}
	return 0
}

func has(counts [7]int, n int) bool {
	for _, c := range counts[1:] {
		if c == n {
			return true
		}
	}
	return false
}

// run returns the longest sequence of consecutive faces present.
func run(counts [7]int) int {
	best, cur := 0, 0
	for face := 1; face <= 6; face++ {
		if counts[face] > 0 {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}
	return best
}

// Scorecard records the categories filled so far.
type Scorecard struct {
	scores [numCategories]int
	used   [numCategories]bool
}

// Fill scores d into c. It reports false if c was already used.
func (s *Scorecard) Fill(c Category, d Dice) (int, bool) {
	if c < 0 || c >= numCategories || s.used[c] {
		return 0, false
	}
	s.used[c] = true
	s.scores[c] = Score(c, d)
	return s.scores[c], true
}

// Used reports whether c is filled.
func (s *Scorecard) Used(c Category) bool {
	return s.used[c]
}

// Upper returns the upper section sum.
func (s *Scorecard) Upper() int {
	total := 0
	for c := Ones; c <= Sixes; c++ {
		total += s.scores[c]
	}
	return total
}

// Bonus returns the upper bonus earned so far.
func (s *Scorecard) Bonus() int {
	if s.Upper() >= BonusThreshold {
		return UpperBonus
	}
	return 0
}

// Total returns every filled score plus the bonus.
func (s *Scorecard) Total() int {
	total := s.Bonus()
	for _, v := range s.scores {
		total += v
	}
	return total
}

// Open returns the unused categories in scorecard order.
func (s *Scorecard) Open() []Category {
	var open []Category
	for c := Category(0); c < numCategories; c++ {
		if !s.used[c] {
			open = append(open, c)
		}
	}
	return open
}
