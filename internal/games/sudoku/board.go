package sudoku

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Board geometry: Size x Size cells in Box x Box blocks.
const (
	Size  = 9
	Box   = 3
	Empty = 0
)

// Blanks is how many cells a new puzzle leaves open.
const Blanks = 45

// Valid reports whether v can go at p without repeating in its row,
// column or block. The cell at p itself is not considered.
func Valid(b *core.Grid[int], p core.Point, v int) bool {
	for i := range Size {
		if i != p.X && b.At(i, p.Y) == v {
			return false
		}
		if i != p.Y && b.At(p.X, i) == v {
			return false
		}
	}
	bx, by := p.X/Box*Box, p.Y/Box*Box
	for y := by; y < by+Box; y++ {
		for x := bx; x < bx+Box; x++ {
			if (x != p.X || y != p.Y) && b.At(x, y) == v {
				return false
			}
		}
	}
	return true
}

// Generate fills a board by randomized backtracking and opens Blanks
// cells of it. It returns the full solution and the puzzle.
func Generate(rng *rand.Rand) (solution, puzzle *core.Grid[int]) {
	solution = core.NewGrid[int](Size, Size)
	fill(solution, rng, 0)

	puzzle = solution.Clone()
	for _, i := range rng.Perm(Size * Size)[:Blanks] {
		_ = puzzle.Set(core.Point{X: i % Size, Y: i / Size}, Empty)
	}
	return solution, puzzle
}

func fill(b *core.Grid[int], rng *rand.Rand, idx int) bool {
	if idx == Size*Size {
		return true
	}
	p := core.Point{X: idx % Size, Y: idx / Size}
	for _, v := range rng.Perm(Size) {
		if !Valid(b, p, v+1) {
			continue
		}
		_ = b.Set(p, v+1)
		if fill(b, rng, idx+1) {
			return true
		}
	}
	_ = b.Set(p, Empty)
	return false
}
