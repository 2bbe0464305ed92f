package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a grid access falls outside the board.
var ErrOutOfBounds = errors.New("core: cell out of bounds")

// Boundary selects how a coordinate outside the grid is treated.
// Every game picks its own policy; there is no shared default.
type Boundary int

const (
	// BoundaryReject refuses coordinates outside the grid.
	BoundaryReject Boundary = iota
	// BoundaryClamp pins coordinates to the nearest edge cell.
	BoundaryClamp
	// BoundaryWrap folds coordinates onto the opposite edge (toroidal).
	BoundaryWrap
)

// Grid is a fixed-size two-dimensional board of cell values.
// Dimensions are set once in NewGrid and never change.
type Grid[T comparable] struct {
	w, h  int
	cells []T
}

// NewGrid allocates a w x h grid filled with the zero value of T.
func NewGrid[T comparable](w, h int) *Grid[T] {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid[T]{w: w, h: h, cells: make([]T, w*h)}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// Resolve maps p onto the grid using the given boundary policy.
// ok is false when the policy is BoundaryReject and p is outside.
func (g *Grid[T]) Resolve(p Point, b Boundary) (Point, bool) {
	if g.InBounds(p) {
		return p, true
	}
	if g.w == 0 || g.h == 0 {
		return p, false
	}
	switch b {
	case BoundaryClamp:
		return Point{X: Clamp(p.X, 0, g.w-1), Y: Clamp(p.Y, 0, g.h-1)}, true
	case BoundaryWrap:
		return Point{X: Wrap(p.X, g.w), Y: Wrap(p.Y, g.h)}, true
	default:
		return p, false
	}
}

// Get returns the value at p. ok is false for out-of-bounds points.
func (g *Grid[T]) Get(p Point) (v T, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}
	return g.cells[p.Y*g.w+p.X], true
}

// At returns the value at (x, y), or the zero value outside the grid.
func (g *Grid[T]) At(x, y int) T {
	v, _ := g.Get(Point{X: x, Y: y})
	return v
}

// Set stores v at p. Out-of-bounds points are rejected with ErrOutOfBounds
// and leave the grid untouched.
func (g *Grid[T]) Set(p Point, v T) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d", ErrOutOfBounds, p.X, p.Y, g.w, g.h)
	}
	g.cells[p.Y*g.w+p.X] = v
	return nil
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.h {
		return nil
	}
	row := make([]T, g.w)
	copy(row, g.cells[y*g.w:(y+1)*g.w])
	return row
}

// SetRow overwrites row y with vals (extra values are ignored).
func (g *Grid[T]) SetRow(y int, vals []T) error {
	if y < 0 || y >= g.h {
		return fmt.Errorf("%w: row %d on %dx%d", ErrOutOfBounds, y, g.w, g.h)
	}
	copy(g.cells[y*g.w:(y+1)*g.w], vals)
	return nil
}

// RowFull reports whether every cell in row y differs from empty.
func (g *Grid[T]) RowFull(y int, empty T) bool {
	if y < 0 || y >= g.h {
		return false
	}
	for _, v := range g.cells[y*g.w : (y+1)*g.w] {
		if v == empty {
			return false
		}
	}
	return true
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Point, v T)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			fn(Point{X: x, Y: y}, g.cells[y*g.w+x])
		}
	}
}

// Points returns the coordinates of every cell satisfying pred, row-major.
func (g *Grid[T]) Points(pred func(T) bool) []Point {
	var pts []Point
	g.Each(func(p Point, v T) {
		if pred(v) {
			pts = append(pts, p)
		}
	})
	return pts
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{w: g.w, h: g.h, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
