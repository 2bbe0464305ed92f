package core

import (
	"errors"
	"testing"
)

func TestGridSetGet(t *testing.T) {
	g := NewGrid[int](4, 3)

	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", g.Width(), g.Height())
	}
	if err := g.Set(Point{X: 3, Y: 2}, 7); err != nil {
		t.Fatalf("Set in bounds: %v", err)
	}
	if v, ok := g.Get(Point{X: 3, Y: 2}); !ok || v != 7 {
		t.Errorf("Get = (%d, %v), expected (7, true)", v, ok)
	}
}

func TestGridRejectsOutOfBounds(t *testing.T) {
	g := NewGrid[int](4, 3)
	g.Fill(1)
	before := g.Clone()

	for _, p := range []Point{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		err := g.Set(p, 9)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
		if _, ok := g.Get(p); ok {
			t.Errorf("Get(%v) should report out of bounds", p)
		}
	}
	if !g.Equal(before) {
		t.Error("rejected writes must leave the grid unchanged")
	}
}

func TestGridResolve(t *testing.T) {
	g := NewGrid[bool](5, 5)

	tests := []struct {
		name   string
		p      Point
		b      Boundary
		want   Point
		wantOK bool
	}{
		{"inside any policy", Point{2, 2}, BoundaryReject, Point{2, 2}, true},
		{"reject outside", Point{5, 2}, BoundaryReject, Point{5, 2}, false},
		{"clamp right", Point{7, 2}, BoundaryClamp, Point{4, 2}, true},
		{"clamp negative", Point{-3, -1}, BoundaryClamp, Point{0, 0}, true},
		{"wrap right", Point{5, 2}, BoundaryWrap, Point{0, 2}, true},
		{"wrap up", Point{1, -1}, BoundaryWrap, Point{1, 4}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.Resolve(tc.p, tc.b)
			if ok != tc.wantOK || (ok && got != tc.want) {
				t.Errorf("Resolve(%v) = (%v, %v), expected (%v, %v)", tc.p, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestGridRows(t *testing.T) {
	g := NewGrid[int](3, 2)
	if err := g.SetRow(1, []int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	if !g.RowFull(1, 0) {
		t.Error("row 1 should be full")
	}
	if g.RowFull(0, 0) {
		t.Error("row 0 should be empty")
	}

	row := g.Row(1)
	row[0] = 99
	if g.At(0, 1) != 1 {
		t.Error("Row must return a copy")
	}
	if err := g.SetRow(2, nil); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetRow(2) error = %v, expected ErrOutOfBounds", err)
	}
}

func TestGridCountAndPoints(t *testing.T) {
	g := NewGrid[rune](3, 3)
	g.Fill('.')
	_ = g.Set(Point{1, 0}, '*')
	_ = g.Set(Point{0, 2}, '*')

	isMine := func(r rune) bool { return r == '*' }
	if n := g.Count(isMine); n != 2 {
		t.Errorf("Count = %d, expected 2", n)
	}
	pts := g.Points(isMine)
	if len(pts) != 2 || pts[0] != (Point{1, 0}) || pts[1] != (Point{0, 2}) {
		t.Errorf("Points = %v, expected row-major [{1 0} {0 2}]", pts)
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid[int](2, 2)
	c := g.Clone()
	_ = c.Set(Point{0, 0}, 5)

	if g.At(0, 0) != 0 {
		t.Error("Clone must not share storage")
	}
	if g.Equal(c) {
		t.Error("grids with different contents must not be equal")
	}
	if g.Equal(NewGrid[int](2, 3)) {
		t.Error("grids with different sizes must not be equal")
	}
}
