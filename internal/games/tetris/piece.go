package tetris

import "github.com/vovakirdan/retro-arcade/internal/core"

// Kind identifies a tetromino. Zero is an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

const kindCount = 7

var shapes = [kindCount + 1][][]bool{
	KindI: {{true, true, true, true}},
	KindO: {{true, true}, {true, true}},
	KindT: {{false, true, false}, {true, true, true}},
	KindS: {{false, true, true}, {true, true, false}},
	KindZ: {{true, true, false}, {false, true, true}},
	KindJ: {{true, false, false}, {true, true, true}},
	KindL: {{false, false, true}, {true, true, true}},
}

var kindColors = [kindCount + 1]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// Piece is a falling tetromino. X and Y locate the top-left of its shape.
type Piece struct {
	Kind  Kind
	Shape [][]bool
	X, Y  int
}

func newPiece(k Kind, boardW int) Piece {
	src := shapes[k]
	shape := make([][]bool, len(src))
	for i, row := range src {
		shape[i] = append([]bool(nil), row...)
	}
	return Piece{Kind: k, Shape: shape, X: boardW/2 - len(shape[0])/2}
}

// Cells returns the board coordinates the piece covers.
func (p Piece) Cells() []core.Point {
	var pts []core.Point
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				pts = append(pts, core.Point{X: p.X + c, Y: p.Y + r})
			}
		}
	}
	return pts
}

// Rotated returns the piece turned clockwise.
func (p Piece) Rotated() Piece {
	h, w := len(p.Shape), len(p.Shape[0])
	out := make([][]bool, w)
	for c := 0; c < w; c++ {
		out[c] = make([]bool, h)
		for r := 0; r < h; r++ {
			out[c][r] = p.Shape[h-1-r][c]
		}
	}
	p.Shape = out
	return p
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
