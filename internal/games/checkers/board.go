package checkers

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Size is the board edge. Pieces only ever stand on dark squares.
const (
	Size     = 8
	homeRows = 3 // Rows of men each side starts on
)

// Piece is the content of a square. The zero Piece is an empty square.
type Piece struct {
	Owner core.PlayerID
	King  bool
}

// Move is a single step or a single jump. Jumped is the captured square
// when Capture is set.
type Move struct {
	From    core.Point
	To      core.Point
	Jumped  core.Point
	Capture bool
}

// Dark reports whether p is a playable square.
func Dark(p core.Point) bool {
	return (p.X+p.Y)%2 == 1
}

// NewBoard sets up the opening position: Player2 (Black) on the top
// three rows, Player1 (Red) on the bottom three.
func NewBoard() *core.Grid[Piece] {
	b := core.NewGrid[Piece](Size, Size)
	b.Each(func(p core.Point, _ Piece) {
		if !Dark(p) {
			return
		}
		switch {
		case p.Y < homeRows:
			_ = b.Set(p, Piece{Owner: core.Player2})
		case p.Y >= Size-homeRows:
			_ = b.Set(p, Piece{Owner: core.Player1})
		}
	})
	return b
}

// forward is the row direction a player's men advance in.
func forward(owner core.PlayerID) int {
	if owner == core.Player1 {
		return -1
	}
	return 1
}

// crownRow is the far row where a player's men become kings.
func crownRow(owner core.PlayerID) int {
	if owner == core.Player1 {
		return 0
	}
	return Size - 1
}

func directions(pc Piece) []core.Point {
	f := forward(pc.Owner)
	dirs := []core.Point{{X: -1, Y: f}, {X: 1, Y: f}}
	if pc.King {
		dirs = append(dirs, core.Point{X: -1, Y: -f}, core.Point{X: 1, Y: -f})
	}
	return dirs
}

// MovesFrom lists the legal steps and jumps for the piece at from.
// Captures are optional and a jump ends the move.
func MovesFrom(b *core.Grid[Piece], from core.Point) []Move {
	pc, ok := b.Get(from)
	if !ok || pc.Owner == core.PlayerNone {
		return nil
	}
	var moves []Move
	for _, d := range directions(pc) {
		step, ok := b.Resolve(from.Add(d), core.BoundaryReject)
		if !ok {
			continue
		}
		target := b.At(step.X, step.Y)
		if target.Owner == core.PlayerNone {
			moves = append(moves, Move{From: from, To: step})
			continue
		}
		if target.Owner == pc.Owner {
			continue
		}
		land, ok := b.Resolve(step.Add(d), core.BoundaryReject)
		if ok && b.At(land.X, land.Y).Owner == core.PlayerNone {
			moves = append(moves, Move{From: from, To: land, Jumped: step, Capture: true})
		}
	}
	return moves
}

// HasMoves reports whether owner has any legal move.
func HasMoves(b *core.Grid[Piece], owner core.PlayerID) bool {
	found := false
	b.Each(func(p core.Point, pc Piece) {
		if !found && pc.Owner == owner && len(MovesFrom(b, p)) > 0 {
			found = true
		}
	})
	return found
}

// Pieces counts owner's pieces on the board.
func Pieces(b *core.Grid[Piece], owner core.PlayerID) int {
	return b.Count(func(pc Piece) bool { return pc.Owner == owner })
}

// Apply plays m on b, removing a jumped piece and crowning a man that
// reaches the far row.
func Apply(b *core.Grid[Piece], m Move) {
	pc := b.At(m.From.X, m.From.Y)
	_ = b.Set(m.From, Piece{})
	if m.Capture {
		_ = b.Set(m.Jumped, Piece{})
	}
	if m.To.Y == crownRow(pc.Owner) {
		pc.King = true
	}
	_ = b.Set(m.To, pc)
}
