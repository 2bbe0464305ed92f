package t2048

import "github.com/vovakirdan/retro-arcade/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

const (
	// BoardSize is the board dimension.
	BoardSize = 4
	// WinTile ends the game with a win once it appears.
	WinTile = 2048
)

// Board is a 4x4 board indexed [row][column]; 0 marks an empty cell.
type Board [BoardSize][BoardSize]int

// Move is the outcome of sliding a board in one direction.
type Move struct {
	Board   Board
	Score   int          // Sum of merged tile values
	Changed bool         // False for a move that changes nothing
	Merged  []core.Point // Cells that received a merge, as {X: column, Y: row}
}

// slideRow slides and merges a single row towards index 0.
// Each tile merges at most once per move.
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int, merged [BoardSize]bool) {
	writePos := 0

	for i := range BoardSize {
		if row[i] == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == row[i] && !merged[writePos-1] {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged[writePos-1] = true
		} else {
			result[writePos] = row[i]
			writePos++
		}
	}

	return result, score, merged
}

// lane returns the cells of lane i ordered from the edge tiles slide
// towards. Lanes are rows for left/right and columns for up/down.
func lane(dir Direction, i int) [BoardSize]core.Point {
	var pts [BoardSize]core.Point
	for k := range BoardSize {
		switch dir {
		case DirLeft:
			pts[k] = core.Point{X: k, Y: i}
		case DirRight:
			pts[k] = core.Point{X: BoardSize - 1 - k, Y: i}
		case DirUp:
			pts[k] = core.Point{X: i, Y: k}
		case DirDown:
			pts[k] = core.Point{X: i, Y: BoardSize - 1 - k}
		}
	}
	return pts
}

// Slide performs a move in the given direction.
func Slide(board Board, dir Direction) Move {
	if dir < DirUp || dir > DirRight {
		return Move{Board: board}
	}

	m := Move{Board: board}
	for i := range BoardSize {
		pts := lane(dir, i)

		var row [BoardSize]int
		for k, p := range pts {
			row[k] = board[p.Y][p.X]
		}

		out, score, merged := slideRow(row)
		m.Score += score
		for k, p := range pts {
			m.Board[p.Y][p.X] = out[k]
			if merged[k] {
				m.Merged = append(m.Merged, p)
			}
		}
	}
	m.Changed = m.Board != board
	return m
}

// EmptyCells returns the empty cells in row-major order.
func EmptyCells(board Board) []core.Point {
	var cells []core.Point
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return len(EmptyCells(board)) > 0 || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for _, row := range board {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}
