package t2048

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// tileColors maps tile values to colors; larger tiles use the last entry.
var tileColors = []struct {
	value int
	color core.Color
}{
	{2, core.ColorWhite},
	{4, core.ColorBrightWhite},
	{8, core.ColorYellow},
	{16, core.ColorOrange},
	{32, core.ColorRed},
	{64, core.ColorBrightRed},
	{128, core.ColorBrightYellow},
	{256, core.ColorGreen},
	{512, core.ColorBrightGreen},
	{1024, core.ColorCyan},
	{2048, core.ColorBrightMagenta},
}

func tileColor(v int) core.Color {
	for _, tc := range tileColors {
		if v <= tc.value {
			return tc.color
		}
	}
	return core.ColorBrightMagenta
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", "Please resize terminal")
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("YOU REACHED 2048!", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Max tile: %d  |  Press R to restart", MaxTile(g.board)))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// renderHUD draws the score and move counter.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.sess.Score()))
	best := fmt.Sprintf("Best: %d", g.sess.HighScore())
	dst.DrawText(max(boardX+boardW-len(best), boardX), 1, best)

	moves := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX+(boardW-len(moves))/2, 2, moves)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridCorner(x, y))
			if x < BoardSize {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < BoardSize {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for y := range BoardSize {
		for x := range BoardSize {
			val := g.board[y][x]
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			p := core.Point{X: x, Y: y}
			color := tileColor(val)
			if slices.Contains(g.merged, p) || (g.hasNew && p == g.spawned) {
				color = core.ColorBrightCyan
			}
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}
