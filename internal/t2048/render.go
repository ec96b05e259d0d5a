package t2048

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3

	boardW = Size*cellWidth + 1 // +1 for right border
	boardH = Size*cellHeight + 1

	// MinScreenW and MinScreenH are the smallest screen the layout fits in,
	// including the game-over box.
	MinScreenW = 40
	MinScreenH = hudHeight + boardH
)

// Render draws the session into dst, with the game-over box on top of the
// board once the game has ended. Rendering does not change the session,
// so drawing twice gives the same buffer.
func (s *Session) Render(dst *core.Screen) {
	s.render(dst, true)
}

// RenderBoard draws the HUD and the board without the game-over box, for
// front ends that report the end of the game themselves.
func (s *Session) RenderBoard(dst *core.Screen) {
	s.render(dst, false)
}

func (s *Session) render(dst *core.Screen, overlay bool) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	snap := s.Snapshot()
	area := dst.Bounds().Centered(boardW, hudHeight+boardH)
	board := core.NewRect(area.X, area.Y+hudHeight, boardW, boardH)

	renderHUD(dst, snap, area)
	renderBoard(dst, snap.Board, board)

	if overlay && snap.State == StateGameOver {
		renderGameOver(dst, snap, board)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(dst.Bounds(), y, "Window too small", core.ColorText)
	dst.DrawTextCentered(dst.Bounds(), y+1, "Please resize terminal", core.ColorText)
}

// renderHUD draws the title, score and best tile above the board.
func renderHUD(dst *core.Screen, snap Snapshot, area core.Rect) {
	dst.DrawTextCentered(area, area.Y, "2 0 4 8", core.ColorTitle)

	scoreStr := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(area.X, area.Y+1, scoreStr, core.ColorText)

	bestStr := fmt.Sprintf("Best: %d", snap.MaxTile)
	dst.DrawTextColored(area.Right()-utf8.RuneCountInString(bestStr), area.Y+1, bestStr, core.ColorText)
}

// renderBoard draws the grid lines and the tiles.
func renderBoard(dst *core.Screen, board Board, r core.Rect) {
	for gy := range Size + 1 {
		for gx := range Size + 1 {
			px := r.X + gx*cellWidth
			py := r.Y + gy*cellHeight

			dst.SetColored(px, py, gridCorner(gx, gy), core.ColorFrame)

			if gx < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorFrame)
				}
			}
			if gy < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorFrame)
				}
			}
		}
	}

	for row := range Size {
		for col := range Size {
			val := board[row][col]
			color := core.TileColor(val)

			inner := core.NewRect(r.X+col*cellWidth+1, r.Y+row*cellHeight+1, cellWidth-1, cellHeight-1)
			dst.FillRect(inner, ' ', color)
			if val == 0 {
				continue
			}
			dst.DrawTextCentered(inner, inner.Y, strconv.Itoa(val), color)
		}
	}
}

func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderGameOver draws a box over the board with the final score.
func renderGameOver(dst *core.Screen, snap Snapshot, board core.Rect) {
	lines := []string{
		"GAME OVER",
		snap.GameOverMessage(),
		"N: New game | Q: Quit",
	}

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	box.X = core.Clamp(box.X, 0, max(dst.Width()-box.W, 0))

	dst.FillRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)
	for i, l := range lines {
		dst.DrawTextCentered(box, box.Y+1+i, l, core.ColorOverlay)
	}
}
