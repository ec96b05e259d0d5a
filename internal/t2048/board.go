// Package t2048 implements the rules of 2048: the 4x4 board, the slide-and-merge
// move, tile spawning, game-over detection and the session that ties them together.
package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Size is the board dimension.
const Size = 4

// Board is a 4x4 grid indexed as board[row][col]. 0 is an empty cell;
// every other cell holds a power of two >= 2.
type Board [Size][Size]int

// Cell addresses one board position.
type Cell struct {
	Row, Col int
}

// Direction is a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectionFor maps a directional action to a Direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	default:
		return 0, false
	}
}

func (b *Board) at(c Cell) int {
	return b[c.Row][c.Col]
}

func (b *Board) set(c Cell, v int) {
	b[c.Row][c.Col] = v
}

// EmptyCells returns all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for row := range Size {
		for col := range Size {
			if b[row][col] == 0 {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for row := range Size {
		for col := range Size {
			maxVal = max(maxVal, b[row][col])
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for row := range Size {
		for col := range Size {
			total += b[row][col]
		}
	}
	return total
}

// Valid reports whether every non-empty cell holds a power of two >= 2.
func (b Board) Valid() bool {
	for row := range Size {
		for col := range Size {
			v := b[row][col]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}

// String formats the board as four lines of right-aligned values, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range Size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if b[row][col] == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
				continue
			}
			sb.WriteString(fmt.Sprintf("%5d", b[row][col]))
		}
	}
	return sb.String()
}

// ParseBoard reads 16 comma- or space-separated values in row-major order.
func ParseBoard(s string) (Board, error) {
	var b Board
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
	if len(fields) != Size*Size {
		return b, fmt.Errorf("%w: want %d values, got %d", ErrInvalidBoard, Size*Size, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return b, fmt.Errorf("%w: value %d %q: %w", ErrInvalidBoard, i+1, f, err)
		}
		b[i/Size][i%Size] = v
	}
	if !b.Valid() {
		return b, fmt.Errorf("%w: tiles must be 0 or a power of two >= 2", ErrInvalidBoard)
	}
	return b, nil
}
