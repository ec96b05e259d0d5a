package t2048

// line returns the cells of line i for a move in dir, ordered from the edge
// tiles travel toward. Left and right walk row i, up and down walk column i.
func line(dir Direction, i int) [Size]Cell {
	var cells [Size]Cell
	for k := range Size {
		switch dir {
		case DirLeft:
			cells[k] = Cell{Row: i, Col: k}
		case DirRight:
			cells[k] = Cell{Row: i, Col: Size - 1 - k}
		case DirUp:
			cells[k] = Cell{Row: k, Col: i}
		case DirDown:
			cells[k] = Cell{Row: Size - 1 - k, Col: i}
		}
	}
	return cells
}

// shiftLine compacts the tiles of one line toward cells[0] and merges equal
// neighbours. A tile produced by a merge does not merge again in the same pass.
func (b *Board) shiftLine(cells [Size]Cell) (gained int, changed bool) {
	write := 0
	lastMerged := false

	for read := range Size {
		v := b.at(cells[read])
		if v == 0 {
			continue
		}
		b.set(cells[read], 0)

		if write > 0 && !lastMerged && b.at(cells[write-1]) == v {
			b.set(cells[write-1], v*2)
			gained += v * 2
			lastMerged = true
			changed = true
			continue
		}

		b.set(cells[write], v)
		if write != read {
			changed = true
		}
		lastMerged = false
		write++
	}

	return gained, changed
}

// Shift slides and merges every line of the board in dir, in place.
// It returns the score gained and whether any tile moved or merged.
// An unknown direction leaves the board untouched.
func (b *Board) Shift(dir Direction) (gained int, changed bool) {
	if dir < DirLeft || dir > DirDown {
		return 0, false
	}

	for i := range Size {
		g, c := b.shiftLine(line(dir, i))
		gained += g
		changed = changed || c
	}
	return gained, changed
}

// Slide performs a move on a copy of board.
// Returns the new board, score gained, and whether the board changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	gained, changed := board.Shift(dir)
	return board, gained, changed
}
