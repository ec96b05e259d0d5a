package t2048

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for row := range Size {
		for col := range Size {
			if board[row][col] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair returns true if two horizontally or vertically adjacent
// cells hold the same non-zero value. Rows and columns are scanned separately.
func HasAdjacentPair(board Board) bool {
	for row := range Size {
		for col := range Size - 1 {
			if v := board[row][col]; v != 0 && v == board[row][col+1] {
				return true
			}
		}
	}
	for col := range Size {
		for row := range Size - 1 {
			if v := board[row][col]; v != 0 && v == board[row+1][col] {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the board.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasAdjacentPair(board)
}

// IsTerminal returns true if the board is full and no neighbours can merge.
func IsTerminal(board Board) bool {
	return !CanMove(board)
}
