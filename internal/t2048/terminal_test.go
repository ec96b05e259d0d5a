package t2048

import "testing"

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		terminal bool
	}{
		{
			name: "all distinct",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			terminal: true,
		},
		{
			name: "checkerboard",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			terminal: true,
		},
		{
			name: "horizontal pair in the first row",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
		},
		{
			name: "horizontal pair in the last row",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 8, 8},
			},
		},
		{
			name: "vertical pair in the last column",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 8},
				{4, 2, 4, 8},
			},
		},
		{
			name: "vertical pair in the first column",
			board: Board{
				{2, 4, 2, 4},
				{2, 8, 4, 2},
				{16, 4, 2, 4},
				{4, 2, 4, 2},
			},
		},
		{
			name: "one empty cell",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
		},
		{
			name:  "empty board",
			board: Board{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTerminal(tt.board); got != tt.terminal {
				t.Errorf("IsTerminal = %v, want %v\n%v", got, tt.terminal, tt.board)
			}
			if CanMove(tt.board) == tt.terminal {
				t.Errorf("CanMove should be the negation of IsTerminal")
			}
		})
	}
}

// IsTerminal must agree with actually trying every direction.
func TestIsTerminalMatchesSlide(t *testing.T) {
	boards := []Board{
		{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}},
		{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 8, 8}},
		{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 8}, {4, 2, 4, 8}},
		{{2, 0, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}},
	}

	for i, b := range boards {
		movable := false
		for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
			if _, _, changed := Slide(b, dir); changed {
				movable = true
			}
		}
		if IsTerminal(b) == movable {
			t.Errorf("board %d: IsTerminal = %v but some slide changed = %v", i, IsTerminal(b), movable)
		}
	}
}
