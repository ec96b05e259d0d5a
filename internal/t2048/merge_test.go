package t2048

import (
	"math/rand"
	"testing"
)

func TestShiftLineLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
		changed  bool
	}{
		{
			name:     "simple merge",
			input:    [Size]int{2, 2, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "merge after sliding together",
			input:    [Size]int{2, 0, 2, 0},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "merge with trailing tile",
			input:    [Size]int{2, 2, 2, 0},
			expected: [Size]int{4, 2, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "double merge",
			input:    [Size]int{2, 2, 2, 2},
			expected: [Size]int{4, 4, 0, 0},
			score:    8,
			changed:  true,
		},
		{
			name:     "merged tile does not merge again",
			input:    [Size]int{2, 2, 4, 0},
			expected: [Size]int{4, 4, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "merged tile does not absorb a slid tile",
			input:    [Size]int{4, 4, 8, 0},
			expected: [Size]int{8, 8, 0, 0},
			score:    8,
			changed:  true,
		},
		{
			name:     "no merge possible",
			input:    [Size]int{2, 4, 8, 16},
			expected: [Size]int{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    [Size]int{0, 0, 2, 2},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "slide with multiple gaps",
			input:    [Size]int{2, 0, 0, 2},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "already compact",
			input:    [Size]int{4, 2, 0, 0},
			expected: [Size]int{4, 2, 0, 0},
		},
		{
			name:     "empty row",
			input:    [Size]int{0, 0, 0, 0},
			expected: [Size]int{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    [Size]int{0, 4, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := Board{tt.input}
			score, changed := board.shiftLine(line(DirLeft, 0))

			if board[0] != tt.expected {
				t.Errorf("shiftLine(%v) = %v, want %v", tt.input, board[0], tt.expected)
			}
			if score != tt.score {
				t.Errorf("shiftLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if changed != tt.changed {
				t.Errorf("shiftLine(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestSlideDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		board    Board
		expected Board
		score    int
	}{
		{
			name: "left",
			dir:  DirLeft,
			board: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			name: "right",
			dir:  DirRight,
			board: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			name: "up",
			dir:  DirUp,
			board: Board{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: Board{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			name: "down",
			dir:  DirDown,
			board: Board{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			name: "right merges the pair nearest the wall first",
			dir:  DirRight,
			board: Board{
				{2, 2, 2, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: Board{
				{0, 0, 2, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, changed := Slide(tt.board, tt.dir)

			if result != tt.expected {
				t.Errorf("Slide %v: got\n%v\nwant\n%v", tt.dir, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Slide %v score = %d, want %d", tt.dir, score, tt.score)
			}
			if !changed {
				t.Errorf("Slide %v should indicate board changed", tt.dir)
			}
		})
	}
}

func TestSlideDoesNotMutateInput(t *testing.T) {
	board := Board{{2, 2, 0, 0}}
	orig := board

	Slide(board, DirLeft)

	if board != orig {
		t.Errorf("Slide mutated its argument: %v", board)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if _, _, changed := Slide(board, DirLeft); changed {
		t.Error("Slide left should not change already left-aligned tiles")
	}
	if _, _, changed := Slide(board, DirUp); changed {
		t.Error("Slide up should not change tiles already on the top row")
	}
}

func TestUnknownDirectionIsNoop(t *testing.T) {
	board := Board{{2, 2, 0, 0}}

	result, score, changed := Slide(board, Direction(42))

	if changed || score != 0 || result != board {
		t.Errorf("Slide(Direction(42)) = %v, %d, %v; want no-op", result, score, changed)
	}
}

func randomBoard(rng *rand.Rand) Board {
	var b Board
	for row := range Size {
		for col := range Size {
			if rng.Intn(3) == 0 {
				continue
			}
			b[row][col] = 2 << rng.Intn(4)
		}
	}
	return b
}

func TestSlideProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := []Direction{DirLeft, DirRight, DirUp, DirDown}

	for i := range 500 {
		board := randomBoard(rng)
		for _, dir := range dirs {
			once, gained, _ := Slide(board, dir)

			// Merges conserve the tile sum.
			if once.Sum() != board.Sum() {
				t.Fatalf("case %d %v: sum %d -> %d\n%v", i, dir, board.Sum(), once.Sum(), board)
			}
			if !once.Valid() {
				t.Fatalf("case %d %v: invalid result\n%v", i, dir, once)
			}
			if gained < 0 || gained%4 != 0 {
				t.Fatalf("case %d %v: gained %d", i, dir, gained)
			}

			// Every line is packed against the edge: no tile after a gap.
			for k := range Size {
				gap := false
				for _, c := range line(dir, k) {
					if once.at(c) == 0 {
						gap = true
						continue
					}
					if gap {
						t.Fatalf("case %d %v: tile left behind a gap\n%v", i, dir, once)
					}
				}
			}

			// Without a merge there is nothing left to do in the same direction.
			// After a merge a second slide may merge the new tiles.
			if gained == 0 {
				twice, g2, changed := Slide(once, dir)
				if changed || g2 != 0 || twice != once {
					t.Fatalf("case %d %v: second slide changed the board\n%v\n->\n%v", i, dir, once, twice)
				}
			}
		}
	}
}

func TestSecondSlideMergesNewTiles(t *testing.T) {
	board := Board{{4, 4, 8, 0}}

	once, gained, changed := Slide(board, DirLeft)
	if want := (Board{{8, 8, 0, 0}}); once != want || gained != 8 || !changed {
		t.Fatalf("first Slide = %v, %d, %v; want %v, 8, true", once, gained, changed, want)
	}

	twice, gained, changed := Slide(once, DirLeft)
	if want := (Board{{16, 0, 0, 0}}); twice != want || gained != 16 || !changed {
		t.Errorf("second Slide = %v, %d, %v; want %v, 16, true", twice, gained, changed, want)
	}
}
