package t2048

import (
	"errors"
	"math/rand"
)

// Spawn4Prob is the probability that a new tile is a 4 instead of a 2.
const Spawn4Prob = 0.10

var (
	// ErrBoardFull is returned when a tile is requested on a board with no empty cell.
	ErrBoardFull = errors.New("t2048: no empty cell to spawn into")
	// ErrInvalidBoard is returned for boards holding values other than 0 or powers of two.
	ErrInvalidBoard = errors.New("t2048: invalid board")
	// ErrNegativeScore is returned when loading a position with a negative score.
	ErrNegativeScore = errors.New("t2048: negative score")
)

// Spawner places new tiles using its own random source.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn puts a 2 (90%) or a 4 (10%) into a uniformly chosen empty cell.
// A full board is left untouched and ErrBoardFull is returned.
func (s *Spawner) Spawn(board *Board) (Cell, int, error) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, 0, ErrBoardFull
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < Spawn4Prob {
		value = 4
	}

	board.set(cell, value)
	return cell, value, nil
}
