package t2048

import (
	"fmt"
	"math/rand"
)

// State is the session state machine position.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MoveResult describes what a single move did.
type MoveResult struct {
	Changed      bool // Whether any tile moved or merged
	Gained       int  // Score added by merges
	Spawned      Cell // Where the new tile went (valid only if Changed)
	SpawnedValue int  // Value of the new tile, 0 if none
	GameOver     bool // Whether this move ended the game
}

// Session owns one game: the board, the score and the state.
// It is not safe for concurrent use; front ends drive it from a single goroutine.
type Session struct {
	board   Board
	score   int
	state   State
	moves   int
	spawner *Spawner
}

// NewSession creates a session drawing tiles from rng and starts the first game.
func NewSession(rng *rand.Rand) *Session {
	s := &Session{spawner: NewSpawner(rng)}
	s.Reset()
	return s
}

// Reset starts a new game: an empty board with two spawned tiles and score 0.
func (s *Session) Reset() {
	s.board = Board{}
	s.score = 0
	s.moves = 0
	s.state = StatePlaying

	s.mustSpawn()
	s.mustSpawn()
}

// Load replaces the current position with board and score and recomputes the state.
func (s *Session) Load(board Board, score int) error {
	if !board.Valid() {
		return ErrInvalidBoard
	}
	if score < 0 {
		return ErrNegativeScore
	}

	s.board = board
	s.score = score
	s.moves = 0
	s.state = StatePlaying
	if IsTerminal(board) {
		s.state = StateGameOver
	}
	return nil
}

// Move applies one directional move.
// Moves in the game-over state, and moves that change nothing, have no effect.
func (s *Session) Move(dir Direction) MoveResult {
	if s.state == StateGameOver {
		return MoveResult{}
	}

	gained, changed := s.board.Shift(dir)
	if !changed {
		return MoveResult{}
	}

	s.score += gained
	s.moves++
	cell, value := s.mustSpawn()

	res := MoveResult{
		Changed:      true,
		Gained:       gained,
		Spawned:      cell,
		SpawnedValue: value,
	}

	if IsTerminal(s.board) {
		s.state = StateGameOver
		res.GameOver = true
	}
	return res
}

// mustSpawn adds a tile. Callers only spawn after a reset or a move that
// changed the board, so there is always room.
func (s *Session) mustSpawn() (Cell, int) {
	cell, value, err := s.spawner.Spawn(&s.board)
	if err != nil {
		panic(fmt.Sprintf("t2048: spawn after accepted move: %v", err))
	}
	return cell, value
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.state == StateGameOver
}

// Moves returns the number of accepted moves since the last reset or load.
func (s *Session) Moves() int {
	return s.moves
}
