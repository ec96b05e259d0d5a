package t2048

import "strconv"

// Snapshot is a copy of the session state for display and determinism checks.
type Snapshot struct {
	Board   Board
	Score   int
	State   State
	MaxTile int
	Moves   int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:   s.board,
		Score:   s.score,
		State:   s.state,
		MaxTile: s.board.MaxTile(),
		Moves:   s.moves,
	}
}

// GameOverMessage is the notification shown when the game ends.
func (s Snapshot) GameOverMessage() string {
	return "Game Over, final score = " + strconv.Itoa(s.Score)
}
