package core

import "strings"

// Action is a semantic command, abstracted from physical key presses or typed words.
// Both front ends translate their input into Actions before touching the game.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, a, h - slide tiles left
	ActionRight          // Right arrow, d, l - slide tiles right
	ActionUp             // Up arrow, w, k - slide tiles up
	ActionDown           // Down arrow, s, j - slide tiles down
	ActionNewGame        // n - discard the current game and start over
	ActionHelp           // ? - toggle the key help
	ActionQuit           // q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionNewGame:
		return "NewGame"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four directions.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionDown
}

// actionWords uses the same letters as the default key bindings, so "l" is
// right in both front ends.
var actionWords = map[string]Action{
	"left":  ActionLeft,
	"a":     ActionLeft,
	"h":     ActionLeft,
	"right": ActionRight,
	"d":     ActionRight,
	"l":     ActionRight,
	"up":    ActionUp,
	"w":     ActionUp,
	"k":     ActionUp,
	"down":  ActionDown,
	"s":     ActionDown,
	"j":     ActionDown,
	"new":   ActionNewGame,
	"n":     ActionNewGame,
	"help":  ActionHelp,
	"?":     ActionHelp,
	"quit":  ActionQuit,
	"q":     ActionQuit,
	"exit":  ActionQuit,
}

// ParseAction maps a typed word to an action. Case and surrounding spaces are ignored.
// Unknown words return ActionNone and false.
func ParseAction(word string) (Action, bool) {
	a, ok := actionWords[strings.ToLower(strings.TrimSpace(word))]
	return a, ok
}
