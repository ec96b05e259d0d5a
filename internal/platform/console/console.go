// Package console is a line-oriented front end: it reads one command per line
// and prints the board as plain text. It suits pipes, scripts and terminals
// where the full-screen UI is not wanted.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

const helpText = `commands:
  left, a, h    slide left
  right, d, l   slide right
  up, w, k      slide up
  down, s, j    slide down
  new, n        start a new game
  help, ?       show this list
  quit, q       exit`

// Runner reads commands from in and writes boards to out.
type Runner struct {
	session *t2048.Session
	in      io.Reader
	out     *bufio.Writer
	screen  *core.Screen
	logger  *log.Logger
}

// New creates a runner for session. A nil logger discards log output.
func New(session *t2048.Session, in io.Reader, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		session: session,
		in:      in,
		out:     bufio.NewWriter(out),
		screen:  core.NewScreen(t2048.MinScreenW, t2048.MinScreenH),
		logger:  logger,
	}
}

// Run prints the board, then handles commands until quit, end of input or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	r.printBoard()
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("console: write: %w", err)
	}

	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		quit := r.handle(scanner.Text())
		if err := r.out.Flush(); err != nil {
			return fmt.Errorf("console: write: %w", err)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("console: read: %w", err)
	}
	return nil
}

// handle runs one input line and reports whether the runner should stop.
func (r *Runner) handle(line string) bool {
	word := strings.TrimSpace(line)
	if word == "" {
		return false
	}

	action, ok := core.ParseAction(word)
	if !ok {
		r.logger.Debug("unknown command", "input", word)
		fmt.Fprintf(r.out, "unknown command %q (type help)\n", word)
		return false
	}

	switch action {
	case core.ActionQuit:
		r.logger.Info("quit", "score", r.session.Score(), "moves", r.session.Moves())
		return true

	case core.ActionHelp:
		fmt.Fprintln(r.out, helpText)

	case core.ActionNewGame:
		r.logger.Info("new game", "previous_score", r.session.Score())
		r.session.Reset()
		r.printBoard()

	default:
		dir, _ := t2048.DirectionFor(action)
		r.move(dir)
	}
	return false
}

func (r *Runner) move(dir t2048.Direction) {
	if r.session.GameOver() {
		fmt.Fprintln(r.out, "game is over (type new or quit)")
		return
	}

	res := r.session.Move(dir)
	if !res.Changed {
		r.logger.Debug("no-op move", "dir", dir)
		fmt.Fprintln(r.out, "no move")
		return
	}

	r.logger.Debug("move", "dir", dir, "gained", res.Gained, "score", r.session.Score())
	r.printBoard()

	if res.GameOver {
		snap := r.session.Snapshot()
		r.logger.Info(snap.GameOverMessage(), "max_tile", snap.MaxTile, "moves", snap.Moves)
		fmt.Fprintln(r.out, snap.GameOverMessage())
	}
}

// printBoard renders the board and writes it without trailing blanks.
// The game-over box is left out; move prints the final score line instead.
func (r *Runner) printBoard() {
	r.session.RenderBoard(r.screen)

	lines := strings.Split(r.screen.String(), "\n")
	for _, l := range lines {
		fmt.Fprintln(r.out, strings.TrimRight(l, " "))
	}
}
