package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the full-screen terminal UI",
	Long: `Start a game in the full-screen terminal UI.

Controls (default bindings, see 't2048 config'):
  Arrows/WASD/hjkl  - Slide tiles
  N                 - New game
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file (or log.file) is set.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --log-file /tmp/t2048.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, loaded, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The alternate screen owns the terminal, so stderr is not an option.
	logger, closer, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		fail("%v", err)
	}
	reportSkipped(logger, loaded)

	session := newSession(cfg, logger)
	runErr := tui.Run(session, cfg, runtimeConfig(), logger)

	// Close log file before potential exit
	closer.Close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
