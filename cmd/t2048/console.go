package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/console"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var flagBoard string

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play by typing one command per line",
	Long: `Play on standard input and output without the full-screen UI.

Commands: left (a, h), right (d, l), up (w, k), down (s, j), new (n), help (?), quit (q).
The board is printed after every accepted move; "no move" means nothing slid.
Logs go to stderr unless --log-file (or log.file) is set.

Examples:
  t2048 console
  printf 'left\nup\n' | t2048 console --seed 7
  t2048 console --board "2,2,0,0,0,0,0,0,0,0,0,0,0,0,0,0"`,
	Args: cobra.NoArgs,
	Run:  runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&flagBoard, "board", "", "Start from 16 comma-separated values (row-major)")
}

func runConsole(_ *cobra.Command, _ []string) {
	cfg, loaded, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()
	reportSkipped(logger, loaded)

	session := newSession(cfg, logger)
	if flagBoard != "" {
		board, parseErr := t2048.ParseBoard(flagBoard)
		if parseErr != nil {
			fail("--board: %v", parseErr)
		}
		if loadErr := session.Load(board, 0); loadErr != nil {
			fail("--board: %v", loadErr)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if runErr := console.New(session, os.Stdin, os.Stdout, logger).Run(ctx); runErr != nil && ctx.Err() == nil {
		closer.Close()
		fail("%v", runErr)
	}
}
