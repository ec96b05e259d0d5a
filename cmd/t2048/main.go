// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                 - Play (full-screen UI on a terminal, console mode otherwise)
//	t2048 play            - Play in the full-screen UI
//	t2048 console         - Play by typing commands, one per line
//	t2048 config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Use this config file instead of searching for one
//	--seed <value>       - Set RNG seed for reproducible games
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle: slide the tiles of a 4x4 grid, merge equal
neighbours and keep going until no move is left.

Available commands:
  play     - Full-screen game (default on a terminal)
  console  - Line-by-line game for pipes and scripts
  config   - Show the effective configuration

Examples:
  t2048
  t2048 play --seed 42
  echo "left up right" | tr ' ' '\n' | t2048 console
  t2048 config > ~/.t2048/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runDefault,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: search ~/.t2048 and ./configs)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(configCmd)
}

// runDefault picks the full-screen UI when both ends are a terminal.
func runDefault(cmd *cobra.Command, args []string) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		runPlay(cmd, args)
		return
	}
	runConsole(cmd, args)
}
