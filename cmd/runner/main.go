// runner is an endless side-scrolling runner for the terminal and the desktop.
//
// Usage:
//
//	runner list              - List available modes
//	runner play [mode]       - Play in the terminal (menu when no mode given)
//	runner window [mode]     - Play in a desktop window
//	runner config            - Print the default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the runner to register its modes
	_ "github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless Runner - jump over obstacles for as long as you can",
	Long: `Endless Runner is a side-scrolling game: the world scrolls towards you,
obstacles come at random intervals and you jump over them. The longer you
survive, the faster it gets.

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the default config

Examples:
  runner list
  runner play
  runner play runner_fixed_gap --difficulty hard
  runner window --seed 42
  runner config > ~/.arcade/configs/runner.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
