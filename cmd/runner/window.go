package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/window"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window. The mode defaults to "runner".

Controls:
  Space/Up/W, click or tap  - Jump
  P                         - Pause
  R or the Restart button   - Restart (after game over)
  Esc/Q                     - Quit

Examples:
  runner window
  runner window runner_fixed_gap --difficulty hard
  runner window --fps 120 --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	addRunFlags(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) {
	closeLog, err := setupLogging(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if err := applyRunFlags(); err != nil {
		fail("%v", err)
	}

	gameID := runner.ModeClassic
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown mode %q\nRun 'runner list' to see available modes.", gameID)
	}

	created, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	game, ok := created.(*runner.Game)
	if !ok {
		fail("mode %q cannot run in a window", gameID)
	}

	sink, closeSound := openSound()
	runErr := window.Run(game, runtimeConfig(0, 0), sink)
	closeSound()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
