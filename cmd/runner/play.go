package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. Without a mode a picker menu is shown.

Controls:
  Space/Up   - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start and gentler speed-ups
  normal - The default pacing
  hard   - Faster start, frequent speed-ups, tighter gaps
  fixed  - No speed-ups, stays at the config's base speed

Examples:
  runner play
  runner play runner --difficulty easy
  runner play runner_fixed_gap --seed 7
  runner play --config ./my-runner.yaml --log runner.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addRunFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	// The terminal is taken over, so logs only go to a file
	closeLog, err := setupLogging(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if err := applyRunFlags(); err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fail("unknown mode %q\nRun 'runner list' to see available modes.", gameID)
		}
	} else {
		result, menuErr := tui.RunMenu(cfg)
		if menuErr != nil {
			fail("%v", menuErr)
		}
		if result.Quit {
			return
		}
		gameID = result.GameID
		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	sink, closeSound := openSound()
	runErr := tui.Run(game, cfg, sink)
	closeSound()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
