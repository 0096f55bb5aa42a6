package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

// addRunFlags registers the flags shared by play and window.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// setupLogging installs the default logger. Logs go to the --log file when
// set, to fallback otherwise. The returned func closes the file.
func setupLogging(fallback io.Writer) (func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if os.Getenv("RUNNER_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	return closeFn, nil
}

// applyRunFlags checks --fps, --config and --difficulty and hands the
// latter two to the runner.
func applyRunFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("config: --fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Report a broken custom file before the terminal is taken over
	if flagConfig != "" {
		if _, err := config.LoadRunner(flagConfig); err != nil {
			return err
		}
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openSound starts audio unless muted. A failing device only costs the sound.
// The returned sink is nil when there is no audio.
func openSound() (core.EventSink, func()) {
	if flagMute {
		return nil, func() {}
	}

	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Warn("audio disabled", "error", err)
		return nil, func() {}
	}
	return sm, sm.Cleanup
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
