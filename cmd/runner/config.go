package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner config",
	Long: `Print the embedded default config as YAML. Save it to
~/.arcade/configs/runner.yaml or ./configs/runner.yaml to customize it.

With --resolved, print the config a run would actually use after the file
search and the --difficulty preset.

Examples:
  runner config
  runner config --resolved --difficulty hard
  runner config --resolved --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyRunnerPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Print(string(out))
}
