package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/games/planetary"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, as YAML.

The config is resolved from --config, then ~/.planetary/configs/planetary.yaml,
then ./configs/planetary.yaml, then the built-in defaults. The difficulty
preset is applied on top. Redirect the output to start a custom config.

With --defaults, the built-in default file is printed verbatim, comments
included.

Examples:
  planetary config > my-planetary.yaml
  planetary config --difficulty hard
  planetary config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(planetary.GameID))
		return err
	}

	cfg, err := config.LoadPlanetary(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPlanetaryPreset(&cfg, preset)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
