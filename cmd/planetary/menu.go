package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetary/internal/games/planetary"
	"github.com/vovakirdan/planetary/internal/platform/tui"
	"github.com/vovakirdan/planetary/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the title menu",
	Long: `Open the title menu to pick a difficulty, start a game or browse
the scoreboard. Leaving a finished or paused game with Esc/B returns here.

Examples:
  planetary menu
  planetary menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.Options{
		Store:  store,
		Logger: logger,
	}

	if err := tui.RunSession(runtimeConfig(), opts, planetary.DifficultyPreset()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
