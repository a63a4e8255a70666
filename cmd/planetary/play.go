package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/games/planetary"
	"github.com/vovakirdan/planetary/internal/platform/feed"
	"github.com/vovakirdan/planetary/internal/platform/tui"
	"github.com/vovakirdan/planetary/internal/registry"
	"github.com/vovakirdan/planetary/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFeed       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Planetary",
	Long: `Start a game of Planetary.

Controls:
  A/D, Left/Right  - Walk around the planet
  W/Up             - Jump
  S/Down           - Drop through a platform
  Space/F          - Shoot
  X                - Toggle strafe (keep facing while walking)
  1/2, Tab         - Select / cycle weapon
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot to ~/.planetary/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

With --feed, every tick's entity snapshot is streamed as JSON over
WebSocket at ws://<addr>/feed for external renderers.

Examples:
  planetary play
  planetary play --difficulty hard
  planetary play --config ./my-planetary.yaml
  planetary play --feed 127.0.0.1:8080`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagFeed, "feed", "", "Serve a WebSocket snapshot feed on this address")
}

// applyGameFlags hands the config path and difficulty to the game package.
func applyGameFlags() error {
	planetary.SetConfigPath(flagConfig)
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	planetary.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(planetary.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.Options{
		Store:  store,
		Logger: logger,
	}

	if flagFeed != "" {
		hub := feed.NewHub()
		srv := feed.NewServer(flagFeed, hub, logger)
		if err := srv.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("feed shutdown", "error", err)
			}
		}()
		opts.Feed = hub
	}

	logger.Info("starting game", "difficulty", planetary.DifficultyPreset(), "seed", flagSeed)

	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
