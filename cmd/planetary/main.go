// planetary is a terminal arcade game: defend the cities of a small
// spinning planet from walking robots and the spaceships that drop them.
//
// Usage:
//
//	planetary play           - Play immediately
//	planetary menu           - Title menu with difficulty and scoreboard
//	planetary serve          - Start SSH server for remote play
//	planetary scores         - Show high scores and recent runs
//	planetary config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.planetary/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import the game to register it
	_ "github.com/vovakirdan/planetary/internal/games/planetary"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planetary",
	Short: "Planetary - defend a spinning world in your terminal",
	Long: `Planetary is an arcade game played around a small rotating planet.
Walk the surface, jump between orbiting platforms and shoot down the
robots and spaceships before they level your cities.

Available commands:
  play     - Start a game directly
  menu     - Title menu (difficulty, scoreboard)
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the effective YAML configuration

Examples:
  planetary play
  planetary play --difficulty hard --feed :8080
  planetary menu
  planetary serve --ssh :2222
  planetary scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.planetary/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "planetary",
		Level:           level,
	}), nil
}

// tuiLogger returns a logger writing to ~/.planetary/planetary.log so that
// log lines never land on the alternate screen. The returned closer must be
// called on exit. Without a writable log file, logging is discarded.
func tuiLogger() (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".planetary")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "planetary.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger, err := newLogger(w)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// terminalSize returns the size of the controlling terminal, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
