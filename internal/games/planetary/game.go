// Package planetary adapts the polar combat simulation to the arcade
// platform: it maps abstract input actions to player control, draws the
// world into a character screen, and exposes per-entity render state.
package planetary

import (
	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/games/planetary/sim"
	"github.com/vovakirdan/planetary/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "planetary"

// Minimum playable screen size in cells.
const (
	MinScreenW = 40
	MinScreenH = 16
)

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// DifficultyPreset returns the preset currently applied on Reset.
func DifficultyPreset() string {
	if difficultyPreset == "" {
		return string(config.DifficultyNormal)
	}
	return string(difficultyPreset)
}

// Game implements registry.Game on top of a sim.World.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.PlanetaryConfig
	difficulty *config.DifficultyManager
	preset     config.DifficultyPreset
	world      *sim.World

	paused   bool
	strafing bool
	gameOver bool

	stars          []star
	screenTooSmall bool
}

// New creates a Planetary game using the preset set by SetDifficultyPreset.
// Call Reset before stepping it.
func New() *Game {
	return &Game{preset: difficultyPreset}
}

// SetPreset overrides the difficulty preset for this game only. It takes
// effect on the next Reset.
func (g *Game) SetPreset(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Preset returns the name of the preset applied on Reset.
func (g *Game) Preset() string {
	if g.preset == "" {
		return string(config.DifficultyNormal)
	}
	return string(g.preset)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Planetary"
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.PlanetaryConfig {
	return g.cfg
}

// World exposes the running simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadPlanetary(configPath)
	if err != nil {
		cfg = config.DefaultPlanetaryConfig()
	}

	// Apply difficulty preset if set
	if g.preset != "" {
		config.ApplyPlanetaryPreset(&cfg, g.preset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.world = sim.NewWorld(cfg, runtime.Seed, g.difficulty)

	g.paused = false
	g.strafing = false
	g.gameOver = false

	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.stars = newStarField(runtime.Seed, cfg.Render.Stars)
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionStrafe) {
		g.strafing = !g.strafing
	}

	over := g.world.Step(g.controls(in))
	if over {
		g.gameOver = true
	}

	return core.StepResult{
		State:       g.State(),
		GameOverNow: over,
	}
}

// controls translates an input frame into simulation controls.
func (g *Game) controls(in core.InputFrame) sim.Controls {
	c := sim.Controls{
		Left:       in.Has(core.ActionLeft),
		Right:      in.Has(core.ActionRight),
		Jump:       in.Has(core.ActionJump),
		Fall:       in.Has(core.ActionFall),
		Shoot:      in.Has(core.ActionShoot),
		Strafe:     g.strafing,
		NextWeapon: in.Has(core.ActionNextWeapon),
	}
	switch {
	case in.Has(core.ActionWeapon1):
		c.Weapon = 1
	case in.Has(core.ActionWeapon2):
		c.Weapon = 2
	}
	return c
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Strafing reports whether strafe mode is toggled on.
func (g *Game) Strafing() bool {
	return g.strafing
}

// RunStats is the summary persisted when a run ends.
type RunStats struct {
	Score        int
	Ticks        int
	RobotsKilled int
	ShipsKilled  int
	ShotsFired   int
	CitiesLeft   int
	Difficulty   string
}

// Stats returns the summary of the current run.
func (g *Game) Stats() RunStats {
	s := g.world.Stats()
	return RunStats{
		Score:        s.Score,
		Ticks:        s.Ticks,
		RobotsKilled: s.RobotsKilled,
		ShipsKilled:  s.ShipsKilled,
		ShotsFired:   s.ShotsFired,
		CitiesLeft:   s.CitiesLeft,
		Difficulty:   g.Preset(),
	}
}

var (
	_ registry.Game        = (*Game)(nil)
	_ registry.Resizable   = (*Game)(nil)
	_ registry.Presettable = (*Game)(nil)
)
