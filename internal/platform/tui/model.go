package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/games/planetary"
	"github.com/vovakirdan/planetary/internal/registry"
	"github.com/vovakirdan/planetary/internal/storage"
)

// Publisher receives the game snapshot once per simulated tick.
type Publisher interface {
	Publish(v any)
}

// Optional capabilities a registry.Game may implement.
type (
	snapshotter interface {
		Snapshot() planetary.Snapshot
	}
	runReporter interface {
		Stats() planetary.RunStats
	}
	configured interface {
		Config() config.PlanetaryConfig
	}
)

// Options carries the platform services a Model uses. All are optional.
type Options struct {
	Store  *storage.Store
	Feed   Publisher
	Logger *log.Logger

	// Renderer styles output for one terminal; nil uses the local one.
	Renderer *lipgloss.Renderer

	// HoldTicks overrides how long a key press keeps a level action held.
	// Zero uses the game's input configuration.
	HoldTicks int
}

// withDefaults fills in a discarding logger when none is set.
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	feed       Publisher
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	held       *core.HeldActions
	gameState  core.GameState
	embedded   bool // Running inside a SessionModel
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
	fixedSeed  bool // Seed given by the caller, reused on restart
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so its configuration is available.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	opts = opts.withDefaults()

	renderer := defaultScreenRenderer
	if opts.Renderer != nil {
		renderer = NewScreenRenderer(opts.Renderer)
	}

	game.Reset(cfg)

	holdTicks := opts.HoldTicks
	if holdTicks <= 0 {
		holdTicks = config.DefaultPlanetaryConfig().Input.HoldTicks
		if c, ok := game.(configured); ok && c.Config().Input.HoldTicks > 0 {
			holdTicks = c.Config().Input.HoldTicks
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   renderer,
		store:      opts.Store,
		feed:       opts.Feed,
		logger:     opts.Logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		held:       core.NewHeldActions(holdTicks),
		gameState:  game.State(),
		fixedSeed:  fixedSeed,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.held) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only from a stopped game
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize adapts the screen and game to a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart with a fresh seed unless one was fixed at startup
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.held.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.GameOverNow {
		m.saveRun()
	}

	if m.feed != nil {
		if s, ok := m.game.(snapshotter); ok {
			m.feed.Publish(s.Snapshot())
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the score and run summary once per game over.
func (m *Model) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil {
		return
	}

	gameID := m.game.ID()
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(gameID, m.gameState.Score); err != nil {
			m.logger.Error("could not save score", "game", gameID, "error", err)
		}
	}

	if r, ok := m.game.(runReporter); ok {
		run := runRecord(gameID, r.Stats())
		if _, err := m.store.SaveRun(run); err != nil {
			m.logger.Error("could not save run", "game", gameID, "error", err)
			return
		}
		m.logger.Info("run saved", "game", gameID, "score", run.Score, "ticks", run.Ticks)
	}
}

// runRecord converts a game's run summary into a storage row.
func runRecord(gameID string, s planetary.RunStats) storage.Run {
	return storage.Run{
		GameID:       gameID,
		Score:        s.Score,
		Ticks:        s.Ticks,
		RobotsKilled: s.RobotsKilled,
		ShipsKilled:  s.ShipsKilled,
		ShotsFired:   s.ShotsFired,
		CitiesLeft:   s.CitiesLeft,
		Difficulty:   s.Difficulty,
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".planetary", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state observed on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
