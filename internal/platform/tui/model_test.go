package tui

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/games/planetary"
	"github.com/vovakirdan/planetary/internal/storage"
)

type recordingPublisher struct {
	mu     sync.Mutex
	frames []any
}

func (p *recordingPublisher) Publish(v any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, v)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 7}
}

func newTestModel(t *testing.T, opts Options) (Model, *planetary.Game) {
	t.Helper()
	game := planetary.New()
	return NewModel(game, testConfig(), opts), game
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func killCities(g *planetary.Game) {
	for _, c := range g.World().Cities().All() {
		c.Damage(c.Health)
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, game := newTestModel(t, Options{HoldTicks: 10})
	start := game.World().Player.Angle

	m = press(t, m, runeKey('d'))
	for range 5 {
		m = tick(t, m)
	}

	if game.World().Player.Angle == start {
		t.Error("holding right should move the player")
	}
	if game.World().Tick() != 5 {
		t.Errorf("Tick = %d, want 5", game.World().Tick())
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, Options{Store: store})
	m = tick(t, m)

	killCities(game)
	for range 10 {
		m = tick(t, m)
	}
	if !m.GameState().GameOver {
		t.Fatal("game should be over")
	}

	runs, err := store.RecentRuns(planetary.GameID, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].CitiesLeft != 0 || runs[0].Ticks != 2 {
		t.Errorf("run = %+v, want 0 cities left after 2 ticks", runs[0])
	}
	if runs[0].Difficulty != game.Preset() {
		t.Errorf("Difficulty = %q, want %q", runs[0].Difficulty, game.Preset())
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m, game := newTestModel(t, Options{})
	m = tick(t, m)
	killCities(game)
	m = tick(t, m)

	m = press(t, m, runeKey('r'))
	m = tick(t, m)

	if m.GameState().GameOver {
		t.Error("restart should start a new run")
	}
	if game.World().Cities().LiveCount() == 0 {
		t.Error("cities should be restored")
	}
}

func TestModelRestartSeed(t *testing.T) {
	tests := []struct {
		name      string
		seed      int64
		wantFixed bool
	}{
		{"fixed seed is reused", 42, true},
		{"clock seed is replaced", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Seed = tt.seed
			game := planetary.New()
			m := NewModel(game, cfg, Options{})
			first := m.config.Seed
			if first == 0 {
				t.Fatal("model should never run with seed 0")
			}

			m = tick(t, m)
			killCities(game)
			m = tick(t, m)
			m = press(t, m, runeKey('r'))
			m = tick(t, m)

			if m.GameState().GameOver {
				t.Fatal("restart should start a new run")
			}
			if got := m.config.Seed == first; got != tt.wantFixed {
				t.Errorf("seed after restart = %d, first run used %d", m.config.Seed, first)
			}
		})
	}
}

func TestModelPublishesSnapshots(t *testing.T) {
	pub := &recordingPublisher{}
	m, _ := newTestModel(t, Options{Feed: pub})

	for range 3 {
		m = tick(t, m)
	}

	if len(pub.frames) != 3 {
		t.Fatalf("published %d frames, want 3", len(pub.frames))
	}
	snap, ok := pub.frames[2].(planetary.Snapshot)
	if !ok {
		t.Fatalf("published %T, want planetary.Snapshot", pub.frames[2])
	}
	if snap.Tick != 3 {
		t.Errorf("last snapshot tick = %d, want 3", snap.Tick)
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.embedded = true

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() {
		t.Error("back should be ignored while playing")
	}
	m = tick(t, m)

	m = press(t, m, runeKey('p'))
	m = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, Options{})
	for range 4 {
		m = tick(t, m)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)

	if game.World().Tick() != 4 {
		t.Errorf("resize restarted the run: tick %d", game.World().Tick())
	}
	if !strings.Contains(m.View(), "Score:") {
		t.Error("view should render the HUD")
	}
}

func TestSessionMenuToGame(t *testing.T) {
	s := NewSessionModel(testConfig(), Options{}, "tester", "hard")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)

	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	game, ok := s.game.game.(*planetary.Game)
	if !ok {
		t.Fatalf("game is %T", s.game.game)
	}
	if game.Preset() != "hard" {
		t.Errorf("Preset = %q, want hard", game.Preset())
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	s := NewSessionModel(testConfig(), Options{}, "", "")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenScoreboard {
		t.Fatalf("screen = %v, want scoreboard", s.screen)
	}
	if !strings.Contains(s.View(), "No runs recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Errorf("screen = %v, want menu", s.screen)
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "normal", nil)

	update := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	update(tea.KeyMsg{Type: tea.KeyDown})
	update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Preset() != "hard" {
		t.Errorf("Preset = %q, want hard", m.Preset())
	}
	update(tea.KeyMsg{Type: tea.KeyLeft})
	update(tea.KeyMsg{Type: tea.KeyLeft})
	update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Preset() != "fixed" {
		t.Errorf("Preset = %q, want fixed after wrapping", m.Preset())
	}
	if m.Choice() != MenuChoiceNone {
		t.Errorf("Choice = %v, want none", m.Choice())
	}
	if !strings.Contains(m.View(), "Difficulty: ‹ fixed ›") {
		t.Error("menu should show the selected difficulty")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hello")
	s.SetColored(0, 1, '@', core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "@") {
		t.Errorf("rendered output missing content: %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("got %d lines, want 2", len(lines))
	}
}
