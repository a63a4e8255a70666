// Package registry maps game IDs to factories. The game package registers
// itself in init(), so the platform can create fresh instances (one per
// terminal or SSH session) without importing game internals.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/planetary/internal/core"
)

// Game is the interface the platform drives once per tick.
// Implementations contain pure logic with no Bubble Tea dependency; the
// platform handles input mapping, timing, and terminal output.
type Game interface {
	// ID returns the identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Resizable is implemented by games that follow a terminal resize without
// restarting the run.
type Resizable interface {
	Resize(w, h int)
}

// Presettable is implemented by games with named difficulty presets.
type Presettable interface {
	SetPreset(name string)
	Preset() string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
