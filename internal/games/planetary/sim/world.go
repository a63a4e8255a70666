package sim

import (
	"math/rand"

	"github.com/vovakirdan/planetary/internal/config"
)

// Context is what every entity sees during a tick. Planet, platforms and
// cities are read-only for entities; bullets, robots and ships may be
// spawned into.
type Context struct {
	Planet    *Planet
	Platforms *PlatformSet
	Cities    *CitySet
	Bullets   *BulletSet
	Robots    *RobotSet
	Ships     *SpaceshipSet
	Physics   Physics
	Rand      *rand.Rand
	Tick      int

	// Difficulty-scaled values, refreshed at the start of each tick.
	Toughness     float64
	RobotSpeed    float64
	SpawnInterval int
}

// Controls is the player's input for one tick. Left, Right, Fall, Shoot and
// Strafe are levels; Jump and NextWeapon are edges.
type Controls struct {
	Left       bool
	Right      bool
	Jump       bool
	Fall       bool
	Shoot      bool
	Strafe     bool
	NextWeapon bool
	Weapon     int // 1-based slot to equip, 0 for no change
}

// Stats summarizes a run.
type Stats struct {
	Score        int
	Ticks        int
	RobotsKilled int
	ShipsKilled  int
	ShotsFired   int
	CitiesLeft   int
}

// World owns every entity and advances them one tick at a time.
type World struct {
	cfg        config.PlanetaryConfig
	difficulty *config.DifficultyManager

	Player *Player
	ctx    Context

	falling  bool
	gameOver bool
}

// NewWorld builds a fresh world. Equal seeds and control sequences produce
// identical runs.
func NewWorld(cfg config.PlanetaryConfig, seed int64, difficulty *config.DifficultyManager) *World {
	if difficulty == nil {
		difficulty = config.NewDifficultyManager(cfg.Difficulty)
	}

	planet := NewPlanet(cfg.Planet)
	phys := NewPhysics(cfg.Physics, planet.Radius)

	w := &World{
		cfg:        cfg,
		difficulty: difficulty,
		Player:     NewPlayer(cfg.Player, cfg.Weapons, planet, phys),
		ctx: Context{
			Planet:    planet,
			Platforms: NewPlatformSet(cfg.Platforms),
			Cities:    NewCitySet(cfg.Cities, planet),
			Bullets:   NewBulletSet(),
			Robots:    NewRobotSet(cfg.Robots),
			Ships:     NewSpaceshipSet(cfg.Spaceships),
			Physics:   phys,
			Rand:      rand.New(rand.NewSource(seed)),
		},
	}
	w.refreshDifficulty()
	return w
}

// Context exposes the tick context, for rendering and tests.
func (w *World) Context() *Context {
	return &w.ctx
}

// Planet returns the planet.
func (w *World) Planet() *Planet { return w.ctx.Planet }

// Platforms returns the platforms.
func (w *World) Platforms() *PlatformSet { return w.ctx.Platforms }

// Cities returns the cities.
func (w *World) Cities() *CitySet { return w.ctx.Cities }

// Bullets returns the bullets.
func (w *World) Bullets() *BulletSet { return w.ctx.Bullets }

// Robots returns the robots.
func (w *World) Robots() *RobotSet { return w.ctx.Robots }

// Ships returns the spaceships.
func (w *World) Ships() *SpaceshipSet { return w.ctx.Ships }

// Tick returns the number of ticks simulated.
func (w *World) Tick() int {
	return w.ctx.Tick
}

// Score returns the player's score.
func (w *World) Score() int {
	return w.Player.Score
}

// GameOver reports whether every city has fallen.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Stats returns the run summary so far.
func (w *World) Stats() Stats {
	return Stats{
		Score:        w.Player.Score,
		Ticks:        w.ctx.Tick,
		RobotsKilled: w.Player.RobotsKilled,
		ShipsKilled:  w.Player.ShipsKilled,
		ShotsFired:   w.Player.ShotsFired,
		CitiesLeft:   w.ctx.Cities.LiveCount(),
	}
}

// Step advances the world by one tick. It returns true only on the tick the
// last city falls; once the game is over the world no longer changes.
func (w *World) Step(c Controls) bool {
	if w.gameOver {
		return false
	}

	w.ctx.Tick++
	w.refreshDifficulty()
	ctx := &w.ctx

	w.Player.clearFired()
	w.applyControls(c)

	w.Player.Update(ctx)
	ctx.Robots.Update(ctx)

	ctx.Planet.Update()
	ctx.Platforms.Update()
	ctx.Cities.Update(ctx.Planet)

	w.Player.tickWeapons()

	ctx.Bullets.Update(ctx)
	ctx.Ships.Update(ctx)

	ctx.Bullets.Compact()
	ctx.Robots.Compact()
	ctx.Ships.Compact()
	ctx.Cities.Compact()

	if ctx.Cities.Len() == 0 {
		w.gameOver = true
		return true
	}
	return false
}

func (w *World) applyControls(c Controls) {
	p := w.Player

	p.SetStrafing(c.Strafe)

	switch {
	case c.Left && !c.Right:
		p.MoveLeft()
	case c.Right && !c.Left:
		p.MoveRight()
	default:
		p.MoveClear()
	}

	if c.Fall != w.falling {
		if c.Fall {
			p.FallStart()
		} else {
			p.FallStop()
		}
		w.falling = c.Fall
	}

	if c.Jump {
		p.Jump()
	}

	if c.Weapon > 0 {
		p.ChangeWeaponTo(c.Weapon - 1)
	}
	if c.NextWeapon {
		p.NextWeapon()
	}

	if c.Shoot {
		p.Shoot(&w.ctx)
	}
}

func (w *World) refreshDifficulty() {
	score, ticks := w.Player.Score, w.ctx.Tick
	d := w.difficulty
	w.ctx.Toughness = d.Toughness(score, ticks)
	w.ctx.RobotSpeed = d.Speed(w.cfg.Robots.Speed, score, ticks)
	w.ctx.SpawnInterval = d.SpawnInterval(w.cfg.Spaceships.SpawnInterval, w.cfg.Spaceships.MinSpawnInterval, score, ticks)
}
