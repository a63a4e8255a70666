package sim

import (
	"math"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
)

// ShipPhase is a step of the scripted spaceship lifecycle.
type ShipPhase int

const (
	PhaseApproaching ShipPhase = iota
	PhaseHovering
	PhaseRetreating
	PhaseRemoved
)

// String returns the phase name.
func (p ShipPhase) String() string {
	switch p {
	case PhaseApproaching:
		return "approaching"
	case PhaseHovering:
		return "hovering"
	case PhaseRetreating:
		return "retreating"
	case PhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Smoothstep eases t in [0, 1] with zero slope at both ends.
func Smoothstep(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Spaceship descends from far out, drops robots while hovering, then leaves.
type Spaceship struct {
	Angle    float64
	Radius   float64
	Width    float64
	Height   float64
	X, Y     float64
	Rotation float64

	Phase             ShipPhase
	Elapsed           int
	Duration          int
	StartRadius       float64
	StopRadius        float64
	LaunchesRemaining int

	Health    float64
	MaxHealth float64
	Alpha     float64

	// Launched is set on the tick a robot is dropped.
	Launched bool

	launchInterval int
	launchCooldown int
	killScore      int
	dead           bool
}

// NewSpaceship creates an approaching ship at angle. stopRadius is where it
// hovers.
func NewSpaceship(cfg config.SpaceshipConfig, angle, stopRadius float64, launches int) *Spaceship {
	s := &Spaceship{
		Angle:             core.NormalizeAngle(angle),
		Radius:            cfg.StartRadius,
		Width:             cfg.Width,
		Height:            cfg.Height,
		Phase:             PhaseApproaching,
		Duration:          max(cfg.TravelTicks, 1),
		StartRadius:       cfg.StartRadius,
		StopRadius:        stopRadius,
		LaunchesRemaining: launches,
		Health:            cfg.Health,
		MaxHealth:         cfg.Health,
		Alpha:             1,
		launchInterval:    max(cfg.LaunchInterval, 1),
		killScore:         cfg.KillScore,
	}
	s.refreshRender()
	return s
}

// StopRadius returns the hover radius for a ship of the given height:
// clear of the planet and every platform by margin.
func StopRadius(planet *Planet, platforms *PlatformSet, height, margin float64) float64 {
	top := planet.SurfaceRadius()
	if platforms != nil {
		top = math.Max(top, platforms.MaxSurfaceRadius())
	}
	return top + height/2 + margin
}

// Alive reports whether the ship is still in play.
func (s *Spaceship) Alive() bool {
	return !s.dead
}

// Damage applies a hit. Destruction removes the ship in any phase.
func (s *Spaceship) Damage(amount float64, by Scorer) {
	if s.dead {
		return
	}
	s.Health -= amount
	s.Alpha = math.Max(0, s.Health/s.MaxHealth)
	if s.Health > 0 {
		return
	}
	s.dead = true
	s.Phase = PhaseRemoved
	if by != nil {
		by.AddScore(s.killScore)
		by.RecordKill(KillSpaceship)
	}
}

// Update advances the scripted lifecycle by one tick.
func (s *Spaceship) Update(ctx *Context) {
	s.Launched = false

	switch s.Phase {
	case PhaseApproaching:
		s.Elapsed++
		s.Radius = s.interpolate(s.StartRadius, s.StopRadius)
		if s.Elapsed >= s.Duration {
			s.Radius = s.StopRadius
			s.Phase = PhaseHovering
			s.Elapsed = 0
			s.launchCooldown = s.launchInterval
		}
	case PhaseHovering:
		if s.LaunchesRemaining <= 0 {
			s.Phase = PhaseRetreating
			break
		}
		s.launchCooldown--
		if s.launchCooldown > 0 {
			break
		}
		ctx.Robots.Spawn(s.Angle, s.Radius, ctx)
		s.Launched = true
		s.LaunchesRemaining--
		s.launchCooldown = s.launchInterval
		if s.LaunchesRemaining <= 0 {
			s.Phase = PhaseRetreating
		}
	case PhaseRetreating:
		s.Elapsed++
		s.Radius = s.interpolate(s.StopRadius, s.StartRadius)
		if s.Elapsed >= s.Duration {
			s.Radius = s.StartRadius
			s.Phase = PhaseRemoved
			s.dead = true
		}
	}

	s.refreshRender()
}

func (s *Spaceship) interpolate(from, to float64) float64 {
	t := Smoothstep(float64(s.Elapsed) / float64(s.Duration))
	return from + (to-from)*t
}

func (s *Spaceship) refreshRender() {
	s.X, s.Y = core.PolarToCartesian(s.Radius, s.Angle)
	s.Rotation = s.Angle
}

// Animation returns the animation the renderer should play.
func (s *Spaceship) Animation() string {
	if s.Launched {
		return "launch"
	}
	return s.Phase.String()
}

// SpaceshipSet owns the ships and spawns a new one on a fixed interval,
// regardless of how many are already in play.
type SpaceshipSet struct {
	cfg      config.SpaceshipConfig
	items    []*Spaceship
	cooldown int
	spawned  int
}

// NewSpaceshipSet creates an empty set whose first ship arrives after the
// configured delay.
func NewSpaceshipSet(cfg config.SpaceshipConfig) *SpaceshipSet {
	return &SpaceshipSet{
		cfg:      cfg,
		items:    make([]*Spaceship, 0, 4),
		cooldown: cfg.FirstSpawn,
	}
}

// Spawn launches a ship at a random angle with a random launch count.
func (s *SpaceshipSet) Spawn(ctx *Context) *Spaceship {
	angle := ctx.Rand.Float64() * core.TwoPi
	launches := s.cfg.MinLaunches
	if span := s.cfg.MaxLaunches - s.cfg.MinLaunches; span > 0 {
		launches += ctx.Rand.Intn(span)
	}
	stop := StopRadius(ctx.Planet, ctx.Platforms, s.cfg.Height, s.cfg.HoverMargin)
	ship := NewSpaceship(s.cfg, angle, stop, launches)
	s.items = append(s.items, ship)
	s.spawned++
	return ship
}

// All returns the ships, including any removed this tick.
func (s *SpaceshipSet) All() []*Spaceship {
	return s.items
}

// Len returns the number of ships.
func (s *SpaceshipSet) Len() int {
	return len(s.items)
}

// Spawned returns how many ships have been spawned in total.
func (s *SpaceshipSet) Spawned() int {
	return s.spawned
}

// Update advances every live ship and then runs the spawner.
func (s *SpaceshipSet) Update(ctx *Context) {
	for _, ship := range s.items {
		if ship.Alive() {
			ship.Update(ctx)
		}
	}

	s.cooldown--
	if s.cooldown <= 0 {
		s.Spawn(ctx)
		s.cooldown = max(ctx.SpawnInterval, 1)
	}
}

// Compact drops destroyed and departed ships.
func (s *SpaceshipSet) Compact() {
	live := s.items[:0]
	for _, ship := range s.items {
		if ship.Alive() {
			live = append(live, ship)
		}
	}
	clear(s.items[len(live):])
	s.items = live
}
