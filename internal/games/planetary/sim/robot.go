package sim

import (
	"math"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
)

// RobotState is the robot AI state. Landing and falling are handled by the
// embedded RadialBody and are not states of their own.
type RobotState int

const (
	RobotWalking RobotState = iota
	RobotAttacking
)

// String returns the state name.
func (s RobotState) String() string {
	switch s {
	case RobotWalking:
		return "walking"
	case RobotAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// Robot is a ground unit that walks until it reaches a city, then strikes
// it once per arm cycle.
type Robot struct {
	RadialBody

	State          RobotState
	Direction      Direction
	Health         float64
	StartingHealth float64
	Alpha          float64 // Opacity, health / starting health
	Arm            Animation

	// Struck is set on the tick the arm lands a blow.
	Struck bool

	speed         float64
	baseHealth    float64
	killScore     int
	strikeFrame   int
	target        *City
	prevDirection Direction
	dead          bool
}

// NewRobot creates a walking robot at the given polar position.
func NewRobot(cfg config.RobotConfig, angle, radius, startingHealth, speed float64, dir Direction) *Robot {
	r := &Robot{
		RadialBody: RadialBody{
			Angle:      core.NormalizeAngle(angle),
			Radius:     radius,
			PrevRadius: radius,
			Width:      cfg.Width,
			Height:     cfg.Height,
		},
		Health:         startingHealth,
		StartingHealth: startingHealth,
		Alpha:          1,
		Arm:            NewAnimation(cfg.ArmFrames, cfg.ArmFrameTicks),
		speed:          speed,
		baseHealth:     cfg.BaseHealth,
		killScore:      cfg.KillScore,
		strikeFrame:    cfg.StrikeFrame,
	}
	r.walk(dir)
	r.refreshRender()
	return r
}

// Alive reports whether the robot has not been destroyed.
func (r *Robot) Alive() bool {
	return !r.dead
}

// Target returns the city being attacked, or nil.
func (r *Robot) Target() *City {
	return r.target
}

func (r *Robot) walk(dir Direction) {
	r.State = RobotWalking
	r.Direction = dir
	r.AngularVelocity = dir.Sign() * r.speed
	r.target = nil
	r.Arm.Reset()
}

func (r *Robot) attack(c *City) {
	r.State = RobotAttacking
	r.prevDirection = r.Direction
	r.AngularVelocity = 0
	r.target = c
	r.Arm.Reset()
}

// Damage applies a hit. The killing blow credits by with a score that
// scales with how tough this robot started out.
func (r *Robot) Damage(amount float64, by Scorer) {
	if r.dead {
		return
	}
	r.Health -= amount
	r.Alpha = math.Max(0, r.Health/r.StartingHealth)
	if r.Health > 0 {
		return
	}
	r.dead = true
	if by != nil {
		by.AddScore(r.KillScore())
		by.RecordKill(KillRobot)
	}
}

// KillScore returns the points awarded for destroying this robot.
func (r *Robot) KillScore() int {
	if r.baseHealth <= 0 {
		return r.killScore
	}
	return int(math.Floor(float64(r.killScore) * r.StartingHealth / r.baseHealth))
}

// Update integrates the body and then runs the AI.
func (r *Robot) Update(ctx *Context) {
	r.Struck = false
	r.Integrate(ctx.Planet, ctx.Platforms, ctx.Physics)

	switch r.State {
	case RobotAttacking:
		if r.target == nil || !r.target.Alive() {
			r.walk(r.prevDirection)
			return
		}
		if r.Arm.Advance() && r.Arm.Frame() == r.strikeFrame {
			r.target.Strike()
			r.Struck = true
		}
	case RobotWalking:
		if !r.OnPlanet(ctx.Planet) {
			return
		}
		for _, c := range ctx.Cities.All() {
			if !c.Alive() {
				continue
			}
			if core.AngularDistance(c.Angle, r.Angle) <= c.HalfAngularWidth() {
				r.attack(c)
				return
			}
		}
	}
}

// Animation returns the body animation the renderer should play.
func (r *Robot) Animation() string {
	if r.State == RobotAttacking {
		return "attack"
	}
	if !r.Landed {
		return "fall"
	}
	return "walk-" + r.Direction.String()
}

// FacingScale is -1 when the sprite should be mirrored.
func (r *Robot) FacingScale() float64 {
	return r.Direction.Sign()
}

// RobotSet owns every robot and numbers spawns so later robots start tougher.
type RobotSet struct {
	cfg     config.RobotConfig
	items   []*Robot
	spawned int
}

// NewRobotSet creates an empty set.
func NewRobotSet(cfg config.RobotConfig) *RobotSet {
	return &RobotSet{cfg: cfg, items: make([]*Robot, 0, 16)}
}

// StartingHealth returns the health the next spawned robot gets at the
// given toughness multiplier.
func (s *RobotSet) StartingHealth(toughness float64) float64 {
	return s.cfg.BaseHealth * (1 + float64(s.spawned)*s.cfg.HealthGrowth) * toughness
}

// Spawn drops a robot at the given polar position facing a random way.
func (s *RobotSet) Spawn(angle, radius float64, ctx *Context) *Robot {
	dir := DirRight
	if ctx.Rand.Intn(2) == 0 {
		dir = DirLeft
	}
	r := NewRobot(s.cfg, angle, radius, s.StartingHealth(ctx.Toughness), ctx.RobotSpeed, dir)
	s.spawned++
	s.items = append(s.items, r)
	return r
}

// All returns the robots, including any destroyed this tick.
func (s *RobotSet) All() []*Robot {
	return s.items
}

// Len returns the number of robots.
func (s *RobotSet) Len() int {
	return len(s.items)
}

// Spawned returns how many robots have been spawned in total.
func (s *RobotSet) Spawned() int {
	return s.spawned
}

// Update advances every live robot.
func (s *RobotSet) Update(ctx *Context) {
	for _, r := range s.items {
		if r.Alive() {
			r.Update(ctx)
		}
	}
}

// Compact drops destroyed robots.
func (s *RobotSet) Compact() {
	live := s.items[:0]
	for _, r := range s.items {
		if r.Alive() {
			live = append(live, r)
		}
	}
	clear(s.items[len(live):])
	s.items = live
}
