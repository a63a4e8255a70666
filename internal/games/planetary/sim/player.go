package sim

import (
	"math"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
)

// Direction is a facing or walking direction along the surface.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Sign returns -1 for left and 1 for right.
func (d Direction) Sign() float64 {
	return float64(d)
}

// Player is the controllable character.
type Player struct {
	RadialBody

	Direction     Direction
	Strafing      bool
	Weapons       []*Weapon
	CurrentWeapon int

	Score        int
	RobotsKilled int
	ShipsKilled  int
	ShotsFired   int

	speed         float64
	jump          float64
	platformAccel float64
	fallNudge     float64
	walking       bool
}

// NewPlayer places a player on the planet surface.
func NewPlayer(cfg config.PlayerConfig, weapons []config.WeaponConfig, planet *Planet, phys Physics) *Player {
	p := &Player{
		RadialBody: RadialBody{
			Angle:  core.NormalizeAngle(cfg.StartAngle),
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		Direction:     DirRight,
		speed:         cfg.Speed,
		jump:          cfg.Jump,
		platformAccel: cfg.PlatformAccel,
		fallNudge:     phys.FallNudge,
	}
	p.Radius = p.LandingRadius(planet)
	p.PrevRadius = p.Radius
	p.Landed = true
	p.InheritedAngularVelocity = planet.AngularVelocity
	p.refreshRender()

	for _, w := range weapons {
		p.Weapons = append(p.Weapons, NewWeapon(w))
	}
	return p
}

// MoveLeft walks counter-clockwise.
func (p *Player) MoveLeft() {
	p.move(DirLeft)
}

// MoveRight walks clockwise.
func (p *Player) MoveRight() {
	p.move(DirRight)
}

func (p *Player) move(dir Direction) {
	p.AngularVelocity = dir.Sign() * p.speed
	p.walking = true
	if !p.Strafing {
		p.Direction = dir
	}

	// Walking against the spin of the surface bleeds it off gradually.
	inherited := p.InheritedAngularVelocity
	if inherited*dir.Sign() < 0 {
		step := math.Min(p.platformAccel, math.Abs(inherited))
		p.InheritedAngularVelocity -= math.Copysign(step, inherited)
	}
}

// MoveClear stops walking. Facing is kept so the idle pose matches it.
func (p *Player) MoveClear() {
	p.AngularVelocity = 0
	p.walking = false
}

// Jump launches the player off the current surface. It only works while landed.
func (p *Player) Jump() bool {
	if !p.Landed {
		return false
	}
	p.RadialVelocity = p.jump
	return true
}

// FallStart drops the player through the platform underfoot.
func (p *Player) FallStart() {
	p.StartFalling(p.fallNudge)
}

// FallStop lets platforms catch the player again.
func (p *Player) FallStop() {
	p.StopFalling()
}

// SetStrafing decouples facing from movement while enabled.
func (p *Player) SetStrafing(on bool) {
	p.Strafing = on
}

// ChangeWeaponTo equips weapon i, taken modulo the number of weapons.
func (p *Player) ChangeWeaponTo(i int) {
	n := len(p.Weapons)
	if n == 0 {
		p.CurrentWeapon = 0
		return
	}
	p.CurrentWeapon = ((i % n) + n) % n
}

// NextWeapon cycles to the following weapon.
func (p *Player) NextWeapon() {
	p.ChangeWeaponTo(p.CurrentWeapon + 1)
}

// Weapon returns the equipped weapon, or nil if the player has none.
func (p *Player) Weapon() *Weapon {
	if len(p.Weapons) == 0 {
		return nil
	}
	return p.Weapons[p.CurrentWeapon]
}

// Shoot fires the equipped weapon.
func (p *Player) Shoot(ctx *Context) bool {
	w := p.Weapon()
	if w == nil {
		return false
	}
	if w.Shoot(ctx, p) {
		p.ShotsFired++
		return true
	}
	return false
}

// Update integrates the player's body for one tick.
func (p *Player) Update(ctx *Context) {
	p.Integrate(ctx.Planet, ctx.Platforms, ctx.Physics)
}

// clearFired drops last tick's fire animation requests.
func (p *Player) clearFired() {
	for _, w := range p.Weapons {
		w.Fired = false
	}
}

// tickWeapons cools down every weapon.
func (p *Player) tickWeapons() {
	for _, w := range p.Weapons {
		w.Tick()
	}
}

// AddScore implements Scorer.
func (p *Player) AddScore(points int) {
	p.Score += points
}

// RecordKill implements Scorer.
func (p *Player) RecordKill(kind Kill) {
	switch kind {
	case KillRobot:
		p.RobotsKilled++
	case KillSpaceship:
		p.ShipsKilled++
	}
}

// Animation returns the animation the renderer should play for the player.
func (p *Player) Animation() string {
	switch {
	case !p.Landed && p.RadialVelocity > 0:
		return "jump"
	case !p.Landed:
		return "fall"
	case p.walking:
		return "walk-" + p.Direction.String()
	default:
		return "idle-" + p.Direction.String()
	}
}

// FacingScale is -1 when the sprite should be mirrored.
func (p *Player) FacingScale() float64 {
	return p.Direction.Sign()
}
