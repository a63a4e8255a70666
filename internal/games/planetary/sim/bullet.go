package sim

import (
	"math"

	"github.com/vovakirdan/planetary/internal/core"
)

// Kill identifies what kind of target a scorer destroyed.
type Kill int

const (
	KillRobot Kill = iota
	KillSpaceship
)

// Scorer receives credit for kills made by its bullets.
type Scorer interface {
	AddScore(points int)
	RecordKill(kind Kill)
}

// Bullet flies in a straight Cartesian line and hits polar-sector targets.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Damage float64
	TTL    int
	Owner  Scorer // Non-owning, for score attribution only

	dead bool
}

// Alive reports whether the bullet is still in flight.
func (b *Bullet) Alive() bool {
	return !b.dead
}

// Angle returns the direction of travel, for rendering.
func (b *Bullet) Angle() float64 {
	return math.Atan2(b.VY, b.VX)
}

// update moves the bullet and resolves at most one hit.
func (b *Bullet) update(ctx *Context) {
	b.X += b.VX
	b.Y += b.VY

	for _, r := range ctx.Robots.All() {
		if !r.Alive() {
			continue
		}
		if SectorHit(b.X, b.Y, r.Angle, r.Radius, r.Width, r.Height) {
			r.Damage(b.Damage, b.Owner)
			b.dead = true
			return
		}
	}
	for _, s := range ctx.Ships.All() {
		if !s.Alive() {
			continue
		}
		if SectorHit(b.X, b.Y, s.Angle, s.Radius, s.Width, s.Height) {
			s.Damage(b.Damage, b.Owner)
			b.dead = true
			return
		}
	}

	b.TTL--
	if b.TTL <= 0 {
		b.dead = true
	}
}

// SectorHit tests a Cartesian point against a target occupying a polar
// sector centered at (targetAngle, targetRadius) with linear width w and
// radial height h.
func SectorHit(x, y, targetAngle, targetRadius, w, h float64) bool {
	r, a := core.CartesianToPolar(x, y)
	if r < targetRadius-h/2 || r > targetRadius+h/2 {
		return false
	}
	half := w / (2 * targetRadius)
	return core.AngleInBand(a, targetAngle-half, targetAngle+half+half)
}

// BulletSet owns every live bullet.
type BulletSet struct {
	items []*Bullet
}

// NewBulletSet creates an empty set.
func NewBulletSet() *BulletSet {
	return &BulletSet{items: make([]*Bullet, 0, 32)}
}

// Spawn adds a bullet at (x, y) traveling along angle (Cartesian, radians).
func (s *BulletSet) Spawn(x, y, angle, speed, damage float64, ttl int, owner Scorer) *Bullet {
	b := &Bullet{
		X:      x,
		Y:      y,
		VX:     speed * math.Cos(angle),
		VY:     speed * math.Sin(angle),
		Damage: damage,
		TTL:    ttl,
		Owner:  owner,
	}
	s.items = append(s.items, b)
	return b
}

// All returns the bullets, including any destroyed this tick.
func (s *BulletSet) All() []*Bullet {
	return s.items
}

// Len returns the number of bullets.
func (s *BulletSet) Len() int {
	return len(s.items)
}

// Update advances every bullet.
func (s *BulletSet) Update(ctx *Context) {
	for _, b := range s.items {
		if b.Alive() {
			b.update(ctx)
		}
	}
}

// Compact drops destroyed bullets.
func (s *BulletSet) Compact() {
	live := s.items[:0]
	for _, b := range s.items {
		if b.Alive() {
			live = append(live, b)
		}
	}
	clear(s.items[len(live):])
	s.items = live
}
