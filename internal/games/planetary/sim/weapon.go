package sim

import (
	"math"
	"strings"

	"github.com/vovakirdan/planetary/internal/config"
)

// WeaponKind is the closed set of weapon variants.
type WeaponKind int

const (
	Pistol WeaponKind = iota
	Rifle
)

// String returns the display name of the weapon kind.
func (k WeaponKind) String() string {
	switch k {
	case Pistol:
		return "Pistol"
	case Rifle:
		return "Rifle"
	default:
		return "Unknown"
	}
}

// ParseWeaponKind maps a config string to a kind. Unknown names become Pistol.
func ParseWeaponKind(s string) WeaponKind {
	if strings.EqualFold(s, "rifle") {
		return Rifle
	}
	return Pistol
}

// Weapon is a cooldown-gated bullet spawner.
type Weapon struct {
	Kind        WeaponKind
	Cooldown    int
	CooldownMax int
	Damage      float64
	BulletSpeed float64
	Offset      float64 // Distance ahead of the firer where bullets appear
	Spread      float64 // Max jitter in radians (rifle only)
	BulletTTL   int

	// Fired is set on the tick the weapon fires so the renderer can play
	// the fire animation.
	Fired bool
}

// NewWeapon creates a weapon from config.
func NewWeapon(cfg config.WeaponConfig) *Weapon {
	return &Weapon{
		Kind:        ParseWeaponKind(cfg.Kind),
		CooldownMax: cfg.Cooldown,
		Damage:      cfg.Damage,
		BulletSpeed: cfg.BulletSpeed,
		Offset:      cfg.Offset,
		Spread:      cfg.Spread,
		BulletTTL:   cfg.BulletTTL,
	}
}

// Ready reports whether the weapon can fire this tick.
func (w *Weapon) Ready() bool {
	return w.Cooldown <= 0
}

// Shoot fires from the owner's position along its facing.
// It is a no-op while cooling down and returns whether a bullet was spawned.
func (w *Weapon) Shoot(ctx *Context, owner *Player) bool {
	if !w.Ready() {
		return false
	}
	w.addBullet(ctx, owner)
	w.Fired = true
	w.Cooldown = w.CooldownMax
	return true
}

// addBullet spawns the variant-specific projectile.
func (w *Weapon) addBullet(ctx *Context, owner *Player) {
	// Tangent to the surface at the owner's angle, mirrored when facing left.
	facing := owner.Angle
	if owner.Direction == DirLeft {
		facing += math.Pi
	}

	x := owner.X + w.Offset*math.Cos(facing)
	y := owner.Y + w.Offset*math.Sin(facing)

	angle := facing
	if w.Kind == Rifle && w.Spread > 0 {
		angle += (ctx.Rand.Float64()*2 - 1) * w.Spread
	}

	ctx.Bullets.Spawn(x, y, angle, w.BulletSpeed, w.Damage, w.BulletTTL, owner)
}

// Tick decrements the cooldown. It runs every tick regardless of firing.
func (w *Weapon) Tick() {
	if w.Cooldown > 0 {
		w.Cooldown--
	}
}
