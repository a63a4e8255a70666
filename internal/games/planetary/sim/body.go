package sim

import (
	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
)

// Physics holds the integration constants shared by every radial body.
type Physics struct {
	Gravity          float64 // Added to radial velocity each tick (negative)
	TerminalVelocity float64 // Radial velocity never drops below this
	ReferenceRadius  float64 // Radius at which angular velocity is taken at face value
	FallNudge        float64 // Radius drop applied when starting to fall while landed
}

// NewPhysics builds integration constants from config. A zero reference
// radius means the planet radius.
func NewPhysics(cfg config.PhysicsConfig, planetRadius float64) Physics {
	ref := cfg.ReferenceRadius
	if ref <= 0 {
		ref = planetRadius
	}
	return Physics{
		Gravity:          cfg.Gravity,
		TerminalVelocity: cfg.TerminalVelocity,
		ReferenceRadius:  ref,
		FallNudge:        cfg.FallNudge,
	}
}

// RadialBody is the kinematic state shared by the player and robots:
// a position in polar coordinates subject to gravity and landing.
type RadialBody struct {
	Angle           float64 // Normalized position around the center
	AngularVelocity float64 // Controlled intent, per tick at the reference radius
	Radius          float64 // Distance from the center to the body's middle
	PrevRadius      float64
	RadialVelocity  float64
	Landed          bool
	Falling         bool // Disables platform landing while set

	// InheritedAngularVelocity is the spin of the surface the body last
	// arrived on. It keeps applying while airborne and is only reset when
	// the body lands on a surface it was not already resting on.
	InheritedAngularVelocity float64

	Width  float64
	Height float64

	// Derived render state, refreshed at the end of Integrate.
	X, Y     float64
	Rotation float64

	surface *Platform // Platform landed on this tick, nil for planet or air
}

// HalfAngularWidth converts the body's linear half-width into an angle at
// its current radius.
func (b *RadialBody) HalfAngularWidth() float64 {
	return b.Width / (2 * b.Radius)
}

// Bottom returns the radius of the body's lowest point.
func (b *RadialBody) Bottom() float64 {
	return b.Radius - b.Height/2
}

// LandingRadius returns the radius the body rests at on the planet.
func (b *RadialBody) LandingRadius(planet *Planet) float64 {
	return planet.Radius + b.Height/2
}

// OnPlanet reports whether the body is resting exactly on the planet surface.
func (b *RadialBody) OnPlanet(planet *Planet) bool {
	return b.Landed && b.Radius == b.LandingRadius(planet)
}

// Surface returns the platform the body is standing on, or nil.
func (b *RadialBody) Surface() *Platform {
	if !b.Landed {
		return nil
	}
	return b.surface
}

// StartFalling lets the body drop through the platform it stands on.
// The first transition while landed nudges the body below the surface.
func (b *RadialBody) StartFalling(nudge float64) {
	if b.Falling {
		return
	}
	if b.Landed {
		b.Radius -= nudge
	}
	b.Falling = true
}

// StopFalling re-enables platform landing.
func (b *RadialBody) StopFalling() {
	b.Falling = false
}

// Integrate advances the body by one tick: gravity, planet and platform
// landing, altitude-scaled angular motion, and render position.
func (b *RadialBody) Integrate(planet *Planet, platforms *PlatformSet, phys Physics) {
	b.PrevRadius = b.Radius

	b.RadialVelocity += phys.Gravity
	if b.RadialVelocity < phys.TerminalVelocity {
		b.RadialVelocity = phys.TerminalVelocity
	}
	b.Radius += b.RadialVelocity

	halfH := b.Height / 2
	bottom := b.Radius - halfH
	prevBottom := b.PrevRadius - halfH

	// A body resting on the same surface as last tick keeps its inherited
	// spin, which walking against the surface may have bled off.
	wasLanded, prevSurface := b.Landed, b.surface
	inherited := b.InheritedAngularVelocity

	landed := false
	b.surface = nil

	if bottom <= planet.Radius {
		b.Radius = planet.Radius + halfH
		b.RadialVelocity = 0
		if !wasLanded || prevSurface != nil {
			inherited = planet.AngularVelocity
		}
		landed = true
	}

	if !b.Falling && platforms != nil {
		margin := b.HalfAngularWidth()
		for _, p := range platforms.All() {
			// Only a downward crossing this tick catches the body.
			if p.SurfaceRadius > prevBottom || p.SurfaceRadius < bottom {
				continue
			}
			if !p.Covers(b.Angle, margin) {
				continue
			}
			b.Radius = p.SurfaceRadius + halfH
			b.RadialVelocity = 0
			if wasLanded && prevSurface == p {
				inherited = b.InheritedAngularVelocity
			} else {
				inherited = p.AngularVelocity
			}
			b.surface = p
			landed = true
			break
		}
	}

	b.Landed = landed
	b.InheritedAngularVelocity = inherited

	b.Angle += b.AngularVelocity * (phys.ReferenceRadius / b.Radius)
	b.Angle += b.InheritedAngularVelocity
	b.Angle = core.NormalizeAngle(b.Angle)

	assertf(b.Radius >= b.LandingRadius(planet), "radius %f below landing surface %f", b.Radius, b.LandingRadius(planet))
	assertf(b.Angle >= 0 && b.Angle < core.TwoPi, "angle %f not normalized", b.Angle)

	b.refreshRender()
}

// refreshRender derives Cartesian position and rotation from polar state.
func (b *RadialBody) refreshRender() {
	b.X, b.Y = core.PolarToCartesian(b.Radius, b.Angle)
	b.Rotation = b.Angle
}
