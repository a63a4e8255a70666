package sim

import (
	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
)

// Planet is the fixed-radius disc at the world center.
type Planet struct {
	Radius          float64
	SpinAngle       float64
	AngularVelocity float64
}

// NewPlanet creates a planet from config.
func NewPlanet(cfg config.PlanetConfig) *Planet {
	return &Planet{
		Radius:          cfg.Radius,
		AngularVelocity: cfg.AngularVelocity,
	}
}

// SurfaceRadius returns the radius bodies land at, before their half-height.
func (p *Planet) SurfaceRadius() float64 {
	return p.Radius
}

// Update advances the planet's spin by one tick.
func (p *Planet) Update() {
	p.SpinAngle = core.NormalizeAngle(p.SpinAngle + p.AngularVelocity)
}

// Platform is a spinning circular-arc ledge at a fixed radius.
// Only StartAngle changes after creation.
type Platform struct {
	StartAngle      float64
	AngularWidth    float64
	SurfaceRadius   float64 // Landing height
	Thickness       float64 // Visual only
	AngularVelocity float64
}

// Update advances the platform's rotation by one tick.
func (p *Platform) Update() {
	p.StartAngle = core.NormalizeAngle(p.StartAngle + p.AngularVelocity)
}

// Covers reports whether angle lies over the platform, widened on both
// sides by margin (the angular half-width of whatever is being tested).
func (p *Platform) Covers(angle, margin float64) bool {
	return core.AngleInBand(angle, p.StartAngle-margin, p.StartAngle+p.AngularWidth+margin)
}

// PlatformSet owns all platforms. Order has no effect on behavior.
type PlatformSet struct {
	items []*Platform
}

// NewPlatformSet creates platforms from config.
func NewPlatformSet(cfgs []config.PlatformConfig) *PlatformSet {
	s := &PlatformSet{items: make([]*Platform, 0, len(cfgs))}
	for _, c := range cfgs {
		s.items = append(s.items, &Platform{
			StartAngle:      core.NormalizeAngle(c.StartAngle),
			AngularWidth:    c.AngularWidth,
			SurfaceRadius:   c.SurfaceRadius,
			Thickness:       c.Thickness,
			AngularVelocity: c.AngularVelocity,
		})
	}
	return s
}

// All returns the platforms.
func (s *PlatformSet) All() []*Platform {
	return s.items
}

// Len returns the number of platforms.
func (s *PlatformSet) Len() int {
	return len(s.items)
}

// Update rotates every platform by one tick.
func (s *PlatformSet) Update() {
	for _, p := range s.items {
		p.Update()
	}
}

// MaxSurfaceRadius returns the highest landing surface, or 0 without platforms.
func (s *PlatformSet) MaxSurfaceRadius() float64 {
	highest := 0.0
	for _, p := range s.items {
		if p.SurfaceRadius > highest {
			highest = p.SurfaceRadius
		}
	}
	return highest
}
