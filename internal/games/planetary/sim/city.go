package sim

import (
	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
)

// Tier is a city's visual damage level.
type Tier int

const (
	TierIntact Tier = iota
	TierCracked
	TierDamaged
	TierBurning
	TierCrumbling
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierIntact:
		return "intact"
	case TierCracked:
		return "cracked"
	case TierDamaged:
		return "damaged"
	case TierBurning:
		return "burning"
	case TierCrumbling:
		return "crumbling"
	default:
		return "unknown"
	}
}

// City is a settlement on the planet surface. The game ends when none remain.
type City struct {
	Name         string
	Angle        float64
	Radius       float64 // Center of the city, half its height above the surface
	Width        float64
	Height       float64
	Health       float64
	MaxHealth    float64
	StrikeDamage float64

	X, Y     float64
	Rotation float64

	dead bool
}

// NewCity places a city on the planet at angle.
func NewCity(name string, angle float64, cfg config.CityConfig, planet *Planet) *City {
	c := &City{
		Name:         name,
		Angle:        core.NormalizeAngle(angle),
		Radius:       planet.Radius + cfg.Height/2,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Health:       cfg.Health,
		MaxHealth:    cfg.Health,
		StrikeDamage: cfg.StrikeDamage,
	}
	c.refreshRender()
	return c
}

// Alive reports whether the city still stands.
func (c *City) Alive() bool {
	return !c.dead
}

// HalfAngularWidth returns the city's angular half-width at its radius.
func (c *City) HalfAngularWidth() float64 {
	return c.Width / (2 * c.Radius)
}

// Strike applies one robot blow.
func (c *City) Strike() {
	c.Damage(c.StrikeDamage)
}

// Damage lowers health and destroys the city at zero.
func (c *City) Damage(amount float64) {
	if c.dead {
		return
	}
	c.Health -= amount
	if c.Health <= 0 {
		c.dead = true
	}
}

// Fraction returns remaining health as a fraction of the maximum.
func (c *City) Fraction() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return c.Health / c.MaxHealth
}

// Tier returns the visual damage level for the current health.
func (c *City) Tier() Tier {
	f := c.Fraction()
	switch {
	case f > 0.8:
		return TierIntact
	case f > 0.6:
		return TierCracked
	case f > 0.4:
		return TierDamaged
	case f > 0.2:
		return TierBurning
	default:
		return TierCrumbling
	}
}

func (c *City) refreshRender() {
	c.X, c.Y = core.PolarToCartesian(c.Radius, c.Angle)
	c.Rotation = c.Angle
}

// CitySet owns the cities.
type CitySet struct {
	items []*City
}

// NewCitySet spaces the configured cities evenly around the planet,
// starting at the configured first angle.
func NewCitySet(cfg config.CityConfig, planet *Planet) *CitySet {
	s := &CitySet{items: make([]*City, 0, len(cfg.Names))}
	n := len(cfg.Names)
	for i, name := range cfg.Names {
		angle := cfg.FirstAngle + float64(i)*core.TwoPi/float64(n)
		s.items = append(s.items, NewCity(name, angle, cfg, planet))
	}
	return s
}

// All returns the cities, including any destroyed this tick.
func (s *CitySet) All() []*City {
	return s.items
}

// Len returns the number of cities.
func (s *CitySet) Len() int {
	return len(s.items)
}

// LiveCount returns the number of cities still standing.
func (s *CitySet) LiveCount() int {
	n := 0
	for _, c := range s.items {
		if c.Alive() {
			n++
		}
	}
	return n
}

// Update carries the cities along with the planet's spin.
func (s *CitySet) Update(planet *Planet) {
	if planet.AngularVelocity == 0 {
		return
	}
	for _, c := range s.items {
		c.Angle = core.NormalizeAngle(c.Angle + planet.AngularVelocity)
		c.refreshRender()
	}
}

// Compact drops destroyed cities.
func (s *CitySet) Compact() {
	live := s.items[:0]
	for _, c := range s.items {
		if c.Alive() {
			live = append(live, c)
		}
	}
	clear(s.items[len(live):])
	s.items = live
}
