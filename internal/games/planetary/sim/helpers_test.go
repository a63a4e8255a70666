package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/planetary/internal/config"
)

// testScorer records credit without a player.
type testScorer struct {
	score int
	kills []Kill
}

func (s *testScorer) AddScore(points int)  { s.score += points }
func (s *testScorer) RecordKill(kind Kill) { s.kills = append(s.kills, kind) }

// newTestContext builds a context from the default config with no cities,
// platforms, robots or ships unless the caller adds them.
func newTestContext(t *testing.T) (*Context, config.PlanetaryConfig) {
	t.Helper()
	cfg := config.DefaultPlanetaryConfig()
	planet := NewPlanet(cfg.Planet)
	ctx := &Context{
		Planet:        planet,
		Platforms:     NewPlatformSet(nil),
		Cities:        &CitySet{},
		Bullets:       NewBulletSet(),
		Robots:        NewRobotSet(cfg.Robots),
		Ships:         NewSpaceshipSet(cfg.Spaceships),
		Physics:       NewPhysics(cfg.Physics, planet.Radius),
		Rand:          rand.New(rand.NewSource(1)),
		Toughness:     1,
		RobotSpeed:    cfg.Robots.Speed,
		SpawnInterval: cfg.Spaceships.SpawnInterval,
	}
	return ctx, cfg
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func addRobot(s *RobotSet, r *Robot) {
	s.items = append(s.items, r)
}

func addShip(s *SpaceshipSet, ship *Spaceship) {
	s.items = append(s.items, ship)
}

func addCity(s *CitySet, c *City) {
	s.items = append(s.items, c)
}
