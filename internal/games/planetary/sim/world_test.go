package sim

import (
	"testing"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
)

// scriptedControls produces a varied but repeatable control sequence.
func scriptedControls(tick int) Controls {
	var c Controls
	switch (tick / 90) % 4 {
	case 0:
		c.Right = true
	case 1:
		c.Left = true
	case 2:
		c.Right = true
		c.Strafe = true
	}
	c.Jump = tick%45 == 0
	c.Fall = tick%300 > 280
	c.Shoot = tick%3 == 0
	if tick%500 == 0 {
		c.NextWeapon = true
	}
	return c
}

func newTestWorld(seed int64) *World {
	return NewWorld(config.DefaultPlanetaryConfig(), seed, nil)
}

func TestWorldDeterminism(t *testing.T) {
	w1 := newTestWorld(12345)
	w2 := newTestWorld(12345)

	for i := 0; i < 3000; i++ {
		c := scriptedControls(i)
		w1.Step(c)
		w2.Step(c)
	}

	if w1.Stats() != w2.Stats() {
		t.Errorf("stats differ: %+v vs %+v", w1.Stats(), w2.Stats())
	}
	if w1.Player.Angle != w2.Player.Angle || w1.Player.Radius != w2.Player.Radius {
		t.Errorf("player differs: (%f, %f) vs (%f, %f)",
			w1.Player.Angle, w1.Player.Radius, w2.Player.Angle, w2.Player.Radius)
	}
	if w1.Robots().Len() != w2.Robots().Len() || w1.Ships().Len() != w2.Ships().Len() {
		t.Fatalf("entity counts differ")
	}
	for i, s := range w1.Ships().All() {
		if s.Angle != w2.Ships().All()[i].Angle {
			t.Errorf("ship %d angle differs", i)
		}
	}
}

func TestWorldInvariantsHold(t *testing.T) {
	w := newTestWorld(7)
	planet := w.Planet()

	for i := 0; i < 6000 && !w.GameOver(); i++ {
		w.Step(scriptedControls(i))

		bodies := []*RadialBody{&w.Player.RadialBody}
		for _, r := range w.Robots().All() {
			bodies = append(bodies, &r.RadialBody)
		}
		for _, b := range bodies {
			if b.Radius < b.LandingRadius(planet) {
				t.Fatalf("tick %d: radius %f below landing surface", i, b.Radius)
			}
			if b.Angle < 0 || b.Angle >= core.TwoPi {
				t.Fatalf("tick %d: angle %f not normalized", i, b.Angle)
			}
		}
		for _, p := range w.Platforms().All() {
			if p.StartAngle < 0 || p.StartAngle >= core.TwoPi {
				t.Fatalf("tick %d: platform angle %f not normalized", i, p.StartAngle)
			}
		}
		if cw := w.Player.CurrentWeapon; cw < 0 || cw >= len(w.Player.Weapons) {
			t.Fatalf("tick %d: weapon index %d out of range", i, cw)
		}
	}
}

func TestWorldSpawnsEnemies(t *testing.T) {
	w := newTestWorld(3)
	cfg := config.DefaultPlanetaryConfig()

	ticks := cfg.Spaceships.FirstSpawn + cfg.Spaceships.TravelTicks + cfg.Spaceships.LaunchInterval + 1
	for i := 0; i < ticks; i++ {
		w.Step(Controls{})
	}
	if w.Ships().Spawned() == 0 {
		t.Fatal("no spaceship spawned")
	}
	if w.Robots().Spawned() == 0 {
		t.Fatal("no robot launched")
	}
}

func TestGameOverReportedOnce(t *testing.T) {
	w := newTestWorld(1)
	cities := w.Cities().All()
	if len(cities) != 3 {
		t.Fatalf("cities = %d, want 3", len(cities))
	}

	cities[0].Damage(cities[0].Health)
	cities[1].Damage(cities[1].Health)
	if w.Step(Controls{}) {
		t.Fatal("game over with a city still standing")
	}
	if w.Cities().LiveCount() != 1 {
		t.Fatalf("live cities = %d, want 1", w.Cities().LiveCount())
	}

	last := w.Cities().All()[0]
	last.Damage(last.Health + 1)
	if !w.Step(Controls{}) {
		t.Fatal("Step should report game over on the tick the last city falls")
	}
	if !w.GameOver() {
		t.Error("GameOver should be true")
	}

	tick := w.Tick()
	for i := 0; i < 5; i++ {
		if w.Step(Controls{Right: true, Shoot: true}) {
			t.Fatal("game over reported more than once")
		}
	}
	if w.Tick() != tick {
		t.Error("world should not advance after game over")
	}
	if w.Stats().CitiesLeft != 0 {
		t.Errorf("CitiesLeft = %d, want 0", w.Stats().CitiesLeft)
	}
}

func TestFallControlIsEdgeTranslated(t *testing.T) {
	cfg := config.DefaultPlanetaryConfig()
	cfg.Platforms = []config.PlatformConfig{{
		StartAngle: core.TwoPi - 0.5, AngularWidth: 1, SurfaceRadius: 230, Thickness: 8,
	}}
	w := NewWorld(cfg, 1, nil)
	p := w.Player

	for i := 0; i < 200; i++ {
		w.Step(Controls{Jump: i == 0})
		if i > 0 && p.Landed {
			break
		}
	}
	if p.Surface() == nil {
		t.Fatalf("player should land on the platform, radius %f", p.Radius)
	}

	w.Step(Controls{Fall: true})
	if !p.Falling {
		t.Fatal("holding fall should set Falling")
	}
	r := p.Radius
	w.Step(Controls{Fall: true})
	if p.Radius >= r {
		t.Error("player should keep dropping while fall is held")
	}

	w.Step(Controls{})
	if p.Falling {
		t.Error("releasing fall should clear Falling")
	}
}

func TestWorldShootingScores(t *testing.T) {
	w := newTestWorld(1)
	ctx := w.Context()
	p := w.Player

	// A robot directly ahead of the player along the pistol's line of fire.
	x := p.X + 40
	r, a := core.CartesianToPolar(x, p.Y)
	robot := NewRobot(config.DefaultPlanetaryConfig().Robots, a, r, 5, 0, DirLeft)
	robot.Falling = true
	addRobot(ctx.Robots, robot)

	w.Step(Controls{Shoot: true})
	for i := 0; i < 10 && robot.Alive(); i++ {
		w.Step(Controls{})
	}
	if robot.Alive() {
		t.Fatal("robot in the line of fire should be destroyed")
	}
	if w.Score() == 0 || w.Stats().RobotsKilled != 1 {
		t.Errorf("score %d kills %d, want credit for the kill", w.Score(), w.Stats().RobotsKilled)
	}
}
