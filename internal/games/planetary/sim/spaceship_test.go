package sim

import (
	"testing"

	"github.com/vovakirdan/planetary/internal/config"
)

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.in); !approxEqual(got, tt.want) {
			t.Errorf("Smoothstep(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
	if Smoothstep(0.25) >= 0.25 {
		t.Error("smoothstep should ease in")
	}
}

func TestStopRadiusClearsPlatforms(t *testing.T) {
	ctx, cfg := newTestContext(t)
	sc := cfg.Spaceships

	if got, want := StopRadius(ctx.Planet, ctx.Platforms, sc.Height, sc.HoverMargin), ctx.Planet.Radius+sc.Height/2+sc.HoverMargin; got != want {
		t.Errorf("StopRadius without platforms = %f, want %f", got, want)
	}

	platforms := NewPlatformSet(cfg.Platforms)
	want := platforms.MaxSurfaceRadius() + sc.Height/2 + sc.HoverMargin
	if got := StopRadius(ctx.Planet, platforms, sc.Height, sc.HoverMargin); got != want {
		t.Errorf("StopRadius = %f, want %f", got, want)
	}
}

func TestSpaceshipApproachesThenHovers(t *testing.T) {
	ctx, cfg := newTestContext(t)
	s := NewSpaceship(cfg.Spaceships, 1, 300, 2)

	prev := s.Radius
	for i := 0; i < cfg.Spaceships.TravelTicks-1; i++ {
		s.Update(ctx)
		if s.Radius > prev {
			t.Fatalf("tick %d: radius grew while approaching", i)
		}
		prev = s.Radius
		if s.Phase != PhaseApproaching {
			t.Fatalf("tick %d: phase = %v, want approaching", i, s.Phase)
		}
	}

	s.Update(ctx)
	if s.Phase != PhaseHovering {
		t.Fatalf("phase = %v, want hovering", s.Phase)
	}
	if s.Radius != 300 {
		t.Errorf("Radius = %f, want 300", s.Radius)
	}
}

func TestHoveringShipLaunchesThenRetreats(t *testing.T) {
	ctx, cfg := newTestContext(t)
	sc := cfg.Spaceships
	s := NewSpaceship(sc, 1, 300, 3)
	s.Phase = PhaseHovering
	s.Radius = 300
	s.launchCooldown = sc.LaunchInterval

	var launchTicks []int
	for tick := 1; tick <= sc.LaunchInterval*4; tick++ {
		before := ctx.Robots.Len()
		s.Update(ctx)
		if ctx.Robots.Len() > before {
			launchTicks = append(launchTicks, tick)
		}
	}

	want := []int{sc.LaunchInterval, 2 * sc.LaunchInterval, 3 * sc.LaunchInterval}
	if len(launchTicks) != len(want) {
		t.Fatalf("launches at %v, want %v", launchTicks, want)
	}
	for i := range want {
		if launchTicks[i] != want[i] {
			t.Errorf("launch %d at tick %d, want %d", i, launchTicks[i], want[i])
		}
	}
	if s.Phase != PhaseRetreating {
		t.Errorf("phase = %v, want retreating", s.Phase)
	}
	for _, r := range ctx.Robots.All() {
		if r.Angle != 1 || r.Radius != 300 {
			t.Errorf("robot spawned at (%f, %f), want (1, 300)", r.Angle, r.Radius)
		}
	}
}

func TestRetreatingShipIsRemoved(t *testing.T) {
	ctx, cfg := newTestContext(t)
	s := NewSpaceship(cfg.Spaceships, 1, 300, 0)
	addShip(ctx.Ships, s)
	s.Phase = PhaseRetreating
	s.Radius = 300

	for i := 0; i < cfg.Spaceships.TravelTicks; i++ {
		if !s.Alive() {
			t.Fatalf("ship removed early at tick %d", i)
		}
		s.Update(ctx)
	}
	if s.Alive() || s.Phase != PhaseRemoved {
		t.Fatalf("phase = %v, want removed", s.Phase)
	}
	if s.Radius != cfg.Spaceships.StartRadius {
		t.Errorf("Radius = %f, want %f", s.Radius, cfg.Spaceships.StartRadius)
	}

	ctx.Ships.Compact()
	if ctx.Ships.Len() != 0 {
		t.Error("removed ship should be compacted out")
	}
}

func TestShipDeathInAnyPhase(t *testing.T) {
	for _, phase := range []ShipPhase{PhaseApproaching, PhaseHovering, PhaseRetreating} {
		t.Run(phase.String(), func(t *testing.T) {
			_, cfg := newTestContext(t)
			s := NewSpaceship(cfg.Spaceships, 1, 300, 2)
			s.Phase = phase
			owner := &testScorer{}

			s.Damage(cfg.Spaceships.Health/2, owner)
			if !s.Alive() || s.Alpha != 0.5 {
				t.Fatalf("half damage: alive %v alpha %f", s.Alive(), s.Alpha)
			}
			s.Damage(cfg.Spaceships.Health/2, owner)
			if s.Alive() {
				t.Fatal("ship should be destroyed")
			}
			if owner.score != cfg.Spaceships.KillScore {
				t.Errorf("score = %d, want %d", owner.score, cfg.Spaceships.KillScore)
			}
			if len(owner.kills) != 1 || owner.kills[0] != KillSpaceship {
				t.Errorf("kills = %v, want one spaceship", owner.kills)
			}
		})
	}
}

func TestSpaceshipSetSpawnsOnInterval(t *testing.T) {
	ctx, _ := newTestContext(t)
	sc := config.SpaceshipConfig{
		Width: 48, Height: 20, StartRadius: 1500, TravelTicks: 1000,
		HoverMargin: 12, LaunchInterval: 90, MinLaunches: 1, MaxLaunches: 5,
		Health: 40, KillScore: 500, SpawnInterval: 50, MinSpawnInterval: 10, FirstSpawn: 5,
	}
	ctx.Ships = NewSpaceshipSet(sc)
	ctx.SpawnInterval = 50

	for i := 0; i < 4; i++ {
		ctx.Ships.Update(ctx)
	}
	if ctx.Ships.Len() != 0 {
		t.Fatal("no ship before the first spawn delay")
	}
	ctx.Ships.Update(ctx)
	if ctx.Ships.Len() != 1 {
		t.Fatalf("ships = %d, want 1 after the first spawn", ctx.Ships.Len())
	}

	for i := 0; i < 100; i++ {
		ctx.Ships.Update(ctx)
	}
	if ctx.Ships.Len() != 3 {
		t.Errorf("ships = %d, want 3 regardless of ships in play", ctx.Ships.Len())
	}
	for _, s := range ctx.Ships.All() {
		if s.LaunchesRemaining < sc.MinLaunches || s.LaunchesRemaining >= sc.MaxLaunches {
			t.Errorf("launches = %d, want in [%d, %d)", s.LaunchesRemaining, sc.MinLaunches, sc.MaxLaunches)
		}
	}
}
