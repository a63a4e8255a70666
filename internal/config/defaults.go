package config

import (
	_ "embed"
)

//go:embed defaults/planetary.yaml
var defaultPlanetaryYAML []byte

// DefaultPlanetaryConfig returns the hardcoded Planetary configuration.
// It mirrors defaults/planetary.yaml and is used if the embedded file fails to parse.
func DefaultPlanetaryConfig() PlanetaryConfig {
	return PlanetaryConfig{
		Planet: PlanetConfig{
			Radius:          200,
			AngularVelocity: 0,
		},
		Platforms: []PlatformConfig{
			{StartAngle: 0.4, AngularWidth: 0.7, SurfaceRadius: 280, Thickness: 8, AngularVelocity: 0.003},
			{StartAngle: 2.6, AngularWidth: 0.9, SurfaceRadius: 330, Thickness: 8, AngularVelocity: -0.002},
			{StartAngle: 4.4, AngularWidth: 0.6, SurfaceRadius: 390, Thickness: 8, AngularVelocity: 0.0045},
		},
		Physics: PhysicsConfig{
			Gravity:          -0.35,
			TerminalVelocity: -9,
			ReferenceRadius:  0,
			FallNudge:        1,
		},
		Player: PlayerConfig{
			Width:         14,
			Height:        24,
			Speed:         0.012,
			Jump:          8,
			PlatformAccel: 0.0002,
			StartAngle:    0,
		},
		Weapons: []WeaponConfig{
			{Kind: "pistol", Cooldown: 18, Damage: 5, BulletSpeed: 9, Offset: 10, BulletTTL: 80},
			{Kind: "rifle", Cooldown: 6, Damage: 2, BulletSpeed: 12, Offset: 14, Spread: 0.05, BulletTTL: 60},
		},
		Robots: RobotConfig{
			Width:         16,
			Height:        16,
			Speed:         0.006,
			BaseHealth:    20,
			HealthGrowth:  0.02,
			KillScore:     150,
			ArmFrames:     4,
			ArmFrameTicks: 8,
			StrikeFrame:   2,
		},
		Spaceships: SpaceshipConfig{
			Width:            48,
			Height:           20,
			StartRadius:      1500,
			TravelTicks:      180,
			HoverMargin:      12,
			LaunchInterval:   90,
			MinLaunches:      1,
			MaxLaunches:      5,
			Health:           40,
			KillScore:        500,
			SpawnInterval:    900,
			MinSpawnInterval: 300,
			FirstSpawn:       120,
		},
		Cities: CityConfig{
			Names:        []string{"Aster", "Bellhaven", "Corvid"},
			FirstAngle:   1.0,
			Health:       1000,
			StrikeDamage: 50,
			Width:        40,
			Height:       20,
		},
		Render: RenderConfig{
			ViewRadius: 0,
			Stars:      40,
			CellAspect: 2.0,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 18000, // 5 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.5,
				SpawnReduction:      600,
				ToughnessMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "planetary":
		return defaultPlanetaryYAML
	default:
		return nil
	}
}
