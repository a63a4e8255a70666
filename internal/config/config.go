// Package config provides YAML-based game configuration loading and
// difficulty management for the planetary arcade.
package config

// PlanetaryConfig contains all configuration for the Planetary game.
// Distances are world units, angles are radians, rates are per tick.
type PlanetaryConfig struct {
	Planet     PlanetConfig     `yaml:"planet"`
	Platforms  []PlatformConfig `yaml:"platforms"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Weapons    []WeaponConfig   `yaml:"weapons"`
	Robots     RobotConfig      `yaml:"robots"`
	Spaceships SpaceshipConfig  `yaml:"spaceships"`
	Cities     CityConfig       `yaml:"cities"`
	Render     RenderConfig     `yaml:"render"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlanetConfig defines the central disc.
type PlanetConfig struct {
	Radius          float64 `yaml:"radius"`
	AngularVelocity float64 `yaml:"angular_velocity"`
}

// PlatformConfig defines one spinning ledge.
type PlatformConfig struct {
	StartAngle      float64 `yaml:"start_angle"`
	AngularWidth    float64 `yaml:"angular_width"`
	SurfaceRadius   float64 `yaml:"surface_radius"`
	Thickness       float64 `yaml:"thickness"`
	AngularVelocity float64 `yaml:"angular_velocity"`
}

// PhysicsConfig defines the shared radial body integration constants.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // Added to radial velocity each tick (negative)
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Floor for radial velocity (negative)
	ReferenceRadius  float64 `yaml:"reference_radius"`  // 0 means planet radius
	FallNudge        float64 `yaml:"fall_nudge"`        // Radius drop when starting to fall through
}

// PlayerConfig defines player body and control parameters.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`          // Angular speed at reference radius
	Jump          float64 `yaml:"jump"`           // Radial velocity set by a jump
	PlatformAccel float64 `yaml:"platform_accel"` // Per-tick bleed of inherited spin when walking against it
	StartAngle    float64 `yaml:"start_angle"`
}

// WeaponConfig defines one weapon slot.
type WeaponConfig struct {
	Kind        string  `yaml:"kind"` // "pistol" or "rifle"
	Cooldown    int     `yaml:"cooldown"`
	Damage      float64 `yaml:"damage"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	Offset      float64 `yaml:"offset"`
	Spread      float64 `yaml:"spread"`     // Max random jitter (rifle)
	BulletTTL   int     `yaml:"bullet_ttl"` // Ticks before a bullet expires
}

// RobotConfig defines ground unit parameters.
type RobotConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	BaseHealth    float64 `yaml:"base_health"`
	HealthGrowth  float64 `yaml:"health_growth"` // Fraction of base health added per spawned robot
	KillScore     int     `yaml:"kill_score"`
	ArmFrames     int     `yaml:"arm_frames"`
	ArmFrameTicks int     `yaml:"arm_frame_ticks"`
	StrikeFrame   int     `yaml:"strike_frame"`
}

// SpaceshipConfig defines aerial spawner parameters.
type SpaceshipConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	StartRadius      float64 `yaml:"start_radius"`
	TravelTicks      int     `yaml:"travel_ticks"`
	HoverMargin      float64 `yaml:"hover_margin"`
	LaunchInterval   int     `yaml:"launch_interval"`
	MinLaunches      int     `yaml:"min_launches"`
	MaxLaunches      int     `yaml:"max_launches"` // Exclusive
	Health           float64 `yaml:"health"`
	KillScore        int     `yaml:"kill_score"`
	SpawnInterval    int     `yaml:"spawn_interval"`
	MinSpawnInterval int     `yaml:"min_spawn_interval"`
	FirstSpawn       int     `yaml:"first_spawn"`
}

// CityConfig defines the defended settlements.
type CityConfig struct {
	Names        []string `yaml:"names"`
	FirstAngle   float64  `yaml:"first_angle"`
	Health       float64  `yaml:"health"`
	StrikeDamage float64  `yaml:"strike_damage"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
}

// RenderConfig defines terminal rendering parameters.
type RenderConfig struct {
	ViewRadius float64 `yaml:"view_radius"` // 0 means fit the outermost platform
	Stars      int     `yaml:"stars"`
	CellAspect float64 `yaml:"cell_aspect"` // Terminal cell height / width
}

// InputConfig defines how key presses become held actions.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`     // Added to robot walk speed at max difficulty
	SpawnReduction      int     `yaml:"spawn_reduction"`      // Ticks cut from the ship spawn interval at max difficulty
	ToughnessMultiplier float64 `yaml:"toughness_multiplier"` // Added to robot health at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
