package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPlanetary loads Planetary configuration.
// Search order: customPath -> ~/.planetary/configs/planetary.yaml -> ./configs/planetary.yaml -> embedded default
func LoadPlanetary(customPath string) (PlanetaryConfig, error) {
	var cfg PlanetaryConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = parsePlanetary(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("planetary.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePlanetary(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/planetary.yaml"); err == nil {
		if cfg, err := parsePlanetary(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePlanetary(defaultPlanetaryYAML)
	if err != nil {
		return DefaultPlanetaryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePlanetary decodes YAML on top of the hardcoded defaults so partial
// files only override what they mention, then validates the result.
func parsePlanetary(data []byte) (PlanetaryConfig, error) {
	cfg := DefaultPlanetaryConfig()
	// Lists replace rather than merge.
	cfg.Platforms = nil
	cfg.Weapons = nil
	cfg.Cities.Names = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	defaults := DefaultPlanetaryConfig()
	if cfg.Weapons == nil {
		cfg.Weapons = defaults.Weapons
	}
	if cfg.Platforms == nil {
		cfg.Platforms = defaults.Platforms
	}
	if cfg.Cities.Names == nil {
		cfg.Cities.Names = defaults.Cities.Names
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c PlanetaryConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate rejects configurations that would break simulation invariants.
func (c PlanetaryConfig) Validate() error {
	var errs []error

	if c.Planet.Radius <= 0 {
		errs = append(errs, errors.New("planet.radius must be positive"))
	}
	for i, p := range c.Platforms {
		if p.SurfaceRadius <= c.Planet.Radius {
			errs = append(errs, fmt.Errorf("platforms[%d].surface_radius must exceed planet.radius", i))
		}
		if p.AngularWidth <= 0 {
			errs = append(errs, fmt.Errorf("platforms[%d].angular_width must be positive", i))
		}
	}
	if c.Physics.Gravity >= 0 {
		errs = append(errs, errors.New("physics.gravity must be negative"))
	}
	if c.Physics.TerminalVelocity >= 0 {
		errs = append(errs, errors.New("physics.terminal_velocity must be negative"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player width and height must be positive"))
	}
	if len(c.Weapons) == 0 {
		errs = append(errs, errors.New("at least one weapon is required"))
	}
	for i, w := range c.Weapons {
		switch strings.ToLower(w.Kind) {
		case "pistol", "rifle":
		default:
			errs = append(errs, fmt.Errorf("weapons[%d].kind %q is not pistol or rifle", i, w.Kind))
		}
		if w.BulletTTL <= 0 {
			errs = append(errs, fmt.Errorf("weapons[%d].bullet_ttl must be positive", i))
		}
	}
	if c.Robots.BaseHealth <= 0 {
		errs = append(errs, errors.New("robots.base_health must be positive"))
	}
	if c.Robots.ArmFrames <= 0 || c.Robots.ArmFrameTicks <= 0 {
		errs = append(errs, errors.New("robots.arm_frames and arm_frame_ticks must be positive"))
	}
	if c.Robots.StrikeFrame < 0 || c.Robots.StrikeFrame >= c.Robots.ArmFrames {
		errs = append(errs, errors.New("robots.strike_frame must be a valid frame index"))
	}
	if c.Spaceships.TravelTicks <= 0 || c.Spaceships.LaunchInterval <= 0 {
		errs = append(errs, errors.New("spaceships.travel_ticks and launch_interval must be positive"))
	}
	if c.Spaceships.MinLaunches < 1 || c.Spaceships.MaxLaunches <= c.Spaceships.MinLaunches {
		errs = append(errs, errors.New("spaceships launches must satisfy 1 <= min_launches < max_launches"))
	}
	if c.Spaceships.SpawnInterval <= 0 {
		errs = append(errs, errors.New("spaceships.spawn_interval must be positive"))
	}
	if len(c.Cities.Names) == 0 {
		errs = append(errs, errors.New("at least one city is required"))
	}
	if c.Cities.Health <= 0 {
		errs = append(errs, errors.New("cities.health must be positive"))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planetary", "configs", filename)
}

// ApplyPlanetaryPreset modifies the config based on a difficulty preset.
func ApplyPlanetaryPreset(cfg *PlanetaryConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust city durability based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Cities.Health *= 1.5
		cfg.Spaceships.MaxLaunches = max(cfg.Spaceships.MinLaunches+1, cfg.Spaceships.MaxLaunches-1)
	case DifficultyHard:
		cfg.Cities.Health *= 0.75
		cfg.Spaceships.SpawnInterval = max(cfg.Spaceships.MinSpawnInterval, cfg.Spaceships.SpawnInterval*2/3)
	}
}
