// Package config holds the tuning knobs for the simulation: world
// extent, gravity constants, sub-stepping, spawn policy, and named
// presets. Values load from YAML so experiments are repeatable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tribody/internal/physics"
)

const (
	DefaultWorldWidth  = 800.0
	DefaultWorldHeight = 600.0

	// 240 Hz sub-steps keep the integration stable at time scales a
	// few times real time; the cap bounds work after a frame stall.
	DefaultSubstepRate = 240.0
	DefaultMaxSubsteps = 16

	DefaultTimeScale = 1.0
	DefaultSeed      = 42

	DefaultTrailLen        = 240
	DefaultCollisionRadius = 10.0

	DefaultSpawnMargin = 100.0
	DefaultMinMass     = 5.0
	DefaultMaxMass     = 10.0
	DefaultMaxSpeed    = 30.0
)

type Config struct {
	Preset    string        `yaml:"preset"`
	Seed      int64         `yaml:"seed"`
	World     WorldConfig   `yaml:"world"`
	Gravity   GravityConfig `yaml:"gravity"`
	Step      StepConfig    `yaml:"step"`
	Spawn     SpawnConfig   `yaml:"spawn"`
	TrailLen  int           `yaml:"trail_len"`
	Collision float64       `yaml:"collision_radius"`
}

// WorldConfig is the wrap extent of the simulation space. The
// renderer maps this rectangle to the screen through its camera.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type GravityConfig struct {
	G         float64 `yaml:"g"`
	Softening float64 `yaml:"softening"`
}

type StepConfig struct {
	SubstepRate float64 `yaml:"substep_rate"`
	MaxSubsteps int     `yaml:"max_substeps"`
	TimeScale   float64 `yaml:"time_scale"`
}

// SpawnConfig controls body initialization on reset. When Bodies is
// empty, three bodies are drawn from the seeded RNG inside the world
// inset by Margin; otherwise the explicit list is used verbatim.
type SpawnConfig struct {
	Margin   float64      `yaml:"margin"`
	MinMass  float64      `yaml:"min_mass"`
	MaxMass  float64      `yaml:"max_mass"`
	MaxSpeed float64      `yaml:"max_speed"`
	Bodies   []BodyConfig `yaml:"bodies"`
}

// BodyConfig positions are relative to the world center.
type BodyConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
	Mass float64 `yaml:"mass"`
}

func Default() *Config {
	return &Config{
		Preset: "random",
		Seed:   DefaultSeed,
		World:  WorldConfig{Width: DefaultWorldWidth, Height: DefaultWorldHeight},
		Gravity: GravityConfig{
			G:         physics.DefaultG,
			Softening: physics.DefaultSoftening,
		},
		Step: StepConfig{
			SubstepRate: DefaultSubstepRate,
			MaxSubsteps: DefaultMaxSubsteps,
			TimeScale:   DefaultTimeScale,
		},
		Spawn: SpawnConfig{
			Margin:   DefaultSpawnMargin,
			MinMass:  DefaultMinMass,
			MaxMass:  DefaultMaxMass,
			MaxSpeed: DefaultMaxSpeed,
		},
		TrailLen:  DefaultTrailLen,
		Collision: DefaultCollisionRadius,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world extent must be positive, got %gx%g",
			c.World.Width, c.World.Height)
	case c.Gravity.Softening <= 0:
		return fmt.Errorf("config: softening must be positive, got %g",
			c.Gravity.Softening)
	case c.Step.SubstepRate <= 0:
		return fmt.Errorf("config: substep rate must be positive, got %g",
			c.Step.SubstepRate)
	case c.Step.MaxSubsteps <= 0:
		return fmt.Errorf("config: max substeps must be positive, got %d",
			c.Step.MaxSubsteps)
	case c.Step.TimeScale <= 0:
		return fmt.Errorf("config: time scale must be positive, got %g",
			c.Step.TimeScale)
	case c.TrailLen <= 0:
		return fmt.Errorf("config: trail length must be positive, got %d",
			c.TrailLen)
	}
	if len(c.Spawn.Bodies) != 0 && len(c.Spawn.Bodies) != 3 {
		return fmt.Errorf("config: expected 3 explicit bodies, got %d",
			len(c.Spawn.Bodies))
	}
	for i, b := range c.Spawn.Bodies {
		if b.Mass <= 0 {
			return fmt.Errorf("config: body %d mass must be positive, got %g",
				i, b.Mass)
		}
	}
	return nil
}

// Substep returns the fixed integration timestep in seconds.
func (c *Config) Substep() float64 {
	return 1.0 / c.Step.SubstepRate
}
