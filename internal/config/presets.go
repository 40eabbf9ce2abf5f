package config

import "github.com/san-kum/tribody/internal/physics"

// Presets are known-good starting configurations. "binary" is a heavy
// center with two light satellites on opposite arcs; "figure-eight"
// is the choreographed equal-mass solution in natural units with a
// small world to match.
var Presets = map[string]*Config{
	"random": Default(),
	"binary": {
		Preset: "binary",
		Seed:   DefaultSeed,
		World:  WorldConfig{Width: DefaultWorldWidth, Height: DefaultWorldHeight},
		Gravity: GravityConfig{
			G:         1000.0,
			Softening: physics.DefaultSoftening,
		},
		Step: StepConfig{
			SubstepRate: 100.0,
			MaxSubsteps: DefaultMaxSubsteps,
			TimeScale:   DefaultTimeScale,
		},
		Spawn: SpawnConfig{
			Bodies: []BodyConfig{
				{X: 0, Y: 0, VX: 0, VY: 0, Mass: 10},
				{X: 100, Y: 0, VX: 0, VY: 5, Mass: 1},
				{X: -100, Y: 0, VX: 0, VY: -5, Mass: 1},
			},
		},
		TrailLen:  DefaultTrailLen,
		Collision: DefaultCollisionRadius,
	},
	"figure-eight": {
		Preset: "figure-eight",
		Seed:   DefaultSeed,
		World:  WorldConfig{Width: 4, Height: 3},
		Gravity: GravityConfig{
			G:         1.0,
			Softening: 0.01,
		},
		Step: StepConfig{
			SubstepRate: DefaultSubstepRate,
			MaxSubsteps: DefaultMaxSubsteps,
			TimeScale:   DefaultTimeScale,
		},
		Spawn: SpawnConfig{
			Bodies: []BodyConfig{
				{X: -0.97000436, Y: 0.24308753, VX: 0.4662036850, VY: 0.4323657300, Mass: 1},
				{X: 0.97000436, Y: -0.24308753, VX: 0.4662036850, VY: 0.4323657300, Mass: 1},
				{X: 0, Y: 0, VX: -0.93240737, VY: -0.86473146, Mass: 1},
			},
		},
		TrailLen:  400,
		Collision: 0.02,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	if len(p.Spawn.Bodies) > 0 {
		cp.Spawn.Bodies = append([]BodyConfig(nil), p.Spawn.Bodies...)
	}
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
