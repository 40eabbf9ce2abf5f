// Package sim owns the simulation state machine: it advances the
// three bodies under gravity with fixed sub-steps, applies the
// toroidal boundary, maintains trails, and exposes the command set
// the input layer drives (pause, reset, time scale).
package sim

import (
	"math"
	"math/rand"

	"github.com/san-kum/tribody/internal/body"
	"github.com/san-kum/tribody/internal/boundary"
	"github.com/san-kum/tribody/internal/config"
	"github.com/san-kum/tribody/internal/physics"
	"github.com/san-kum/tribody/internal/vec"
)

// BodyCount is fixed; the force model's O(N^2) cost is trivial and
// nothing merges or removes bodies at runtime.
const BodyCount = 3

// Simulation is single-threaded by contract: Step and the command
// methods are called from the render loop only, and renderers read
// state through Bodies(), which copies.
type Simulation struct {
	cfg    *config.Config
	bodies []*body.Body

	gravity *physics.Gravity
	integ   *physics.SymplecticEuler
	rng     *rand.Rand

	paused      bool
	collided    bool
	timeScale   float64
	accumulated float64
	elapsed     float64

	metrics []Metric
}

func New(cfg *config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:       cfg,
		gravity:   physics.NewGravity(cfg.Gravity.G, cfg.Gravity.Softening),
		integ:     physics.NewSymplecticEuler(),
		timeScale: cfg.Step.TimeScale,
	}
	s.Reset()
	return s, nil
}

// Reset reseeds the bodies from the configured initial conditions and
// returns to the running state regardless of prior state. The RNG is
// re-created from the configured seed, so reset trajectories are
// reproducible. The user-set time scale survives a reset.
func (s *Simulation) Reset() {
	s.rng = rand.New(rand.NewSource(s.cfg.Seed))
	s.paused = false
	s.collided = false
	s.accumulated = 0
	s.elapsed = 0

	if len(s.cfg.Spawn.Bodies) == BodyCount {
		s.spawnExplicit()
	} else {
		s.spawnRandom()
	}

	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Simulation) spawnExplicit() {
	cx := s.cfg.World.Width / 2
	cy := s.cfg.World.Height / 2
	s.bodies = make([]*body.Body, 0, BodyCount)
	for i, bc := range s.cfg.Spawn.Bodies {
		s.bodies = append(s.bodies, body.New(i,
			vec.New(cx+bc.X, cy+bc.Y),
			vec.New(bc.VX, bc.VY),
			bc.Mass,
			s.cfg.TrailLen,
		))
	}
}

func (s *Simulation) spawnRandom() {
	sp := s.cfg.Spawn
	s.bodies = make([]*body.Body, 0, BodyCount)
	for i := 0; i < BodyCount; i++ {
		pos := vec.New(
			sp.Margin+s.rng.Float64()*(s.cfg.World.Width-2*sp.Margin),
			sp.Margin+s.rng.Float64()*(s.cfg.World.Height-2*sp.Margin),
		)
		vel := vec.New(
			(s.rng.Float64()*2-1)*sp.MaxSpeed,
			(s.rng.Float64()*2-1)*sp.MaxSpeed,
		)
		mass := sp.MinMass + s.rng.Float64()*(sp.MaxMass-sp.MinMass)
		s.bodies = append(s.bodies, body.New(i, pos, vel, mass, s.cfg.TrailLen))
	}
}

// Step advances the simulation by one rendered frame. Elapsed real
// time is scaled, accumulated, and consumed in fixed sub-steps; the
// sub-step count per call is capped so an anomalously large frameDt
// (debugger pause, terminal stall) costs bounded work. Wrapped
// positions are what the renderer and trails see; the force model
// always works on unwrapped distances within the current step.
func (s *Simulation) Step(frameDt float64) {
	if s.paused || s.collided {
		return
	}
	if frameDt < 0 {
		frameDt = 0
	}

	s.accumulated += frameDt * s.timeScale

	substep := s.cfg.Substep()
	steps := 0
	for s.accumulated >= substep && steps < s.cfg.Step.MaxSubsteps {
		s.integ.Step(s.gravity, s.bodies, substep)
		s.accumulated -= substep
		s.elapsed += substep
		steps++
	}
	if s.accumulated >= substep {
		// Hit the cap: drop the backlog rather than chase it across
		// the following frames.
		s.accumulated = math.Mod(s.accumulated, substep)
	}

	for _, b := range s.bodies {
		b.Position = boundary.WrapVec(b.Position, s.cfg.World.Width, s.cfg.World.Height)
		b.RecordTrail()
	}

	if s.anyPairCloserThan(s.cfg.Collision) {
		s.collided = true
	}

	for _, m := range s.metrics {
		m.Observe(s.bodies, s.elapsed)
	}
}

func (s *Simulation) anyPairCloserThan(r float64) bool {
	if r <= 0 {
		return false
	}
	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			if s.bodies[i].Position.Dist(s.bodies[j].Position) < r {
				return true
			}
		}
	}
	return false
}

// TogglePause flips between running and paused. Pausing never happens
// internally; it is an input command.
func (s *Simulation) TogglePause() {
	s.paused = !s.paused
}

// SetTimeScale sets the multiplier applied to elapsed real time.
func (s *Simulation) SetTimeScale(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ErrTimeScale
	}
	s.timeScale = factor
	return nil
}

func (s *Simulation) AddMetric(m Metric) {
	s.metrics = append(s.metrics, m)
}

func (s *Simulation) Paused() bool         { return s.paused }
func (s *Simulation) Collided() bool       { return s.collided }
func (s *Simulation) TimeScale() float64   { return s.timeScale }
func (s *Simulation) Elapsed() float64     { return s.elapsed }
func (s *Simulation) Accumulated() float64 { return s.accumulated }

func (s *Simulation) World() (width, height float64) {
	return s.cfg.World.Width, s.cfg.World.Height
}

// Energy returns total mechanical energy of the current state.
func (s *Simulation) Energy() float64 {
	return s.gravity.TotalEnergy(s.bodies)
}

// Bodies returns immutable snapshots for the renderer. The copies are
// safe to hold across frames.
func (s *Simulation) Bodies() []body.Snapshot {
	out := make([]body.Snapshot, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Snapshot()
	}
	return out
}
