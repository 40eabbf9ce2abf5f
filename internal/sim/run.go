package sim

import (
	"context"
	"math"
)

// Result holds a recorded headless run. States are flattened rows of
// x, y, vx, vy per body in identity order, one row per frame.
type Result struct {
	Times       []float64
	States      [][]float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Collided    bool
}

// Run drives the simulation without a renderer: frames of frameDt
// seconds until duration of simulated frame time has elapsed, a
// collision halts it, or ctx is canceled. The partial result is
// returned alongside ctx.Err() on cancellation.
func (s *Simulation) Run(ctx context.Context, duration, frameDt float64) (*Result, error) {
	if frameDt <= 0 {
		return nil, ErrFrameDt
	}
	if duration <= 0 {
		return nil, ErrDuration
	}

	frames := int(duration / frameDt)
	result := &Result{
		Times:   make([]float64, 0, frames),
		States:  make([][]float64, 0, frames),
		Metrics: make(map[string]float64),
	}

	initialEnergy := s.Energy()

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			s.finish(result, initialEnergy)
			return result, ctx.Err()
		default:
		}

		s.Step(frameDt)
		result.StepsTaken++
		result.Times = append(result.Times, s.elapsed)
		result.States = append(result.States, s.flatState())

		if s.collided {
			result.Collided = true
			break
		}
	}

	s.finish(result, initialEnergy)
	return result, nil
}

func (s *Simulation) finish(result *Result, initialEnergy float64) {
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(s.Energy()-initialEnergy) / math.Abs(initialEnergy)
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulation) flatState() []float64 {
	row := make([]float64, 0, len(s.bodies)*4)
	for _, b := range s.bodies {
		row = append(row, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
	}
	return row
}
