// Package metrics provides observers that reduce body state to
// scalar diagnostics over a run.
package metrics

import (
	"math"

	"github.com/san-kum/tribody/internal/body"
	"github.com/san-kum/tribody/internal/physics"
)

// MeanEnergy tracks the average total mechanical energy seen across
// observations.
type MeanEnergy struct {
	gravity *physics.Gravity
	total   float64
	samples int
}

func NewMeanEnergy(g *physics.Gravity) *MeanEnergy {
	return &MeanEnergy{gravity: g}
}

func (e *MeanEnergy) Name() string { return "energy_mean" }

func (e *MeanEnergy) Observe(bodies []*body.Body, t float64) {
	e.total += e.gravity.TotalEnergy(bodies)
	e.samples++
}

func (e *MeanEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *MeanEnergy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift tracks the worst relative deviation from the energy of
// the first observed state. A healthy symplectic run stays small; a
// growing value is the classic sign of an integrator regression.
type EnergyDrift struct {
	gravity  *physics.Gravity
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(g *physics.Gravity) *EnergyDrift {
	return &EnergyDrift{gravity: g}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(bodies []*body.Body, t float64) {
	energy := e.gravity.TotalEnergy(bodies)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
