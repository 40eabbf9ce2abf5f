package physics

import (
	"github.com/san-kum/tribody/internal/body"
	"github.com/san-kum/tribody/internal/vec"
)

// SymplecticEuler advances bodies by one fixed timestep. Velocity is
// updated before position, and the position update uses the updated
// velocity. All accelerations are evaluated against pre-step positions
// so body ordering does not affect the result.
type SymplecticEuler struct {
	acc []vec.Vec2
}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (e *SymplecticEuler) ensureScratch(n int) {
	if len(e.acc) != n {
		e.acc = make([]vec.Vec2, n)
	}
}

func (e *SymplecticEuler) Step(g *Gravity, bodies []*body.Body, dt float64) {
	e.ensureScratch(len(bodies))

	for i := range bodies {
		e.acc[i] = g.AccelerationOn(i, bodies)
	}

	for i, b := range bodies {
		b.Velocity = b.Velocity.Add(e.acc[i].Scale(dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}
}
