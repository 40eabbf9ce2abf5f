package physics

import (
	"github.com/san-kum/tribody/internal/body"
	"github.com/san-kum/tribody/internal/vec"
)

// Tuning constants for visually stable orbits at the default world
// scale (hundreds of units across, masses in the 5..10 range).
const (
	DefaultG         = 1.2e5
	DefaultSoftening = 10.0
)

// Gravity computes pairwise gravitational acceleration between bodies.
type Gravity struct {
	G         float64 // gravitational constant
	Softening float64 // minimum separation used in force evaluation
}

func NewGravity(g, softening float64) *Gravity {
	return &Gravity{G: g, Softening: softening}
}

// AccelerationOn returns the net gravitational acceleration on
// bodies[i] from every other body, using current positions.
func (g *Gravity) AccelerationOn(i int, bodies []*body.Body) vec.Vec2 {
	var acc vec.Vec2
	bi := bodies[i]
	for j, bj := range bodies {
		if j == i {
			continue
		}
		d := bj.Position.Sub(bi.Position)
		r := d.Len()
		if r < g.Softening {
			r = g.Softening
		}
		acc = acc.Add(d.Scale(g.G * bj.Mass / (r * r * r)))
	}
	return acc
}

// TotalEnergy returns kinetic plus pairwise potential energy. The
// potential uses the same softening floor as the force so the two
// stay consistent for drift tracking.
func (g *Gravity) TotalEnergy(bodies []*body.Body) float64 {
	e := 0.0
	for _, b := range bodies {
		e += 0.5 * b.Mass * b.Velocity.LenSq()
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[i].Position.Dist(bodies[j].Position)
			if r < g.Softening {
				r = g.Softening
			}
			e -= g.G * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return e
}
