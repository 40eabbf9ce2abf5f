// Package body defines the point-mass entity tracked by the simulation.
package body

import (
	"fmt"

	"github.com/san-kum/tribody/internal/vec"
)

// Body is a point mass with a bounded history of past positions used
// for fading-trail rendering. Mass is fixed for the body's lifetime.
type Body struct {
	ID       int
	Position vec.Vec2
	Velocity vec.Vec2
	Mass     float64

	trail *Trail
}

// New constructs a body. A non-positive mass is a programming error
// and panics rather than producing a silently broken simulation.
func New(id int, pos, vel vec.Vec2, mass float64, trailLen int) *Body {
	if mass <= 0 {
		panic(fmt.Sprintf("body: non-positive mass %f for body %d", mass, id))
	}
	return &Body{
		ID:       id,
		Position: pos,
		Velocity: vel,
		Mass:     mass,
		trail:    NewTrail(trailLen),
	}
}

// RecordTrail appends the current position to the trail, evicting the
// oldest sample when at capacity.
func (b *Body) RecordTrail() {
	b.trail.Push(b.Position)
}

// Trail returns the position history, oldest first.
func (b *Body) Trail() []vec.Vec2 {
	return b.trail.Samples()
}

func (b *Body) TrailLen() int { return b.trail.Len() }

// Snapshot returns a copy safe for the renderer to hold across frames.
type Snapshot struct {
	ID       int
	Position vec.Vec2
	Velocity vec.Vec2
	Mass     float64
	Trail    []vec.Vec2
}

func (b *Body) Snapshot() Snapshot {
	return Snapshot{
		ID:       b.ID,
		Position: b.Position,
		Velocity: b.Velocity,
		Mass:     b.Mass,
		Trail:    b.Trail(),
	}
}
