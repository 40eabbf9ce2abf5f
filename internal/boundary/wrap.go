// Package boundary implements the toroidal wrap applied to body
// positions at the viewport edges.
//
// The wrap is a rendering/storage policy only: wrapped positions are
// never fed back into the force model, so two bodies that look
// adjacent across an edge do not attract as if they were. That
// asymmetry is a deliberate scope boundary of the simulation, not a
// bug; a minimum-image force model would be a separate extension.
package boundary

import (
	"math"

	"github.com/san-kum/tribody/internal/vec"
)

// Wrap maps coord into [0, extent) so that leaving one edge re-enters
// from the opposite one. The double-mod form handles negative
// coordinates.
func Wrap(coord, extent float64) float64 {
	return math.Mod(math.Mod(coord, extent)+extent, extent)
}

// WrapVec applies Wrap independently on each axis.
func WrapVec(p vec.Vec2, width, height float64) vec.Vec2 {
	return vec.Vec2{
		X: Wrap(p.X, width),
		Y: Wrap(p.Y, height),
	}
}
