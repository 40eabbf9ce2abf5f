// Package physics implements the gravitational force model and the
// fixed-step integrator used by the simulation controller.
//
// The force model is softened Newtonian gravity: the acceleration on
// body i is the sum over j != i of G * m_j * d / r^3, with r floored
// at the softening length to avoid singularities when bodies pass
// close to each other.
//
// The integrator is semi-implicit (symplectic) Euler: accelerations
// are evaluated at the pre-step positions of all bodies, velocities
// are updated first, and the updated velocities advance the positions.
// This keeps orbital energy bounded over long runs where explicit
// Euler visibly diverges.
package physics
