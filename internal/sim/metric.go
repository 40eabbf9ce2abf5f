package sim

import "github.com/san-kum/tribody/internal/body"

// Metric observes body state after each frame step and reduces it to
// a single value reported at the end of a headless run.
type Metric interface {
	Name() string
	Observe(bodies []*body.Body, t float64)
	Value() float64
	Reset()
}
