package body

import "github.com/san-kum/tribody/internal/vec"

// Trail is a fixed-capacity ring buffer of past positions. Pushing at
// capacity overwrites the oldest sample.
type Trail struct {
	samples []vec.Vec2
	head    int
	size    int
}

func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = 1
	}
	return &Trail{samples: make([]vec.Vec2, capacity)}
}

func (t *Trail) Cap() int { return len(t.samples) }

func (t *Trail) Len() int { return t.size }

func (t *Trail) Push(p vec.Vec2) {
	t.samples[t.head] = p
	t.head = (t.head + 1) % len(t.samples)
	if t.size < len(t.samples) {
		t.size++
	}
}

// At returns the i-th sample, oldest first.
func (t *Trail) At(i int) vec.Vec2 {
	start := t.head - t.size
	if start < 0 {
		start += len(t.samples)
	}
	return t.samples[(start+i)%len(t.samples)]
}

// Samples returns a freshly allocated slice ordered oldest to newest.
func (t *Trail) Samples() []vec.Vec2 {
	out := make([]vec.Vec2, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.At(i)
	}
	return out
}

func (t *Trail) Reset() {
	t.head = 0
	t.size = 0
}
