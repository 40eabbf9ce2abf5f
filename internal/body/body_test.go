package body

import (
	"testing"

	"github.com/san-kum/tribody/internal/vec"
)

func TestNewRejectsNonPositiveMass(t *testing.T) {
	for _, mass := range []float64{0, -1.5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for mass %f", mass)
				}
			}()
			New(0, vec.Vec2{}, vec.Vec2{}, mass, 10)
		}()
	}
}

func TestTrailBounded(t *testing.T) {
	const capacity = 8
	b := New(1, vec.Vec2{}, vec.Vec2{}, 1.0, capacity)

	steps := 3 * capacity
	for i := 0; i < steps; i++ {
		b.Position = vec.New(float64(i), 0)
		b.RecordTrail()
	}

	if b.TrailLen() != capacity {
		t.Fatalf("expected trail length %d, got %d", capacity, b.TrailLen())
	}

	trail := b.Trail()
	// Oldest retained sample must be from exactly capacity pushes ago.
	wantOldest := float64(steps - capacity)
	if trail[0].X != wantOldest {
		t.Errorf("expected oldest sample x=%f, got %f", wantOldest, trail[0].X)
	}
	if trail[capacity-1].X != float64(steps-1) {
		t.Errorf("expected newest sample x=%f, got %f", float64(steps-1), trail[capacity-1].X)
	}

	// Ordering oldest to newest, strictly increasing here.
	for i := 1; i < len(trail); i++ {
		if trail[i].X <= trail[i-1].X {
			t.Fatalf("trail out of order at %d: %f after %f", i, trail[i].X, trail[i-1].X)
		}
	}
}

func TestTrailPartialFill(t *testing.T) {
	tr := NewTrail(16)
	tr.Push(vec.New(1, 1))
	tr.Push(vec.New(2, 2))

	if tr.Len() != 2 {
		t.Fatalf("expected length 2, got %d", tr.Len())
	}
	if got := tr.At(0); got.X != 1 {
		t.Errorf("expected oldest x=1, got %f", got.X)
	}
	if got := tr.At(1); got.X != 2 {
		t.Errorf("expected newest x=2, got %f", got.X)
	}

	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("expected empty trail after reset, got %d", tr.Len())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	b := New(2, vec.New(5, 5), vec.New(1, 0), 2.0, 4)
	b.RecordTrail()

	snap := b.Snapshot()
	b.Position = vec.New(9, 9)
	b.RecordTrail()

	if snap.Position.X != 5 {
		t.Errorf("snapshot position mutated: %+v", snap.Position)
	}
	if len(snap.Trail) != 1 {
		t.Errorf("snapshot trail mutated: %d samples", len(snap.Trail))
	}
}
