package vec

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestArithmetic(t *testing.T) {
	a := New(3, 4)
	b := New(-1, 2)

	sum := a.Add(b)
	if !almostEqual(sum.X, 2) || !almostEqual(sum.Y, 6) {
		t.Errorf("add: got %+v", sum)
	}

	diff := a.Sub(b)
	if !almostEqual(diff.X, 4) || !almostEqual(diff.Y, 2) {
		t.Errorf("sub: got %+v", diff)
	}

	scaled := a.Scale(2)
	if !almostEqual(scaled.X, 6) || !almostEqual(scaled.Y, 8) {
		t.Errorf("scale: got %+v", scaled)
	}
}

func TestLenDist(t *testing.T) {
	a := New(3, 4)
	if !almostEqual(a.Len(), 5) {
		t.Errorf("len: got %f", a.Len())
	}
	if !almostEqual(a.LenSq(), 25) {
		t.Errorf("lensq: got %f", a.LenSq())
	}
	if !almostEqual(a.Dist(New(3, 0)), 4) {
		t.Errorf("dist: got %f", a.Dist(New(3, 0)))
	}
}

func TestNormalize(t *testing.T) {
	n := New(0, -7).Normalize()
	if !almostEqual(n.X, 0) || !almostEqual(n.Y, -1) {
		t.Errorf("normalize: got %+v", n)
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("normalize zero: got %+v", zero)
	}
}

func TestIsValid(t *testing.T) {
	if !New(1, 2).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vec2{X: math.NaN()}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vec2{Y: math.Inf(1)}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}
