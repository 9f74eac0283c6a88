package anim

import (
	"math"
	"testing"
)

func TestEaseOutQuart(t *testing.T) {
	cases := map[float64]float64{
		0:   0,
		0.5: 0.9375,
		1:   1,
		-1:  0,
		2:   1,
	}
	for in, want := range cases {
		if got := EaseOutQuart(in); math.Abs(got-want) > 1e-12 {
			t.Fatalf("EaseOutQuart(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestCubicBezier_EndpointsAndMonotonic(t *testing.T) {
	e := ConfettiEasing
	if e(0) != 0 || e(1) != 1 {
		t.Fatalf("endpoints: %v %v", e(0), e(1))
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := e(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestCubicBezier_LinearControlPoints(t *testing.T) {
	e := CubicBezier(0, 0, 1, 1)
	for _, p := range []float64{0.1, 0.33, 0.5, 0.9} {
		if got := e(p); math.Abs(got-p) > 1e-5 {
			t.Fatalf("linear bezier(%v) = %v", p, got)
		}
	}
}

func TestCubicBezier_EaseOutShape(t *testing.T) {
	// an ease-out curve runs ahead of linear in the middle
	if v := ConfettiEasing(0.5); v <= 0.5 {
		t.Fatalf("confetti easing(0.5) = %v, expected > 0.5", v)
	}
}
