// Package anim holds the time-based pieces of result rendering: easing
// curves, the counter that counts up to a prediction, the confetti burst
// and the error toast lifecycle. Everything here is a pure function of
// elapsed time so a renderer can sample it once per frame.
package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(p float64) float64

// Linear is the identity easing.
func Linear(p float64) float64 { return clamp01(p) }

// EaseOutQuart is 1 - (1-p)^4.
func EaseOutQuart(p float64) float64 {
	p = clamp01(p)
	q := 1 - p
	return 1 - q*q*q*q
}

// CubicBezier returns the easing defined by control points (x1,y1) and
// (x2,y2), with the end points fixed at (0,0) and (1,1). x1 and x2 are
// clamped to [0,1] so the curve is a function of x.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1, x2 = clamp01(x1), clamp01(x2)
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	const eps = 1e-7
	solve := func(x float64) float64 {
		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < eps {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}
		lo, hi := 0.0, 1.0
		t = x
		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < eps {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			t = (hi-lo)/2 + lo
			if hi-lo < eps {
				break
			}
		}
		return t
	}
	return func(p float64) float64 {
		p = clamp01(p)
		if p == 0 || p == 1 {
			return p
		}
		return sampleY(solve(p))
	}
}

// ConfettiEasing is the fall curve of a confetti particle.
var ConfettiEasing = CubicBezier(0.25, 0.46, 0.45, 0.94)

func clamp01(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
