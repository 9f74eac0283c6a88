package anim

import (
	"math/rand"
	"time"
)

// Confetti burst parameters.
const (
	ConfettiCount   = 50
	ConfettiStagger = 30 * time.Millisecond
	confettiMinLife = 2000 * time.Millisecond
	confettiJitter  = 1000 * time.Millisecond
	confettiDriftX  = 200.0
	confettiSpin    = 720.0
	confettiOpacity = 0.8
)

// ConfettiColors are the particle colors.
var ConfettiColors = []string{"#6366f1", "#8b5cf6", "#ec4899", "#10b981"}

// Particle is one falling confetti piece. It spawns Delay after the burst
// starts and lives for Life.
type Particle struct {
	Color string
	// Left is the horizontal start as a fraction of the canvas width.
	Left  float64
	Delay time.Duration
	Life  time.Duration
	// DriftX is the total horizontal travel in pixels, in [-100, 100).
	DriftX float64
	// Spin is the total rotation in degrees, in [0, 720).
	Spin float64
}

// ParticleFrame is a particle sampled at one instant.
type ParticleFrame struct {
	Color string
	Left  float64
	// OffsetX is the horizontal travel so far in pixels.
	OffsetX float64
	// Fall is the vertical travel as a fraction of the canvas height.
	Fall     float64
	Rotation float64
	Opacity  float64
}

// At samples p at elapsed time since the burst started. ok is false
// before the particle spawns and after its animation completes.
func (p Particle) At(elapsed time.Duration) (ParticleFrame, bool) {
	t := elapsed - p.Delay
	if t < 0 || t >= p.Life {
		return ParticleFrame{}, false
	}
	e := ConfettiEasing(float64(t) / float64(p.Life))
	return ParticleFrame{
		Color:    p.Color,
		Left:     p.Left,
		OffsetX:  p.DriftX * e,
		Fall:     e,
		Rotation: p.Spin * e,
		Opacity:  confettiOpacity * (1 - e),
	}, true
}

// Burst is a set of particles started together.
type Burst struct {
	Particles []Particle
}

// NewBurst creates count particles drawn from rng.
func NewBurst(rng *rand.Rand, count int) Burst {
	ps := make([]Particle, count)
	for i := range ps {
		ps[i] = Particle{
			Color:  ConfettiColors[rng.Intn(len(ConfettiColors))],
			Left:   rng.Float64(),
			Delay:  time.Duration(i) * ConfettiStagger,
			Life:   confettiMinLife + time.Duration(rng.Float64()*float64(confettiJitter)),
			DriftX: (rng.Float64() - 0.5) * confettiDriftX,
			Spin:   rng.Float64() * confettiSpin,
		}
	}
	return Burst{Particles: ps}
}

// Frames returns every live particle at elapsed.
func (b Burst) Frames(elapsed time.Duration) []ParticleFrame {
	var out []ParticleFrame
	for _, p := range b.Particles {
		if f, ok := p.At(elapsed); ok {
			out = append(out, f)
		}
	}
	return out
}

// Done reports whether every particle has finished.
func (b Burst) Done(elapsed time.Duration) bool {
	for _, p := range b.Particles {
		if elapsed < p.Delay+p.Life {
			return false
		}
	}
	return true
}
