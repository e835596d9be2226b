package examples

import (
	"math"
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/canvas"
)

// Progress is how far elapsed is into the current repetition of period, in [0,1).
func Progress(elapsed, period time.Duration) float64 {
	if period <= 0 || elapsed <= 0 {
		return 0
	}
	return float64(elapsed%period) / float64(period)
}

// PingPong maps [0,1) onto 0 → 1 → 0.
func PingPong(t float64) float64 {
	if t < 0.5 {
		return t * 2
	}
	return (1 - t) * 2
}

// EaseInOutCubic accelerates into the midpoint and decelerates out of it.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Spring is the position of an underdamped spring released at 0 and
// settling at 1, t seconds after release.
func Spring(t, damping, frequency float64) float64 {
	if t <= 0 {
		return 0
	}
	return 1 - math.Exp(-damping*t)*math.Cos(2*math.Pi*frequency*t)
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates every channel between a and b.
func LerpColor(a, b canvas.Color, t float64) canvas.Color {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(Lerp(float64(x), float64(y), t)))
	}
	return canvas.Color{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
