// Package transition computes how a screen is drawn while it is being
// entered: the default push slides it in from the right, the fade used
// under reduced motion only changes its opacity.
package transition

import (
	"math"
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
)

const (
	SlideDuration = 300 * time.Millisecond
	FadeDuration  = 250 * time.Millisecond
)

// Frame is how to draw the entering screen at one instant.
type Frame struct {
	OffsetX int32   // horizontal shift of the whole screen
	Alpha   float64 // opacity of the whole screen, 0..1
	Done    bool    // the transition has finished
}

// Settled is the frame after every transition.
var Settled = Frame{Alpha: 1, Done: true}

// At returns the frame for anim, elapsed time into the transition, on a
// screen width pixels wide.
func At(anim routes.Animation, elapsed time.Duration, width int32) Frame {
	switch anim {
	case routes.AnimationFade:
		if elapsed >= FadeDuration {
			return Settled
		}
		return Frame{Alpha: progress(elapsed, FadeDuration)}

	default:
		if elapsed >= SlideDuration {
			return Settled
		}
		remaining := 1 - easeOutCubic(progress(elapsed, SlideDuration))
		return Frame{OffsetX: int32(math.Round(float64(width) * remaining)), Alpha: 1}
	}
}

func progress(elapsed, total time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
