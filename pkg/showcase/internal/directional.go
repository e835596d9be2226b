package internal

import (
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
)

// DirectionalInput turns a held Up/Down button into repeated focus moves.
// Keyboards and remotes repeat on their own (those events are marked
// Repeat and ignored here); game controllers do not.
type DirectionalInput struct {
	held           constants.VirtualButton
	heldSince      time.Time
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing:
// 300ms before the first repeat, then every 80ms.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 80*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// Track records a button transition. Returns true if the button was a
// directional button.
func (d *DirectionalInput) Track(ev Event, now time.Time) bool {
	if !ev.Button.IsDirectional() {
		return false
	}
	if ev.Repeat {
		// The source repeats for us.
		d.held = constants.VirtualButtonUnassigned
		return true
	}
	if ev.Pressed {
		d.held = ev.Button
		d.heldSince = now
		d.lastRepeatTime = now
		d.hasRepeated = false
	} else if d.held == ev.Button {
		d.held = constants.VirtualButtonUnassigned
	}
	return true
}

// Update returns the held button when a repeat is due, otherwise
// VirtualButtonUnassigned. Call it once per frame.
func (d *DirectionalInput) Update(now time.Time) constants.VirtualButton {
	if d.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.held
	}
	return constants.VirtualButtonUnassigned
}

// Reset clears the held state.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
}
