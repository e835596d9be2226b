// Package canvas is the drawing surface example screens render into.
// The host owns the window, the frame loop and input; an example only
// describes what one frame looks like.
package canvas

import "time"

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H int32
}

// Center returns the rectangle's center point.
func (r Rect) Center() (int32, int32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Color is a non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Hex builds an opaque color from 0xRRGGBB.
func Hex(rgb uint32) Color {
	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xFF}
}

// WithAlpha returns c with its alpha scaled by a in [0,1].
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// Canvas is implemented by the renderer for the duration of one frame.
type Canvas interface {
	// Bounds is the content area below the header.
	Bounds() Rect
	// Elapsed is the time since the screen was entered.
	Elapsed() time.Duration
	// ReduceMotion reports whether animations should be minimized.
	ReduceMotion() bool
	FillRect(r Rect, c Color)
	Text(text string, x, y int32, c Color)
}
