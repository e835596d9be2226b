package examples

import (
	"math"
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/canvas"
)

const (
	boxSize       int32 = 120
	captionOffset int32 = 24
)

var (
	accent    = canvas.Hex(0x007AFF)
	caption   = canvas.Hex(0x8E8E93)
	palette   = []canvas.Color{canvas.Hex(0xFF3B30), canvas.Hex(0xFFCC00), canvas.Hex(0x34C759), canvas.Hex(0x5856D6)}
	barColors = []canvas.Color{canvas.Hex(0x5AC8FA), canvas.Hex(0x007AFF), canvas.Hex(0x5856D6), canvas.Hex(0xAF52DE), canvas.Hex(0xFF2D55)}
)

// centeredBox is a size×size box centered in b and shifted by dx, dy.
func centeredBox(b canvas.Rect, size, dx, dy int32) canvas.Rect {
	cx, cy := b.Center()
	return canvas.Rect{X: cx - size/2 + dx, Y: cy - size/2 + dy, W: size, H: size}
}

func drawCaption(c canvas.Canvas, text string) {
	b := c.Bounds()
	c.Text(text, b.X+captionOffset, b.Y+captionOffset, caption)
}

// FadeScreen fades a box in and out.
func FadeScreen(c canvas.Canvas) {
	alpha := 1.0
	if !c.ReduceMotion() {
		alpha = EaseInOutCubic(PingPong(Progress(c.Elapsed(), 2*time.Second)))
	}
	c.FillRect(centeredBox(c.Bounds(), boxSize, 0, 0), accent.WithAlpha(alpha))
	drawCaption(c, "opacity")
}

// SlideScreen moves a box from edge to edge.
func SlideScreen(c canvas.Canvas) {
	b := c.Bounds()
	var dx int32
	if !c.ReduceMotion() {
		travel := float64(b.W-boxSize) / 2
		t := EaseInOutCubic(PingPong(Progress(c.Elapsed(), 2400*time.Millisecond)))
		dx = int32(math.Round(Lerp(-travel, travel, t)))
	}
	c.FillRect(centeredBox(b, boxSize, dx, 0), accent)
	drawCaption(c, "translateX")
}

// SpringScreen drops a box onto the center line and lets it bounce.
func SpringScreen(c canvas.Canvas) {
	b := c.Bounds()
	var dy int32
	if !c.ReduceMotion() {
		const period = 3 * time.Second
		secs := Progress(c.Elapsed(), period) * period.Seconds()
		drop := float64(b.H-boxSize) / 2
		dy = int32(math.Round(-drop * (1 - Spring(secs, 2.2, 1.4))))
	}
	c.FillRect(centeredBox(b, boxSize, 0, dy), accent)
	drawCaption(c, "withSpring")
}

// ColorScreen interpolates a box through a palette.
func ColorScreen(c canvas.Canvas) {
	const step = 1500 * time.Millisecond
	period := step * time.Duration(len(palette))

	t := Progress(c.Elapsed(), period) * float64(len(palette))
	i := int(t) % len(palette)
	from, to := palette[i], palette[(i+1)%len(palette)]

	c.FillRect(centeredBox(c.Bounds(), boxSize, 0, 0), LerpColor(from, to, EaseInOutCubic(t-math.Floor(t))))
	drawCaption(c, "interpolateColor")
}

// PulseScreen scales a box up and down like a heartbeat.
func PulseScreen(c canvas.Canvas) {
	scale := 1.0
	if !c.ReduceMotion() {
		scale = 1 + 0.2*math.Sin(2*math.Pi*Progress(c.Elapsed(), time.Second))
	}
	size := int32(math.Round(float64(boxSize) * scale))
	c.FillRect(centeredBox(c.Bounds(), size, 0, 0), canvas.Hex(0xFF2D55))
	drawCaption(c, "scale")
}

// StaggerScreen grows a row of bars one after another.
func StaggerScreen(c canvas.Canvas) {
	const (
		barWidth int32 = 40
		gap      int32 = 16
		delay          = 150 * time.Millisecond
		grow           = 600 * time.Millisecond
		period         = 2400 * time.Millisecond
	)

	b := c.Bounds()
	n := int32(len(barColors))
	total := n*barWidth + (n-1)*gap
	maxHeight := b.H / 2
	x := b.X + (b.W-total)/2
	baseline := b.Y + (b.H+maxHeight)/2

	elapsed := c.Elapsed() % period
	for i, col := range barColors {
		grown := 1.0
		if !c.ReduceMotion() {
			start := time.Duration(i) * delay
			grown = EaseInOutCubic(clamp01(float64(elapsed-start) / float64(grow)))
		}
		h := int32(math.Round(float64(maxHeight) * grown))
		c.FillRect(canvas.Rect{X: x, Y: baseline - h, W: barWidth, H: h}, col)
		x += barWidth + gap
	}
	drawCaption(c, "withDelay")
}
