package showcase

import (
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/canvas"
	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
	"github.com/BrandonKowalski/showcase/pkg/showcase/i18n"
	"github.com/BrandonKowalski/showcase/pkg/showcase/internal"
	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/BrandonKowalski/showcase/pkg/showcase/transition"
	"github.com/veandco/go-sdl2/sdl"
)

// ExampleOptions configures an example screen.
type ExampleOptions struct {
	Entry        routes.ScreenEntry
	ReduceMotion bool
	ShowHints    bool // draw button hints in the footer
}

type exampleController struct {
	options   ExampleOptions
	header    header
	enteredAt time.Time
	backDown  bool
	result    *routes.ExampleResult
}

// ExampleFrame draws the header and runs the example's screen every frame
// until the user goes back.
//
// The result carries the entry's back control so navigation can tell the
// custom Home control apart from a one-level pop.
func ExampleFrame(options ExampleOptions) (*routes.ExampleResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	ec := &exampleController{
		options: options,
		header: header{
			title: options.Entry.Options.HeaderTitle,
			back:  options.Entry.Options.HeaderLeft,
		},
		enteredAt: time.Now(),
	}

	internal.GetInternalLogger().Debug("Example entered",
		"route", options.Entry.Name,
		"animation", options.Entry.Options.Animation,
		"back", options.Entry.Options.HeaderLeft.String())

	for ec.result == nil {
		input := internal.PollInput()
		if input.Quit {
			return nil, ErrQuit
		}

		for _, ev := range input.Buttons {
			ec.handleButton(ev)
		}
		for _, pe := range input.Pointers {
			ec.handlePointer(pe)
		}

		ec.render(renderer, time.Now())
		window.Present()
	}

	return ec.result, nil
}

func (ec *exampleController) back() {
	ec.result = &routes.ExampleResult{Back: ec.options.Entry.Options.HeaderLeft}
}

func (ec *exampleController) handleButton(ev internal.Event) {
	if !ev.Pressed || ev.Repeat {
		return
	}
	switch ev.Button {
	case constants.VirtualButtonB, constants.VirtualButtonMenu:
		ec.back()
	}
}

func (ec *exampleController) handlePointer(pe internal.PointerEvent) {
	switch pe.Phase {
	case internal.PointerDown:
		ec.backDown = ec.header.hitsBack(pe.X, pe.Y)
	case internal.PointerMove:
		if ec.backDown && !ec.header.hitsBack(pe.X, pe.Y) {
			ec.backDown = false
		}
	case internal.PointerUp:
		if ec.backDown && ec.header.hitsBack(pe.X, pe.Y) {
			ec.back()
		}
		ec.backDown = false
	}
}

func (ec *exampleController) render(renderer *sdl.Renderer, now time.Time) {
	window := internal.GetWindow()
	theme := internal.GetTheme()
	width, height := window.Size()

	bg := theme.ListBackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	elapsed := now.Sub(ec.enteredAt)
	f := transition.At(ec.options.Entry.Options.Animation, elapsed, width)

	p := internal.NewPainter(renderer, textCache)
	p.OffsetX = f.OffsetX
	p.Alpha = f.Alpha

	p.FillRect(sdlRect(0, 0, width, height), theme.RowColor)

	if ec.options.Entry.Screen != nil {
		ec.options.Entry.Screen(&exampleCanvas{
			painter:      p,
			bounds:       canvas.Rect{X: 0, Y: headerHeight, W: width, H: height - headerHeight},
			elapsed:      elapsed,
			reduceMotion: ec.options.ReduceMotion,
		})
	}

	ec.header.draw(p, width)

	if ec.options.ShowHints {
		drawFooter(p, t(i18n.BackHint), width, height)
	}
}

// exampleCanvas lets an example draw one frame through the screen's painter.
type exampleCanvas struct {
	painter      *internal.Painter
	bounds       canvas.Rect
	elapsed      time.Duration
	reduceMotion bool
}

func (c *exampleCanvas) Bounds() canvas.Rect    { return c.bounds }
func (c *exampleCanvas) Elapsed() time.Duration { return c.elapsed }
func (c *exampleCanvas) ReduceMotion() bool     { return c.reduceMotion }
func (c *exampleCanvas) FillRect(r canvas.Rect, col canvas.Color) {
	c.painter.FillRect(clip(r, c.bounds), toSDLColor(col))
}

func (c *exampleCanvas) Text(text string, x, y int32, col canvas.Color) {
	c.painter.DrawText(internal.GetFonts().Row, text, x, y, toSDLColor(col))
}

// clip keeps example drawing out of the header.
func clip(r, bounds canvas.Rect) sdl.Rect {
	out := sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
	if out.Y < bounds.Y {
		out.H -= bounds.Y - out.Y
		out.Y = bounds.Y
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

func toSDLColor(c canvas.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
