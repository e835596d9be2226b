package showcase

import (
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
	"github.com/BrandonKowalski/showcase/pkg/showcase/i18n"
	"github.com/BrandonKowalski/showcase/pkg/showcase/internal"
	"github.com/BrandonKowalski/showcase/pkg/showcase/menu"
	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/BrandonKowalski/showcase/pkg/showcase/transition"
	"github.com/veandco/go-sdl2/sdl"
)

// HomeOptions configures the Home list.
type HomeOptions struct {
	Title       string             // Header title
	Rows        []menu.Row         // One row per example, in display order
	BackControl routes.BackControl // BackHidden disables leaving Home with the back button
	Animation   routes.Animation   // Entry transition
	Animate     bool               // Play the entry transition (off for the first screen)
	Renderer    RowRenderer        // Focus or touch rows
	Resume      *routes.HomeResume // Focus and scroll position to restore
}

type homeController struct {
	options     HomeOptions
	model       *menu.Model
	layout      listLayout
	header      header
	directional internal.DirectionalInput

	visibleStart int
	pointerRow   int
	enteredAt    time.Time
	result       *routes.HomeResult
}

// HomeScreen renders the example list and blocks until a row is activated
// or the user leaves Home. Returns ErrQuit when the window is closed.
func HomeScreen(options HomeOptions) (*routes.HomeResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	hc := newHomeController(options, window)

	for hc.result == nil {
		input := internal.PollInput()
		if input.Quit {
			return nil, ErrQuit
		}

		now := time.Now()
		hc.handleInput(input, now)

		hc.render(renderer, now)
		window.Present()
	}

	return hc.result, nil
}

func newHomeController(options HomeOptions, window *internal.Window) *homeController {
	if options.Renderer == nil {
		options.Renderer = touchRowRenderer{}
	}

	hc := &homeController{
		options:     options,
		header:      header{title: options.Title, back: options.BackControl, home: true},
		directional: internal.NewDirectionalInput(),
		pointerRow:  -1,
		enteredAt:   time.Now(),
	}
	hc.model = menu.New(options.Rows, hc.activate)

	_, height := window.Size()
	hc.layout = hc.layoutFor(height)

	if options.Resume != nil {
		hc.model.SetFocused(options.Resume.FocusedIndex)
		hc.visibleStart = options.Resume.VisibleStartIndex
	}
	hc.scrollToFocus()

	return hc
}

func (hc *homeController) layoutFor(height int32) listLayout {
	bottom := height
	if hc.options.Renderer.ShowsHints() {
		bottom -= footerHeight
	}
	return listLayout{top: headerHeight, height: bottom - headerHeight, rowHeight: constants.DefaultRowHeight}
}

// activate is a no-op once Home has a result, so events batched after the
// deciding one are dropped.
func (hc *homeController) activate(row menu.Row) {
	if hc.result != nil {
		return
	}
	internal.GetInternalLogger().Debug("Home row activated", "route", row.Name)
	hc.result = &routes.HomeResult{
		Action:   routes.HomeSelected,
		Selected: row.Name,
		Resume:   hc.resume(),
	}
}

func (hc *homeController) resume() *routes.HomeResume {
	return &routes.HomeResume{
		FocusedIndex:      hc.model.Focused(),
		VisibleStartIndex: hc.visibleStart,
	}
}

// handleInput applies one frame of polled events in order.
func (hc *homeController) handleInput(input internal.Input, now time.Time) {
	for _, ev := range input.Buttons {
		hc.handleButton(ev, now)
	}
	for _, pe := range input.Pointers {
		hc.handlePointer(pe)
	}
	hc.handleDirectionalRepeats(now)
}

func (hc *homeController) handleButton(ev internal.Event, now time.Time) {
	if hc.result != nil {
		return
	}
	if hc.directional.Track(ev, now) {
		if ev.Pressed {
			hc.model.HandleButton(ev.Button, true)
			hc.scrollToFocus()
		}
		return
	}

	switch ev.Button {
	case constants.VirtualButtonA:
		if ev.Repeat {
			return
		}
		hc.model.HandleButton(ev.Button, ev.Pressed)

	case constants.VirtualButtonB, constants.VirtualButtonMenu:
		if ev.Pressed && !ev.Repeat && hc.options.BackControl != routes.BackHidden {
			hc.result = &routes.HomeResult{Action: routes.HomeExit, Resume: hc.resume()}
		}
	}
}

func (hc *homeController) handleDirectionalRepeats(now time.Time) {
	if hc.result != nil {
		return
	}
	if button := hc.directional.Update(now); button != constants.VirtualButtonUnassigned {
		hc.model.HandleButton(button, true)
		hc.scrollToFocus()
	}
}

func (hc *homeController) handlePointer(pe internal.PointerEvent) {
	if hc.result != nil {
		return
	}
	row := hc.layout.rowAt(pe.Y, hc.visibleStart, len(hc.model.Rows))

	switch pe.Phase {
	case internal.PointerDown:
		hc.directional.Reset()
		hc.pointerRow = row
		hc.model.Tap(row, menu.TapDown)
	case internal.PointerMove:
		hc.model.Tap(row, menu.TapMove)
	case internal.PointerUp:
		if hc.pointerRow == -1 {
			hc.model.Tap(row, menu.TapCancel)
		} else {
			hc.model.Tap(row, menu.TapUp)
		}
		hc.pointerRow = -1
	}
}

func (hc *homeController) scrollToFocus() {
	hc.visibleStart = scrollWindow(hc.model.Focused(), hc.visibleStart, hc.layout.visibleRows(), len(hc.model.Rows))
}

func (hc *homeController) frame(now time.Time, width int32) transition.Frame {
	if !hc.options.Animate {
		return transition.Settled
	}
	return transition.At(hc.options.Animation, now.Sub(hc.enteredAt), width)
}

func (hc *homeController) render(renderer *sdl.Renderer, now time.Time) {
	window := internal.GetWindow()
	theme := internal.GetTheme()
	width, height := window.Size()

	bg := theme.ListBackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()
	window.RenderBackground()

	f := hc.frame(now, width)
	p := internal.NewPainter(renderer, textCache)
	p.OffsetX = f.OffsetX
	p.Alpha = f.Alpha

	p.FillRect(sdlRect(0, 0, width, height), theme.ListBackgroundColor)

	end := hc.visibleStart + hc.layout.visibleRows()
	if end > len(hc.model.Rows) {
		end = len(hc.model.Rows)
	}
	for i := hc.visibleStart; i < end; i++ {
		drawRow(p, hc.options.Renderer, hc.model, i, hc.layout.rowRect(i, hc.visibleStart, width))
	}

	hc.header.draw(p, width)

	if hc.options.Renderer.ShowsHints() {
		hint := t(i18n.SelectHint)
		if hc.options.BackControl != routes.BackHidden {
			hint += "    " + t(i18n.ExitHint)
		}
		drawFooter(p, hint, width, height)
	}
}

func drawFooter(p *internal.Painter, hint string, width, height int32) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	pad := internal.UniformPadding(constants.DefaultRowPadding)

	tw, _ := p.MeasureText(fonts.Small, hint)
	p.DrawText(fonts.Small, hint, width-tw-pad.Right, height-footerHeight+pad.Top, theme.HintColor)
}
