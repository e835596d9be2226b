package showcase

import (
	"github.com/BrandonKowalski/showcase/pkg/showcase/internal"
	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
)

// header is the bar at the top of every screen.
type header struct {
	title string
	back  routes.BackControl
	home  bool
}

// showsBack reports whether a back control is drawn on the left.
func (h header) showsBack() bool {
	// Home is the bottom of the stack.
	return !h.home && h.back != routes.BackHidden
}

func (h header) draw(p *internal.Painter, width int32) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	p.FillRect(sdlRect(0, 0, width, headerHeight), theme.HeaderColor)
	p.FillRect(sdlRect(0, headerHeight-1, width, 1), theme.SeparatorColor)

	tw, th := p.MeasureText(fonts.Header, h.title)
	p.DrawText(fonts.Header, h.title, (width-tw)/2, (headerHeight-th)/2, theme.TextColor)

	if !h.showsBack() {
		return
	}

	window := internal.GetWindow()
	if window.Icons == nil {
		return
	}
	r := backControlRect()
	size := window.Icons.Size()
	p.DrawIcon(window.Icons, internal.IconBack, r.X+(r.W-size)/2, r.Y+(r.H-size)/2, theme.AccentColor)
}

func (h header) hitsBack(x, y int32) bool {
	return h.showsBack() && contains(backControlRect(), x, y)
}
