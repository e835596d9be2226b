package showcase

import (
	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
	"github.com/BrandonKowalski/showcase/pkg/showcase/internal"
	"github.com/BrandonKowalski/showcase/pkg/showcase/menu"
	"github.com/BrandonKowalski/showcase/pkg/showcase/platform"
	"github.com/veandco/go-sdl2/sdl"
)

// RowRenderer decides how a Home row reacts to focus and presses.
// One is chosen at startup from the platform's capabilities.
type RowRenderer interface {
	// Opacity is the alpha the row's content is drawn with.
	Opacity(m *menu.Model, index int) float64
	// Highlighted reports whether the row's background is tinted.
	Highlighted(m *menu.Model, index int) bool
	// ShowsHints reports whether button hints are drawn in the footer.
	ShowsHints() bool
}

// NewRowRenderer returns the focus renderer on platforms navigated with a
// remote or keyboard and the touch renderer everywhere else.
func NewRowRenderer(caps platform.Capabilities) RowRenderer {
	if caps.FocusNavigation {
		return focusRowRenderer{}
	}
	return touchRowRenderer{}
}

// focusRowRenderer dims the focused or pressed row.
type focusRowRenderer struct{}

func (focusRowRenderer) Opacity(m *menu.Model, index int) float64 {
	return m.Opacity(index)
}

func (focusRowRenderer) Highlighted(*menu.Model, int) bool {
	return false
}

func (focusRowRenderer) ShowsHints() bool {
	return true
}

// touchRowRenderer tints the row under a finger and never dims.
type touchRowRenderer struct{}

func (touchRowRenderer) Opacity(*menu.Model, int) float64 {
	return 1
}

func (touchRowRenderer) Highlighted(m *menu.Model, index int) bool {
	return m.Pressed() == index
}

func (touchRowRenderer) ShowsHints() bool {
	return false
}

func drawRow(p *internal.Painter, rr RowRenderer, m *menu.Model, index int, rect sdl.Rect) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	row := m.Rows[index]

	background := theme.RowColor
	if rr.Highlighted(m, index) {
		background = theme.SeparatorColor
	}
	p.FillRect(rect, background)

	alpha := p.Alpha
	p.Alpha = alpha * rr.Opacity(m, index)
	defer func() { p.Alpha = alpha }()

	pad := internal.SymmetricPadding(0, constants.DefaultRowPadding)

	label := row.Label()
	_, th := p.MeasureText(fonts.Row, label)
	p.DrawText(fonts.Row, label, rect.X+pad.Left, rect.Y+(rect.H-th)/2, theme.TextColor)

	if window := internal.GetWindow(); window.Icons != nil {
		size := window.Icons.Size()
		p.DrawIcon(window.Icons, internal.IconChevronRight,
			rect.X+rect.W-pad.Right-size, rect.Y+(rect.H-size)/2, theme.HintColor)
	}

	// Separators are inset on the left only.
	p.FillRect(sdlRect(rect.X+pad.Left, rect.Y+rect.H-1, rect.W-pad.Left, 1), theme.SeparatorColor)
}

func sdlRect(x, y, w, h int32) sdl.Rect {
	return sdl.Rect{X: x, Y: y, W: w, H: h}
}
