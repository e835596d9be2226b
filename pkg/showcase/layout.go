package showcase

import "github.com/veandco/go-sdl2/sdl"

const (
	headerHeight int32 = 64
	footerHeight int32 = 40
	backTapSize  int32 = 56
)

// listLayout places the Home rows between the header and the footer.
type listLayout struct {
	top       int32
	height    int32
	rowHeight int32
}

// visibleRows is how many whole rows fit. At least one row is always shown.
func (l listLayout) visibleRows() int {
	if l.rowHeight <= 0 {
		return 0
	}
	n := int(l.height / l.rowHeight)
	if n < 1 {
		n = 1
	}
	return n
}

// rowAt returns the row under y when the list is scrolled to start, or -1.
func (l listLayout) rowAt(y int32, start, count int) int {
	if l.rowHeight <= 0 || y < l.top || y >= l.top+l.height {
		return -1
	}
	i := start + int((y-l.top)/l.rowHeight)
	if i >= count || i >= start+l.visibleRows() {
		return -1
	}
	return i
}

// rowRect is the rectangle of row i when the list is scrolled to start.
func (l listLayout) rowRect(i, start int, width int32) sdl.Rect {
	return sdl.Rect{X: 0, Y: l.top + int32(i-start)*l.rowHeight, W: width, H: l.rowHeight}
}

// scrollWindow returns the first visible row so that focused stays on
// screen, moving as little as possible.
func scrollWindow(focused, start, visible, count int) int {
	if visible <= 0 || count <= 0 {
		return 0
	}
	if focused < start {
		start = focused
	} else if focused >= start+visible {
		start = focused - visible + 1
	}

	maxStart := count - visible
	if maxStart < 0 {
		maxStart = 0
	}
	if start > maxStart {
		start = maxStart
	}
	if start < 0 {
		start = 0
	}
	return start
}

// backControlRect is the tappable area of the header's back control.
func backControlRect() sdl.Rect {
	return sdl.Rect{X: 0, Y: (headerHeight - backTapSize) / 2, W: backTapSize, H: backTapSize}
}

func contains(r sdl.Rect, x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
