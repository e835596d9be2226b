// Package menu is the input model behind the Home list: which row has
// focus, which row is pressed, and when a row is activated.
//
// It has no rendering. The renderer asks it for focus and opacity each
// frame and feeds it buttons (remote, controller, keyboard) or taps
// (touch, pointer).
package menu

import (
	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
)

// Row is one entry of the list.
type Row struct {
	Icon  string
	Title string
	Name  catalog.Name
}

// Label is the text drawn for the row, icon first.
func (r Row) Label() string {
	if r.Icon == "" {
		return r.Title
	}
	return r.Icon + "  " + r.Title
}

// TapPhase is the stage of a touch or pointer gesture.
type TapPhase int

const (
	TapDown TapPhase = iota
	TapMove
	TapUp
	TapCancel
)

const noRow = -1

// Model tracks focus and pressed state for a list of rows.
type Model struct {
	Rows []Row

	// OnActivate is called exactly once per completed activation gesture.
	OnActivate func(row Row)

	focused int
	pressed int
}

// New returns a model with focus on the first row.
func New(rows []Row, onActivate func(Row)) *Model {
	return &Model{
		Rows:       rows,
		OnActivate: onActivate,
		pressed:    noRow,
	}
}

// Focused returns the index of the focused row.
func (m *Model) Focused() int {
	return m.focused
}

// SetFocused moves focus to index, clamped to the list.
func (m *Model) SetFocused(index int) {
	m.focused = m.clamp(index)
	m.pressed = noRow
}

// Pressed returns the index of the row held down, or -1.
func (m *Model) Pressed() int {
	return m.pressed
}

// MoveFocus moves focus by delta rows, clamped to the list. Moving focus
// while a row is held cancels the press.
func (m *Model) MoveFocus(delta int) bool {
	next := m.clamp(m.focused + delta)
	if next == m.focused {
		return false
	}
	m.focused = next
	m.pressed = noRow
	return true
}

// HandleButton feeds a button press or release on a focus-navigation
// platform. It returns true when the event activated a row.
//
// Activation happens on release of the select button over the row it was
// pressed on. Repeated presses while held (key repeat) do not re-arm it.
func (m *Model) HandleButton(button constants.VirtualButton, pressed bool) bool {
	if len(m.Rows) == 0 {
		return false
	}

	switch button {
	case constants.VirtualButtonUp:
		if pressed {
			m.MoveFocus(-1)
		}
	case constants.VirtualButtonDown:
		if pressed {
			m.MoveFocus(1)
		}
	case constants.VirtualButtonA:
		if pressed {
			if m.pressed == noRow {
				m.pressed = m.focused
			}
			return false
		}
		return m.release(m.focused)
	}
	return false
}

// Tap feeds a touch or pointer gesture at row index (-1 when outside every
// row). It returns true when the gesture activated a row.
func (m *Model) Tap(index int, phase TapPhase) bool {
	switch phase {
	case TapDown:
		if m.valid(index) {
			m.pressed = index
		}
	case TapMove:
		if index != m.pressed {
			m.pressed = noRow
		}
	case TapUp:
		return m.release(index)
	case TapCancel:
		m.pressed = noRow
	}
	return false
}

func (m *Model) release(index int) bool {
	pressed := m.pressed
	m.pressed = noRow

	if pressed == noRow || pressed != index || !m.valid(index) {
		return false
	}

	m.focused = index
	if m.OnActivate != nil {
		m.OnActivate(m.Rows[index])
	}
	return true
}

// Opacity is the row's alpha on focus platforms: dimmed while focused or
// pressed, opaque otherwise.
func (m *Model) Opacity(index int) float64 {
	if index == m.focused || index == m.pressed {
		return constants.FocusedRowOpacity
	}
	return 1.0
}

func (m *Model) valid(index int) bool {
	return index >= 0 && index < len(m.Rows)
}

func (m *Model) clamp(index int) int {
	if index < 0 || len(m.Rows) == 0 {
		return 0
	}
	if index >= len(m.Rows) {
		return len(m.Rows) - 1
	}
	return index
}
