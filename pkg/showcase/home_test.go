package showcase

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
	"github.com/BrandonKowalski/showcase/pkg/showcase/internal"
	"github.com/BrandonKowalski/showcase/pkg/showcase/menu"
	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHome builds a controller without a window: three rows, two visible.
func testHome(back routes.BackControl) *homeController {
	hc := &homeController{
		options:     HomeOptions{Rows: demoRows(), BackControl: back, Renderer: focusRowRenderer{}},
		layout:      listLayout{top: headerHeight, height: 120, rowHeight: 60},
		directional: internal.NewDirectionalInput(),
		pointerRow:  -1,
	}
	hc.model = menu.New(hc.options.Rows, hc.activate)
	return hc
}

func press(hc *homeController, button constants.VirtualButton, now time.Time) {
	hc.handleButton(internal.Event{Button: button, Pressed: true}, now)
	hc.handleButton(internal.Event{Button: button, Pressed: false}, now)
}

func TestHome_SelectNavigatesOnce(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackDefault)
	now := time.Now()

	press(hc, constants.VirtualButtonDown, now)
	press(hc, constants.VirtualButtonA, now)

	require.NotNil(t, hc.result)
	assert.Equal(t, routes.HomeSelected, hc.result.Action)
	assert.Equal(t, catalog.Name("Motion"), hc.result.Selected)
	assert.Equal(t, &routes.HomeResume{FocusedIndex: 1, VisibleStartIndex: 0}, hc.result.Resume)
}

func TestHome_RepeatedSelectDoesNotRearm(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackDefault)
	now := time.Now()

	// Release without a press.
	hc.handleButton(internal.Event{Button: constants.VirtualButtonA}, now)
	assert.Nil(t, hc.result)

	hc.handleButton(internal.Event{Button: constants.VirtualButtonA, Pressed: true}, now)
	hc.handleButton(internal.Event{Button: constants.VirtualButtonA, Pressed: true, Repeat: true}, now)
	assert.Nil(t, hc.result)

	hc.handleButton(internal.Event{Button: constants.VirtualButtonA}, now)
	require.NotNil(t, hc.result)
	assert.Equal(t, catalog.Name("Colors"), hc.result.Selected)
}

func TestHome_FocusScrollsList(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackDefault)
	now := time.Now()

	press(hc, constants.VirtualButtonDown, now)
	press(hc, constants.VirtualButtonDown, now)

	assert.Equal(t, 2, hc.model.Focused())
	assert.Equal(t, 1, hc.visibleStart)
}

func TestHome_HeldDirectionRepeats(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackDefault)
	start := time.Now()

	hc.handleButton(internal.Event{Button: constants.VirtualButtonDown, Pressed: true}, start)
	assert.Equal(t, 1, hc.model.Focused())

	hc.handleDirectionalRepeats(start.Add(100 * time.Millisecond))
	assert.Equal(t, 1, hc.model.Focused())

	hc.handleDirectionalRepeats(start.Add(300 * time.Millisecond))
	assert.Equal(t, 2, hc.model.Focused())
}

func TestHome_BackExits(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackDefault)
	hc.handleButton(internal.Event{Button: constants.VirtualButtonB, Pressed: true}, time.Now())

	require.NotNil(t, hc.result)
	assert.Equal(t, routes.HomeExit, hc.result.Action)
}

func TestHome_BackAfterSelectInSameBatchKeepsSelection(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackDefault)
	hc.handleInput(internal.Input{Buttons: []internal.Event{
		{Button: constants.VirtualButtonA, Pressed: true},
		{Button: constants.VirtualButtonA},
		{Button: constants.VirtualButtonB, Pressed: true},
	}}, time.Now())

	require.NotNil(t, hc.result)
	assert.Equal(t, routes.HomeSelected, hc.result.Action)
	assert.Equal(t, catalog.Name("Colors"), hc.result.Selected)
}

func TestHome_SecondSelectInSameBatchIgnored(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackDefault)
	activations := 0
	hc.model = menu.New(hc.options.Rows, func(row menu.Row) {
		hc.activate(row)
		activations++
	})

	y := headerHeight + 70
	hc.handleInput(internal.Input{
		Buttons: []internal.Event{
			{Button: constants.VirtualButtonA, Pressed: true},
			{Button: constants.VirtualButtonA},
			{Button: constants.VirtualButtonDown, Pressed: true},
			{Button: constants.VirtualButtonDown},
			{Button: constants.VirtualButtonA, Pressed: true},
			{Button: constants.VirtualButtonA},
		},
		Pointers: []internal.PointerEvent{
			{Y: y, Phase: internal.PointerDown},
			{Y: y, Phase: internal.PointerUp},
		},
	}, time.Now())

	require.NotNil(t, hc.result)
	assert.Equal(t, 1, activations)
	assert.Equal(t, catalog.Name("Colors"), hc.result.Selected)
	assert.Equal(t, 0, hc.model.Focused())
}

func TestHome_BackIgnoredWhenHidden(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackHidden)
	hc.handleButton(internal.Event{Button: constants.VirtualButtonB, Pressed: true}, time.Now())

	assert.Nil(t, hc.result)
}

func TestHome_TapActivatesRow(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackHidden)
	y := headerHeight + 70

	hc.handlePointer(internal.PointerEvent{Y: y, Phase: internal.PointerDown})
	hc.handlePointer(internal.PointerEvent{Y: y + 5, Phase: internal.PointerMove})
	hc.handlePointer(internal.PointerEvent{Y: y + 5, Phase: internal.PointerUp})

	require.NotNil(t, hc.result)
	assert.Equal(t, catalog.Name("Motion"), hc.result.Selected)
}

func TestHome_TapDraggedOffRowCancels(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackHidden)
	y := headerHeight + 10

	hc.handlePointer(internal.PointerEvent{Y: y, Phase: internal.PointerDown})
	hc.handlePointer(internal.PointerEvent{Y: y + 60, Phase: internal.PointerMove})
	hc.handlePointer(internal.PointerEvent{Y: y, Phase: internal.PointerUp})

	assert.Nil(t, hc.result)
}

func TestHome_FrameSettledWithoutAnimation(t *testing.T) {
	t.Parallel()

	hc := testHome(routes.BackDefault)
	f := hc.frame(time.Now(), 800)

	assert.True(t, f.Done)
	assert.Equal(t, int32(0), f.OffsetX)
}
