package internal

import (
	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
	"github.com/BrandonKowalski/showcase/pkg/showcase/remote"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a virtual button transition from any source.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// PointerPhase is the stage of a mouse or touch gesture.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is a mouse or touch gesture in logical render coordinates.
type PointerEvent struct {
	X, Y  int32
	Phase PointerPhase
}

// Input is everything that happened since the last poll.
type Input struct {
	Buttons  []Event
	Pointers []PointerEvent
	Quit     bool
}

type inputProcessor struct {
	controllers  map[sdl.JoystickID]*sdl.GameController
	remoteEvents <-chan remote.Event
	pointerDown  bool
}

var processor *inputProcessor

func InitInputProcessor() {
	processor = &inputProcessor{
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		processor.openController(i)
	}
}

// SetRemoteEvents attaches a remote-control event stream. It is drained on
// every poll.
func SetRemoteEvents(events <-chan remote.Event) {
	processor.remoteEvents = events
}

func (p *inputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	GetInternalLogger().Debug("Controller opened", "name", controller.Name(), "id", id)
}

func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id, c := range processor.controllers {
		c.Close()
		delete(processor.controllers, id)
	}
}

// PollInput drains SDL and remote events.
func PollInput() Input {
	var in Input
	p := processor

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.Quit = true

		case *sdl.KeyboardEvent:
			if button := TranslateKey(e.Keysym.Sym); button != constants.VirtualButtonUnassigned {
				in.Buttons = append(in.Buttons, Event{
					Button:  button,
					Pressed: e.Type == sdl.KEYDOWN,
					Repeat:  e.Repeat != 0,
				})
			}

		case *sdl.ControllerButtonEvent:
			if button := TranslateControllerButton(e.Button); button != constants.VirtualButtonUnassigned {
				in.Buttons = append(in.Buttons, Event{
					Button:  button,
					Pressed: e.State == sdl.PRESSED,
				})
			}

		case *sdl.ControllerDeviceEvent:
			if e.Type == sdl.CONTROLLERDEVICEADDED {
				p.openController(int(e.Which))
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT || e.Which == sdl.TOUCH_MOUSEID {
				continue
			}
			phase := PointerUp
			if e.State == sdl.PRESSED {
				phase = PointerDown
			}
			p.pointerDown = phase == PointerDown
			in.Pointers = append(in.Pointers, PointerEvent{X: e.X, Y: e.Y, Phase: phase})

		case *sdl.MouseMotionEvent:
			if p.pointerDown && e.Which != sdl.TOUCH_MOUSEID {
				in.Pointers = append(in.Pointers, PointerEvent{X: e.X, Y: e.Y, Phase: PointerMove})
			}

		case *sdl.TouchFingerEvent:
			w, h := window.Size()
			pe := PointerEvent{X: int32(e.X * float32(w)), Y: int32(e.Y * float32(h))}
			switch e.Type {
			case sdl.FINGERDOWN:
				pe.Phase = PointerDown
			case sdl.FINGERMOTION:
				pe.Phase = PointerMove
			default:
				pe.Phase = PointerUp
			}
			in.Pointers = append(in.Pointers, pe)
		}
	}

	if p.remoteEvents != nil {
	drain:
		for {
			select {
			case ev, ok := <-p.remoteEvents:
				if !ok {
					p.remoteEvents = nil
					break drain
				}
				in.Buttons = append(in.Buttons, Event{Button: ev.Button, Pressed: ev.Pressed, Repeat: ev.Repeat})
			default:
				break drain
			}
		}
	}

	return in
}

// TranslateKey maps keyboard keys, including the media keys TV remotes
// emulate, to virtual buttons.
func TranslateKey(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_SPACE, sdl.K_SELECT:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_AC_BACK:
		return constants.VirtualButtonB
	case sdl.K_MENU, sdl.K_APPLICATION:
		return constants.VirtualButtonMenu
	case sdl.K_AC_HOME:
		return constants.VirtualButtonStart
	case sdl.K_AUDIOPLAY:
		return constants.VirtualButtonPlayPause
	}
	return constants.VirtualButtonUnassigned
}

// TranslateControllerButton maps game controller buttons.
func TranslateControllerButton(button uint8) constants.VirtualButton {
	switch sdl.GameControllerButton(button) {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}
