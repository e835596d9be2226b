// Package remote reads TV remote controls and HDMI-CEC key devices through
// Linux evdev and turns them into virtual buttons.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Event is one button transition.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool // kernel autorepeat while held
}

// evdev key values.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

var keyMap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:        constants.VirtualButtonUp,
	evdev.KEY_DOWN:      constants.VirtualButtonDown,
	evdev.KEY_LEFT:      constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:     constants.VirtualButtonRight,
	evdev.KEY_ENTER:     constants.VirtualButtonA,
	evdev.KEY_OK:        constants.VirtualButtonA,
	evdev.KEY_SELECT:    constants.VirtualButtonA,
	evdev.KEY_BACK:      constants.VirtualButtonB,
	evdev.KEY_ESC:       constants.VirtualButtonB,
	evdev.KEY_EXIT:      constants.VirtualButtonB,
	evdev.KEY_MENU:      constants.VirtualButtonMenu,
	evdev.KEY_HOMEPAGE:  constants.VirtualButtonStart,
	evdev.KEY_PLAYPAUSE: constants.VirtualButtonPlayPause,
}

// Translate converts a raw evdev event. ok is false for events that are not
// a mapped key.
func Translate(ev evdev.InputEvent) (Event, bool) {
	if ev.Type != evdev.EV_KEY {
		return Event{}, false
	}
	button, mapped := keyMap[ev.Code]
	if !mapped {
		return Event{}, false
	}

	switch ev.Value {
	case valuePress:
		return Event{Button: button, Pressed: true}, true
	case valueRepeat:
		return Event{Button: button, Pressed: true, Repeat: true}, true
	case valueRelease:
		return Event{Button: button}, true
	}
	return Event{}, false
}

// remoteNameHints match device names of remotes and CEC adapters.
var remoteNameHints = []string{"remote", "cec", "ir-receiver", "ir receiver", "gpio_ir"}

// LooksLikeRemote reports whether an input device name belongs to a remote.
func LooksLikeRemote(name string) bool {
	name = strings.ToLower(name)
	for _, hint := range remoteNameHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}

// Find returns the path of the first input device that looks like a remote.
func Find() (string, bool) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", false
	}
	for _, p := range paths {
		if LooksLikeRemote(p.Name) {
			return p.Path, true
		}
	}
	return "", false
}

// source is the part of *evdev.InputDevice a Reader uses.
type source interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Reader delivers remote events on a channel until stopped.
type Reader struct {
	device  source
	events  chan Event
	running *atomic.Bool
	closed  *atomic.Bool
	logger  *slog.Logger
}

// Open opens the device at path.
func Open(path string, logger *slog.Logger) (*Reader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("remote: open %s: %w", path, err)
	}

	name, _ := device.Name()
	logger.Info("Remote control opened", "path", path, "name", name)

	return newReader(device, logger), nil
}

func newReader(device source, logger *slog.Logger) *Reader {
	return &Reader{
		device:  device,
		events:  make(chan Event, 32),
		running: atomic.NewBool(false),
		closed:  atomic.NewBool(false),
		logger:  logger,
	}
}

// Events is drained by the UI loop.
func (r *Reader) Events() <-chan Event {
	return r.events
}

// Run reads until ctx is cancelled or the device fails. The device and the
// events channel are closed when Run returns. Call it on its own goroutine.
func (r *Reader) Run(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	defer close(r.events)
	defer r.closeDevice()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			// Unblocks ReadOne.
			r.closeDevice()
		case <-done:
		}
	}()

	for {
		ev, err := r.device.ReadOne()
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, os.ErrClosed) {
				r.logger.Error("Remote control read failed", "error", err)
			}
			return
		}

		event, ok := Translate(*ev)
		if !ok {
			continue
		}

		select {
		case r.events <- event:
		default:
			r.logger.Debug("Dropping remote event, UI loop is behind", "button", event.Button.GetName())
		}
	}
}

func (r *Reader) closeDevice() {
	if r.closed.CompareAndSwap(false, true) {
		_ = r.device.Close()
	}
}
