package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window, fonts and input. It must run on the
// thread that will render.
func Init(title string, winOpts WindowOptions, devMode bool) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	InitInputProcessor()

	if winOpts.IsZero() {
		if devMode {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Fullscreen: true}
		}
	}

	w, err := initWindow(title, winOpts, devMode)
	if err != nil {
		return err
	}
	window = w

	if err := initFonts(GetTheme().FontPath); err != nil {
		return err
	}

	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}

// RequestQuit queues a quit event for the UI loop.
func RequestQuit() {
	sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT})
}
