package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	defaultDevWidth  = 1024
	defaultDevHeight = 768
)

// Window wraps SDL window and renderer with the state the screens share.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	Background      *sdl.Texture
	Icons           *IconSet
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions, devMode bool) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = defaultDevWidth, defaultDevHeight
	}

	width, height := displayMode.W, displayMode.H
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if devMode {
		winOpts.Fullscreen = false
		x, y = 50, 50
		width, height = defaultDevWidth, defaultDevHeight
		if winOpts.Width > 0 {
			width = winOpts.Width
		}
		if winOpts.Height > 0 {
			height = winOpts.Height
		}
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height, "dev", devMode)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}

	win.loadBackground()

	icons, err := NewIconSet(renderer, 28)
	if err != nil {
		GetInternalLogger().Warn("Icons unavailable", "error", err)
	}
	win.Icons = icons

	return win, nil
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Background image not loaded", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Icons != nil {
		window.Icons.Destroy()
	}
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Size is the logical render size.
func (window *Window) Size() (int32, int32) {
	w, h := window.Renderer.GetLogicalSize()
	if w == 0 || h == 0 {
		return window.Window.GetSize()
	}
	return w, h
}

func (window *Window) RenderBackground() {
	if window.Background != nil {
		w, h := window.Size()
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w, H: h})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
