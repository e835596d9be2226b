// Package showcase renders the example catalog: the Home list, the frame
// example screens are drawn in, screen transitions and the startup
// activity indicator. It runs on SDL and is driven by a TV remote, a game
// controller, a keyboard, a mouse or touch.
//
// Navigation itself lives in the router package; every screen here is a
// blocking function that returns when the user leaves it.
package showcase

import (
	"log/slog"

	"github.com/BrandonKowalski/showcase/pkg/showcase/i18n"
	"github.com/BrandonKowalski/showcase/pkg/showcase/internal"
	"github.com/BrandonKowalski/showcase/pkg/showcase/remote"
)

// Options configures the renderer.
type Options struct {
	WindowTitle    string                 // Window title displayed in windowed mode
	WindowOptions  internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	Development    bool                   // Windowed, verbose internal logging
	LogPath        string                 // Full path for log file including filename (creates parent directories)
	FontPath       string                 // TTF font used for all text
	BackgroundPath string                 // Optional background image
	Translator     *i18n.Translator       // UI strings; English when nil
}

var (
	translator *i18n.Translator
	textCache  = internal.NewTextureCache()
)

// Init initializes SDL, the window, fonts and input handling.
// Must be called before any screen is shown, on the thread that renders.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.Development {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme(options.FontPath)
	theme.BackgroundImagePath = options.BackgroundPath
	internal.SetTheme(theme)

	translator = options.Translator
	if translator == nil {
		tr, err := i18n.New("en")
		if err != nil {
			return NewInfrastructureError("load_translations", err)
		}
		translator = tr
	}

	if err := internal.Init(options.WindowTitle, options.WindowOptions, options.Development); err != nil {
		return NewInfrastructureError("init", err)
	}

	return nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	textCache.Destroy()
	internal.SDLCleanup()
}

// RequestQuit makes the current screen return ErrQuit. Safe to call from
// any goroutine.
func RequestQuit() {
	internal.RequestQuit()
}

// AttachRemote feeds remote-control events into every screen.
func AttachRemote(events <-chan remote.Event) {
	internal.SetRemoteEvents(events)
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// WindowOptions is re-exported for callers configuring Init.
type WindowOptions = internal.WindowOptions

func t(id string) string {
	if translator == nil {
		return id
	}
	return translator.T(id)
}
