// Package constants defines shared constants, types, and configuration values
// used throughout the showcase application.
package constants

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read at startup.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	WindowWidthEnvVar    = "WINDOW_WIDTH"
	WindowHeightEnvVar   = "WINDOW_HEIGHT"
	ReduceMotionEnvVar   = "REDUCE_MOTION"
	PlatformEnvVar       = "SHOWCASE_PLATFORM"
	LanguageEnvVar       = "SHOWCASE_LANG"
)

// VirtualButton represents an abstract input button, mapped from a TV remote,
// a game controller or a keyboard.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA // select / OK on a remote
	VirtualButtonB // back on a remote
	VirtualButtonStart
	VirtualButtonMenu
	VirtualButtonPlayPause
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPlayPause:
		return "PlayPause"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the button moves focus.
func (vb VirtualButton) IsDirectional() bool {
	switch vb {
	case VirtualButtonUp, VirtualButtonDown, VirtualButtonLeft, VirtualButtonRight:
		return true
	}
	return false
}

// List layout and focus styling.
const (
	DefaultRowHeight  int32 = 60
	DefaultRowPadding int32 = 15
	FocusedRowOpacity       = 0.7
)
