package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the catalog.
type Theme struct {
	ListBackgroundColor sdl.Color // Behind the rows
	RowColor            sdl.Color // Row background
	SeparatorColor      sdl.Color // 1px line between rows
	TextColor           sdl.Color // Row and header text
	HeaderColor         sdl.Color // Header bar background
	AccentColor         sdl.Color // Back control, activity indicator
	HintColor           sdl.Color // Footer hints
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Optional full-screen background
}

var currentTheme = DefaultTheme("")

// DefaultTheme is the light list look of the catalog.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		ListBackgroundColor: HexToColor(0xEFEFF4),
		RowColor:            HexToColor(0xFFFFFF),
		SeparatorColor:      HexToColor(0xDBDBE0),
		TextColor:           HexToColor(0x000000),
		HeaderColor:         HexToColor(0xF8F8F8),
		AccentColor:         HexToColor(0x007AFF),
		HintColor:           HexToColor(0x8E8E93),
		FontPath:            fontPath,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}
