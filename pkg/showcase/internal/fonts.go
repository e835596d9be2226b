package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// Fonts used by the catalog, opened once at startup.
type Fonts struct {
	Header *ttf.Font
	Row    *ttf.Font
	Small  *ttf.Font
}

const (
	headerFontSize = 22
	rowFontSize    = 16
	smallFontSize  = 13
)

var fonts Fonts

func initFonts(path string) error {
	if path == "" {
		return fmt.Errorf("no font configured")
	}

	var err error
	if fonts.Header, err = ttf.OpenFont(path, headerFontSize); err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}
	fonts.Header.SetStyle(ttf.STYLE_BOLD)

	if fonts.Row, err = ttf.OpenFont(path, rowFontSize); err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}
	if fonts.Small, err = ttf.OpenFont(path, smallFontSize); err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}
	return nil
}

func GetFonts() Fonts {
	return fonts
}

func closeFonts() {
	for _, f := range []*ttf.Font{fonts.Header, fonts.Row, fonts.Small} {
		if f != nil {
			f.Close()
		}
	}
	fonts = Fonts{}
}
