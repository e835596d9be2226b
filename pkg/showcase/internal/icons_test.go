package internal

import (
	"testing"
)

func TestRasterizeSVG_DrawsEveryIcon(t *testing.T) {
	for icon, src := range iconSources {
		rgba, err := RasterizeSVG(src, 24)
		if err != nil {
			t.Fatalf("icon %d: %v", icon, err)
		}

		painted := 0
		for i := 3; i < len(rgba.Pix); i += 4 {
			if rgba.Pix[i] != 0 {
				painted++
			}
		}
		if painted == 0 {
			t.Errorf("icon %d rendered no pixels", icon)
		}
	}
}
