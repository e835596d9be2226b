package internal

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// Icon identifies a vector glyph drawn by the renderer.
type Icon int

const (
	IconBack Icon = iota
	IconChevronRight
)

var iconSources = map[Icon]string{
	IconBack: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <path d="M15.5 3.5 L7 12 L15.5 20.5" fill="none" stroke="#FFFFFF" stroke-width="2.6" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`,
	IconChevronRight: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <path d="M9 5 L16 12 L9 19" fill="none" stroke="#FFFFFF" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`,
}

// IconSet holds the rasterized icons. They are drawn white and tinted with
// SetColorMod at draw time.
type IconSet struct {
	textures map[Icon]*sdl.Texture
	size     int32
}

// NewIconSet rasterizes every icon at size×size pixels.
func NewIconSet(renderer *sdl.Renderer, size int32) (*IconSet, error) {
	set := &IconSet{textures: make(map[Icon]*sdl.Texture, len(iconSources)), size: size}

	for icon, src := range iconSources {
		rgba, err := RasterizeSVG(src, int(size))
		if err != nil {
			set.Destroy()
			return nil, fmt.Errorf("icon %d: %w", icon, err)
		}
		texture, err := textureFromRGBA(renderer, rgba)
		if err != nil {
			set.Destroy()
			return nil, fmt.Errorf("icon %d: %w", icon, err)
		}
		set.textures[icon] = texture
	}

	return set, nil
}

// RasterizeSVG renders an SVG document into a size×size image.
func RasterizeSVG(src string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(src), oksvg.StrictErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

func textureFromRGBA(renderer *sdl.Renderer, rgba *image.RGBA) (*sdl.Texture, error) {
	w, h := int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy())

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	surface.Lock()
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < int(h); y++ {
		copy(pixels[y*pitch:y*pitch+int(w)*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+int(w)*4])
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// Draw renders icon at x,y tinted with color.
func (s *IconSet) Draw(renderer *sdl.Renderer, icon Icon, x, y int32, color sdl.Color) {
	texture, ok := s.textures[icon]
	if !ok {
		return
	}
	texture.SetColorMod(color.R, color.G, color.B)
	texture.SetAlphaMod(color.A)
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: s.size, H: s.size})
}

// Size is the edge length of every icon.
func (s *IconSet) Size() int32 {
	return s.size
}

func (s *IconSet) Destroy() {
	for icon, t := range s.textures {
		t.Destroy()
		delete(s.textures, icon)
	}
}
