package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Painter draws one screen layer. OffsetX and Alpha apply to everything it
// draws, which is how screen transitions slide and fade a whole screen.
type Painter struct {
	Renderer *sdl.Renderer
	Text     *TextureCache
	OffsetX  int32
	Alpha    float64 // 0..1
}

func NewPainter(renderer *sdl.Renderer, cache *TextureCache) *Painter {
	return &Painter{Renderer: renderer, Text: cache, Alpha: 1}
}

func (p *Painter) fade(c sdl.Color) sdl.Color {
	if p.Alpha >= 1 {
		return c
	}
	a := p.Alpha
	if a < 0 {
		a = 0
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// FillRect fills r with c.
func (p *Painter) FillRect(r sdl.Rect, c sdl.Color) {
	c = p.fade(c)
	r.X += p.OffsetX
	p.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	p.Renderer.FillRect(&r)
}

// DrawText draws text with its top-left corner at x,y and returns its size.
func (p *Painter) DrawText(font *ttf.Font, text string, x, y int32, c sdl.Color) (int32, int32) {
	if text == "" || font == nil {
		return 0, 0
	}
	t, err := p.Text.Text(p.Renderer, font, text, c)
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return 0, 0
	}
	t.Texture.SetAlphaMod(p.fade(c).A)
	p.Renderer.Copy(t.Texture, nil, &sdl.Rect{X: x + p.OffsetX, Y: y, W: t.W, H: t.H})
	return t.W, t.H
}

// MeasureText returns the rendered size of text.
func (p *Painter) MeasureText(font *ttf.Font, text string) (int32, int32) {
	if text == "" || font == nil {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// DrawIcon draws icon at x,y.
func (p *Painter) DrawIcon(icons *IconSet, icon Icon, x, y int32, c sdl.Color) {
	if icons == nil {
		return
	}
	icons.Draw(p.Renderer, icon, x+p.OffsetX, y, p.fade(c))
}
