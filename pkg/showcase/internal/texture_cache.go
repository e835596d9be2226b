package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 64

// TextTexture is a rendered line of text.
type TextTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache keeps rendered text around between frames, evicting the
// least recently used entry when full.
type TextureCache struct {
	textures map[string]TextTexture
	order    []string // tracks use order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]TextTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Text returns the texture for text in font and color, rendering it on a
// miss.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (TextTexture, error) {
	key := fmt.Sprintf("%p|%08x|%s", font, uint32(color.R)<<24|uint32(color.G)<<16|uint32(color.B)<<8|uint32(color.A), text)

	if t, ok := c.textures[key]; ok {
		c.moveToEnd(key)
		return t, nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return TextTexture{}, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return TextTexture{}, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	t := TextTexture{Texture: texture, W: surface.W, H: surface.H}
	c.set(key, t)
	return t, nil
}

func (c *TextureCache) set(key string, t TextTexture) {
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = t
	c.order = append(c.order, key)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, exists := c.textures[oldest]; exists {
		t.Texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, t := range c.textures {
		t.Texture.Destroy()
	}
	c.textures = make(map[string]TextTexture)
	c.order = c.order[:0]
}
