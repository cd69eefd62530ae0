package theme

import "errors"

var ErrUnknownTexture = errors.New("unknown texture")

type Color struct {
	R, G, B uint8
}

// Texture is a drawable asset. Glyph fills one cell, Alt is the beat line
// variant for neck textures.
type Texture struct {
	Name  string
	Glyph string
	Alt   string
}

type Theme interface {
	FretColor(fret int) Color
	StateColor(fret int, hit, consumed bool) Color
	Texture(name string) (Texture, error)
}
