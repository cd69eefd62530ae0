package theme

type DefaultTheme struct {
}

var (
	White = Color{255, 255, 255}
	Gray  = Color{96, 96, 96}

	fretColors = [...]Color{
		{0, 255, 0},   // green
		{255, 0, 0},   // red
		{255, 255, 0}, // yellow
		{0, 0, 255},   // blue
		{255, 128, 0}, // orange
	}

	textures = map[string]Texture{
		"button":     {Name: "button", Glyph: "⬤"},
		"sustain":    {Name: "sustain", Glyph: "┃"},
		"cursor":     {Name: "cursor", Glyph: "═"},
		"guitarneck": {Name: "guitarneck", Glyph: "│", Alt: "─"},
		"bassneck":   {Name: "bassneck", Glyph: "╎", Alt: "┄"},
	}
)

func (t *DefaultTheme) FretColor(fret int) Color {
	if fret < 0 || fret >= len(fretColors) {
		return White
	}
	return fretColors[fret]
}

// StateColor is white for a note hit by the latest strum and gray for
// notes hit before.
func (t *DefaultTheme) StateColor(fret int, hit, consumed bool) Color {
	switch {
	case hit:
		return White
	case consumed:
		return Gray
	}
	return t.FretColor(fret)
}

func (t *DefaultTheme) Texture(name string) (Texture, error) {
	tex, ok := textures[name]
	if !ok {
		return Texture{}, ErrUnknownTexture
	}
	return tex, nil
}
