// pkg/render/color.go
package render

import "image/color"

// Palette holds all the colors needed to draw the field, the entities and the HUD.
type Palette struct {
	Background   color.RGBA
	Path         color.RGBA
	Enemy        color.RGBA
	HealthBar    color.RGBA
	HealthBarBg  color.RGBA
	Bullet       color.RGBA
	Towers       []color.RGBA // indexed by tower kind
	RangeOutline color.RGBA
	Toolbar      color.RGBA
	Text         color.RGBA
	Overlay      color.RGBA
}

// TowerColor returns the color for a tower kind index, falling back to the first entry.
func (p *Palette) TowerColor(kind int) color.RGBA {
	if kind >= 0 && kind < len(p.Towers) {
		return p.Towers[kind]
	}
	if len(p.Towers) > 0 {
		return p.Towers[0]
	}
	return color.RGBA{0, 0, 255, 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
