// Package scene holds the window-independent half of the desktop front end:
// colors, the theme ripple, card quad geometry and pointer routing.
package scene

import "carousel/internal/theme"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the channels scaled to 0..1 for GL uniforms.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func LerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

type Palette struct {
	Background  RGB
	Frame       RGB // card border
	Shadow      RGB
	Placeholder RGB // photo area while the image is still decoding
	Ripple      RGB
}

var (
	LightPalette = Palette{
		Background:  RGB{R: 245, G: 255, B: 247},
		Frame:       RGB{R: 255, G: 255, B: 255},
		Shadow:      RGB{R: 60, G: 66, B: 79},
		Placeholder: RGB{R: 216, G: 210, B: 191},
		Ripple:      RGB{R: 245, G: 255, B: 247},
	}
	DarkPalette = Palette{
		Background:  RGB{R: 13, G: 17, B: 23},
		Frame:       RGB{R: 48, G: 54, B: 61},
		Shadow:      RGB{R: 0, G: 0, B: 0},
		Placeholder: RGB{R: 86, G: 89, B: 88},
		Ripple:      RGB{R: 13, G: 17, B: 23},
	}
)

func PaletteFor(t theme.Theme) Palette {
	if t == theme.Dark {
		return DarkPalette
	}
	return LightPalette
}

// Lerp blends every colour toward q.
func (p Palette) Lerp(q Palette, t float64) Palette {
	return Palette{
		Background:  LerpRGB(p.Background, q.Background, t),
		Frame:       LerpRGB(p.Frame, q.Frame, t),
		Shadow:      LerpRGB(p.Shadow, q.Shadow, t),
		Placeholder: LerpRGB(p.Placeholder, q.Placeholder, t),
		Ripple:      LerpRGB(p.Ripple, q.Ripple, t),
	}
}
