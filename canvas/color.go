package canvas

import (
	"image/color"
	"math"
)

// RGBA represents a straight (non-premultiplied) color.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// RGB8 creates an opaque color from 8-bit components, the way CSS rgb()
// values are written.
func RGB8(r, g, b uint8) RGBA {
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// Gray creates an opaque gray from an 8-bit level.
func Gray(level uint8) RGBA {
	return RGB8(level, level, level)
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Color returns c as a color.NRGBA, rounding each channel to 8 bits.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// FromColor converts any color.Color to a straight RGBA. Fully transparent
// colors come back as Transparent since their hue is lost.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	fa := float64(a)
	return RGBA{R: float64(r) / fa, G: float64(g) / fa, B: float64(b) / fa, A: fa / 0xffff}
}

// Premultiply scales the color channels by alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// Lerp mixes c towards other by t in [0, 1], channel by channel.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	mix := func(a, b float64) float64 { return a + (b-a)*t }
	return RGBA{mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B), mix(c.A, other.A)}
}

// to8 converts a unit value to a rounded 8-bit channel.
func to8(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
