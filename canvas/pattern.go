package canvas

import "math"

// Pattern represents a fill paint. Coordinates are in user space, the space
// of the transform active when the shape is filled.
type Pattern interface {
	// ColorAt returns the color at the given point.
	ColorAt(x, y float64) RGBA
}

// SolidPattern represents a solid color pattern.
type SolidPattern struct {
	Color RGBA
}

// NewSolidPattern creates a solid color pattern.
func NewSolidPattern(color RGBA) *SolidPattern {
	return &SolidPattern{Color: color}
}

// ColorAt implements Pattern.
func (p *SolidPattern) ColorAt(x, y float64) RGBA {
	return p.Color
}

// ImagePattern tiles a pixmap across user space starting at the origin,
// like a canvas pattern created with "repeat".
type ImagePattern struct {
	tile *Pixmap
}

// NewImagePattern creates a repeating pattern from tile.
func NewImagePattern(tile *Pixmap) *ImagePattern {
	return &ImagePattern{tile: tile}
}

// Tile returns the pattern's tile.
func (p *ImagePattern) Tile() *Pixmap {
	return p.tile
}

// ColorAt implements Pattern with nearest texel sampling.
func (p *ImagePattern) ColorAt(x, y float64) RGBA {
	w, h := p.tile.width, p.tile.height
	if w == 0 || h == 0 {
		return Transparent
	}
	return p.tile.GetPixel(wrap(int(math.Floor(x)), w), wrap(int(math.Floor(y)), h))
}

// smoothColorAt samples the tile bilinearly with wrap-around. It is used
// instead of ColorAt when image smoothing is on and the pattern is scaled.
func (p *ImagePattern) smoothColorAt(x, y float64) RGBA {
	w, h := p.tile.width, p.tile.height
	if w == 0 || h == 0 {
		return Transparent
	}
	fx, fy := x-0.5, y-0.5
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := fx-x0, fy-y0
	ix, iy := int(x0), int(y0)

	c00 := p.tile.GetPixel(wrap(ix, w), wrap(iy, h)).Premultiply()
	c10 := p.tile.GetPixel(wrap(ix+1, w), wrap(iy, h)).Premultiply()
	c01 := p.tile.GetPixel(wrap(ix, w), wrap(iy+1, h)).Premultiply()
	c11 := p.tile.GetPixel(wrap(ix+1, w), wrap(iy+1, h)).Premultiply()
	c := c00.Lerp(c10, tx).Lerp(c01.Lerp(c11, tx), ty)
	if c.A == 0 {
		return Transparent
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
