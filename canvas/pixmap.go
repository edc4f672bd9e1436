package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored premultiplied, 4 bytes per pixel in RGBA order, which is
// the layout of image.RGBA.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel replaces the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	pm := c.Premultiply()
	p.data[i+0] = to8(pm.R)
	p.data[i+1] = to8(pm.G)
	p.data[i+2] = to8(pm.B)
	p.data[i+3] = to8(pm.A)
}

// GetPixel returns the straight color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	a := p.data[i+3]
	if a == 0 {
		return Transparent
	}
	fa := float64(a)
	return RGBA{
		R: float64(p.data[i+0]) / fa,
		G: float64(p.data[i+1]) / fa,
		B: float64(p.data[i+2]) / fa,
		A: fa / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	pm := c.Premultiply()
	r, g, b, a := to8(pm.R), to8(pm.G), to8(pm.B), to8(pm.A)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// blend composites a straight color over pixel (x, y) with the given
// coverage using source-over.
func (p *Pixmap) blend(x, y int, c RGBA, coverage float64) {
	sa := c.A * coverage
	if sa <= 0 {
		return
	}
	i := (y*p.width + x) * 4
	if sa >= 1 {
		p.data[i+0] = to8(c.R)
		p.data[i+1] = to8(c.G)
		p.data[i+2] = to8(c.B)
		p.data[i+3] = 255
		return
	}
	inv := 1 - sa
	p.data[i+0] = to8(c.R*sa + float64(p.data[i+0])/255*inv)
	p.data[i+1] = to8(c.G*sa + float64(p.data[i+1])/255*inv)
	p.data[i+2] = to8(c.B*sa + float64(p.data[i+2])/255*inv)
	p.data[i+3] = to8(sa + float64(p.data[i+3])/255*inv)
}

// AsImage returns an image.RGBA view sharing the pixmap's memory.
func (p *Pixmap) AsImage() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	p := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(p.AsImage(), p.AsImage().Rect, img, b.Min, draw.Src)
	return p
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}
