package canvas

import (
	"image"
	"math"
)

// Mask represents an alpha coverage mask used for clipping.
// Values range from 0 (fully clipped) to 255 (fully visible).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// intersect returns a new mask holding the product of m and other.
// A nil receiver stands for an unclipped surface.
func (m *Mask) intersect(other *Mask) *Mask {
	if m == nil {
		return other
	}
	out := NewMask(m.width, m.height)
	for i := range out.data {
		out.data[i] = uint8((uint16(m.data[i])*uint16(other.data[i]) + 127) / 255)
	}
	return out
}

// rectMask rasterizes the user space rectangle (x, y, w, h) transformed by
// mat, sampling pixel centers.
func rectMask(width, height int, mat Matrix, x, y, w, h float64) *Mask {
	m := NewMask(width, height)
	b := deviceBounds(width, height, mat, x, y, w, h)
	inv := mat.Invert()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			u := inv.TransformPoint(Pt(float64(px)+0.5, float64(py)+0.5))
			if u.X >= x && u.X < x+w && u.Y >= y && u.Y < y+h {
				m.data[py*width+px] = 255
			}
		}
	}
	return m
}

// circleMask rasterizes a circle of radius r around (cx, cy) in user space.
// Pixels crossing the boundary get 4x4 supersampled coverage.
func circleMask(width, height int, mat Matrix, cx, cy, r float64) *Mask {
	m := NewMask(width, height)
	c := mat.TransformPoint(Pt(cx, cy))
	rd := r * mat.ScaleFactor()
	if rd <= 0 {
		return m
	}
	b := image.Rect(
		int(math.Floor(c.X-rd)), int(math.Floor(c.Y-rd)),
		int(math.Ceil(c.X+rd)), int(math.Ceil(c.Y+rd)),
	).Intersect(m.Bounds())

	const (
		sub  = 4
		edge = math.Sqrt2 / 2
	)
	inner, outer := rd-edge, rd+edge
	rr := rd * rd
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			dx := float64(px) + 0.5 - c.X
			dy := float64(py) + 0.5 - c.Y
			d := math.Hypot(dx, dy)
			switch {
			case d <= inner:
				m.data[py*width+px] = 255
			case d >= outer:
			default:
				n := 0
				for sy := 0; sy < sub; sy++ {
					for sx := 0; sx < sub; sx++ {
						ox := float64(px) + (float64(sx)+0.5)/sub - c.X
						oy := float64(py) + (float64(sy)+0.5)/sub - c.Y
						if ox*ox+oy*oy < rr {
							n++
						}
					}
				}
				m.data[py*width+px] = uint8(n * 255 / (sub * sub))
			}
		}
	}
	return m
}

// deviceBounds returns the pixel rectangle covering the transformed user
// space rectangle, clipped to the surface.
func deviceBounds(width, height int, mat Matrix, x, y, w, h float64) image.Rectangle {
	pts := [4]Point{
		mat.TransformPoint(Pt(x, y)),
		mat.TransformPoint(Pt(x+w, y)),
		mat.TransformPoint(Pt(x, y+h)),
		mat.TransformPoint(Pt(x+w, y+h)),
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	return r.Intersect(image.Rect(0, 0, width, height))
}
