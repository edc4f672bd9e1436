package canvas

import (
	"image"

	"golang.org/x/image/font"
)

// state is the part of the Context saved by Push and restored by Pop.
type state struct {
	matrix    Matrix
	fill      Pattern
	stroke    Pattern
	clip      *Mask
	font      Font
	align     TextAlign
	baseline  TextBaseline
	smoothing bool
}

// Context is the drawing context. It holds the current transform, clip,
// paints and text settings on top of a premultiplied pixmap.
type Context struct {
	width  int
	height int
	pixmap *Pixmap
	state
	stack []state
	faces map[faceKey]font.Face
}

// NewContext creates a new drawing context with the given dimensions.
// Optional ContextOption functions can be passed to customize the context.
func NewContext(width, height int, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pm := o.pixmap
	if pm == nil {
		pm = NewPixmap(width, height)
	}
	dc := &Context{
		width:  width,
		height: height,
		pixmap: pm,
		faces:  make(map[faceKey]font.Face),
	}
	dc.state = state{
		matrix:    o.transform,
		fill:      NewSolidPattern(Black),
		stroke:    NewSolidPattern(Black),
		font:      Font{Size: 10},
		align:     AlignStart,
		baseline:  BaselineAlphabetic,
		smoothing: o.smoothing,
	}
	return dc
}

// Width returns the width of the surface in pixels.
func (dc *Context) Width() int {
	return dc.width
}

// Height returns the height of the surface in pixels.
func (dc *Context) Height() int {
	return dc.height
}

// Pixmap returns the surface pixels.
func (dc *Context) Pixmap() *Pixmap {
	return dc.pixmap
}

// Image returns the surface as an image.Image sharing its memory.
func (dc *Context) Image() image.Image {
	return dc.pixmap.AsImage()
}

// Push saves the current state onto the stack.
func (dc *Context) Push() {
	dc.stack = append(dc.stack, dc.state)
}

// Pop restores the last saved state. An unmatched Pop is a no-op.
func (dc *Context) Pop() {
	if len(dc.stack) == 0 {
		return
	}
	dc.state = dc.stack[len(dc.stack)-1]
	dc.stack = dc.stack[:len(dc.stack)-1]
}

// Translate appends a translation to the current transform.
func (dc *Context) Translate(x, y float64) {
	dc.matrix = dc.matrix.Multiply(Translate(x, y))
}

// Scale appends a scale to the current transform. Negative factors flip.
func (dc *Context) Scale(x, y float64) {
	dc.matrix = dc.matrix.Multiply(Scale(x, y))
}

// Matrix returns the current transform.
func (dc *Context) Matrix() Matrix {
	return dc.matrix
}

// SetFillColor sets a solid fill paint.
func (dc *Context) SetFillColor(c RGBA) {
	dc.fill = NewSolidPattern(c)
}

// SetFillPattern sets the fill paint.
func (dc *Context) SetFillPattern(p Pattern) {
	dc.fill = p
}

// SetStrokeColor sets a solid paint for StrokeText.
func (dc *Context) SetStrokeColor(c RGBA) {
	dc.stroke = NewSolidPattern(c)
}

// SetImageSmoothing toggles interpolation when image patterns are drawn
// at a scale other than one.
func (dc *Context) SetImageSmoothing(enabled bool) {
	dc.smoothing = enabled
}

// ImageSmoothing reports whether image smoothing is enabled.
func (dc *Context) ImageSmoothing() bool {
	return dc.smoothing
}

// Clear fills the whole surface with c, ignoring transform and clip.
func (dc *Context) Clear(c RGBA) {
	dc.pixmap.Clear(c)
}

// FillRect fills the rectangle (x, y, w, h) in user space with the current
// fill paint, composited source-over through the current clip.
func (dc *Context) FillRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if w == 0 || h == 0 {
		return
	}
	b := deviceBounds(dc.width, dc.height, dc.matrix, x, y, w, h)
	inv := dc.matrix.Invert()
	solid, isSolid := dc.fill.(*SolidPattern)
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			cov := dc.clipCoverage(px, py)
			if cov == 0 {
				continue
			}
			u := inv.TransformPoint(Pt(float64(px)+0.5, float64(py)+0.5))
			if u.X < x || u.X >= x+w || u.Y < y || u.Y >= y+h {
				continue
			}
			var c RGBA
			if isSolid {
				c = solid.Color
			} else {
				c = dc.paintAt(dc.fill, u)
			}
			dc.pixmap.blend(px, py, c, cov)
		}
	}
}

// ClipRect intersects the clip with the rectangle (x, y, w, h).
func (dc *Context) ClipRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	dc.clip = dc.clip.intersect(rectMask(dc.width, dc.height, dc.matrix, x, y, w, h))
}

// ClipCircle intersects the clip with the circle of radius r centered at
// (cx, cy).
func (dc *Context) ClipCircle(cx, cy, r float64) {
	dc.clip = dc.clip.intersect(circleMask(dc.width, dc.height, dc.matrix, cx, cy, r))
}

// ResetClip removes the clip from the current state.
func (dc *Context) ResetClip() {
	dc.clip = nil
}

func (dc *Context) clipCoverage(px, py int) float64 {
	if dc.clip == nil {
		return 1
	}
	return float64(dc.clip.At(px, py)) / 255
}

func (dc *Context) paintAt(p Pattern, u Point) RGBA {
	if ip, ok := p.(*ImagePattern); ok && dc.smoothing && dc.matrix.ScaleFactor() != 1 {
		return ip.smoothColorAt(u.X, u.Y)
	}
	return p.ColorAt(u.X, u.Y)
}
