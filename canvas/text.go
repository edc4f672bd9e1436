package canvas

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font selects one of the built-in Go fonts at a pixel size.
type Font struct {
	Size float64
	Bold bool
}

// TextAlign is the horizontal anchor of drawn text.
type TextAlign int

const (
	AlignStart TextAlign = iota
	AlignCenter
	AlignEnd
)

// TextBaseline is the vertical anchor of drawn text.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineMiddle
	BaselineTop
)

type faceKey struct {
	bold bool
	size float64
}

var (
	parseRegular = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goregular.TTF) })
	parseBold    = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(gobold.TTF) })
)

// SetFont sets the font used by FillText, StrokeText and MeasureText.
func (dc *Context) SetFont(f Font) {
	dc.font = f
}

// SetTextAlign sets the horizontal text anchor.
func (dc *Context) SetTextAlign(a TextAlign) {
	dc.align = a
}

// SetTextBaseline sets the vertical text anchor.
func (dc *Context) SetTextBaseline(b TextBaseline) {
	dc.baseline = b
}

// MeasureText returns the advance width of s in user space units.
func (dc *Context) MeasureText(s string) float64 {
	scale := dc.matrix.ScaleFactor()
	face, err := dc.face(dc.font.Size * scale)
	if err != nil || scale == 0 {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, s)) / scale
}

// FillText draws s anchored at (x, y) with the fill paint. When maxWidth is
// positive and the text is wider, it is squeezed horizontally to fit.
// Text is drawn upright at the transformed anchor; only the scale of the
// current transform applies to it.
func (dc *Context) FillText(s string, x, y, maxWidth float64) {
	dc.drawText(s, x, y, maxWidth, dc.fill, false)
}

// StrokeText draws a one pixel outline of s with the stroke paint.
func (dc *Context) StrokeText(s string, x, y, maxWidth float64) {
	dc.drawText(s, x, y, maxWidth, dc.stroke, true)
}

func (dc *Context) face(px float64) (font.Face, error) {
	key := faceKey{bold: dc.font.Bold, size: px}
	if f, ok := dc.faces[key]; ok {
		return f, nil
	}
	parse := parseRegular
	if key.bold {
		parse = parseBold
	}
	otf, err := parse()
	if err != nil {
		return nil, fmt.Errorf("canvas: parse font: %w", err)
	}
	f, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("canvas: new face: %w", err)
	}
	dc.faces[key] = f
	return f, nil
}

func (dc *Context) drawText(s string, x, y, maxWidth float64, paint Pattern, outline bool) {
	if s == "" {
		return
	}
	scale := dc.matrix.ScaleFactor()
	face, err := dc.face(dc.font.Size * scale)
	if err != nil {
		Logger().Warn("canvas: text skipped", "err", err)
		return
	}

	const pad = 1
	bounds, advance := font.BoundString(face, s)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return
	}
	glyphs := image.NewAlpha(image.Rect(0, 0, maxX-minX+2*pad, maxY-minY+2*pad))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(pad-minX, pad-minY),
	}
	d.DrawString(s)

	mask := glyphs
	if outline {
		mask = edges(glyphs)
	}

	width := fixedToFloat(advance)
	squeeze := 1.0
	if limit := maxWidth * scale; maxWidth > 0 && width > limit {
		squeeze = limit / width
		sw := int(math.Max(1, math.Round(float64(mask.Rect.Dx())*squeeze)))
		squeezed := image.NewAlpha(image.Rect(0, 0, sw, mask.Rect.Dy()))
		draw.ApproxBiLinear.Scale(squeezed, squeezed.Rect, mask, mask.Rect, draw.Src, nil)
		mask = squeezed
		width = limit
	}

	anchor := dc.matrix.TransformPoint(Pt(x, y))
	left := anchor.X
	switch dc.align {
	case AlignCenter:
		left -= width / 2
	case AlignEnd:
		left -= width
	}
	baseline := anchor.Y
	m := face.Metrics()
	switch dc.baseline {
	case BaselineMiddle:
		baseline += fixedToFloat(m.Ascent-m.Descent) / 2
	case BaselineTop:
		baseline += fixedToFloat(m.Ascent)
	}

	ox := int(math.Round(left + float64(minX-pad)*squeeze))
	oy := int(math.Round(baseline)) + minY - pad
	inv := dc.matrix.Invert()
	for my := 0; my < mask.Rect.Dy(); my++ {
		py := oy + my
		if py < 0 || py >= dc.height {
			continue
		}
		for mx := 0; mx < mask.Rect.Dx(); mx++ {
			px := ox + mx
			if px < 0 || px >= dc.width {
				continue
			}
			a := mask.Pix[my*mask.Stride+mx]
			if a == 0 {
				continue
			}
			cov := float64(a) / 255 * dc.clipCoverage(px, py)
			if cov == 0 {
				continue
			}
			u := inv.TransformPoint(Pt(float64(px)+0.5, float64(py)+0.5))
			dc.pixmap.blend(px, py, dc.paintAt(paint, u), cov)
		}
	}
}

// edges returns the outline band of a glyph mask: half the difference
// between its 3x3 dilation and erosion.
func edges(src *image.Alpha) *image.Alpha {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := image.NewAlpha(src.Rect)
	at := func(x, y int) uint8 {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0
		}
		return src.Pix[y*src.Stride+x]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lo, hi := uint8(255), uint8(0)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := at(x+dx, y+dy)
					lo = min(lo, v)
					hi = max(hi, v)
				}
			}
			out.Pix[y*out.Stride+x] = (hi - lo) / 2
		}
	}
	return out
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
