package layout

import (
	"math"

	"github.com/gogpu/provebilde/canvas"
)

// Half selects the half of a tile that a half-stripe pattern suppresses.
type Half int

const (
	Top Half = iota
	Bottom
)

func (h Half) String() string {
	if h == Top {
		return "top"
	}
	return "bottom"
}

// DefaultGray is the flat fill of interior grid cells.
var DefaultGray = MustColor("#7a7a7a")

// MakeStripePattern returns a repeating 1x4 tile: two rows of a followed by
// two rows of b.
func MakeStripePattern(a, b canvas.RGBA) *canvas.ImagePattern {
	dc := canvas.NewContext(1, 4)
	dc.SetFillColor(a)
	dc.FillRect(0, 0, 1, 2)
	dc.SetFillColor(b)
	dc.FillRect(0, 2, 1, 2)
	return canvas.NewImagePattern(dc.Pixmap())
}

// MakeHalfStripePattern paints base into a size x size tile and covers the
// suppressed half with DefaultGray.
func MakeHalfStripePattern(base canvas.Pattern, size int, suppress Half) *canvas.ImagePattern {
	s := float64(size)
	dc := canvas.NewContext(size, size)
	dc.SetFillPattern(base)
	dc.FillRect(0, 0, s, s)
	dc.SetFillColor(DefaultGray)
	if suppress == Top {
		dc.FillRect(0, 0, s, s/2)
	} else {
		dc.FillRect(0, s/2, s, s/2)
	}
	return canvas.NewImagePattern(dc.Pixmap())
}

// MakeGradientFill returns a repeating floor(width) x 1 tile holding a
// black, white, black linear gradient spanning width.
func MakeGradientFill(width float64) *canvas.ImagePattern {
	w := max(1, int(math.Floor(width)))
	dc := canvas.NewContext(w, 1)
	g := canvas.NewLinearGradient(0, 0, width, 1).
		AddColorStop(0, canvas.Black).
		AddColorStop(0.5, canvas.White).
		AddColorStop(1, canvas.Black)
	dc.SetFillPattern(g)
	dc.FillRect(0, 0, width, 1)
	return canvas.NewImagePattern(dc.Pixmap())
}
