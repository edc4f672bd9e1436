package layout

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/provebilde/canvas"
)

// Logical frame size and center.
const (
	FrameWidth  = 768
	FrameHeight = 576
	CenterX     = FrameWidth / 2
	CenterY     = FrameHeight / 2
)

// Coord is a point in the logical frame.
type Coord struct {
	X, Y float64
}

// Center is the middle of the logical frame, where the foreground circle
// sits.
var Center = Coord{X: CenterX, Y: CenterY}

// Size is a width and height in logical units.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in logical units.
type Rect struct {
	X, Y, W, H float64
}

// Frame returns the full logical frame.
func Frame() Rect {
	return Rect{W: FrameWidth, H: FrameHeight}
}

// ParseColor parses a CSS hex color ("#rgb" or "#rrggbb").
func ParseColor(hex string) (canvas.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return canvas.RGBA{}, fmt.Errorf("layout: parse color %q: %w", hex, err)
	}
	r, g, b := c.Clamped().RGB255()
	return canvas.RGB8(r, g, b), nil
}

// MustColor is like ParseColor but panics on malformed input. It is meant
// for package level palettes.
func MustColor(hex string) canvas.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func fillRect(dc *canvas.Context, r Rect) {
	dc.FillRect(r.X, r.Y, r.W, r.H)
}
