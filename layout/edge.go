package layout

import "github.com/gogpu/provebilde/canvas"

// EdgeColor is the pair of translucent fills used to fake a soft bevel on
// block edges.
type EdgeColor struct {
	Lighten canvas.RGBA
	Darken  canvas.RGBA
}

// NewEdgeColor returns the bevel colors, or two fully transparent colors when
// blurred edges are disabled.
func NewEdgeColor(blurredEdgesDisabled bool) EdgeColor {
	if blurredEdgesDisabled {
		return EdgeColor{Lighten: canvas.Transparent, Darken: canvas.Transparent}
	}
	return EdgeColor{
		Lighten: canvas.White.WithAlpha(0.666),
		Darken:  canvas.Black.WithAlpha(0.333),
	}
}
