// Package canvas provides the 2D drawing surface the test card is composed on.
//
// # Overview
//
// canvas is a small immediate-mode drawing context modelled on the HTML
// Canvas 2D API. It keeps a premultiplied RGBA pixmap, a transform and clip
// stack, a current fill paint and a text state:
//
//	dc := canvas.NewContext(768, 576)
//	dc.Push()
//	dc.Translate(384, 288)
//	dc.SetFillColor(canvas.Hex("#bfbf00"))
//	dc.FillRect(-42, 0, 84, 84)
//	dc.Pop()
//
// # Coverage
//
// Rectangles are rasterized by sampling pixel centers through the inverse
// transform, so integer aligned geometry is pixel exact under translations
// and axis flips. Circular clips are anti-aliased with 4x4 supersampling on
// the boundary.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// A Context is not safe for concurrent use.
package canvas
