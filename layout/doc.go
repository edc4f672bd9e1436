// Package layout draws the static parts of the test card: the background
// grid with its color bars and the circular foreground pattern.
//
// All coordinates are in the logical 768x576 frame. Renderers draw through a
// canvas.Context and leave its state as they found it.
package layout
