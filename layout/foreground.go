package layout

import "github.com/gogpu/provebilde/canvas"

// Foreground geometry.
const (
	CircleRadius    = 84 * 3
	ForegroundSize  = 84 * 6
	ForegroundLeft  = CenterX - ForegroundSize/2
	ForegroundTop   = CenterY - ForegroundSize/2
	CrosshairTop    = FrameHeight/2 - 63
	CrosshairHeight = 42 * 3
	CrosshairWidth  = 38
)

// Tick slots of the crossed lines row reserved for the date and time
// windows.
var (
	DateTickSlots = [3]int{2, 3, 4}
	TimeTickSlots = [3]int{9, 10, 11}
)

// CrossedLineTicks is the number of ticks in the crossed lines row.
const CrossedLineTicks = 14

var (
	squareWaveColors = [2]canvas.RGBA{MustColor("#bfbfbf"), MustColor("#000")}
	colorBar75       = [6]canvas.RGBA{
		MustColor("#bfbf00"),
		MustColor("#00bfbf"),
		MustColor("#00bf00"),
		MustColor("#bf00bf"),
		MustColor("#bf0000"),
		MustColor("#0000bf"),
	}
	colorStepBackground = MustColor("#bfbf00")
	colorStepBar        = canvas.RGB8(185, 25, 18)
)

// definitionDivisors are the frequency divisors of the 12px gradient base
// used by the five inner definition cells.
var definitionDivisors = [5]float64{0.8, 1.8, 2.8, 3.8, 4.8}

// Foreground draws the circle-clipped center pattern.
type Foreground struct {
	dc          *canvas.Context
	edge        EdgeColor
	definitions [5]*canvas.ImagePattern
}

// NewForeground prepares the definition wedge patterns for drawing on dc.
func NewForeground(dc *canvas.Context, edge EdgeColor) *Foreground {
	f := &Foreground{dc: dc, edge: edge}
	for i, d := range definitionDivisors {
		f.definitions[i] = MakeGradientFill(12 / d)
	}
	return f
}

type row struct {
	name   string
	render func(*Foreground, bool, bool) float64
}

var rows = []row{
	{"top", func(f *Foreground, _, _ bool) float64 { return f.renderTopRow() }},
	{"header", func(f *Foreground, _, _ bool) float64 { return f.renderHeaderRow() }},
	{"reflection", func(f *Foreground, _, _ bool) float64 { return f.renderReflectionCheckRow(false) }},
	{"square-wave", func(f *Foreground, _, _ bool) float64 { return f.renderSquareWaveRow() }},
	{"color-bar", func(f *Foreground, _, _ bool) float64 { return f.renderColorBarRow() }},
	{"crossed-lines", func(f *Foreground, date, tod bool) float64 { return f.renderCrossedLines(date, tod) }},
	{"definition", func(f *Foreground, _, _ bool) float64 { return f.renderDefinitionRow() }},
	{"grayscale", func(f *Foreground, _, _ bool) float64 { return f.renderGrayscaleRow() }},
	{"reflection-inverse", func(f *Foreground, _, _ bool) float64 { return f.renderReflectionCheckRow(true) }},
	{"color-step", func(f *Foreground, _, _ bool) float64 { return f.renderColorStepRow() }},
}

// RowHeights returns the advance of every stacked row, top to bottom.
func RowHeights() []float64 {
	return []float64{21, 42, 42, 42, 84, 42, 84, 42, 42, 65}
}

// RowTop returns the y of the named row's top edge, or -1 for an unknown
// name.
func RowTop(name string) float64 {
	y := float64(ForegroundTop)
	for i, r := range rows {
		if r.name == name {
			return y
		}
		y += RowHeights()[i]
	}
	return -1
}

// Render draws the foreground. The date and time flags skip the crossed
// line ticks behind the corresponding overlay windows.
func (f *Foreground) Render(leaveSpaceForDate, leaveSpaceForTime bool) {
	dc := f.dc
	dc.Push()
	defer dc.Pop()
	dc.ClipCircle(Center.X, Center.Y, CircleRadius)

	dc.Push()
	dc.SetFillColor(canvas.White)
	dc.FillRect(ForegroundLeft, ForegroundTop, ForegroundSize, ForegroundSize)
	dc.Pop()

	y := float64(ForegroundTop)
	for _, r := range rows {
		y += f.translate(Center.X, y, func() float64 {
			return r.render(f, leaveSpaceForDate, leaveSpaceForTime)
		})
	}

	f.translate(Center.X, CrosshairTop, f.renderCrosshair)
}

func (f *Foreground) translate(x, y float64, fn func() float64) float64 {
	f.dc.Push()
	defer f.dc.Pop()
	f.dc.Translate(x, y)
	return fn()
}

func (f *Foreground) renderTopRow() float64 {
	const h = 21
	f.dc.SetFillColor(canvas.White)
	f.dc.FillRect(-ForegroundSize/2, 0, ForegroundSize, h)
	return h
}

func (f *Foreground) renderHeaderRow() float64 {
	const (
		h = 42
		w = 168
	)
	f.dc.SetFillColor(canvas.White)
	f.dc.FillRect(-ForegroundSize/2, 0, ForegroundSize, h)
	f.dc.SetFillColor(canvas.Black)
	f.dc.FillRect(-w/2, 0, w, h)
	return h
}

// ReflectionStops are the segment boundaries of the reflection check row,
// relative to the center.
var ReflectionStops = [6]float64{
	-ForegroundSize / 2,
	-ForegroundSize/2 + 126,
	-ForegroundSize/2 + 145,
	-ForegroundSize/2 + 149,
	ForegroundSize/2 - 126,
	ForegroundSize / 2,
}

func (f *Foreground) renderReflectionCheckRow(inverse bool) float64 {
	const h = 42
	dc := f.dc
	for i := 1; i < len(ReflectionStops); i++ {
		light := i%2 == 0
		if inverse {
			light = !light
		}
		if light {
			dc.SetFillColor(canvas.White)
		} else {
			dc.SetFillColor(canvas.Black)
		}
		prev, stop := ReflectionStops[i-1], ReflectionStops[i]
		dc.FillRect(stop, 0, prev-stop, h+1)
	}

	if inverse {
		dc.SetFillColor(canvas.Black.WithAlpha(0.333))
	} else {
		dc.SetFillColor(canvas.White.WithAlpha(0.333))
	}
	dc.FillRect(ReflectionStops[2], 0, 1, h+1)
	dc.FillRect(ReflectionStops[3]-1, 0, 1, h+1)
	return h
}

func (f *Foreground) renderSquareWaveRow() float64 {
	const (
		itemW = 30
		h     = 42
	)
	dc := f.dc
	dc.ClipRect(-ForegroundSize/2, 0, ForegroundSize, h+1)
	x := -9.0 * itemW
	for i := 0; i < 18; i++ {
		dc.SetFillColor(squareWaveColors[i%2])
		dc.FillRect(x, 0, itemW+1, h+1)
		x += itemW
	}
	return h
}

func (f *Foreground) renderColorBarRow() float64 {
	const (
		h     = 84
		itemW = 84
	)
	for i, c := range colorBar75 {
		f.dc.SetFillColor(c)
		f.dc.FillRect(float64(i-3)*itemW, 0, itemW+1, h+1)
	}
	return h
}

// TickX returns the left edge of crossed line tick i relative to the center.
func TickX(i int) float64 {
	return -42*6.5 - 2 + float64(i)*42
}

// TickReserved reports whether tick i is skipped for the given overlay
// windows.
func TickReserved(i int, leaveSpaceForDate, leaveSpaceForTime bool) bool {
	if leaveSpaceForDate && i > 1 && i < 5 {
		return true
	}
	return leaveSpaceForTime && i > 8 && i < 12
}

func (f *Foreground) renderCrossedLines(leaveSpaceForDate, leaveSpaceForTime bool) float64 {
	const h = 42
	dc := f.dc

	dc.SetFillColor(canvas.Black)
	dc.FillRect(-ForegroundSize/2, 0, ForegroundSize, h+1)

	dc.SetFillColor(canvas.White)
	dc.FillRect(-ForegroundSize/2, h/2-1, ForegroundSize, 2)

	for i := 0; i < CrossedLineTicks; i++ {
		if TickReserved(i, leaveSpaceForDate, leaveSpaceForTime) {
			continue
		}
		x := TickX(i)
		dc.FillRect(x, 0, 4, h)

		dc.Push()
		dc.SetFillColor(f.edge.Darken)
		dc.FillRect(x, 0, 1, h)
		dc.FillRect(x+3, 0, 1, h)
		dc.Pop()
	}
	return h
}

func (f *Foreground) renderDefinitionRow() float64 {
	const (
		h     = 84
		itemW = 84
	)
	dc := f.dc
	dc.ClipRect(-ForegroundSize/2, 0, ForegroundSize, h)

	x := -3.5 * itemW
	for i := 0; i < 7; i++ {
		if i == 0 || i == 6 {
			dc.SetFillColor(canvas.Black)
		} else {
			dc.SetFillPattern(f.definitions[i-1])
		}
		dc.Translate(x, 0)
		dc.FillRect(0, 0, itemW, h+1)
		dc.Translate(-x, 0)
		x += itemW
	}
	return h
}

func (f *Foreground) renderGrayscaleRow() float64 {
	const (
		h     = 42
		itemW = 84
	)
	x := -3.0 * itemW
	for i := 0; i < 6; i++ {
		f.dc.SetFillColor(canvas.Gray(uint8(51 * i)))
		f.dc.FillRect(x, 0, itemW+1, h+1)
		x += itemW
	}
	return h
}

func (f *Foreground) renderColorStepRow() float64 {
	const (
		h     = 65
		itemW = 40
	)
	dc := f.dc
	dc.SetFillColor(colorStepBackground)
	dc.FillRect(-ForegroundSize/2, 0, ForegroundSize, h)

	dc.SetFillColor(colorStepBar)
	dc.FillRect(-itemW/2, 0, itemW, h)

	dc.SetFillColor(canvas.White.WithAlpha(0.333))
	dc.FillRect(-itemW/2, 0, 1, h)
	dc.FillRect(itemW/2-1, 0, 1, h)
	return h
}

func (f *Foreground) renderCrosshair() float64 {
	const (
		h     = CrosshairHeight
		itemW = CrosshairWidth
	)
	dc := f.dc

	dc.SetFillColor(canvas.Black)
	dc.FillRect(-itemW/2, 0, itemW, h)

	dc.Push()
	dc.SetFillColor(f.edge.Darken)
	dc.FillRect(-itemW/2-1, 0, 1, 42)
	dc.FillRect(itemW/2, 0, 1, 42)
	dc.FillRect(-itemW/2-1, 42*2, 1, 42)
	dc.FillRect(itemW/2, 42*2, 1, 42)
	dc.Pop()

	dc.SetFillColor(canvas.White)
	dc.FillRect(-itemW/2, h/2-1, itemW, 2)
	dc.FillRect(-2, 0, 4, h)

	dc.Push()
	dc.SetFillColor(f.edge.Darken)
	dc.FillRect(-2, 0, 1, h)
	dc.FillRect(1, 0, 1, h)
	dc.Pop()
	return h
}
