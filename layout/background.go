package layout

import (
	"math"

	"github.com/gogpu/provebilde/canvas"
)

// Grid geometry.
const (
	GridSquareSize = 42
	GridOffsetX    = -15
	GridOffsetY    = -27
)

// GridCols and GridRows are the number of squares needed to cover the frame
// from the grid offset.
var (
	GridCols = int(math.Ceil(float64(FrameWidth-GridOffsetX) / GridSquareSize))
	GridRows = int(math.Ceil(float64(FrameHeight-GridOffsetY) / GridSquareSize))
)

// Cell is the fill class of a background grid square.
type Cell int

const (
	CellWhite Cell = iota
	CellBlack
	CellGray
	CellLeftStripes
	CellLeftTopHalf
	CellLeftBottomHalf
	CellRightStripes
	CellRightTopHalf
	CellRightBottomHalf
)

var cellNames = [...]string{
	CellWhite:           "white",
	CellBlack:           "black",
	CellGray:            "gray",
	CellLeftStripes:     "left-stripes",
	CellLeftTopHalf:     "left-top-half",
	CellLeftBottomHalf:  "left-bottom-half",
	CellRightStripes:    "right-stripes",
	CellRightTopHalf:    "right-top-half",
	CellRightBottomHalf: "right-bottom-half",
}

func (c Cell) String() string {
	if c < 0 || int(c) >= len(cellNames) {
		return "unknown"
	}
	return cellNames[c]
}

// IsBorder reports whether the cell belongs to the outer checkerboard ring.
func (c Cell) IsBorder() bool {
	return c == CellWhite || c == CellBlack
}

// ClassifyCell returns the fill class of the square at (col, row), counted in
// squares from the grid offset.
func ClassifyCell(col, row int) Cell {
	return classifyCell(col, row, GridCols, GridRows)
}

func classifyCell(col, row, cols, rows int) Cell {
	switch {
	case col == 0 || col >= cols-1 || row == 0 || row >= rows-1:
		if (col+row)%2 == 0 {
			return CellWhite
		}
		return CellBlack
	case col == 1:
		switch row {
		case 1:
			return CellLeftTopHalf
		case rows - 2:
			return CellLeftBottomHalf
		}
		return CellLeftStripes
	case col == cols-2:
		switch row {
		case 1:
			return CellRightTopHalf
		case rows - 2:
			return CellRightBottomHalf
		}
		return CellRightStripes
	}
	return CellGray
}

// Side stripe palettes.
var (
	LeftStripeColors  = [2]canvas.RGBA{MustColor("#b85a7a"), MustColor("#3c9a7a")}
	RightStripeColors = [2]canvas.RGBA{MustColor("#7a64e9"), MustColor("#7a900b")}
)

// colorBar is one quadrant of the color bar assembly.
type colorBar struct {
	c1, c2 canvas.RGBA
}

var (
	colorBarTopLeft     = colorBar{MustColor("#3c9a7a"), MustColor("#577ad6")}
	colorBarBottomLeft  = colorBar{MustColor("#b85a7a"), MustColor("#9d7a1e")}
	colorBarTopRight    = colorBar{MustColor("#577ad6"), MustColor("#7a900b")}
	colorBarBottomRight = colorBar{MustColor("#9d7a1e"), MustColor("#7a64e9")}
)

// Background draws the grid of squares and the color bars around the
// central circle.
type Background struct {
	dc    *canvas.Context
	edge  EdgeColor
	fills map[Cell]canvas.Pattern
}

// NewBackground prepares the grid patterns for drawing on dc.
func NewBackground(dc *canvas.Context, edge EdgeColor) *Background {
	left := MakeStripePattern(LeftStripeColors[0], LeftStripeColors[1])
	right := MakeStripePattern(RightStripeColors[0], RightStripeColors[1])
	return &Background{
		dc:   dc,
		edge: edge,
		fills: map[Cell]canvas.Pattern{
			CellWhite:           canvas.NewSolidPattern(canvas.White),
			CellBlack:           canvas.NewSolidPattern(canvas.Black),
			CellGray:            canvas.NewSolidPattern(DefaultGray),
			CellLeftStripes:     left,
			CellLeftTopHalf:     MakeHalfStripePattern(left, GridSquareSize, Top),
			CellLeftBottomHalf:  MakeHalfStripePattern(left, GridSquareSize, Bottom),
			CellRightStripes:    right,
			CellRightTopHalf:    MakeHalfStripePattern(right, GridSquareSize, Top),
			CellRightBottomHalf: MakeHalfStripePattern(right, GridSquareSize, Bottom),
		},
	}
}

// Fill returns the paint used for a cell class.
func (b *Background) Fill(c Cell) canvas.Pattern {
	return b.fills[c]
}

// Render draws the white frame, the grid and the color bars.
func (b *Background) Render() {
	b.drawGrid()
	b.drawColorBars()
}

func (b *Background) drawGrid() {
	dc := b.dc
	dc.Push()
	defer dc.Pop()

	dc.SetFillColor(canvas.White)
	fillRect(dc, Frame())

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			dc.Push()
			dc.Translate(GridOffsetX+float64(col*GridSquareSize), GridOffsetY+float64(row*GridSquareSize))
			b.drawGridSquare(b.fills[ClassifyCell(col, row)])
			dc.Pop()
		}
	}
}

func (b *Background) drawGridSquare(fill canvas.Pattern) {
	const size = GridSquareSize
	dc := b.dc
	dc.Push()
	defer dc.Pop()

	dc.SetFillColor(canvas.White)
	dc.FillRect(0, 0, size, size)

	dc.SetFillPattern(fill)
	dc.FillRect(1, 1, size-2, size-2)

	dc.SetFillColor(b.edge.Lighten)
	dc.FillRect(1, 1, 1, size-2)
	dc.FillRect(size-2, 1, 1, size)
}

// ColorBarSize is the extent of one L-shaped color bar.
var ColorBarSize = Size{W: 2*GridSquareSize - colorBarBorder, H: 3.5*GridSquareSize + colorBarBorder + 2*GridSquareSize - colorBarBorder}

const colorBarBorder = 2

// drawColorBar draws one L-shaped two color bar at the origin and returns
// its size.
func (b *Background) drawColorBar(bar colorBar) Size {
	const (
		square = GridSquareSize
		border = colorBarBorder
		w1     = square - border/2
		w      = square*2 - border
		h1     = square*3.5 + border
		h2     = square*2 - border
	)
	dc := b.dc
	dc.Push()
	defer dc.Pop()

	dc.SetFillColor(bar.c1)
	dc.FillRect(0, 0, w1+1, h2)
	dc.FillRect(0, w-1, square-border, h1+1)

	dc.SetFillColor(bar.c2)
	dc.FillRect(w1, 0, square-border/2, h2)

	dc.SetFillColor(b.edge.Lighten)
	dc.FillRect(0, 0, border, h1+h2)
	dc.FillRect(w-border, 0, 4, h1+h2)
	dc.FillRect(w1-border, h2, 4, h1)

	return Size{W: w, H: h1 + h2}
}

func (b *Background) drawColorBars() {
	const (
		square = GridSquareSize
		border = colorBarBorder
	)
	dc := b.dc
	x := float64(GridOffsetX + square*2 + border/2)
	y := float64(GridOffsetY + square*2 + border/2)

	dc.Push()
	dc.Translate(x, y)
	size := b.drawColorBar(colorBarTopLeft)
	dc.Translate(0, size.H*2-border)
	dc.Scale(1, -1)
	b.drawColorBar(colorBarBottomLeft)
	dc.Pop()

	x += square*14 - border

	dc.Push()
	dc.Translate(x+square, y)
	dc.Scale(-1, 1)
	b.drawColorBar(colorBarTopRight)
	dc.Translate(0, size.H*2-border)
	dc.Scale(1, -1)
	b.drawColorBar(colorBarBottomRight)
	dc.Pop()
}
