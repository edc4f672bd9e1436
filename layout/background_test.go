package layout

import (
	"math"
	"testing"

	"github.com/gogpu/provebilde/canvas"
)

func near(a, b canvas.RGBA) bool {
	const eps = 2.0 / 255
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}

func TestGridDimensions(t *testing.T) {
	if GridCols != 19 {
		t.Errorf("GridCols = %d, want 19", GridCols)
	}
	if GridRows != 15 {
		t.Errorf("GridRows = %d, want 15", GridRows)
	}
}

func TestBorderParity(t *testing.T) {
	sizes := [][2]int{{19, 15}, {4, 4}, {7, 12}, {30, 3}}
	for _, sz := range sizes {
		cols, rows := sz[0], sz[1]
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				border := col == 0 || col >= cols-1 || row == 0 || row >= rows-1
				got := classifyCell(col, row, cols, rows)
				if got.IsBorder() != border {
					t.Errorf("%dx%d cell (%d,%d) = %v, border = %v", cols, rows, col, row, got, border)
					continue
				}
				if !border {
					continue
				}
				want := CellBlack
				if (col+row)%2 == 0 {
					want = CellWhite
				}
				if got != want {
					t.Errorf("%dx%d cell (%d,%d) = %v, want %v", cols, rows, col, row, got, want)
				}
			}
		}
	}
}

func TestCornerCellsAreHalfStripes(t *testing.T) {
	tests := []struct {
		col, row int
		want     Cell
	}{
		{1, 1, CellLeftTopHalf},
		{1, GridRows - 2, CellLeftBottomHalf},
		{GridCols - 2, 1, CellRightTopHalf},
		{GridCols - 2, GridRows - 2, CellRightBottomHalf},
		{1, 5, CellLeftStripes},
		{GridCols - 2, 7, CellRightStripes},
		{9, 7, CellGray},
	}
	for _, tt := range tests {
		first := ClassifyCell(tt.col, tt.row)
		second := ClassifyCell(tt.col, tt.row)
		if first != tt.want || second != first {
			t.Errorf("ClassifyCell(%d,%d) = %v then %v, want %v", tt.col, tt.row, first, second, tt.want)
		}
	}
}

func TestStripePatternTile(t *testing.T) {
	a, b := MustColor("#b85a7a"), MustColor("#3c9a7a")
	tile := MakeStripePattern(a, b).Tile()
	if tile.Width() != 1 || tile.Height() != 4 {
		t.Fatalf("tile size = %dx%d, want 1x4", tile.Width(), tile.Height())
	}
	want := []canvas.RGBA{a, a, b, b}
	for y, w := range want {
		if got := tile.GetPixel(0, y); !near(got, w) {
			t.Errorf("row %d = %v, want %v", y, got, w)
		}
	}
}

func TestHalfStripePattern(t *testing.T) {
	a, b := canvas.Black, canvas.White
	stripes := MakeStripePattern(a, b)
	tests := []struct {
		suppress   Half
		grayY      int
		stripedY   int
		stripedVal canvas.RGBA
	}{
		{Top, 5, 30, b},    // 30 % 4 == 2
		{Bottom, 30, 4, a}, // 4 % 4 == 0
	}
	for _, tt := range tests {
		tile := MakeHalfStripePattern(stripes, GridSquareSize, tt.suppress).Tile()
		if got := tile.GetPixel(10, tt.grayY); !near(got, DefaultGray) {
			t.Errorf("%v: suppressed half = %v, want gray", tt.suppress, got)
		}
		if got := tile.GetPixel(10, tt.stripedY); !near(got, tt.stripedVal) {
			t.Errorf("%v: striped half = %v, want %v", tt.suppress, got, tt.stripedVal)
		}
	}
}

func TestGradientFill(t *testing.T) {
	tile := MakeGradientFill(15).Tile()
	if tile.Width() != 15 || tile.Height() != 1 {
		t.Fatalf("tile size = %dx%d, want 15x1", tile.Width(), tile.Height())
	}
	mid := tile.GetPixel(7, 0)
	edge := tile.GetPixel(0, 0)
	if mid.R < 0.85 {
		t.Errorf("middle = %v, want near white", mid)
	}
	if edge.R > 0.15 {
		t.Errorf("edge = %v, want near black", edge)
	}

	if w := MakeGradientFill(12 / 1.8).Tile().Width(); w != 6 {
		t.Errorf("fractional width tile = %d, want 6", w)
	}
}

func TestEdgeColor(t *testing.T) {
	on := NewEdgeColor(false)
	if on.Lighten.A != 0.666 || on.Darken.A != 0.333 {
		t.Errorf("enabled edge alphas = %v/%v, want 0.666/0.333", on.Lighten.A, on.Darken.A)
	}
	off := NewEdgeColor(true)
	if off.Lighten != canvas.Transparent || off.Darken != canvas.Transparent {
		t.Errorf("disabled edges = %+v, want transparent pair", off)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0e0")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if !near(c, canvas.RGB8(0, 0xee, 0)) {
		t.Errorf("ParseColor(#0e0) = %v", c)
	}
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("ParseColor(not-a-color) = nil error, want error")
	}
}

func TestColorBarSize(t *testing.T) {
	dc := canvas.NewContext(FrameWidth, FrameHeight)
	b := NewBackground(dc, NewEdgeColor(false))
	if got := b.drawColorBar(colorBarTopLeft); got != ColorBarSize {
		t.Errorf("drawColorBar size = %v, want %v", got, ColorBarSize)
	}
	if ColorBarSize != (Size{W: 82, H: 231}) {
		t.Errorf("ColorBarSize = %v, want {82 231}", ColorBarSize)
	}
}

func TestBackgroundRender(t *testing.T) {
	dc := canvas.NewContext(FrameWidth, FrameHeight)
	NewBackground(dc, NewEdgeColor(true)).Render()
	pm := dc.Pixmap()

	tests := []struct {
		name string
		x, y int
		want canvas.RGBA
	}{
		{"border cell (0,0)", 5, 5, canvas.White},
		{"border cell (1,0)", 40, 5, canvas.Black},
		{"grid line", 27, 5, canvas.White},
		{"interior gray", 384, 288 - 252 - 10, DefaultGray},
		{"top left bar", 90, 78, MustColor("#3c9a7a")},
		{"top left bar color 2", 140, 78, MustColor("#577ad6")},
		{"bottom left bar", 90, 460 + 58 - 78, MustColor("#b85a7a")},
		{"top right bar", 698 - 20, 78, MustColor("#577ad6")},
	}
	for _, tt := range tests {
		if got := pm.GetPixel(tt.x, tt.y); !near(got, tt.want) {
			t.Errorf("%s at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBackgroundLeavesStateBalanced(t *testing.T) {
	dc := canvas.NewContext(FrameWidth, FrameHeight)
	NewBackground(dc, NewEdgeColor(false)).Render()
	if !dc.Matrix().IsIdentity() {
		t.Errorf("matrix after Render = %v, want identity", dc.Matrix())
	}
}
