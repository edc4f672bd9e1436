package provebilde

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/gogpu/provebilde/canvas"
	"github.com/gogpu/provebilde/fx"
	"github.com/gogpu/provebilde/layout"
)

// State is the frame timer state of a TestCard.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Overlay geometry in logical pixels.
const (
	DateBoxX = 155
	TimeBoxX = 449

	timeBoxWidth  = 164
	timeBoxHeight = 42

	HeaderY = 57
	FooterY = 436

	labelWidth  = 168
	labelHeight = 42

	textPadding        = 6
	textVerticalAdjust = 2

	osdSpacing = 10
)

var (
	osdFill   = layout.MustColor("#0e0")
	osdStroke = layout.MustColor("#0b0")
)

// TestCard composes the background, the foreground circle, the clock and
// label overlays, the OSD and the shader pipeline into one animated
// picture.
//
// A TestCard is not safe for concurrent use. Run it on the goroutine that
// owns its scheduler.
type TestCard struct {
	dc   *canvas.Context
	opts *Options
	co   cardOptions

	background *layout.Background
	foreground *layout.Foreground
	renderer   *fx.Renderer

	state     State
	timer     Timer
	timeDelta time.Duration
	frames    int
}

// New creates a test card drawing on dc. dc is expected to map the
// 768x576 logical frame onto its surface. A nil opts means DefaultOptions.
func New(dc *canvas.Context, opts *Options, options ...Option) *TestCard {
	if opts == nil {
		opts = DefaultOptions()
	}
	co := defaultCardOptions()
	for _, opt := range options {
		opt(&co)
	}
	edge := layout.NewEdgeColor(opts.BlurredEdgesDisabled)
	return &TestCard{
		dc:         dc,
		opts:       opts,
		co:         co,
		background: layout.NewBackground(dc, edge),
		foreground: layout.NewForeground(dc, edge),
	}
}

// Options returns the live options. Changes show on the next frame.
func (tc *TestCard) Options() *Options {
	return tc.opts
}

// State reports whether the frame timer is running.
func (tc *TestCard) State() State {
	return tc.state
}

// Frames returns the number of frames rendered so far.
func (tc *TestCard) Frames() int {
	return tc.frames
}

// Filtered reports whether frames go through the shader pipeline.
func (tc *TestCard) Filtered() bool {
	return tc.renderer != nil
}

// TimeDelta returns the offset subtracted from the wall clock to get the
// displayed time.
func (tc *TestCard) TimeDelta() time.Duration {
	return tc.timeDelta
}

// SetTimeDelta sets the displayed clock offset.
func (tc *TestCard) SetTimeDelta(d time.Duration) {
	tc.timeDelta = d
}

// Displayed returns the time the card currently shows.
func (tc *TestCard) Displayed() time.Time {
	return tc.co.now().Add(-tc.timeDelta)
}

// RenderInitial applies the smoothing option, draws one frame and sets up
// the shader pipeline. Shader compile and link errors are returned and
// leave the card without a pipeline.
func (tc *TestCard) RenderInitial() error {
	if tc.opts.ImageSmoothingDisabled {
		tc.dc.SetImageSmoothing(false)
	}
	tc.renderScene()

	if tc.renderer != nil {
		tc.renderer.Close()
		tc.renderer = nil
	}
	filters := tc.opts.FX.filters(tc.dc.Width(), tc.dc.Height())
	if len(filters) == 0 {
		return nil
	}
	if tc.co.device == nil {
		Logger().Warn("provebilde: no graphics device, rendering without filters", "filters", len(filters))
		return nil
	}

	r, err := fx.NewRenderer(tc.co.device, filters...)
	if err != nil {
		return fmt.Errorf("provebilde: set up filters: %w", err)
	}
	if err := r.Prepare(); err != nil {
		r.Close()
		return fmt.Errorf("provebilde: set up filters: %w", err)
	}
	tc.renderer = r
	Logger().Debug("provebilde: filter pipeline ready", "filters", len(filters))
	return nil
}

// Start renders the initial frame and, when the card shows a clock or
// runs filters, redraws it on every frame interval. Starting a running
// card restarts it.
func (tc *TestCard) Start() error {
	tc.Stop()
	if err := tc.RenderInitial(); err != nil {
		return err
	}

	tc.timeDelta = 0
	if !tc.opts.Date.IsZero() {
		tc.timeDelta = tc.co.now().Sub(tc.opts.Date)
	}

	if !tc.opts.ShowDate && !tc.opts.ShowTime && tc.renderer == nil {
		return nil
	}
	tc.tick()
	if tc.co.sched == nil {
		Logger().Debug("provebilde: no scheduler, rendered a single frame")
		return nil
	}
	tc.timer = tc.co.sched.Every(tc.co.frameInterval, tc.tick)
	tc.state = Running
	Logger().Info("provebilde: started", "interval", tc.co.frameInterval, "filtered", tc.Filtered())
	return nil
}

// Stop cancels the frame timer. Stopping a stopped card does nothing.
func (tc *TestCard) Stop() {
	if tc.timer != nil {
		tc.timer.Stop()
		tc.timer = nil
	}
	if tc.state == Running {
		tc.state = Stopped
		Logger().Info("provebilde: stopped", "frames", tc.frames)
	}
}

// Close stops the card and releases the shader pipeline.
func (tc *TestCard) Close() error {
	tc.Stop()
	if tc.renderer == nil {
		return nil
	}
	err := tc.renderer.Close()
	tc.renderer = nil
	return err
}

func (tc *TestCard) tick() {
	if err := tc.RenderFrame(); err != nil {
		Logger().Warn("provebilde: frame failed", "err", err)
	}
}

// RenderFrame redraws the picture at the displayed time and runs the
// shader pipeline over it.
func (tc *TestCard) RenderFrame() error {
	tc.renderScene()
	tc.frames++
	if tc.renderer == nil {
		return nil
	}
	return tc.renderer.RenderImage(tc.dc.Image())
}

// Output returns the last rendered picture: the filtered image when the
// pipeline ran, the 2D surface otherwise.
func (tc *TestCard) Output() image.Image {
	if tc.renderer != nil {
		if out := tc.renderer.Output(); out != nil {
			return out
		}
	}
	return tc.dc.Image()
}

func (tc *TestCard) renderScene() {
	o := tc.opts
	dt := tc.Displayed()

	tc.background.Render()
	tc.foreground.Render(o.ShowDate, o.ShowTime)

	if o.ShowDate {
		tc.renderTime(dt, FieldDate, DateBoxX)
	}
	if o.ShowTime {
		tc.renderTime(dt, FieldTime, TimeBoxX)
	}
	tc.renderLabel(o.HeaderText, layout.CenterX, HeaderY)
	tc.renderLabel(o.FooterText, layout.CenterX, FooterY)
	if o.OSD.Param != OSDNone {
		tc.renderOSD(o.OSD)
	}
}

func (tc *TestCard) setDefaultFont() {
	dc := tc.dc
	dc.SetFillColor(canvas.White)
	dc.SetFont(canvas.Font{Size: 32})
	dc.SetTextAlign(canvas.AlignCenter)
	dc.SetTextBaseline(canvas.BaselineMiddle)
}

// fillTextMonoSpaced draws every character of text centered in its own
// cell of maxWidth/len(text) so the digits do not jitter as they change.
func (tc *TestCard) fillTextMonoSpaced(text string, x, y, maxWidth float64) {
	dc := tc.dc
	dc.Push()
	defer dc.Pop()

	chars := strings.Split(text, "")
	charWidth := maxWidth / float64(len(chars))
	currX := x - float64(len(chars))*charWidth/2

	dc.Translate(maxWidth/2-3, 0)
	for _, ch := range chars {
		dc.Translate(charWidth, 0)
		dc.FillText(ch, currX, y+textVerticalAdjust, charWidth)
	}
}

func (tc *TestCard) renderTime(dt time.Time, f Field, cX float64) {
	dc := tc.dc
	dc.Push()
	defer dc.Pop()

	cY := float64(layout.CenterY)
	dc.SetFillColor(canvas.Black)
	dc.FillRect(cX, cY-timeBoxHeight/2, timeBoxWidth, timeBoxHeight)
	tc.setDefaultFont()
	tc.fillTextMonoSpaced(FormatTime(dt, f), cX, cY, timeBoxWidth-textPadding*2)
}

func (tc *TestCard) renderLabel(text string, cX, yOffset float64) {
	dc := tc.dc
	dc.Push()
	defer dc.Pop()

	dc.Translate(cX, yOffset+labelHeight/2+textVerticalAdjust)
	dc.SetFillColor(canvas.Black)
	dc.FillRect(-labelWidth/2+1, -labelHeight/2-1, labelWidth-2, labelHeight-2)
	tc.setDefaultFont()
	dc.FillText(labelText(text), 0, 0, labelWidth-textPadding*2)
}

func (tc *TestCard) renderOSD(osd OSD) {
	dc := tc.dc
	dc.Push()
	defer dc.Pop()

	dc.SetFillColor(osdFill)
	dc.SetStrokeColor(osdStroke)
	dc.SetFont(canvas.Font{Size: 24, Bold: true})
	dc.SetTextAlign(canvas.AlignCenter)
	dc.SetTextBaseline(canvas.BaselineMiddle)

	dc.Translate(layout.FrameWidth/2, layout.FrameHeight/1.25)
	for i, lit := range OSDCells(osd.Level) {
		glyph := "-"
		if lit {
			glyph = "█"
		}
		dc.FillText(glyph, float64((i-OSDSteps)*osdSpacing), 0, 1000)
	}
	dc.Translate(0, 40)
	label := osd.Param.Label()
	dc.FillText(label, 0, 0, 1000)
	dc.StrokeText(label, 0, 0, 1000)
}
