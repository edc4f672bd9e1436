package provebilde

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/provebilde/canvas"
	"github.com/gogpu/provebilde/fx"
	"github.com/gogpu/provebilde/fx/soft"
	"github.com/gogpu/provebilde/internal/loop"
)

var wallClock = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type harness struct {
	clock *loop.ManualClock
	loop  *loop.Loop
	dc    *canvas.Context
	card  *TestCard
}

func newHarness(t *testing.T, opts *Options, extra ...Option) *harness {
	t.Helper()
	h := &harness{clock: loop.NewManualClock(wallClock)}
	h.loop = loop.New(h.clock)
	h.dc = canvas.NewContext(768, 576)
	options := append([]Option{WithScheduler(h.loop), WithClock(h.clock.Now)}, extra...)
	h.card = New(h.dc, opts, options...)
	t.Cleanup(func() { h.card.Close() })
	return h
}

func (h *harness) advance(d time.Duration) int {
	h.clock.Advance(d)
	return h.loop.RunDue()
}

func sharesSurface(img image.Image, dc *canvas.Context) bool {
	rgba, ok := img.(*image.RGBA)
	return ok && len(rgba.Pix) > 0 && &rgba.Pix[0] == &dc.Pixmap().Data()[0]
}

func isBlack(c canvas.RGBA) bool {
	return c.R < 0.02 && c.G < 0.02 && c.B < 0.02 && c.A > 0.98
}

func TestFixedDateEndToEnd(t *testing.T) {
	h := newHarness(t, &Options{
		ShowDate: true,
		ShowTime: true,
		Date:     time.Date(1985, 5, 12, 1, 23, 35, 0, time.UTC),
	})
	if err := h.card.Start(); err != nil {
		t.Fatal(err)
	}
	if h.card.State() != Running {
		t.Fatalf("state = %v, want running", h.card.State())
	}

	shown := h.card.Displayed()
	if got := FormatTime(shown, FieldDate); got != "12-05-85" {
		t.Errorf("date = %q, want 12-05-85", got)
	}
	if got := FormatTime(shown, FieldTime); got != "01:23:35" {
		t.Errorf("time = %q, want 01:23:35", got)
	}

	// no modifier right arrow
	h.card.SetTimeDelta(h.card.TimeDelta() - 60000*time.Millisecond)
	if got := FormatTime(h.card.Displayed(), FieldTime); got != "01:24:35" {
		t.Errorf("time after shift = %q, want 01:24:35", got)
	}
	if d := h.card.Displayed().Sub(shown); d != time.Minute {
		t.Errorf("shift moved the clock by %v, want 1m", d)
	}

	h.advance(2 * time.Second)
	if got := FormatTime(h.card.Displayed(), FieldTime); got != "01:24:37" {
		t.Errorf("time after 2s = %q, want 01:24:37", got)
	}
}

func TestFrameTimer(t *testing.T) {
	h := newHarness(t, &Options{ShowTime: true})
	if err := h.card.Start(); err != nil {
		t.Fatal(err)
	}
	if n := h.card.Frames(); n != 1 {
		t.Fatalf("frames after Start = %d, want 1", n)
	}
	h.advance(50 * time.Millisecond)
	if n := h.card.Frames(); n != 1 {
		t.Errorf("frames after 50ms = %d, want 1", n)
	}
	h.advance(50 * time.Millisecond)
	if n := h.card.Frames(); n != 2 {
		t.Errorf("frames after 100ms = %d, want 2", n)
	}
	// a stalled loop catches up with one frame
	h.advance(time.Second)
	if n := h.card.Frames(); n != 3 {
		t.Errorf("frames after stall = %d, want 3", n)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	h := newHarness(t, &Options{ShowDate: true})
	if err := h.card.Start(); err != nil {
		t.Fatal(err)
	}
	h.card.Stop()
	h.card.Stop()
	if h.card.State() != Stopped {
		t.Errorf("state = %v, want stopped", h.card.State())
	}
	if n := h.loop.Pending(); n != 0 {
		t.Errorf("%d timers pending after Stop", n)
	}
	frames := h.card.Frames()
	h.advance(time.Second)
	if h.card.Frames() != frames {
		t.Error("frame rendered after Stop")
	}
}

func TestStartWithNothingToAnimate(t *testing.T) {
	h := newHarness(t, &Options{HeaderText: "test"})
	if err := h.card.Start(); err != nil {
		t.Fatal(err)
	}
	if h.card.State() != Stopped {
		t.Errorf("state = %v, want stopped", h.card.State())
	}
	if h.loop.Pending() != 0 {
		t.Error("timer scheduled for a static card")
	}
	// the initial render still draws the label box
	if got := h.dc.Pixmap().GetPixel(303, 60); !isBlack(got) {
		t.Errorf("header box = %v, want black", got)
	}
}

func TestRestartResetsTimeDelta(t *testing.T) {
	h := newHarness(t, &Options{ShowTime: true})
	if err := h.card.Start(); err != nil {
		t.Fatal(err)
	}
	h.card.SetTimeDelta(time.Hour)
	if err := h.card.Start(); err != nil {
		t.Fatal(err)
	}
	if d := h.card.TimeDelta(); d != 0 {
		t.Errorf("TimeDelta after restart = %v, want 0", d)
	}
	if n := h.loop.Pending(); n != 1 {
		t.Errorf("%d timers pending after restart, want 1", n)
	}
}

func TestOverlayBoxes(t *testing.T) {
	h := newHarness(t, &Options{
		ShowDate:   true,
		ShowTime:   true,
		HeaderText: "jasMIN",
		FooterText: "Retro TV",
	})
	if err := h.card.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	pm := h.dc.Pixmap()
	for _, p := range []image.Point{
		{157, 269}, // date box
		{451, 269}, // time box
		{303, 60},  // header box
		{303, 439}, // footer box
	} {
		if got := pm.GetPixel(p.X, p.Y); !isBlack(got) {
			t.Errorf("pixel %v = %v, want black", p, got)
		}
	}
}

func TestDigitsFollowTheClock(t *testing.T) {
	h := newHarness(t, &Options{ShowTime: true})
	box := image.Rect(TimeBoxX, 267, TimeBoxX+164, 309)

	snapshot := func() []canvas.RGBA {
		if err := h.card.RenderFrame(); err != nil {
			t.Fatal(err)
		}
		var px []canvas.RGBA
		for y := box.Min.Y; y < box.Max.Y; y++ {
			for x := box.Min.X; x < box.Max.X; x++ {
				px = append(px, h.dc.Pixmap().GetPixel(x, y))
			}
		}
		return px
	}
	before := snapshot()
	lit := 0
	for _, c := range before {
		if c.R > 0.5 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no digits drawn in the time box")
	}

	h.clock.Advance(time.Second)
	after := snapshot()
	changed := 0
	for i := range before {
		if before[i] != after[i] {
			changed++
		}
	}
	if changed == 0 {
		t.Error("time box unchanged after one second")
	}
}

func TestOSDOverlay(t *testing.T) {
	green := func(h *harness) int {
		n := 0
		for y := 440; y < 480; y++ {
			for x := 170; x < 600; x++ {
				c := h.dc.Pixmap().GetPixel(x, y)
				if c.G > 0.8 && c.R < 0.25 && c.B < 0.25 {
					n++
				}
			}
		}
		return n
	}

	h := newHarness(t, &Options{})
	if err := h.card.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	if n := green(h); n != 0 {
		t.Fatalf("%d green pixels without OSD", n)
	}

	h.card.Options().OSD = OSD{Param: OSDBrightness, Level: 0.5}
	if err := h.card.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	if green(h) == 0 {
		t.Error("OSD bar not drawn")
	}
}

func smallHarness(t *testing.T, opts *Options, dev fx.Device) *harness {
	t.Helper()
	h := &harness{clock: loop.NewManualClock(wallClock)}
	h.loop = loop.New(h.clock)
	h.dc = canvas.NewContext(192, 144, canvas.WithTransform(canvas.Scale(0.25, 0.25)))
	h.card = New(h.dc, opts, WithScheduler(h.loop), WithClock(h.clock.Now), WithDevice(dev))
	t.Cleanup(func() { h.card.Close() })
	return h
}

func TestFilterPipeline(t *testing.T) {
	dev := soft.New(192, 144)
	opts := &Options{FX: DefaultFX()}
	h := smallHarness(t, opts, dev)
	if err := h.card.Start(); err != nil {
		t.Fatal(err)
	}
	if !h.card.Filtered() {
		t.Fatal("pipeline not set up")
	}
	if h.card.State() != Running {
		t.Error("filtered card is not running")
	}

	bp := opts.FX.BulgePinch
	if bp.TexSize != [2]float64{192, 144} || bp.Center != [2]float64{96, 72} || bp.Radius != 144 {
		t.Errorf("bulge geometry = %+v", bp)
	}
	if n := dev.DrawCalls(); n != 3 {
		t.Errorf("draw calls after Start = %d, want 3", n)
	}

	out := h.card.Output()
	if out.Bounds() != image.Rect(0, 0, 192, 144) {
		t.Fatalf("output bounds = %v", out.Bounds())
	}
	if sharesSurface(out, h.dc) {
		t.Error("Output returned the unfiltered surface")
	}

	h.advance(DefaultFrameInterval)
	if n := dev.DrawCalls(); n != 6 {
		t.Errorf("draw calls after one tick = %d, want 6", n)
	}

	if err := h.card.Close(); err != nil {
		t.Fatal(err)
	}
	if n := dev.Objects(); n != 0 {
		t.Errorf("%d GL objects left after Close", n)
	}
}

type brokenDevice struct {
	*soft.Device
}

func (brokenDevice) ShaderCompiled(fx.Shader) bool { return false }
func (brokenDevice) ShaderInfoLog(fx.Shader) string {
	return "0:12: error: 'vignette' : undeclared identifier\n"
}

func TestShaderErrorAbortsSetup(t *testing.T) {
	h := smallHarness(t, &Options{FX: DefaultFX()}, brokenDevice{soft.New(192, 144)})
	err := h.card.Start()
	var ce *fx.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Start() = %v, want CompileError", err)
	}
	if !strings.Contains(ce.Message, "undeclared identifier") {
		t.Errorf("message = %q", ce.Message)
	}
	if h.card.Filtered() || h.card.State() != Stopped {
		t.Error("card running after failed setup")
	}
}

func TestNoDeviceFallsBackTo2D(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	h := newHarness(t, &Options{FX: DefaultFX()})
	if err := h.card.Start(); err != nil {
		t.Fatal(err)
	}
	if h.card.Filtered() {
		t.Error("filtered without a device")
	}
	if !strings.Contains(buf.String(), "no graphics device") {
		t.Errorf("log = %q, want a no-device warning", buf.String())
	}
	if !sharesSurface(h.card.Output(), h.dc) {
		t.Error("Output is not the 2D surface")
	}
}

func TestImageSmoothingOption(t *testing.T) {
	h := newHarness(t, &Options{ImageSmoothingDisabled: true})
	if err := h.card.RenderInitial(); err != nil {
		t.Fatal(err)
	}
	if h.dc.ImageSmoothing() {
		t.Error("image smoothing still enabled")
	}
}
