package provebilde

import (
	"time"

	"github.com/gogpu/provebilde/fx"
	"github.com/gogpu/provebilde/internal/loop"
)

// Options configure what the test card shows. HeaderText and FooterText
// are read on every frame and may be changed while the card runs, as may
// the FX parameters and OSD.
type Options struct {
	HeaderText string
	FooterText string
	ShowDate   bool
	ShowTime   bool

	// Date fixes the displayed clock to start at this instant. The zero
	// value shows the live clock.
	Date time.Time

	BlurredEdgesDisabled   bool
	ImageSmoothingDisabled bool

	// FX configures the shader passes. Nil disables post-processing.
	FX *FXOptions

	OSD OSD
}

// FXOptions selects and parameterizes the shader passes. A nil member
// leaves that pass out of the pipeline. Passes run in field order.
type FXOptions struct {
	BrightnessSaturationContrast *fx.BSCParams
	BulgePinch                   *fx.BulgePinchParams
	Vignette                     *fx.VignetteParams
}

// OSDParam names the parameter shown by the on-screen display.
type OSDParam int

const (
	OSDNone OSDParam = iota
	OSDBrightness
	OSDContrast
	OSDSaturation
)

func (p OSDParam) String() string {
	switch p {
	case OSDBrightness:
		return "brightness"
	case OSDContrast:
		return "contrast"
	case OSDSaturation:
		return "saturation"
	}
	return "none"
}

// Label returns the caption drawn under the OSD bar.
func (p OSDParam) Label() string {
	if p == OSDSaturation {
		return "COLOR"
	}
	return upper(p.String())
}

// OSD is the on-screen display state: which parameter is shown and its
// level in [-1, 1].
type OSD struct {
	Param OSDParam
	Level float64
}

// DefaultFX returns the stock picture settings: slightly desaturated with
// raised contrast, a faint lens bulge and a vignette.
func DefaultFX() *FXOptions {
	return &FXOptions{
		BrightnessSaturationContrast: &fx.BSCParams{Brightness: 0, Saturation: -0.7, Contrast: 0.3},
		BulgePinch:                   &fx.BulgePinchParams{Strength: 0.07},
		Vignette:                     &fx.VignetteParams{Size: 0.25, Amount: 0.58},
	}
}

// DefaultOptions returns the options of the stock card.
func DefaultOptions() *Options {
	return &Options{
		HeaderText: "jasMIN",
		FooterText: "Retro TV",
		ShowDate:   true,
		ShowTime:   true,
		FX:         DefaultFX(),
	}
}

// filters builds the configured passes for a width x height surface.
func (o *FXOptions) filters(width, height int) []*fx.Filter {
	if o == nil {
		return nil
	}
	var filters []*fx.Filter
	if o.BrightnessSaturationContrast != nil {
		filters = append(filters, fx.NewBrightnessSaturationContrastFilter(o.BrightnessSaturationContrast))
	}
	if o.BulgePinch != nil {
		filters = append(filters, fx.NewBulgePinchFilter(o.BulgePinch, width, height))
	}
	if o.Vignette != nil {
		filters = append(filters, fx.NewVignetteFilter(o.Vignette))
	}
	return filters
}

// Scheduler runs the card's timers. *loop.Loop implements it.
type Scheduler = loop.Scheduler

// Timer is a pending callback created by a Scheduler.
type Timer = loop.Timer

// Option configures a TestCard during creation.
type Option func(*cardOptions)

type cardOptions struct {
	device        fx.Device
	sched         Scheduler
	now           func() time.Time
	frameInterval time.Duration
}

// DefaultFrameInterval is the redraw interval of a running card.
const DefaultFrameInterval = 100 * time.Millisecond

func defaultCardOptions() cardOptions {
	return cardOptions{
		now:           time.Now,
		frameInterval: DefaultFrameInterval,
	}
}

// WithDevice sets the graphics device the shader passes run on. Without a
// device the card renders the 2D surface only.
func WithDevice(dev fx.Device) Option {
	return func(o *cardOptions) {
		o.device = dev
	}
}

// WithScheduler sets the scheduler driving the frame timer. Without one,
// Start renders a single frame and the card never enters Running.
func WithScheduler(s Scheduler) Option {
	return func(o *cardOptions) {
		o.sched = s
	}
}

// WithClock sets the wall clock the displayed time is derived from.
func WithClock(now func() time.Time) Option {
	return func(o *cardOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithFrameInterval sets the redraw interval.
func WithFrameInterval(d time.Duration) Option {
	return func(o *cardOptions) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}
