package provebilde

import (
	"math"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/provebilde/internal/loop"
)

// Tuning steps.
const (
	PictureStep  = 0.01
	WarpStep     = 0.005
	VignetteStep = 0.01
	TimeStep     = time.Minute

	// OSDTimeout is how long the OSD stays up after the last adjustment.
	OSDTimeout = 3 * time.Second
)

// TextField names a label that receives typed characters.
type TextField int

const (
	HeaderField TextField = iota
	FooterField
)

func (f TextField) String() string {
	if f == FooterField {
		return "footer"
	}
	return "header"
}

// Controls maps user input onto a TestCard. Hosts translate their key
// events into these calls; the card picks the changes up on its next
// frame.
type Controls struct {
	tc      *TestCard
	focus   TextField
	hideOSD *loop.Debouncer
}

// NewControls returns controls for tc. The OSD is hidden OSDTimeout after
// the last picture adjustment, using timers from sched. With a nil sched
// the OSD stays up.
func NewControls(tc *TestCard, sched Scheduler) *Controls {
	c := &Controls{tc: tc}
	if sched != nil {
		c.hideOSD = loop.Debounce(sched, OSDTimeout, func() {
			tc.opts.OSD.Param = OSDNone
		})
	}
	return c
}

// Focus returns the label receiving typed characters.
func (c *Controls) Focus() TextField {
	return c.focus
}

// AdjustPicture handles the left (dir < 0) and right (dir > 0) arrows.
// Without modifiers it moves the displayed time by one minute. With ctrl
// and shift it steps saturation, with ctrl alone brightness and with
// shift alone contrast, showing the new level on the OSD.
func (c *Controls) AdjustPicture(dir int, ctrl, shift bool) {
	dir = sign(dir)
	if !ctrl && !shift {
		c.tc.timeDelta -= time.Duration(dir) * TimeStep
		return
	}

	fxo := c.tc.opts.FX
	if fxo == nil || fxo.BrightnessSaturationContrast == nil {
		return
	}
	bsc := fxo.BrightnessSaturationContrast
	var value *float64
	var param OSDParam
	switch {
	case ctrl && shift:
		value, param = &bsc.Saturation, OSDSaturation
	case ctrl:
		value, param = &bsc.Brightness, OSDBrightness
	default:
		value, param = &bsc.Contrast, OSDContrast
	}
	*value = clamp(*value+PictureStep*float64(dir), -1, 1)

	c.tc.opts.OSD = OSD{Param: param, Level: *value}
	if c.hideOSD != nil {
		c.hideOSD.Call()
	}
}

// AdjustWarp steps the lens warp strength. Positive strengths bulge,
// negative ones pinch.
func (c *Controls) AdjustWarp(dir int) {
	fxo := c.tc.opts.FX
	if fxo == nil || fxo.BulgePinch == nil {
		return
	}
	bp := fxo.BulgePinch
	bp.Strength = clamp(bp.Strength+WarpStep*float64(sign(dir)), -1, 1)
}

// AdjustVignette steps the vignette size and amount by whole steps.
func (c *Controls) AdjustVignette(sizeSteps, amountSteps int) {
	fxo := c.tc.opts.FX
	if fxo == nil || fxo.Vignette == nil {
		return
	}
	v := fxo.Vignette
	v.Size = clamp(v.Size+VignetteStep*float64(sizeSteps), 0, 1)
	v.Amount = clamp(v.Amount+VignetteStep*float64(amountSteps), 0, 1)
}

// ShiftDays moves the displayed date by whole calendar days, keeping the
// displayed wall clock time.
func (c *Controls) ShiftDays(dir int) {
	now := c.tc.co.now()
	shown := now.Add(-c.tc.timeDelta).AddDate(0, 0, sign(dir))
	c.tc.timeDelta = now.Sub(shown)
}

// FocusNext moves typing focus between header and footer.
func (c *Controls) FocusNext() {
	if c.focus == HeaderField {
		c.focus = FooterField
	} else {
		c.focus = HeaderField
	}
}

func (c *Controls) field() *string {
	if c.focus == FooterField {
		return &c.tc.opts.FooterText
	}
	return &c.tc.opts.HeaderText
}

// Type appends r, uppercased, to the focused label. Control characters
// are ignored.
func (c *Controls) Type(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	f := c.field()
	*f += upper(string(r))
}

// Backspace removes the last character of the focused label.
func (c *Controls) Backspace() {
	f := c.field()
	if *f == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(*f)
	*f = (*f)[:len(*f)-size]
}

// Delete clears the focused label.
func (c *Controls) Delete() {
	*c.field() = ""
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
