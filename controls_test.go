package provebilde

import (
	"testing"
	"time"
)

func newControls(t *testing.T, opts *Options) (*harness, *Controls) {
	t.Helper()
	h := newHarness(t, opts)
	return h, NewControls(h.card, h.loop)
}

func TestArrowShiftsClock(t *testing.T) {
	h, c := newControls(t, &Options{ShowTime: true, FX: DefaultFX()})
	before := h.card.Displayed()

	c.AdjustPicture(1, false, false)
	if d := h.card.Displayed().Sub(before); d != time.Minute {
		t.Errorf("right arrow moved the clock by %v, want 1m", d)
	}
	c.AdjustPicture(-1, false, false)
	c.AdjustPicture(-1, false, false)
	if d := h.card.Displayed().Sub(before); d != -time.Minute {
		t.Errorf("two left arrows moved the clock by %v, want -1m", d)
	}
	if h.card.Options().OSD.Param != OSDNone {
		t.Error("clock shift raised the OSD")
	}
}

func TestAdjustPictureModifiers(t *testing.T) {
	tests := []struct {
		ctrl, shift bool
		param       OSDParam
	}{
		{true, false, OSDBrightness},
		{false, true, OSDContrast},
		{true, true, OSDSaturation},
	}
	for _, tt := range tests {
		h, c := newControls(t, &Options{FX: DefaultFX()})
		bsc := h.card.Options().FX.BrightnessSaturationContrast
		want := map[OSDParam]*float64{
			OSDBrightness: &bsc.Brightness,
			OSDContrast:   &bsc.Contrast,
			OSDSaturation: &bsc.Saturation,
		}[tt.param]
		start := *want

		c.AdjustPicture(1, tt.ctrl, tt.shift)
		if got := *want - start; got < 0.0099 || got > 0.0101 {
			t.Errorf("%v: changed by %v, want 0.01", tt.param, got)
		}
		osd := h.card.Options().OSD
		if osd.Param != tt.param || osd.Level != *want {
			t.Errorf("%v: OSD = %+v", tt.param, osd)
		}
	}
}

func TestAdjustPictureClamps(t *testing.T) {
	h, c := newControls(t, &Options{FX: DefaultFX()})
	bsc := h.card.Options().FX.BrightnessSaturationContrast
	bsc.Brightness = 0.995
	c.AdjustPicture(1, true, false)
	c.AdjustPicture(1, true, false)
	if bsc.Brightness != 1 {
		t.Errorf("brightness = %v, want 1", bsc.Brightness)
	}
	bsc.Saturation = -1
	c.AdjustPicture(-1, true, true)
	if bsc.Saturation != -1 {
		t.Errorf("saturation = %v, want -1", bsc.Saturation)
	}
}

func TestAdjustPictureWithoutFilter(t *testing.T) {
	h, c := newControls(t, &Options{})
	c.AdjustPicture(1, true, false)
	if h.card.Options().OSD.Param != OSDNone {
		t.Error("OSD raised without a brightness filter")
	}
}

func TestOSDHidesAfterTimeout(t *testing.T) {
	h, c := newControls(t, &Options{FX: DefaultFX()})
	c.AdjustPicture(1, true, false)

	h.advance(2 * time.Second)
	if h.card.Options().OSD.Param != OSDBrightness {
		t.Fatal("OSD hidden too early")
	}
	// another press restarts the timeout
	c.AdjustPicture(1, true, false)
	h.advance(2500 * time.Millisecond)
	if h.card.Options().OSD.Param != OSDBrightness {
		t.Fatal("OSD hidden before the restarted timeout")
	}
	h.advance(500 * time.Millisecond)
	if got := h.card.Options().OSD.Param; got != OSDNone {
		t.Errorf("OSD = %v after timeout, want none", got)
	}
}

func TestAdjustWarp(t *testing.T) {
	h, c := newControls(t, &Options{FX: DefaultFX()})
	bp := h.card.Options().FX.BulgePinch

	c.AdjustWarp(1)
	if d := bp.Strength - 0.075; d > 1e-9 || d < -1e-9 {
		t.Errorf("strength = %v, want 0.075", bp.Strength)
	}
	bp.Strength = 0.998
	c.AdjustWarp(1)
	if bp.Strength != 1 {
		t.Errorf("strength = %v, want clamped to 1", bp.Strength)
	}
	bp.Strength = -0.998
	c.AdjustWarp(-1)
	if bp.Strength != -1 {
		t.Errorf("strength = %v, want clamped to -1", bp.Strength)
	}
}

func TestAdjustVignette(t *testing.T) {
	h, c := newControls(t, &Options{FX: DefaultFX()})
	v := h.card.Options().FX.Vignette
	c.AdjustVignette(-100, 100)
	if v.Size != 0 || v.Amount != 1 {
		t.Errorf("vignette = %+v, want size 0 amount 1", v)
	}
}

func TestShiftDays(t *testing.T) {
	h, c := newControls(t, &Options{ShowDate: true})
	h.card.SetTimeDelta(90 * time.Minute)
	before := h.card.Displayed()

	c.ShiftDays(1)
	after := h.card.Displayed()
	if got, want := FormatTime(after, FieldDate), FormatTime(before.AddDate(0, 0, 1), FieldDate); got != want {
		t.Errorf("date = %s, want %s", got, want)
	}
	if FormatTime(after, FieldTime) != FormatTime(before, FieldTime) {
		t.Error("day shift changed the time of day")
	}
	c.ShiftDays(-1)
	if !h.card.Displayed().Equal(before) {
		t.Errorf("displayed = %v, want %v", h.card.Displayed(), before)
	}
}

func TestTyping(t *testing.T) {
	h, c := newControls(t, &Options{HeaderText: "jas", FooterText: "Retro TV"})
	o := h.card.Options()

	c.Type('m')
	c.Type('ø')
	c.Type('\n')
	if o.HeaderText != "jasMØ" {
		t.Errorf("header = %q, want jasMØ", o.HeaderText)
	}
	c.Backspace()
	if o.HeaderText != "jasM" {
		t.Errorf("header after backspace = %q, want jasM", o.HeaderText)
	}

	c.FocusNext()
	if c.Focus() != FooterField {
		t.Fatalf("focus = %v, want footer", c.Focus())
	}
	c.Backspace()
	if o.FooterText != "Retro T" {
		t.Errorf("footer = %q, want Retro T", o.FooterText)
	}
	c.Delete()
	c.Backspace()
	if o.FooterText != "" {
		t.Errorf("footer = %q, want empty", o.FooterText)
	}
	c.Type('å')
	if o.FooterText != "Å" {
		t.Errorf("footer = %q, want Å", o.FooterText)
	}

	c.FocusNext()
	if c.Focus() != HeaderField {
		t.Errorf("focus = %v, want header", c.Focus())
	}
}
