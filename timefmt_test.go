package provebilde

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		t    time.Time
		f    Field
		want string
	}{
		{time.Date(1985, 5, 12, 1, 23, 35, 0, time.UTC), FieldDate, "12-05-85"},
		{time.Date(1985, 5, 12, 1, 23, 35, 0, time.UTC), FieldTime, "01:23:35"},
		{time.Date(2005, 1, 2, 23, 59, 59, 0, time.UTC), FieldDate, "02-01-05"},
		{time.Date(2005, 1, 2, 23, 59, 59, 0, time.UTC), FieldTime, "23:59:59"},
		{time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), FieldDate, "31-12-00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.t, tt.f); got != tt.want {
			t.Errorf("FormatTime(%v, %d) = %q, want %q", tt.t, tt.f, got, tt.want)
		}
	}
}

func TestFormatTimeRoundTrip(t *testing.T) {
	start := time.Date(1999, 12, 31, 23, 59, 30, 0, time.UTC)
	for i := range 48 {
		tm := start.Add(time.Duration(i) * 37 * time.Minute)
		for _, f := range []Field{FieldDate, FieldTime} {
			s := FormatTime(tm, f)
			if len(s) != 8 {
				t.Fatalf("FormatTime(%v, %d) = %q, want 8 characters", tm, f, s)
			}
			parsed, err := time.Parse(f.Layout(), s)
			if err != nil {
				t.Fatalf("parse %q: %v", s, err)
			}
			if back := FormatTime(parsed, f); back != s {
				t.Errorf("round trip %q -> %q", s, back)
			}
		}
	}
}

func TestLabelText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"jasMIN", "JASMIN"},
		{"  Retro TV  ", "RETRO TV"},
		{"blåbærsyltetøy", "BLÅBÆRSYLTETØY"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := labelText(tt.in); got != tt.want {
			t.Errorf("labelText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOSDCells(t *testing.T) {
	lit := func(cells [2*OSDSteps + 1]bool) (lo, hi, n int) {
		lo, hi = -1, -1
		for i, on := range cells {
			if !on {
				continue
			}
			if lo < 0 {
				lo = i
			}
			hi = i
			n++
		}
		return lo - OSDSteps, hi - OSDSteps, n
	}
	tests := []struct {
		level  float64
		lo, hi int
	}{
		{0, 0, 0},
		{1, 0, 20},
		{-1, -20, 0},
		{5, 0, 20},
		{-3, -20, 0},
		{0.05, 0, 1},
		{-0.05, -1, 0},
		{0.5, 0, 10},
		{0.3, 0, 6},
		{-0.7, -14, 0},
		{0.02, 0, 0},
	}
	for _, tt := range tests {
		lo, hi, n := lit(OSDCells(tt.level))
		if lo != tt.lo || hi != tt.hi || n != hi-lo+1 {
			t.Errorf("OSDCells(%v) lit %d..%d (%d cells), want %d..%d", tt.level, lo, hi, n, tt.lo, tt.hi)
		}
	}
}

func TestOSDParamLabel(t *testing.T) {
	tests := []struct {
		p    OSDParam
		want string
	}{
		{OSDBrightness, "BRIGHTNESS"},
		{OSDContrast, "CONTRAST"},
		{OSDSaturation, "COLOR"},
	}
	for _, tt := range tests {
		if got := tt.p.Label(); got != tt.want {
			t.Errorf("%v.Label() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
