package provebilde

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field selects which clock readout FormatTime produces.
type Field int

const (
	FieldDate Field = iota // DD-MM-YY
	FieldTime              // HH:MM:SS
)

// Layout returns the time package layout of the field.
func (f Field) Layout() string {
	if f == FieldDate {
		return "02-01-06"
	}
	return "15:04:05"
}

// FormatTime renders t as the card shows it: three zero-padded two digit
// parts joined by '-' for the date and ':' for the time.
func FormatTime(t time.Time, f Field) string {
	return t.Format(f.Layout())
}

// upper uppercases text the way it is painted on the card. Norwegian
// rules keep æ, ø and å intact.
func upper(s string) string {
	return cases.Upper(language.Norwegian).String(s)
}

// labelText normalizes a header or footer label for drawing.
func labelText(s string) string {
	return strings.TrimSpace(upper(s))
}
