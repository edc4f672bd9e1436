package fx

import (
	"errors"
	"strings"
)

var (
	// ErrNoDevice is returned when a renderer is created without a device.
	ErrNoDevice = errors.New("fx: no graphics device")

	// ErrClosed is returned by a renderer used after Close.
	ErrClosed = errors.New("fx: renderer is closed")
)

// CompileError reports a shader that failed to compile.
type CompileError struct {
	Kind ShaderKind
	// Message is the last non-empty line of the driver log, or
	// "no message".
	Message string
	// Log is the full driver log.
	Log string
}

func (e *CompileError) Error() string {
	return "fx: shader failed to compile: " + e.Message
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Message string
	Log     string
}

func (e *LinkError) Error() string {
	return "fx: program failed to link: " + e.Message
}

// lastLogLine returns the last non-empty line of a driver log with NUL
// bytes removed.
func lastLogLine(log string) string {
	log = strings.ReplaceAll(log, "\x00", "")
	lines := strings.FieldsFunc(log, func(r rune) bool { return r == '\n' || r == '\r' })
	for i := len(lines) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(lines[i]); s != "" {
			return s
		}
	}
	return "no message"
}
